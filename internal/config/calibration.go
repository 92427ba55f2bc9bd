package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/stereo.gmphd/calib"
	"github.com/banshee-data/stereo.gmphd/geom"
	"github.com/banshee-data/stereo.gmphd/internal/monitoring"
	"github.com/banshee-data/stereo.gmphd/internal/units"
)

// DefaultConfigPath is the path to the canonical calibration defaults file.
const DefaultConfigPath = "config/calibration.defaults.json"

// maxFileSize caps calibration files at 1MB.
const maxFileSize = 1 * 1024 * 1024

// CalibrationConfig is the on-disk form of a stereo camera calibration.
// Every field is optional; Get* methods supply defaults for omitted ones.
//
// Values are passed through to calib.Intrinsics and calib.Extrinsics
// without plausibility checks. Only the unit strings are validated.
type CalibrationConfig struct {
	// Intrinsics
	F     *float64 `json:"f,omitempty"`
	DU    *float64 `json:"du,omitempty"`
	DV    *float64 `json:"dv,omitempty"`
	U0    *float64 `json:"u0,omitempty"`
	V0    *float64 `json:"v0,omitempty"`
	Alpha *float64 `json:"alpha,omitempty"`

	// Extrinsics: camera position in the reference frame
	X *float64 `json:"x,omitempty"`
	Y *float64 `json:"y,omitempty"`
	Z *float64 `json:"z,omitempty"`

	// Extrinsics: camera orientation
	AngleX *float64 `json:"angle_x,omitempty"`
	AngleY *float64 `json:"angle_y,omitempty"`
	AngleZ *float64 `json:"angle_z,omitempty"`

	LengthUnit *string `json:"length_unit,omitempty"` // "m", "cm" or "mm"
	AngleUnit  *string `json:"angle_unit,omitempty"`  // "rad" or "deg"
}

// EmptyCalibrationConfig returns a CalibrationConfig with all fields nil.
func EmptyCalibrationConfig() *CalibrationConfig {
	return &CalibrationConfig{}
}

// LoadCalibrationConfig loads a CalibrationConfig from a JSON file.
// The file must have a .json extension and be under 1MB. Fields omitted
// from the file fall back to the Get* defaults.
func LoadCalibrationConfig(path string) (*CalibrationConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := ParseCalibrationConfig(data)
	if err != nil {
		return nil, err
	}

	monitoring.Logf("loaded camera calibration from %s (length_unit=%s angle_unit=%s)",
		cleanPath, cfg.GetLengthUnit(), cfg.GetAngleUnit())
	return cfg, nil
}

// ParseCalibrationConfig decodes and validates calibration JSON.
func ParseCalibrationConfig(data []byte) (*CalibrationConfig, error) {
	cfg := EmptyCalibrationConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// MustLoadDefaultConfig loads the canonical calibration defaults from
// DefaultConfigPath, searching the current directory and its parents.
// Panics if the file cannot be loaded; intended for test setup.
func MustLoadDefaultConfig() *CalibrationConfig {
	candidates := []string{
		DefaultConfigPath,
		"../" + DefaultConfigPath,
		"../../" + DefaultConfigPath,    // from internal/config/
		"../../../" + DefaultConfigPath, // deeper packages
	}
	for _, path := range candidates {
		if cfg, err := LoadCalibrationConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate checks the unit strings. Numeric fields are not checked.
func (c *CalibrationConfig) Validate() error {
	if c.LengthUnit != nil && !units.IsValidLength(*c.LengthUnit) {
		return fmt.Errorf("length_unit must be one of %s, got %q", units.GetValidLengthUnitsString(), *c.LengthUnit)
	}
	if c.AngleUnit != nil && !units.IsValidAngle(*c.AngleUnit) {
		return fmt.Errorf("angle_unit must be one of %s, got %q", units.GetValidAngleUnitsString(), *c.AngleUnit)
	}
	return nil
}

// Intrinsics builds the projection record from the configured values.
func (c *CalibrationConfig) Intrinsics() calib.Intrinsics {
	return calib.Intrinsics{
		F:     c.GetF(),
		DU:    c.GetDU(),
		DV:    c.GetDV(),
		U0:    c.GetU0(),
		V0:    c.GetV0(),
		Alpha: c.GetAlpha(),
	}
}

// Extrinsics builds the pose record, converting the position to metres
// and the angles to radians. Velocity slots are left zero.
func (c *CalibrationConfig) Extrinsics() calib.Extrinsics {
	lu, au := c.GetLengthUnit(), c.GetAngleUnit()
	return calib.Extrinsics{
		Cartesian: geom.EuclideanPoint{
			X: units.ConvertLength(valueOr(c.X, 0), lu),
			Y: units.ConvertLength(valueOr(c.Y, 0), lu),
			Z: units.ConvertLength(valueOr(c.Z, 0), lu),
		},
		Angular: geom.EuclideanPoint{
			X: units.ConvertAngle(valueOr(c.AngleX, 0), au),
			Y: units.ConvertAngle(valueOr(c.AngleY, 0), au),
			Z: units.ConvertAngle(valueOr(c.AngleZ, 0), au),
		},
	}
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// GetF returns the focal length or the default.
func (c *CalibrationConfig) GetF() float64 { return valueOr(c.F, 1.0) }

// GetDU returns the horizontal pixel scale or the default.
func (c *CalibrationConfig) GetDU() float64 { return valueOr(c.DU, 1.0) }

// GetDV returns the vertical pixel scale or the default.
func (c *CalibrationConfig) GetDV() float64 { return valueOr(c.DV, 1.0) }

// GetU0 returns the principal point u coordinate or the default.
func (c *CalibrationConfig) GetU0() float64 { return valueOr(c.U0, 0) }

// GetV0 returns the principal point v coordinate or the default.
func (c *CalibrationConfig) GetV0() float64 { return valueOr(c.V0, 0) }

// GetAlpha returns the disparity scale or the default.
func (c *CalibrationConfig) GetAlpha() float64 { return valueOr(c.Alpha, 1.0) }

// GetLengthUnit returns the length unit or the default (metres).
func (c *CalibrationConfig) GetLengthUnit() string { return valueOr(c.LengthUnit, units.M) }

// GetAngleUnit returns the angle unit or the default (radians).
func (c *CalibrationConfig) GetAngleUnit() string { return valueOr(c.AngleUnit, units.RAD) }
