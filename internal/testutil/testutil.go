// Package testutil provides shared test assertions.
//
// The helpers take the small T interface rather than *testing.T so their
// failure paths can be exercised with a recorder.
package testutil

import (
	"gonum.org/v1/gonum/floats"

	"github.com/banshee-data/stereo.gmphd/geom"
)

// T is the subset of testing.TB used by the helpers.
type T interface {
	Helper()
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t T, err error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

// AssertFloatsNear fails the test unless got and want have the same length
// and every pair agrees within tol (absolute or relative).
func AssertFloatsNear(t T, got, want []float64, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("length = %d, want %d", len(got), len(want))
		return
	}
	if !floats.EqualApprox(got, want, tol) {
		t.Errorf("got %v, want %v (tol %g)", got, want, tol)
	}
}

// AssertDisparityNear fails the test unless every field of got is within
// tol of want.
func AssertDisparityNear(t T, got, want geom.DisparityPoint, tol float64) {
	t.Helper()
	if !geom.ApproxEqual(got, want, tol) {
		t.Errorf("got %+v, want %+v (tol %g)", got, want, tol)
	}
}
