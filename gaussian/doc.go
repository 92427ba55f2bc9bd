// Package gaussian owns the Gaussian component and mixture types of the
// GM-PHD data model.
//
// Responsibilities: one concrete component type per supported state
// dimension (2, 3, 4, 6), the Component constraint that ties them
// together for generic code, and the ordered Mixture container.
// Key types: Gaussian2D, Gaussian3D, Gaussian4D, Gaussian6D, Mixture.
//
// Covariance is stored densely as an N×N row-major array; it is never
// symmetry-compressed and never validated. Weight, mean and covariance are
// passed through untouched. Prediction, update, pruning and merging live
// in the filter that consumes these types.
package gaussian
