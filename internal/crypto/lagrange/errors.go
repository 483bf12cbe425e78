package lagrange

import "errors"

var (
	ErrInvalidThreshold = errors.New("lagrange: threshold must be positive")

	// ErrInsufficientShares is returned when fewer than k points are available.
	ErrInsufficientShares = errors.New("lagrange: insufficient shares")

	ErrNoPoints = errors.New("lagrange: no points to interpolate")

	// ErrInterpolationDegenerate is returned when two points share the same x coordinate.
	ErrInterpolationDegenerate = errors.New("lagrange: duplicate x coordinate")

	// ErrNonIntegralSecret is returned when the interpolated value at zero is not an integer,
	// i.e. the points do not lie on a polynomial with integer coefficients of degree < k.
	ErrNonIntegralSecret = errors.New("lagrange: interpolated secret is not an integer")

	// ErrInconsistentShares is returned when two k-subsets of the shares interpolate to different secrets.
	ErrInconsistentShares = errors.New("lagrange: shares are inconsistent")
)
