package kzg

import "errors"

var (
	// ErrNoPolynomial is returned when Open or CreateWitness is called on a
	// prover that has not committed to a polynomial yet.
	ErrNoPolynomial = errors.New("no polynomial has been committed to")

	// ErrPointNotOnPolynomial is returned when the claimed evaluation does
	// not lie on the committed polynomial. This is an expected outcome for a
	// mistaken or malicious claim, not a bug.
	ErrPointNotOnPolynomial = errors.New("point is not on the polynomial")

	ErrMinDegree            = errors.New("maximum degree must be at least 1")
	ErrDegreeTooLarge       = errors.New("invalid polynomial size (larger than SRS or == 0)")
	ErrDomainTooLarge       = errors.New("the required root of unity does not exist for the domain size")
	ErrMismatchedSizeDomain = errors.New("domain size does not equal the number of evaluations in the polynomial")
	ErrIndexOutsideDomain   = errors.New("index is not within the evaluation domain")
	ErrInvalidNumProofs     = errors.New("number of proofs is not the same as the number of claims")
	ErrInvalidPointSet      = errors.New("number of points is not the same as the number of values")
	ErrDuplicatePoints      = errors.New("point set contains duplicate points")
	ErrDivisorIsZero        = errors.New("division by the zero polynomial")
)
