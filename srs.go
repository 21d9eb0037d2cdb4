package kzg

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/polycommit/go-kzg/internal/multiexp"
)

// SRS is the structured reference string: the public parameters every
// prover and verifier operates against.
//
// The secret scalar α used to derive it is the scheme's "toxic waste".
// Setup consumes it and only the group elements below survive; soundness of
// every commitment made under the SRS depends on α being destroyed.
type SRS struct {
	// GenG1 is the generator of G1. "g" in the paper.
	GenG1 bls12381.G1Affine
	// GenG2 is the generator of G2. "h" in the paper.
	GenG2 bls12381.G2Affine

	// Gs[i] = [α^(i+1)]G₁ for i in 0..maxDegree-1
	Gs []bls12381.G1Affine
	// Hs[i] = [α^(i+1)]G₂ for i in 0..maxDegree-1
	Hs []bls12381.G2Affine

	// Monomial commitment bases [GenG1, Gs...] and [GenG2, Hs...].
	// Gs and Hs alias into these, so the points are not duplicated.
	g1Basis []bls12381.G1Affine
	g2Basis []bls12381.G2Affine
}

// Setup derives the SRS for polynomials of degree at most maxDegree from
// the given secret scalar.
//
// The secret is taken by value and is not retained; no return path exposes
// it. Callers must not keep their own copy; anyone holding the secret can
// forge a witness for any claim. Production parameters come from a multi-party
// ceremony, which is outside the scope of this library.
func Setup(secret fr.Element, maxDegree uint64) (*SRS, error) {
	if maxDegree == 0 {
		return nil, ErrMinDegree
	}

	_, _, genG1, genG2 := bls12381.Generators()

	// α^1, α^2, ..., α^maxDegree
	powers := make([]fr.Element, maxDegree)
	powers[0] = secret
	for i := 1; i < len(powers); i++ {
		powers[i].Mul(&powers[i-1], &secret)
	}

	g1Basis := make([]bls12381.G1Affine, maxDegree+1)
	g1Basis[0] = genG1
	copy(g1Basis[1:], bls12381.BatchScalarMultiplicationG1(&genG1, powers))

	g2Basis := make([]bls12381.G2Affine, maxDegree+1)
	g2Basis[0] = genG2
	copy(g2Basis[1:], bls12381.BatchScalarMultiplicationG2(&genG2, powers))

	// toxic waste: wipe the powers of the secret before returning
	for i := range powers {
		powers[i].SetZero()
	}

	return &SRS{
		GenG1:   genG1,
		GenG2:   genG2,
		Gs:      g1Basis[1:],
		Hs:      g2Basis[1:],
		g1Basis: g1Basis,
		g2Basis: g2Basis,
	}, nil
}

// MaxDegree returns the largest polynomial degree supported by these
// parameters.
func (s *SRS) MaxDegree() uint64 {
	return uint64(len(s.Gs))
}

// commitG1 commits to the coefficient vector using a multi exponentiation
// against the G1 monomial basis. This evaluates the polynomial "in the
// exponent" at the secret setup point without knowing that point.
func (s *SRS) commitG1(coeffs []fr.Element) (*Commitment, error) {
	if len(coeffs) == 0 || len(coeffs) > len(s.g1Basis) {
		return nil, ErrDegreeTooLarge
	}
	return multiexp.MultiExp(coeffs, s.g1Basis[:len(coeffs)], 0)
}

// commitG2 is commitG1 against the G2 monomial basis. Used to commit to
// the vanishing polynomial of a point set when verifying aggregated
// openings.
func (s *SRS) commitG2(coeffs []fr.Element) (*bls12381.G2Affine, error) {
	if len(coeffs) == 0 || len(coeffs) > len(s.g2Basis) {
		return nil, ErrDegreeTooLarge
	}
	return multiexp.MultiExpG2(coeffs, s.g2Basis[:len(coeffs)], 0)
}

// alphaG2 returns [α]G₂, the G2 element the single-point pairing check is
// built from.
func (s *SRS) alphaG2() *bls12381.G2Affine {
	return &s.Hs[0]
}
