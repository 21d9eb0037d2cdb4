package kzg

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// ComputeLagrangeBasis converts the monomial SRS into a commitment basis
// over the domain: element i is the commitment to the i-th Lagrange
// polynomial of the domain, [L_i(α)]G₁.
//
// Since the Lagrange polynomials are the inverse Fourier transform of the
// monomials over the domain, the basis is the G1 inverse transform of
// [G₁, [α]G₁, ..., [α^(N-1)]G₁].
//
// The basis depends only on the SRS and the domain, so it is computed once
// and shared across every EvalFormProver for that domain.
func ComputeLagrangeBasis(srs *SRS, domain *Domain) ([]bls12381.G1Affine, error) {
	n := domain.Cardinality
	if n > srs.MaxDegree()+1 {
		return nil, ErrDegreeTooLarge
	}

	monomialBasis := make([]bls12381.G1Affine, n)
	copy(monomialBasis, srs.g1Basis[:n])

	return domain.IfftG1(monomialBasis), nil
}
