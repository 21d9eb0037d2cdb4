// Package kzg implements the KZG (Kate-Zaverucha-Goldberg) polynomial
// commitment scheme over the BLS12-381 pairing-friendly curve.
//
// A prover commits to a polynomial of bounded degree with a single G1
// element, and can later prove the polynomial's value at any point with a
// single G1 element. A verifier checks such a proof with one pairing
// equation, without ever seeing the polynomial.
//
// Two prover variants are provided. The coefficient-form [Prover] works on
// an explicit coefficient vector. The [EvalFormProver] works on values given
// directly over an evaluation domain of roots of unity, committing against a
// precomputed Lagrange basis so that coefficients never need to be
// materialized.
//
// See the original paper for the underlying algebra:
// https://www.iacr.org/archive/asiacrypt2010/6477178/6477178.pdf
package kzg

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Commitment is a binding, constant-size representation of a polynomial.
// "C" in the paper.
type Commitment = bls12381.G1Affine

// Witness proves that the committed polynomial takes a specific value at a
// specific point. "w_i" in the paper. It is only valid for exactly one
// (point, value) claim against one commitment.
type Witness = bls12381.G1Affine
