package kzg

import (
	"errors"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/sync/errgroup"

	"github.com/polycommit/go-kzg/internal/multiexp"
	"github.com/polycommit/go-kzg/internal/utils"
)

// VerifyEvalBatch checks an aggregated witness for the claims
// p(points[i]) == values[i], produced by CreateWitnessBatch, via
//
//	e(W, [Z(α)]G₂) == e(C - [I(α)]G₁, G₂)
//
// where Z is the vanishing polynomial of the point set and I the
// interpolation of the claims. [Z(α)]G₂ is a multi exponentiation against
// the G2 half of the SRS, which exists for exactly this purpose.
func (v *Verifier) VerifyEvalBatch(points, values []fr.Element, commitment *Commitment, witness *Witness) bool {
	if len(points) == 0 || len(points) > int(v.srs.MaxDegree()) {
		return false
	}

	interpolant, err := Interpolate(points, values)
	if err != nil {
		return false
	}

	zG2, err := v.srs.commitG2(vanishingPolynomial(points).coeffs)
	if err != nil {
		return false
	}
	iG1, err := v.srs.commitG1(interpolant.coeffs)
	if err != nil {
		return false
	}

	// C - [I(α)]G₁
	var iG1Jac bls12381.G1Jac
	iG1Jac.FromAffine(iG1)

	var cMinusIG1Jac bls12381.G1Jac
	cMinusIG1Jac.FromAffine(commitment)
	cMinusIG1Jac.SubAssign(&iG1Jac)

	var cMinusIG1Aff bls12381.G1Affine
	cMinusIG1Aff.FromJacobian(&cMinusIG1Jac)

	var negG2 bls12381.G2Affine
	negG2.Neg(&v.srs.GenG2)

	check, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{cMinusIG1Aff, *witness},
		[]bls12381.G2Affine{negG2, *zG2},
	)
	return err == nil && check
}

// VerifyEvalMulti checks many independent single-point proofs with one
// pairing check, by folding them with powers of a random scalar. Powers of
// one random number suffice since they form a Vandermonde matrix, which is
// linearly independent.
//
// A false return means at least one proof in the batch is invalid. The
// error return is reserved for malformed input or a failing randomness
// source, never for an invalid proof.
func (v *Verifier) VerifyEvalMulti(xs, ys []fr.Element, commitments []Commitment, witnesses []Witness) (bool, error) {
	if len(xs) != len(ys) || len(xs) != len(commitments) || len(xs) != len(witnesses) {
		return false, ErrInvalidNumProofs
	}

	// Nothing to verify.
	if len(xs) == 0 {
		return true, nil
	}
	if len(xs) == 1 {
		return v.VerifyEval(xs[0], ys[0], &commitments[0], &witnesses[0]), nil
	}

	var randomScalar fr.Element
	if _, err := randomScalar.SetRandom(); err != nil {
		return false, err
	}
	randomScalars := utils.ComputePowers(randomScalar, uint(len(commitments)))

	// combine r_i * W_i
	foldedWitnesses, err := multiexp.MultiExp(randomScalars, witnesses, 0)
	if err != nil {
		return false, err
	}

	// combine r_i * C_i and r_i * y_i
	foldedCommitments, err := multiexp.MultiExp(randomScalars, commitments, 0)
	if err != nil {
		return false, err
	}
	var foldedValues, tmp fr.Element
	for i := 0; i < len(ys); i++ {
		tmp.Mul(&ys[i], &randomScalars[i])
		foldedValues.Add(&foldedValues, &tmp)
	}

	// combine r_i * x_i * W_i
	for i := 0; i < len(randomScalars); i++ {
		randomScalars[i].Mul(&randomScalars[i], &xs[i])
	}
	foldedPointsWitnesses, err := multiexp.MultiExp(randomScalars, witnesses, 0)
	if err != nil {
		return false, err
	}

	// lhs first pairing: sum_i r_i * (C_i - [y_i]G₁ + x_i * W_i)
	var foldedValuesBigInt big.Int
	foldedValues.BigInt(&foldedValuesBigInt)

	var foldedValuesG1 bls12381.G1Affine
	foldedValuesG1.ScalarMultiplication(&v.srs.GenG1, &foldedValuesBigInt)

	var foldedG1 bls12381.G1Affine
	foldedG1.Sub(foldedCommitments, &foldedValuesG1)
	foldedG1.Add(&foldedG1, foldedPointsWitnesses)

	// lhs second pairing: -sum_i r_i * W_i
	var negFoldedWitnesses bls12381.G1Affine
	negFoldedWitnesses.Neg(foldedWitnesses)

	check, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{foldedG1, negFoldedWitnesses},
		[]bls12381.G2Affine{v.srs.GenG2, *v.srs.alphaG2()},
	)
	if err != nil {
		return false, err
	}
	return check, nil
}

// VerifyEvalMultiPar is VerifyEvalMulti without the folding: each proof is
// checked individually on its own goroutine. Use it when the proofs are
// unrelated and identifying which check failed matters more than the cost
// of the extra pairings.
//
// If you are worried about resource starvation on large batches, schedule
// your own goroutines in a more intricate way than done below.
func (v *Verifier) VerifyEvalMultiPar(xs, ys []fr.Element, commitments []Commitment, witnesses []Witness) (bool, error) {
	if len(xs) != len(ys) || len(xs) != len(commitments) || len(xs) != len(witnesses) {
		return false, ErrInvalidNumProofs
	}

	var errG errgroup.Group
	for i := range xs {
		i := i
		errG.Go(func() error {
			if !v.VerifyEval(xs[i], ys[i], &commitments[i], &witnesses[i]) {
				return errProofInvalid
			}
			return nil
		})
	}

	return errG.Wait() == nil, nil
}

// errProofInvalid is only used to carry a failed check out of an errgroup;
// it is never returned to callers.
var errProofInvalid = errors.New("opening proof is invalid")
