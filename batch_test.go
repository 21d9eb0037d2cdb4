package kzg

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"
)

func TestBatchWitnessSmoke(t *testing.T) {
	srs, err := Setup(randomScalar(t), 8)
	require.NoError(t, err)

	prover := NewProver(srs)
	verifier := NewVerifier(srs)

	poly := NewPolynomial(randomScalars(t, 8))
	commitment, err := prover.Commit(poly)
	require.NoError(t, err)

	points := []fr.Element{fr.NewElement(1), fr.NewElement(2), fr.NewElement(3)}
	values := make([]fr.Element, len(points))
	for i := range points {
		values[i] = poly.Evaluate(points[i])
	}

	witness, err := prover.CreateWitnessBatch(points, values)
	require.NoError(t, err)
	require.True(t, verifier.VerifyEvalBatch(points, values, commitment, witness))
}

func TestBatchWitnessWrongValue(t *testing.T) {
	srs, err := Setup(randomScalar(t), 8)
	require.NoError(t, err)

	prover := NewProver(srs)
	verifier := NewVerifier(srs)

	poly := NewPolynomial(randomScalars(t, 8))
	commitment, err := prover.Commit(poly)
	require.NoError(t, err)

	points := []fr.Element{fr.NewElement(1), fr.NewElement(2), fr.NewElement(3)}
	values := make([]fr.Element, len(points))
	for i := range points {
		values[i] = poly.Evaluate(points[i])
	}

	// corrupt one claim: the prover must refuse to aggregate it
	corrupted := make([]fr.Element, len(values))
	copy(corrupted, values)
	corrupted[1].Add(&corrupted[1], new(fr.Element).SetOne())

	_, err = prover.CreateWitnessBatch(points, corrupted)
	require.ErrorIs(t, err, ErrPointNotOnPolynomial)

	// and a valid witness must not verify against the corrupted claims
	witness, err := prover.CreateWitnessBatch(points, values)
	require.NoError(t, err)
	require.False(t, verifier.VerifyEvalBatch(points, corrupted, commitment, witness))
}

func TestBatchWitnessPointSetErrors(t *testing.T) {
	srs, err := Setup(randomScalar(t), 8)
	require.NoError(t, err)

	prover := NewProver(srs)
	_, err = prover.Commit(NewPolynomial(randomScalars(t, 8)))
	require.NoError(t, err)

	_, err = prover.CreateWitnessBatch(randomScalars(t, 3), randomScalars(t, 2))
	require.ErrorIs(t, err, ErrInvalidPointSet)

	x := randomScalar(t)
	_, err = prover.CreateWitnessBatch([]fr.Element{x, x}, randomScalars(t, 2))
	require.ErrorIs(t, err, ErrDuplicatePoints)
}

func TestVerifyEvalMulti(t *testing.T) {
	srs, err := Setup(randomScalar(t), 8)
	require.NoError(t, err)

	prover := NewProver(srs)
	verifier := NewVerifier(srs)

	poly := NewPolynomial(randomScalars(t, 8))
	commitment, err := prover.Commit(poly)
	require.NoError(t, err)

	numProofs := 5
	xs := make([]fr.Element, numProofs)
	ys := make([]fr.Element, numProofs)
	commitments := make([]Commitment, numProofs)
	witnesses := make([]Witness, numProofs)
	for i := 0; i < numProofs; i++ {
		xs[i] = randomScalar(t)
		ys[i] = poly.Evaluate(xs[i])

		witness, err := prover.CreateWitness(xs[i], ys[i])
		require.NoError(t, err)

		commitments[i] = *commitment
		witnesses[i] = *witness
	}

	ok, err := verifier.VerifyEvalMulti(xs, ys, commitments, witnesses)
	require.NoError(t, err)
	require.True(t, ok)

	// corrupt a single claimed value: the folded check must fail
	ys[3].Add(&ys[3], new(fr.Element).SetOne())
	ok, err = verifier.VerifyEvalMulti(xs, ys, commitments, witnesses)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifyEvalMultiEdgeCases(t *testing.T) {
	srs, err := Setup(randomScalar(t), 8)
	require.NoError(t, err)
	verifier := NewVerifier(srs)

	// empty batch verifies trivially
	ok, err := verifier.VerifyEvalMulti(nil, nil, nil, nil)
	require.NoError(t, err)
	require.True(t, ok)

	// mismatched lengths are malformed input, not a failed proof
	_, err = verifier.VerifyEvalMulti(make([]fr.Element, 2), make([]fr.Element, 2), make([]Commitment, 2), make([]Witness, 1))
	require.ErrorIs(t, err, ErrInvalidNumProofs)
}

func TestVerifyEvalMultiPar(t *testing.T) {
	srs, err := Setup(randomScalar(t), 8)
	require.NoError(t, err)

	prover := NewProver(srs)
	verifier := NewVerifier(srs)

	poly := NewPolynomial(randomScalars(t, 8))
	commitment, err := prover.Commit(poly)
	require.NoError(t, err)

	numProofs := 8
	xs := make([]fr.Element, numProofs)
	ys := make([]fr.Element, numProofs)
	commitments := make([]Commitment, numProofs)
	witnesses := make([]Witness, numProofs)
	for i := 0; i < numProofs; i++ {
		xs[i] = randomScalar(t)
		ys[i] = poly.Evaluate(xs[i])

		witness, err := prover.CreateWitness(xs[i], ys[i])
		require.NoError(t, err)

		commitments[i] = *commitment
		witnesses[i] = *witness
	}

	ok, err := verifier.VerifyEvalMultiPar(xs, ys, commitments, witnesses)
	require.NoError(t, err)
	require.True(t, ok)

	ys[0].Add(&ys[0], new(fr.Element).SetOne())
	ok, err = verifier.VerifyEvalMultiPar(xs, ys, commitments, witnesses)
	require.NoError(t, err)
	require.False(t, ok)
}
