package kzg

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

const benchNumCoeffs = 1024

func benchSetup(b *testing.B) *SRS {
	b.Helper()
	var secret fr.Element
	if _, err := secret.SetRandom(); err != nil {
		b.Fatal(err)
	}
	srs, err := Setup(secret, benchNumCoeffs)
	if err != nil {
		b.Fatal(err)
	}
	return srs
}

func benchScalars(b *testing.B, n int) []fr.Element {
	b.Helper()
	res := make([]fr.Element, n)
	for i := range res {
		if _, err := res[i].SetRandom(); err != nil {
			b.Fatal(err)
		}
	}
	return res
}

func BenchmarkCommitCoeffForm(b *testing.B) {
	srs := benchSetup(b)
	poly := NewPolynomial(benchScalars(b, benchNumCoeffs))
	prover := NewProver(srs)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := prover.Commit(poly); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCreateWitnessCoeffForm(b *testing.B) {
	srs := benchSetup(b)
	poly := NewPolynomial(benchScalars(b, benchNumCoeffs))
	prover := NewProver(srs)
	if _, err := prover.Commit(poly); err != nil {
		b.Fatal(err)
	}

	var x fr.Element
	if _, err := x.SetRandom(); err != nil {
		b.Fatal(err)
	}
	y := poly.Evaluate(x)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// vary the point so the witness cache is never hit
		x.Add(&x, new(fr.Element).SetOne())
		y = poly.Evaluate(x)
		if _, err := prover.CreateWitness(x, y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCommitEvalForm(b *testing.B) {
	srs := benchSetup(b)

	ed, err := NewEvaluationDomainFromCoeffs(benchScalars(b, benchNumCoeffs))
	if err != nil {
		b.Fatal(err)
	}
	basis, err := ComputeLagrangeBasis(srs, ed.Domain())
	if err != nil {
		b.Fatal(err)
	}
	prover := NewEvalFormProver(srs, basis)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := prover.Commit(ed); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCreateWitnessEvalForm(b *testing.B) {
	srs := benchSetup(b)

	ed, err := NewEvaluationDomainFromCoeffs(benchScalars(b, benchNumCoeffs))
	if err != nil {
		b.Fatal(err)
	}
	basis, err := ComputeLagrangeBasis(srs, ed.Domain())
	if err != nil {
		b.Fatal(err)
	}
	prover := NewEvalFormProver(srs, basis)
	if _, err := prover.Commit(ed); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// vary the index so the witness cache is never hit
		index := uint64(i) % ed.Size()
		prover.witnesses[index] = nil
		if _, err := prover.CreateWitness(ed, index); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVerifyPolyCoeffForm(b *testing.B) {
	srs := benchSetup(b)
	poly := NewPolynomial(benchScalars(b, benchNumCoeffs))

	prover := NewProver(srs)
	verifier := NewVerifier(srs)

	commitment, err := prover.Commit(poly)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !verifier.VerifyPoly(commitment, poly) {
			b.Fatal("commitment does not verify")
		}
	}
}

func BenchmarkVerifyEval(b *testing.B) {
	srs := benchSetup(b)
	poly := NewPolynomial(benchScalars(b, benchNumCoeffs))

	prover := NewProver(srs)
	verifier := NewVerifier(srs)

	commitment, err := prover.Commit(poly)
	if err != nil {
		b.Fatal(err)
	}

	var x fr.Element
	if _, err := x.SetRandom(); err != nil {
		b.Fatal(err)
	}
	y := poly.Evaluate(x)
	witness, err := prover.CreateWitness(x, y)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !verifier.VerifyEval(x, y, commitment, witness) {
			b.Fatal("proof does not verify")
		}
	}
}
