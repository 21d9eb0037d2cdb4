package kzg

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/polycommit/go-kzg/internal/multiexp"
)

// EvalFormProver commits to polynomials given in evaluation form: values
// over a fixed domain of roots of unity rather than coefficients.
//
// Committing is a multi exponentiation of the values against a precomputed
// Lagrange basis, which is algebraically identical to the coefficient-form
// commitment of the interpolating polynomial but never materializes the
// coefficients. This is the cheaper path when the data is already given
// pointwise.
//
// Like Prover, an EvalFormProver owns mutable state and must not be shared
// between goroutines without external synchronization.
type EvalFormProver struct {
	srs   *SRS
	basis []bls12381.G1Affine

	commitment *Commitment

	// Witnesses produced for the currently committed values, one slot per
	// domain index. Cleared on every Commit.
	witnesses []*Witness
}

// NewEvalFormProver returns a prover for a fixed domain size, given the
// basis produced by ComputeLagrangeBasis for that domain.
func NewEvalFormProver(srs *SRS, basis []bls12381.G1Affine) *EvalFormProver {
	return &EvalFormProver{
		srs:       srs,
		basis:     basis,
		witnesses: make([]*Witness, len(basis)),
	}
}

// Commit computes C = sum_i values[i] * [L_i(α)]G₁, the commitment to the
// unique polynomial of degree < N interpolating the values over the domain.
func (p *EvalFormProver) Commit(ed *EvaluationDomain) (*Commitment, error) {
	if ed.Size() != uint64(len(p.basis)) {
		return nil, ErrMismatchedSizeDomain
	}

	commitment, err := multiexp.MultiExp(ed.evals, p.basis, 0)
	if err != nil {
		return nil, err
	}

	p.commitment = commitment
	p.witnesses = make([]*Witness, len(p.basis))

	return commitment, nil
}

// Commitment returns the last commitment, or ErrNoPolynomial if Commit has
// not been called.
func (p *EvalFormProver) Commitment() (*Commitment, error) {
	if p.commitment == nil {
		return nil, ErrNoPolynomial
	}
	return p.commitment, nil
}

// CreateWitness produces a witness for the claim that the interpolated
// polynomial takes the value ed.Evaluations()[index] at the index-th
// domain point.
//
// The quotient (p(X) - y)/(X - ωᵐ) is computed directly in evaluation
// form, so no coefficient-space division is needed, and committed against
// the Lagrange basis. The claimed value is read from the domain itself,
// so unlike the coefficient-form prover there is no mismatched-value
// failure mode here.
//
// Witnesses are cached per index until the next Commit.
func (p *EvalFormProver) CreateWitness(ed *EvaluationDomain, index uint64) (*Witness, error) {
	if p.commitment == nil {
		return nil, ErrNoPolynomial
	}
	if ed.Size() != uint64(len(p.basis)) {
		return nil, ErrMismatchedSizeDomain
	}
	if index >= ed.Size() {
		return nil, ErrIndexOutsideDomain
	}

	if w := p.witnesses[index]; w != nil {
		return w, nil
	}

	quotient := divideOnDomain(ed.domain, ed.evals, index)

	witness, err := multiexp.MultiExp(quotient, p.basis, 0)
	if err != nil {
		return nil, err
	}

	p.witnesses[index] = witness
	return witness, nil
}

// divideOnDomain computes the evaluations of (f(X) - f(ωᵐ))/(X - ωᵐ) over
// the domain, where m = index.
//
// At every root but ωᵐ the quotient is a plain field division. At ωᵐ
// itself both numerator and denominator vanish; the removable singularity
// works out to
//
//	q_m = sum_{j != m} -q_j * ω^(j-m)
//
// using the fact that the roots sum to zero.
func divideOnDomain(domain *Domain, f []fr.Element, index uint64) []fr.Element {
	y := f[index]
	z := domain.Roots[index]
	invZ := domain.PreComputedInverses[index]

	rootsMinusZ := make([]fr.Element, domain.Cardinality)
	for i := 0; i < int(domain.Cardinality); i++ {
		rootsMinusZ[i].Sub(&domain.Roots[i], &z)
	}
	invRootsMinusZ := fr.BatchInvert(rootsMinusZ)

	quotient := make([]fr.Element, domain.Cardinality)
	for j := 0; j < int(domain.Cardinality); j++ {
		if uint64(j) == index {
			continue
		}

		// q_j = (f_j - y) / (ω^j - ω^m)
		var qj fr.Element
		qj.Sub(&f[j], &y)
		qj.Mul(&qj, &invRootsMinusZ[j])
		quotient[j] = qj

		// q_m accumulates -q_j * ω^(j-m)
		var qmj fr.Element
		qmj.Neg(&qj)
		qmj.Mul(&qmj, &domain.Roots[j])
		qmj.Mul(&qmj, &invZ)

		quotient[index].Add(&quotient[index], &qmj)
	}

	return quotient
}
