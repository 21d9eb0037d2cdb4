package kzg

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Prover commits to polynomials in coefficient form and opens them at
// chosen points.
//
// A Prover owns mutable state: the committed polynomial, its commitment,
// and a cache of previously produced witnesses. It must not be shared
// between goroutines without external synchronization, since Commit
// replaces the stored polynomial.
type Prover struct {
	srs *SRS

	polynomial *Polynomial
	commitment *Commitment

	// Witnesses produced for the currently committed polynomial, keyed by
	// the evaluation point. Entries are only valid for that polynomial, so
	// Commit clears the cache.
	witnesses    map[fr.Element]cachedWitness
	batchWitness *Witness
}

type cachedWitness struct {
	value   fr.Element
	witness Witness
}

// NewProver returns a prover with no committed polynomial.
func NewProver(srs *SRS) *Prover {
	return &Prover{
		srs:       srs,
		witnesses: make(map[fr.Element]cachedWitness),
	}
}

// Commit computes the commitment C = [p(α)]G₁ via a multi exponentiation
// of the coefficients against the SRS, stores the polynomial and the
// commitment, and returns the commitment.
//
// Committing a new polynomial invalidates every cached witness.
func (p *Prover) Commit(polynomial Polynomial) (*Commitment, error) {
	commitment, err := p.srs.commitG1(polynomial.coeffs)
	if err != nil {
		return nil, err
	}

	stored := polynomial.Clone()
	p.polynomial = &stored
	p.commitment = commitment
	p.witnesses = make(map[fr.Element]cachedWitness)
	p.batchWitness = nil

	return commitment, nil
}

// Open returns the stored polynomial, or ErrNoPolynomial if Commit has not
// been called.
func (p *Prover) Open() (Polynomial, error) {
	if p.polynomial == nil {
		return Polynomial{}, ErrNoPolynomial
	}
	return p.polynomial.Clone(), nil
}

// Commitment returns the commitment of the stored polynomial, or
// ErrNoPolynomial if Commit has not been called.
func (p *Prover) Commitment() (*Commitment, error) {
	if p.commitment == nil {
		return nil, ErrNoPolynomial
	}
	return p.commitment, nil
}

// CreateWitness produces a witness for the claim p(x) == y.
//
// By the polynomial remainder theorem, X - x divides p(X) - y exactly when
// the claim holds; the witness is the commitment to the quotient
// ψ(X) = (p(X) - y)/(X - x). A nonzero remainder means the claim is false
// and ErrPointNotOnPolynomial is returned.
//
// Witnesses are cached per evaluation point until the next Commit.
func (p *Prover) CreateWitness(x, y fr.Element) (*Witness, error) {
	if p.polynomial == nil {
		return nil, ErrNoPolynomial
	}

	if cached, ok := p.witnesses[x]; ok {
		if cached.value.Equal(&y) {
			w := cached.witness
			return &w, nil
		}
		// A witness exists for this point but for a different value, so
		// the claim cannot hold.
		return nil, ErrPointNotOnPolynomial
	}

	// dividend = p(X) - y
	dividend := p.polynomial.Clone()
	dividend.coeffs[0].Sub(&dividend.coeffs[0], &y)

	quotient, remainder, err := dividend.LongDivision(linearPolynomial(x))
	if err != nil {
		return nil, err
	}
	if remainder != nil {
		return nil, ErrPointNotOnPolynomial
	}

	witness, err := p.srs.commitG1(quotient.coeffs)
	if err != nil {
		return nil, err
	}

	p.witnesses[x] = cachedWitness{value: y, witness: *witness}
	return witness, nil
}

// CreateWitnessBatch produces a single aggregated witness for the claims
// p(points[i]) == values[i] over the whole point set.
//
// Let Z(X) be the vanishing polynomial of the point set and I(X) the
// interpolation of the claims. Z divides p - I exactly when every claim
// holds; the witness is the commitment to (p(X) - I(X))/Z(X). The result
// is verified with VerifyEvalBatch.
func (p *Prover) CreateWitnessBatch(points, values []fr.Element) (*Witness, error) {
	if p.polynomial == nil {
		return nil, ErrNoPolynomial
	}

	interpolant, err := Interpolate(points, values)
	if err != nil {
		return nil, err
	}

	dividend := p.polynomial.Sub(interpolant)
	quotient, remainder, err := dividend.LongDivision(vanishingPolynomial(points))
	if err != nil {
		return nil, err
	}
	if remainder != nil {
		return nil, ErrPointNotOnPolynomial
	}

	witness, err := p.srs.commitG1(quotient.coeffs)
	if err != nil {
		return nil, err
	}

	p.batchWitness = witness
	return witness, nil
}

// Verifier checks commitments and evaluation proofs. It holds only the SRS
// and is stateless across calls, so it is safe for concurrent use.
type Verifier struct {
	srs *SRS
}

// NewVerifier returns a verifier for proofs made under the given SRS.
func NewVerifier(srs *SRS) *Verifier {
	return &Verifier{srs: srs}
}

// VerifyPoly checks that the commitment opens to the given polynomial by
// recomputing the commitment. This is a full-reveal sanity check, not the
// succinct protocol.
func (v *Verifier) VerifyPoly(commitment *Commitment, polynomial Polynomial) bool {
	recomputed, err := v.srs.commitG1(polynomial.coeffs)
	if err != nil {
		return false
	}
	return recomputed.Equal(commitment)
}

// VerifyEval checks a witness for the claim p(x) == y against the
// commitment C, via the pairing identity
//
//	e(W, [α - x]G₂) == e(C - [y]G₁, G₂)
//
// which holds iff W commits to (p(X) - y)/(X - x). A failed check is a
// normal false return, never an error.
func (v *Verifier) VerifyEval(x, y fr.Element, commitment *Commitment, witness *Witness) bool {
	// [α - x]G₂
	var genG2Jac bls12381.G2Jac
	genG2Jac.FromAffine(&v.srs.GenG2)

	var xBigInt big.Int
	x.BigInt(&xBigInt)

	var xG2Jac bls12381.G2Jac
	xG2Jac.ScalarMultiplication(&genG2Jac, &xBigInt)

	var alphaMinusXG2Jac bls12381.G2Jac
	alphaMinusXG2Jac.FromAffine(v.srs.alphaG2())
	alphaMinusXG2Jac.SubAssign(&xG2Jac)

	var alphaMinusXG2Aff bls12381.G2Affine
	alphaMinusXG2Aff.FromJacobian(&alphaMinusXG2Jac)

	// C - [y]G₁
	var genG1Jac bls12381.G1Jac
	genG1Jac.FromAffine(&v.srs.GenG1)

	var yG1Jac bls12381.G1Jac
	var yBigInt big.Int
	y.BigInt(&yBigInt)
	yG1Jac.ScalarMultiplication(&genG1Jac, &yBigInt)

	var cMinusYG1Jac bls12381.G1Jac
	cMinusYG1Jac.FromAffine(commitment)
	cMinusYG1Jac.SubAssign(&yG1Jac)

	var cMinusYG1Aff bls12381.G1Affine
	cMinusYG1Aff.FromJacobian(&cMinusYG1Jac)

	// [-1]G₂. Negation is cheap, so computing it per verify is
	// insignificant compared to the pairings.
	var negG2 bls12381.G2Affine
	negG2.Neg(&v.srs.GenG2)

	// e(C - [y]G₁, -G₂) * e(W, [α - x]G₂) == 1
	check, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{cMinusYG1Aff, *witness},
		[]bls12381.G2Affine{negG2, alphaMinusXG2Aff},
	)
	return err == nil && check
}
