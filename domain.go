package kzg

import (
	"math/big"
	"math/bits"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Domain is a multiplicative subgroup of the scalar field whose order is a
// power of two. Polynomials can be represented by their values on the
// subgroup's roots of unity instead of by coefficients.
type Domain struct {
	Cardinality    uint64
	CardinalityInv fr.Element
	// Generator for the multiplicative subgroup
	// Not the primitive generator for the field
	Generator    fr.Element
	GeneratorInv fr.Element

	// Roots of unity for the multiplicative subgroup
	Roots []fr.Element

	// Precomputed inverses of the domain which
	// we will use to speed up the computation of
	// f(x)/g(x) where g(x) is a linear polynomial
	// which vanishes on a point on the domain
	PreComputedInverses []fr.Element
}

// NewDomain returns the smallest domain whose cardinality is a power of two
// and at least m. Returns ErrDomainTooLarge when the scalar field has no
// root of unity of the required order; for BLS12-381 the largest two-adic
// subgroup has order 2^32.
func NewDomain(m uint64) (*Domain, error) {
	domain := &Domain{}
	x := ecc.NextPowerOfTwo(m)
	domain.Cardinality = x

	// Generator of the largest 2-adic subgroup
	var rootOfUnity fr.Element
	rootOfUnity.SetString("10238227357739495823651030575849232062558860180284477541189508159991286009131")
	const maxOrderRoot uint64 = 32

	// Find generator for Z/2^(log(m))Z
	logx := uint64(bits.TrailingZeros64(x))
	if logx > maxOrderRoot {
		return nil, ErrDomainTooLarge
	}

	// Generator = FinerGenerator^2 has order x
	expo := uint64(1 << (maxOrderRoot - logx))
	domain.Generator.Exp(rootOfUnity, big.NewInt(int64(expo))) // order x
	domain.GeneratorInv.Inverse(&domain.Generator)
	domain.CardinalityInv.SetUint64(x).Inverse(&domain.CardinalityInv)

	// Compute the roots of unity for the multiplicative subgroup
	domain.Roots = make([]fr.Element, x)
	current := fr.One()
	for i := uint64(0); i < x; i++ {
		domain.Roots[i] = current
		current.Mul(&current, &domain.Generator)
	}

	// Compute precomputed inverses: 1 / w^i
	domain.PreComputedInverses = fr.BatchInvert(domain.Roots)

	return domain, nil
}

// isInDomain returns true if the field element is a root in the domain.
func (d *Domain) isInDomain(point fr.Element) bool {
	return d.findRootIndex(point) != -1
}

// findRootIndex returns the index of the element in the domain or -1 if it
// is not an element in the domain.
func (d *Domain) findRootIndex(point fr.Element) int {
	for i := 0; i < int(d.Cardinality); i++ {
		if point.Equal(&d.Roots[i]) {
			return i
		}
	}
	return -1
}

// EvaluationDomain is a polynomial in evaluation form: a domain together
// with the polynomial's values at each root of the domain.
type EvaluationDomain struct {
	domain *Domain
	evals  []fr.Element
}

// NewEvaluationDomainFromCoeffs converts a polynomial from coefficient form
// to evaluation form. The coefficient vector is zero-padded to the next
// power of two; the forward transform then evaluates the polynomial over
// the whole domain.
func NewEvaluationDomainFromCoeffs(coeffs []fr.Element) (*EvaluationDomain, error) {
	if len(coeffs) == 0 {
		return nil, ErrDegreeTooLarge
	}

	domain, err := NewDomain(uint64(len(coeffs)))
	if err != nil {
		return nil, err
	}

	padded := make([]fr.Element, domain.Cardinality)
	copy(padded, coeffs)

	return &EvaluationDomain{
		domain: domain,
		evals:  domain.FftFr(padded),
	}, nil
}

// NewEvaluationDomainFromEvals wraps values that are already given
// pointwise over a domain of size len(evals), which must be a power of two.
func NewEvaluationDomainFromEvals(evals []fr.Element) (*EvaluationDomain, error) {
	domain, err := NewDomain(uint64(len(evals)))
	if err != nil {
		return nil, err
	}
	if domain.Cardinality != uint64(len(evals)) {
		return nil, ErrMismatchedSizeDomain
	}

	values := make([]fr.Element, len(evals))
	copy(values, evals)

	return &EvaluationDomain{domain: domain, evals: values}, nil
}

// Size returns the cardinality of the underlying domain.
func (ed *EvaluationDomain) Size() uint64 {
	return ed.domain.Cardinality
}

// Domain returns the underlying root-of-unity domain.
func (ed *EvaluationDomain) Domain() *Domain {
	return ed.domain
}

// Evaluations returns the polynomial's values over the domain, in root
// order. The slice is shared, not copied.
func (ed *EvaluationDomain) Evaluations() []fr.Element {
	return ed.evals
}

// Coeffs recovers the coefficient form via the inverse transform. The
// round trip through NewEvaluationDomainFromCoeffs and Coeffs is exact.
func (ed *EvaluationDomain) Coeffs() []fr.Element {
	return ed.domain.IfftFr(ed.evals)
}
