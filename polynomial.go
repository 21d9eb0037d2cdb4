package kzg

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Polynomial is a dense polynomial over the scalar field of BLS12-381.
// coeffs[i] is the coefficient of X^i. Coefficients past the last non-zero
// entry are implicitly zero, so a Polynomial may carry trailing zeros
// without changing its meaning.
type Polynomial struct {
	coeffs []fr.Element
}

// NewPolynomial constructs a polynomial from its coefficient vector.
// The slice is copied; the zero-length slice yields the zero polynomial.
func NewPolynomial(coeffs []fr.Element) Polynomial {
	if len(coeffs) == 0 {
		return Polynomial{coeffs: make([]fr.Element, 1)}
	}
	c := make([]fr.Element, len(coeffs))
	copy(c, coeffs)
	return Polynomial{coeffs: c}
}

// Coefficients returns a copy of the coefficient vector, trailing zeros
// included.
func (p Polynomial) Coefficients() []fr.Element {
	c := make([]fr.Element, len(p.coeffs))
	copy(c, p.coeffs)
	return c
}

// Degree returns the index of the highest non-zero coefficient.
// The zero polynomial has degree -1.
func (p Polynomial) Degree() int {
	for d := len(p.coeffs) - 1; d >= 0; d-- {
		if !p.coeffs[d].IsZero() {
			return d
		}
	}
	return -1
}

// IsZero returns true if every coefficient is zero.
func (p Polynomial) IsZero() bool {
	return p.Degree() == -1
}

// Clone returns a deep copy of the polynomial.
func (p Polynomial) Clone() Polynomial {
	return NewPolynomial(p.coeffs)
}

// Equal reports whether two polynomials agree on every coefficient.
// Trailing zeros are ignored, so representations of different capacity
// can still be equal.
func (p Polynomial) Equal(q Polynomial) bool {
	dp, dq := p.Degree(), q.Degree()
	if dp != dq {
		return false
	}
	for i := 0; i <= dp; i++ {
		if !p.coeffs[i].Equal(&q.coeffs[i]) {
			return false
		}
	}
	return true
}

// Evaluate computes p(x) using Horner's method.
func (p Polynomial) Evaluate(x fr.Element) fr.Element {
	var result fr.Element
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		result.Mul(&result, &x)
		result.Add(&result, &p.coeffs[i])
	}
	return result
}

// Sub returns p - q. The result has the capacity of the larger operand.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	coeffs := make([]fr.Element, n)
	for i := range coeffs {
		if i < len(p.coeffs) {
			coeffs[i] = p.coeffs[i]
		}
		if i < len(q.coeffs) {
			coeffs[i].Sub(&coeffs[i], &q.coeffs[i])
		}
	}
	return Polynomial{coeffs: coeffs}
}

// LongDivision divides p by divisor, returning the quotient and the
// remainder. The remainder is nil when the division is exact; by the
// polynomial remainder theorem this is how a prover detects whether a
// claimed evaluation lies on the polynomial.
// Returns ErrDivisorIsZero if the divisor is the zero polynomial.
func (p Polynomial) LongDivision(divisor Polynomial) (Polynomial, *Polynomial, error) {
	dDeg := divisor.Degree()
	if dDeg < 0 {
		return Polynomial{}, nil, ErrDivisorIsZero
	}

	nDeg := p.Degree()
	if nDeg < dDeg {
		// The quotient is zero and p itself is the remainder.
		quotient := NewPolynomial(nil)
		if p.IsZero() {
			return quotient, nil, nil
		}
		remainder := p.Clone()
		return quotient, &remainder, nil
	}

	rem := make([]fr.Element, nDeg+1)
	copy(rem, p.coeffs[:nDeg+1])
	quot := make([]fr.Element, nDeg-dDeg+1)

	var leadInv fr.Element
	leadInv.Inverse(&divisor.coeffs[dDeg])

	for i := nDeg; i >= dDeg; i-- {
		if rem[i].IsZero() {
			continue
		}
		var factor fr.Element
		factor.Mul(&rem[i], &leadInv)
		quot[i-dDeg] = factor
		for j := 0; j <= dDeg; j++ {
			var t fr.Element
			t.Mul(&factor, &divisor.coeffs[j])
			rem[i-dDeg+j].Sub(&rem[i-dDeg+j], &t)
		}
	}

	quotient := Polynomial{coeffs: quot}
	remainder := Polynomial{coeffs: rem[:dDeg]}
	if dDeg == 0 || remainder.IsZero() {
		return quotient, nil, nil
	}
	return quotient, &remainder, nil
}

// linearPolynomial returns X - x, the divisor used for single-point
// witnesses.
func linearPolynomial(x fr.Element) Polynomial {
	coeffs := make([]fr.Element, 2)
	coeffs[0].Neg(&x)
	coeffs[1].SetOne()
	return Polynomial{coeffs: coeffs}
}

// vanishingPolynomial returns Z(X) = (X - points[0])...(X - points[k-1]),
// the polynomial which is zero exactly on the point set.
func vanishingPolynomial(points []fr.Element) Polynomial {
	coeffs := make([]fr.Element, 1, len(points)+1)
	coeffs[0].SetOne()
	for _, x := range points {
		coeffs = mulByLinear(coeffs, x)
	}
	return Polynomial{coeffs: coeffs}
}

// mulByLinear multiplies the coefficient vector by (X - x).
func mulByLinear(coeffs []fr.Element, x fr.Element) []fr.Element {
	out := make([]fr.Element, len(coeffs)+1)
	for i := range coeffs {
		var t fr.Element
		t.Mul(&coeffs[i], &x)
		out[i].Sub(&out[i], &t)
		out[i+1].Add(&out[i+1], &coeffs[i])
	}
	return out
}

// divideByLinear divides the coefficient vector by (X - x) using synthetic
// division, returning the quotient and the remainder p(x).
func divideByLinear(coeffs []fr.Element, x fr.Element) ([]fr.Element, fr.Element) {
	n := len(coeffs)
	quotient := make([]fr.Element, n-1)
	carry := coeffs[n-1]
	for i := n - 2; i >= 0; i-- {
		quotient[i] = carry
		carry.Mul(&carry, &x)
		carry.Add(&carry, &coeffs[i])
	}
	return quotient, carry
}

// Interpolate returns the unique polynomial of degree < len(points) passing
// through every (points[i], values[i]) pair.
// Returns ErrInvalidPointSet if the slices differ in length and
// ErrDuplicatePoints if any point appears twice.
func Interpolate(points, values []fr.Element) (Polynomial, error) {
	if len(points) != len(values) {
		return Polynomial{}, ErrInvalidPointSet
	}
	if len(points) == 0 {
		return NewPolynomial(nil), nil
	}
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if points[i].Equal(&points[j]) {
				return Polynomial{}, ErrDuplicatePoints
			}
		}
	}

	z := vanishingPolynomial(points)

	// For each k, N_k(X) = Z(X)/(X - x_k) vanishes on every point but x_k.
	// The interpolant is the sum of y_k * N_k(X)/N_k(x_k).
	numerators := make([][]fr.Element, len(points))
	denominators := make([]fr.Element, len(points))
	for k := range points {
		q, _ := divideByLinear(z.coeffs, points[k])
		numerators[k] = q
		denominators[k] = NewPolynomial(q).Evaluate(points[k])
	}
	invDenominators := fr.BatchInvert(denominators)

	coeffs := make([]fr.Element, len(points))
	for k := range points {
		var scale fr.Element
		scale.Mul(&values[k], &invDenominators[k])
		for i := range numerators[k] {
			var t fr.Element
			t.Mul(&numerators[k][i], &scale)
			coeffs[i].Add(&coeffs[i], &t)
		}
	}
	return Polynomial{coeffs: coeffs}, nil
}
