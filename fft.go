package kzg

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// In this file we implement a simple radix-2 version of the fft algorithm
// over the scalar field and over G1.
// See: https://faculty.sites.iastate.edu/jia/files/inline-files/polymultiply.pdf
// for a reference.
//
// The G1 variants are only needed to compute the Lagrange basis from the
// monomial SRS, which is done once per setup, so they are not optimized.

// FftFr evaluates the polynomial with the given coefficients over the
// domain. len(values) must equal the domain's cardinality.
func (d *Domain) FftFr(values []fr.Element) []fr.Element {
	return fftFr(values, d.Generator)
}

// IfftFr interpolates the coefficients of the polynomial taking the given
// values over the domain. len(values) must equal the domain's cardinality.
func (d *Domain) IfftFr(values []fr.Element) []fr.Element {
	inverseFFT := fftFr(values, d.GeneratorInv)

	// scale by the inverse of the domain size
	for i := 0; i < len(inverseFFT); i++ {
		inverseFFT[i].Mul(&inverseFFT[i], &d.CardinalityInv)
	}
	return inverseFFT
}

// FftG1 is the forward transform over G1 points; scalar multiplications
// replace field multiplications, additions replace additions.
func (d *Domain) FftG1(values []bls12381.G1Affine) []bls12381.G1Affine {
	return fftG1(values, d.Generator)
}

// IfftG1 is the inverse transform over G1 points.
func (d *Domain) IfftG1(values []bls12381.G1Affine) []bls12381.G1Affine {
	var invCardinalityBI big.Int
	d.CardinalityInv.BigInt(&invCardinalityBI)

	inverseFFT := fftG1(values, d.GeneratorInv)

	// scale by the inverse of the domain size
	for i := 0; i < len(inverseFFT); i++ {
		inverseFFT[i].ScalarMultiplication(&inverseFFT[i], &invCardinalityBI)
	}
	return inverseFFT
}

func fftFr(values []fr.Element, nthRootOfUnity fr.Element) []fr.Element {
	n := len(values)
	if n == 1 {
		return values
	}

	var generatorSquared fr.Element
	generatorSquared.Square(&nthRootOfUnity) // generator with order n/2

	even, odd := takeEvenOdd(values)

	fftEven := fftFr(even, generatorSquared)
	fftOdd := fftFr(odd, generatorSquared)

	inputPoint := fr.One()
	evaluations := make([]fr.Element, n)
	for k := 0; k < n/2; k++ {
		var tmp fr.Element
		tmp.Mul(&inputPoint, &fftOdd[k])

		evaluations[k].Add(&fftEven[k], &tmp)
		evaluations[k+n/2].Sub(&fftEven[k], &tmp)

		inputPoint.Mul(&inputPoint, &nthRootOfUnity)
	}
	return evaluations
}

func fftG1(values []bls12381.G1Affine, nthRootOfUnity fr.Element) []bls12381.G1Affine {
	n := len(values)
	if n == 1 {
		return values
	}

	var generatorSquared fr.Element
	generatorSquared.Square(&nthRootOfUnity) // generator with order n/2

	even, odd := takeEvenOdd(values)

	fftEven := fftG1(even, generatorSquared)
	fftOdd := fftG1(odd, generatorSquared)

	inputPoint := fr.One()
	evaluations := make([]bls12381.G1Affine, n)
	for k := 0; k < n/2; k++ {
		var tmp bls12381.G1Affine

		var inputPointBI big.Int
		inputPoint.BigInt(&inputPointBI)

		if inputPoint.IsOne() {
			tmp.Set(&fftOdd[k])
		} else {
			tmp.ScalarMultiplication(&fftOdd[k], &inputPointBI)
		}

		evaluations[k].Add(&fftEven[k], &tmp)
		evaluations[k+n/2].Sub(&fftEven[k], &tmp)

		inputPoint.Mul(&inputPoint, &nthRootOfUnity)
	}
	return evaluations
}

// takeEvenOdd takes a slice and returns two slices: the first contains a
// copy of the elements at even indices, the second a copy of the elements
// at odd indices.
//
// We assume that the length of the given slice is even so the returned
// slices have the same length. This is the case for a radix-2 FFT.
func takeEvenOdd[T any](values []T) ([]T, []T) {
	n := len(values)
	even := make([]T, 0, n/2)
	odd := make([]T, 0, n/2)
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			even = append(even, values[i])
		} else {
			odd = append(odd, values[i])
		}
	}
	return even, odd
}
