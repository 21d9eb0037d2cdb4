package utils

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Computes x^0 to x^n-1
// If n==0: an empty slice is returned
func ComputePowers(x fr.Element, n uint) []fr.Element {
	if n == 0 {
		return []fr.Element{}
	}

	powers := make([]fr.Element, n)
	powers[0].SetOne()
	for i := uint(1); i < n; i++ {
		powers[i].Mul(&powers[i-1], &x)
	}

	return powers
}

// Return true if `value` is a power of two
// `0` will return false
func IsPowerOfTwo(value uint64) bool {
	return value > 0 && (value&(value-1) == 0)
}
