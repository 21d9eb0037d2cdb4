package kzg

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

// End-to-end scenarios expressed as data, in the same style as spec test
// vectors. Each case commits under a fresh setup and opens at one point;
// `valid: false` means the claimed value is off the polynomial and witness
// creation must be refused.
const openingVectors = `
cases:
  - name: linear polynomial, claim on curve
    secret: 5
    max_degree: 1
    coeffs: [3, 2]
    x: 1
    y: 5
    valid: true
  - name: linear polynomial, claim off curve
    secret: 5
    max_degree: 1
    coeffs: [3, 2]
    x: 1
    y: 6
    valid: false
  - name: constant polynomial
    secret: 1234
    max_degree: 4
    coeffs: [7]
    x: 99
    y: 7
    valid: true
  - name: cubic at zero
    secret: 42
    max_degree: 8
    coeffs: [11, 0, 0, 5]
    x: 0
    y: 11
    valid: true
  - name: cubic, off by one
    secret: 42
    max_degree: 8
    coeffs: [11, 0, 0, 5]
    x: 2
    y: 50
    valid: false
`

type openingVector struct {
	Name      string   `yaml:"name"`
	Secret    uint64   `yaml:"secret"`
	MaxDegree uint64   `yaml:"max_degree"`
	Coeffs    []uint64 `yaml:"coeffs"`
	X         uint64   `yaml:"x"`
	Y         uint64   `yaml:"y"`
	Valid     bool     `yaml:"valid"`
}

func TestOpeningVectors(t *testing.T) {
	var vectors struct {
		Cases []openingVector `yaml:"cases"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(openingVectors), &vectors))
	require.NotEmpty(t, vectors.Cases)

	for _, tc := range vectors.Cases {
		t.Run(tc.Name, func(t *testing.T) {
			srs, err := Setup(fr.NewElement(tc.Secret), tc.MaxDegree)
			require.NoError(t, err)

			coeffs := make([]fr.Element, len(tc.Coeffs))
			for i, c := range tc.Coeffs {
				coeffs[i] = fr.NewElement(c)
			}

			prover := NewProver(srs)
			verifier := NewVerifier(srs)

			commitment, err := prover.Commit(NewPolynomial(coeffs))
			require.NoError(t, err)

			x := fr.NewElement(tc.X)
			y := fr.NewElement(tc.Y)

			witness, err := prover.CreateWitness(x, y)
			if !tc.Valid {
				require.ErrorIs(t, err, ErrPointNotOnPolynomial)
				return
			}

			require.NoError(t, err)
			require.True(t, verifier.VerifyEval(x, y, commitment, witness))
		})
	}
}
