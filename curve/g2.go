package curve

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// G2CompressedSize is the canonical compressed encoding width of a G2 point.
const G2CompressedSize = bls12381.SizeOfG2AffineCompressed

// G2 is a point in the second source group of the pairing, written
// additively per §3 of the specification.
type G2 struct {
	inner bls12381.G2Affine
}

// G2Generator returns the agreed base point g̃ of G2.
func G2Generator() G2 {
	_, _, _, g2 := bls12381.Generators()
	return G2{inner: g2}
}

// G2Identity returns the identity element (point at infinity) of G2.
func G2Identity() G2 {
	return G2{}
}

// G2FromBytes decodes a compressed G2 point and checks subgroup membership.
func G2FromBytes(b []byte) (G2, error) {
	if len(b) != G2CompressedSize {
		return G2{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrMalformedPoint, G2CompressedSize, len(b))
	}
	var p bls12381.G2Affine
	var arr [bls12381.SizeOfG2AffineCompressed]byte
	copy(arr[:], b)
	if _, err := p.SetBytes(arr[:]); err != nil {
		return G2{}, fmt.Errorf("%w: %v", ErrMalformedPoint, err)
	}
	return G2{inner: p}, nil
}

// Bytes returns the canonical compressed encoding of p.
func (p G2) Bytes() []byte {
	b := p.inner.Bytes()
	return b[:]
}

// IsZero reports whether p is the identity of G2.
func (p G2) IsZero() bool {
	return p.inner.IsInfinity()
}

// Equal reports whether p and q are the same point.
func (p G2) Equal(q G2) bool {
	return p.inner.Equal(&q.inner)
}

// Add returns p + q.
func (p G2) Add(q G2) G2 {
	var r bls12381.G2Affine
	r.Add(&p.inner, &q.inner)
	return G2{inner: r}
}

// Neg returns -p.
func (p G2) Neg() G2 {
	var r bls12381.G2Affine
	r.Neg(&p.inner)
	return G2{inner: r}
}

// ScalarMul returns s*p.
func (p G2) ScalarMul(s Scalar) G2 {
	var r bls12381.G2Affine
	r.ScalarMultiplication(&p.inner, s.BigInt())
	return G2{inner: r}
}

// G2MultiScalarMul returns Σ sᵢ·pᵢ.
func G2MultiScalarMul(points []G2, scalars []Scalar) G2 {
	acc := G2Identity()
	for i := range points {
		acc = acc.Add(points[i].ScalarMul(scalars[i]))
	}
	return acc
}
