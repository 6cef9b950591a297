package curve

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// G1CompressedSize is the canonical compressed encoding width of a G1 point.
const G1CompressedSize = bls12381.SizeOfG1AffineCompressed

// G1 is a point in the first source group of the pairing, written
// additively per §3 of the specification.
type G1 struct {
	inner bls12381.G1Affine
}

// G1Generator returns the agreed base point g of G1.
func G1Generator() G1 {
	_, _, g1, _ := bls12381.Generators()
	return G1{inner: g1}
}

// G1Identity returns the identity element (point at infinity) of G1.
func G1Identity() G1 {
	return G1{}
}

// G1FromBytes decodes a compressed G1 point and checks subgroup membership.
func G1FromBytes(b []byte) (G1, error) {
	if len(b) != G1CompressedSize {
		return G1{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrMalformedPoint, G1CompressedSize, len(b))
	}
	var p bls12381.G1Affine
	var arr [bls12381.SizeOfG1AffineCompressed]byte
	copy(arr[:], b)
	if _, err := p.SetBytes(arr[:]); err != nil {
		return G1{}, fmt.Errorf("%w: %v", ErrMalformedPoint, err)
	}
	return G1{inner: p}, nil
}

// Bytes returns the canonical compressed encoding of p.
func (p G1) Bytes() []byte {
	b := p.inner.Bytes()
	return b[:]
}

// IsZero reports whether p is the identity of G1.
func (p G1) IsZero() bool {
	return p.inner.IsInfinity()
}

// Equal reports whether p and q are the same point.
func (p G1) Equal(q G1) bool {
	return p.inner.Equal(&q.inner)
}

// Add returns p + q.
func (p G1) Add(q G1) G1 {
	var r bls12381.G1Affine
	r.Add(&p.inner, &q.inner)
	return G1{inner: r}
}

// Neg returns -p.
func (p G1) Neg() G1 {
	var r bls12381.G1Affine
	r.Neg(&p.inner)
	return G1{inner: r}
}

// ScalarMul returns s*p.
func (p G1) ScalarMul(s Scalar) G1 {
	var r bls12381.G1Affine
	r.ScalarMultiplication(&p.inner, s.BigInt())
	return G1{inner: r}
}

// G1MultiScalarMul returns Σ sᵢ·pᵢ. The role packages do not call it;
// they accumulate their commitments term by term.
func G1MultiScalarMul(points []G1, scalars []Scalar) G1 {
	acc := G1Identity()
	for i := range points {
		acc = acc.Add(points[i].ScalarMul(scalars[i]))
	}
	return acc
}
