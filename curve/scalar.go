package curve

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// ScalarSize is the canonical serialized width of an Fr element.
const ScalarSize = fr.Bytes

// Scalar wraps an element of Fr, the scalar field of the BLS12-381 curve.
// The zero value is the additive identity (0).
type Scalar struct {
	inner fr.Element
}

// RandomScalar draws a uniformly random, cryptographically secure element
// of Fr. It fails loudly (ErrRandomnessUnavailable) if the source is
// unavailable, per the protocol's randomness-failure rule.
func RandomScalar() (Scalar, error) {
	var e fr.Element
	if _, err := e.SetRandom(); err != nil {
		return Scalar{}, fmt.Errorf("%w: %v", ErrRandomnessUnavailable, err)
	}
	return Scalar{inner: e}, nil
}

// RandomNonZeroScalar draws a uniformly random nonzero element of Fr, as
// required by Randomize and ProveID's re-randomization factor r.
func RandomNonZeroScalar() (Scalar, error) {
	for {
		s, err := RandomScalar()
		if err != nil {
			return Scalar{}, err
		}
		if !s.IsZero() {
			return s, nil
		}
	}
}

// ScalarFromUint64 builds a scalar from a small non-negative integer.
// Used for constants such as the multiplier in challenge arithmetic tests.
func ScalarFromUint64(v uint64) Scalar {
	var e fr.Element
	e.SetUint64(v)
	return Scalar{inner: e}
}

// ScalarFromBigInt reduces an arbitrary integer modulo the field order.
func ScalarFromBigInt(v *big.Int) Scalar {
	var e fr.Element
	e.SetBigInt(v)
	return Scalar{inner: e}
}

// ScalarFromBytes decodes a canonical, fixed-width (ScalarSize-byte)
// big-endian encoding of an Fr element.
func ScalarFromBytes(b []byte) (Scalar, error) {
	if len(b) != ScalarSize {
		return Scalar{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrMalformedScalar, ScalarSize, len(b))
	}
	var e fr.Element
	e.SetBytes(b)
	return Scalar{inner: e}, nil
}

// Bytes returns the canonical big-endian encoding of the scalar.
func (s Scalar) Bytes() []byte {
	b := s.inner.Bytes()
	return b[:]
}

// IsZero reports whether the scalar is the additive identity.
func (s Scalar) IsZero() bool {
	return s.inner.IsZero()
}

// Equal reports whether two scalars are the same field element.
func (s Scalar) Equal(o Scalar) bool {
	return s.inner.Equal(&o.inner)
}

// Add returns s + o.
func (s Scalar) Add(o Scalar) Scalar {
	var r fr.Element
	r.Add(&s.inner, &o.inner)
	return Scalar{inner: r}
}

// Sub returns s - o.
func (s Scalar) Sub(o Scalar) Scalar {
	var r fr.Element
	r.Sub(&s.inner, &o.inner)
	return Scalar{inner: r}
}

// Mul returns s * o.
func (s Scalar) Mul(o Scalar) Scalar {
	var r fr.Element
	r.Mul(&s.inner, &o.inner)
	return Scalar{inner: r}
}

// Neg returns -s.
func (s Scalar) Neg() Scalar {
	var r fr.Element
	r.Neg(&s.inner)
	return Scalar{inner: r}
}

// BigInt returns the scalar as a non-negative integer in [0, r).
func (s Scalar) BigInt() *big.Int {
	out := new(big.Int)
	s.inner.BigInt(out)
	return out
}
