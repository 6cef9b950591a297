package ps

import (
	"fmt"

	"github.com/elpasso/ps-core/curve"
	"github.com/elpasso/ps-core/wire"
)

// SecretKey is an IdP's PS signing key: x and one yᵢ per attribute slot,
// plus the two generators (g, g̃) the key was derived under.
type SecretKey struct {
	X      curve.Scalar
	Ys     []curve.Scalar
	G      curve.G1
	GTilde curve.G2
}

// NumAttributes returns the number of attribute slots this key signs
// over.
func (sk SecretKey) NumAttributes() int { return len(sk.Ys) }

// PublicKey derives the IdP's public key from sk.
func (sk SecretKey) PublicKey() PublicKey {
	g := sk.G
	gTilde := sk.GTilde
	y := make([]curve.G1, len(sk.Ys))
	yTilde := make([]curve.G2, len(sk.Ys))
	for i, yi := range sk.Ys {
		y[i] = g.ScalarMul(yi)
		yTilde[i] = gTilde.ScalarMul(yi)
	}
	return PublicKey{
		G:      g,
		GTilde: gTilde,
		XTilde: gTilde.ScalarMul(sk.X),
		Y:      y,
		YTilde: yTilde,
	}
}

// PublicKey is an IdP's PS public key: the shared bases g, g̃, plus X̃
// and one (Yᵢ, Ỹᵢ) pair per attribute slot.
type PublicKey struct {
	G      curve.G1
	GTilde curve.G2
	XTilde curve.G2
	Y      []curve.G1
	YTilde []curve.G2
}

// NumAttributes returns the number of attribute slots this key signs
// over.
func (pk PublicKey) NumAttributes() int { return len(pk.Y) }

// Validate checks pk's internal shape invariants: Y and Ỹ must have the
// same, nonzero length, and none of the public points may be the
// identity (an identity base would let any message satisfy the signing
// equation trivially in that slot).
func (pk PublicKey) Validate() error {
	if len(pk.Y) == 0 {
		return fmt.Errorf("%w: public key declares zero attribute slots", ErrMalformedInput)
	}
	if len(pk.Y) != len(pk.YTilde) {
		return fmt.Errorf("%w: Y has %d entries, Ỹ has %d", ErrMalformedInput, len(pk.Y), len(pk.YTilde))
	}
	if pk.G.IsZero() || pk.GTilde.IsZero() || pk.XTilde.IsZero() {
		return fmt.Errorf("%w: public key base is the identity element", ErrMalformedInput)
	}
	for i := range pk.Y {
		if pk.Y[i].IsZero() || pk.YTilde[i].IsZero() {
			return fmt.Errorf("%w: attribute base %d is the identity element", ErrMalformedInput, i)
		}
	}
	return nil
}

// ToWire converts pk to its wire-level field layout.
func (pk PublicKey) ToWire() wire.PublicKey {
	return wire.PublicKey{
		G:      pk.G,
		GTilde: pk.GTilde,
		XTilde: pk.XTilde,
		Y:      pk.Y,
		YTilde: pk.YTilde,
	}
}

// PublicKeyFromWire rebuilds and validates a PublicKey from its wire
// layout.
func PublicKeyFromWire(w wire.PublicKey) (PublicKey, error) {
	pk := PublicKey{G: w.G, GTilde: w.GTilde, XTilde: w.XTilde, Y: w.Y, YTilde: w.YTilde}
	if err := pk.Validate(); err != nil {
		return PublicKey{}, err
	}
	return pk, nil
}

// KeyGen generates a fresh IdP key pair over numAttributes attribute
// slots, using the curve's agreed default generators.
func KeyGen(numAttributes int) (SecretKey, PublicKey, error) {
	return KeyGenWithGenerators(numAttributes, curve.G1Generator(), curve.G2Generator())
}

// KeyGenWithGenerators is KeyGen with caller-supplied (g, g̃), for
// deployments where every party must agree on bases out of band instead
// of relying on the curve library's defaults.
func KeyGenWithGenerators(numAttributes int, g curve.G1, gTilde curve.G2) (SecretKey, PublicKey, error) {
	if numAttributes <= 0 {
		return SecretKey{}, PublicKey{}, fmt.Errorf("%w: numAttributes must be positive, got %d", ErrMalformedInput, numAttributes)
	}
	if g.IsZero() || gTilde.IsZero() {
		return SecretKey{}, PublicKey{}, fmt.Errorf("%w: generators must not be the identity element", ErrMalformedInput)
	}
	x, err := curve.RandomNonZeroScalar()
	if err != nil {
		return SecretKey{}, PublicKey{}, fmt.Errorf("%w: %v", ErrRandomnessUnavailable, err)
	}
	ys := make([]curve.Scalar, numAttributes)
	for i := range ys {
		yi, err := curve.RandomNonZeroScalar()
		if err != nil {
			return SecretKey{}, PublicKey{}, fmt.Errorf("%w: %v", ErrRandomnessUnavailable, err)
		}
		ys[i] = yi
	}
	sk := SecretKey{X: x, Ys: ys, G: g, GTilde: gTilde}
	return sk, sk.PublicKey(), nil
}
