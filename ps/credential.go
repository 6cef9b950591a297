package ps

import (
	"fmt"

	"github.com/elpasso/ps-core/curve"
	"github.com/elpasso/ps-core/wire"
)

// Credential is a PS signature (σ₁, σ₂) over an attribute vector.
type Credential struct {
	Sigma1 curve.G1
	Sigma2 curve.G1
}

// ToWire converts c to its wire-level field layout.
func (c Credential) ToWire() wire.Credential {
	return wire.Credential{Sigma1: c.Sigma1, Sigma2: c.Sigma2}
}

// CredentialFromWire rebuilds a Credential from its wire layout.
func CredentialFromWire(w wire.Credential) Credential {
	return Credential{Sigma1: w.Sigma1, Sigma2: w.Sigma2}
}

// Randomize returns a fresh, unlinkable credential for the same attribute
// vector: (r·σ₁, r·σ₂) for a random nonzero r. The PS signing equation is
// homogeneous in σ₁, so this preserves validity while destroying any
// value that could link the randomized credential back to the one the
// IdP issued.
func (c Credential) Randomize(r curve.Scalar) Credential {
	return Credential{Sigma1: c.Sigma1.ScalarMul(r), Sigma2: c.Sigma2.ScalarMul(r)}
}

// KValue computes k = X̃ + Σ mᵢ·Ỹᵢ for the given public key and attribute
// scalars, the G2 aggregate Verify and the ProveID statement both check
// the credential against.
func KValue(pk PublicKey, scalars []curve.Scalar) curve.G2 {
	k := pk.XTilde
	for i, m := range scalars {
		k = k.Add(pk.YTilde[i].ScalarMul(m))
	}
	return k
}

// Sign issues a credential directly (no blinding) over a fully known
// attribute vector: σ₁ = u·g for random nonzero u, σ₂ = σ₁·(x + Σ yᵢ·mᵢ).
// signer.ProvideID builds on the same exponent arithmetic for the blind
// variant, where σ₂ is instead built from the requester's blinded
// commitment.
func Sign(sk SecretKey, attrs AttributeVector) (Credential, error) {
	if len(attrs) != sk.NumAttributes() {
		return Credential{}, fmt.Errorf("%w: key has %d slots, attrs has %d", ErrAttributeCountMismatch, sk.NumAttributes(), len(attrs))
	}
	u, err := curve.RandomNonZeroScalar()
	if err != nil {
		return Credential{}, fmt.Errorf("%w: %v", ErrRandomnessUnavailable, err)
	}
	exponent := sk.X
	for i, m := range attrs.Scalars() {
		exponent = exponent.Add(sk.Ys[i].Mul(m))
	}
	sigma1 := curve.G1Generator().ScalarMul(u)
	sigma2 := sigma1.ScalarMul(exponent)
	return Credential{Sigma1: sigma1, Sigma2: sigma2}, nil
}

// Verify checks c against pk and a fully disclosed attribute vector. It
// is the plaintext verification every ZK presentation ultimately reduces
// its k-equation check to, and it is also the check a holder runs right
// after unblinding to confirm the IdP issued a valid credential.
func (c Credential) Verify(pk PublicKey, attrs AttributeVector) (bool, error) {
	if len(attrs) != pk.NumAttributes() {
		return false, fmt.Errorf("%w: key has %d slots, attrs has %d", ErrAttributeCountMismatch, pk.NumAttributes(), len(attrs))
	}
	if c.Sigma1.IsZero() {
		return false, fmt.Errorf("%w: credential σ₁ is the identity element", ErrMalformedInput)
	}
	k := KValue(pk, attrs.Scalars())
	ok, err := curve.CredentialEquationHolds(c.Sigma1, k, c.Sigma2)
	if err != nil {
		return false, err
	}
	return ok, nil
}
