package escrow

import (
	"fmt"

	"github.com/elpasso/ps-core/curve"
)

// Params are the two system-wide G1 generators the escrow scheme is
// defined over: GH (the authority key's base) and H (the identity
// attribute's commitment base). They are nothing-up-my-sleeve points,
// derived once from fixed domain-separated labels rather than chosen by
// any single party, so no participant can claim a trapdoor relation
// between them.
type Params struct {
	GH curve.G1
	H  curve.G1
}

// SystemParams derives the fixed escrow generators. Every authority and
// every holder in a given deployment must agree on the same Params; since
// they are derived deterministically, any two parties who agree on the
// domain separator agree on Params for free.
func SystemParams() (Params, error) {
	gh, err := curve.HashToG1([]byte("escrow-generator-gh"), []byte(curve.DomainSeparator))
	if err != nil {
		return Params{}, err
	}
	h, err := curve.HashToG1([]byte("escrow-generator-h"), []byte(curve.DomainSeparator))
	if err != nil {
		return Params{}, err
	}
	return Params{GH: gh, H: h}, nil
}

// PrivateKey is an escrow authority's decryption key.
type PrivateKey struct {
	A curve.Scalar
}

// PublicKey is an escrow authority's encryption key: YAuth = a·GH.
type PublicKey struct {
	YAuth curve.G1
}

// GenerateAuthority generates a fresh escrow authority key pair under
// params.
func GenerateAuthority(params Params) (PrivateKey, PublicKey, error) {
	a, err := curve.RandomNonZeroScalar()
	if err != nil {
		return PrivateKey{}, PublicKey{}, fmt.Errorf("%w: %v", ErrRandomnessUnavailable, err)
	}
	return PrivateKey{A: a}, PublicKey{YAuth: params.GH.ScalarMul(a)}, nil
}

// Ciphertext is an ElGamal-over-G1 encryption of γ·H for some identity
// attribute scalar γ: E₁ = ε·GH, E₂ = ε·YAuth + γ·H.
type Ciphertext struct {
	E1 curve.G1
	E2 curve.G1
}

// Encrypt encrypts identityScalar (γ, the H_s-encoded value of the
// designated identity attribute) under pub, using a fresh random
// blinding factor ε. It returns both the ciphertext and ε itself: the
// holder needs ε as a NIZK witness to prove E₁ and E₂ were built
// consistently (§4.6), something the authority's public key alone does
// not let a verifier check on its own.
func Encrypt(params Params, pub PublicKey, identityScalar curve.Scalar) (Ciphertext, curve.Scalar, error) {
	eps, err := curve.RandomNonZeroScalar()
	if err != nil {
		return Ciphertext{}, curve.Scalar{}, fmt.Errorf("%w: %v", ErrRandomnessUnavailable, err)
	}
	e1 := params.GH.ScalarMul(eps)
	e2 := pub.YAuth.ScalarMul(eps).Add(params.H.ScalarMul(identityScalar))
	return Ciphertext{E1: e1, E2: e2}, eps, nil
}

// Decrypt recovers γ·H from ct. The authority cannot recover γ itself
// (discrete log in G1 is hard); it recovers γ·H and compares it for
// equality against the γ·H values of the identities in its registry.
func Decrypt(priv PrivateKey, ct Ciphertext) curve.G1 {
	return ct.E2.Add(ct.E1.ScalarMul(priv.A).Neg())
}
