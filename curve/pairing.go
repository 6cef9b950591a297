package curve

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// GT is an element of the pairing's target group.
type GT struct {
	inner bls12381.GT
}

// Equal reports whether two target-group elements are equal.
func (z GT) Equal(o GT) bool {
	return z.inner.Equal(&o.inner)
}

// Pair computes e(p, q).
func Pair(p G1, q G2) (GT, error) {
	res, err := bls12381.Pair([]bls12381.G1Affine{p.inner}, []bls12381.G2Affine{q.inner})
	if err != nil {
		return GT{}, err
	}
	return GT{inner: res}, nil
}

// PairingCheck reports whether ∏ e(pᵢ, qᵢ) == 1, i.e. whether the signed
// product of the given pairings is the identity of GT. Credential and
// IdProof verification both reduce to a single two-term instance of this
// check: e(σ₁, K̃)·e(σ₂, g̃)⁻¹ == 1, tested by negating one G1 input
// instead of inverting in GT (generalizing the aggregate-signature check
// in this corpus's BLS verifier, which tests the same product-equals-
// identity shape across many terms).
func PairingCheck(g1s []G1, g2s []G2) (bool, error) {
	a := make([]bls12381.G1Affine, len(g1s))
	b := make([]bls12381.G2Affine, len(g2s))
	for i := range g1s {
		a[i] = g1s[i].inner
	}
	for i := range g2s {
		b[i] = g2s[i].inner
	}
	return bls12381.PairingCheck(a, b)
}

// CredentialEquationHolds tests e(sigma1, k) == e(sigma2, g2Gen), the
// invariant every PS credential and every re-randomized or blinded
// variant of it must satisfy.
func CredentialEquationHolds(sigma1 G1, k G2, sigma2 G1) (bool, error) {
	return PairingCheck([]G1{sigma1, sigma2.Neg()}, []G2{k, G2Generator()})
}
