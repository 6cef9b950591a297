package nizk

import "github.com/elpasso/ps-core/curve"

// SecretRef indexes into the ordered secret/response vector shared by an
// entire Statement. The same index may appear as a term in more than one
// equation: that aliasing is exactly how φ's response reuses the
// credential-attribute response it is secretly equal to, and how the
// escrow γ response reuses the identity attribute's response, without a
// second entry ever being emitted (§4.2, §4.5, §4.6).
type SecretRef int

// Equation is one linear relation over G1 or G2 the engine can prove or
// verify knowledge of. A Statement is an ordered list of Equations; the
// engine treats them uniformly regardless of group.
type Equation interface {
	publicBytes() []byte
	commitBytes(v []curve.Scalar) []byte
	recomputeBytes(c curve.Scalar, r []curve.Scalar) []byte
}

// G1Term is one sᵢ·Base addend of a G1Equation.
type G1Term struct {
	Base   curve.G1
	Secret SecretRef
}

// G1Equation states Public = Constant + Σ Terms[i].Base · secret[Terms[i].Secret].
// A zero-value Constant (the identity) means the equation has no public,
// non-secret offset.
type G1Equation struct {
	Public   curve.G1
	Constant curve.G1
	Terms    []G1Term
}

func (e G1Equation) publicBytes() []byte { return e.Public.Bytes() }

func (e G1Equation) commitBytes(v []curve.Scalar) []byte {
	acc := e.Constant
	for _, t := range e.Terms {
		acc = acc.Add(t.Base.ScalarMul(v[t.Secret]))
	}
	return acc.Bytes()
}

func (e G1Equation) recomputeBytes(c curve.Scalar, r []curve.Scalar) []byte {
	oneMinusC := curve.ScalarFromUint64(1).Sub(c)
	acc := e.Public.ScalarMul(c).Add(e.Constant.ScalarMul(oneMinusC))
	for _, t := range e.Terms {
		acc = acc.Add(t.Base.ScalarMul(r[t.Secret]))
	}
	return acc.Bytes()
}

// G2Term is one sᵢ·Base addend of a G2Equation.
type G2Term struct {
	Base   curve.G2
	Secret SecretRef
}

// G2Equation is the G2 analogue of G1Equation.
type G2Equation struct {
	Public   curve.G2
	Constant curve.G2
	Terms    []G2Term
}

func (e G2Equation) publicBytes() []byte { return e.Public.Bytes() }

func (e G2Equation) commitBytes(v []curve.Scalar) []byte {
	acc := e.Constant
	for _, t := range e.Terms {
		acc = acc.Add(t.Base.ScalarMul(v[t.Secret]))
	}
	return acc.Bytes()
}

func (e G2Equation) recomputeBytes(c curve.Scalar, r []curve.Scalar) []byte {
	oneMinusC := curve.ScalarFromUint64(1).Sub(c)
	acc := e.Public.ScalarMul(c).Add(e.Constant.ScalarMul(oneMinusC))
	for _, t := range e.Terms {
		acc = acc.Add(t.Base.ScalarMul(r[t.Secret]))
	}
	return acc.Bytes()
}
