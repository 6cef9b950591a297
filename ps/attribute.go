package ps

import "github.com/elpasso/ps-core/curve"

// Attribute is one slot of a credential's attribute vector. It is a sum
// type with exactly two variants, Revealed and Hidden, even though the
// wire encoding collapses both to "a byte string, empty iff hidden"
// (§4.1, §9): modeling the distinction as two Go types instead of a
// single struct with a bool flag makes "did I forget to check Hidden"
// a type-level question instead of a runtime one.
type Attribute interface {
	attribute()
	// Scalar returns m = H_s(value), the field-element encoding this
	// slot contributes to the k / A equations regardless of variant.
	Scalar() curve.Scalar
	// WireValue returns the bytes this slot serializes to: the cleartext
	// value for Revealed, always nil for Hidden.
	WireValue() []byte
}

// Revealed is an attribute slot disclosed in cleartext alongside the
// proof or credential request that carries it.
type Revealed struct {
	Value []byte
}

func (Revealed) attribute() {}

// Scalar implements Attribute.
func (r Revealed) Scalar() curve.Scalar { return curve.HashToScalar(r.Value) }

// WireValue implements Attribute.
func (r Revealed) WireValue() []byte { return r.Value }

// Hidden is an attribute slot known to the holder but never disclosed;
// its value is used only as a NIZK witness.
type Hidden struct {
	Value []byte
}

func (Hidden) attribute() {}

// Scalar implements Attribute.
func (h Hidden) Scalar() curve.Scalar { return curve.HashToScalar(h.Value) }

// WireValue implements Attribute.
func (h Hidden) WireValue() []byte { return nil }

// AttributeVector is an ordered list of attribute slots, one per position
// a public key's Y/Ỹ bases define.
type AttributeVector []Attribute

// Scalars returns the field-element encoding of every slot, in order.
func (av AttributeVector) Scalars() []curve.Scalar {
	out := make([]curve.Scalar, len(av))
	for i, a := range av {
		out[i] = a.Scalar()
	}
	return out
}

// WireValues returns the wire-level byte string of every slot, in order
// (empty iff Hidden).
func (av AttributeVector) WireValues() [][]byte {
	out := make([][]byte, len(av))
	for i, a := range av {
		out[i] = a.WireValue()
	}
	return out
}

// HiddenIndices returns, in ascending order, the positions of every
// Hidden slot. This is the canonical order §4.2's response-ordering rule
// assigns to hidden-attribute responses.
func (av AttributeVector) HiddenIndices() []int {
	var out []int
	for i, a := range av {
		if _, ok := a.(Hidden); ok {
			out = append(out, i)
		}
	}
	return out
}

// AttributeVectorFromWire rebuilds an AttributeVector from the raw
// wire-level byte strings of a decoded message (empty string = Hidden,
// with value supplied separately since the wire format never carries a
// hidden slot's plaintext). For revealed slots, value is taken verbatim
// from the wire bytes; hiddenValues supplies the plaintext for hidden
// slots the local party already knows (a remote party reconstructing a
// peer's AttributeVector only ever sees the revealed slots; a hidden slot
// with no entry in hiddenValues becomes a Hidden with a nil Value).
func AttributeVectorFromWire(wireValues [][]byte, hiddenValues map[int][]byte) AttributeVector {
	out := make(AttributeVector, len(wireValues))
	for i, v := range wireValues {
		if len(v) == 0 {
			out[i] = Hidden{Value: hiddenValues[i]}
			continue
		}
		out[i] = Revealed{Value: v}
	}
	return out
}
