package wire

// varintShortLimit is the first value the one-byte form cannot hold (the
// one-byte form covers 0..252); 253 and above require the escaped
// three-byte form.
const varintShortLimit = 253

// varintLongPrefix is the escape byte (0xFD) marking the three-byte form.
const varintLongPrefix = 0xFD

// maxVarintValue is the largest length this codec's three-byte form can
// express. Anything larger is out of scope per §4.1 and must fail.
const maxVarintValue = 0xFFFF

// appendVarint appends the varint encoding of v to buf and returns the
// extended slice.
func appendVarint(buf []byte, v int) []byte {
	if v < varintShortLimit {
		return append(buf, byte(v))
	}
	return append(buf, varintLongPrefix, byte(v>>8), byte(v&0xFF))
}

// readVarint decodes a varint from the front of buf, returning the value
// and the number of bytes consumed.
func readVarint(buf []byte) (value int, consumed int, err error) {
	if len(buf) < 1 {
		return 0, 0, malformed(ErrTruncatedVarint, "empty buffer")
	}
	first := buf[0]
	switch {
	case first < varintShortLimit:
		return int(first), 1, nil
	case first == varintLongPrefix:
		if len(buf) < 3 {
			return 0, 0, malformed(ErrTruncatedVarint, "short 3-byte form")
		}
		v := int(buf[1])<<8 | int(buf[2])
		return v, 3, nil
	default:
		// 0xFE, 0xFF: no form defined.
		return 0, 0, malformed(ErrTruncatedVarint, "reserved prefix byte")
	}
}

// checkVarintRange rejects lengths this codec's encoding cannot represent.
func checkVarintRange(v int) error {
	if v < 0 || v > maxVarintValue {
		return malformed(ErrVarintTooLarge, "")
	}
	return nil
}
