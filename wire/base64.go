package wire

import (
	"encoding/base64"
	"fmt"
)

// ToBase64 encodes a TLV byte string for text transport, using the
// standard Base64 alphabet with padding. A round trip through ToBase64 /
// FromBase64 is always byte-identical to the input.
func ToBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// FromBase64 decodes a Base64 transport string produced by ToBase64.
func FromBase64(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return data, nil
}
