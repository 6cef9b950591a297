package curve

import "errors"

var (
	// ErrRandomnessUnavailable is returned when the CSPRNG backing scalar
	// or point sampling fails. Per the protocol's fail-closed rule, callers
	// must abort rather than fall back to a weaker source.
	ErrRandomnessUnavailable = errors.New("curve: randomness unavailable")

	// ErrMalformedPoint is returned when decoding a compressed G1/G2
	// encoding that is not a valid point on the curve (or not in the
	// correct subgroup).
	ErrMalformedPoint = errors.New("curve: malformed point encoding")

	// ErrMalformedScalar is returned when decoding a scalar encoding whose
	// length does not match the field element size.
	ErrMalformedScalar = errors.New("curve: malformed scalar encoding")
)
