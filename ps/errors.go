package ps

import "errors"

// The five error categories of §7. The role packages (signer, requester,
// verifier) report their own checks and randomness failures as one of
// these. Errors from nizk.Prove, curve.HashToG1 and the pairing check are
// passed through unwrapped.
var (
	// ErrAttributeCountMismatch is returned when an attribute vector's
	// length does not match a public key's declared attribute count.
	ErrAttributeCountMismatch = errors.New("ps: attribute count mismatch")

	// ErrNizkRejected is returned when a zero-knowledge proof fails
	// verification. It never distinguishes which sub-check failed.
	ErrNizkRejected = errors.New("ps: zero-knowledge proof rejected")

	// ErrMalformedInput is returned when a decoded message is
	// syntactically well-formed TLV but semantically invalid (e.g. a
	// credential whose σ₁ is the identity element).
	ErrMalformedInput = errors.New("ps: malformed input")

	// ErrProtocolMisuse is returned when an API is called in a sequence
	// the protocol forbids (e.g. unblinding twice with the same pending
	// request).
	ErrProtocolMisuse = errors.New("ps: protocol misuse")

	// ErrRandomnessUnavailable is returned when the CSPRNG fails. The
	// underlying curve error is included as text only, so errors.Is does
	// not match curve.ErrRandomnessUnavailable on it.
	ErrRandomnessUnavailable = errors.New("ps: randomness unavailable")
)
