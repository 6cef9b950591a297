package escrow

import "errors"

var (
	// ErrRandomnessUnavailable is returned when the CSPRNG fails during
	// key generation or encryption.
	ErrRandomnessUnavailable = errors.New("escrow: randomness unavailable")

	// ErrMalformedInput names a public key or ciphertext that carries the
	// identity element where a nonzero point is required. No function in
	// this package returns it: Encrypt and Decrypt do not check their
	// inputs for the identity element.
	ErrMalformedInput = errors.New("escrow: malformed input")
)
