package signer

import (
	"fmt"

	"github.com/elpasso/ps-core/curve"
	"github.com/elpasso/ps-core/ps"
)

// Params configures a Signer instance. The zero value is invalid; pass it
// through Validate (New does this for you) before use.
type Params struct {
	// NumAttributes is the fixed width n of every credential this
	// instance issues.
	NumAttributes int

	// G and GTilde optionally fix the G1/G2 generators instead of using
	// the curve's agreed defaults. Only meaningful when both are set;
	// used to produce reproducible test vectors across IdP, Requester
	// and Verifier instances that must agree on the same bases out of
	// band (§4.2's KeyGen note: "derive g, g̃ either from the
	// constructor... or by hashing a fresh random seed").
	G      *curve.G1
	GTilde *curve.G2
}

// Validate checks Params before KeyGen runs, the same fail-closed check
// the teacher's configuration layer performs before activating a chain
// upgrade.
func (p Params) Validate() error {
	if p.NumAttributes <= 0 {
		return fmt.Errorf("%w: NumAttributes must be positive, got %d", ps.ErrMalformedInput, p.NumAttributes)
	}
	if (p.G == nil) != (p.GTilde == nil) {
		return fmt.Errorf("%w: G and GTilde must be set together or not at all", ps.ErrMalformedInput)
	}
	return nil
}
