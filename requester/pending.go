package requester

import (
	"fmt"

	"github.com/elpasso/ps-core/curve"
	"github.com/elpasso/ps-core/ps"
)

// PendingRequest is the capability returned by RequestID: it owns the
// blinding scalar t for exactly one in-flight request, and Unblind
// consumes it. There is no way to construct a PendingRequest other than
// through RequestID, and no way to read t back out of it.
type PendingRequest struct {
	t        curve.Scalar
	pk       ps.PublicKey
	attrs    ps.AttributeVector
	consumed bool
}

// Unblind removes the blinding factor from an IdP's response and
// verifies the resulting credential against the attribute vector
// RequestID was called with. Calling Unblind a second time on the same
// PendingRequest is a protocol misuse: the blinding factor has already
// been consumed.
func (p *PendingRequest) Unblind(cred ps.Credential) (ps.Credential, error) {
	if p.consumed {
		return ps.Credential{}, fmt.Errorf("%w: blinding factor already consumed by a prior Unblind", ps.ErrProtocolMisuse)
	}
	p.consumed = true

	out := ps.Credential{
		Sigma1: cred.Sigma1,
		Sigma2: cred.Sigma2.Add(cred.Sigma1.ScalarMul(p.t).Neg()),
	}
	ok, err := out.Verify(p.pk, p.attrs)
	if err != nil {
		return ps.Credential{}, err
	}
	if !ok {
		return ps.Credential{}, fmt.Errorf("%w: unblinded credential failed verification", ps.ErrMalformedInput)
	}
	return out, nil
}
