// Copyright (C) 2026, EL PASSO Contributors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package requester implements the User/Holder role (§4.4, §4.5):
// building a blind credential request, unblinding the IdP's response,
// verifying and re-randomizing the resulting credential, and presenting
// it to a relying party as an IdProof.
//
// RequestID returns a *PendingRequest that owns the blinding scalar t
// instead of storing it as mutable instance state: the only way to use t
// is to call Unblind on the value RequestID returned, and Unblind
// consumes it. This makes the "unblind before requesting" misuse §9
// flags unrepresentable; the "unblind twice" misuse is checked at
// runtime, and a second Unblind on the same PendingRequest returns
// ps.ErrProtocolMisuse.
package requester
