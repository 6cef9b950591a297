// Copyright (C) 2026, EL PASSO Contributors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package wire implements the canonical TLV (tag-length-value) encoding
// the specification's §4.1 defines for every cryptographic payload that
// crosses the wire between the IdP, a User agent, and a Relying Party:
// PublicKey, Credential, CredentialRequest, and IdProof. Two independent
// encoders given the same logical message must produce byte-identical
// output, and a round trip through Base64 must be byte-exact.
package wire
