// Copyright (C) 2026, EL PASSO Contributors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package escrow implements the optional ElGamal-over-G1 identity escrow
// used by ProveID's escrow variant (§4.6): an escrow authority holds a
// key pair under a pair of system-wide generators, a holder encrypts the
// scalar encoding of one designated identity attribute under the
// authority's public key, and the authority alone can later recover
// γ·H from a ciphertext to check it against a registry of known
// identities. This is not a general-purpose hybrid cipher (contrast
// package ecies in the reference corpus, which wraps ElGamal key
// agreement around an AEAD); it only ever encrypts a single curve
// point's worth of committed scalar, which is all ProveID's escrow
// suffix needs.
package escrow
