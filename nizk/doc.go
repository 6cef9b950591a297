// Copyright (C) 2026, EL PASSO Contributors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package nizk is the Fiat-Shamir-transformed Schnorr proof engine shared
// by the RequestID and ProveID statements (§4.2). Rather than hand-inline
// each statement, a Statement is built from a small DSL of typed linear
// equations over G1 and/or G2 bases; one generic Prove/Verify pair drives
// all of them. The engine takes secrets and responses in whatever
// SecretRef order the Statement assigns; the response-ordering rule
// (hidden indices ascending, then t, then ε) is built by each caller in
// signer, requester and verifier.
package nizk
