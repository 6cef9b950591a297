// Copyright (C) 2026, EL PASSO Contributors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package verifier implements the relying-party role (§4.6): checking a
// plaintext credential directly, or checking an IdProof's aggregated
// NIZK and signature equation, optionally with identity escrow. Every
// failure collapses to a single boolean at the API boundary; the richer
// internal error is only ever logged (§7).
package verifier
