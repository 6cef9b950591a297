// Copyright (C) 2026, EL PASSO Contributors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package signer implements the IdP role (§4.3): key generation and
// blind issuance of PS credentials over a RequestID-style commitment,
// verified with the shared nizk engine before any signature material is
// produced.
package signer
