// Copyright (C) 2026, EL PASSO Contributors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ps is the shared Pointcheval-Sanders data model: key pairs,
// attribute vectors, and credentials, plus the plaintext verification
// equation every role ultimately relies on. signer, requester and
// verifier each build role-specific behavior on top of these types;
// none of them reach into curve or wire directly for this part.
package ps
