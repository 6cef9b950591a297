// Copyright (C) 2026, EL PASSO Contributors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package curve is the thin adapter over the external pairing-friendly
// curve library. Every other package in this module reaches the BLS12-381
// groups, the scalar field, the pairing, and the hash-to-curve/scalar maps
// only through the types defined here — nothing above this package imports
// gnark-crypto or blake3 directly.
package curve
