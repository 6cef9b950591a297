package nizk

import (
	"errors"
	"fmt"

	"github.com/elpasso/ps-core/curve"
)

// ErrSecretCountMismatch is returned when the secret vector handed to
// Prove does not match the width the Statement was built for (Verify
// reports a response vector of the wrong width as a plain rejection).
// A well-formed caller inside this module never triggers it;
// it exists so a bug in statement construction fails loudly instead of
// silently proving or verifying the wrong relation.
var ErrSecretCountMismatch = errors.New("nizk: secret/response vector width mismatch")

// Statement is an ordered list of equations over a shared secret vector.
// Order matters twice over: it fixes the Fiat-Shamir transcript layout
// (every equation's public value, in order, then every equation's
// commitment, in the same order), and NumSecrets fixes the width every
// witness and response vector must have.
type Statement struct {
	Equations  []Equation
	NumSecrets int
}

// Proof is a completed Fiat-Shamir transformed Schnorr proof: one
// challenge scalar and one response per secret, in the Statement's
// secret order.
type Proof struct {
	Challenge curve.Scalar
	Responses []curve.Scalar
}

// Prove produces a Proof of knowledge of secrets satisfying stmt, bound
// to domain (a sub-tag distinguishing the statement kind, e.g. RequestID
// vs. ProveID) and associatedData (arbitrary caller-supplied context
// folded into the challenge, e.g. a relying-party nonce).
//
// secrets must have exactly stmt.NumSecrets entries, in the same order
// every Equation's SecretRef indices assume.
func Prove(domain string, stmt Statement, secrets []curve.Scalar, associatedData []byte) (Proof, error) {
	if len(secrets) != stmt.NumSecrets {
		return Proof{}, fmt.Errorf("%w: statement wants %d secrets, got %d", ErrSecretCountMismatch, stmt.NumSecrets, len(secrets))
	}

	v := make([]curve.Scalar, stmt.NumSecrets)
	for i := range v {
		s, err := curve.RandomScalar()
		if err != nil {
			return Proof{}, err
		}
		v[i] = s
	}

	var parts [][]byte
	for _, eq := range stmt.Equations {
		parts = append(parts, eq.publicBytes())
	}
	for _, eq := range stmt.Equations {
		parts = append(parts, eq.commitBytes(v))
	}
	parts = append(parts, associatedData)
	c := curve.HashToScalarDomain(domain, parts...)

	r := make([]curve.Scalar, stmt.NumSecrets)
	for i := range r {
		r[i] = v[i].Sub(secrets[i].Mul(c))
	}

	return Proof{Challenge: c, Responses: r}, nil
}

// Verify reports whether proof is a valid proof of stmt under the same
// domain and associatedData used to produce it. Failure collapses every
// distinct cause (wrong challenge, malformed response vector) into a
// single boolean; statement packages built on nizk are expected to wrap
// this into their own rich internal error before surfacing it as a bool
// to their own callers, per §7.
func Verify(domain string, stmt Statement, proof Proof, associatedData []byte) bool {
	if len(proof.Responses) != stmt.NumSecrets {
		return false
	}

	var parts [][]byte
	for _, eq := range stmt.Equations {
		parts = append(parts, eq.publicBytes())
	}
	for _, eq := range stmt.Equations {
		parts = append(parts, eq.recomputeBytes(proof.Challenge, proof.Responses))
	}
	parts = append(parts, associatedData)
	cPrime := curve.HashToScalarDomain(domain, parts...)

	return cPrime.Equal(proof.Challenge)
}
