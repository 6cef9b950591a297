package nizk

import (
	"testing"

	"github.com/elpasso/ps-core/curve"
)

// buildMixedStatement mimics the shape of the ProveID statement: one G2
// equation with a public constant and two secret terms (one of which is
// shared with a G1 equation that has no constant), exercising both group
// types and term aliasing in a single Statement.
func buildMixedStatement(t *testing.T) (Statement, []curve.Scalar) {
	t.Helper()

	m0, err := curve.RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	tSecret, err := curve.RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	secrets := []curve.Scalar{m0, tSecret} // index 0 = m0, index 1 = t

	yTilde := curve.G2Generator().ScalarMul(curve.ScalarFromUint64(7))
	gTilde := curve.G2Generator()
	xTilde := curve.G2Generator().ScalarMul(curve.ScalarFromUint64(11))

	k := xTilde.Add(yTilde.ScalarMul(m0)).Add(gTilde.ScalarMul(tSecret))
	kEq := G2Equation{
		Public:   k,
		Constant: xTilde,
		Terms: []G2Term{
			{Base: yTilde, Secret: 0},
			{Base: gTilde, Secret: 1},
		},
	}

	h := curve.G1Generator().ScalarMul(curve.ScalarFromUint64(3))
	phi := h.ScalarMul(m0) // aliases secret 0, like the service pseudonym base
	phiEq := G1Equation{
		Public: phi,
		Terms:  []G1Term{{Base: h, Secret: 0}},
	}

	stmt := Statement{Equations: []Equation{kEq, phiEq}, NumSecrets: 2}
	return stmt, secrets
}

func TestProveVerifyRoundTrip(t *testing.T) {
	stmt, secrets := buildMixedStatement(t)
	ad := []byte("associated-data")

	proof, err := Prove("test/mixed", stmt, secrets, ad)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if !Verify("test/mixed", stmt, proof, ad) {
		t.Fatal("honestly generated proof was rejected")
	}
}

func TestVerifyRejectsTamperedChallenge(t *testing.T) {
	stmt, secrets := buildMixedStatement(t)
	ad := []byte("associated-data")
	proof, err := Prove("test/mixed", stmt, secrets, ad)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	proof.Challenge = proof.Challenge.Add(curve.ScalarFromUint64(1))
	if Verify("test/mixed", stmt, proof, ad) {
		t.Fatal("verification accepted a tampered challenge")
	}
}

func TestVerifyRejectsTamperedResponse(t *testing.T) {
	stmt, secrets := buildMixedStatement(t)
	ad := []byte("associated-data")
	proof, err := Prove("test/mixed", stmt, secrets, ad)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	proof.Responses[0] = proof.Responses[0].Add(curve.ScalarFromUint64(1))
	if Verify("test/mixed", stmt, proof, ad) {
		t.Fatal("verification accepted a tampered response")
	}
}

func TestVerifyRejectsWrongAssociatedData(t *testing.T) {
	stmt, secrets := buildMixedStatement(t)
	proof, err := Prove("test/mixed", stmt, secrets, []byte("original"))
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if Verify("test/mixed", stmt, proof, []byte("tampered")) {
		t.Fatal("verification accepted a proof replayed under different associated data")
	}
}

func TestVerifyRejectsWrongDomain(t *testing.T) {
	stmt, secrets := buildMixedStatement(t)
	ad := []byte("associated-data")
	proof, err := Prove("test/mixed", stmt, secrets, ad)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if Verify("test/other", stmt, proof, ad) {
		t.Fatal("verification accepted a proof replayed under a different domain")
	}
}

func TestProveRejectsSecretCountMismatch(t *testing.T) {
	stmt, secrets := buildMixedStatement(t)
	_, err := Prove("test/mixed", stmt, secrets[:1], []byte("ad"))
	if err == nil {
		t.Fatal("expected secret count mismatch to be rejected")
	}
}

func TestVerifyRejectsResponseCountMismatch(t *testing.T) {
	stmt, secrets := buildMixedStatement(t)
	proof, err := Prove("test/mixed", stmt, secrets, []byte("ad"))
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	proof.Responses = proof.Responses[:1]
	if Verify("test/mixed", stmt, proof, []byte("ad")) {
		t.Fatal("verification accepted a short response vector")
	}
}

func TestProveIsZeroKnowledgeRandomized(t *testing.T) {
	// Two honest proofs of the same statement must not produce the same
	// challenge or responses: the commitment randomness must be fresh
	// per proof.
	stmt, secrets := buildMixedStatement(t)
	ad := []byte("associated-data")
	p1, err := Prove("test/mixed", stmt, secrets, ad)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	p2, err := Prove("test/mixed", stmt, secrets, ad)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if p1.Challenge.Equal(p2.Challenge) {
		t.Fatal("two independent proofs produced the same challenge")
	}
}
