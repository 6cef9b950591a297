package wire

import (
	"bytes"
	"testing"

	"github.com/elpasso/ps-core/curve"
)

func randG1(t *testing.T) curve.G1 {
	t.Helper()
	s, err := curve.RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	return curve.G1Generator().ScalarMul(s)
}

func randG2(t *testing.T) curve.G2 {
	t.Helper()
	s, err := curve.RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	return curve.G2Generator().ScalarMul(s)
}

func randScalar(t *testing.T) curve.Scalar {
	t.Helper()
	s, err := curve.RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	return s
}

func TestPublicKeyRoundTrip(t *testing.T) {
	n := 4
	pk := PublicKey{
		G:      randG1(t),
		GTilde: randG2(t),
		XTilde: randG2(t),
	}
	for i := 0; i < n; i++ {
		pk.Y = append(pk.Y, randG1(t))
		pk.YTilde = append(pk.YTilde, randG2(t))
	}

	encoded, err := EncodePublicKey(pk)
	if err != nil {
		t.Fatalf("EncodePublicKey: %v", err)
	}
	decoded, err := DecodePublicKey(encoded)
	if err != nil {
		t.Fatalf("DecodePublicKey: %v", err)
	}
	reencoded, err := EncodePublicKey(decoded)
	if err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	if !bytes.Equal(encoded, reencoded) {
		t.Error("decode(encode(PublicKey)) did not re-encode byte-identically")
	}
}

func TestPublicKeyBase64RoundTrip(t *testing.T) {
	pk := PublicKey{G: randG1(t), GTilde: randG2(t), XTilde: randG2(t)}
	encoded, err := EncodePublicKey(pk)
	if err != nil {
		t.Fatalf("EncodePublicKey: %v", err)
	}
	b64 := ToBase64(encoded)
	back, err := FromBase64(b64)
	if err != nil {
		t.Fatalf("FromBase64: %v", err)
	}
	if !bytes.Equal(encoded, back) {
		t.Error("base64 round trip was not byte-identical")
	}
}

func TestCredentialRoundTrip(t *testing.T) {
	cred := Credential{Sigma1: randG1(t), Sigma2: randG1(t)}
	encoded, err := EncodeCredential(cred)
	if err != nil {
		t.Fatalf("EncodeCredential: %v", err)
	}
	decoded, err := DecodeCredential(encoded)
	if err != nil {
		t.Fatalf("DecodeCredential: %v", err)
	}
	if !decoded.Sigma1.Equal(cred.Sigma1) || !decoded.Sigma2.Equal(cred.Sigma2) {
		t.Error("credential round trip did not preserve value")
	}
}

func TestCredentialRequestRoundTrip(t *testing.T) {
	req := CredentialRequest{
		A:     randG1(t),
		C:     randScalar(t),
		Rs:    []curve.Scalar{randScalar(t), randScalar(t)},
		Attrs: [][]byte{{}, []byte("revealed-value"), {}},
	}
	encoded, err := EncodeCredentialRequest(req)
	if err != nil {
		t.Fatalf("EncodeCredentialRequest: %v", err)
	}
	decoded, err := DecodeCredentialRequest(encoded)
	if err != nil {
		t.Fatalf("DecodeCredentialRequest: %v", err)
	}
	if len(decoded.Attrs) != len(req.Attrs) {
		t.Fatalf("attrs length mismatch: got %d want %d", len(decoded.Attrs), len(req.Attrs))
	}
	for i := range req.Attrs {
		if !bytes.Equal(decoded.Attrs[i], req.Attrs[i]) {
			t.Errorf("attrs[%d] mismatch", i)
		}
	}
	reencoded, err := EncodeCredentialRequest(decoded)
	if err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	if !bytes.Equal(encoded, reencoded) {
		t.Error("decode(encode(CredentialRequest)) did not re-encode byte-identically")
	}
}

func TestIdProofRoundTripNoEscrow(t *testing.T) {
	p := IdProof{
		Sigma1Prime: randG1(t),
		Sigma2Prime: randG1(t),
		K:           randG2(t),
		Phi:         randG1(t),
		C:           randScalar(t),
		Rs:          []curve.Scalar{randScalar(t)},
		Attrs:       [][]byte{{}, []byte("tp")},
	}
	encoded, err := EncodeIdProof(p)
	if err != nil {
		t.Fatalf("EncodeIdProof: %v", err)
	}
	decoded, err := DecodeIdProof(encoded)
	if err != nil {
		t.Fatalf("DecodeIdProof: %v", err)
	}
	if decoded.Escrow != nil {
		t.Error("expected no escrow suffix to decode as nil")
	}
}

func TestIdProofRoundTripWithEscrow(t *testing.T) {
	p := IdProof{
		Sigma1Prime: randG1(t),
		Sigma2Prime: randG1(t),
		K:           randG2(t),
		Phi:         randG1(t),
		C:           randScalar(t),
		Rs:          []curve.Scalar{randScalar(t), randScalar(t)},
		Attrs:       [][]byte{{}, {}, []byte("tp")},
		Escrow:      &EscrowCiphertext{E1: randG1(t), E2: randG1(t)},
	}
	encoded, err := EncodeIdProof(p)
	if err != nil {
		t.Fatalf("EncodeIdProof: %v", err)
	}
	decoded, err := DecodeIdProof(encoded)
	if err != nil {
		t.Fatalf("DecodeIdProof: %v", err)
	}
	if decoded.Escrow == nil {
		t.Fatal("expected escrow suffix to decode")
	}
	if !decoded.Escrow.E1.Equal(p.Escrow.E1) || !decoded.Escrow.E2.Equal(p.Escrow.E2) {
		t.Error("escrow ciphertext round trip did not preserve value")
	}
	reencoded, err := EncodeIdProof(decoded)
	if err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	if !bytes.Equal(encoded, reencoded) {
		t.Error("decode(encode(IdProof)) did not re-encode byte-identically")
	}
}

func TestDecodeRejectsTruncatedPayload(t *testing.T) {
	cred := Credential{Sigma1: randG1(t), Sigma2: randG1(t)}
	encoded, err := EncodeCredential(cred)
	if err != nil {
		t.Fatalf("EncodeCredential: %v", err)
	}
	_, err = DecodeCredential(encoded[:len(encoded)-5])
	if err == nil {
		t.Fatal("expected truncated payload to fail decoding")
	}
}

func TestDecodeRejectsUnknownTag(t *testing.T) {
	cred := Credential{Sigma1: randG1(t), Sigma2: randG1(t)}
	encoded, err := EncodeCredential(cred)
	if err != nil {
		t.Fatalf("EncodeCredential: %v", err)
	}
	encoded[0] = 0xEE
	_, err = DecodeCredential(encoded)
	if err == nil {
		t.Fatal("expected unknown tag to fail decoding")
	}
}

func TestDecodeRejectsTagMismatch(t *testing.T) {
	cred := Credential{Sigma1: randG1(t), Sigma2: randG1(t)}
	encoded, err := EncodeCredential(cred)
	if err != nil {
		t.Fatalf("EncodeCredential: %v", err)
	}
	encoded[0] = byte(TagG2)
	_, err = DecodeCredential(encoded)
	if err == nil {
		t.Fatal("expected tag/context mismatch to fail decoding")
	}
}

func TestEncodingIsCanonical(t *testing.T) {
	pk := PublicKey{G: randG1(t), GTilde: randG2(t), XTilde: randG2(t)}
	a, err := EncodePublicKey(pk)
	if err != nil {
		t.Fatalf("EncodePublicKey: %v", err)
	}
	b, err := EncodePublicKey(pk)
	if err != nil {
		t.Fatalf("EncodePublicKey: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("two encodings of the same logical PublicKey diverged")
	}
}
