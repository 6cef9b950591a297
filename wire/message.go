package wire

import "github.com/elpasso/ps-core/curve"

// PublicKey is the wire-level field layout of an IdP public key:
//
//	G1(g) || G2(g̃) || G2(X̃) || G1_LIST(Y) || G2_LIST(Ỹ)
type PublicKey struct {
	G      curve.G1
	GTilde curve.G2
	XTilde curve.G2
	Y      []curve.G1
	YTilde []curve.G2
}

// EncodePublicKey produces the canonical byte encoding of a PublicKey.
func EncodePublicKey(pk PublicKey) ([]byte, error) {
	var buf []byte
	var err error
	if buf, err = appendElement(buf, TagG1, pk.G.Bytes()); err != nil {
		return nil, err
	}
	if buf, err = appendElement(buf, TagG2, pk.GTilde.Bytes()); err != nil {
		return nil, err
	}
	if buf, err = appendElement(buf, TagG2, pk.XTilde.Bytes()); err != nil {
		return nil, err
	}
	if buf, err = appendG1List(buf, TagG1List, pk.Y); err != nil {
		return nil, err
	}
	if buf, err = appendG2List(buf, TagG2List, pk.YTilde); err != nil {
		return nil, err
	}
	return buf, nil
}

// DecodePublicKey parses the canonical encoding of a PublicKey.
func DecodePublicKey(data []byte) (PublicKey, error) {
	c := newCursor(data)
	g := c.readTaggedPayload(TagG1)
	gTilde := c.readTaggedPayload(TagG2)
	xTilde := c.readTaggedPayload(TagG2)
	yList := c.readG1List(TagG1List)
	yTildeList := c.readG2List(TagG2List)
	if err := c.finish(); err != nil {
		return PublicKey{}, err
	}

	gPoint, err := curve.G1FromBytes(g)
	if err != nil {
		return PublicKey{}, err
	}
	gTildePoint, err := curve.G2FromBytes(gTilde)
	if err != nil {
		return PublicKey{}, err
	}
	xTildePoint, err := curve.G2FromBytes(xTilde)
	if err != nil {
		return PublicKey{}, err
	}
	return PublicKey{
		G:      gPoint,
		GTilde: gTildePoint,
		XTilde: xTildePoint,
		Y:      yList,
		YTilde: yTildeList,
	}, nil
}

// Credential is the wire-level field layout of a PS signature:
//
//	G1(σ₁) || G1(σ₂)
type Credential struct {
	Sigma1 curve.G1
	Sigma2 curve.G1
}

// EncodeCredential produces the canonical byte encoding of a Credential.
func EncodeCredential(cred Credential) ([]byte, error) {
	var buf []byte
	var err error
	if buf, err = appendElement(buf, TagG1, cred.Sigma1.Bytes()); err != nil {
		return nil, err
	}
	if buf, err = appendElement(buf, TagG1, cred.Sigma2.Bytes()); err != nil {
		return nil, err
	}
	return buf, nil
}

// DecodeCredential parses the canonical encoding of a Credential.
func DecodeCredential(data []byte) (Credential, error) {
	c := newCursor(data)
	s1 := c.readTaggedPayload(TagG1)
	s2 := c.readTaggedPayload(TagG1)
	if err := c.finish(); err != nil {
		return Credential{}, err
	}
	sigma1, err := curve.G1FromBytes(s1)
	if err != nil {
		return Credential{}, err
	}
	sigma2, err := curve.G1FromBytes(s2)
	if err != nil {
		return Credential{}, err
	}
	return Credential{Sigma1: sigma1, Sigma2: sigma2}, nil
}

// CredentialRequest is the wire-level field layout of a blind-signing
// request:
//
//	G1(A) || Fr(c) || Fr_LIST(rs) || STR_LIST(attrs)
//
// A hidden attribute slot is the empty byte string in Attrs.
type CredentialRequest struct {
	A     curve.G1
	C     curve.Scalar
	Rs    []curve.Scalar
	Attrs [][]byte
}

// EncodeCredentialRequest produces the canonical byte encoding of a
// CredentialRequest.
func EncodeCredentialRequest(req CredentialRequest) ([]byte, error) {
	var buf []byte
	var err error
	if buf, err = appendElement(buf, TagG1, req.A.Bytes()); err != nil {
		return nil, err
	}
	if buf, err = appendElement(buf, TagFr, req.C.Bytes()); err != nil {
		return nil, err
	}
	if buf, err = appendFrList(buf, TagFrList, req.Rs); err != nil {
		return nil, err
	}
	if buf, err = appendStrList(buf, TagStrList, req.Attrs); err != nil {
		return nil, err
	}
	return buf, nil
}

// DecodeCredentialRequest parses the canonical encoding of a
// CredentialRequest.
func DecodeCredentialRequest(data []byte) (CredentialRequest, error) {
	c := newCursor(data)
	a := c.readTaggedPayload(TagG1)
	chal := c.readTaggedPayload(TagFr)
	rs := c.readFrList(TagFrList)
	attrs := c.readStrList(TagStrList)
	if err := c.finish(); err != nil {
		return CredentialRequest{}, err
	}
	aPoint, err := curve.G1FromBytes(a)
	if err != nil {
		return CredentialRequest{}, err
	}
	cScalar, err := curve.ScalarFromBytes(chal)
	if err != nil {
		return CredentialRequest{}, err
	}
	return CredentialRequest{A: aPoint, C: cScalar, Rs: rs, Attrs: attrs}, nil
}

// EscrowCiphertext is the optional ElGamal identity-escrow suffix carried
// by an IdProof: G1(E₁) || G1(E₂).
type EscrowCiphertext struct {
	E1 curve.G1
	E2 curve.G1
}

// IdProof is the wire-level field layout of a ProveID output:
//
//	G1(σ'₁) || G1(σ'₂) || G2(k) || G1(φ) || Fr(c) || Fr_LIST(rs) ||
//	STR_LIST(attrs) [|| G1(E₁) || G1(E₂)]
//
// Escrow is nil iff the (E₁,E₂) suffix is absent.
type IdProof struct {
	Sigma1Prime curve.G1
	Sigma2Prime curve.G1
	K           curve.G2
	Phi         curve.G1
	C           curve.Scalar
	Rs          []curve.Scalar
	Attrs       [][]byte
	Escrow      *EscrowCiphertext
}

// EncodeIdProof produces the canonical byte encoding of an IdProof.
func EncodeIdProof(p IdProof) ([]byte, error) {
	var buf []byte
	var err error
	if buf, err = appendElement(buf, TagG1, p.Sigma1Prime.Bytes()); err != nil {
		return nil, err
	}
	if buf, err = appendElement(buf, TagG1, p.Sigma2Prime.Bytes()); err != nil {
		return nil, err
	}
	if buf, err = appendElement(buf, TagG2, p.K.Bytes()); err != nil {
		return nil, err
	}
	if buf, err = appendElement(buf, TagG1, p.Phi.Bytes()); err != nil {
		return nil, err
	}
	if buf, err = appendElement(buf, TagFr, p.C.Bytes()); err != nil {
		return nil, err
	}
	if buf, err = appendFrList(buf, TagFrList, p.Rs); err != nil {
		return nil, err
	}
	if buf, err = appendStrList(buf, TagStrList, p.Attrs); err != nil {
		return nil, err
	}
	if p.Escrow != nil {
		if buf, err = appendElement(buf, TagG1, p.Escrow.E1.Bytes()); err != nil {
			return nil, err
		}
		if buf, err = appendElement(buf, TagG1, p.Escrow.E2.Bytes()); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// DecodeIdProof parses the canonical encoding of an IdProof. Absence of
// the escrow suffix (a buffer fully consumed after Attrs) is not an
// error: it means "no escrow", per §4.1.
func DecodeIdProof(data []byte) (IdProof, error) {
	c := newCursor(data)
	s1 := c.readTaggedPayload(TagG1)
	s2 := c.readTaggedPayload(TagG1)
	k := c.readTaggedPayload(TagG2)
	phi := c.readTaggedPayload(TagG1)
	chal := c.readTaggedPayload(TagFr)
	rs := c.readFrList(TagFrList)
	attrs := c.readStrList(TagStrList)
	if err := c.finish(); err != nil {
		return IdProof{}, err
	}

	sigma1, err := curve.G1FromBytes(s1)
	if err != nil {
		return IdProof{}, err
	}
	sigma2, err := curve.G1FromBytes(s2)
	if err != nil {
		return IdProof{}, err
	}
	kPoint, err := curve.G2FromBytes(k)
	if err != nil {
		return IdProof{}, err
	}
	phiPoint, err := curve.G1FromBytes(phi)
	if err != nil {
		return IdProof{}, err
	}
	cScalar, err := curve.ScalarFromBytes(chal)
	if err != nil {
		return IdProof{}, err
	}

	out := IdProof{
		Sigma1Prime: sigma1,
		Sigma2Prime: sigma2,
		K:           kPoint,
		Phi:         phiPoint,
		C:           cScalar,
		Rs:          rs,
		Attrs:       attrs,
	}

	if len(c.remaining()) == 0 {
		return out, nil
	}

	e1 := c.readTaggedPayload(TagG1)
	e2 := c.readTaggedPayload(TagG1)
	if err := c.finish(); err != nil {
		return IdProof{}, err
	}
	e1Point, err := curve.G1FromBytes(e1)
	if err != nil {
		return IdProof{}, err
	}
	e2Point, err := curve.G1FromBytes(e2)
	if err != nil {
		return IdProof{}, err
	}
	out.Escrow = &EscrowCiphertext{E1: e1Point, E2: e2Point}
	return out, nil
}
