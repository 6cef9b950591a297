package requester

import (
	"fmt"

	log "github.com/luxfi/log"

	"github.com/elpasso/ps-core/curve"
	"github.com/elpasso/ps-core/escrow"
	"github.com/elpasso/ps-core/nizk"
	"github.com/elpasso/ps-core/ps"
	"github.com/elpasso/ps-core/wire"
)

// Requester is a User/Holder instance bound to a single IdP public key.
// It carries no credential or attribute state between calls; every
// RequestID and ProveID call is self-contained.
type Requester struct {
	pk  ps.PublicKey
	log log.Logger
}

// New creates a Requester bound to an IdP's public key.
func New(pk ps.PublicKey) *Requester {
	return &Requester{pk: pk, log: log.NewTestLogger(log.InfoLevel)}
}

// MaxAttributes returns n, the attribute-vector width pk was generated
// for.
func (r *Requester) MaxAttributes() int { return r.pk.NumAttributes() }

func (r *Requester) warn(msg string, ctx ...interface{})  { r.log.Warn(msg, ctx...) }
func (r *Requester) debug(msg string, ctx ...interface{}) { r.log.Debug(msg, ctx...) }

// RequestID builds a blind-signing request over attrs and returns it
// alongside the PendingRequest that owns the blinding scalar used to
// build it (§4.4, §9 redesign).
func (r *Requester) RequestID(attrs ps.AttributeVector, associatedData []byte) (wire.CredentialRequest, *PendingRequest, error) {
	n := r.pk.NumAttributes()
	if len(attrs) != n {
		r.warn("request_id: attribute count mismatch", "want", n, "got", len(attrs))
		return wire.CredentialRequest{}, nil, fmt.Errorf("%w: key has %d slots, attrs has %d", ps.ErrAttributeCountMismatch, n, len(attrs))
	}

	t, err := curve.RandomScalar()
	if err != nil {
		return wire.CredentialRequest{}, nil, fmt.Errorf("%w: %v", ps.ErrRandomnessUnavailable, err)
	}

	hiddenIdx := attrs.HiddenIndices()
	a := r.pk.G.ScalarMul(t)
	terms := make([]nizk.G1Term, 0, len(hiddenIdx)+1)
	secrets := make([]curve.Scalar, 0, len(hiddenIdx)+1)
	for pos, i := range hiddenIdx {
		m := attrs[i].Scalar()
		a = a.Add(r.pk.Y[i].ScalarMul(m))
		terms = append(terms, nizk.G1Term{Base: r.pk.Y[i], Secret: nizk.SecretRef(pos)})
		secrets = append(secrets, m)
	}
	terms = append(terms, nizk.G1Term{Base: r.pk.G, Secret: nizk.SecretRef(len(hiddenIdx))})
	secrets = append(secrets, t)

	stmt := nizk.Statement{
		Equations:  []nizk.Equation{nizk.G1Equation{Public: a, Terms: terms}},
		NumSecrets: len(hiddenIdx) + 1,
	}
	proof, err := nizk.Prove(ps.DomainRequestID, stmt, secrets, associatedData)
	if err != nil {
		return wire.CredentialRequest{}, nil, err
	}

	req := wire.CredentialRequest{A: a, C: proof.Challenge, Rs: proof.Responses, Attrs: attrs.WireValues()}
	pending := &PendingRequest{t: t, pk: r.pk, attrs: attrs}
	r.debug("request_id: built request", "hidden", len(hiddenIdx), "revealed", n-len(hiddenIdx))
	return req, pending, nil
}

// Verify checks a credential against a fully disclosed attribute vector.
func (r *Requester) Verify(cred ps.Credential, attrs ps.AttributeVector) (bool, error) {
	ok, err := cred.Verify(r.pk, attrs)
	if err != nil {
		r.warn("verify: rejected", "err", err)
	}
	return ok, err
}

// Randomize returns a fresh, unlinkable re-randomization of cred.
func (r *Requester) Randomize(cred ps.Credential) (ps.Credential, error) {
	rr, err := curve.RandomNonZeroScalar()
	if err != nil {
		return ps.Credential{}, fmt.Errorf("%w: %v", ps.ErrRandomnessUnavailable, err)
	}
	return cred.Randomize(rr), nil
}

// EscrowInput bundles the parameters needed to add an identity-escrow
// ciphertext to a ProveID presentation.
type EscrowInput struct {
	Params                 escrow.Params
	AuthorityPublicKey     escrow.PublicKey
	IdentityAttributeIndex int
}

// ProveID builds a presentation of cred over the disclosure choices in
// attrs, bound to serviceName and associatedData. primarySecretIndex
// names which attribute slot backs the service-bound pseudonym φ; it
// must refer to a Hidden slot. If esc is non-nil, an ElGamal identity
// escrow ciphertext is attached over the attribute at
// esc.IdentityAttributeIndex, which must also be Hidden.
//
// The spec's source convention fixes these at indices 1 and 2; this API
// takes them as explicit parameters instead (§9's own redesign note:
// "a production implementation should make them explicit... not
// positional").
func (r *Requester) ProveID(cred ps.Credential, attrs ps.AttributeVector, associatedData, serviceName []byte, primarySecretIndex int, esc *EscrowInput) (wire.IdProof, error) {
	n := r.pk.NumAttributes()
	if len(attrs) != n {
		return wire.IdProof{}, fmt.Errorf("%w: key has %d slots, attrs has %d", ps.ErrAttributeCountMismatch, n, len(attrs))
	}
	if primarySecretIndex < 0 || primarySecretIndex >= n {
		return wire.IdProof{}, fmt.Errorf("%w: primary secret index %d out of range", ps.ErrProtocolMisuse, primarySecretIndex)
	}
	if _, ok := attrs[primarySecretIndex].(ps.Hidden); !ok {
		return wire.IdProof{}, fmt.Errorf("%w: primary secret index %d must be hidden", ps.ErrProtocolMisuse, primarySecretIndex)
	}
	if esc != nil {
		if esc.IdentityAttributeIndex < 0 || esc.IdentityAttributeIndex >= n {
			return wire.IdProof{}, fmt.Errorf("%w: identity attribute index %d out of range", ps.ErrProtocolMisuse, esc.IdentityAttributeIndex)
		}
		if _, ok := attrs[esc.IdentityAttributeIndex].(ps.Hidden); !ok {
			return wire.IdProof{}, fmt.Errorf("%w: identity attribute index %d must be hidden", ps.ErrProtocolMisuse, esc.IdentityAttributeIndex)
		}
	}

	rRand, err := curve.RandomNonZeroScalar()
	if err != nil {
		return wire.IdProof{}, fmt.Errorf("%w: %v", ps.ErrRandomnessUnavailable, err)
	}
	tBlind, err := curve.RandomScalar()
	if err != nil {
		return wire.IdProof{}, fmt.Errorf("%w: %v", ps.ErrRandomnessUnavailable, err)
	}

	sigma1Prime := cred.Sigma1.ScalarMul(rRand)
	sigma2Prime := cred.Sigma2.Add(cred.Sigma1.ScalarMul(tBlind)).ScalarMul(rRand)

	hiddenIdx := attrs.HiddenIndices()
	hiddenPos := make(map[int]int, len(hiddenIdx))
	for pos, i := range hiddenIdx {
		hiddenPos[i] = pos
	}
	tIndex := len(hiddenIdx)
	numSecrets := len(hiddenIdx) + 1

	k := r.pk.XTilde
	kTerms := make([]nizk.G2Term, 0, numSecrets)
	secrets := make([]curve.Scalar, 0, numSecrets+1)
	for pos, i := range hiddenIdx {
		m := attrs[i].Scalar()
		k = k.Add(r.pk.YTilde[i].ScalarMul(m))
		kTerms = append(kTerms, nizk.G2Term{Base: r.pk.YTilde[i], Secret: nizk.SecretRef(pos)})
		secrets = append(secrets, m)
	}
	k = k.Add(r.pk.GTilde.ScalarMul(tBlind))
	kTerms = append(kTerms, nizk.G2Term{Base: r.pk.GTilde, Secret: nizk.SecretRef(tIndex)})
	secrets = append(secrets, tBlind)
	kEq := nizk.G2Equation{Public: k, Constant: r.pk.XTilde, Terms: kTerms}

	serviceBase, err := curve.HashToG1(serviceName, []byte(curve.DomainSeparator+"/service"))
	if err != nil {
		return wire.IdProof{}, err
	}
	s := attrs[primarySecretIndex].Scalar()
	phi := serviceBase.ScalarMul(s)
	phiEq := nizk.G1Equation{
		Public: phi,
		Terms:  []nizk.G1Term{{Base: serviceBase, Secret: nizk.SecretRef(hiddenPos[primarySecretIndex])}},
	}

	equations := []nizk.Equation{kEq, phiEq}
	domain := ps.DomainProveID
	var escrowCT *wire.EscrowCiphertext
	if esc != nil {
		domain = ps.DomainProveIDEscrow
		gamma := attrs[esc.IdentityAttributeIndex].Scalar()
		eps, err := curve.RandomNonZeroScalar()
		if err != nil {
			return wire.IdProof{}, fmt.Errorf("%w: %v", ps.ErrRandomnessUnavailable, err)
		}
		epsIndex := numSecrets
		numSecrets++
		secrets = append(secrets, eps)

		e1 := esc.Params.GH.ScalarMul(eps)
		e2 := esc.AuthorityPublicKey.YAuth.ScalarMul(eps).Add(esc.Params.H.ScalarMul(gamma))

		e1Eq := nizk.G1Equation{Public: e1, Terms: []nizk.G1Term{{Base: esc.Params.GH, Secret: nizk.SecretRef(epsIndex)}}}
		e2Eq := nizk.G1Equation{Public: e2, Terms: []nizk.G1Term{
			{Base: esc.AuthorityPublicKey.YAuth, Secret: nizk.SecretRef(epsIndex)},
			{Base: esc.Params.H, Secret: nizk.SecretRef(hiddenPos[esc.IdentityAttributeIndex])},
		}}
		equations = append(equations, e1Eq, e2Eq)
		escrowCT = &wire.EscrowCiphertext{E1: e1, E2: e2}
	}

	stmt := nizk.Statement{Equations: equations, NumSecrets: numSecrets}
	proof, err := nizk.Prove(domain, stmt, secrets, associatedData)
	if err != nil {
		return wire.IdProof{}, err
	}

	r.debug("prove_id: built presentation", "escrow", esc != nil, "hidden", len(hiddenIdx))
	return wire.IdProof{
		Sigma1Prime: sigma1Prime,
		Sigma2Prime: sigma2Prime,
		K:           k,
		Phi:         phi,
		C:           proof.Challenge,
		Rs:          proof.Responses,
		Attrs:       attrs.WireValues(),
		Escrow:      escrowCT,
	}, nil
}

// ProveIDNoEscrow is ProveID without an identity-escrow ciphertext.
func (r *Requester) ProveIDNoEscrow(cred ps.Credential, attrs ps.AttributeVector, associatedData, serviceName []byte, primarySecretIndex int) (wire.IdProof, error) {
	return r.ProveID(cred, attrs, associatedData, serviceName, primarySecretIndex, nil)
}
