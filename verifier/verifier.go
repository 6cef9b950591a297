package verifier

import (
	"fmt"

	log "github.com/luxfi/log"

	"github.com/elpasso/ps-core/curve"
	"github.com/elpasso/ps-core/escrow"
	"github.com/elpasso/ps-core/nizk"
	"github.com/elpasso/ps-core/ps"
	"github.com/elpasso/ps-core/wire"
)

// Verifier is a relying-party instance bound to a single IdP public key.
type Verifier struct {
	pk  ps.PublicKey
	log log.Logger
}

// New creates a Verifier bound to an IdP's public key.
func New(pk ps.PublicKey) *Verifier {
	return &Verifier{pk: pk, log: log.NewTestLogger(log.InfoLevel)}
}

func (v *Verifier) warn(msg string, ctx ...interface{})  { v.log.Warn(msg, ctx...) }
func (v *Verifier) debug(msg string, ctx ...interface{}) { v.log.Debug(msg, ctx...) }

// Verify checks a credential against a fully disclosed attribute vector.
// It collapses every internal failure reason to a single bool, per §7.
func (v *Verifier) Verify(cred ps.Credential, attrs ps.AttributeVector) bool {
	ok, err := cred.Verify(v.pk, attrs)
	if err != nil {
		v.warn("verify: rejected", "err", err)
		return false
	}
	return ok
}

// escrowInput bundles the escrow-authority parameters VerifyID checks
// an IdProof's escrow suffix against.
type escrowInput struct {
	params escrow.Params
	pub    escrow.PublicKey
}

// VerifyID checks p against associatedData, serviceName, and a required
// identity-escrow ciphertext encrypted under authorityPub over
// escrowParams. primarySecretIndex and identityAttributeIndex name which
// attribute slots back the pseudonym and the escrowed identity (§9's
// explicit-index redesign — see requester.ProveID's doc comment).
func (v *Verifier) VerifyID(p wire.IdProof, associatedData, serviceName []byte, escrowParams escrow.Params, authorityPub escrow.PublicKey, primarySecretIndex, identityAttributeIndex int) bool {
	if p.Escrow == nil {
		v.warn("verify_id: escrow required but absent")
		return false
	}
	ok, err := v.verifyID(p, associatedData, serviceName, primarySecretIndex, &escrowInput{params: escrowParams, pub: authorityPub}, identityAttributeIndex)
	if err != nil {
		v.warn("verify_id: rejected", "err", err)
		return false
	}
	return ok
}

// VerifyIDNoEscrow checks p without any identity-escrow ciphertext; p
// must not carry one.
func (v *Verifier) VerifyIDNoEscrow(p wire.IdProof, associatedData, serviceName []byte, primarySecretIndex int) bool {
	if p.Escrow != nil {
		v.warn("verify_id_no_escrow: unexpected escrow ciphertext present")
		return false
	}
	ok, err := v.verifyID(p, associatedData, serviceName, primarySecretIndex, nil, 0)
	if err != nil {
		v.warn("verify_id_no_escrow: rejected", "err", err)
		return false
	}
	return ok
}

func (v *Verifier) verifyID(p wire.IdProof, associatedData, serviceName []byte, primarySecretIndex int, esc *escrowInput, identityAttributeIndex int) (bool, error) {
	n := v.pk.NumAttributes()
	if len(p.Attrs) != n {
		return false, fmt.Errorf("%w: key has %d slots, proof has %d", ps.ErrAttributeCountMismatch, n, len(p.Attrs))
	}
	if primarySecretIndex < 0 || primarySecretIndex >= n || len(p.Attrs[primarySecretIndex]) != 0 {
		return false, fmt.Errorf("%w: primary secret index %d is not hidden in this proof", ps.ErrProtocolMisuse, primarySecretIndex)
	}
	if esc != nil {
		if identityAttributeIndex < 0 || identityAttributeIndex >= n || len(p.Attrs[identityAttributeIndex]) != 0 {
			return false, fmt.Errorf("%w: identity attribute index %d is not hidden in this proof", ps.ErrProtocolMisuse, identityAttributeIndex)
		}
	}

	var hiddenIdx []int
	for i, val := range p.Attrs {
		if len(val) == 0 {
			hiddenIdx = append(hiddenIdx, i)
		}
	}
	hiddenPos := make(map[int]int, len(hiddenIdx))
	for pos, i := range hiddenIdx {
		hiddenPos[i] = pos
	}
	tIndex := len(hiddenIdx)
	numSecrets := len(hiddenIdx) + 1

	kTerms := make([]nizk.G2Term, 0, numSecrets)
	for pos, i := range hiddenIdx {
		kTerms = append(kTerms, nizk.G2Term{Base: v.pk.YTilde[i], Secret: nizk.SecretRef(pos)})
	}
	kTerms = append(kTerms, nizk.G2Term{Base: v.pk.GTilde, Secret: nizk.SecretRef(tIndex)})
	kEq := nizk.G2Equation{Public: p.K, Constant: v.pk.XTilde, Terms: kTerms}

	serviceBase, err := curve.HashToG1(serviceName, []byte(curve.DomainSeparator+"/service"))
	if err != nil {
		return false, err
	}
	phiEq := nizk.G1Equation{
		Public: p.Phi,
		Terms:  []nizk.G1Term{{Base: serviceBase, Secret: nizk.SecretRef(hiddenPos[primarySecretIndex])}},
	}

	equations := []nizk.Equation{kEq, phiEq}
	domain := ps.DomainProveID
	if esc != nil {
		domain = ps.DomainProveIDEscrow
		numSecrets++
		epsIndex := numSecrets - 1
		e1Eq := nizk.G1Equation{Public: p.Escrow.E1, Terms: []nizk.G1Term{{Base: esc.params.GH, Secret: nizk.SecretRef(epsIndex)}}}
		e2Eq := nizk.G1Equation{Public: p.Escrow.E2, Terms: []nizk.G1Term{
			{Base: esc.pub.YAuth, Secret: nizk.SecretRef(epsIndex)},
			{Base: esc.params.H, Secret: nizk.SecretRef(hiddenPos[identityAttributeIndex])},
		}}
		equations = append(equations, e1Eq, e2Eq)
	}

	stmt := nizk.Statement{Equations: equations, NumSecrets: numSecrets}
	proof := nizk.Proof{Challenge: p.C, Responses: p.Rs}
	if !nizk.Verify(domain, stmt, proof, associatedData) {
		return false, fmt.Errorf("%w", ps.ErrNizkRejected)
	}

	kTilde := p.K
	for i, val := range p.Attrs {
		if len(val) == 0 {
			continue
		}
		m := curve.HashToScalar(val)
		kTilde = kTilde.Add(v.pk.YTilde[i].ScalarMul(m))
	}

	if p.Sigma1Prime.IsZero() {
		return false, fmt.Errorf("%w: σ′₁ is the identity element", ps.ErrMalformedInput)
	}
	ok, err := curve.CredentialEquationHolds(p.Sigma1Prime, kTilde, p.Sigma2Prime)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	v.debug("verify_id: accepted", "escrow", esc != nil)
	return true, nil
}
