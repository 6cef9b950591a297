package signer

import (
	"fmt"

	log "github.com/luxfi/log"

	"github.com/elpasso/ps-core/curve"
	"github.com/elpasso/ps-core/nizk"
	"github.com/elpasso/ps-core/ps"
	"github.com/elpasso/ps-core/wire"
)

// Signer is an IdP instance: it owns one key pair and issues credentials
// against blinded requests. An instance is pure with respect to
// ProvideID — no per-request state survives between calls.
type Signer struct {
	sk  ps.SecretKey
	pk  ps.PublicKey
	log log.Logger
}

// New creates a Signer with a freshly generated key pair over
// params.NumAttributes attribute slots, using the curve's default
// generators unless params.G/GTilde override them.
func New(params Params) (*Signer, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	var sk ps.SecretKey
	var pk ps.PublicKey
	var err error
	if params.G != nil {
		sk, pk, err = ps.KeyGenWithGenerators(params.NumAttributes, *params.G, *params.GTilde)
	} else {
		sk, pk, err = ps.KeyGen(params.NumAttributes)
	}
	if err != nil {
		return nil, err
	}
	return &Signer{sk: sk, pk: pk, log: log.NewTestLogger(log.InfoLevel)}, nil
}

// NewWithSecretKey wraps an existing key pair instead of generating one,
// for a signer rejoining state from durable storage.
func NewWithSecretKey(sk ps.SecretKey) *Signer {
	return &Signer{sk: sk, pk: sk.PublicKey(), log: log.NewTestLogger(log.InfoLevel)}
}

// PublicKey returns the instance's public key.
func (s *Signer) PublicKey() ps.PublicKey { return s.pk }

// MaxAttributes returns n, the fixed attribute-vector width this signer
// issues credentials over.
func (s *Signer) MaxAttributes() int { return s.pk.NumAttributes() }

func (s *Signer) warn(msg string, ctx ...interface{})  { s.log.Warn(msg, ctx...) }
func (s *Signer) debug(msg string, ctx ...interface{}) { s.log.Debug(msg, ctx...) }

// ProvideID verifies a blind-signing request and, if the RequestID NIZK
// checks out, issues a credential over it. A rejection returns no
// partial state: either a fully formed Credential or an error, never
// both (§4.3).
func (s *Signer) ProvideID(req wire.CredentialRequest, associatedData []byte) (ps.Credential, error) {
	n := s.pk.NumAttributes()
	if len(req.Attrs) != n {
		s.warn("provide_id: attribute count mismatch", "want", n, "got", len(req.Attrs))
		return ps.Credential{}, fmt.Errorf("%w: key has %d slots, request has %d", ps.ErrAttributeCountMismatch, n, len(req.Attrs))
	}

	var hiddenIdx []int
	for i, v := range req.Attrs {
		if len(v) == 0 {
			hiddenIdx = append(hiddenIdx, i)
		}
	}

	numSecrets := len(hiddenIdx) + 1 // hidden attributes, then t
	terms := make([]nizk.G1Term, 0, numSecrets)
	for pos, i := range hiddenIdx {
		terms = append(terms, nizk.G1Term{Base: s.pk.Y[i], Secret: nizk.SecretRef(pos)})
	}
	terms = append(terms, nizk.G1Term{Base: s.pk.G, Secret: nizk.SecretRef(len(hiddenIdx))})

	stmt := nizk.Statement{
		Equations:  []nizk.Equation{nizk.G1Equation{Public: req.A, Terms: terms}},
		NumSecrets: numSecrets,
	}
	proof := nizk.Proof{Challenge: req.C, Responses: req.Rs}
	if !nizk.Verify(ps.DomainRequestID, stmt, proof, associatedData) {
		s.warn("provide_id: nizk rejected")
		return ps.Credential{}, fmt.Errorf("%w", ps.ErrNizkRejected)
	}

	revealedSum := curve.G1Identity()
	for i, v := range req.Attrs {
		if len(v) == 0 {
			continue
		}
		m := curve.HashToScalar(v)
		revealedSum = revealedSum.Add(s.pk.Y[i].ScalarMul(m))
	}
	aStar := req.A.Add(revealedSum)

	u, err := curve.RandomNonZeroScalar()
	if err != nil {
		return ps.Credential{}, fmt.Errorf("%w: %v", ps.ErrRandomnessUnavailable, err)
	}
	xG := s.pk.G.ScalarMul(s.sk.X)
	sigma1 := s.pk.G.ScalarMul(u)
	sigma2 := xG.Add(aStar).ScalarMul(u)

	s.debug("provide_id: issued credential", "hidden", len(hiddenIdx), "revealed", n-len(hiddenIdx))
	return ps.Credential{Sigma1: sigma1, Sigma2: sigma2}, nil
}
