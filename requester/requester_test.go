package requester

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elpasso/ps-core/ps"
	"github.com/elpasso/ps-core/signer"
)

func scenarioAttrs() ps.AttributeVector {
	return ps.AttributeVector{
		ps.Hidden{Value: []byte("s")},
		ps.Hidden{Value: []byte("gamma")},
		ps.Revealed{Value: []byte("tp")},
	}
}

func TestRequestIDProvideIDUnblindVerifyRandomize(t *testing.T) {
	sgn, err := signer.New(signer.Params{NumAttributes: 3})
	require.NoError(t, err)
	pk := sgn.PublicKey()
	req := New(pk)

	attrs := scenarioAttrs()
	ad := []byte("hello")

	credReq, pending, err := req.RequestID(attrs, ad)
	require.NoError(t, err)

	blindCred, err := sgn.ProvideID(credReq, ad)
	require.NoError(t, err)

	cred, err := pending.Unblind(blindCred)
	require.NoError(t, err)

	ok, err := req.Verify(cred, attrs)
	require.NoError(t, err)
	require.True(t, ok)

	randomized, err := req.Randomize(cred)
	require.NoError(t, err)
	ok, err = req.Verify(randomized, attrs)
	require.NoError(t, err)
	require.True(t, ok)
	require.False(t, randomized.Sigma1.Equal(cred.Sigma1))
}

func TestUnblindTwiceIsProtocolMisuse(t *testing.T) {
	sgn, err := signer.New(signer.Params{NumAttributes: 3})
	require.NoError(t, err)
	pk := sgn.PublicKey()
	req := New(pk)
	attrs := scenarioAttrs()
	ad := []byte("hello")

	credReq, pending, err := req.RequestID(attrs, ad)
	require.NoError(t, err)
	blindCred, err := sgn.ProvideID(credReq, ad)
	require.NoError(t, err)

	_, err = pending.Unblind(blindCred)
	require.NoError(t, err)

	_, err = pending.Unblind(blindCred)
	require.ErrorIs(t, err, ps.ErrProtocolMisuse)
}

func TestRequestIDRejectsAttributeCountMismatch(t *testing.T) {
	sgn, err := signer.New(signer.Params{NumAttributes: 3})
	require.NoError(t, err)
	req := New(sgn.PublicKey())
	_, _, err = req.RequestID(ps.AttributeVector{ps.Hidden{Value: []byte("x")}}, nil)
	require.ErrorIs(t, err, ps.ErrAttributeCountMismatch)
}

func TestProveIDRequiresPrimarySecretHidden(t *testing.T) {
	sgn, err := signer.New(signer.Params{NumAttributes: 3})
	require.NoError(t, err)
	pk := sgn.PublicKey()
	req := New(pk)
	attrs := scenarioAttrs()
	ad := []byte("hello")

	credReq, pending, err := req.RequestID(attrs, ad)
	require.NoError(t, err)
	blindCred, err := sgn.ProvideID(credReq, ad)
	require.NoError(t, err)
	cred, err := pending.Unblind(blindCred)
	require.NoError(t, err)

	// index 2 is Revealed in scenarioAttrs, not a valid primary secret index.
	_, err = req.ProveID(cred, attrs, ad, []byte("service"), 2, nil)
	require.ErrorIs(t, err, ps.ErrProtocolMisuse)
}

func TestProveIDNoEscrowBuildsPresentationWithoutEscrowSuffix(t *testing.T) {
	sgn, err := signer.New(signer.Params{NumAttributes: 3})
	require.NoError(t, err)
	pk := sgn.PublicKey()
	req := New(pk)
	attrs := scenarioAttrs()
	ad := []byte("hello")

	credReq, pending, err := req.RequestID(attrs, ad)
	require.NoError(t, err)
	blindCred, err := sgn.ProvideID(credReq, ad)
	require.NoError(t, err)
	cred, err := pending.Unblind(blindCred)
	require.NoError(t, err)

	proof, err := req.ProveIDNoEscrow(cred, attrs, ad, []byte("service"), 0)
	require.NoError(t, err)
	require.Nil(t, proof.Escrow)
}
