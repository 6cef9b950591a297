package ps

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elpasso/ps-core/curve"
)

func fixedAttrs(n int) AttributeVector {
	out := make(AttributeVector, n)
	for i := range out {
		if i%2 == 0 {
			out[i] = Revealed{Value: []byte("value")}
		} else {
			out[i] = Hidden{Value: []byte("secret")}
		}
	}
	return out
}

func TestKeyGenProducesValidPublicKey(t *testing.T) {
	sk, pk, err := KeyGen(4)
	require.NoError(t, err)
	require.NoError(t, pk.Validate())
	require.Equal(t, 4, pk.NumAttributes())
	require.True(t, pk.XTilde.Equal(curve.G2Generator().ScalarMul(sk.X)))
}

func TestKeyGenRejectsNonPositiveCount(t *testing.T) {
	_, _, err := KeyGen(0)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformedInput))
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	sk, pk, err := KeyGen(3)
	require.NoError(t, err)
	attrs := fixedAttrs(3)

	cred, err := Sign(sk, attrs)
	require.NoError(t, err)

	ok, err := cred.Verify(pk, attrs)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyRejectsWrongAttributes(t *testing.T) {
	sk, pk, err := KeyGen(3)
	require.NoError(t, err)
	attrs := fixedAttrs(3)

	cred, err := Sign(sk, attrs)
	require.NoError(t, err)

	tampered := fixedAttrs(3)
	tampered[0] = Revealed{Value: []byte("different-value")}

	ok, err := cred.Verify(pk, tampered)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifyRejectsAttributeCountMismatch(t *testing.T) {
	sk, pk, err := KeyGen(3)
	require.NoError(t, err)
	attrs := fixedAttrs(3)
	cred, err := Sign(sk, attrs)
	require.NoError(t, err)

	_, err = cred.Verify(pk, fixedAttrs(2))
	require.True(t, errors.Is(err, ErrAttributeCountMismatch))
}

func TestVerifyRejectsIdentitySigma1(t *testing.T) {
	_, pk, err := KeyGen(2)
	require.NoError(t, err)
	cred := Credential{Sigma1: curve.G1Identity(), Sigma2: curve.G1Identity()}
	_, err = cred.Verify(pk, fixedAttrs(2))
	require.True(t, errors.Is(err, ErrMalformedInput))
}

func TestRandomizePreservesValidityAndChangesEncoding(t *testing.T) {
	sk, pk, err := KeyGen(3)
	require.NoError(t, err)
	attrs := fixedAttrs(3)
	cred, err := Sign(sk, attrs)
	require.NoError(t, err)

	r, err := curve.RandomNonZeroScalar()
	require.NoError(t, err)
	randomized := cred.Randomize(r)

	require.False(t, randomized.Sigma1.Equal(cred.Sigma1))
	require.False(t, randomized.Sigma2.Equal(cred.Sigma2))

	ok, err := randomized.Verify(pk, attrs)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestPublicKeyWireRoundTrip(t *testing.T) {
	_, pk, err := KeyGen(3)
	require.NoError(t, err)
	back, err := PublicKeyFromWire(pk.ToWire())
	require.NoError(t, err)
	require.True(t, back.G.Equal(pk.G))
	require.True(t, back.XTilde.Equal(pk.XTilde))
	require.Equal(t, len(pk.Y), len(back.Y))
}

func TestHiddenAndRevealedScalarsAgreeOnEqualValue(t *testing.T) {
	value := []byte("same-bytes")
	revealed := Revealed{Value: value}
	hidden := Hidden{Value: value}
	require.True(t, revealed.Scalar().Equal(hidden.Scalar()))
	require.NotNil(t, revealed.WireValue())
	require.Nil(t, hidden.WireValue())
}

func TestHiddenIndices(t *testing.T) {
	attrs := fixedAttrs(5)
	require.Equal(t, []int{1, 3}, attrs.HiddenIndices())
}
