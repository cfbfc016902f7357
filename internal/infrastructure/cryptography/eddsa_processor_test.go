//go:build unit
// +build unit

package cryptography

import (
	"testing"

	"github.com/MGTheTrain/cryptovault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/cryptovault/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEd25519Processor(t *testing.T) {
	processor, err := NewEd25519Processor(testutil.SetupTestLogger(t))
	require.NoError(t, err)

	priv, pub, err := processor.GenerateKeys()
	require.NoError(t, err)

	t.Run("SignVerify", func(t *testing.T) {
		msg := []byte("edwards")
		sig, err := processor.Sign(msg, priv)
		require.NoError(t, err)
		assert.Len(t, sig, 64)

		valid, err := processor.Verify(msg, sig, pub)
		require.NoError(t, err)
		assert.True(t, valid)

		valid, err = processor.Verify([]byte("edward"), sig, pub)
		require.NoError(t, err)
		assert.False(t, valid)

		valid, err = processor.Verify(msg, sig[:10], pub)
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("Deterministic", func(t *testing.T) {
		first, err := processor.Sign([]byte("same"), priv)
		require.NoError(t, err)
		second, err := processor.Sign([]byte("same"), priv)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("MarshalParseRoundTrip", func(t *testing.T) {
		pubDER, err := processor.MarshalPublicKey(pub)
		require.NoError(t, err)
		privDER, err := processor.MarshalPrivateKey(priv)
		require.NoError(t, err)

		parsedPub, err := processor.ParsePublicKey(pubDER)
		require.NoError(t, err)
		assert.Equal(t, pub, parsedPub)

		parsedPriv, err := processor.ParsePrivateKey(privDER)
		require.NoError(t, err)
		assert.Equal(t, priv, parsedPriv)
	})

	t.Run("InvalidKeyLengths", func(t *testing.T) {
		_, err := processor.Sign([]byte("x"), priv[:10])
		assert.ErrorIs(t, err, cryptoalg.ErrCryptoFailure)

		_, err = processor.Verify([]byte("x"), make([]byte, 64), pub[:10])
		assert.ErrorIs(t, err, cryptoalg.ErrCryptoFailure)
	})
}

func TestSchemeProcessor(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	for _, name := range []string{SchemeEd448, SchemeMLDSA65} {
		t.Run(name, func(t *testing.T) {
			processor, err := NewSchemeProcessor(name, logger)
			require.NoError(t, err)
			assert.Equal(t, name, processor.Name())

			pub, priv, err := processor.GenerateKeys()
			require.NoError(t, err)

			msg := []byte("post quantum ready")
			sig, err := processor.Sign(msg, priv)
			require.NoError(t, err)

			valid, err := processor.Verify(msg, sig, pub)
			require.NoError(t, err)
			assert.True(t, valid)

			valid, err = processor.Verify([]byte("tampered"), sig, pub)
			require.NoError(t, err)
			assert.False(t, valid)

			valid, err = processor.Verify(msg, sig[1:], pub)
			require.NoError(t, err)
			assert.False(t, valid)

			_, err = processor.Sign(msg, priv[1:])
			assert.ErrorIs(t, err, cryptoalg.ErrCryptoFailure)

			_, err = processor.Verify(msg, sig, pub[1:])
			assert.ErrorIs(t, err, cryptoalg.ErrCryptoFailure)
		})
	}

	_, err := NewSchemeProcessor("Dilithium-Unknown", logger)
	assert.ErrorIs(t, err, cryptoalg.ErrUnsupportedAlgorithm)
}
