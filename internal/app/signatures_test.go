//go:build unit
// +build unit

package app

import (
	"context"
	"testing"

	"github.com/MGTheTrain/cryptovault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/cryptovault/internal/pkg/codec"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var signatureKeyTypes = map[cryptoalg.SignatureAlgorithm]cryptoalg.KeyType{
	cryptoalg.SignatureRSASHA256: cryptoalg.KeyTypeRSA,
	cryptoalg.SignatureECDSA:     cryptoalg.KeyTypeECDSA,
	cryptoalg.SignatureEd25519:   cryptoalg.KeyTypeEd25519,
	cryptoalg.SignatureEd448:     cryptoalg.KeyTypeEd448,
	cryptoalg.SignatureMLDSA65:   cryptoalg.KeyTypeMLDSA65,
}

func TestSignVerify_Soundness(t *testing.T) {
	service, _ := setupCryptoService(t)
	ctx := context.Background()

	for _, alg := range cryptoalg.SignatureAlgorithms() {
		t.Run(string(alg), func(t *testing.T) {
			keyType, ok := signatureKeyTypes[alg]
			require.True(t, ok)

			pair, err := service.GenerateKey(ctx, keyType, cryptoalg.KeyOptions{})
			require.NoError(t, err)
			foreign, err := service.GenerateKey(ctx, keyType, cryptoalg.KeyOptions{})
			require.NoError(t, err)

			for _, format := range []cryptoalg.OutputFormat{cryptoalg.FormatBase64, cryptoalg.FormatHex} {
				signature, err := service.Sign(ctx, alg, "signed message", pair.PrivateKey, format)
				require.NoError(t, err)

				valid, err := service.Verify(ctx, alg, "signed message", signature, pair.PublicKey, format)
				require.NoError(t, err)
				assert.True(t, valid, "genuine signature")

				valid, err = service.Verify(ctx, alg, "signed messagf", signature, pair.PublicKey, format)
				require.NoError(t, err)
				assert.False(t, valid, "tampered input")

				valid, err = service.Verify(ctx, alg, "signed message", signature, foreign.PublicKey, format)
				require.NoError(t, err)
				assert.False(t, valid, "foreign public key")
			}
		})
	}
}

func TestVerify_Deterministic(t *testing.T) {
	service, _ := setupCryptoService(t)
	ctx := context.Background()

	pair, err := service.GenerateKey(ctx, cryptoalg.KeyTypeEd25519, cryptoalg.KeyOptions{})
	require.NoError(t, err)

	signature, err := service.Sign(ctx, cryptoalg.SignatureEd25519, "stable", pair.PrivateKey, cryptoalg.FormatBase64)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		valid, err := service.Verify(ctx, cryptoalg.SignatureEd25519, "stable", signature, pair.PublicKey, "")
		require.NoError(t, err)
		assert.True(t, valid)
	}
}

func TestSign_Ed25519SignatureLength(t *testing.T) {
	service, _ := setupCryptoService(t)
	ctx := context.Background()

	pair, err := service.GenerateKey(ctx, cryptoalg.KeyTypeEd25519, cryptoalg.KeyOptions{})
	require.NoError(t, err)

	signature, err := service.Sign(ctx, cryptoalg.SignatureEd25519, "x", pair.PrivateKey, cryptoalg.FormatBase64)
	require.NoError(t, err)

	raw, err := codec.Base64ToBytes(signature)
	require.NoError(t, err)
	assert.Len(t, raw, 64)
}

func TestSignVerify_Errors(t *testing.T) {
	service, _ := setupCryptoService(t)
	ctx := context.Background()

	rsaPair, err := service.GenerateKey(ctx, cryptoalg.KeyTypeRSA, cryptoalg.KeyOptions{})
	require.NoError(t, err)
	edPair, err := service.GenerateKey(ctx, cryptoalg.KeyTypeEd25519, cryptoalg.KeyOptions{})
	require.NoError(t, err)

	rsaSignature, err := service.Sign(ctx, cryptoalg.SignatureRSASHA256, "x", rsaPair.PrivateKey, cryptoalg.FormatBase64)
	require.NoError(t, err)

	t.Run("unsupported algorithm", func(t *testing.T) {
		_, err := service.Sign(ctx, "DSA", "x", rsaPair.PrivateKey, cryptoalg.FormatBase64)
		assert.ErrorIs(t, err, cryptoalg.ErrUnsupportedAlgorithm)

		_, err = service.Verify(ctx, "DSA", "x", rsaSignature, rsaPair.PublicKey, "")
		assert.ErrorIs(t, err, cryptoalg.ErrUnsupportedAlgorithm)
	})

	t.Run("missing private key", func(t *testing.T) {
		_, err := service.Sign(ctx, cryptoalg.SignatureRSASHA256, "x", "", cryptoalg.FormatBase64)
		assert.ErrorIs(t, err, cryptoalg.ErrKeyRequired)
	})

	t.Run("missing public key", func(t *testing.T) {
		_, err := service.Verify(ctx, cryptoalg.SignatureRSASHA256, "x", rsaSignature, "", "")
		assert.ErrorIs(t, err, cryptoalg.ErrKeyRequired)
	})

	t.Run("malformed signature", func(t *testing.T) {
		_, err := service.Verify(ctx, cryptoalg.SignatureRSASHA256, "x", "not-base64-or-hex!!", rsaPair.PublicKey, "")
		require.ErrorIs(t, err, cryptoalg.ErrMalformedEncoding)
		assert.Contains(t, err.Error(), "invalid signature format")
	})

	t.Run("empty signature", func(t *testing.T) {
		_, err := service.Verify(ctx, cryptoalg.SignatureRSASHA256, "x", "", rsaPair.PublicKey, "")
		assert.ErrorIs(t, err, cryptoalg.ErrInvalidInput)
	})

	t.Run("key of another algorithm", func(t *testing.T) {
		_, err := service.Sign(ctx, cryptoalg.SignatureRSASHA256, "x", edPair.PrivateKey, cryptoalg.FormatBase64)
		assert.ErrorIs(t, err, cryptoalg.ErrCryptoFailure)

		_, err = service.Verify(ctx, cryptoalg.SignatureECDSA, "x", rsaSignature, rsaPair.PublicKey, "")
		assert.ErrorIs(t, err, cryptoalg.ErrCryptoFailure)
	})

	t.Run("raw scheme key of wrong length", func(t *testing.T) {
		_, err := service.Sign(ctx, cryptoalg.SignatureMLDSA65, "x", codec.BytesToBase64(make([]byte, 10)), cryptoalg.FormatBase64)
		assert.ErrorIs(t, err, cryptoalg.ErrCryptoFailure)
	})
}
