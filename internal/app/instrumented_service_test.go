//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MGTheTrain/cryptovault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/cryptovault/internal/pkg/metrics"
	"github.com/MGTheTrain/cryptovault/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) ObserveOperation(operation, algorithm, result string, elapsed time.Duration) {
	m.Called(operation, algorithm, result, elapsed)
}

func TestInstrumentedCryptoService(t *testing.T) {
	inner, _ := setupCryptoService(t)
	recorder := &mockRecorder{}
	service := NewInstrumentedCryptoService(inner, recorder, testutil.SetupTestLogger(t))
	ctx := context.Background()

	recorder.On("ObserveOperation", "hash", "SHA-256", "success", mock.AnythingOfType("time.Duration")).Once()
	recorder.On("ObserveOperation", "hash", "unsupported", "unsupported_algorithm", mock.AnythingOfType("time.Duration")).Once()
	recorder.On("ObserveOperation", "encrypt", "RSA-OAEP", "key_required", mock.AnythingOfType("time.Duration")).Once()
	recorder.On("ObserveOperation", "generate_key", "AES", "success", mock.AnythingOfType("time.Duration")).Once()

	digest, err := service.Hash(ctx, cryptoalg.HashSHA256, "abc", cryptoalg.FormatHex)
	require.NoError(t, err)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", digest)

	_, err = service.Hash(ctx, "SHA-3-512", "abc", cryptoalg.FormatHex)
	assert.ErrorIs(t, err, cryptoalg.ErrUnsupportedAlgorithm)

	_, err = service.Encrypt(ctx, cryptoalg.CipherRSAOAEP, "x", cryptoalg.GenerateNewKey{}, cryptoalg.FormatBase64)
	assert.ErrorIs(t, err, cryptoalg.ErrKeyRequired)

	_, err = service.GenerateKey(ctx, cryptoalg.KeyTypeAES, cryptoalg.KeyOptions{})
	assert.NoError(t, err)

	assert.Equal(t, inner.Algorithms(), service.Algorithms())
	recorder.AssertExpectations(t)
}

func TestInstrumentedCryptoService_BoundsAlgorithmLabels(t *testing.T) {
	inner, _ := setupCryptoService(t)
	collector, err := metrics.NewCollector()
	require.NoError(t, err)
	service := NewInstrumentedCryptoService(inner, collector, testutil.SetupTestLogger(t))
	ctx := context.Background()

	for i := 0; i < 200; i++ {
		tag := fmt.Sprintf("junk-%d", i)
		_, err := service.Encrypt(ctx, cryptoalg.CipherAlgorithm(tag), "x", cryptoalg.GenerateNewKey{}, "")
		require.ErrorIs(t, err, cryptoalg.ErrUnsupportedAlgorithm)
		_, err = service.Hash(ctx, cryptoalg.HashAlgorithm(tag), "x", "")
		require.ErrorIs(t, err, cryptoalg.ErrUnsupportedAlgorithm)
		_, err = service.GenerateKey(ctx, cryptoalg.KeyType(tag), cryptoalg.KeyOptions{})
		require.ErrorIs(t, err, cryptoalg.ErrUnsupportedAlgorithm)
		_, err = service.Sign(ctx, cryptoalg.SignatureAlgorithm(tag), "x", "a2V5", "")
		require.Error(t, err)
	}

	rec := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var counterSeries int
	for _, line := range strings.Split(rec.Body.String(), "\n") {
		if strings.HasPrefix(line, "cryptovault_operations_total{") {
			counterSeries++
			assert.Contains(t, line, `algorithm="unsupported"`)
		}
	}
	assert.Equal(t, 4, counterSeries)
	assert.NotContains(t, rec.Body.String(), "junk-")
}

func TestAlgorithmLabel(t *testing.T) {
	assert.Equal(t, "AES-256-GCM", algorithmLabel(cryptoalg.CipherAES256GCM, cryptoalg.ParseCipherAlgorithm))
	assert.Equal(t, "ML-KEM-768", algorithmLabel(cryptoalg.KeyTypeMLKEM768, cryptoalg.ParseKeyType))
	assert.Equal(t, "unsupported", algorithmLabel(cryptoalg.HashAlgorithm("SHA-3-512"), cryptoalg.ParseHashAlgorithm))
	assert.Equal(t, "unsupported", algorithmLabel(cryptoalg.SignatureAlgorithm("ed25519"), cryptoalg.ParseSignatureAlgorithm))
}

func TestErrorResult(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{nil, "success"},
		{fmt.Errorf("%w: x", cryptoalg.ErrInvalidInput), "invalid_input"},
		{fmt.Errorf("%w: x", cryptoalg.ErrUnsupportedAlgorithm), "unsupported_algorithm"},
		{fmt.Errorf("wrapped: %w", fmt.Errorf("%w: x", cryptoalg.ErrMalformedEncoding)), "malformed_encoding"},
		{cryptoalg.ErrKeyRequired, "key_required"},
		{cryptoalg.ErrCryptoFailure, "crypto_failure"},
		{context.Canceled, "canceled"},
		{errors.New("boom"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, errorResult(tt.err))
		})
	}
}
