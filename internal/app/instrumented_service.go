package app

import (
	"context"
	"errors"
	"time"

	"github.com/MGTheTrain/cryptovault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/cryptovault/internal/pkg/logger"
	"github.com/MGTheTrain/cryptovault/internal/pkg/metrics"
)

// instrumentedCryptoService decorates a CryptoService with metrics and failure logging
type instrumentedCryptoService struct {
	next     cryptoalg.CryptoService
	recorder metrics.Recorder
	logger   logger.Logger
}

// NewInstrumentedCryptoService wraps next so that every operation is counted, timed and, on failure, logged
func NewInstrumentedCryptoService(next cryptoalg.CryptoService, recorder metrics.Recorder, logger logger.Logger) cryptoalg.CryptoService {
	return &instrumentedCryptoService{
		next:     next,
		recorder: recorder,
		logger:   logger,
	}
}

// unsupportedLabel replaces algorithm tags outside the closed sets so label cardinality stays bounded
const unsupportedLabel = "unsupported"

// algorithmLabel returns tag when parse accepts it, unsupportedLabel otherwise
func algorithmLabel[T ~string](tag T, parse func(string) (T, error)) string {
	if _, err := parse(string(tag)); err != nil {
		return unsupportedLabel
	}
	return string(tag)
}

func (s *instrumentedCryptoService) observe(operation, algorithm string, start time.Time, err error) {
	result := errorResult(err)
	s.recorder.ObserveOperation(operation, algorithm, result, time.Since(start))
	if err != nil {
		s.logger.Warn(operation, " ", algorithm, " failed: ", err)
	}
}

// GenerateKey implements CryptoService
func (s *instrumentedCryptoService) GenerateKey(ctx context.Context, keyType cryptoalg.KeyType, options cryptoalg.KeyOptions) (*cryptoalg.KeyMaterial, error) {
	start := time.Now()
	material, err := s.next.GenerateKey(ctx, keyType, options)
	s.observe("generate_key", algorithmLabel(keyType, cryptoalg.ParseKeyType), start, err)
	return material, err
}

// Encrypt implements CryptoService
func (s *instrumentedCryptoService) Encrypt(ctx context.Context, algorithm cryptoalg.CipherAlgorithm, plaintext string, source cryptoalg.KeySource, format cryptoalg.OutputFormat) (*cryptoalg.EncryptResult, error) {
	start := time.Now()
	result, err := s.next.Encrypt(ctx, algorithm, plaintext, source, format)
	s.observe("encrypt", algorithmLabel(algorithm, cryptoalg.ParseCipherAlgorithm), start, err)
	return result, err
}

// Decrypt implements CryptoService
func (s *instrumentedCryptoService) Decrypt(ctx context.Context, algorithm cryptoalg.CipherAlgorithm, ciphertext, key string, inputFormat cryptoalg.OutputFormat) (string, error) {
	start := time.Now()
	plaintext, err := s.next.Decrypt(ctx, algorithm, ciphertext, key, inputFormat)
	s.observe("decrypt", algorithmLabel(algorithm, cryptoalg.ParseCipherAlgorithm), start, err)
	return plaintext, err
}

// Hash implements CryptoService
func (s *instrumentedCryptoService) Hash(ctx context.Context, algorithm cryptoalg.HashAlgorithm, input string, format cryptoalg.OutputFormat) (string, error) {
	start := time.Now()
	digest, err := s.next.Hash(ctx, algorithm, input, format)
	s.observe("hash", algorithmLabel(algorithm, cryptoalg.ParseHashAlgorithm), start, err)
	return digest, err
}

// Sign implements CryptoService
func (s *instrumentedCryptoService) Sign(ctx context.Context, algorithm cryptoalg.SignatureAlgorithm, input, privateKey string, format cryptoalg.OutputFormat) (string, error) {
	start := time.Now()
	signature, err := s.next.Sign(ctx, algorithm, input, privateKey, format)
	s.observe("sign", algorithmLabel(algorithm, cryptoalg.ParseSignatureAlgorithm), start, err)
	return signature, err
}

// Verify implements CryptoService. A rejected signature counts as a success of the operation.
func (s *instrumentedCryptoService) Verify(ctx context.Context, algorithm cryptoalg.SignatureAlgorithm, input, signature, publicKey string, inputFormat cryptoalg.OutputFormat) (bool, error) {
	start := time.Now()
	valid, err := s.next.Verify(ctx, algorithm, input, signature, publicKey, inputFormat)
	s.observe("verify", algorithmLabel(algorithm, cryptoalg.ParseSignatureAlgorithm), start, err)
	return valid, err
}

// Algorithms implements CryptoService
func (s *instrumentedCryptoService) Algorithms() cryptoalg.Catalogue {
	return s.next.Algorithms()
}

// errorResult names the metric result label for err
func errorResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, cryptoalg.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, cryptoalg.ErrUnsupportedAlgorithm):
		return "unsupported_algorithm"
	case errors.Is(err, cryptoalg.ErrMalformedEncoding):
		return "malformed_encoding"
	case errors.Is(err, cryptoalg.ErrKeyRequired):
		return "key_required"
	case errors.Is(err, cryptoalg.ErrCryptoFailure):
		return "crypto_failure"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}
