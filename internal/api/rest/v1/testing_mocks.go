//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/MGTheTrain/cryptovault/internal/domain/cryptoalg"

	"github.com/stretchr/testify/mock"
)

// MockCryptoService is a mock implementation of CryptoService
type MockCryptoService struct {
	mock.Mock
}

func (m *MockCryptoService) GenerateKey(ctx context.Context, keyType cryptoalg.KeyType, options cryptoalg.KeyOptions) (*cryptoalg.KeyMaterial, error) {
	args := m.Called(ctx, keyType, options)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cryptoalg.KeyMaterial), args.Error(1)
}

func (m *MockCryptoService) Encrypt(ctx context.Context, algorithm cryptoalg.CipherAlgorithm, plaintext string, source cryptoalg.KeySource, format cryptoalg.OutputFormat) (*cryptoalg.EncryptResult, error) {
	args := m.Called(ctx, algorithm, plaintext, source, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cryptoalg.EncryptResult), args.Error(1)
}

func (m *MockCryptoService) Decrypt(ctx context.Context, algorithm cryptoalg.CipherAlgorithm, ciphertext, key string, inputFormat cryptoalg.OutputFormat) (string, error) {
	args := m.Called(ctx, algorithm, ciphertext, key, inputFormat)
	return args.String(0), args.Error(1)
}

func (m *MockCryptoService) Hash(ctx context.Context, algorithm cryptoalg.HashAlgorithm, input string, format cryptoalg.OutputFormat) (string, error) {
	args := m.Called(ctx, algorithm, input, format)
	return args.String(0), args.Error(1)
}

func (m *MockCryptoService) Sign(ctx context.Context, algorithm cryptoalg.SignatureAlgorithm, input, privateKey string, format cryptoalg.OutputFormat) (string, error) {
	args := m.Called(ctx, algorithm, input, privateKey, format)
	return args.String(0), args.Error(1)
}

func (m *MockCryptoService) Verify(ctx context.Context, algorithm cryptoalg.SignatureAlgorithm, input, signature, publicKey string, inputFormat cryptoalg.OutputFormat) (bool, error) {
	args := m.Called(ctx, algorithm, input, signature, publicKey, inputFormat)
	return args.Bool(0), args.Error(1)
}

func (m *MockCryptoService) Algorithms() cryptoalg.Catalogue {
	args := m.Called()
	return args.Get(0).(cryptoalg.Catalogue)
}
