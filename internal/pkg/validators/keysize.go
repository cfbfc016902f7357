package validators

import (
	"github.com/MGTheTrain/cryptovault/internal/domain/cryptoalg"

	"github.com/go-playground/validator/v10"
)

// KeySizeValidation validates the key size against the sibling Type field (AES or RSA).
// Zero selects the default size; other key types ignore the size.
func KeySizeValidation(fl validator.FieldLevel) bool {
	keyType := fl.Parent().FieldByName("Type").String()
	keySize := fl.Field().Int()

	if keySize == 0 {
		return true
	}

	switch cryptoalg.KeyType(keyType) {
	case cryptoalg.KeyTypeAES:
		return keySize == 128 || keySize == 192 || keySize == 256
	case cryptoalg.KeyTypeRSA:
		return keySize == 1024 || keySize == 2048 || keySize == 3072 || keySize == 4096
	default:
		return true
	}
}
