package validators

import (
	"github.com/MGTheTrain/cryptovault/internal/domain/cryptoalg"

	"github.com/go-playground/validator/v10"
)

// OutputFormatValidation accepts an empty value or any known output format, case-insensitively.
func OutputFormatValidation(fl validator.FieldLevel) bool {
	_, err := cryptoalg.ParseOutputFormat(fl.Field().String())
	return err == nil
}

// Register adds the custom validators under the tags used by request DTOs.
func Register(validate *validator.Validate) error {
	if err := validate.RegisterValidation("keysize", KeySizeValidation); err != nil {
		return err
	}
	return validate.RegisterValidation("outputformat", OutputFormatValidation)
}
