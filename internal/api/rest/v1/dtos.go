package v1

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/cryptovault/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// EncryptRequest is the body of POST /encrypt. An empty Key asks symmetric ciphers to mint one.
type EncryptRequest struct {
	Algorithm    string `json:"algorithm" validate:"required"`
	Input        string `json:"input" validate:"required"`
	Key          string `json:"key,omitempty"`
	OutputFormat string `json:"outputFormat,omitempty" validate:"outputformat"`
}

// DecryptRequest is the body of POST /decrypt
type DecryptRequest struct {
	Algorithm   string `json:"algorithm" validate:"required"`
	Input       string `json:"input" validate:"required"`
	Key         string `json:"key" validate:"required"`
	// InputFormat is Base64 or Hex. Empty tries base64 first, so hex payloads must set Hex.
	InputFormat string `json:"inputFormat,omitempty" validate:"outputformat"`
}

// HashRequest is the body of POST /hash. Empty input is a valid message.
type HashRequest struct {
	Algorithm    string `json:"algorithm" validate:"required"`
	Input        string `json:"input"`
	OutputFormat string `json:"outputFormat,omitempty" validate:"outputformat"`
}

// GenerateKeyRequest is the body of POST /generate-key
type GenerateKeyRequest struct {
	Type  string `json:"type" validate:"required"`
	Size  int    `json:"size,omitempty" validate:"min=0,keysize"`
	Curve string `json:"curve,omitempty"`
}

// SignRequest is the body of POST /sign
type SignRequest struct {
	Algorithm    string `json:"algorithm" validate:"required"`
	Input        string `json:"input"`
	PrivateKey   string `json:"privateKey" validate:"required"`
	OutputFormat string `json:"outputFormat,omitempty" validate:"outputformat"`
}

// VerifyRequest is the body of POST /verify
type VerifyRequest struct {
	Algorithm   string `json:"algorithm" validate:"required"`
	Input       string `json:"input"`
	Signature   string `json:"signature" validate:"required"`
	PublicKey   string `json:"publicKey" validate:"required"`
	// InputFormat is Base64 or Hex. Empty tries base64 first, so hex payloads must set Hex.
	InputFormat string `json:"inputFormat,omitempty" validate:"outputformat"`
}

// Response is the envelope returned by every crypto endpoint
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Key     string      `json:"key,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Validate for validating EncryptRequest struct
func (r *EncryptRequest) Validate() error {
	return validateStruct(r)
}

// Validate for validating DecryptRequest struct
func (r *DecryptRequest) Validate() error {
	return validateStruct(r)
}

// Validate for validating HashRequest struct
func (r *HashRequest) Validate() error {
	return validateStruct(r)
}

// Validate for validating GenerateKeyRequest struct
func (r *GenerateKeyRequest) Validate() error {
	return validateStruct(r)
}

// Validate for validating SignRequest struct
func (r *SignRequest) Validate() error {
	return validateStruct(r)
}

// Validate for validating VerifyRequest struct
func (r *VerifyRequest) Validate() error {
	return validateStruct(r)
}

func validateStruct(s interface{}) error {
	validate := validator.New()

	if err := validators.Register(validate); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
