package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MGTheTrain/cryptovault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/cryptovault/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CryptoHandler defines the interface for handling crypto operations
type CryptoHandler interface {
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
	Hash(ctx *gin.Context)
	GenerateKey(ctx *gin.Context)
	Sign(ctx *gin.Context)
	Verify(ctx *gin.Context)
	Algorithms(ctx *gin.Context)
}

type cryptoHandler struct {
	cryptoService cryptoalg.CryptoService
	logger        logger.Logger
}

// NewCryptoHandler creates a new CryptoHandler
func NewCryptoHandler(cryptoService cryptoalg.CryptoService, logger logger.Logger) CryptoHandler {
	return &cryptoHandler{
		cryptoService: cryptoService,
		logger:        logger,
	}
}

// Encrypt handles the POST request to encrypt input text
// @Summary Encrypt text
// @Description Encrypt input with the chosen cipher. Symmetric ciphers mint a key when none is given and return it.
// @Tags Crypto
// @Accept json
// @Produce json
// @Param requestBody body EncryptRequest true "Encryption parameters"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 422 {object} Response
// @Router /encrypt [post]
func (handler *cryptoHandler) Encrypt(ctx *gin.Context) {
	var request EncryptRequest
	if !bindRequest(ctx, &request, request.Validate) {
		return
	}

	format, err := parseFormat(request.OutputFormat)
	if err != nil {
		handler.fail(ctx, err)
		return
	}

	result, err := handler.cryptoService.Encrypt(ctx.Request.Context(), cryptoalg.CipherAlgorithm(request.Algorithm), request.Input, cryptoalg.KeySourceFrom(request.Key), format)
	if err != nil {
		handler.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, Response{Success: true, Data: result.Data, Key: result.Key})
}

// Decrypt handles the POST request to decrypt a payload
// @Summary Decrypt text
// @Description Decrypt a base64 or hex payload produced by /encrypt.
// @Tags Crypto
// @Accept json
// @Produce json
// @Param requestBody body DecryptRequest true "Decryption parameters"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 422 {object} Response
// @Router /decrypt [post]
func (handler *cryptoHandler) Decrypt(ctx *gin.Context) {
	var request DecryptRequest
	if !bindRequest(ctx, &request, request.Validate) {
		return
	}

	format, err := parseFormat(request.InputFormat)
	if err != nil {
		handler.fail(ctx, err)
		return
	}

	plaintext, err := handler.cryptoService.Decrypt(ctx.Request.Context(), cryptoalg.CipherAlgorithm(request.Algorithm), request.Input, request.Key, format)
	if err != nil {
		handler.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, Response{Success: true, Data: plaintext})
}

// Hash handles the POST request to digest input text
// @Summary Hash text
// @Tags Crypto
// @Accept json
// @Produce json
// @Param requestBody body HashRequest true "Hash parameters"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /hash [post]
func (handler *cryptoHandler) Hash(ctx *gin.Context) {
	var request HashRequest
	if !bindRequest(ctx, &request, request.Validate) {
		return
	}

	format, err := parseFormat(request.OutputFormat)
	if err != nil {
		handler.fail(ctx, err)
		return
	}

	digest, err := handler.cryptoService.Hash(ctx.Request.Context(), cryptoalg.HashAlgorithm(request.Algorithm), request.Input, format)
	if err != nil {
		handler.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, Response{Success: true, Data: digest})
}

// GenerateKey handles the POST request to generate a key or key pair
// @Summary Generate key material
// @Description Data holds the generated key material serialized as a JSON string.
// @Tags Crypto
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeyRequest true "Key parameters"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /generate-key [post]
func (handler *cryptoHandler) GenerateKey(ctx *gin.Context) {
	var request GenerateKeyRequest
	if !bindRequest(ctx, &request, request.Validate) {
		return
	}

	material, err := handler.cryptoService.GenerateKey(ctx.Request.Context(), cryptoalg.KeyType(request.Type), cryptoalg.KeyOptions{
		Size:  request.Size,
		Curve: request.Curve,
	})
	if err != nil {
		handler.fail(ctx, err)
		return
	}

	encoded, err := json.Marshal(material)
	if err != nil {
		handler.fail(ctx, fmt.Errorf("failed to encode key material: %w", err))
		return
	}

	ctx.JSON(http.StatusOK, Response{Success: true, Data: string(encoded)})
}

// Sign handles the POST request to sign input text
// @Summary Sign text
// @Tags Crypto
// @Accept json
// @Produce json
// @Param requestBody body SignRequest true "Signing parameters"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 422 {object} Response
// @Router /sign [post]
func (handler *cryptoHandler) Sign(ctx *gin.Context) {
	var request SignRequest
	if !bindRequest(ctx, &request, request.Validate) {
		return
	}

	format, err := parseFormat(request.OutputFormat)
	if err != nil {
		handler.fail(ctx, err)
		return
	}

	signature, err := handler.cryptoService.Sign(ctx.Request.Context(), cryptoalg.SignatureAlgorithm(request.Algorithm), request.Input, request.PrivateKey, format)
	if err != nil {
		handler.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, Response{Success: true, Data: signature})
}

// Verify handles the POST request to verify a signature
// @Summary Verify a signature
// @Description Data is true when the signature matches, false otherwise.
// @Tags Crypto
// @Accept json
// @Produce json
// @Param requestBody body VerifyRequest true "Verification parameters"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 422 {object} Response
// @Router /verify [post]
func (handler *cryptoHandler) Verify(ctx *gin.Context) {
	var request VerifyRequest
	if !bindRequest(ctx, &request, request.Validate) {
		return
	}

	format, err := parseFormat(request.InputFormat)
	if err != nil {
		handler.fail(ctx, err)
		return
	}

	valid, err := handler.cryptoService.Verify(ctx.Request.Context(), cryptoalg.SignatureAlgorithm(request.Algorithm), request.Input, request.Signature, request.PublicKey, format)
	if err != nil {
		handler.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, Response{Success: true, Data: valid})
}

// Algorithms handles the GET request listing supported algorithms
// @Summary List supported algorithms
// @Tags Crypto
// @Produce json
// @Success 200 {object} Response
// @Router /algorithms [get]
func (handler *cryptoHandler) Algorithms(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, Response{Success: true, Data: handler.cryptoService.Algorithms()})
}

func (handler *cryptoHandler) fail(ctx *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		handler.logger.Error("request failed: ", err)
	}
	ctx.JSON(status, Response{Success: false, Error: err.Error()})
}

// bindRequest decodes the JSON body into request and runs validate. It writes the error response itself.
func bindRequest(ctx *gin.Context, request interface{}, validate func() error) bool {
	if err := ctx.ShouldBindJSON(request); err != nil {
		status := http.StatusBadRequest
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			status = http.StatusRequestEntityTooLarge
		}
		ctx.JSON(status, Response{Success: false, Error: fmt.Sprintf("invalid request body: %v", err)})
		return false
	}

	if err := validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return false
	}

	return true
}

// parseFormat keeps an empty selector empty so each operation applies its own default
func parseFormat(s string) (cryptoalg.OutputFormat, error) {
	if s == "" {
		return "", nil
	}
	return cryptoalg.ParseOutputFormat(s)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, cryptoalg.ErrInvalidInput),
		errors.Is(err, cryptoalg.ErrUnsupportedAlgorithm),
		errors.Is(err, cryptoalg.ErrMalformedEncoding),
		errors.Is(err, cryptoalg.ErrKeyRequired):
		return http.StatusBadRequest
	case errors.Is(err, cryptoalg.ErrCryptoFailure):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
