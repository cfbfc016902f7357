package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MGTheTrain/cryptovault/internal/app"
	"github.com/MGTheTrain/cryptovault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/cryptovault/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/cryptovault/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// ErrSignatureInvalid is returned by verify when the signature does not match
var ErrSignatureInvalid = errors.New("signature is invalid")

// CryptoCommandHandler encapsulates logic for handling crypto operations via CLI.
type CryptoCommandHandler struct {
	cryptoService cryptoalg.CryptoService
	logger        logger.Logger
}

// NewCryptoCommandHandler initializes a new CryptoCommandHandler with logging and all processors.
func NewCryptoCommandHandler() (*CryptoCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	processors, err := cryptography.NewProcessors(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create processors: %w", err)
	}

	cryptoService, err := app.NewCryptoService(processors, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create crypto service: %w", err)
	}

	return &CryptoCommandHandler{
		cryptoService: cryptoService,
		logger:        loggerInstance,
	}, nil
}

// GenerateKeyCmd generates a key or key pair and prints it, or persists it in --out-dir
func (commandHandler *CryptoCommandHandler) GenerateKeyCmd(cmd *cobra.Command, _ []string) error {
	keyType, err := cmd.Flags().GetString("type")
	if err != nil {
		return fmt.Errorf("invalid type flag: %w", err)
	}
	size, err := cmd.Flags().GetInt("size")
	if err != nil {
		return fmt.Errorf("invalid size flag: %w", err)
	}
	curve, err := cmd.Flags().GetString("curve")
	if err != nil {
		return fmt.Errorf("invalid curve flag: %w", err)
	}
	outDir, err := cmd.Flags().GetString("out-dir")
	if err != nil {
		return fmt.Errorf("invalid out-dir flag: %w", err)
	}

	material, err := commandHandler.cryptoService.GenerateKey(cmd.Context(), cryptoalg.KeyType(keyType), cryptoalg.KeyOptions{Size: size, Curve: curve})
	if err != nil {
		return err
	}

	if outDir == "" {
		return printJSON(cmd, material)
	}

	paths, err := SaveKeyMaterial(outDir, cryptoalg.KeyType(keyType), material)
	if err != nil {
		return err
	}
	for _, path := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}

// EncryptCmd encrypts the input. When no key is given a symmetric key is minted and printed after the payload.
func (commandHandler *CryptoCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	algorithm, format, err := algorithmAndFormat(cmd, "output-format")
	if err != nil {
		return err
	}
	input, err := readInput(cmd)
	if err != nil {
		return err
	}
	key, err := readKey(cmd)
	if err != nil {
		return err
	}

	result, err := commandHandler.cryptoService.Encrypt(cmd.Context(), cryptoalg.CipherAlgorithm(algorithm), input, cryptoalg.KeySourceFrom(key), format)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Data)
	if result.Key != "" {
		fmt.Fprintln(cmd.OutOrStdout(), "key:", result.Key)
	}
	return nil
}

// DecryptCmd decrypts the input with the given key
func (commandHandler *CryptoCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	algorithm, format, err := algorithmAndFormat(cmd, "input-format")
	if err != nil {
		return err
	}
	input, err := readInput(cmd)
	if err != nil {
		return err
	}
	key, err := readKey(cmd)
	if err != nil {
		return err
	}

	plaintext, err := commandHandler.cryptoService.Decrypt(cmd.Context(), cryptoalg.CipherAlgorithm(algorithm), input, key, format)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), plaintext)
	return nil
}

// HashCmd prints the digest of the input
func (commandHandler *CryptoCommandHandler) HashCmd(cmd *cobra.Command, _ []string) error {
	algorithm, format, err := algorithmAndFormat(cmd, "output-format")
	if err != nil {
		return err
	}
	input, err := readInput(cmd)
	if err != nil {
		return err
	}

	digest, err := commandHandler.cryptoService.Hash(cmd.Context(), cryptoalg.HashAlgorithm(algorithm), input, format)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), digest)
	return nil
}

// SignCmd prints a signature over the input
func (commandHandler *CryptoCommandHandler) SignCmd(cmd *cobra.Command, _ []string) error {
	algorithm, format, err := algorithmAndFormat(cmd, "output-format")
	if err != nil {
		return err
	}
	input, err := readInput(cmd)
	if err != nil {
		return err
	}
	privateKey, err := readKey(cmd)
	if err != nil {
		return err
	}

	signature, err := commandHandler.cryptoService.Sign(cmd.Context(), cryptoalg.SignatureAlgorithm(algorithm), input, privateKey, format)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), signature)
	return nil
}

// VerifyCmd checks a signature over the input and fails when it does not match
func (commandHandler *CryptoCommandHandler) VerifyCmd(cmd *cobra.Command, _ []string) error {
	algorithm, format, err := algorithmAndFormat(cmd, "input-format")
	if err != nil {
		return err
	}
	input, err := readInput(cmd)
	if err != nil {
		return err
	}
	publicKey, err := readKey(cmd)
	if err != nil {
		return err
	}
	signature, err := cmd.Flags().GetString("signature")
	if err != nil {
		return fmt.Errorf("invalid signature flag: %w", err)
	}

	valid, err := commandHandler.cryptoService.Verify(cmd.Context(), cryptoalg.SignatureAlgorithm(algorithm), input, signature, publicKey, format)
	if err != nil {
		return err
	}

	if !valid {
		fmt.Fprintln(cmd.OutOrStdout(), "Signature is invalid")
		return ErrSignatureInvalid
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Signature is valid")
	return nil
}

// AlgorithmsCmd prints the supported algorithm catalogue
func (commandHandler *CryptoCommandHandler) AlgorithmsCmd(cmd *cobra.Command, _ []string) error {
	return printJSON(cmd, commandHandler.cryptoService.Algorithms())
}

func algorithmAndFormat(cmd *cobra.Command, formatFlag string) (string, cryptoalg.OutputFormat, error) {
	algorithm, err := cmd.Flags().GetString("algorithm")
	if err != nil {
		return "", "", fmt.Errorf("invalid algorithm flag: %w", err)
	}
	formatName, err := cmd.Flags().GetString(formatFlag)
	if err != nil {
		return "", "", fmt.Errorf("invalid %s flag: %w", formatFlag, err)
	}
	if formatName == "" {
		return algorithm, "", nil
	}
	format, err := cryptoalg.ParseOutputFormat(formatName)
	if err != nil {
		return "", "", err
	}
	return algorithm, format, nil
}

// payloadFormatUsage documents --input-format. Hex text can also parse as base64, so hex needs the flag.
func payloadFormatUsage(subject string) string {
	return subject + " encoding (Base64 or Hex). Base64 is assumed when empty; pass Hex for hex input"
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// InitCryptoCommands registers all crypto commands
func InitCryptoCommands(rootCmd *cobra.Command) error {
	handler, err := NewCryptoCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create crypto command handler: %w", err)
	}

	AddCryptoCommands(rootCmd, handler)
	return nil
}

// AddCryptoCommands attaches the commands served by handler to rootCmd
func AddCryptoCommands(rootCmd *cobra.Command, handler *CryptoCommandHandler) {
	var generateKeyCmd = &cobra.Command{
		Use:   "generate-key",
		Short: "Generate a symmetric key or an asymmetric key pair",
		RunE:  handler.GenerateKeyCmd,
	}
	generateKeyCmd.Flags().StringP("type", "t", "", "Key type (AES, RSA, ECDSA, Ed25519, Ed448, ML-DSA-65, ML-KEM-768)")
	generateKeyCmd.Flags().IntP("size", "", 0, "Key size in bits for AES (default 256) and RSA (default 2048)")
	generateKeyCmd.Flags().StringP("curve", "", "", "ECDSA curve (default P-256)")
	generateKeyCmd.Flags().StringP("out-dir", "", "", "Directory to store the keys instead of printing them")
	_ = generateKeyCmd.MarkFlagRequired("type")
	rootCmd.AddCommand(generateKeyCmd)

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt text",
		RunE:  handler.EncryptCmd,
	}
	encryptCmd.Flags().StringP("algorithm", "a", string(cryptoalg.CipherAES256GCM), "Encryption algorithm")
	encryptCmd.Flags().StringP("output-format", "f", "", "Output format (Base64, Hex, Binary)")
	addInputFlags(encryptCmd)
	addKeyFlags(encryptCmd, "Symmetric key or recipient public key")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a base64 or hex payload",
		RunE:  handler.DecryptCmd,
	}
	decryptCmd.Flags().StringP("algorithm", "a", string(cryptoalg.CipherAES256GCM), "Encryption algorithm")
	decryptCmd.Flags().StringP("input-format", "", "", payloadFormatUsage("Payload"))
	addInputFlags(decryptCmd)
	addKeyFlags(decryptCmd, "Symmetric key or private key")
	rootCmd.AddCommand(decryptCmd)

	var hashCmd = &cobra.Command{
		Use:   "hash",
		Short: "Hash text",
		RunE:  handler.HashCmd,
	}
	hashCmd.Flags().StringP("algorithm", "a", string(cryptoalg.HashSHA256), "Hash algorithm")
	hashCmd.Flags().StringP("output-format", "f", "", "Output format (default Hex)")
	addInputFlags(hashCmd)
	rootCmd.AddCommand(hashCmd)

	var signCmd = &cobra.Command{
		Use:   "sign",
		Short: "Sign text",
		RunE:  handler.SignCmd,
	}
	signCmd.Flags().StringP("algorithm", "a", string(cryptoalg.SignatureEd25519), "Signature algorithm")
	signCmd.Flags().StringP("output-format", "f", "", "Output format (Base64, Hex, Binary)")
	addInputFlags(signCmd)
	addKeyFlags(signCmd, "Private key")
	rootCmd.AddCommand(signCmd)

	var verifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature",
		RunE:  handler.VerifyCmd,
	}
	verifyCmd.Flags().StringP("algorithm", "a", string(cryptoalg.SignatureEd25519), "Signature algorithm")
	verifyCmd.Flags().StringP("signature", "s", "", "Signature to verify")
	verifyCmd.Flags().StringP("input-format", "", "", payloadFormatUsage("Signature"))
	addInputFlags(verifyCmd)
	addKeyFlags(verifyCmd, "Public key")
	_ = verifyCmd.MarkFlagRequired("signature")
	rootCmd.AddCommand(verifyCmd)

	var algorithmsCmd = &cobra.Command{
		Use:   "algorithms",
		Short: "List supported algorithms",
		RunE:  handler.AlgorithmsCmd,
	}
	rootCmd.AddCommand(algorithmsCmd)
}
