// Package main is the entry point for the cryptovault-cli application.
// It initializes the root command, registers the crypto sub-commands and executes the command-line interface.
package main

import (
	"fmt"
	"os"

	commands "github.com/MGTheTrain/cryptovault/cmd/cryptovault-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "cryptovault-cli",
		Short: "Cryptographic operations CLI tool",
		Long: `cryptovault-cli is a command-line tool for cryptographic operations.
Supports key generation, encryption and decryption (AES-GCM, AES-CBC, ChaCha20-Poly1305, Blowfish,
RSA-OAEP, ML-KEM-768), hashing, and signing and verification (RSA, ECDSA, Ed25519, Ed448, ML-DSA-65).

Binary values are exchanged as base64 or hex. Keys can be passed inline or read from PEM or base64 files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	if err := commands.InitCryptoCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	return rootCmd.Execute()
}
