package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MGTheTrain/cryptovault/internal/pkg/config"
	"github.com/MGTheTrain/cryptovault/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// setupLogger logs to stderr so stdout carries only command results
func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelWarning,
		LogType:  config.LogTypeConsole,
		Output:   config.LogOutputStderr,
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// readInput returns the --input-file contents when set, else the --input flag
func readInput(cmd *cobra.Command) (string, error) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return "", fmt.Errorf("invalid input-file flag: %w", err)
	}
	if inputFile != "" {
		data, err := os.ReadFile(filepath.Clean(inputFile))
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	input, err := cmd.Flags().GetString("input")
	if err != nil {
		return "", fmt.Errorf("invalid input flag: %w", err)
	}
	return input, nil
}

// readKey resolves --key or --key-file to base64 key material. Either may hold PEM or base64 text.
func readKey(cmd *cobra.Command) (string, error) {
	key, err := cmd.Flags().GetString("key")
	if err != nil {
		return "", fmt.Errorf("invalid key flag: %w", err)
	}
	keyFile, err := cmd.Flags().GetString("key-file")
	if err != nil {
		return "", fmt.Errorf("invalid key-file flag: %w", err)
	}

	if keyFile != "" {
		data, err := os.ReadFile(filepath.Clean(keyFile))
		if err != nil {
			return "", err
		}
		key = string(data)
	}

	return DecodeKeyText(key)
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "Input text")
	cmd.Flags().StringP("input-file", "", "", "Path to a file holding the input text")
	cmd.MarkFlagsMutuallyExclusive("input", "input-file")
}

func addKeyFlags(cmd *cobra.Command, usage string) {
	cmd.Flags().StringP("key", "k", "", usage+" (PEM or base64)")
	cmd.Flags().StringP("key-file", "", "", "Path to a file holding the "+strings.ToLower(usage))
	cmd.MarkFlagsMutuallyExclusive("key", "key-file")
}
