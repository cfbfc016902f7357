package codec

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/MGTheTrain/cryptovault/internal/domain/cryptoalg"
)

// TextToBytes returns the UTF-8 bytes of s
func TextToBytes(s string) []byte {
	return []byte(s)
}

// BytesToText decodes UTF-8 bytes
func BytesToText(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: data is not valid UTF-8", cryptoalg.ErrInvalidInput)
	}
	return string(b), nil
}

// BytesToBase64 encodes b with the standard, padded base64 alphabet
func BytesToBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// Base64ToBytes decodes standard, padded base64
func Base64ToBytes(s string) ([]byte, error) {
	b, err := base64.StdEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64: %v", cryptoalg.ErrMalformedEncoding, err)
	}
	return b, nil
}

// BytesToHex encodes b as lowercase hex, two characters per byte
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// HexToBytes decodes hex of either case; odd length or non-hex characters are rejected
func HexToBytes(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hex: %v", cryptoalg.ErrMalformedEncoding, err)
	}
	return b, nil
}

// BytesToBinary renders each byte as eight binary digits, separated by spaces
func BytesToBinary(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) * 9)
	for i, v := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		s := strconv.FormatUint(uint64(v), 2)
		sb.WriteString(strings.Repeat("0", 8-len(s)))
		sb.WriteString(s)
	}
	return sb.String()
}

// FormatOutput renders b in format. Unknown or empty formats fall back to base64.
func FormatOutput(b []byte, format cryptoalg.OutputFormat) string {
	switch format {
	case cryptoalg.FormatHex:
		return BytesToHex(b)
	case cryptoalg.FormatBinary:
		return BytesToBinary(b)
	default:
		return BytesToBase64(b)
	}
}

// DecodePayload decodes ciphertexts and signatures supplied by callers.
// With an empty hint base64 is tried first and hex second. With a Base64 or Hex hint only that
// encoding is accepted. Binary is display-only and cannot be decoded.
// Hex text whose length is a multiple of four is also valid base64, so hex payloads need the Hex hint.
func DecodePayload(s string, hint cryptoalg.OutputFormat) ([]byte, error) {
	s = strings.TrimSpace(s)

	switch hint {
	case cryptoalg.FormatBase64:
		return Base64ToBytes(s)
	case cryptoalg.FormatHex:
		return HexToBytes(s)
	case "":
	default:
		return nil, fmt.Errorf("%w: %s payloads cannot be decoded", cryptoalg.ErrInvalidInput, hint)
	}

	if b, err := Base64ToBytes(s); err == nil {
		return b, nil
	}
	if b, err := HexToBytes(s); err == nil {
		return b, nil
	}
	return nil, fmt.Errorf("%w: neither base64 nor hex", cryptoalg.ErrMalformedEncoding)
}
