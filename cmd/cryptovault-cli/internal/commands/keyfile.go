package commands

import (
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MGTheTrain/cryptovault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/cryptovault/internal/pkg/codec"

	"github.com/google/uuid"
)

const pemHeader = "-----BEGIN"

// DecodeKeyText turns PEM or base64 key text into the base64 form the service expects
func DecodeKeyText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, pemHeader) {
		return text, nil
	}

	block, _ := pem.Decode([]byte(text))
	if block == nil {
		return "", fmt.Errorf("failed to decode PEM block")
	}
	return codec.BytesToBase64(block.Bytes), nil
}

// pemBlockType names the PEM block for keyType. DER-encoded keys use the generic SPKI/PKCS#8 labels.
func pemBlockType(keyType cryptoalg.KeyType, private bool) string {
	role := "PUBLIC KEY"
	if private {
		role = "PRIVATE KEY"
	}

	switch keyType {
	case cryptoalg.KeyTypeRSA, cryptoalg.KeyTypeECDSA, cryptoalg.KeyTypeEd25519:
		return role
	default:
		return strings.ToUpper(string(keyType)) + " " + role
	}
}

// SaveKeyMaterial writes material into dir and returns the written paths.
// Key pairs become <uuid>-public-key.pem and <uuid>-private-key.pem; a symmetric key becomes <uuid>-symmetric-key.b64.
func SaveKeyMaterial(dir string, keyType cryptoalg.KeyType, material *cryptoalg.KeyMaterial) ([]string, error) {
	uniqueID := uuid.New().String()

	if material.Key != "" {
		path := filepath.Join(dir, uniqueID+"-symmetric-key.b64")
		if err := os.WriteFile(path, []byte(material.Key+"\n"), 0600); err != nil {
			return nil, fmt.Errorf("failed to write symmetric key: %w", err)
		}
		return []string{path}, nil
	}

	publicKeyPath := filepath.Join(dir, uniqueID+"-public-key.pem")
	if err := writePEM(publicKeyPath, pemBlockType(keyType, false), material.PublicKey); err != nil {
		return nil, fmt.Errorf("failed to write public key: %w", err)
	}

	privateKeyPath := filepath.Join(dir, uniqueID+"-private-key.pem")
	if err := writePEM(privateKeyPath, pemBlockType(keyType, true), material.PrivateKey); err != nil {
		return nil, fmt.Errorf("failed to write private key: %w", err)
	}

	return []string{publicKeyPath, privateKeyPath}, nil
}

func writePEM(path, blockType, encoded string) error {
	der, err := codec.Base64ToBytes(encoded)
	if err != nil {
		return err
	}

	return os.WriteFile(path, pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der}), 0600)
}
