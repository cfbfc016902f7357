package cryptoalg

// KeyOptions holds optional key generation parameters
type KeyOptions struct {
	// Size is the key length in bits (AES and RSA only); zero selects the default
	Size int
	// Curve names the ECDSA curve; empty selects P-256
	Curve string
}

// KeyMaterial carries generated keys as base64 strings. Either Key or the PublicKey/PrivateKey pair is set.
type KeyMaterial struct {
	Key        string `json:"key,omitempty"`
	PublicKey  string `json:"publicKey,omitempty"`
	PrivateKey string `json:"privateKey,omitempty"`
}

// EncryptResult is the outcome of an encryption. Key is set only when the key was generated by the call.
type EncryptResult struct {
	Data string
	Key  string
}

// KeySource tells Encrypt whether to use caller key material or mint a new key
type KeySource interface {
	isKeySource()
}

// ProvidedKey carries a base64 encoded key supplied by the caller
type ProvidedKey struct {
	Encoded string
}

// GenerateNewKey asks Encrypt to mint a fresh key
type GenerateNewKey struct{}

func (ProvidedKey) isKeySource()    {}
func (GenerateNewKey) isKeySource() {}

// KeySourceFrom maps an optional encoded key onto a KeySource: empty means generate
func KeySourceFrom(encoded string) KeySource {
	if encoded == "" {
		return GenerateNewKey{}
	}
	return ProvidedKey{Encoded: encoded}
}

// Catalogue lists every algorithm the service supports
type Catalogue struct {
	Ciphers       []string `json:"ciphers"`
	Hashes        []string `json:"hashes"`
	Signatures    []string `json:"signatures"`
	KeyTypes      []string `json:"keyTypes"`
	OutputFormats []string `json:"outputFormats"`
	Curves        []string `json:"curves"`
}
