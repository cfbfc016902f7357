package cryptoalg

// Processors bundles one implementation per primitive family. The crypto service dispatches to these.
type Processors struct {
	AES      AESProcessor
	ChaCha20 ChaCha20Poly1305Processor
	Blowfish BlowfishProcessor
	RSA      RSAProcessor
	ECDSA    ECDSAProcessor
	Ed25519  Ed25519Processor
	Ed448    SchemeProcessor
	MLDSA65  SchemeProcessor
	MLKEM768 KEMProcessor
	Digester Digester
}
