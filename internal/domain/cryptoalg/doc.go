// Package cryptoalg defines the closed algorithm sets, key material types, error taxonomy and processor contracts
// used for key generation, encryption, decryption, hashing, signing and verification.
package cryptoalg
