// Package crypto implements the symmetric protection of stored API key
// values. Values are encrypted with AES-256-GCM under one process-wide key
// and stored only as self-contained ciphertext tokens.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_mock.go -package=mock

// Cipher reversibly protects stored secret values at rest.
//
// Implementations must be safe for concurrent use: the vault encrypts and
// decrypts from independent request goroutines sharing one Cipher instance.
type Cipher interface {
	// Encrypt returns a self-contained ciphertext token for plaintext.
	// The token embeds the randomness needed for decryption, so each call
	// is independent and two encryptions of the same input differ.
	Encrypt(plaintext string) (string, error)

	// Decrypt reverses Encrypt. Tokens produced with a different key, or
	// corrupted in storage, fail with ErrDecryptionFailed — never with
	// silently garbled plaintext.
	Decrypt(ciphertext string) (string, error)
}
