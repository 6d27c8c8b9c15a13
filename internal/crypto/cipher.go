// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The api-vault Authors

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

// ErrDecryptionFailed is returned by [Cipher.Decrypt] when a ciphertext
// token cannot be reversed: wrong key, truncated blob, broken Base64, or an
// authentication-tag mismatch. Callers must treat it as an opaque failure
// and never fall back to partial plaintext.
var ErrDecryptionFailed = errors.New("decryption failed")

// aesCipher is the private implementation of [Cipher]. The AEAD is built
// once at construction; aead instances are safe for concurrent use.
type aesCipher struct {
	aead cipher.AEAD
}

// NewCipher constructs a [Cipher] keyed by the process-wide encryption
// secret.
//
// The secret may be of any length: the actual AES-256 key is
// SHA-256(secret), mirroring how the deployment supplies a passphrase-style
// value through configuration. Changing the secret irreversibly invalidates
// all previously stored ciphertext; there is no key-rotation mechanism.
func NewCipher(secret string) (Cipher, error) {
	key := sha256.Sum256([]byte(secret))

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &aesCipher{aead: aead}, nil
}

// Encrypt implements [Cipher]. The output is a Base64 (standard encoding)
// string of the blob: nonce (12 bytes) ‖ ciphertext. A fresh random nonce is
// drawn per call so no external state is needed to reverse the operation.
func (c *aesCipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [Cipher]. It Base64-decodes the token, splits out the
// nonce, and opens the ciphertext. Any failure along the way is normalised
// to [ErrDecryptionFailed] so that callers cannot distinguish a wrong key
// from corrupted storage.
func (c *aesCipher) Decrypt(ciphertext string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrDecryptionFailed, err)
	}

	nonceSize := c.aead.NonceSize()
	if len(blob) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", ErrDecryptionFailed)
	}

	nonce, sealed := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		// wrong key or tampered blob: the auth tag does not verify
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return string(plaintext), nil
}
