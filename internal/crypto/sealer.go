// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	sealedPrefix = "sealed:v1:"
	saltSize     = 16
)

// argonParams are the Argon2id cost parameters.
type argonParams struct {
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
}

// defaultArgonParams follow the OWASP recommendation for Argon2id.
var defaultArgonParams = argonParams{
	time:    1,
	memory:  64 * 1024, // 64 MiB
	threads: 4,
	keyLen:  32,
}

type sealer struct {
	passphrase []byte
	params     argonParams
}

// NewSealer returns a [Sealer] deriving AES-256-GCM keys from passphrase
// with Argon2id.
func NewSealer(passphrase string) (Sealer, error) {
	return newSealer(passphrase, defaultArgonParams)
}

func newSealer(passphrase string, params argonParams) (*sealer, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	return &sealer{passphrase: []byte(passphrase), params: params}, nil
}

func (s *sealer) deriveKey(salt []byte) []byte {
	return argon2.IDKey(s.passphrase, salt, s.params.time, s.params.memory, s.params.threads, s.params.keyLen)
}

func (s *sealer) gcm(salt []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(s.deriveKey(salt))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// Seal implements [Sealer].
func (s *sealer) Seal(plaintext []byte) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := s.gcm(salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, saltSize+len(nonce)+len(plaintext)+gcm.Overhead())
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = gcm.Seal(blob, nonce, plaintext, nil)

	return sealedPrefix + base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [Sealer].
func (s *sealer) Open(sealed string) ([]byte, error) {
	if !s.IsSealed(sealed) {
		return nil, ErrNotSealed
	}

	blob, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(sealed, sealedPrefix))
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %w", ErrOpenFailed, err)
	}
	if len(blob) < saltSize {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrOpenFailed)
	}

	salt, rest := blob[:saltSize], blob[saltSize:]
	gcm, err := s.gcm(salt)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(rest) < nonceSize {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrOpenFailed)
	}

	plaintext, err := gcm.Open(nil, rest[:nonceSize], rest[nonceSize:], nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}

	return plaintext, nil
}

// IsSealed implements [Sealer].
func (s *sealer) IsSealed(v string) bool {
	return strings.HasPrefix(v, sealedPrefix)
}
