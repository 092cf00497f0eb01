// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// Sealer protects small secrets (the stored API key) before they reach a
// key-value backend.
//
// The output of Seal is self-describing text: a version prefix followed by
// base64(salt ‖ nonce ‖ ciphertext). Every call uses a fresh salt and nonce,
// so sealing the same value twice yields different strings.
type Sealer interface {
	// Seal encrypts plaintext with a key derived from the passphrase.
	Seal(plaintext []byte) (string, error)

	// Open reverses Seal. It fails with ErrNotSealed when the input lacks the
	// version prefix and with ErrOpenFailed when authentication fails.
	Open(sealed string) ([]byte, error)

	// IsSealed reports whether s carries the sealed-value prefix.
	IsSealed(s string) bool
}
