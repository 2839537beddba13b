// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/content_codec_mock.go -package=mock

// ContentCodec encrypts and decrypts the content of a single note under a
// user-chosen password. It knows nothing about notes, storage or sessions.
//
// Format of a protected payload:
//
//	"encrypted:" + base64( salt(16) ‖ nonce(12) ‖ AES-256-GCM(plaintext) )
//	key = Argon2id(password, salt)
type ContentCodec interface {
	// Encrypt derives a fresh key from password and a random salt and
	// returns the tagged ciphertext of plaintext. Two calls with the same
	// input produce different outputs; only the round trip is deterministic.
	Encrypt(plaintext, password string) (string, error)

	// Decrypt reverses Encrypt. It returns an error wrapping ErrDecryption
	// when the password is wrong or the payload is damaged, and never hands
	// back garbage as if it were the plaintext. A payload without the marker
	// is returned unchanged.
	Decrypt(payload, password string) (string, error)

	// IsEncrypted reports whether payload carries the ciphertext marker.
	// No decryption is attempted.
	IsEncrypted(payload string) bool
}
