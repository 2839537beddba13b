// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/argon2"
)

// EncryptedPrefix marks a content string as ciphertext at rest.
const EncryptedPrefix = "encrypted:"

const (
	saltSize = 16
	keySize  = 32 // AES-256
)

var (
	// ErrDecryption is returned when a payload cannot be decrypted with the
	// supplied password: wrong password, corrupt blob or non-text output.
	ErrDecryption = errors.New("decryption failed - incorrect password")

	// ErrEmptyPassword is returned by Encrypt when no password is given.
	ErrEmptyPassword = errors.New("password is required for encryption")
)

// Params are the Argon2id tuning parameters used to turn a password into
// an AES key.
type Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

// DefaultParams follows the OWASP (2024) recommendation: one pass over
// 64 MiB with four lanes.
func DefaultParams() Params {
	return Params{Time: 1, Memory: 64 * 1024, Threads: 4}
}

// contentCodec is the private implementation of [ContentCodec].
type contentCodec struct {
	params Params
	rand   io.Reader
}

// NewContentCodec constructs a [ContentCodec] with the given Argon2id
// parameters. Zero fields fall back to [DefaultParams].
func NewContentCodec(params Params) ContentCodec {
	def := DefaultParams()
	if params.Time == 0 {
		params.Time = def.Time
	}
	if params.Memory == 0 {
		params.Memory = def.Memory
	}
	if params.Threads == 0 {
		params.Threads = def.Threads
	}
	return &contentCodec{params: params, rand: rand.Reader}
}

// IsEncrypted is the marker test shared by the codec and the storage guard.
func IsEncrypted(payload string) bool {
	return strings.HasPrefix(payload, EncryptedPrefix)
}

// IsEncrypted implements [ContentCodec].
func (c *contentCodec) IsEncrypted(payload string) bool {
	return IsEncrypted(payload)
}

// Encrypt implements [ContentCodec].
func (c *contentCodec) Encrypt(plaintext, password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	// 1. Random salt, so equal passwords give different keys
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(c.rand, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	// 2. Build AES-GCM cipher from the derived key
	gcm, err := c.newGCM(password, salt)
	if err != nil {
		return "", err
	}

	// 3. Random nonce
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(c.rand, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// 4. salt || nonce || ciphertext
	blob := make([]byte, 0, saltSize+len(nonce)+len(plaintext)+gcm.Overhead())
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = gcm.Seal(blob, nonce, []byte(plaintext), nil)

	return EncryptedPrefix + base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [ContentCodec].
func (c *contentCodec) Decrypt(payload, password string) (string, error) {
	if !IsEncrypted(payload) {
		return payload, nil
	}

	blob, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(payload, EncryptedPrefix))
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %v", ErrDecryption, err)
	}
	if len(blob) < saltSize {
		return "", fmt.Errorf("%w: ciphertext too short", ErrDecryption)
	}

	salt, rest := blob[:saltSize], blob[saltSize:]
	gcm, err := c.newGCM(password, salt)
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(rest) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", ErrDecryption)
	}
	nonce, ciphertext := rest[:nonceSize], rest[nonceSize:]

	// An auth tag mismatch almost always means a wrong password.
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryption, err)
	}
	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w: decrypted content is not valid text", ErrDecryption)
	}

	return string(plaintext), nil
}

func (c *contentCodec) newGCM(password string, salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey([]byte(password), salt, c.params.Time, c.params.Memory, c.params.Threads, keySize)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
