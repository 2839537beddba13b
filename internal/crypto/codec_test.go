// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// testParams keeps Argon2id cheap so property tests stay fast.
var testParams = Params{Time: 1, Memory: 64, Threads: 1}

func newTestCodec() ContentCodec {
	return NewContentCodec(testParams)
}

func TestNewContentCodec_DefaultsZeroParams(t *testing.T) {
	c, ok := NewContentCodec(Params{}).(*contentCodec)
	require.True(t, ok)
	assert.Equal(t, DefaultParams(), c.params)
}

func TestEncrypt_HasMarkerAndHidesPlaintext(t *testing.T) {
	codec := newTestCodec()

	out, err := codec.Encrypt("hi", "secret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, EncryptedPrefix))
	assert.NotEqual(t, "hi", out)
	assert.True(t, codec.IsEncrypted(out))
}

func TestEncrypt_RandomSaltAndNonce(t *testing.T) {
	codec := newTestCodec()

	a, err := codec.Encrypt("same text", "same password")
	require.NoError(t, err)
	b, err := codec.Encrypt("same text", "same password")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "two encryptions must not produce identical payloads")
}

func TestEncrypt_EmptyPassword(t *testing.T) {
	_, err := newTestCodec().Encrypt("text", "")
	require.ErrorIs(t, err, ErrEmptyPassword)
}

func TestDecrypt(t *testing.T) {
	codec := newTestCodec()
	payload, err := codec.Encrypt("hello, world", "secret")
	require.NoError(t, err)

	tests := []struct {
		name     string
		payload  string
		password string
		want     string
		wantErr  error
	}{
		{name: "correct password", payload: payload, password: "secret", want: "hello, world"},
		{name: "wrong password", payload: payload, password: "wrong", wantErr: ErrDecryption},
		{name: "empty password", payload: payload, password: "", wantErr: ErrDecryption},
		{name: "plaintext passthrough", payload: "just text", password: "any", want: "just text"},
		{name: "bad base64", payload: EncryptedPrefix + "!!!not base64!!!", password: "secret", wantErr: ErrDecryption},
		{name: "too short", payload: EncryptedPrefix + base64.StdEncoding.EncodeToString([]byte("abc")), password: "secret", wantErr: ErrDecryption},
		{name: "marker only", payload: EncryptedPrefix, password: "secret", wantErr: ErrDecryption},
		{name: "truncated ciphertext", payload: payload[:len(payload)-8], password: "secret", wantErr: ErrDecryption},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.Decrypt(tt.payload, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsEncrypted(t *testing.T) {
	assert.True(t, IsEncrypted("encrypted:abc"))
	assert.False(t, IsEncrypted(""))
	assert.False(t, IsEncrypted("plain text"))
	assert.False(t, IsEncrypted("Encrypted:abc"))
	assert.False(t, IsEncrypted(" encrypted:abc"))
}

func TestCodec_RoundTrip_Property(t *testing.T) {
	codec := newTestCodec()

	rapid.Check(t, func(t *rapid.T) {
		plaintext := rapid.String().Draw(t, "plaintext")
		password := rapid.StringN(1, 32, -1).Draw(t, "password")

		payload, err := codec.Encrypt(plaintext, password)
		if err != nil {
			t.Fatalf("encrypt: %v", err)
		}
		if !codec.IsEncrypted(payload) {
			t.Fatalf("payload %q has no marker", payload)
		}

		got, err := codec.Decrypt(payload, password)
		if err != nil {
			t.Fatalf("decrypt: %v", err)
		}
		if got != plaintext {
			t.Fatalf("round trip mismatch: got %q, want %q", got, plaintext)
		}
	})
}

func TestCodec_WrongPassword_Property(t *testing.T) {
	codec := newTestCodec()

	rapid.Check(t, func(t *rapid.T) {
		plaintext := rapid.String().Draw(t, "plaintext")
		password := rapid.StringN(1, 32, -1).Draw(t, "password")
		wrong := rapid.StringN(0, 32, -1).
			Filter(func(s string) bool { return s != password }).
			Draw(t, "wrong")

		payload, err := codec.Encrypt(plaintext, password)
		if err != nil {
			t.Fatalf("encrypt: %v", err)
		}

		got, err := codec.Decrypt(payload, wrong)
		if !errors.Is(err, ErrDecryption) {
			t.Fatalf("decrypt with wrong password: got (%q, %v), want ErrDecryption", got, err)
		}
	})
}

func TestIsEncrypted_PlainStrings_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().
			Filter(func(s string) bool { return !strings.HasPrefix(s, EncryptedPrefix) }).
			Draw(t, "s")
		if IsEncrypted(s) {
			t.Fatalf("IsEncrypted(%q) = true", s)
		}
	})
}
