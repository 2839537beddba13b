// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// ── parseEnv ──────────────────────────────────────────────────────────────────

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"NOTES_CONFIG":                  "/etc/notes.json",
		"NOTES_STORAGE_BACKEND":         "sqlite",
		"NOTES_STORAGE_PATH":            "/var/lib/notes.db",
		"NOTES_STORAGE_KEY":             "my-notes",
		"NOTES_CRYPTO_ARGON_TIME":       "2",
		"NOTES_CRYPTO_ARGON_MEMORY":     "1024",
		"NOTES_CRYPTO_ARGON_THREADS":    "2",
		"NOTES_ADAPTER_ENRICHMENT_URL":  "http://localhost:9999/gen",
		"NOTES_ADAPTER_API_KEY":         "k",
		"NOTES_ADAPTER_REQUEST_TIMEOUT": "5s",
		"NOTES_LOG_LEVEL":               "debug",
		"NOTES_LOG_FILE":                "/tmp/notes.log",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/etc/notes.json", cfg.JSONFilePath)
	assert.Equal(t, Storage{Backend: "sqlite", Path: "/var/lib/notes.db", Key: "my-notes"}, cfg.Storage)
	assert.Equal(t, Crypto{ArgonTime: 2, ArgonMemory: 1024, ArgonThreads: 2}, cfg.Crypto)
	assert.Equal(t, "http://localhost:9999/gen", cfg.Adapter.EnrichmentURL)
	assert.Equal(t, "k", cfg.Adapter.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, Log{Level: "debug", File: "/tmp/notes.log"}, cfg.Log)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("NOTES_ADAPTER_REQUEST_TIMEOUT", "soon")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

// ── parseJSON ─────────────────────────────────────────────────────────────────

func TestParseJSON_Success(t *testing.T) {
	p := writeTempJSONConfig(t, `{
		"storage": {"backend": "file", "path": "/data/notes.json", "key": "k1"},
		"crypto": {"argon_time": 3, "argon_memory": 2048, "argon_threads": 1},
		"adapter": {"enrichment_url": "http://ai", "api_key": "abc", "request_timeout": "45s"},
		"log": {"level": "warn", "file": "/data/notes.log"}
	}`)

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, Storage{Backend: "file", Path: "/data/notes.json", Key: "k1"}, cfg.Storage)
	assert.Equal(t, Crypto{ArgonTime: 3, ArgonMemory: 2048, ArgonThreads: 1}, cfg.Crypto)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "abc", cfg.Adapter.APIKey)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestParseJSON_Malformed(t *testing.T) {
	_, err := parseJSON(writeTempJSONConfig(t, `{"storage": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte(`"1m30s"`)))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, d.UnmarshalJSON([]byte(`1000`)))
	assert.Equal(t, time.Microsecond, time.Duration(d))

	require.Error(t, d.UnmarshalJSON([]byte(`"later"`)))

	out, err := Duration(2 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2s"`, string(out))
}

// ── builder ───────────────────────────────────────────────────────────────────

func TestBuild_OverridesWinOverEnvAndJSON(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeTempJSONConfig(t, `{"storage": {"key": "from-json", "path": "/json/path"}, "log": {"level": "error"}}`)
	t.Setenv("NOTES_CONFIG", jsonPath)
	t.Setenv("NOTES_STORAGE_PATH", filepath.Join(dir, "env.json"))
	t.Setenv("NOTES_LOG_LEVEL", "warn")

	cfg, err := GetStructuredConfig(&StructuredConfig{Log: Log{Level: "debug"}})
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level, "flag override must win")
	assert.Equal(t, filepath.Join(dir, "env.json"), cfg.Storage.Path, "env must win over json")
	assert.Equal(t, "from-json", cfg.Storage.Key, "json fills what nothing else set")
	assert.Equal(t, BackendFile, cfg.Storage.Backend, "default backend")
}

func TestBuild_Defaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg")

	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join("/xdg", "go-notes-keeper", "notes.json"), cfg.Storage.Path)
	assert.Equal(t, DefaultSlotKey, cfg.Storage.Key)
	assert.Equal(t, Crypto{ArgonTime: 1, ArgonMemory: 64 * 1024, ArgonThreads: 4}, cfg.Crypto)
	assert.Equal(t, DefaultEnrichmentURL, cfg.Adapter.EnrichmentURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, filepath.Join("/xdg", "go-notes-keeper", "notes.log"), cfg.Log.File)
}

func TestBuild_SQLiteDefaultPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg")

	cfg, err := newConfigBuilder().withOverrides(&StructuredConfig{Storage: Storage{Backend: BackendSQLite}}).build()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "go-notes-keeper", "notes.db"), cfg.Storage.Path)
}

func TestBuild_MemoryBackendNeedsNoPath(t *testing.T) {
	cfg, err := newConfigBuilder().withOverrides(&StructuredConfig{Storage: Storage{Backend: BackendMemory}}).build()
	require.NoError(t, err)
	assert.Empty(t, cfg.Storage.Path)
	assert.Empty(t, cfg.Log.File)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.ErrorIs(t, err, assert.AnError)
}

func TestBuild_BadJSONPath(t *testing.T) {
	_, err := GetStructuredConfig(&StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")})
	require.Error(t, err)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	valid := func() *StructuredConfig {
		return &StructuredConfig{
			Storage: Storage{Backend: BackendFile, Path: "/n.json", Key: "k"},
			Crypto:  Crypto{ArgonTime: 1, ArgonMemory: 64, ArgonThreads: 1},
			Log:     Log{Level: "info"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *StructuredConfig) {}},
		{name: "unknown backend", mutate: func(c *StructuredConfig) { c.Storage.Backend = "s3" }, wantErr: ErrInvalidStorageConfigs},
		{name: "file without path", mutate: func(c *StructuredConfig) { c.Storage.Path = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty key", mutate: func(c *StructuredConfig) { c.Storage.Key = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "memory too small", mutate: func(c *StructuredConfig) { c.Crypto.ArgonMemory = 4 }, wantErr: ErrInvalidCryptoConfigs},
		{name: "zero threads", mutate: func(c *StructuredConfig) { c.Crypto.ArgonThreads = 0 }, wantErr: ErrInvalidCryptoConfigs},
		{name: "negative timeout", mutate: func(c *StructuredConfig) { c.Adapter.RequestTimeout = -time.Second }, wantErr: ErrInvalidAdapterConfigs},
		{name: "bad log level", mutate: func(c *StructuredConfig) { c.Log.Level = "chatty" }, wantErr: ErrInvalidLogConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
