// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

// Storage backends accepted in [Storage.Backend].
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// DefaultSlotKey is the name of the durable slot holding the note collection.
const DefaultSlotKey = "shareable-notes"

// DefaultEnrichmentURL is the generateContent endpoint used for AI enrichment.
const DefaultEnrichmentURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

// StructuredConfig is the top-level configuration container for the
// go-notes-keeper application.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage selects and locates the durable slot.
	Storage Storage `envPrefix:"STORAGE_"`

	// Crypto holds the Argon2id parameters used to derive note keys.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Adapter holds the AI enrichment client settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: NOTES_CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// Storage describes where the note collection is persisted.
type Storage struct {
	// Backend is one of "file", "sqlite" or "memory".
	// Env: NOTES_STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// Path is the JSON file (file backend) or database file (sqlite backend).
	// Ignored by the memory backend.
	// Env: NOTES_STORAGE_PATH
	Path string `env:"PATH"`

	// Key names the slot inside the backend.
	// Env: NOTES_STORAGE_KEY
	Key string `env:"KEY"`
}

// Crypto holds the Argon2id tuning parameters.
type Crypto struct {
	// Env: NOTES_CRYPTO_ARGON_TIME
	ArgonTime uint32 `env:"ARGON_TIME"`
	// ArgonMemory is expressed in KiB.
	// Env: NOTES_CRYPTO_ARGON_MEMORY
	ArgonMemory uint32 `env:"ARGON_MEMORY"`
	// Env: NOTES_CRYPTO_ARGON_THREADS
	ArgonThreads uint8 `env:"ARGON_THREADS"`
}

// Adapter holds configuration for the AI enrichment service.
type Adapter struct {
	// EnrichmentURL is the full generateContent endpoint.
	// Env: NOTES_ADAPTER_ENRICHMENT_URL
	EnrichmentURL string `env:"ENRICHMENT_URL"`

	// APIKey is sent as the "key" query parameter. Enrichment is disabled
	// when it is empty.
	// Env: NOTES_ADAPTER_API_KEY
	APIKey string `env:"API_KEY"`

	// RequestTimeout bounds a single enrichment call (e.g. "30s").
	// Env: NOTES_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds logging configuration.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: NOTES_LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is where JSON log lines are appended. Empty means stderr.
	// Env: NOTES_LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. overrides carries values given on the command line and
// may be nil.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(overrides *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withOverrides(overrides).
		withEnv().
		withJSON().
		build()
}

// applyDefaults fills every field still empty after merging.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = BackendFile
	}
	if cfg.Storage.Key == "" {
		cfg.Storage.Key = DefaultSlotKey
	}
	if cfg.Storage.Path == "" {
		switch cfg.Storage.Backend {
		case BackendFile:
			cfg.Storage.Path = filepath.Join(defaultDataDir(), "notes.json")
		case BackendSQLite:
			cfg.Storage.Path = filepath.Join(defaultDataDir(), "notes.db")
		}
	}

	if cfg.Crypto.ArgonTime == 0 {
		cfg.Crypto.ArgonTime = 1
	}
	if cfg.Crypto.ArgonMemory == 0 {
		cfg.Crypto.ArgonMemory = 64 * 1024
	}
	if cfg.Crypto.ArgonThreads == 0 {
		cfg.Crypto.ArgonThreads = 4
	}

	if cfg.Adapter.EnrichmentURL == "" {
		cfg.Adapter.EnrichmentURL = DefaultEnrichmentURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 30 * time.Second
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.File == "" && cfg.Storage.Path != "" {
		cfg.Log.File = filepath.Join(filepath.Dir(cfg.Storage.Path), "notes.log")
	}
}

// defaultDataDir is $XDG_DATA_HOME/go-notes-keeper, falling back to the
// user config dir and finally the working directory.
func defaultDataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "go-notes-keeper")
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "go-notes-keeper")
	}
	return "."
}
