// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] is usable before
// anything is opened.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Backend {
	case BackendFile, BackendSQLite:
		if cfg.Storage.Path == "" {
			return fmt.Errorf("%w: path is required for %s backend", ErrInvalidStorageConfigs, cfg.Storage.Backend)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}
	if cfg.Storage.Key == "" {
		return fmt.Errorf("%w: empty slot key", ErrInvalidStorageConfigs)
	}

	// argon2 requires at least 8 KiB per lane.
	if cfg.Crypto.ArgonTime == 0 || cfg.Crypto.ArgonThreads == 0 ||
		cfg.Crypto.ArgonMemory < 8*uint32(cfg.Crypto.ArgonThreads) {
		return ErrInvalidCryptoConfigs
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLogConfigs, err)
	}

	return nil
}
