// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// ClientStorages groups the storage layer the service needs into a single
// value. Close releases whatever the chosen backend holds open.
type ClientStorages struct {
	// Notes is the repository holding the note collection.
	Notes NotesRepository

	closer io.Closer
}

// NewClientStorages initialises the storage layer for the backend named in
// cfg.Backend:
//   - "file" keeps the collection in a locked JSON file at cfg.Path;
//   - "sqlite" opens (and migrates) a database at cfg.Path and keeps the
//     collection in the row keyed by cfg.Key;
//   - "memory" keeps it in process memory only.
func NewClientStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*ClientStorages, error) {
	log.Debug().Str("backend", cfg.Backend).Msg("creating new storages...")

	var (
		slot   Slot
		closer io.Closer
	)

	switch cfg.Backend {
	case config.BackendFile:
		slot = NewFileSlot(cfg.Path, log)
	case config.BackendSQLite:
		db, err := NewConnectSQLite(ctx, cfg.Path, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err := db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		slot = NewSQLiteSlot(db, cfg.Key)
		closer = db
	case config.BackendMemory:
		slot = NewMemorySlot(0)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}

	return &ClientStorages{
		Notes:  NewNotesRepository(slot, log),
		closer: closer,
	}, nil
}

// Close releases the backend's resources.
func (s *ClientStorages) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
