// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// Slot is a single durable key-value slot holding one opaque blob.
//
// Implementations overwrite the whole blob on Save; from the caller's point
// of view a Save either fully happens or leaves the previous blob intact.
type Slot interface {
	// Load returns the stored blob, or nil with no error when the slot is
	// empty or has never been written.
	Load(ctx context.Context) ([]byte, error)

	// Save replaces the blob.
	Save(ctx context.Context, data []byte) error

	// Clear empties the slot. Clearing an empty slot is not an error.
	Clear(ctx context.Context) error
}

// NotesRepository persists the whole note collection in a [Slot].
// Every Save is a full rewrite, which is fine for a personal collection
// and not meant for large datasets.
type NotesRepository interface {
	// Load returns the persisted collection. A missing or empty slot yields
	// an empty collection. Unparseable data is treated as corruption: the
	// slot is cleared and an empty collection is returned together with
	// an error wrapping ErrStorageCorrupt.
	Load(ctx context.Context) ([]models.Note, error)

	// Save serializes notes and overwrites the slot. Failures are returned
	// wrapped in ErrStorageWrite.
	Save(ctx context.Context, notes []models.Note) error

	// Clear removes every persisted note.
	Clear(ctx context.Context) error

	// Export returns the persisted collection encoded as format.
	Export(ctx context.Context, format ExportFormat) ([]byte, error)

	// Import parses a JSON array of notes, persists it in place of the
	// current collection and returns it.
	Import(ctx context.Context, data []byte) ([]models.Note, error)
}
