// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// NotesService owns the in-memory note collection. It applies commands one
// at a time and writes the whole collection to storage after every command
// that touches it. The in-memory state stays authoritative when a write
// fails; the next write retries with the full collection.
type NotesService interface {
	// Load replaces the state with the persisted collection. Corrupt data is
	// reset to an empty collection and logged; only a failed read is
	// returned, after the state error has been set.
	Load(ctx context.Context) error

	// State returns a copy of the current state.
	State() models.NotesState

	// View returns the filtered and sorted display form of the state.
	View() NotesView

	// Dispatch applies cmd and persists the collection if cmd mutates it.
	// On a failed write the returned state carries the error message and the
	// error wraps store.ErrStorageWrite.
	Dispatch(ctx context.Context, cmd Command) (models.NotesState, error)

	// Flush writes the current collection again.
	Flush(ctx context.Context) error

	// Get returns the note with id or ErrNoteNotFound.
	Get(id string) (models.Note, error)

	// NewSession opens an edit session for a note that does not exist yet.
	NewSession() *EditSession

	// OpenSession opens an edit session for the note with id.
	OpenSession(id string) (*EditSession, error)

	// Commit builds the session's note and adds or updates it. A new note
	// becomes the selected one.
	Commit(ctx context.Context, session *EditSession) (models.Note, error)

	// Delete, TogglePin and Select act on an existing note and return
	// ErrNoteNotFound for an unknown id.
	Delete(ctx context.Context, id string) error
	TogglePin(ctx context.Context, id string) (models.Note, error)
	Select(ctx context.Context, id string) error

	// Search sets the list filter.
	Search(ctx context.Context, term string) NotesView

	// Export encodes the persisted collection.
	Export(ctx context.Context, format store.ExportFormat) ([]byte, error)

	// Import replaces the collection with the notes in data (a JSON array).
	Import(ctx context.Context, data []byte) ([]models.Note, error)

	// Clear removes every note from memory and storage.
	Clear(ctx context.Context) error
}

// EnrichmentService fills the derived fields of a note through the AI
// enrichment adapter.
type EnrichmentService interface {
	// Enrich sends the session's plaintext to the enrichment client for each
	// requested field and applies the results to the session. It fails with
	// ErrNoteLocked when the session content is not decrypted.
	Enrich(ctx context.Context, session *EditSession, req models.EnrichmentRequest) (models.Enrichment, error)
}
