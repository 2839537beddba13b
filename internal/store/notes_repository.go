// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-notes-keeper/internal/crypto"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// ExportFormat names an encoding accepted by [NotesRepository.Export].
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportYAML ExportFormat = "yaml"
)

type notesRepository struct {
	slot   Slot
	logger *logger.Logger
}

// NewNotesRepository returns a [NotesRepository] that keeps the whole
// collection as one JSON array in slot.
func NewNotesRepository(slot Slot, log *logger.Logger) NotesRepository {
	return &notesRepository{slot: slot, logger: log}
}

func (r *notesRepository) Load(ctx context.Context) ([]models.Note, error) {
	data, err := r.slot.Load(ctx)
	if err != nil {
		r.logger.Err(err).Str("func", "notesRepository.Load").Msg("failed to read slot")
		return []models.Note{}, fmt.Errorf("%w: %v", ErrStorageRead, err)
	}

	notes, err := decodeNotes(data)
	if err != nil {
		r.logger.Warn().Err(err).Str("func", "notesRepository.Load").Msg("slot holds unparseable data, resetting")
		if clearErr := r.slot.Clear(ctx); clearErr != nil {
			r.logger.Err(clearErr).Str("func", "notesRepository.Load").Msg("failed to clear corrupt slot")
		}
		return []models.Note{}, fmt.Errorf("%w: %v", ErrStorageCorrupt, err)
	}

	for i := range notes {
		if notes[i].IsPasswordProtected && !crypto.IsEncrypted(notes[i].Content) {
			// the flag without ciphertext protects nothing and would block every Save
			r.logger.Warn().Str("func", "notesRepository.Load").Str("id", notes[i].ID).Msg("protected note has no ciphertext, clearing the flag")
			notes[i].IsPasswordProtected = false
		}
	}

	r.logger.Debug().Str("func", "notesRepository.Load").Int("count", len(notes)).Msg("notes loaded")
	return notes, nil
}

func (r *notesRepository) Save(ctx context.Context, notes []models.Note) error {
	for _, n := range notes {
		if n.IsPasswordProtected && !crypto.IsEncrypted(n.Content) {
			r.logger.Error().Str("func", "notesRepository.Save").Str("id", n.ID).Msg("refusing to persist plaintext of a protected note")
			return fmt.Errorf("%w: %w: note %s", ErrStorageWrite, ErrPlaintextProtectedNote, n.ID)
		}
	}

	if notes == nil {
		notes = []models.Note{}
	}
	data, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("%w: encode notes: %v", ErrStorageWrite, err)
	}

	if err := r.slot.Save(ctx, data); err != nil {
		r.logger.Err(err).Str("func", "notesRepository.Save").Int("bytes", len(data)).Msg("failed to write slot")
		return fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}

	return nil
}

func (r *notesRepository) Clear(ctx context.Context) error {
	if err := r.slot.Clear(ctx); err != nil {
		r.logger.Err(err).Str("func", "notesRepository.Clear").Msg("failed to clear slot")
		return fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}
	return nil
}

func (r *notesRepository) Export(ctx context.Context, format ExportFormat) ([]byte, error) {
	data, err := r.slot.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageRead, err)
	}
	notes, err := decodeNotes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageCorrupt, err)
	}

	switch format {
	case ExportJSON, "":
		return json.MarshalIndent(notes, "", "  ")
	case ExportYAML:
		return yaml.Marshal(notes)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func (r *notesRepository) Import(ctx context.Context, data []byte) ([]models.Note, error) {
	var notes []models.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}

	seen := make(map[string]struct{}, len(notes))
	for i := range notes {
		if notes[i].ID == "" {
			return nil, fmt.Errorf("%w: note at index %d has no id", ErrInvalidImport, i)
		}
		if _, dup := seen[notes[i].ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %s", ErrInvalidImport, notes[i].ID)
		}
		seen[notes[i].ID] = struct{}{}
		notes[i] = notes[i].Clone()
	}
	if notes == nil {
		notes = []models.Note{}
	}

	if err := r.Save(ctx, notes); err != nil {
		return nil, err
	}

	r.logger.Info().Str("func", "notesRepository.Import").Int("count", len(notes)).Msg("notes imported")
	return notes, nil
}

// decodeNotes parses a persisted blob. Empty input is an empty collection.
func decodeNotes(data []byte) ([]models.Note, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []models.Note{}, nil
	}

	var notes []models.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, err
	}

	out := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.Clone())
	}
	return out, nil
}
