// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/crypto"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// IDGenerator issues ids for new notes.
type IDGenerator interface {
	Generate() string
}

// NotesOption customizes a NotesService.
type NotesOption func(*notesService)

// WithClock replaces the wall clock. Times are converted to UTC.
func WithClock(now func() time.Time) NotesOption {
	return func(s *notesService) { s.now = now }
}

// WithIDGenerator replaces the UUIDv7 id generator.
func WithIDGenerator(ids IDGenerator) NotesOption {
	return func(s *notesService) { s.ids = ids }
}

type notesService struct {
	repo      store.NotesRepository
	codec     crypto.ContentCodec
	validator validators.Validator
	ids       IDGenerator
	now       func() time.Time
	logger    *logger.Logger

	mu    sync.Mutex
	state models.NotesState
}

func NewNotesService(repo store.NotesRepository, codec crypto.ContentCodec, validator validators.Validator,
	log *logger.Logger, opts ...NotesOption) NotesService {
	s := &notesService{
		repo:      repo,
		codec:     codec,
		validator: validator,
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    log,
		state:     models.NotesState{Notes: []models.Note{}},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *notesService) Load(ctx context.Context) error {
	notes, err := s.repo.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case errors.Is(err, store.ErrStorageCorrupt):
		s.logger.Warn().Err(err).Str("func", "notesService.Load").Msg("stored notes were unreadable and have been reset")
	case err != nil:
		s.logger.Err(err).Str("func", "notesService.Load").Msg("failed to load notes")
		s.state = Reduce(s.state, SetError{Message: store.ErrStorageRead.Error()})
		return err
	}

	s.state = Reduce(s.state, SetNotes{Notes: notes})
	s.logger.Debug().Str("func", "notesService.Load").Int("count", len(s.state.Notes)).Msg("notes loaded")
	return nil
}

func (s *notesService) State() models.NotesState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *notesService) View() NotesView {
	return BuildView(s.State())
}

func (s *notesService) Dispatch(ctx context.Context, cmd Command) (models.NotesState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatch(ctx, cmd)
}

// dispatch applies cmd with s.mu held.
func (s *notesService) dispatch(ctx context.Context, cmd Command) (models.NotesState, error) {
	s.state = Reduce(s.state, cmd)
	if !cmd.MutatesNotes() {
		return s.snapshot(), nil
	}

	if err := s.persist(ctx); err != nil {
		return s.snapshot(), err
	}
	return s.snapshot(), nil
}

func (s *notesService) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(ctx); err != nil {
		return err
	}
	s.state = Reduce(s.state, ClearError{})
	return nil
}

// persist writes the collection with s.mu held and records a failure in the
// visible error.
func (s *notesService) persist(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.state.Notes); err != nil {
		s.logger.Err(err).Str("func", "notesService.persist").Int("count", len(s.state.Notes)).Msg("failed to save notes")
		s.state = Reduce(s.state, SetError{Message: store.ErrStorageWrite.Error()})
		return err
	}
	return nil
}

func (s *notesService) Get(id string) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	note, ok := s.state.Find(id)
	if !ok {
		return models.Note{}, fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}
	return note.Clone(), nil
}

func (s *notesService) NewSession() *EditSession {
	return newEditSession(nil, s.ids.Generate(), s.clock(), s.codec, s.validator, s.logger)
}

func (s *notesService) OpenSession(id string) (*EditSession, error) {
	note, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return newEditSession(&note, id, s.clock(), s.codec, s.validator, s.logger), nil
}

func (s *notesService) Commit(ctx context.Context, session *EditSession) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	isNew := session.IsNew()
	if isNew {
		candidate := slices.Concat(s.state.Notes, []models.Note{{ID: session.ID()}})
		if err := s.validator.Validate(ctx, candidate, validators.FieldUniqueIDs); err != nil {
			return models.Note{}, err
		}
	} else if s.state.IndexOf(session.ID()) < 0 {
		return models.Note{}, fmt.Errorf("%w: %s", ErrNoteNotFound, session.ID())
	}

	note, err := session.Build(s.clock())
	if err != nil {
		return models.Note{}, err
	}

	if isNew {
		s.state = Reduce(s.state, SetSelected{ID: note.ID})
		_, err = s.dispatch(ctx, AddNote{Note: note})
	} else {
		_, err = s.dispatch(ctx, UpdateNote{Note: note})
	}

	if i := s.state.IndexOf(note.ID); i >= 0 {
		note = s.state.Notes[i].Clone()
	}
	return note, err
}

func (s *notesService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.IndexOf(id) < 0 {
		return fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}
	_, err := s.dispatch(ctx, DeleteNote{ID: id})
	return err
}

func (s *notesService) TogglePin(ctx context.Context, id string) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.IndexOf(id) < 0 {
		return models.Note{}, fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}
	_, err := s.dispatch(ctx, TogglePin{ID: id, At: s.clock()})

	note, _ := s.state.Find(id)
	return note.Clone(), err
}

func (s *notesService) Select(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" && s.state.IndexOf(id) < 0 {
		return fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}
	_, err := s.dispatch(ctx, SetSelected{ID: id})
	return err
}

func (s *notesService) Search(ctx context.Context, term string) NotesView {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, _ := s.dispatch(ctx, SetSearchTerm{Term: term})
	return BuildView(state)
}

func (s *notesService) Export(ctx context.Context, format store.ExportFormat) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// make sure storage holds what the user sees
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return s.repo.Export(ctx, format)
}

func (s *notesService) Import(ctx context.Context, data []byte) ([]models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.repo.Import(ctx, data)
	if err != nil {
		s.logger.Err(err).Str("func", "notesService.Import").Msg("import failed")
		return nil, err
	}

	s.state = Reduce(s.state, SetNotes{Notes: notes})
	s.state = Reduce(s.state, SetSelected{})
	return notes, nil
}

func (s *notesService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Clear(ctx); err != nil {
		s.state = Reduce(s.state, SetError{Message: store.ErrStorageWrite.Error()})
		return err
	}

	s.state = Reduce(s.state, SetNotes{Notes: []models.Note{}})
	s.state = Reduce(s.state, SetSelected{})
	s.logger.Info().Str("func", "notesService.Clear").Msg("all notes cleared")
	return nil
}

func (s *notesService) clock() time.Time {
	return s.now().UTC()
}

// snapshot copies the state with s.mu held.
func (s *notesService) snapshot() models.NotesState {
	out := s.state
	out.Notes = cloneNotes(s.state.Notes)
	return out
}
