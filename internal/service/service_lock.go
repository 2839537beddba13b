// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/crypto"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// LockState is the protection state of an [EditSession].
type LockState int

const (
	// Plaintext: the note is not protected and can be edited.
	Plaintext LockState = iota
	// Locked: only the ciphertext is held; editing is disabled.
	Locked
	// Unlocking: a password prompt is open, see [EditSession.Prompt].
	Unlocking
	// Unlocked: the content is decrypted in memory and can be edited.
	Unlocked
)

func (s LockState) String() string {
	switch s {
	case Plaintext:
		return "plaintext"
	case Locked:
		return "locked"
	case Unlocking:
		return "unlocking"
	case Unlocked:
		return "unlocked"
	default:
		return fmt.Sprintf("LockState(%d)", int(s))
	}
}

// PromptMode tells what an open password prompt is for.
type PromptMode int

const (
	PromptNone PromptMode = iota
	// PromptVerify asks for the existing password of a locked note.
	PromptVerify
	// PromptCreate asks for a new password (typed twice) to protect a note.
	PromptCreate
)

// editable holds the fields a user can change in a session.
type editable struct {
	title          string
	content        string
	tags           []string
	summary        string
	glossary       string
	grammarResults string
	protected      bool
}

func (e editable) equal(o editable) bool {
	return e.title == o.title &&
		e.content == o.content &&
		slices.Equal(e.tags, o.tags) &&
		e.summary == o.summary &&
		e.glossary == o.glossary &&
		e.grammarResults == o.grammarResults &&
		e.protected == o.protected
}

// EditSession edits a single note and owns its protection lifecycle.
//
// A protected note opens Locked, holding only its ciphertext. The password
// lives in the session while it is Unlocked and is dropped on Close or
// DisableProtection; it is never stored anywhere else. Build encrypts the
// content whenever the note is protected, so a protected note can only
// leave the session as ciphertext.
//
// An EditSession is not safe for concurrent use.
type EditSession struct {
	codec     crypto.ContentCodec
	validator validators.Validator
	logger    *logger.Logger

	// original is nil for a note that has never been saved.
	original *models.Note
	id       string
	created  time.Time

	state      LockState
	prompt     PromptMode
	password   string
	ciphertext string

	current  editable
	baseline editable
	closed   bool
}

func newEditSession(note *models.Note, id string, now time.Time, codec crypto.ContentCodec,
	validator validators.Validator, log *logger.Logger) *EditSession {
	s := &EditSession{
		codec:     codec,
		validator: validator,
		logger:    log,
		id:        id,
		created:   now,
		state:     Plaintext,
	}

	if note == nil {
		s.current = editable{tags: []string{}}
		s.baseline = s.current
		return s
	}

	orig := note.Clone()
	s.original = &orig
	s.id = orig.ID
	s.created = orig.CreatedAt
	s.current = editable{
		title:          orig.Title,
		content:        orig.Content,
		tags:           slices.Clone(orig.Tags),
		summary:        orig.Summary,
		glossary:       orig.Glossary,
		grammarResults: orig.GrammarResults,
		protected:      orig.IsPasswordProtected,
	}

	switch {
	case orig.IsPasswordProtected && codec.IsEncrypted(orig.Content):
		s.state = Locked
		s.ciphertext = orig.Content
		s.current.content = ""
	case orig.IsPasswordProtected:
		// marked protected but stored unencrypted: open it as plaintext so the
		// next save either re-protects it or clears the flag explicitly
		log.Warn().Str("func", "newEditSession").Str("id", orig.ID).Msg("protected note has no ciphertext, opening as plaintext")
		s.current.protected = false
	}

	s.baseline = s.current
	s.baseline.tags = slices.Clone(s.current.tags)
	return s
}

// ID returns the id the built note will carry.
func (s *EditSession) ID() string { return s.id }

// IsNew reports whether the session edits a note that was never saved.
func (s *EditSession) IsNew() bool { return s.original == nil }

func (s *EditSession) State() LockState { return s.state }

func (s *EditSession) Prompt() PromptMode { return s.prompt }

// IsProtected reports whether the note will be saved encrypted.
func (s *EditSession) IsProtected() bool { return s.current.protected }

// Title and Content return what the editor shows. Content is empty while the
// note is Locked or Unlocking.
func (s *EditSession) Title() string   { return s.current.title }
func (s *EditSession) Content() string { return s.current.content }
func (s *EditSession) Tags() []string  { return slices.Clone(s.current.tags) }

// Enrichment returns the derived fields currently attached to the note.
func (s *EditSession) Enrichment() models.Enrichment {
	return models.Enrichment{
		Summary:        s.current.summary,
		Tags:           slices.Clone(s.current.tags),
		GrammarResults: s.current.grammarResults,
		Glossary:       s.current.glossary,
	}
}

// RequestUnlock opens the verify prompt of a locked note.
func (s *EditSession) RequestUnlock() error {
	if err := s.expect(Locked); err != nil {
		return err
	}
	s.state, s.prompt = Unlocking, PromptVerify
	return nil
}

// SubmitPassword answers the verify prompt. On success the content is
// decrypted and the session is Unlocked. On failure the session goes back
// to Locked and the error wraps [crypto.ErrDecryption]; the user may retry.
func (s *EditSession) SubmitPassword(password string) error {
	if err := s.expectPrompt(PromptVerify); err != nil {
		return err
	}

	plain, err := s.codec.Decrypt(s.ciphertext, password)
	if err != nil {
		s.state, s.prompt = Locked, PromptNone
		s.logger.Debug().Str("func", "EditSession.SubmitPassword").Str("id", s.id).Msg("unlock failed")
		return fmt.Errorf("unlock note %s: %w", s.id, err)
	}

	s.password = password
	s.current.content = plain
	s.baseline.content = plain
	s.state, s.prompt = Unlocked, PromptNone
	return nil
}

// EnableProtection opens the create-password prompt of a plaintext note.
func (s *EditSession) EnableProtection() error {
	if err := s.expect(Plaintext); err != nil {
		return err
	}
	s.state, s.prompt = Unlocking, PromptCreate
	return nil
}

// SetPassword answers the create prompt. A password that breaks the rules
// leaves the prompt open and returns the validator error.
func (s *EditSession) SetPassword(password, confirmation string) error {
	if err := s.expectPrompt(PromptCreate); err != nil {
		return err
	}

	change := models.PasswordChange{Password: password, Confirmation: confirmation}
	if err := s.validator.Validate(context.Background(), change); err != nil {
		return err
	}

	s.password = password
	s.current.protected = true
	s.state, s.prompt = Unlocked, PromptNone
	return nil
}

// CancelPrompt closes an open prompt without changing the note.
func (s *EditSession) CancelPrompt() error {
	if err := s.expect(Unlocking); err != nil {
		return err
	}
	if s.prompt == PromptVerify {
		s.state = Locked
	} else {
		s.state = Plaintext
	}
	s.prompt = PromptNone
	return nil
}

// DisableProtection removes the password from an unlocked note. The next
// Build stores the content as plaintext.
func (s *EditSession) DisableProtection() error {
	if err := s.expect(Unlocked); err != nil {
		return err
	}
	s.password = ""
	s.ciphertext = ""
	s.current.protected = false
	s.state = Plaintext
	return nil
}

func (s *EditSession) SetTitle(title string) error {
	if err := s.checkEditable(); err != nil {
		return err
	}
	s.current.title = title
	return nil
}

func (s *EditSession) SetContent(content string) error {
	if err := s.checkEditable(); err != nil {
		return err
	}
	s.current.content = content
	return nil
}

// SetTags replaces the tags with the parsed comma-separated input.
func (s *EditSession) SetTags(input string) error {
	if err := s.checkEditable(); err != nil {
		return err
	}
	s.current.tags = models.ParseTags(input)
	return nil
}

// ApplyEnrichment stores the non-empty derived fields of e. Suggested tags
// are merged into the existing ones.
func (s *EditSession) ApplyEnrichment(e models.Enrichment) error {
	if err := s.checkEditable(); err != nil {
		return err
	}
	if e.Summary != "" {
		s.current.summary = e.Summary
	}
	if e.GrammarResults != "" {
		s.current.grammarResults = e.GrammarResults
	}
	if e.Glossary != "" {
		s.current.glossary = e.Glossary
	}
	if len(e.Tags) > 0 {
		s.current.tags = models.MergeTags(s.current.tags, e.Tags...)
	}
	return nil
}

// PlaintextContent returns the content for collaborators that need to read
// it, such as enrichment. It fails while the note is locked.
func (s *EditSession) PlaintextContent() (string, error) {
	if err := s.checkEditable(); err != nil {
		return "", err
	}
	return s.current.content, nil
}

// IsDirty reports whether the session holds changes not yet built. For a
// new note any non-blank title or content counts.
func (s *EditSession) IsDirty() bool {
	if s.original == nil {
		return strings.TrimSpace(s.current.title) != "" || strings.TrimSpace(s.current.content) != ""
	}
	return !s.current.equal(s.baseline)
}

// Build returns the note to persist. It fails with [ErrNoteLocked] while
// the content is not available and with a validator error when the title
// or content is blank. The id, creation time and pin state of the edited
// note are kept; UpdatedAt never moves backwards.
func (s *EditSession) Build(now time.Time) (models.Note, error) {
	if err := s.checkEditable(); err != nil {
		return models.Note{}, err
	}

	note := models.NewNote(s.id, s.created)
	note.Title = strings.TrimSpace(s.current.title)
	note.Content = s.current.content
	note.Tags = models.MergeTags(nil, s.current.tags...)
	note.Summary = s.current.summary
	note.Glossary = s.current.glossary
	note.GrammarResults = s.current.grammarResults
	note.IsPasswordProtected = s.current.protected
	if s.original != nil {
		note.IsPinned = s.original.IsPinned
		note.UpdatedAt = s.original.UpdatedAt
	}
	note.Touch(now)

	if err := s.validator.Validate(context.Background(), note, validators.FieldTitle, validators.FieldContent); err != nil {
		return models.Note{}, err
	}

	if note.IsPasswordProtected {
		if s.password == "" {
			return models.Note{}, ErrNoteLocked
		}
		encrypted, err := s.codec.Encrypt(note.Content, s.password)
		if err != nil {
			s.logger.Err(err).Str("func", "EditSession.Build").Str("id", s.id).Msg("failed to encrypt note content")
			return models.Note{}, fmt.Errorf("encrypt note %s: %w", s.id, err)
		}
		note.Content = encrypted
		s.ciphertext = encrypted
	}

	saved := note.Clone()
	s.original = &saved
	s.baseline = s.current
	s.baseline.tags = slices.Clone(s.current.tags)

	return note, nil
}

// Close drops the password and the decrypted content. The session cannot
// be used afterwards.
func (s *EditSession) Close() {
	s.password = ""
	s.current.content = ""
	s.baseline.content = ""
	s.prompt = PromptNone
	if s.current.protected {
		s.state = Locked
	}
	s.closed = true
}

func (s *EditSession) expect(state LockState) error {
	if s.closed {
		return ErrSessionClosed
	}
	if s.state != state {
		return fmt.Errorf("%w: note is %s", ErrInvalidTransition, s.state)
	}
	return nil
}

func (s *EditSession) expectPrompt(mode PromptMode) error {
	if err := s.expect(Unlocking); err != nil {
		return err
	}
	if s.prompt != mode {
		return fmt.Errorf("%w: wrong password prompt", ErrInvalidTransition)
	}
	return nil
}

func (s *EditSession) checkEditable() error {
	if s.closed {
		return ErrSessionClosed
	}
	if s.state == Locked || s.state == Unlocking {
		return ErrNoteLocked
	}
	return nil
}
