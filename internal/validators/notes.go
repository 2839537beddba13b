// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the note identifier.
	FieldID = "id"

	// FieldTitle requires a title that is not blank after trimming.
	FieldTitle = "title"

	// FieldContent requires content that is not blank after trimming.
	FieldContent = "content"

	// FieldTimestamps requires UpdatedAt to be no earlier than CreatedAt.
	FieldTimestamps = "timestamps"

	// FieldUniqueIDs requires every note of a collection to have a distinct id.
	FieldUniqueIDs = "unique_ids"

	// FieldPassword applies the password strength rules.
	FieldPassword = "password"

	// FieldPasswordConfirmation requires the confirmation to match.
	FieldPasswordConfirmation = "password_confirmation"
)

// MinPasswordLength is the shortest password accepted when protecting a note.
const MinPasswordLength = 4

// NoteValidator checks notes, note collections and password prompts before
// the service turns them into commands.
type NoteValidator struct{}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		return v.validateNote(ctx, *value, fields...)

	case []models.Note:
		return v.validateCollection(ctx, value, fields...)

	case models.PasswordChange:
		return v.validatePasswordChange(ctx, value, fields...)
	case *models.PasswordChange:
		return v.validatePasswordChange(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNote(_ context.Context, note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldTitle, FieldContent, FieldTimestamps}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if note.ID == "" {
				return ErrInvalidNoteID
			}
		case FieldTitle:
			if strings.TrimSpace(note.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldContent:
			if strings.TrimSpace(note.Content) == "" {
				return ErrEmptyContent
			}
		case FieldTimestamps:
			if note.UpdatedAt.Before(note.CreatedAt) {
				return ErrInvalidTimes
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateCollection(ctx context.Context, notes []models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUniqueIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldUniqueIDs:
			seen := make(map[string]struct{}, len(notes))
			for _, n := range notes {
				if _, ok := seen[n.ID]; ok {
					return fmt.Errorf("%w: %s", ErrDuplicateNoteID, n.ID)
				}
				seen[n.ID] = struct{}{}
			}
		case FieldID, FieldTitle, FieldContent, FieldTimestamps:
			for i, n := range notes {
				if err := v.validateNote(ctx, n, f); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validatePasswordChange(_ context.Context, change models.PasswordChange, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPassword, FieldPasswordConfirmation}
	}

	for _, f := range fields {
		switch f {
		case FieldPassword:
			if strings.TrimSpace(change.Password) == "" {
				return ErrPasswordRequired
			}
			if utf8.RuneCountInString(change.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		case FieldPasswordConfirmation:
			if change.Password != change.Confirmation {
				return ErrPasswordMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
