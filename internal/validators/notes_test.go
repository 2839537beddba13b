// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var now = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func validNote() models.Note {
	return models.Note{
		ID:        "n1",
		Title:     "Title",
		Content:   "<p>body</p>",
		CreatedAt: now,
		UpdatedAt: now,
		Tags:      []string{},
	}
}

// ---------------------------------------------------------------------------
// Validate dispatch
// ---------------------------------------------------------------------------

func TestNoteValidator_UnsupportedType(t *testing.T) {
	v := NewNoteValidator()
	require.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	require.ErrorIs(t, v.Validate(context.Background(), "note"), ErrUnsupportedType)
}

func TestNoteValidator_UnknownField(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()
	require.ErrorIs(t, v.Validate(ctx, validNote(), "colour"), ErrUnknownField)
	require.ErrorIs(t, v.Validate(ctx, []models.Note{}, "colour"), ErrUnknownField)
	require.ErrorIs(t, v.Validate(ctx, models.PasswordChange{}, "colour"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Note
// ---------------------------------------------------------------------------

func TestNoteValidator_Note(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(n *models.Note)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(n *models.Note) {}},
		{name: "empty id", mutate: func(n *models.Note) { n.ID = "" }, wantErr: ErrInvalidNoteID},
		{name: "blank title", mutate: func(n *models.Note) { n.Title = "  \t" }, wantErr: ErrEmptyTitle},
		{name: "blank content", mutate: func(n *models.Note) { n.Content = "\n" }, wantErr: ErrEmptyContent},
		{name: "updated before created", mutate: func(n *models.Note) { n.UpdatedAt = now.Add(-time.Second) }, wantErr: ErrInvalidTimes},
		{
			name:   "only title checked",
			mutate: func(n *models.Note) { n.Content = "" },
			fields: []string{FieldTitle},
		},
		{
			name:    "only content checked",
			mutate:  func(n *models.Note) { n.Title = ""; n.Content = "" },
			fields:  []string{FieldContent},
			wantErr: ErrEmptyContent,
		},
	}

	v := NewNoteValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := validNote()
			tt.mutate(&n)

			err := v.Validate(context.Background(), n, tt.fields...)
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}

			// pointer form behaves the same
			errPtr := v.Validate(context.Background(), &n, tt.fields...)
			assert.Equal(t, err, errPtr)
		})
	}
}

// ---------------------------------------------------------------------------
// Collection
// ---------------------------------------------------------------------------

func TestNoteValidator_Collection(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	a := validNote()
	b := validNote()
	b.ID = "n2"

	require.NoError(t, v.Validate(ctx, []models.Note{a, b}))
	require.NoError(t, v.Validate(ctx, []models.Note(nil)))

	err := v.Validate(ctx, []models.Note{a, b, a})
	require.ErrorIs(t, err, ErrDuplicateNoteID)
	assert.Contains(t, err.Error(), "n1")

	b.Title = ""
	err = v.Validate(ctx, []models.Note{a, b}, FieldTitle)
	require.ErrorIs(t, err, ErrEmptyTitle)
	assert.Contains(t, err.Error(), "index 1")
}

// ---------------------------------------------------------------------------
// Password
// ---------------------------------------------------------------------------

func TestNoteValidator_PasswordChange(t *testing.T) {
	tests := []struct {
		name    string
		in      models.PasswordChange
		fields  []string
		wantErr error
	}{
		{name: "valid", in: models.PasswordChange{Password: "hunter2", Confirmation: "hunter2"}},
		{name: "exactly four", in: models.PasswordChange{Password: "abcd", Confirmation: "abcd"}},
		{name: "four runes", in: models.PasswordChange{Password: "пароль"[:8], Confirmation: "пароль"[:8]}},
		{name: "empty", in: models.PasswordChange{}, wantErr: ErrPasswordRequired},
		{name: "blank", in: models.PasswordChange{Password: "    ", Confirmation: "    "}, wantErr: ErrPasswordRequired},
		{name: "too short", in: models.PasswordChange{Password: "abc", Confirmation: "abc"}, wantErr: ErrPasswordTooShort},
		{name: "mismatch", in: models.PasswordChange{Password: "abcd", Confirmation: "abce"}, wantErr: ErrPasswordMismatch},
		{
			name:   "strength only",
			in:     models.PasswordChange{Password: "abcd", Confirmation: "zzzz"},
			fields: []string{FieldPassword},
		},
	}

	v := NewNoteValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.in, tt.fields...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
