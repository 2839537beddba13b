// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// Command is a state transition accepted by [Reduce]. The set is closed:
// only the types in this file implement it.
type Command interface {
	// MutatesNotes reports whether applying the command can change the
	// note collection, i.e. whether a save is due afterwards.
	MutatesNotes() bool

	command()
}

// SetNotes replaces the whole collection. Only the first note of every id
// is kept.
type SetNotes struct{ Notes []models.Note }

// AddNote prepends a note. A note whose id is already present is ignored.
type AddNote struct{ Note models.Note }

// UpdateNote replaces the note with the same id in place. The stored
// CreatedAt is kept and UpdatedAt never moves backwards.
type UpdateNote struct{ Note models.Note }

// DeleteNote removes a note and drops the selection if it pointed at it.
type DeleteNote struct{ ID string }

// TogglePin flips IsPinned and advances UpdatedAt to At.
type TogglePin struct {
	ID string
	At time.Time
}

// SetSelected selects a note by id; an empty id clears the selection.
type SetSelected struct{ ID string }

// SetSearchTerm stores the list filter text.
type SetSearchTerm struct{ Term string }

// SetError shows a message to the user.
type SetError struct{ Message string }

// ClearError hides the current message.
type ClearError struct{}

func (SetNotes) MutatesNotes() bool      { return true }
func (AddNote) MutatesNotes() bool       { return true }
func (UpdateNote) MutatesNotes() bool    { return true }
func (DeleteNote) MutatesNotes() bool    { return true }
func (TogglePin) MutatesNotes() bool     { return true }
func (SetSelected) MutatesNotes() bool   { return false }
func (SetSearchTerm) MutatesNotes() bool { return false }
func (SetError) MutatesNotes() bool      { return false }
func (ClearError) MutatesNotes() bool    { return false }

func (SetNotes) command()      {}
func (AddNote) command()       {}
func (UpdateNote) command()    {}
func (DeleteNote) command()    {}
func (TogglePin) command()     {}
func (SetSelected) command()   {}
func (SetSearchTerm) command() {}
func (SetError) command()      {}
func (ClearError) command()    {}

// Reduce applies cmd to state and returns the next state. It never modifies
// the input: the note slice of the result is always a fresh copy.
//
// Commands naming an id that is not in the collection leave the collection
// unchanged. Collection commands clear the visible error.
func Reduce(state models.NotesState, cmd Command) models.NotesState {
	next := state
	next.Notes = cloneNotes(state.Notes)

	switch c := cmd.(type) {
	case SetNotes:
		next.Notes = uniqueNotes(c.Notes)
		next.Error = ""

	case AddNote:
		if state.IndexOf(c.Note.ID) < 0 {
			next.Notes = slices.Insert(next.Notes, 0, copyNote(c.Note))
		}
		next.Error = ""

	case UpdateNote:
		if i := state.IndexOf(c.Note.ID); i >= 0 {
			stored := next.Notes[i]
			updated := copyNote(c.Note)
			updated.CreatedAt = stored.CreatedAt
			updated.UpdatedAt = stored.UpdatedAt
			updated.Touch(c.Note.UpdatedAt)
			next.Notes[i] = updated
		}
		next.Error = ""

	case DeleteNote:
		if i := state.IndexOf(c.ID); i >= 0 {
			next.Notes = slices.Delete(next.Notes, i, i+1)
		}
		if next.SelectedID == c.ID {
			next.SelectedID = ""
		}
		next.Error = ""

	case TogglePin:
		if i := state.IndexOf(c.ID); i >= 0 {
			next.Notes[i].IsPinned = !next.Notes[i].IsPinned
			next.Notes[i].Touch(c.At)
		}
		next.Error = ""

	case SetSelected:
		next.SelectedID = c.ID

	case SetSearchTerm:
		next.SearchTerm = c.Term

	case SetError:
		next.Error = c.Message

	case ClearError:
		next.Error = ""

	default:
		panic(fmt.Sprintf("service: unhandled command %T", cmd))
	}

	return next
}

func cloneNotes(notes []models.Note) []models.Note {
	if notes == nil {
		return nil
	}
	out := make([]models.Note, len(notes))
	for i := range notes {
		out[i] = copyNote(notes[i])
	}
	return out
}

// copyNote detaches the tag slice without normalizing it, so a reduced
// state compares equal to its input wherever nothing changed.
func copyNote(n models.Note) models.Note {
	n.Tags = slices.Clone(n.Tags)
	return n
}

// uniqueNotes copies notes keeping the first occurrence of every id.
func uniqueNotes(notes []models.Note) []models.Note {
	out := make([]models.Note, 0, len(notes))
	seen := make(map[string]struct{}, len(notes))
	for _, n := range notes {
		if _, dup := seen[n.ID]; dup {
			continue
		}
		seen[n.ID] = struct{}{}
		out = append(out, copyNote(n))
	}
	return out
}
