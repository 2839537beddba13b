// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NotesState is the whole in-memory state of the note keeper.
//
// Notes keeps canonical insertion order (new notes are prepended); the order
// shown to the user is derived separately. The selection is held as an id
// and resolved against Notes on read so it can never diverge from the
// collection entry.
type NotesState struct {
	Notes      []Note
	SelectedID string
	SearchTerm string

	// Error is the user-visible error message, empty when there is none.
	Error string
}

// IndexOf returns the position of the note with id, or -1.
func (s NotesState) IndexOf(id string) int {
	for i := range s.Notes {
		if s.Notes[i].ID == id {
			return i
		}
	}
	return -1
}

// Find returns the note with id and whether it exists.
func (s NotesState) Find(id string) (Note, bool) {
	if i := s.IndexOf(id); i >= 0 {
		return s.Notes[i], true
	}
	return Note{}, false
}

// Selected resolves the current selection. It returns false when nothing is
// selected or the selected id is no longer in the collection.
func (s NotesState) Selected() (Note, bool) {
	if s.SelectedID == "" {
		return Note{}, false
	}
	return s.Find(s.SelectedID)
}
