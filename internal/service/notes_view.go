// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/crypto"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// NotesView is the display form of a state: the notes matching the search
// term, pinned ones first, each group newest first.
type NotesView struct {
	Pinned     []models.Note
	Regular    []models.Note
	SearchTerm string

	// Total is the size of the unfiltered collection, so an empty view can
	// tell "no notes yet" from "nothing matches".
	Total int
}

// Notes returns the pinned and regular groups as one ordered list.
func (v NotesView) Notes() []models.Note {
	return slices.Concat(v.Pinned, v.Regular)
}

// Empty reports whether nothing is shown.
func (v NotesView) Empty() bool {
	return len(v.Pinned) == 0 && len(v.Regular) == 0
}

// BuildView derives the display order from state without touching it.
func BuildView(state models.NotesState) NotesView {
	sorted := SortNotes(FilterNotes(state.Notes, state.SearchTerm))

	view := NotesView{SearchTerm: state.SearchTerm, Total: len(state.Notes)}
	for _, n := range sorted {
		if n.IsPinned {
			view.Pinned = append(view.Pinned, n)
		} else {
			view.Regular = append(view.Regular, n)
		}
	}
	return view
}

// FilterNotes returns the notes whose title, tags or content contain term,
// ignoring case. Ciphertext is never searched. An empty term matches all.
func FilterNotes(notes []models.Note, term string) []models.Note {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return slices.Clone(notes)
	}

	out := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if matches(n, term) {
			out = append(out, n)
		}
	}
	return out
}

func matches(n models.Note, term string) bool {
	if strings.Contains(strings.ToLower(n.Title), term) {
		return true
	}
	if slices.ContainsFunc(n.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), term)
	}) {
		return true
	}
	if n.IsPasswordProtected || crypto.IsEncrypted(n.Content) {
		return false
	}
	return strings.Contains(strings.ToLower(n.Content), term)
}

// SortNotes returns a copy of notes ordered pinned first, then by UpdatedAt
// descending. Ties keep collection order.
func SortNotes(notes []models.Note) []models.Note {
	out := slices.Clone(notes)
	slices.SortStableFunc(out, func(a, b models.Note) int {
		if a.IsPinned != b.IsPinned {
			if a.IsPinned {
				return -1
			}
			return 1
		}
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return out
}
