// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-notes-keeper/models"
)

func TestSortNotes_PinnedFirstThenNewest(t *testing.T) {
	old := note("old", t0)
	mid := note("mid", t0.Add(time.Hour))
	fresh := note("fresh", t0.Add(2*time.Hour))
	pinnedOld := note("pinned-old", t0.Add(-time.Hour))
	pinnedOld.IsPinned = true

	sorted := SortNotes([]models.Note{old, fresh, pinnedOld, mid})

	assert.Equal(t, []string{"pinned-old", "fresh", "mid", "old"}, ids(sorted))
}

func TestSortNotes_TiesKeepCollectionOrder(t *testing.T) {
	notes := []models.Note{note("c", t0), note("a", t0), note("b", t0)}
	assert.Equal(t, []string{"c", "a", "b"}, ids(SortNotes(notes)))
}

func TestSortNotes_DoesNotReorderInput(t *testing.T) {
	notes := []models.Note{note("a", t0), note("b", t0.Add(time.Hour))}
	_ = SortNotes(notes)
	assert.Equal(t, []string{"a", "b"}, ids(notes))
}

func TestFilterNotes(t *testing.T) {
	groceries := note("groceries", t0)
	groceries.Title = "Groceries"
	groceries.Content = "Milk and eggs"

	work := note("work", t0)
	work.Title = "Standup"
	work.Tags = []string{"Work"}
	work.Content = "plan"

	secret := note("secret", t0)
	secret.Title = "Bank"
	secret.IsPasswordProtected = true
	secret.Content = "encrypted:bWlsaw=="

	notes := []models.Note{groceries, work, secret}

	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "empty term matches all", term: "", want: []string{"groceries", "work", "secret"}},
		{name: "blank term matches all", term: "   ", want: []string{"groceries", "work", "secret"}},
		{name: "title ignores case", term: "GROC", want: []string{"groceries"}},
		{name: "content", term: "eggs", want: []string{"groceries"}},
		{name: "tag", term: "work", want: []string{"work"}},
		{name: "protected title still searchable", term: "bank", want: []string{"secret"}},
		{name: "ciphertext never searched", term: "encrypted", want: []string{}},
		{name: "no match", term: "zebra", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterNotes(notes, tt.term)))
		})
	}
}

func TestBuildView(t *testing.T) {
	a := note("a", t0)
	a.Title = "alpha"
	b := note("b", t0.Add(time.Hour))
	b.Title = "beta"
	b.IsPinned = true
	c := note("c", t0.Add(2*time.Hour))
	c.Title = "gamma"

	st := stateOf(a, b, c)

	view := BuildView(st)
	assert.Equal(t, []string{"b"}, ids(view.Pinned))
	assert.Equal(t, []string{"c", "a"}, ids(view.Regular))
	assert.Equal(t, []string{"b", "c", "a"}, ids(view.Notes()))
	assert.Equal(t, 3, view.Total)
	assert.False(t, view.Empty())

	st.SearchTerm = "nothing-like-this"
	view = BuildView(st)
	assert.True(t, view.Empty())
	assert.Equal(t, 3, view.Total)
	assert.Equal(t, "nothing-like-this", view.SearchTerm)

	assert.True(t, BuildView(models.NotesState{}).Empty())
}
