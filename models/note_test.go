// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNewNote_Defaults(t *testing.T) {
	n := NewNote("id-1", now)

	assert.Equal(t, "id-1", n.ID)
	assert.Empty(t, n.Title)
	assert.Empty(t, n.Content)
	assert.Equal(t, now, n.CreatedAt)
	assert.Equal(t, now, n.UpdatedAt)
	assert.False(t, n.IsPinned)
	assert.False(t, n.IsPasswordProtected)
	require.NotNil(t, n.Tags)
	assert.Empty(t, n.Tags)
}

func TestNote_CloneDetachesTags(t *testing.T) {
	n := NewNote("a", now)
	n.Tags = []string{"x"}

	c := n.Clone()
	c.Tags[0] = "y"
	assert.Equal(t, []string{"x"}, n.Tags)

	n.Tags = nil
	assert.NotNil(t, n.Clone().Tags)
}

func TestNote_TouchNeverMovesBackwards(t *testing.T) {
	n := NewNote("a", now)

	n.Touch(now.Add(-time.Hour))
	assert.Equal(t, now, n.UpdatedAt)

	n.Touch(now.Add(time.Hour))
	assert.Equal(t, now.Add(time.Hour), n.UpdatedAt)
}

func TestNote_HasTag(t *testing.T) {
	n := NewNote("a", now)
	n.Tags = []string{"Work"}
	assert.True(t, n.HasTag("work"))
	assert.False(t, n.HasTag("home"))
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{input: "", want: []string{}},
		{input: " , ,", want: []string{}},
		{input: "go", want: []string{"go"}},
		{input: " go , notes,go ,", want: []string{"go", "notes"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTags(tt.input))
		})
	}
}

func TestMergeTags_KeepsFirstAppearance(t *testing.T) {
	got := MergeTags([]string{"b", "a"}, "a", " c ", "", "b")
	assert.Equal(t, []string{"b", "a", "c"}, got)
}

func TestNotesState_Lookup(t *testing.T) {
	st := NotesState{Notes: []Note{NewNote("a", now), NewNote("b", now)}}

	assert.Equal(t, 1, st.IndexOf("b"))
	assert.Equal(t, -1, st.IndexOf("z"))

	_, ok := st.Selected()
	assert.False(t, ok)

	st.SelectedID = "b"
	sel, ok := st.Selected()
	require.True(t, ok)
	assert.Equal(t, "b", sel.ID)

	st.SelectedID = "gone"
	_, ok = st.Selected()
	assert.False(t, ok, "a dangling selection resolves to nothing")
}

func TestBuildInfo(t *testing.T) {
	b := NewBuildInfo("v1.0.0", "", "abc")
	assert.Equal(t, "N/A", b.Date)
	assert.Equal(t, "Build version: v1.0.0\nBuild date: N/A\nBuild commit: abc\n", b.String())
}

func TestEnrichmentRequest_Any(t *testing.T) {
	assert.False(t, EnrichmentRequest{}.Any())
	assert.True(t, EnrichmentRequest{Glossary: true}.Any())
}
