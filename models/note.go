// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"strings"
	"time"
)

// Note is a single user note as it lives in memory and in the durable slot.
//
// Content is either wholly plaintext or wholly ciphertext carrying the
// "encrypted:" marker; it is never mixed. When IsPasswordProtected is true
// the persisted form of Content is always ciphertext.
type Note struct {
	// ID is an opaque identifier, unique across the collection and
	// immutable once the note is created.
	ID string `json:"id" yaml:"id"`

	// Title is the human-readable note title.
	Title string `json:"title" yaml:"title"`

	// Content is the opaque editor payload (text or markup), or the tagged
	// ciphertext of it for protected notes.
	Content string `json:"content" yaml:"content"`

	// CreatedAt is set once when the note is first saved.
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`

	// UpdatedAt never goes backwards across mutations of the same note.
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`

	IsPinned            bool `json:"isPinned" yaml:"isPinned"`
	IsPasswordProtected bool `json:"isPasswordProtected" yaml:"isPasswordProtected"`

	// Tags behaves as a set for deduplication but keeps display order.
	Tags []string `json:"tags" yaml:"tags"`

	// Summary, Glossary and GrammarResults are derived strings supplied by
	// the enrichment service. They are stored verbatim and never encrypted.
	Summary        string `json:"summary,omitempty" yaml:"summary,omitempty"`
	Glossary       string `json:"glossary,omitempty" yaml:"glossary,omitempty"`
	GrammarResults string `json:"grammarResults,omitempty" yaml:"grammarResults,omitempty"`
}

// NewNote returns an empty unsaved note with both timestamps set to now.
func NewNote(id string, now time.Time) Note {
	return Note{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
		Tags:      []string{},
	}
}

// Clone returns a copy of n that shares no slices with it.
func (n Note) Clone() Note {
	c := n
	c.Tags = slices.Clone(n.Tags)
	if c.Tags == nil {
		c.Tags = []string{}
	}
	return c
}

// Touch advances UpdatedAt to at unless that would move it backwards.
func (n *Note) Touch(at time.Time) {
	if at.After(n.UpdatedAt) {
		n.UpdatedAt = at
	}
}

// HasTag reports whether the note carries tag, compared case-insensitively.
func (n Note) HasTag(tag string) bool {
	return slices.ContainsFunc(n.Tags, func(t string) bool {
		return strings.EqualFold(t, tag)
	})
}

// ParseTags splits comma-separated user input into trimmed, non-empty tags.
func ParseTags(input string) []string {
	tags := make([]string, 0)
	for _, part := range strings.Split(input, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return MergeTags(nil, tags...)
}

// MergeTags appends extra to tags, skipping empty values and anything
// already present. The order of first appearance is kept.
func MergeTags(tags []string, extra ...string) []string {
	out := make([]string, 0, len(tags)+len(extra))
	seen := make(map[string]struct{}, len(tags)+len(extra))
	for _, tag := range slices.Concat(tags, extra) {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
