// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const timeLayout = "2006-01-02 15:04"

var labelStyle = lipgloss.NewStyle().Bold(true)

func printView(w io.Writer, view service.NotesView) {
	if view.Empty() {
		if view.Total == 0 {
			fmt.Fprintln(w, "No notes yet.")
		} else {
			fmt.Fprintf(w, "No notes match %q.\n", view.SearchTerm)
		}
		return
	}

	rows := make([][]string, 0, len(view.Pinned)+len(view.Regular))
	for _, n := range view.Notes() {
		rows = append(rows, []string{
			markers(n),
			n.ID,
			n.Title,
			strings.Join(n.Tags, ", "),
			n.UpdatedAt.Local().Format(timeLayout),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("", "ID", "TITLE", "TAGS", "UPDATED").
		Rows(rows...)
	fmt.Fprintln(w, t.Render())
}

// markers flags pinned (P) and protected (L) notes.
func markers(n models.Note) string {
	var b strings.Builder
	if n.IsPinned {
		b.WriteByte('P')
	}
	if n.IsPasswordProtected {
		b.WriteByte('L')
	}
	return b.String()
}

func printNote(w io.Writer, n models.Note, session *service.EditSession) {
	field := func(label, value string) {
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render(label+":"), value)
	}

	field("Title", session.Title())
	field("ID", n.ID)
	if tags := session.Tags(); len(tags) > 0 {
		field("Tags", strings.Join(tags, ", "))
	}
	field("Created", formatTime(n.CreatedAt))
	field("Updated", formatTime(n.UpdatedAt))
	field("Pinned", yesNo(n.IsPinned))
	field("Protected", yesNo(n.IsPasswordProtected))

	fmt.Fprintln(w)
	fmt.Fprintln(w, session.Content())

	printEnrichment(w, session.Enrichment())
}

func printEnrichment(w io.Writer, e models.Enrichment) {
	for _, section := range []struct{ label, value string }{
		{"Summary", e.Summary},
		{"Grammar", e.GrammarResults},
		{"Glossary", e.Glossary},
	} {
		if strings.TrimSpace(section.value) == "" {
			continue
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, labelStyle.Render(section.label+":"))
		fmt.Fprintln(w, section.value)
	}
}

func formatTime(t time.Time) string {
	return t.Local().Format(timeLayout)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
