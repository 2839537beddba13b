// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-notes-keeper/models"
)

func (c *CLI) newEnrichCommand() *cobra.Command {
	var req models.EnrichmentRequest

	cmd := &cobra.Command{
		Use:   "enrich <id>",
		Short: "Add an AI summary, tags, grammar check or glossary to a note",
		Long: `Send the note content to the AI enrichment service and store the results
with the note. Without flags every enrichment is requested.

The content of a protected note is only sent after it has been unlocked.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !req.Any() {
				req = models.EnrichmentRequest{Summary: true, Tags: true, Grammar: true, Glossary: true}
			}

			deps, err := c.notes(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			session, err := deps.Services.Notes.OpenSession(args[0])
			if err != nil {
				return err
			}
			defer session.Close()

			if err := unlock(ctx, deps.Prompter, session); err != nil {
				return err
			}

			result, enrichErr := deps.Services.Enrichment.Enrich(ctx, session, req)
			if enrichErr != nil && !hasResults(result) {
				return enrichErr
			}

			if session.IsDirty() {
				if _, err := deps.Services.Notes.Commit(ctx, session); err != nil {
					return fmt.Errorf("save note: %w", err)
				}
			}

			out := cmd.OutOrStdout()
			if len(result.Tags) > 0 {
				fmt.Fprintf(out, "Tags: %s\n", strings.Join(session.Tags(), ", "))
			}
			printEnrichment(out, result)

			if enrichErr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Some enrichments failed: %v\n", enrichErr)
			}
			return enrichErr
		},
	}

	cmd.Flags().BoolVar(&req.Summary, "summary", false, "summarize the note")
	cmd.Flags().BoolVar(&req.Tags, "tags", false, "suggest tags")
	cmd.Flags().BoolVar(&req.Grammar, "grammar", false, "check grammar")
	cmd.Flags().BoolVar(&req.Glossary, "glossary", false, "build a glossary of terms")
	return cmd
}

func hasResults(e models.Enrichment) bool {
	return e.Summary != "" || len(e.Tags) > 0 || e.GrammarResults != "" || e.Glossary != ""
}
