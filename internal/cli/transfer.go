// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

func (c *CLI) newExportCommand() *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all notes as JSON or YAML",
		Long: `Write all notes as JSON or YAML.

Protected notes are exported as stored: their content stays encrypted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := c.notes(cmd)
			if err != nil {
				return err
			}

			data, err := deps.Services.Notes.Export(cmd.Context(), store.ExportFormat(format))
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o600); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported to %s.\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(store.ExportJSON), "json or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func (c *CLI) newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all notes with the ones in a JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}

			deps, err := c.notes(cmd)
			if err != nil {
				return err
			}
			notes, err := deps.Services.Notes.Import(cmd.Context(), data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d notes.\n", len(notes))
			return nil
		},
	}
}

func (c *CLI) newClearCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := c.notes(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if !yes {
				ok, err := deps.Prompter.Confirm(ctx, "Delete all notes? This cannot be undone.")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.ErrOrStderr(), "Nothing deleted.")
					return nil
				}
			}

			if err := deps.Services.Notes.Clear(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All notes deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}
