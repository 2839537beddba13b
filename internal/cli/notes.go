// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newListCommand() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List notes, pinned first then most recently updated",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := c.notes(cmd)
			if err != nil {
				return err
			}
			printView(cmd.OutOrStdout(), deps.Services.Notes.Search(cmd.Context(), search))
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "only notes whose title, tags or content contain this text")
	return cmd
}

func (c *CLI) newNewCommand() *cobra.Command {
	var (
		title, content, tags string
		protect              bool
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := c.notes(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			session := deps.Services.Notes.NewSession()
			defer session.Close()

			if err := session.SetTitle(title); err != nil {
				return err
			}
			if err := session.SetContent(content); err != nil {
				return err
			}
			if err := session.SetTags(tags); err != nil {
				return err
			}
			if protect {
				if err := choosePassword(ctx, deps.Prompter, session); err != nil {
					return err
				}
			}

			note, err := deps.Services.Notes.Commit(ctx, session)
			if err != nil {
				return fmt.Errorf("create note: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), note.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "note title")
	cmd.Flags().StringVarP(&content, "content", "c", "", "note content")
	cmd.Flags().StringVar(&tags, "tags", "", "comma-separated tags")
	cmd.Flags().BoolVar(&protect, "protect", false, "protect the note with a password")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func (c *CLI) newShowCommand() *cobra.Command {
	var copyContent bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a note, asking for its password when protected",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := c.notes(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			note, err := deps.Services.Notes.Get(args[0])
			if err != nil {
				return err
			}
			session, err := deps.Services.Notes.OpenSession(note.ID)
			if err != nil {
				return err
			}
			defer session.Close()

			if err := unlock(ctx, deps.Prompter, session); err != nil {
				return err
			}

			if copyContent {
				if deps.Clipboard == nil {
					return ErrClipboardDisabled
				}
				if err := deps.Clipboard(session.Content()); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Content copied to clipboard.")
				return nil
			}

			printNote(cmd.OutOrStdout(), note, session)
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyContent, "copy", false, "copy the content to the clipboard instead of printing it")
	return cmd
}

func (c *CLI) newEditCommand() *cobra.Command {
	var title, content, tags string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the title, content or tags of a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("title") && !flags.Changed("content") && !flags.Changed("tags") {
				return ErrNothingToEdit
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

			if flags.Changed("title") {
				if err := session.SetTitle(title); err != nil {
					return err
				}
			}
			if flags.Changed("content") {
				if err := session.SetContent(content); err != nil {
					return err
				}
			}
			if flags.Changed("tags") {
				if err := session.SetTags(tags); err != nil {
					return err
				}
			}

			if !session.IsDirty() {
				fmt.Fprintln(cmd.ErrOrStderr(), "No changes.")
				return nil
			}
			if _, err := deps.Services.Notes.Commit(ctx, session); err != nil {
				return fmt.Errorf("save note: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&content, "content", "c", "", "new content")
	cmd.Flags().StringVar(&tags, "tags", "", "new comma-separated tags (replaces the old ones)")
	return cmd
}

func (c *CLI) newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a note",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := c.notes(cmd)
			if err != nil {
				return err
			}
			return deps.Services.Notes.Delete(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) newPinCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pin <id>",
		Short: "Pin or unpin a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := c.notes(cmd)
			if err != nil {
				return err
			}
			note, err := deps.Services.Notes.TogglePin(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if note.IsPinned {
				fmt.Fprintf(cmd.OutOrStdout(), "Pinned %q.\n", note.Title)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Unpinned %q.\n", note.Title)
			}
			return nil
		},
	}
}
