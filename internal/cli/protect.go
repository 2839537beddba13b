// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newProtectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "protect <id>",
		Short: "Encrypt a note's content under a new password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			if err := choosePassword(ctx, deps.Prompter, session); err != nil {
				return err
			}
			if _, err := deps.Services.Notes.Commit(ctx, session); err != nil {
				return fmt.Errorf("save note: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Protected %q.\n", session.Title())
			return nil
		},
	}
}

func (c *CLI) newUnprotectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unprotect <id>",
		Short: "Remove the password and store the content as plain text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			if !session.IsProtected() {
				return ErrNotProtected
			}
			if err := unlock(ctx, deps.Prompter, session); err != nil {
				return err
			}
			if err := session.DisableProtection(); err != nil {
				return err
			}
			if _, err := deps.Services.Notes.Commit(ctx, session); err != nil {
				return fmt.Errorf("save note: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed protection from %q.\n", session.Title())
			return nil
		},
	}
}
