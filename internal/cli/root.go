// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/tui"
)

// RootOptions holds the global flags. They override the environment and
// the JSON config file.
type RootOptions struct {
	Backend    string
	Path       string
	ConfigFile string
	LogLevel   string
	LogFile    string
}

func (o RootOptions) overrides() *config.StructuredConfig {
	return &config.StructuredConfig{
		JSONFilePath: o.ConfigFile,
		Storage:      config.Storage{Backend: o.Backend, Path: o.Path},
		Log:          config.Log{Level: o.LogLevel, File: o.LogFile},
	}
}

// Deps is everything a command runs against.
type Deps struct {
	Services  *service.Services
	Prompter  tui.Prompter
	Clipboard func(text string) error

	// Close releases storage and log files. May be nil.
	Close func() error
}

// Builder turns the parsed global flags into [Deps]. It is called at most
// once per [CLI], on the first command that needs it.
type Builder func(ctx context.Context, overrides *config.StructuredConfig) (*Deps, error)

// CLI is the notes command tree together with the lazily built
// dependencies it runs against.
type CLI struct {
	build Builder
	opts  RootOptions

	deps   *Deps
	loaded bool
}

func New(build Builder) *CLI {
	return &CLI{build: build}
}

// Execute runs the command line args and releases the dependencies.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	cmd := c.Command()
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return errors.Join(err, c.Close())
}

// Close releases whatever the builder opened.
func (c *CLI) Close() error {
	if c.deps == nil || c.deps.Close == nil {
		return nil
	}
	err := c.deps.Close()
	c.deps = nil
	return err
}

// Command builds the root command.
func (c *CLI) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Keep notes locally, optionally behind a password",
		Long: `notes keeps a collection of notes in a local store.

A note can be protected with a password: its content is then stored only
encrypted and is decrypted in memory when you open it. Passwords are always
asked for interactively and never accepted as flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&c.opts.Backend, "backend", "", "storage backend (file|sqlite|memory)")
	flags.StringVar(&c.opts.Path, "path", "", "storage file or database path")
	flags.StringVar(&c.opts.ConfigFile, "config", "", "JSON config file")
	flags.StringVar(&c.opts.LogLevel, "log-level", "", "log level (debug|info|warn|error)")
	flags.StringVar(&c.opts.LogFile, "log-file", "", "log file (default next to the data)")

	cmd.AddCommand(
		c.newListCommand(),
		c.newNewCommand(),
		c.newShowCommand(),
		c.newEditCommand(),
		c.newDeleteCommand(),
		c.newPinCommand(),
		c.newProtectCommand(),
		c.newUnprotectCommand(),
		c.newExportCommand(),
		c.newImportCommand(),
		c.newClearCommand(),
		c.newEnrichCommand(),
		c.newVersionCommand(),
	)

	return cmd
}

func (c *CLI) dependencies(ctx context.Context) (*Deps, error) {
	if c.deps != nil {
		return c.deps, nil
	}
	deps, err := c.build(ctx, c.opts.overrides())
	if err != nil {
		return nil, err
	}
	c.deps = deps
	return deps, nil
}

// notes returns the dependencies with the collection loaded.
func (c *CLI) notes(cmd *cobra.Command) (*Deps, error) {
	deps, err := c.dependencies(cmd.Context())
	if err != nil {
		return nil, err
	}
	if !c.loaded {
		if err := deps.Services.Notes.Load(cmd.Context()); err != nil {
			return nil, fmt.Errorf("load notes: %w", err)
		}
		c.loaded = true
	}
	return deps, nil
}
