// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/cli"
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/crypto"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/tui"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const role = "notes"

// App runs the notes command line.
type App struct {
	buildInfo models.BuildInfo
	stdin     *os.File
	stderr    io.Writer
}

// NewApp returns an [App] reading prompts from stdin.
func NewApp(buildInfo models.BuildInfo) *App {
	return &App{buildInfo: buildInfo, stdin: os.Stdin, stderr: os.Stderr}
}

// Run executes args (without the program name).
func (a *App) Run(ctx context.Context, args []string) error {
	return cli.New(a.build).Execute(ctx, args)
}

// build wires config, logging, storage, crypto, the enrichment adapter and
// the services, in that order.
func (a *App) build(ctx context.Context, overrides *config.StructuredConfig) (*cli.Deps, error) {
	cfg, err := config.GetStructuredConfig(overrides)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	log, logCloser, err := logger.NewFileLogger(role, cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Err(err).Str("func", "App.build").Msg("create storages")
		_ = logCloser.Close()
		return nil, fmt.Errorf("create storages: %w", err)
	}

	codec := crypto.NewContentCodec(crypto.Params{
		Time:    cfg.Crypto.ArgonTime,
		Memory:  cfg.Crypto.ArgonMemory,
		Threads: cfg.Crypto.ArgonThreads,
	})

	var enrichment adapter.EnrichmentClient
	if cfg.Adapter.APIKey != "" {
		enrichment, err = adapter.NewGeminiEnrichmentClient(cfg.Adapter, log)
		if err != nil {
			_ = storages.Close()
			_ = logCloser.Close()
			return nil, fmt.Errorf("create enrichment adapter: %w", err)
		}
	} else {
		log.Debug().Str("func", "App.build").Msg("no enrichment api key configured, enrichment disabled")
	}

	services := service.NewServices(storages, codec, enrichment, a.buildInfo, log)

	log.Debug().
		Str("backend", cfg.Storage.Backend).
		Str("path", cfg.Storage.Path).
		Str("version", a.buildInfo.Version).
		Msg("notes initialized")

	return &cli.Deps{
		Services:  services,
		Prompter:  tui.NewPrompter(a.stdin, a.stderr, log),
		Clipboard: clipboard.WriteAll,
		Close: func() error {
			return errors.Join(storages.Close(), logCloser.Close())
		},
	}, nil
}
