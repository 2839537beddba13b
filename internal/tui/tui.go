// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui asks the user for passwords and confirmations.
//
// On an interactive terminal the questions are Bubble Tea programs with
// masked inputs. When stdin is a pipe or a file the same questions are read
// line by line, so scripts and tests can answer them.
package tui

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// Prompter asks the questions the notes CLI needs answered interactively.
// Passwords are never accepted any other way.
type Prompter interface {
	// Password asks for the password of a protected note.
	Password(ctx context.Context, title string) (string, error)

	// NewPassword asks for a new password and its confirmation. hint is
	// shown above the inputs, typically the reason the previous attempt
	// was rejected.
	NewPassword(ctx context.Context, title, hint string) (password, confirmation string, err error)

	// Confirm asks a yes/no question. Anything but yes is no.
	Confirm(ctx context.Context, question string) (bool, error)
}

// NewPrompter returns a terminal prompter when in is an interactive
// terminal and a line-based one otherwise.
func NewPrompter(in io.Reader, out io.Writer, log *logger.Logger) Prompter {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		log.Debug().Str("func", "tui.NewPrompter").Msg("using terminal prompts")
		return &teaPrompter{in: f, out: out, log: log}
	}
	log.Debug().Str("func", "tui.NewPrompter").Msg("stdin is not a terminal, reading answers line by line")
	return newLinePrompter(in, out)
}

type teaPrompter struct {
	in  *os.File
	out io.Writer
	log *logger.Logger
}

func (p *teaPrompter) Password(ctx context.Context, title string) (string, error) {
	m, err := p.run(ctx, newPasswordModel(title, "", false))
	if err != nil {
		return "", err
	}
	return m.password(), nil
}

func (p *teaPrompter) NewPassword(ctx context.Context, title, hint string) (string, string, error) {
	m, err := p.run(ctx, newPasswordModel(title, hint, true))
	if err != nil {
		return "", "", err
	}
	return m.password(), m.confirmation(), nil
}

func (p *teaPrompter) Confirm(ctx context.Context, question string) (bool, error) {
	final, err := p.program(ctx, newConfirmModel(question)).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(confirmModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if m.cancelled {
		return false, ErrPromptCancelled
	}
	return m.answer, nil
}

func (p *teaPrompter) run(ctx context.Context, model passwordModel) (passwordModel, error) {
	// a killed program must not leave the terminal in raw mode
	fd := int(p.in.Fd())
	if state, err := term.GetState(fd); err == nil {
		defer func() {
			if err := term.Restore(fd, state); err != nil {
				p.log.Err(err).Str("func", "teaPrompter.run").Msg("failed to restore terminal state")
			}
		}()
	}

	final, err := p.program(ctx, model).Run()
	if err != nil {
		return passwordModel{}, err
	}
	m, ok := final.(passwordModel)
	if !ok {
		return passwordModel{}, tea.ErrProgramKilled
	}
	if m.cancelled {
		return passwordModel{}, ErrPromptCancelled
	}
	return m, nil
}

func (p *teaPrompter) program(ctx context.Context, model tea.Model) *tea.Program {
	return tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)
}
