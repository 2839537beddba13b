// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// linePrompter answers prompts from successive lines of a non-interactive
// input. Nothing typed is echoed back.
type linePrompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newLinePrompter(in io.Reader, out io.Writer) *linePrompter {
	return &linePrompter{scanner: bufio.NewScanner(in), out: out}
}

func (p *linePrompter) Password(ctx context.Context, title string) (string, error) {
	return p.ask(ctx, title+": ")
}

func (p *linePrompter) NewPassword(ctx context.Context, title, hint string) (string, string, error) {
	if hint != "" {
		fmt.Fprintln(p.out, hint)
	}
	password, err := p.ask(ctx, title+": ")
	if err != nil {
		return "", "", err
	}
	confirmation, err := p.ask(ctx, "Repeat password: ")
	if err != nil {
		return "", "", err
	}
	return password, confirmation, nil
}

func (p *linePrompter) Confirm(ctx context.Context, question string) (bool, error) {
	answer, err := p.ask(ctx, question+" [y/N]: ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (p *linePrompter) ask(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.out, label)

	if !p.scanner.Scan() {
		fmt.Fprintln(p.out)
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("read answer: %w", err)
		}
		return "", ErrNoInput
	}
	return strings.TrimRight(p.scanner.Text(), "\r"), nil
}
