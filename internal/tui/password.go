// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// passwordModel reads one masked password, or a password and its
// confirmation when confirm is set. Enter on the last input submits.
type passwordModel struct {
	title string
	hint  string

	inputs    []textinput.Model
	focus     int
	cancelled bool
	submitted bool
}

func newPasswordModel(title, hint string, confirm bool) passwordModel {
	placeholders := []string{"password"}
	if confirm {
		placeholders = append(placeholders, "repeat password")
	}

	inputs := make([]textinput.Model, len(placeholders))
	for i, ph := range placeholders {
		in := textinput.New()
		in.Placeholder = ph
		in.CharLimit = 256
		in.Width = 40
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
		inputs[i] = in
	}
	inputs[0].Focus()

	return passwordModel{title: title, hint: hint, inputs: inputs}
}

func (m passwordModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m passwordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.tab):
			m.setFocus(m.focus + 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.setFocus(m.focus - 1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.focus < len(m.inputs)-1 {
				m.setFocus(m.focus + 1)
				return m, nil
			}
			m.submitted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m passwordModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	var b strings.Builder
	if m.hint != "" {
		b.WriteString(hintStyle.Render(m.hint))
		b.WriteString("\n\n")
	}

	labels := []string{"Password", "Repeat  "}
	for i := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString(" │ ")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	help := "enter: confirm │ esc: cancel"
	if len(m.inputs) > 1 {
		help = "tab: next field │ " + help
	}
	return renderPage(m.title, b.String(), help) + "\n"
}

func (m passwordModel) password() string {
	return m.inputs[0].Value()
}

func (m passwordModel) confirmation() string {
	if len(m.inputs) < 2 {
		return ""
	}
	return m.inputs[1].Value()
}

func (m *passwordModel) setFocus(i int) {
	n := len(m.inputs)
	m.inputs[m.focus].Blur()
	m.focus = (i%n + n) % n
	m.inputs[m.focus].Focus()
}
