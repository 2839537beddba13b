// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "strings"

const uiDivider = "────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	for _, line := range strings.Split(strings.TrimRight(data, "\n"), "\n") {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(uiDivider)
	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(hotKeys))
	}

	return boxStyle.Render(b.String())
}
