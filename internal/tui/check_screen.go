// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/rf-checker/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

type checkModel struct {
	input    textinput.Model
	spinner  spinner.Model
	tab      models.Tab
	last     *models.LastCheck
	checking bool
	errMsg   string
	width    int
}

func newCheckModel() checkModel {
	input := textinput.New()
	input.Placeholder = "URL, comma-separated URLs, game title or text"
	input.CharLimit = 5000
	input.Width = 50
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot

	return checkModel{input: input, spinner: s}
}

// prefill puts the page selection into the input unless the user typed
// something already.
func (m *checkModel) prefill(selection string) {
	if selection != "" && strings.TrimSpace(m.input.Value()) == "" {
		m.input.SetValue(selection)
		m.input.CursorEnd()
	}
}

func (m checkModel) View() string {
	var b strings.Builder
	b.WriteString("Page:  ")
	b.WriteString(fitText(valueOrDash(m.tab.URL), 60))
	b.WriteString("\n")
	b.WriteString("Check: [")
	b.WriteString(m.input.View())
	b.WriteString("]\n\n")

	switch {
	case m.checking:
		b.WriteString(m.spinner.View())
		b.WriteString(" Analysing content...\n\n")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("❌ " + m.errMsg))
		b.WriteString("\n\n")
	}

	b.WriteString(renderResult(m.last, m.width))

	return renderPage(
		"CHECK",
		strings.TrimRight(b.String(), "\n"),
		"enter: check (empty input checks the page) │ esc: clear input",
	)
}
