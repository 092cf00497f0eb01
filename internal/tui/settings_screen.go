// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type settingsModel struct {
	inputs []textinput.Model
	focus  int
	saving bool
	status string
	errMsg string
}

func newSettingsModel() settingsModel {
	apiURL := textinput.New()
	apiURL.Placeholder = "http://localhost:8000"
	apiURL.CharLimit = 500
	apiURL.Width = 40

	apiKey := textinput.New()
	apiKey.Placeholder = "API key"
	apiKey.CharLimit = 256
	apiKey.Width = 40
	apiKey.EchoMode = textinput.EchoPassword
	apiKey.EchoCharacter = '*'

	return settingsModel{inputs: []textinput.Model{apiURL, apiKey}}
}

func (m *settingsModel) load(apiURL, apiKey string) {
	m.inputs[0].SetValue(apiURL)
	m.inputs[1].SetValue(apiKey)
}

func (m settingsModel) values() (apiURL, apiKey string) {
	return strings.TrimSpace(m.inputs[0].Value()), strings.TrimSpace(m.inputs[1].Value())
}

func (m settingsModel) View() string {
	var b strings.Builder
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	b.WriteString("API URL  │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("API key  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.saving {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("SETTINGS", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: save")
}
