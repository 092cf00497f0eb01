// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/rf-checker/models"
	"github.com/charmbracelet/bubbles/textinput"
)

// Account actions.
const (
	actionLogin      = "login"
	actionRegister   = "register"
	actionRegenerate = "regenerate"
	actionLogout     = "logout"
)

type accountModel struct {
	inputs []textinput.Model
	focus  int
	creds  models.Credentials
	busy   bool
	status string
	errMsg string
}

func newAccountModel() accountModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 50
	username.Width = 40

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return accountModel{inputs: []textinput.Model{username, password}}
}

func (m accountModel) request() models.AuthRequest {
	return models.AuthRequest{
		Username: strings.TrimSpace(m.inputs[0].Value()),
		Password: m.inputs[1].Value(),
	}
}

func (m accountModel) View() string {
	var b strings.Builder

	if m.creds.LoggedIn() {
		b.WriteString("Signed in as ")
		b.WriteString(titleStyle.Render(valueOrDash(m.creds.Username)))
		b.WriteString("\nAPI key: ")
		b.WriteString(maskKey(m.creds.APIKey))
		b.WriteString("\n\n")
	} else {
		b.WriteString("Not signed in\n\n")
	}

	b.WriteString("Username │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.busy {
		b.WriteString("\n[Working...]\n")
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

	return renderPage(
		"ACCOUNT",
		strings.TrimRight(b.String(), "\n"),
		"enter: log in │ ctrl+r: register │ ctrl+g: new API key │ ctrl+o: log out",
	)
}
