// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/rf-checker/internal/popup"
	"github.com/MKhiriev/rf-checker/models"
)

type stateLoadedMsg struct {
	state popup.State
	err   error
}

type checkDoneMsg struct {
	check models.LastCheck
	err   error
}

type settingsSavedMsg struct {
	apiURL string
	apiKey string
	err    error
}

type accountDoneMsg struct {
	creds  models.Credentials
	action string
	err    error
}

type clearStatusMsg struct{}
