// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"strings"

	"github.com/MKhiriev/rf-checker/models"
)

// ParseAnalysis decodes the analysis JSON carried in a check response
// message. A surrounding Markdown code fence is ignored. Anything that does
// not decode to an object yields the raw message as text with an unknown
// verdict; this never fails.
func ParseAnalysis(message string) models.Analysis {
	body := stripCodeFence(strings.TrimSpace(message))

	var analysis models.Analysis
	if !strings.HasPrefix(body, "{") || json.Unmarshal([]byte(body), &analysis) != nil {
		return models.Analysis{Text: message}
	}

	return analysis
}

// stripCodeFence removes a leading ``` line (with optional language tag)
// and a trailing ```.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}

	nl := strings.IndexByte(s, '\n')
	if nl < 0 {
		return s
	}
	s = s[nl+1:]

	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
