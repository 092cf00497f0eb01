// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/rf-checker/internal/adapter"
	"github.com/MKhiriev/rf-checker/internal/bridge"
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var netErr *adapter.NetworkError
	if errors.As(err, &netErr) || errors.Is(err, bridge.ErrTransportFailure) {
		return "Network is unavailable or the API is unreachable"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is unavailable or the API is unreachable"
	}

	return err.Error()
}
