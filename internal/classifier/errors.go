// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package classifier

import "errors"

// ErrNoInput is returned when neither the input nor the tab URL yields
// anything that can be submitted.
var ErrNoInput = errors.New("nothing to check: enter a URL, a game title or some text")
