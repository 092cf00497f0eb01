// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

// DefaultTabID is the tab id of the clipboard-fed page surface.
const DefaultTabID = 1

var ErrClipboardUnsupported = errors.New("clipboard is not available on this system")
