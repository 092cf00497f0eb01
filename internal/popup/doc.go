// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package popup implements the popup surface without its rendering: it loads
// what the popup shows and submits checks on the user's behalf.
package popup
