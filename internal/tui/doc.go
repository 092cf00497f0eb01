// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the popup surface in the terminal with Bubble Tea.
//
// The popup has three screens: check, settings and account. Ctrl+T cycles
// through them.
package tui
