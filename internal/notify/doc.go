// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify drives the user-visible notification lifecycle.
//
// A [Manager] moves through Idle → Checking → Result | Error. Result and
// Error are terminal for a cycle; the next Checking retires them. Rendering is
// delegated to a [Notifier] sink: a zerolog sink, a pterm terminal sink, or a
// fan-out of several.
package notify
