// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires the rfcheck surfaces together.
//
// An [App] owns the stores, the API adapter, the notification manager and
// the services. The coordinator mode serves the bridge and runs the
// background workers; the page and popup modes reach a running coordinator
// over HTTP and fall back to in-process checks when none is listening.
package client
