// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the coordinator's business logic.
//
// The [Checker] runs one check end to end: it raises the checking
// notification, reads fresh credentials, validates and submits the payload,
// decodes the verdict, persists it as the last check and ends the cycle with
// a result or an error notification. [Auth] drives the login, register, key
// regeneration and settings flows that populate the credential store.
// [Coordinator] dispatches bridge messages and context-menu clicks onto the
// Checker.
package service
