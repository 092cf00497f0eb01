// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the HTTP surfaces:
// JSON response writing, a preconfigured resty client and id generation.
package utils
