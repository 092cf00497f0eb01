// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package page implements the page surface: the per-tab selection tracker
// that answers popup queries and offers the "check selection" action on
// gaming storefronts.
package page
