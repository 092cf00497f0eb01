// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bridge carries request/response messages between the
// coordinator, the page surface of each tab and the popup.
//
// A message goes to an [Endpoint]: the coordinator or one tab. Delivery is
// in-process through a [Bus], or over HTTP through [Handler] and
// [HTTPSender]. An endpoint that nobody listens on yields [ErrNoReceiver];
// callers treat it as a normal outcome.
package bridge
