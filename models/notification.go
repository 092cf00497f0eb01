// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Fixed notification slots.
const (
	NotificationChecking = "checking"
	NotificationResult   = "result"
	NotificationError    = "error"
)

// NotificationKind classifies a notification for rendering.
type NotificationKind string

const (
	KindChecking NotificationKind = "checking"
	KindResult   NotificationKind = "result"
	KindError    NotificationKind = "error"
	KindInfo     NotificationKind = "info"
)

// Notification is one user-visible status message.
type Notification struct {
	ID                 string           `json:"id"`
	Kind               NotificationKind `json:"kind"`
	Title              string           `json:"title"`
	Message            string           `json:"message"`
	RequireInteraction bool             `json:"requireInteraction"`
	// Detected is set on result notifications to pick the danger styling.
	Detected  *bool     `json:"detected,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NotificationPhase is the state of the notification lifecycle.
type NotificationPhase int

const (
	PhaseIdle NotificationPhase = iota
	PhaseChecking
	PhaseResult
	PhaseError
)

// String returns the phase name.
func (p NotificationPhase) String() string {
	switch p {
	case PhaseChecking:
		return "checking"
	case PhaseResult:
		return "result"
	case PhaseError:
		return "error"
	default:
		return "idle"
	}
}

// NotificationState is the current phase with the id of the notification
// that represents it. ID is empty in PhaseIdle.
type NotificationState struct {
	Phase NotificationPhase
	ID    string
}
