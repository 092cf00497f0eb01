// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// RequestKind tags the active variant of a [CheckRequest].
type RequestKind int

const (
	// KindURL is a list of URLs, optionally with a co-selected game name hint.
	KindURL RequestKind = iota + 1
	// KindGame is a bare game title.
	KindGame
	// KindText is opaque free text.
	KindText
)

// String returns the lowercase name of the kind.
func (k RequestKind) String() string {
	switch k {
	case KindURL:
		return "url"
	case KindGame:
		return "game"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// CheckRequest is a classified user intent. Exactly one variant is active and
// it is fixed once the classifier has produced it; build values with
// NewURLRequest, NewGameRequest or NewTextRequest.
type CheckRequest struct {
	Kind RequestKind

	// URLs is set for KindURL.
	URLs []string
	// GameHint is an optional game name accompanying a KindURL request.
	GameHint string

	// GameName is set for KindGame.
	GameName string

	// Text is set for KindText.
	Text string
}

// NewURLRequest returns a URL variant. gameHint may be empty.
func NewURLRequest(urls []string, gameHint string) CheckRequest {
	return CheckRequest{Kind: KindURL, URLs: urls, GameHint: gameHint}
}

// NewGameRequest returns a game title variant.
func NewGameRequest(gameName string) CheckRequest {
	return CheckRequest{Kind: KindGame, GameName: gameName}
}

// NewTextRequest returns a free text variant.
func NewTextRequest(text string) CheckRequest {
	return CheckRequest{Kind: KindText, Text: text}
}

// Payload builds the wire body for POST /api/check on behalf of userID.
func (r CheckRequest) Payload(userID string) CheckPayload {
	p := CheckPayload{UserID: userID}

	switch r.Kind {
	case KindURL:
		p.URLs = r.URLs
		p.GameName = r.GameHint
	case KindGame:
		p.GameName = r.GameName
	case KindText:
		p.Text = r.Text
	}

	return p
}

// CheckPayload is the JSON body of POST /api/check.
type CheckPayload struct {
	URLs     []string `json:"urls,omitempty" validate:"omitempty,max=10,dive,required,max=500,safe_url"`
	GameName string   `json:"game_name,omitempty" validate:"omitempty,max=100,safe_game"`
	Text     string   `json:"text,omitempty"`
	UserID   string   `json:"user_id" validate:"required"`
}

// CheckResponse is the success body of POST /api/check. Message carries the
// analysis as a JSON document encoded into a string.
type CheckResponse struct {
	Message      string          `json:"message"`
	RequestID    string          `json:"request_id"`
	Timestamp    string          `json:"timestamp"`
	URLsMetadata json.RawMessage `json:"urls_metadata,omitempty"`
	SteamInfo    json.RawMessage `json:"steam_info,omitempty"`
	User         string          `json:"user,omitempty"`
}

// Analysis is the verdict decoded from CheckResponse.Message.
// IsRussianContent is nil when the message could not be decoded.
type Analysis struct {
	IsRussianContent *bool  `json:"is_russian_content"`
	Text             string `json:"text"`
}

// Detected reports a positive verdict.
func (a Analysis) Detected() bool {
	return a.IsRussianContent != nil && *a.IsRussianContent
}

// Known reports whether the verdict was decoded.
func (a Analysis) Known() bool {
	return a.IsRussianContent != nil
}

// Keys of the local transient scope.
const (
	KeyLastCheck    = "lastCheck"
	KeySelectedText = "selectedText"
)

// LastCheck is the single persisted result slot together with what was
// submitted to produce it.
type LastCheck struct {
	URL      string   `json:"url,omitempty"`
	URLs     []string `json:"urls,omitempty"`
	GameName string   `json:"gameName,omitempty"`
	Text     string   `json:"text,omitempty"`

	Result    Analysis  `json:"result"`
	Timestamp time.Time `json:"timestamp"`

	RequestID    string          `json:"requestId,omitempty"`
	URLsMetadata json.RawMessage `json:"urlsMetadata,omitempty"`
	SteamInfo    json.RawMessage `json:"steamInfo,omitempty"`
}

// Provenance returns a short description of what was checked.
func (l LastCheck) Provenance() string {
	switch {
	case l.URL != "":
		return l.URL
	case l.GameName != "":
		return l.GameName
	default:
		return l.Text
	}
}

// NewLastCheck assembles the stored record for req and its decoded analysis.
func NewLastCheck(req CheckRequest, resp CheckResponse, analysis Analysis, at time.Time) LastCheck {
	lc := LastCheck{
		Result:       analysis,
		Timestamp:    at.UTC(),
		RequestID:    resp.RequestID,
		URLsMetadata: resp.URLsMetadata,
		SteamInfo:    resp.SteamInfo,
	}

	switch req.Kind {
	case KindURL:
		lc.URLs = req.URLs
		if len(req.URLs) > 0 {
			lc.URL = req.URLs[0]
		}
		lc.GameName = req.GameHint
	case KindGame:
		lc.GameName = req.GameName
	case KindText:
		lc.Text = req.Text
	}

	return lc
}
