// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SelectionSnapshot is the most recent text the user highlighted on a page.
type SelectionSnapshot struct {
	Text       string    `json:"text"`
	CapturedAt time.Time `json:"capturedAt"`
}

// Tab describes the page a popup was opened over.
type Tab struct {
	ID  int    `json:"id"`
	URL string `json:"url"`
}

// ContextMenuEvent is a right-click "check" request coming from a page.
type ContextMenuEvent struct {
	TabID int `json:"tabId,omitempty"`
	// LinkURL is set when the click landed on a link.
	LinkURL string `json:"linkUrl,omitempty"`
	// PageURL is the location of the frame that was clicked.
	PageURL string `json:"pageUrl,omitempty"`
	// TabURL is the top-level tab location.
	TabURL string `json:"tabUrl,omitempty"`
	// SelectionText is the highlighted text, if any.
	SelectionText string `json:"selectionText,omitempty"`
	// AnchorHref is the href of the anchor element enclosing the selection.
	AnchorHref string `json:"anchorHref,omitempty"`
}
