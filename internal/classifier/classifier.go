// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package classifier

import (
	"strings"

	"github.com/MKhiriev/rf-checker/models"
	"github.com/samber/lo"
)

// Classify maps a single string to a request kind: URL first, then game
// title, then text.
func Classify(s string) models.RequestKind {
	switch {
	case IsURL(s):
		return models.KindURL
	case IsLikelyGameName(s):
		return models.KindGame
	default:
		return models.KindText
	}
}

// ClassifyInput turns the popup's combined input box into a request.
//
// A comma makes the input a URL list; only the valid URLs are kept and the
// whole input becomes text when none is valid. Otherwise a single URL, a
// game title and non-empty text are tried in that order. An empty input
// falls back to tabURL when it is itself a URL.
func ClassifyInput(raw, tabURL string) (models.CheckRequest, error) {
	raw = strings.TrimSpace(raw)

	if strings.Contains(raw, ",") {
		if urls := ValidURLs(strings.Split(raw, ",")); len(urls) > 0 {
			return models.NewURLRequest(urls, ""), nil
		}
		return models.NewTextRequest(raw), nil
	}

	if raw != "" {
		return FromSelection(raw), nil
	}

	if tabURL = strings.TrimSpace(tabURL); IsURL(tabURL) {
		return models.NewURLRequest([]string{tabURL}, ""), nil
	}

	return models.CheckRequest{}, ErrNoInput
}

// FromSelection classifies a single non-empty string.
func FromSelection(s string) models.CheckRequest {
	s = strings.TrimSpace(s)

	switch Classify(s) {
	case models.KindURL:
		return models.NewURLRequest([]string{s}, "")
	case models.KindGame:
		return models.NewGameRequest(s)
	default:
		return models.NewTextRequest(s)
	}
}

// ValidURLs trims every candidate and keeps the ones that are URLs.
func ValidURLs(candidates []string) []string {
	return lo.FilterMap(candidates, func(c string, _ int) (string, bool) {
		c = strings.TrimSpace(c)
		return c, IsURL(c)
	})
}

// ResolveLink turns a context-menu click into a request.
//
// A click on a link, or a selection inside an anchor, checks the link with
// the selection as a game hint. A plain selection is classified on its own.
// Without a selection the frame URL is checked, falling back to the tab URL.
func ResolveLink(ev models.ContextMenuEvent) (models.CheckRequest, error) {
	selection := strings.TrimSpace(ev.SelectionText)

	if link, ok := linkTarget(ev); ok {
		hint := ""
		if selection != "" && selection != link {
			hint = selection
		}
		return models.NewURLRequest([]string{link}, hint), nil
	}

	if selection != "" {
		return FromSelection(selection), nil
	}

	for _, candidate := range []string{ev.PageURL, ev.TabURL} {
		if candidate = strings.TrimSpace(candidate); IsURL(candidate) {
			return models.NewURLRequest([]string{candidate}, ""), nil
		}
	}

	return models.CheckRequest{}, ErrNoInput
}

func linkTarget(ev models.ContextMenuEvent) (string, bool) {
	for _, candidate := range []string{ev.LinkURL, ev.AnchorHref} {
		if candidate = strings.TrimSpace(candidate); IsURL(candidate) {
			return candidate, true
		}
	}
	return "", false
}
