// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package classifier

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	minGameNameLen = 2
	maxGameNameLen = 100

	minFallbackTokens = 2
	maxFallbackTokens = 5
)

// rule is one named predicate of the game-name heuristic.
type rule struct {
	name  string
	match func(s string) bool
}

var (
	schemePrefix = regexp.MustCompile(`(?i)^[a-z][a-z0-9+.\-]*://`)
	titleCase    = regexp.MustCompile(`^[\p{Lu}\p{N}][\p{L}\p{N}'’\-&.!+]*(?:[ :]+[\p{Lu}\p{N}][\p{L}\p{N}'’\-&.!+]*)*$`)
	numericOnly  = regexp.MustCompile(`^[\d\s.,\-]+$`)
)

var gameKeywords = []string{
	"game", "edition", "remastered", "remake", "deluxe", "goty", "simulator",
	"online", "chronicles", "saga", "collection", "definitive", "ultimate",
	"dlc", "season", "chapter", "episode",
}

// badRules reject a candidate outright.
var badRules = []rule{
	{name: "scheme", match: schemePrefix.MatchString},
	{name: "newline", match: func(s string) bool { return strings.ContainsAny(s, "\r\n") }},
	{name: "symbols", match: func(s string) bool { return strings.ContainsAny(s, "@#$") }},
	{name: "numeric", match: numericOnly.MatchString},
	{name: "no-letters", match: func(s string) bool { return strings.IndexFunc(s, unicode.IsLetter) < 0 }},
}

// goodRules accept a candidate that passed every bad rule.
var goodRules = []rule{
	{name: "title-case", match: titleCase.MatchString},
	{name: "digit", match: func(s string) bool { return strings.IndexFunc(s, unicode.IsDigit) >= 0 }},
	{name: "colon", match: func(s string) bool { return strings.Contains(s, ":") }},
	{name: "keyword", match: containsKeyword},
}

func containsKeyword(s string) bool {
	lower := strings.ToLower(s)
	for _, kw := range gameKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// tokenFallback accepts 2 to 5 words when at least one starts uppercase.
func tokenFallback(s string) bool {
	tokens := strings.Fields(s)
	if len(tokens) < minFallbackTokens || len(tokens) > maxFallbackTokens {
		return false
	}
	for _, tok := range tokens {
		r, _ := utf8.DecodeRuneInString(tok)
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// IsLikelyGameName reports whether s looks like a game title.
func IsLikelyGameName(s string) bool {
	_, ok := matchGameName(s)
	return ok
}

// matchGameName returns the name of the rule that decided the outcome.
func matchGameName(s string) (string, bool) {
	s = strings.TrimSpace(s)

	if n := utf8.RuneCountInString(s); n < minGameNameLen || n > maxGameNameLen {
		return "length", false
	}
	if IsURL(s) {
		return "url", false
	}

	for _, r := range badRules {
		if r.match(s) {
			return r.name, false
		}
	}
	for _, r := range goodRules {
		if r.match(s) {
			return r.name, true
		}
	}
	if tokenFallback(s) {
		return "tokens", true
	}

	return "", false
}
