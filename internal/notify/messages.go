// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

// Titles and messages shown to the user.
const (
	AppTitle       = "RF Checker"
	ErrorTitle     = "RF Checker - Error"
	DetectedTitle  = "⚠️ RF content detected"
	SafeTitle      = "✅ Content is safe"
	UnknownTitle   = "❔ Verdict unknown"
	GenericFailure = "Could not check the page"

	CheckingPage  = "Checking the page..."
	CheckingURLs  = "Checking URLs..."
	CheckingGame  = "Checking the game..."
	CheckingText  = "Checking the text..."
	OpenPopupHint = "Click the extension icon to run a check"
	NoAPIKeyHint  = "Please set an API key in the extension settings"
)

// maxMessageRunes bounds the body of a result notification.
const maxMessageRunes = 200

// truncate cuts s to maxMessageRunes runes and appends "..." when it was longer.
func truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxMessageRunes {
		return s
	}
	return string(r[:maxMessageRunes]) + "..."
}
