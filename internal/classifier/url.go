// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package classifier

import (
	"net/url"
	"strings"
	"unicode"
)

// IsURL reports whether s is an absolute URL. The input is trimmed; interior
// whitespace, a missing scheme or a parse error all mean "not a URL".
func IsURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return false
	}

	u, err := url.Parse(s)
	if err != nil {
		return false
	}

	return u.Scheme != "" && (u.Host != "" || u.Opaque != "")
}
