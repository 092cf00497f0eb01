// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package page

import (
	"net/url"
	"strings"

	"github.com/samber/lo"
)

// GamingSites are the storefront hosts on which a selection can be sent for
// a check straight from the page.
var GamingSites = []string{
	"store.steampowered.com",
	"store.epicgames.com",
	"www.gog.com",
	"www.origin.com",
	"www.ubisoft.com",
	"www.ea.com",
	"store.playstation.com",
	"www.xbox.com",
	"itch.io",
	"www.humblebundle.com",
	"www.greenmangaming.com",
}

// IsGamingSite reports whether the host of pageURL contains one of the
// GamingSites entries. Subdomains such as "somegame.itch.io" match.
func IsGamingSite(pageURL string) bool {
	host := hostname(pageURL)
	if host == "" {
		return false
	}
	return lo.SomeBy(GamingSites, func(site string) bool {
		return strings.Contains(host, site)
	})
}

func hostname(pageURL string) string {
	u, err := url.Parse(strings.TrimSpace(pageURL))
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
