// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// noTracesMarker is how the API phrases an empty trace list ("not detected").
const noTracesMarker = "не виявлено"

// DomainInfo is one entry of the urls_metadata list of a check response.
type DomainInfo struct {
	InputURL          string     `json:"input_url,omitempty"`
	Domain            string     `json:"domain"`
	IP                LooseText  `json:"ip,omitempty"`
	RegistrantCountry LooseText  `json:"registrant_country,omitempty"`
	Country           LooseText  `json:"country,omitempty"`
	Registrar         LooseText  `json:"registrar,omitempty"`
	CreationDate      LooseText  `json:"creation_date,omitempty"`
	RussianTraces     LooseTexts `json:"russian_traces,omitempty"`
}

// CountryName prefers the WHOIS registrant country over the geo-IP one.
func (d DomainInfo) CountryName() string {
	if d.RegistrantCountry != "" {
		return string(d.RegistrantCountry)
	}
	return string(d.Country)
}

// TracesFound reports whether the API listed Russian traces for the domain.
func (d DomainInfo) TracesFound() bool {
	if len(d.RussianTraces) == 0 {
		return false
	}
	return !strings.Contains(d.RussianTraces[0], noTracesMarker)
}

// SteamInfo is the steam_info object of a check response.
type SteamInfo struct {
	Name             string     `json:"name"`
	HeaderImage      string     `json:"header_image,omitempty"`
	Developers       LooseTexts `json:"developers,omitempty"`
	Publishers       LooseTexts `json:"publishers,omitempty"`
	ReleaseDate      LooseText  `json:"release_date,omitempty"`
	Price            LooseText  `json:"price,omitempty"`
	ShortDescription string     `json:"short_description,omitempty"`
}

// Domains decodes the stored urls_metadata. Entries without a domain and
// undecodable payloads are skipped.
func (l LastCheck) Domains() []DomainInfo {
	if isEmptyJSON(l.URLsMetadata) {
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(l.URLsMetadata, &raw); err != nil {
		return nil
	}

	domains := make([]DomainInfo, 0, len(raw))
	for _, item := range raw {
		var d DomainInfo
		if err := json.Unmarshal(item, &d); err != nil || d.Domain == "" {
			continue
		}
		domains = append(domains, d)
	}
	return domains
}

// Steam decodes the stored steam_info. ok is false when the API sent none.
func (l LastCheck) Steam() (SteamInfo, bool) {
	if isEmptyJSON(l.SteamInfo) {
		return SteamInfo{}, false
	}

	var info SteamInfo
	if err := json.Unmarshal(l.SteamInfo, &info); err != nil || info.Name == "" {
		return SteamInfo{}, false
	}
	return info, true
}

func isEmptyJSON(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// LooseText decodes a JSON string, number or boolean as text. A list keeps
// its first element; null and objects decode to "". WHOIS fields arrive in
// all of these shapes.
type LooseText string

func (t *LooseText) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*t = LooseText(textOf(v))
	return nil
}

// LooseTexts decodes a JSON list or a single scalar into a string list.
type LooseTexts []string

func (t *LooseTexts) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	items, ok := v.([]any)
	if !ok {
		items = []any{v}
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := textOf(item); s != "" {
			out = append(out, s)
		}
	}
	*t = out
	return nil
}

func textOf(v any) string {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		if x {
			return "true"
		}
		return "false"
	case []any:
		for _, item := range x {
			if s := textOf(item); s != "" {
				return s
			}
		}
	}
	return ""
}
