// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastCheck_Domains(t *testing.T) {
	t.Run("whois shapes", func(t *testing.T) {
		lc := LastCheck{URLsMetadata: json.RawMessage(`[
			{"input_url": "https://game.ru/buy", "domain": "game.ru", "ip": "95.213.1.1",
			 "registrant_country": null, "country": "Russia", "registrar": ["RU-CENTER-RU", "RUCENTER"],
			 "creation_date": ["2004-03-01 00:00:00", "2004-03-02 00:00:00"],
			 "russian_traces": ["ccTLD .ru", "registrar RU-CENTER"]},
			{"domain": "store.steampowered.com", "registrant_country": "US", "country": "Sweden",
			 "russian_traces": ["не виявлено"], "creation_date": 2003},
			{"ip": "1.1.1.1"},
			"garbage"
		]`)}

		got := lc.Domains()
		require.Len(t, got, 2)

		assert.Equal(t, "game.ru", got[0].Domain)
		assert.Equal(t, "Russia", got[0].CountryName())
		assert.Equal(t, LooseText("RU-CENTER-RU"), got[0].Registrar)
		assert.Equal(t, LooseText("2004-03-01 00:00:00"), got[0].CreationDate)
		assert.True(t, got[0].TracesFound())

		assert.Equal(t, "US", got[1].CountryName())
		assert.Equal(t, LooseText("2003"), got[1].CreationDate)
		assert.False(t, got[1].TracesFound())
	})

	t.Run("nothing stored", func(t *testing.T) {
		assert.Nil(t, LastCheck{}.Domains())
		assert.Nil(t, LastCheck{URLsMetadata: json.RawMessage(`null`)}.Domains())
		assert.Nil(t, LastCheck{URLsMetadata: json.RawMessage(`{"domain":"x"}`)}.Domains())
	})
}

func TestLastCheck_Steam(t *testing.T) {
	t.Run("full info", func(t *testing.T) {
		lc := LastCheck{SteamInfo: json.RawMessage(`{
			"name": "Atomic Heart", "developers": ["Mundfish"], "publishers": "Focus Entertainment",
			"release_date": "21 Feb, 2023", "price": 59.99, "short_description": "Shooter"
		}`)}

		info, ok := lc.Steam()
		require.True(t, ok)
		assert.Equal(t, "Atomic Heart", info.Name)
		assert.Equal(t, LooseTexts{"Mundfish"}, info.Developers)
		assert.Equal(t, LooseTexts{"Focus Entertainment"}, info.Publishers)
		assert.Equal(t, LooseText("59.99"), info.Price)
	})

	t.Run("price object is dropped", func(t *testing.T) {
		info, ok := LastCheck{SteamInfo: json.RawMessage(`{"name":"Doom","price":{"final":1999}}`)}.Steam()
		require.True(t, ok)
		assert.Empty(t, info.Price)
	})

	for _, raw := range []string{``, `null`, `{}`, `[1,2]`} {
		_, ok := LastCheck{SteamInfo: json.RawMessage(raw)}.Steam()
		assert.False(t, ok, raw)
	}
}
