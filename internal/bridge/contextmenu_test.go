// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/rf-checker/internal/logger"
	"github.com/MKhiriev/rf-checker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMenu struct {
	got   models.ContextMenuEvent
	check models.LastCheck
	err   error
}

func (f *fakeMenu) HandleContextMenu(_ context.Context, ev models.ContextMenuEvent) (models.LastCheck, error) {
	f.got = ev
	return f.check, f.err
}

func postContextMenu(t *testing.T, h http.Handler, body string) (*httptest.ResponseRecorder, ContextMenuResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, PathContextMenu, strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	var resp ContextMenuResponse
	if rr.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	}
	return rr, resp
}

func TestRoutes_ContextMenu(t *testing.T) {
	t.Run("check result returned", func(t *testing.T) {
		menu := &fakeMenu{check: models.LastCheck{URL: "https://store.example/app/1", GameName: "Hint"}}
		h := NewHandler(NewBus(), nil, logger.Nop()).WithContextMenu(menu).Init()

		rr, resp := postContextMenu(t, h, `{"tabId":4,"linkUrl":"https://store.example/app/1","selectionText":"Hint"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, resp.Success)
		require.NotNil(t, resp.Check)
		assert.Equal(t, "https://store.example/app/1", resp.Check.URL)
		assert.Equal(t, 4, menu.got.TabID)
		assert.Equal(t, "Hint", menu.got.SelectionText)
	})

	t.Run("failure reported in body", func(t *testing.T) {
		menu := &fakeMenu{err: errors.New("nothing to check")}
		h := NewHandler(NewBus(), nil, logger.Nop()).WithContextMenu(menu).Init()

		rr, resp := postContextMenu(t, h, `{}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.False(t, resp.Success)
		assert.Equal(t, "nothing to check", resp.Error)
		assert.Nil(t, resp.Check)
	})

	t.Run("invalid json", func(t *testing.T) {
		h := NewHandler(NewBus(), nil, logger.Nop()).WithContextMenu(&fakeMenu{}).Init()

		rr, _ := postContextMenu(t, h, `{`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("not mounted without handler", func(t *testing.T) {
		h := NewHandler(NewBus(), nil, logger.Nop()).Init()

		rr, _ := postContextMenu(t, h, `{}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
