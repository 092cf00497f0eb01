// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/rf-checker/internal/logger"
	"github.com/MKhiriev/rf-checker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter создаёт роутер поверх шины с nop-логгером
func newTestRouter(bus *Bus) http.Handler {
	return NewHandler(bus, []string{"chrome-extension://*"}, logger.Nop()).Init()
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	var resp Response
	if rr.Body.Len() > 0 {
		_ = json.Unmarshal(rr.Body.Bytes(), &resp)
	}
	return rr, resp
}

func TestRoutes_CoordinatorMessage(t *testing.T) {
	bus := NewBus()
	var got Message
	bus.Register(Coordinator, ReceiverFunc(func(_ context.Context, msg Message) Response {
		got = msg
		return OK()
	}))

	rr, resp := doRequest(t, newTestRouter(bus), http.MethodPost, PathMessage,
		`{"action":"checkUrl","url":"https://example.com","gameName":"Portal"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, ActionCheckURL, got.Action)
	assert.Equal(t, "https://example.com", got.URL)
	assert.Equal(t, "Portal", got.GameName)
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestRoutes_TabMessage(t *testing.T) {
	bus := NewBus()
	bus.Register(Tab(5), ReceiverFunc(func(_ context.Context, msg Message) Response {
		return Response{Success: true, Text: "Hades"}
	}))

	rr, resp := doRequest(t, newTestRouter(bus), http.MethodPost, "/bridge/tabs/5/message", `{"action":"getSelectedText"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Hades", resp.Text)
}

func TestRoutes_Errors(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantError  string
	}{
		{
			name:       "unknown tab",
			method:     http.MethodPost,
			path:       "/bridge/tabs/99/message",
			body:       `{"action":"getPageUrl"}`,
			wantStatus: http.StatusNotFound,
			wantError:  ErrNoReceiver.Error(),
		},
		{
			name:       "no coordinator",
			method:     http.MethodPost,
			path:       PathMessage,
			body:       `{"action":"checkText","text":"x"}`,
			wantStatus: http.StatusNotFound,
			wantError:  ErrNoReceiver.Error(),
		},
		{
			name:       "bad tab id",
			method:     http.MethodPost,
			path:       "/bridge/tabs/abc/message",
			body:       `{"action":"getPageUrl"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid json",
			method:     http.MethodPost,
			path:       PathMessage,
			body:       `{"action":`,
			wantStatus: http.StatusBadRequest,
			wantError:  ErrInvalidMessage.Error(),
		},
		{
			name:       "missing action",
			method:     http.MethodPost,
			path:       PathMessage,
			body:       `{"url":"https://example.com"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  ErrInvalidMessage.Error(),
		},
		{
			name:       "wrong method hides route",
			method:     http.MethodGet,
			path:       PathMessage,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, resp := doRequest(t, newTestRouter(NewBus()), tt.method, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.False(t, resp.Success)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, resp.Error)
			}
		})
	}
}

func TestRoutes_Health(t *testing.T) {
	bus := NewBus()
	bus.Register(Coordinator, ReceiverFunc(func(context.Context, Message) Response { return OK() }))
	bus.Register(Tab(1), ReceiverFunc(func(context.Context, Message) Response { return OK() }))

	req := httptest.NewRequest(http.MethodGet, PathHealth, nil)
	rr := httptest.NewRecorder()
	newTestRouter(bus).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var got HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, HealthResponse{Status: "ok", Coordinator: true, Tabs: 1}, got)
}

type fixedAPIStatus struct {
	status models.APIStatus
	ok     bool
}

func (f fixedAPIStatus) APIStatus() (models.APIStatus, bool) {
	return f.status, f.ok
}

func TestRoutes_HealthWithAPIStatus(t *testing.T) {
	checkedAt := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		reporter fixedAPIStatus
		want     *models.APIStatus
	}{
		{
			name:     "api up",
			reporter: fixedAPIStatus{status: models.APIStatus{Up: true, Status: "healthy", Version: "2.1", CheckedAt: checkedAt}, ok: true},
			want:     &models.APIStatus{Up: true, Status: "healthy", Version: "2.1", CheckedAt: checkedAt},
		},
		{
			name:     "api down",
			reporter: fixedAPIStatus{status: models.APIStatus{Error: "connection refused", CheckedAt: checkedAt}, ok: true},
			want:     &models.APIStatus{Error: "connection refused", CheckedAt: checkedAt},
		},
		{
			name:     "not polled yet",
			reporter: fixedAPIStatus{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewHandler(NewBus(), []string{"chrome-extension://*"}, logger.Nop()).WithAPIStatus(tt.reporter).Init()

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, PathHealth, nil))

			require.Equal(t, http.StatusOK, rr.Code)
			var got HealthResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got.API)
		})
	}
}

func TestRoutes_Tabs(t *testing.T) {
	bus := NewBus()
	bus.Register(Tab(4), ReceiverFunc(func(context.Context, Message) Response { return OK() }))

	req := httptest.NewRequest(http.MethodGet, PathTabs, nil)
	rr := httptest.NewRecorder()
	newTestRouter(bus).ServeHTTP(rr, req)

	assert.JSONEq(t, `[4]`, rr.Body.String())
}

func TestRoutes_CORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, PathMessage, nil)
	req.Header.Set("Origin", "chrome-extension://abcdef")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()

	newTestRouter(NewBus()).ServeHTTP(rr, req)

	assert.Equal(t, "chrome-extension://abcdef", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRoutes_CORSRejectsForeignOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, PathMessage, nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()

	newTestRouter(NewBus()).ServeHTTP(rr, req)

	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}
