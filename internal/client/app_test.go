// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/rf-checker/internal/adapter"
	"github.com/MKhiriev/rf-checker/internal/bridge"
	"github.com/MKhiriev/rf-checker/internal/config"
	"github.com/MKhiriev/rf-checker/internal/logger"
	"github.com/MKhiriev/rf-checker/internal/notify"
	"github.com/MKhiriev/rf-checker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAPI отдаёт вердикт на /api/check и считает вызовы
func newTestAPI(t *testing.T, message string) (*httptest.Server, *atomic.Int64) {
	return newSlowTestAPI(t, message, 0)
}

// newSlowTestAPI отвечает на /api/check не раньше чем через delay
func newSlowTestAPI(t *testing.T, message string, delay time.Duration) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	calls := &atomic.Int64{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/check" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		calls.Add(1)
		time.Sleep(delay)
		if r.Header.Get(adapter.HeaderAPIKey) != "key-1" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"invalid key"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.CheckResponse{Message: message, RequestID: "req-9"})
	}))
	t.Cleanup(srv.Close)
	return srv, calls
}

func newTestApp(t *testing.T, apiURL string, opts ...func(*config.ClientConfig)) (*App, *notify.Recorder) {
	t.Helper()
	cfg := &config.ClientConfig{
		Adapter: config.ClientAdapter{BaseURL: apiURL, RequestTimeout: 5 * time.Second},
		Storage: config.ClientStorage{Ephemeral: true},
		Bridge:  config.ClientBridge{Address: "127.0.0.1:0", URL: "http://127.0.0.1:1"},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	rec := notify.NewRecorder()

	app, err := NewApp(context.Background(), cfg, rec, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app, rec
}

func post(t *testing.T, h http.Handler, path, body string) (int, bridge.Response) {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))

	var resp bridge.Response
	_ = json.Unmarshal(rr.Body.Bytes(), &resp)
	return rr.Code, resp
}

func TestApp_CheckThroughBridge(t *testing.T) {
	api, calls := newTestAPI(t, `{"is_russian_content": true, "text": "Publisher is in Moscow"}`)
	app, rec := newTestApp(t, api.URL)
	ctx := context.Background()

	require.NoError(t, app.Services().Auth.SaveSettings(ctx, "", "key-1"))
	require.NoError(t, app.storages.Credentials.SaveLogin(ctx, models.Credentials{APIKey: "key-1", UserID: "neo", Username: "neo"}))

	code, resp := post(t, app.Handler(), bridge.PathMessage, `{"action":"checkUrl","url":"https://store.steampowered.com/app/1"}`)

	assert.Equal(t, http.StatusOK, code)
	assert.True(t, resp.Success, resp.Error)
	assert.Equal(t, int64(1), calls.Load())

	last, err := app.Results().LastCheck(ctx)
	require.NoError(t, err)
	assert.True(t, last.Result.Detected())
	assert.Equal(t, "https://store.steampowered.com/app/1", last.URL)
	assert.Equal(t, "req-9", last.RequestID)

	n, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, notify.DetectedTitle, n.Title)
	assert.Equal(t, models.PhaseResult, app.Notifications().State().Phase)
}

func TestApp_MissingKeyNeverCallsAPI(t *testing.T) {
	api, calls := newTestAPI(t, `{}`)
	app, rec := newTestApp(t, api.URL)

	code, resp := post(t, app.Handler(), bridge.PathMessage, `{"action":"checkGameOnly","gameName":"Hades"}`)

	assert.Equal(t, http.StatusOK, code)
	assert.False(t, resp.Success)
	assert.Zero(t, calls.Load())

	n, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, notify.ErrorTitle, n.Title)
}

func TestApp_ContextMenuThroughBridge(t *testing.T) {
	api, calls := newTestAPI(t, "plain text answer")
	app, _ := newTestApp(t, api.URL)
	ctx := context.Background()
	require.NoError(t, app.storages.Credentials.SaveLogin(ctx, models.Credentials{APIKey: "key-1", UserID: "neo", Username: "neo"}))

	code, resp := post(t, app.Handler(), bridge.PathContextMenu, `{"tabId":3,"selectionText":"the weather is lovely today and tomorrow too"}`)

	assert.Equal(t, http.StatusOK, code)
	assert.True(t, resp.Success, resp.Error)
	assert.Equal(t, int64(1), calls.Load())

	sel, err := app.Results().Selection(ctx)
	require.NoError(t, err)
	assert.Equal(t, "the weather is lovely today and tomorrow too", sel.Text)

	last, err := app.Results().LastCheck(ctx)
	require.NoError(t, err)
	assert.False(t, last.Result.Known())
}

func TestApp_PopupFallsBackInProcess(t *testing.T) {
	api, calls := newTestAPI(t, `{"is_russian_content": false, "text": "clean"}`)
	app, _ := newTestApp(t, api.URL)
	ctx := context.Background()
	require.NoError(t, app.storages.Credentials.SaveLogin(ctx, models.Credentials{APIKey: "key-1", UserID: "neo", Username: "neo"}))

	// координатор не запущен: bridge URL указывает на закрытый порт
	got, err := app.Popup().Check(ctx, "Call of Duty: Warfare 2", "")

	require.NoError(t, err)
	assert.Equal(t, "Call of Duty: Warfare 2", got.GameName)
	assert.Equal(t, "clean", got.Result.Text)
	assert.Equal(t, int64(1), calls.Load())
}

func TestApp_CoordinatorFinishesCheckAfterPopupGivesUp(t *testing.T) {
	api, calls := newSlowTestAPI(t, `{"is_russian_content": false, "text": "clean"}`, 400*time.Millisecond)
	ctx := context.Background()

	coordinator, rec := newTestApp(t, api.URL)
	require.NoError(t, coordinator.storages.Credentials.SaveLogin(ctx, models.Credentials{APIKey: "key-1", UserID: "neo", Username: "neo"}))
	bridgeSrv := httptest.NewServer(coordinator.Handler())
	t.Cleanup(bridgeSrv.Close)

	popupApp, _ := newTestApp(t, api.URL, func(cfg *config.ClientConfig) {
		cfg.Bridge.URL = bridgeSrv.URL
		cfg.Bridge.SendTimeout = 150 * time.Millisecond
	})

	// попап не дождался ответа координатора
	_, err := popupApp.Popup().Check(ctx, "Call of Duty: Warfare 2", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, bridge.ErrTransportFailure)
	assert.NotErrorIs(t, err, bridge.ErrUnreachable)

	// проверка в координаторе доходит до конца, повторного запроса нет
	require.Eventually(t, func() bool {
		return coordinator.Notifications().State().Phase == models.PhaseResult
	}, 3*time.Second, 20*time.Millisecond)
	assert.Equal(t, int64(1), calls.Load())

	n, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, notify.SafeTitle, n.Title)

	last, err := coordinator.Results().LastCheck(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Call of Duty: Warfare 2", last.GameName)
}

func TestApp_ServeUntilCancelled(t *testing.T) {
	app, _ := newTestApp(t, "http://127.0.0.1:1")
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- app.Serve(ctx, ServeOptions{}) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("serve did not stop")
	}
}

func TestApp_HealthReportsAPIStatus(t *testing.T) {
	app, _ := newTestApp(t, "http://127.0.0.1:1")
	h := app.Handler()

	health := func() bridge.HealthResponse {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/bridge/health", nil))
		require.Equal(t, http.StatusOK, rr.Code)

		var resp bridge.HealthResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		return resp
	}

	// до первого опроса API в ответе нет
	first := health()
	assert.True(t, first.Coordinator)
	assert.Nil(t, first.API)

	ctx, cancel := context.WithCancel(context.Background())
	app.health.Start(ctx)
	t.Cleanup(func() {
		cancel()
		app.health.Stop()
	})

	require.Eventually(t, func() bool { return health().API != nil }, 3*time.Second, 20*time.Millisecond)
	api := health().API
	assert.False(t, api.Up)
	assert.NotEmpty(t, api.Error)
}

func TestRoutedSender(t *testing.T) {
	bus := bridge.NewBus()
	bus.Register(bridge.Tab(2), bridge.ReceiverFunc(func(context.Context, bridge.Message) bridge.Response {
		return bridge.Response{Success: true, Text: "local"}
	}))

	remoteCalls := 0
	remote := senderFunc(func(context.Context, bridge.Endpoint, bridge.Message) (bridge.Response, error) {
		remoteCalls++
		return bridge.Response{Success: true, Text: "remote"}, nil
	})
	s := routedSender{bus: bus, remote: remote}

	resp, err := s.Send(context.Background(), bridge.Tab(2), bridge.Message{Action: bridge.ActionGetSelectedText})
	require.NoError(t, err)
	assert.Equal(t, "local", resp.Text)

	resp, err = s.Send(context.Background(), bridge.Coordinator, bridge.Message{Action: bridge.ActionOpenPopup})
	require.NoError(t, err)
	assert.Equal(t, "remote", resp.Text)
	assert.Equal(t, 1, remoteCalls)

	_, err = routedSender{bus: bus}.Send(context.Background(), bridge.Tab(9), bridge.Message{})
	assert.ErrorIs(t, err, bridge.ErrNoReceiver)
}

type senderFunc func(ctx context.Context, to bridge.Endpoint, msg bridge.Message) (bridge.Response, error)

func (f senderFunc) Send(ctx context.Context, to bridge.Endpoint, msg bridge.Message) (bridge.Response, error) {
	return f(ctx, to, msg)
}
