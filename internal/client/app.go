// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/rf-checker/internal/adapter"
	"github.com/MKhiriev/rf-checker/internal/bridge"
	"github.com/MKhiriev/rf-checker/internal/config"
	"github.com/MKhiriev/rf-checker/internal/logger"
	"github.com/MKhiriev/rf-checker/internal/notify"
	"github.com/MKhiriev/rf-checker/internal/page"
	"github.com/MKhiriev/rf-checker/internal/popup"
	"github.com/MKhiriev/rf-checker/internal/server"
	"github.com/MKhiriev/rf-checker/internal/service"
	"github.com/MKhiriev/rf-checker/internal/store"
	"github.com/MKhiriev/rf-checker/internal/tui"
	"github.com/MKhiriev/rf-checker/internal/workers"
	"github.com/MKhiriev/rf-checker/models"
)

type App struct {
	cfg      *config.ClientConfig
	storages *store.Storages
	notifier *notify.Manager
	services *service.Services
	bus      *bridge.Bus
	sender   bridge.Sender
	health   *workers.HealthPoller

	logger *logger.Logger
}

// NewApp opens the stores and builds the services. Notifications go to sink
// and to the log.
func NewApp(ctx context.Context, cfg *config.ClientConfig, sink notify.Notifier, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	sinks := notify.FanOut{notify.NewLogNotifier(log)}
	if sink != nil {
		sinks = append(sinks, sink)
	}
	manager := notify.NewManager(sinks, log)

	api := adapter.NewHTTPContentAPI(cfg.Adapter, log)
	bus := bridge.NewBus()
	services := service.NewServices(storages, api, manager, log)

	return &App{
		cfg:      cfg,
		storages: storages,
		notifier: manager,
		services: services,
		bus:      bus,
		health:   workers.NewHealthPoller(services.Auth, cfg.Workers.HealthInterval, log),
		sender: routedSender{
			bus:    bus,
			remote: bridge.NewHTTPSender(cfg.Bridge.URL, cfg.Bridge.SendTimeout, log),
		},
		logger: log,
	}, nil
}

func (a *App) Close() error {
	return a.storages.Close()
}

func (a *App) Services() *service.Services {
	return a.services
}

func (a *App) Results() store.ResultStore {
	return a.storages.Results
}

func (a *App) Notifications() *notify.Manager {
	return a.notifier
}

// Popup returns the popup controller. Checks go to the coordinator and run
// in this process when it is not reachable.
func (a *App) Popup() *popup.Popup {
	return popup.New(a.storages.Credentials, a.storages.Results, a.sender, a.services.Checker, a.logger)
}

// RunPopup opens the terminal popup over tab.
func (a *App) RunPopup(ctx context.Context, tab models.Tab) error {
	return tui.New(a.Popup(), a.services.Auth, a.logger).Run(ctx, tab)
}

// ServeOptions tunes the coordinator mode.
type ServeOptions struct {
	// WatchClipboard attaches a page surface for Tab fed by the clipboard.
	WatchClipboard bool
	Tab            models.Tab
}

// Handler returns the bridge router of the coordinator and registers the
// coordinator on the bus. /bridge/health reports the last API poll once
// Serve has run one.
func (a *App) Handler() http.Handler {
	a.bus.Register(bridge.Coordinator, a.services.Coordinator)

	return bridge.NewHandler(a.bus, a.cfg.Bridge.AllowedOrigins, a.logger).
		WithContextMenu(a.services.Coordinator).
		WithAPIStatus(a.health).
		Init()
}

// Serve runs the coordinator until ctx is cancelled.
func (a *App) Serve(ctx context.Context, opts ServeOptions) error {
	handler := a.Handler()

	srv, err := server.NewServer(handler, a.cfg.Bridge, a.logger)
	if err != nil {
		return err
	}

	jobs := []workers.Worker{a.health}
	if opts.WatchClipboard {
		surface := a.attachSurface(opts.Tab)
		jobs = append(jobs, workers.NewClipboardWatcher(surface, a.cfg.Workers.ClipboardInterval, a.logger))
	}

	ws := workers.NewWorkers(jobs...)
	ws.Start(ctx)
	defer ws.Stop()

	return srv.Run(ctx)
}

// Watch starts a page surface for tab fed by the clipboard and returns it.
// The watcher stops when ctx is cancelled. The surface reaches the
// coordinator over HTTP.
func (a *App) Watch(ctx context.Context, tab models.Tab) (*page.Surface, error) {
	if !workers.Supported() {
		return nil, ErrClipboardUnsupported
	}

	surface := a.attachSurface(tab)
	watcher := workers.NewClipboardWatcher(surface, a.cfg.Workers.ClipboardInterval, a.logger)
	watcher.Start(ctx)

	go func() {
		<-ctx.Done()
		watcher.Stop()
	}()

	return surface, nil
}

func (a *App) attachSurface(tab models.Tab) *page.Surface {
	if tab.ID <= 0 {
		tab.ID = DefaultTabID
	}
	surface := page.NewSurface(tab, a.storages.Results, a.sender, a.logger)
	surface.Attach(a.bus)
	return surface
}
