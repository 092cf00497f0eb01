// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/rf-checker/internal/logger"
	"github.com/MKhiriev/rf-checker/models"
)

const DefaultHealthInterval = time.Minute

// HealthStatus is the outcome of the latest probe.
type HealthStatus struct {
	Health    models.Health
	Err       error
	CheckedAt time.Time
}

// Up reports whether the latest probe succeeded with a healthy status.
func (s HealthStatus) Up() bool {
	return s.Err == nil && s.Health.Healthy()
}

// HealthPoller probes the API periodically and keeps the latest result.
// Status changes are logged.
type HealthPoller struct {
	tickerJob

	checker HealthChecker
	now     func() time.Time

	mu      sync.RWMutex
	status  HealthStatus
	checked bool

	logger *logger.Logger
}

// NewHealthPoller returns a poller probing every interval, starting right
// away. A non-positive interval means DefaultHealthInterval.
func NewHealthPoller(checker HealthChecker, interval time.Duration, log *logger.Logger) *HealthPoller {
	if interval <= 0 {
		interval = DefaultHealthInterval
	}

	p := &HealthPoller{
		checker: checker,
		now:     time.Now,
		logger:  log.WithComponent("health"),
	}
	p.tickerJob = tickerJob{interval: interval, immediate: true, tick: p.probe}
	return p
}

// Status returns the latest result; ok is false before the first probe.
func (p *HealthPoller) Status() (status HealthStatus, ok bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status, p.checked
}

// APIStatus reports the latest poll for the bridge health endpoint.
func (p *HealthPoller) APIStatus() (models.APIStatus, bool) {
	status, ok := p.Status()
	if !ok {
		return models.APIStatus{}, false
	}

	out := models.APIStatus{
		Up:        status.Up(),
		Status:    status.Health.Status,
		Version:   status.Health.Version,
		CheckedAt: status.CheckedAt,
	}
	if status.Err != nil {
		out.Error = status.Err.Error()
	}
	return out, true
}

func (p *HealthPoller) probe(ctx context.Context) {
	health, err := p.checker.Health(ctx)
	if ctx.Err() != nil {
		return
	}

	next := HealthStatus{Health: health, Err: err, CheckedAt: p.now().UTC()}

	p.mu.Lock()
	prev, had := p.status, p.checked
	p.status, p.checked = next, true
	p.mu.Unlock()

	if had && prev.Up() == next.Up() {
		return
	}

	if next.Up() {
		p.logger.Info().Str("func", "HealthPoller.probe").Str("status", health.Status).Str("version", health.Version).Msg("api is up")
		return
	}
	p.logger.Warn().Err(err).Str("func", "HealthPoller.probe").Str("status", health.Status).Msg("api is down")
}
