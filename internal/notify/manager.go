// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/rf-checker/internal/logger"
	"github.com/MKhiriev/rf-checker/internal/utils"
	"github.com/MKhiriev/rf-checker/models"
)

// Manager owns the notification slots. It is safe for concurrent use; the
// visible set never holds more than one notification per id.
type Manager struct {
	mu      sync.Mutex
	sink    Notifier
	visible map[string]models.Notification
	state   models.NotificationState
	ids     *utils.UUIDGenerator
	now     func() time.Time
	logger  *logger.Logger
}

// NewManager returns a Manager in the idle phase rendering through sink.
func NewManager(sink Notifier, log *logger.Logger) *Manager {
	return &Manager{
		sink:    sink,
		visible: make(map[string]models.Notification),
		ids:     utils.NewUUIDGenerator(),
		now:     time.Now,
		logger:  log.WithComponent("notify"),
	}
}

// Create shows n, replacing whatever is visible under the same id.
func (m *Manager) Create(ctx context.Context, n models.Notification) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.create(ctx, n)
}

// Clear removes the notification with id if it is visible.
func (m *Manager) Clear(ctx context.Context, id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clear(ctx, id)
}

// Checking starts a new cycle. The previous cycle's result or error is
// retired and a single checking notification carrying message is shown.
func (m *Manager) Checking(ctx context.Context, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clear(ctx, models.NotificationResult)
	m.clear(ctx, models.NotificationError)
	m.create(ctx, models.Notification{
		ID:      models.NotificationChecking,
		Kind:    models.KindChecking,
		Title:   AppTitle,
		Message: message,
	})
	m.state = models.NotificationState{Phase: models.PhaseChecking, ID: models.NotificationChecking}
}

// Result ends the cycle with the verdict in analysis.
func (m *Manager) Result(ctx context.Context, analysis models.Analysis) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clear(ctx, models.NotificationChecking)

	title := UnknownTitle
	if analysis.Known() {
		title = SafeTitle
		if analysis.Detected() {
			title = DetectedTitle
		}
	}

	m.create(ctx, models.Notification{
		ID:                 models.NotificationResult,
		Kind:               models.KindResult,
		Title:              title,
		Message:            truncate(analysis.Text),
		RequireInteraction: true,
		Detected:           analysis.IsRussianContent,
	})
	m.state = models.NotificationState{Phase: models.PhaseResult, ID: models.NotificationResult}
}

// Fail ends the cycle with err's message, or GenericFailure when err has none.
func (m *Manager) Fail(ctx context.Context, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clear(ctx, models.NotificationChecking)

	msg := GenericFailure
	if err != nil && strings.TrimSpace(err.Error()) != "" {
		msg = err.Error()
	}

	m.create(ctx, models.Notification{
		ID:                 models.NotificationError,
		Kind:               models.KindError,
		Title:              ErrorTitle,
		Message:            msg,
		RequireInteraction: true,
	})
	m.state = models.NotificationState{Phase: models.PhaseError, ID: models.NotificationError}
}

// Info shows a one-off hint under a fresh id and returns that id. It does
// not change the phase.
func (m *Manager) Info(ctx context.Context, message string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.ids.Generate()
	m.create(ctx, models.Notification{
		ID:      id,
		Kind:    models.KindInfo,
		Title:   AppTitle,
		Message: message,
	})
	return id
}

// State returns the current phase.
func (m *Manager) State() models.NotificationState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Visible returns the notifications currently on screen ordered by id.
func (m *Manager) Visible() []models.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Notification, 0, len(m.visible))
	for _, n := range m.visible {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *Manager) create(ctx context.Context, n models.Notification) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = m.now()
	}
	m.visible[n.ID] = n

	if err := m.sink.Show(ctx, n); err != nil {
		m.logger.Err(err).Str("func", "Manager.create").Str("id", n.ID).Msg("failed to show notification")
	}
}

func (m *Manager) clear(ctx context.Context, id string) {
	if _, ok := m.visible[id]; !ok {
		return
	}
	delete(m.visible, id)

	if err := m.sink.Clear(ctx, id); err != nil {
		m.logger.Err(err).Str("func", "Manager.clear").Str("id", id).Msg("failed to clear notification")
	}
}
