// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package page

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/rf-checker/internal/bridge"
	"github.com/MKhiriev/rf-checker/internal/logger"
	"github.com/MKhiriev/rf-checker/internal/store"
	"github.com/MKhiriev/rf-checker/models"
)

// Surface is the page surface of one tab. It is safe for concurrent use.
type Surface struct {
	mu        sync.RWMutex
	tab       models.Tab
	selection string

	results store.ResultStore
	sender  bridge.Sender
	now     func() time.Time

	logger *logger.Logger
}

// NewSurface returns the surface of tab. sender reaches the coordinator.
func NewSurface(tab models.Tab, results store.ResultStore, sender bridge.Sender, log *logger.Logger) *Surface {
	return &Surface{
		tab:     tab,
		results: results,
		sender:  sender,
		now:     time.Now,
		logger:  log.WithComponent("page"),
	}
}

// Attach registers the surface on bus under its tab endpoint.
func (s *Surface) Attach(bus *bridge.Bus) (detach func()) {
	return bus.Register(bridge.Tab(s.Tab().ID), s)
}

func (s *Surface) Tab() models.Tab {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tab
}

// Navigate moves the tab to pageURL and forgets the selection.
func (s *Surface) Navigate(pageURL string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tab.URL = strings.TrimSpace(pageURL)
	s.selection = ""
}

func (s *Surface) Selection() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection
}

// Select records what the user highlighted. A non-empty selection is
// mirrored into the result store; an empty one only clears the tracker.
func (s *Surface) Select(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)

	s.mu.Lock()
	s.selection = text
	s.mu.Unlock()

	if text == "" {
		return nil
	}

	snapshot := models.SelectionSnapshot{Text: text, CapturedAt: s.now().UTC()}
	if err := s.results.SaveSelection(ctx, snapshot); err != nil {
		return fmt.Errorf("save selection: %w", err)
	}
	return nil
}

// CanCheckSelection reports whether the "check selection" action is offered.
func (s *Surface) CanCheckSelection() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection != "" && IsGamingSite(s.tab.URL)
}

// CheckSelection stores the current selection and asks the coordinator to
// open the popup.
func (s *Surface) CheckSelection(ctx context.Context) error {
	s.mu.RLock()
	text, pageURL := s.selection, s.tab.URL
	s.mu.RUnlock()

	if text == "" {
		return ErrNoSelection
	}
	if !IsGamingSite(pageURL) {
		return ErrNotGamingSite
	}

	if err := s.results.SaveSelection(ctx, models.SelectionSnapshot{Text: text, CapturedAt: s.now().UTC()}); err != nil {
		return fmt.Errorf("save selection: %w", err)
	}

	resp, err := s.sender.Send(ctx, bridge.Coordinator, bridge.Message{Action: bridge.ActionOpenPopup})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCoordinatorGone, err)
	}
	if !resp.Success {
		return errors.New(resp.Error)
	}
	return nil
}

// Receive answers popup queries about this tab.
func (s *Surface) Receive(_ context.Context, msg bridge.Message) bridge.Response {
	switch msg.Action {
	case bridge.ActionGetSelectedText:
		return bridge.Response{Success: true, Text: s.Selection()}
	case bridge.ActionGetPageURL:
		return bridge.Response{Success: true, URL: s.Tab().URL}
	default:
		s.logger.Debug().Str("func", "Surface.Receive").Str("action", string(msg.Action)).Msg("unsupported action")
		return bridge.Failure(fmt.Errorf("%w: %q", bridge.ErrUnknownAction, msg.Action))
	}
}
