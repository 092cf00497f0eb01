// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package popup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/rf-checker/internal/bridge"
	"github.com/MKhiriev/rf-checker/internal/classifier"
	"github.com/MKhiriev/rf-checker/internal/logger"
	"github.com/MKhiriev/rf-checker/internal/service"
	"github.com/MKhiriev/rf-checker/internal/store"
	"github.com/MKhiriev/rf-checker/models"
)

// State is what the popup renders when it opens.
type State struct {
	Credentials models.Credentials
	// LastCheck is nil until a check has been stored.
	LastCheck *models.LastCheck
	// Selection prefills the input box. It is empty when neither the store
	// nor the page has one.
	Selection string
	Tab       models.Tab
}

// Popup loads popup state and runs checks. Checks go through the
// coordinator; when none is reachable and a local Checker is set, the
// check runs in-process instead.
type Popup struct {
	credentials store.CredentialStore
	results     store.ResultStore
	sender      bridge.Sender
	local       service.Checker

	logger *logger.Logger
}

// New returns a Popup. local may be nil.
func New(credentials store.CredentialStore, results store.ResultStore, sender bridge.Sender, local service.Checker, log *logger.Logger) *Popup {
	return &Popup{
		credentials: credentials,
		results:     results,
		sender:      sender,
		local:       local,
		logger:      log.WithComponent("popup"),
	}
}

// Load reads the stores and, for a positive tabID, asks that page for its
// URL and selection. The stored selection wins over the page's one.
func (p *Popup) Load(ctx context.Context, tab models.Tab) (State, error) {
	creds, err := p.credentials.Get(ctx)
	if err != nil {
		return State{}, fmt.Errorf("%w: %w", service.ErrReadingCredentials, err)
	}

	state := State{Credentials: creds, Tab: tab}

	last, err := p.results.LastCheck(ctx)
	switch {
	case err == nil:
		state.LastCheck = &last
	case !errors.Is(err, store.ErrNotFound):
		p.logger.Err(err).Str("func", "Popup.Load").Msg("failed to read last check")
	}

	sel, err := p.results.Selection(ctx)
	switch {
	case err == nil:
		state.Selection = sel.Text
	case !errors.Is(err, store.ErrNotFound):
		p.logger.Err(err).Str("func", "Popup.Load").Msg("failed to read selection")
	}

	if tab.ID > 0 {
		if url, ok := p.ask(ctx, tab.ID, bridge.ActionGetPageURL); ok && url.URL != "" {
			state.Tab.URL = url.URL
		}
		if state.Selection == "" {
			if text, ok := p.ask(ctx, tab.ID, bridge.ActionGetSelectedText); ok {
				state.Selection = strings.TrimSpace(text.Text)
			}
		}
	}

	return state, nil
}

// ask queries a page. Any failure means the page has nothing to offer.
func (p *Popup) ask(ctx context.Context, tabID int, action bridge.Action) (bridge.Response, bool) {
	resp, err := p.sender.Send(ctx, bridge.Tab(tabID), bridge.Message{Action: action})
	if err != nil || !resp.Success {
		p.logger.Debug().Err(err).Str("func", "Popup.ask").Int("tab_id", tabID).Str("action", string(action)).Msg("page did not answer")
		return bridge.Response{}, false
	}
	return resp, true
}

// Check classifies the input box and runs the check. An empty input checks
// tabURL.
func (p *Popup) Check(ctx context.Context, input, tabURL string) (models.LastCheck, error) {
	req, err := classifier.ClassifyInput(input, tabURL)
	if err != nil {
		return models.LastCheck{}, err
	}
	return p.Submit(ctx, req)
}

// CheckPage checks tabURL with gameName as an optional hint.
func (p *Popup) CheckPage(ctx context.Context, tabURL, gameName string) (models.LastCheck, error) {
	tabURL = strings.TrimSpace(tabURL)
	if !classifier.IsURL(tabURL) {
		return models.LastCheck{}, classifier.ErrNoInput
	}
	return p.Submit(ctx, models.NewURLRequest([]string{tabURL}, strings.TrimSpace(gameName)))
}

// Submit sends req to the coordinator and returns the stored result.
func (p *Popup) Submit(ctx context.Context, req models.CheckRequest) (models.LastCheck, error) {
	msg, err := MessageFor(req)
	if err != nil {
		return models.LastCheck{}, err
	}

	resp, err := p.sender.Send(ctx, bridge.Coordinator, msg)
	if err != nil {
		if p.local == nil || !coordinatorUnavailable(err) {
			return models.LastCheck{}, err
		}
		p.logger.Debug().Err(err).Str("func", "Popup.Submit").Msg("coordinator unavailable, checking in-process")
		return p.local.Submit(ctx, req)
	}
	if !resp.Success {
		return models.LastCheck{}, errors.New(resp.Error)
	}

	return p.results.LastCheck(ctx)
}

// coordinatorUnavailable reports errors where the message never reached a
// coordinator. A request that was delivered and then failed is not retried
// here, the coordinator finishes it on its own.
func coordinatorUnavailable(err error) bool {
	return errors.Is(err, bridge.ErrNoReceiver) || errors.Is(err, bridge.ErrUnreachable)
}

// MessageFor converts a classified request into the coordinator message.
func MessageFor(req models.CheckRequest) (bridge.Message, error) {
	switch req.Kind {
	case models.KindURL:
		return bridge.Message{Action: bridge.ActionCheckURL, URLs: req.URLs, GameName: req.GameHint}, nil
	case models.KindGame:
		return bridge.Message{Action: bridge.ActionCheckGameOnly, GameName: req.GameName}, nil
	case models.KindText:
		return bridge.Message{Action: bridge.ActionCheckText, Text: req.Text}, nil
	default:
		return bridge.Message{}, fmt.Errorf("%w: %s", service.ErrUnknownRequestKind, req.Kind)
	}
}
