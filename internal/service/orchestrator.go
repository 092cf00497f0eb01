// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/rf-checker/internal/adapter"
	"github.com/MKhiriev/rf-checker/internal/logger"
	"github.com/MKhiriev/rf-checker/internal/notify"
	"github.com/MKhiriev/rf-checker/internal/store"
	"github.com/MKhiriev/rf-checker/internal/validators"
	"github.com/MKhiriev/rf-checker/models"
)

type orchestrator struct {
	credentials store.CredentialStore
	results     store.ResultStore
	api         adapter.ContentAPI
	notifier    notify.Lifecycle
	validator   validators.Validator
	now         func() time.Time

	logger *logger.Logger
}

// NewOrchestrator returns the [Checker]. Checks are not serialised: two
// concurrent checks both reach the network while the notifier keeps a single
// checking notification.
func NewOrchestrator(
	credentials store.CredentialStore,
	results store.ResultStore,
	api adapter.ContentAPI,
	notifier notify.Lifecycle,
	validator validators.Validator,
	log *logger.Logger,
) Checker {
	return &orchestrator{
		credentials: credentials,
		results:     results,
		api:         api,
		notifier:    notifier,
		validator:   validator,
		now:         time.Now,
		logger:      log.WithComponent("orchestrator"),
	}
}

func (o *orchestrator) CheckURLs(ctx context.Context, urls []string, gameHint string) (models.LastCheck, error) {
	trimmed := make([]string, 0, len(urls))
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			trimmed = append(trimmed, u)
		}
	}
	return o.Submit(ctx, models.NewURLRequest(trimmed, strings.TrimSpace(gameHint)))
}

func (o *orchestrator) CheckGame(ctx context.Context, name string) (models.LastCheck, error) {
	return o.Submit(ctx, models.NewGameRequest(strings.TrimSpace(name)))
}

func (o *orchestrator) CheckText(ctx context.Context, text string) (models.LastCheck, error) {
	return o.Submit(ctx, models.NewTextRequest(text))
}

func (o *orchestrator) Submit(ctx context.Context, req models.CheckRequest) (models.LastCheck, error) {
	o.notifier.Checking(ctx, checkingMessage(req))

	check, err := o.run(ctx, req)
	if err != nil {
		o.logger.Warn().Err(err).
			Str("func", "orchestrator.Submit").
			Str("kind", req.Kind.String()).
			Msg("check failed")
		o.notifier.Fail(ctx, err)
		return models.LastCheck{}, err
	}

	o.notifier.Result(ctx, check.Result)
	return check, nil
}

func (o *orchestrator) run(ctx context.Context, req models.CheckRequest) (models.LastCheck, error) {
	if err := requireInput(req); err != nil {
		return models.LastCheck{}, err
	}

	creds, err := o.credentials.Get(ctx)
	if err != nil {
		return models.LastCheck{}, fmt.Errorf("%w: %w", ErrReadingCredentials, err)
	}
	if !creds.CanCheck() {
		return models.LastCheck{}, ErrAuthRequired
	}

	payload := req.Payload(creds.UserID)
	if err = o.validator.Validate(ctx, payload); err != nil {
		return models.LastCheck{}, err
	}

	resp, err := o.api.Check(ctx, creds.APIURL, creds.APIKey, payload)
	if err != nil {
		return models.LastCheck{}, err
	}

	analysis := ParseAnalysis(resp.Message)
	if !analysis.Known() {
		o.logger.Debug().Str("func", "orchestrator.run").Str("request_id", resp.RequestID).Msg("analysis is not JSON, verdict unknown")
	}

	check := models.NewLastCheck(req, resp, analysis, o.now())
	if err = o.results.SaveLastCheck(ctx, check); err != nil {
		o.logger.Err(err).Str("func", "orchestrator.run").Msg("failed to persist last check")
	}

	return check, nil
}

func requireInput(req models.CheckRequest) error {
	switch req.Kind {
	case models.KindURL:
		if len(req.URLs) == 0 {
			return ErrEmptyRequest
		}
	case models.KindGame:
		if strings.TrimSpace(req.GameName) == "" {
			return ErrEmptyRequest
		}
	case models.KindText:
		if strings.TrimSpace(req.Text) == "" {
			return ErrEmptyRequest
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownRequestKind, req.Kind)
	}
	return nil
}

func checkingMessage(req models.CheckRequest) string {
	switch req.Kind {
	case models.KindURL:
		if len(req.URLs) > 1 {
			return notify.CheckingURLs
		}
		return notify.CheckingPage
	case models.KindGame:
		return notify.CheckingGame
	case models.KindText:
		return notify.CheckingText
	default:
		return notify.CheckingPage
	}
}
