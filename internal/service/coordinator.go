// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/rf-checker/internal/bridge"
	"github.com/MKhiriev/rf-checker/internal/classifier"
	"github.com/MKhiriev/rf-checker/internal/logger"
	"github.com/MKhiriev/rf-checker/internal/notify"
	"github.com/MKhiriev/rf-checker/internal/store"
	"github.com/MKhiriev/rf-checker/models"
)

// Coordinator is the coordinator's bridge receiver. It also handles the
// "check" context-menu entry.
type Coordinator struct {
	checker  Checker
	notifier notify.Lifecycle
	results  store.ResultStore
	now      func() time.Time

	logger *logger.Logger
}

func NewCoordinator(checker Checker, notifier notify.Lifecycle, results store.ResultStore, log *logger.Logger) *Coordinator {
	return &Coordinator{
		checker:  checker,
		notifier: notifier,
		results:  results,
		now:      time.Now,
		logger:   log.WithComponent("coordinator"),
	}
}

// Receive implements bridge.Receiver. Check actions are acknowledged once the
// check has finished. A check runs to completion even when the sender stops
// waiting for the answer.
func (c *Coordinator) Receive(ctx context.Context, msg bridge.Message) bridge.Response {
	ctx = context.WithoutCancel(ctx)
	log := c.logger.With().Str("action", string(msg.Action)).Logger()

	var err error
	switch msg.Action {
	case bridge.ActionCheckURL:
		urls := msg.URLs
		if msg.URL != "" {
			urls = append([]string{msg.URL}, urls...)
		}
		_, err = c.checker.CheckURLs(ctx, urls, msg.GameName)

	case bridge.ActionCheckGameOnly:
		_, err = c.checker.CheckGame(ctx, msg.GameName)

	case bridge.ActionCheckText:
		_, err = c.checker.CheckText(ctx, msg.Text)

	case bridge.ActionOpenPopup:
		c.notifier.Info(ctx, notify.OpenPopupHint)

	default:
		err = fmt.Errorf("%w: %q", bridge.ErrUnknownAction, msg.Action)
	}

	if err != nil {
		log.Debug().Err(err).Msg("message failed")
		return bridge.Failure(err)
	}
	return bridge.OK()
}

// HandleContextMenu checks what the user right-clicked. A non-empty selection
// is mirrored into the result store first. Like [Coordinator.Receive] it is
// not cancelled with ctx.
func (c *Coordinator) HandleContextMenu(ctx context.Context, ev models.ContextMenuEvent) (models.LastCheck, error) {
	ctx = context.WithoutCancel(ctx)
	if sel := strings.TrimSpace(ev.SelectionText); sel != "" {
		snapshot := models.SelectionSnapshot{Text: sel, CapturedAt: c.now().UTC()}
		if err := c.results.SaveSelection(ctx, snapshot); err != nil {
			c.logger.Err(err).Str("func", "Coordinator.HandleContextMenu").Msg("failed to store selection")
		}
	}

	req, err := classifier.ResolveLink(ev)
	if err != nil {
		c.notifier.Fail(ctx, err)
		return models.LastCheck{}, err
	}

	c.logger.Debug().
		Str("func", "Coordinator.HandleContextMenu").
		Int("tab_id", ev.TabID).
		Str("kind", req.Kind.String()).
		Msg("context menu resolved")

	return c.checker.Submit(ctx, req)
}
