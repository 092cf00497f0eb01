// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/rf-checker/internal/logger"
	"github.com/atotto/clipboard"
)

const DefaultClipboardInterval = 500 * time.Millisecond

// ClipboardWatcher feeds new clipboard contents to a Selector, standing in
// for the page's mouse-up selection events.
type ClipboardWatcher struct {
	tickerJob

	selector Selector
	read     func() (string, error)

	mu   sync.Mutex
	last string

	logger *logger.Logger
}

// NewClipboardWatcher returns a watcher polling the system clipboard every
// interval. A non-positive interval means DefaultClipboardInterval.
func NewClipboardWatcher(selector Selector, interval time.Duration, log *logger.Logger) *ClipboardWatcher {
	return newClipboardWatcher(selector, clipboard.ReadAll, interval, log)
}

func newClipboardWatcher(selector Selector, read func() (string, error), interval time.Duration, log *logger.Logger) *ClipboardWatcher {
	if interval <= 0 {
		interval = DefaultClipboardInterval
	}

	w := &ClipboardWatcher{
		selector: selector,
		read:     read,
		logger:   log.WithComponent("clipboard"),
	}
	w.tickerJob = tickerJob{interval: interval, tick: w.poll}
	return w
}

// Supported reports whether the platform exposes a clipboard.
func Supported() bool {
	return !clipboard.Unsupported
}

// poll forwards the clipboard text when it differs from the last forwarded
// one. Blank contents are ignored.
func (w *ClipboardWatcher) poll(ctx context.Context) {
	text, err := w.read()
	if err != nil {
		w.logger.Debug().Err(err).Str("func", "ClipboardWatcher.poll").Msg("failed to read clipboard")
		return
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	w.mu.Lock()
	if text == w.last {
		w.mu.Unlock()
		return
	}
	w.last = text
	w.mu.Unlock()

	if err = w.selector.Select(ctx, text); err != nil {
		w.logger.Err(err).Str("func", "ClipboardWatcher.poll").Msg("failed to record selection")
		return
	}
	w.logger.Debug().Str("func", "ClipboardWatcher.poll").Int("length", len(text)).Msg("selection captured")
}
