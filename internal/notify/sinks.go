// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/MKhiriev/rf-checker/internal/logger"
	"github.com/MKhiriev/rf-checker/models"
	"github.com/pterm/pterm"
	"github.com/samber/lo"
)

// LogNotifier writes notifications as structured log entries.
type LogNotifier struct {
	logger *logger.Logger
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{logger: log.WithComponent("notifications")}
}

func (l *LogNotifier) Show(_ context.Context, n models.Notification) error {
	ev := l.logger.Info()
	if n.Kind == models.KindError {
		ev = l.logger.Warn()
	}
	if n.Detected != nil {
		ev = ev.Bool("detected", *n.Detected)
	}
	ev.Str("id", n.ID).
		Str("kind", string(n.Kind)).
		Str("title", n.Title).
		Bool("require_interaction", n.RequireInteraction).
		Msg(n.Message)
	return nil
}

func (l *LogNotifier) Clear(_ context.Context, id string) error {
	l.logger.Debug().Str("id", id).Msg("notification cleared")
	return nil
}

// TerminalNotifier prints notifications with pterm. A terminal cannot take
// lines back, so Clear is a no-op.
type TerminalNotifier struct {
	out io.Writer
}

// NewTerminalNotifier prints to w, or to pterm's default writer when w is nil.
func NewTerminalNotifier(w io.Writer) *TerminalNotifier {
	return &TerminalNotifier{out: w}
}

func (t *TerminalNotifier) Show(_ context.Context, n models.Notification) error {
	printer := t.printer(n)
	if t.out != nil {
		printer = *printer.WithWriter(t.out)
	}
	printer.Println(n.Title + ": " + n.Message)
	return nil
}

func (t *TerminalNotifier) printer(n models.Notification) pterm.PrefixPrinter {
	switch n.Kind {
	case models.KindError:
		return pterm.Error
	case models.KindResult:
		switch {
		case n.Detected == nil:
			return pterm.Info
		case *n.Detected:
			return pterm.Warning
		default:
			return pterm.Success
		}
	default:
		return pterm.Info
	}
}

func (t *TerminalNotifier) Clear(context.Context, string) error {
	return nil
}

// FanOut forwards to every sink and joins their errors.
type FanOut []Notifier

func (f FanOut) Show(ctx context.Context, n models.Notification) error {
	return errors.Join(lo.Map(f, func(s Notifier, _ int) error {
		return s.Show(ctx, n)
	})...)
}

func (f FanOut) Clear(ctx context.Context, id string) error {
	return errors.Join(lo.Map(f, func(s Notifier, _ int) error {
		return s.Clear(ctx, id)
	})...)
}

// Recorder keeps every call in memory so tests can assert on what the
// manager shows and clears.
type Recorder struct {
	mu      sync.Mutex
	shown   []models.Notification
	cleared []string
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Show(_ context.Context, n models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shown = append(r.shown, n)
	return nil
}

func (r *Recorder) Clear(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cleared = append(r.cleared, id)
	return nil
}

// Shown returns a copy of every shown notification in order.
func (r *Recorder) Shown() []models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Notification(nil), r.shown...)
}

// Cleared returns a copy of every cleared id in order.
func (r *Recorder) Cleared() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.cleared...)
}

// Last returns the most recently shown notification.
func (r *Recorder) Last() (models.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.shown) == 0 {
		return models.Notification{}, false
	}
	return r.shown[len(r.shown)-1], true
}
