// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/rf-checker/internal/logger"
	"github.com/MKhiriev/rf-checker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func newTestManager() (*Manager, *Recorder) {
	rec := NewRecorder()
	return NewManager(rec, logger.Nop()), rec
}

func countKind(ns []models.Notification, kind models.NotificationKind) int {
	n := 0
	for _, it := range ns {
		if it.Kind == kind {
			n++
		}
	}
	return n
}

func TestManager_StartsIdle(t *testing.T) {
	m, _ := newTestManager()
	assert.Equal(t, models.PhaseIdle, m.State().Phase)
	assert.Empty(t, m.Visible())
}

func TestManager_Checking(t *testing.T) {
	m, rec := newTestManager()
	ctx := context.Background()

	m.Checking(ctx, CheckingPage)

	assert.Equal(t, models.NotificationState{Phase: models.PhaseChecking, ID: models.NotificationChecking}, m.State())
	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, models.NotificationChecking, last.ID)
	assert.Equal(t, CheckingPage, last.Message)
	assert.False(t, last.RequireInteraction)
	assert.False(t, last.CreatedAt.IsZero())
}

func TestManager_SingleVisibleChecking(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	m.Checking(ctx, "first")
	m.Checking(ctx, "second")

	visible := m.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "second", visible[0].Message)
}

func TestManager_SingleVisibleChecking_Concurrent(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Checking(ctx, CheckingURLs)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, countKind(m.Visible(), models.KindChecking))
}

func TestManager_Result(t *testing.T) {
	tests := []struct {
		name     string
		analysis models.Analysis
		title    string
	}{
		{name: "detected", analysis: models.Analysis{IsRussianContent: boolPtr(true), Text: "found"}, title: DetectedTitle},
		{name: "safe", analysis: models.Analysis{IsRussianContent: boolPtr(false), Text: "clean"}, title: SafeTitle},
		{name: "unknown", analysis: models.Analysis{Text: "raw text"}, title: UnknownTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, rec := newTestManager()
			ctx := context.Background()

			m.Checking(ctx, CheckingPage)
			m.Result(ctx, tt.analysis)

			assert.Equal(t, models.NotificationState{Phase: models.PhaseResult, ID: models.NotificationResult}, m.State())
			assert.Contains(t, rec.Cleared(), models.NotificationChecking)

			visible := m.Visible()
			require.Len(t, visible, 1)
			assert.Equal(t, tt.title, visible[0].Title)
			assert.Equal(t, tt.analysis.Text, visible[0].Message)
			assert.True(t, visible[0].RequireInteraction)
			assert.Equal(t, tt.analysis.IsRussianContent, visible[0].Detected)
		})
	}
}

func TestManager_ResultTruncatesLongText(t *testing.T) {
	m, _ := newTestManager()
	long := strings.Repeat("я", 250)

	m.Result(context.Background(), models.Analysis{Text: long})

	msg := m.Visible()[0].Message
	assert.Equal(t, strings.Repeat("я", 200)+"...", msg)
}

func TestManager_ResultKeepsShortText(t *testing.T) {
	m, _ := newTestManager()
	text := strings.Repeat("a", 200)

	m.Result(context.Background(), models.Analysis{Text: text})

	assert.Equal(t, text, m.Visible()[0].Message)
}

func TestManager_Fail(t *testing.T) {
	m, rec := newTestManager()
	ctx := context.Background()

	m.Checking(ctx, CheckingPage)
	m.Fail(ctx, errors.New("invalid key"))

	assert.Equal(t, models.PhaseError, m.State().Phase)
	assert.Contains(t, rec.Cleared(), models.NotificationChecking)

	visible := m.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, ErrorTitle, visible[0].Title)
	assert.Equal(t, "invalid key", visible[0].Message)
	assert.True(t, visible[0].RequireInteraction)
}

func TestManager_FailWithoutMessage(t *testing.T) {
	m, _ := newTestManager()

	m.Fail(context.Background(), nil)
	assert.Equal(t, GenericFailure, m.Visible()[0].Message)

	m.Fail(context.Background(), errors.New(" "))
	assert.Equal(t, GenericFailure, m.Visible()[0].Message)
}

func TestManager_NextCycleRetiresPreviousVerdict(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	m.Fail(ctx, errors.New("boom"))
	m.Result(ctx, models.Analysis{Text: "x"})
	require.Len(t, m.Visible(), 2)

	m.Checking(ctx, CheckingGame)

	visible := m.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, models.NotificationChecking, visible[0].ID)
}

func TestManager_InfoKeepsPhase(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	m.Checking(ctx, CheckingPage)
	id1 := m.Info(ctx, OpenPopupHint)
	id2 := m.Info(ctx, OpenPopupHint)

	assert.NotEqual(t, id1, id2)
	assert.Equal(t, models.PhaseChecking, m.State().Phase)
	assert.Equal(t, 2, countKind(m.Visible(), models.KindInfo))
}

func TestManager_ClearUnknownIDIsNoop(t *testing.T) {
	m, rec := newTestManager()

	m.Clear(context.Background(), "missing")

	assert.Empty(t, rec.Cleared())
}

type failingNotifier struct{}

func (failingNotifier) Show(context.Context, models.Notification) error {
	return errors.New("no display")
}

func (failingNotifier) Clear(context.Context, string) error {
	return errors.New("no display")
}

func TestManager_SinkFailureDoesNotChangeState(t *testing.T) {
	m := NewManager(failingNotifier{}, logger.Nop())
	ctx := context.Background()

	m.Checking(ctx, CheckingPage)
	m.Result(ctx, models.Analysis{IsRussianContent: boolPtr(false)})

	assert.Equal(t, models.PhaseResult, m.State().Phase)
	assert.Len(t, m.Visible(), 1)
}

func TestFanOut(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	f := FanOut{a, b}
	ctx := context.Background()

	require.NoError(t, f.Show(ctx, models.Notification{ID: "x"}))
	require.NoError(t, f.Clear(ctx, "x"))

	assert.Len(t, a.Shown(), 1)
	assert.Len(t, b.Shown(), 1)
	assert.Equal(t, []string{"x"}, b.Cleared())
}

func TestFanOut_JoinsErrors(t *testing.T) {
	rec := NewRecorder()
	f := FanOut{failingNotifier{}, rec}

	err := f.Show(context.Background(), models.Notification{ID: "x"})

	assert.EqualError(t, err, "no display")
	assert.Len(t, rec.Shown(), 1)
}

func TestTerminalNotifier_WritesTitleAndMessage(t *testing.T) {
	var buf bytes.Buffer
	n := NewTerminalNotifier(&buf)

	require.NoError(t, n.Show(context.Background(), models.Notification{
		Kind:     models.KindResult,
		Title:    SafeTitle,
		Message:  "nothing found",
		Detected: boolPtr(false),
	}))

	assert.Contains(t, buf.String(), "nothing found")
}

func TestLogNotifier_NeverFails(t *testing.T) {
	n := NewLogNotifier(logger.Nop())
	ctx := context.Background()

	assert.NoError(t, n.Show(ctx, models.Notification{ID: "x", Kind: models.KindError, Detected: boolPtr(true)}))
	assert.NoError(t, n.Clear(ctx, "x"))
}
