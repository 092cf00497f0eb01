// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package page

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/rf-checker/internal/bridge"
	"github.com/MKhiriev/rf-checker/internal/logger"
	"github.com/MKhiriev/rf-checker/internal/mock"
	"github.com/MKhiriev/rf-checker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var capturedAt = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

func newTestSurface(ctrl *gomock.Controller, pageURL string) (*Surface, *mock.MockResultStore, *mock.MockSender) {
	results := mock.NewMockResultStore(ctrl)
	sender := mock.NewMockSender(ctrl)
	s := NewSurface(models.Tab{ID: 3, URL: pageURL}, results, sender, logger.Nop())
	s.now = func() time.Time { return capturedAt }
	return s, results, sender
}

func TestIsGamingSite(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://store.steampowered.com/app/1091500/", true},
		{"https://somegame.itch.io/", true},
		{"https://WWW.GOG.COM/en/game/witcher", true},
		{"https://store.playstation.com/en-us/", true},
		{"https://example.com/store.steampowered.com", false},
		{"https://steampowered.com/", false},
		{"not a url", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, IsGamingSite(tt.url))
		})
	}
}

func TestSurface_Select(t *testing.T) {
	t.Run("mirrors non-empty selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s, results, _ := newTestSurface(ctrl, "https://example.com")
		ctx := context.Background()

		results.EXPECT().SaveSelection(ctx, models.SelectionSnapshot{Text: "Metro Exodus", CapturedAt: capturedAt}).Return(nil)

		require.NoError(t, s.Select(ctx, "  Metro Exodus\n"))
		assert.Equal(t, "Metro Exodus", s.Selection())
	})

	t.Run("empty selection is not mirrored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s, results, _ := newTestSurface(ctrl, "https://example.com")
		results.EXPECT().SaveSelection(gomock.Any(), gomock.Any()).Times(0)

		require.NoError(t, s.Select(context.Background(), "   "))
		assert.Empty(t, s.Selection())
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s, results, _ := newTestSurface(ctrl, "https://example.com")
		results.EXPECT().SaveSelection(gomock.Any(), gomock.Any()).Return(assert.AnError)

		err := s.Select(context.Background(), "text")
		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, "text", s.Selection())
	})
}

func TestSurface_CanCheckSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, results, _ := newTestSurface(ctrl, "https://store.steampowered.com/app/1")
	results.EXPECT().SaveSelection(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	ctx := context.Background()

	assert.False(t, s.CanCheckSelection())

	require.NoError(t, s.Select(ctx, "Half-Life"))
	assert.True(t, s.CanCheckSelection())

	s.Navigate("https://news.example.com")
	assert.False(t, s.CanCheckSelection())
	assert.Empty(t, s.Selection())
	assert.Equal(t, "https://news.example.com", s.Tab().URL)
}

func TestSurface_CheckSelection(t *testing.T) {
	t.Run("stores selection and opens popup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s, results, sender := newTestSurface(ctrl, "https://store.epicgames.com/p/game")
		ctx := context.Background()

		results.EXPECT().SaveSelection(ctx, gomock.Any()).Return(nil).Times(2)
		sender.EXPECT().Send(ctx, bridge.Coordinator, bridge.Message{Action: bridge.ActionOpenPopup}).Return(bridge.OK(), nil)

		require.NoError(t, s.Select(ctx, "Alan Wake"))
		require.NoError(t, s.CheckSelection(ctx))
	})

	t.Run("nothing selected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s, _, sender := newTestSurface(ctrl, "https://store.epicgames.com/p/game")
		sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		assert.ErrorIs(t, s.CheckSelection(context.Background()), ErrNoSelection)
	})

	t.Run("not a gaming site", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s, results, sender := newTestSurface(ctrl, "https://news.example.com")
		results.EXPECT().SaveSelection(gomock.Any(), gomock.Any()).Return(nil)
		sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		ctx := context.Background()

		require.NoError(t, s.Select(ctx, "Alan Wake"))
		assert.ErrorIs(t, s.CheckSelection(ctx), ErrNotGamingSite)
	})

	t.Run("coordinator not running", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s, results, sender := newTestSurface(ctrl, "https://itch.io/game")
		results.EXPECT().SaveSelection(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		sender.EXPECT().Send(gomock.Any(), bridge.Coordinator, gomock.Any()).Return(bridge.Response{}, bridge.ErrNoReceiver)
		ctx := context.Background()

		require.NoError(t, s.Select(ctx, "Celeste"))
		err := s.CheckSelection(ctx)
		assert.ErrorIs(t, err, ErrCoordinatorGone)
		assert.ErrorIs(t, err, bridge.ErrNoReceiver)
	})

	t.Run("coordinator refuses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s, results, sender := newTestSurface(ctrl, "https://itch.io/game")
		results.EXPECT().SaveSelection(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(bridge.Response{Error: "busy"}, nil)
		ctx := context.Background()

		require.NoError(t, s.Select(ctx, "Celeste"))
		assert.EqualError(t, s.CheckSelection(ctx), "busy")
	})
}

func TestSurface_ReceiveOverBus(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, results, _ := newTestSurface(ctrl, "https://www.gog.com/game/x")
	results.EXPECT().SaveSelection(gomock.Any(), gomock.Any()).Return(nil)
	ctx := context.Background()

	bus := bridge.NewBus()
	detach := s.Attach(bus)
	require.NoError(t, s.Select(ctx, "Cyberpunk 2077"))

	resp, err := bus.Send(ctx, bridge.Tab(3), bridge.Message{Action: bridge.ActionGetSelectedText})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Cyberpunk 2077", resp.Text)

	resp, err = bus.Send(ctx, bridge.Tab(3), bridge.Message{Action: bridge.ActionGetPageURL})
	require.NoError(t, err)
	assert.Equal(t, "https://www.gog.com/game/x", resp.URL)

	resp, err = bus.Send(ctx, bridge.Tab(3), bridge.Message{Action: bridge.ActionCheckText})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "unknown action")

	detach()
	_, err = bus.Send(ctx, bridge.Tab(3), bridge.Message{Action: bridge.ActionGetPageURL})
	assert.ErrorIs(t, err, bridge.ErrNoReceiver)
}
