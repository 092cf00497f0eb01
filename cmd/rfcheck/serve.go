// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/rf-checker/internal/client"
	"github.com/MKhiriev/rf-checker/internal/page"
	"github.com/MKhiriev/rf-checker/models"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var (
		watch  bool
		tabURL string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the coordinator and its bridge",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd, modeServe)
			if err != nil {
				return err
			}
			defer s.Close()

			s.logger.Info().Str("address", s.cfg.Bridge.Address).Msg("starting coordinator")
			return s.app.Serve(cmd.Context(), client.ServeOptions{
				WatchClipboard: watch,
				Tab:            models.Tab{ID: client.DefaultTabID, URL: tabURL},
			})
		},
	}

	cmd.Flags().BoolVar(&watch, "watch-clipboard", false, "Feed a page surface from the clipboard")
	cmd.Flags().StringVar(&tabURL, "tab-url", "", "URL of the page the clipboard belongs to")

	return cmd
}

func newWatchCmd() *cobra.Command {
	var (
		tabID  int
		tabURL string
		check  bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Track the clipboard as the selection of a page",
		Long: "Track the clipboard as the selection of a page. With --check the selection\n" +
			"is sent to the coordinator when the page is a gaming site.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd, modeCLI)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx := cmd.Context()
			surface, err := s.app.Watch(ctx, models.Tab{ID: tabID, URL: tabURL})
			if err != nil {
				return err
			}
			pterm.Info.Printfln("Watching the clipboard for %s", valueOr(tabURL, "the current page"))

			if !check {
				<-ctx.Done()
				return nil
			}

			ticker := time.NewTicker(time.Second)
			defer ticker.Stop()

			var last string
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
				}

				sel := surface.Selection()
				if sel == "" || sel == last {
					continue
				}
				last = sel

				err = surface.CheckSelection(ctx)
				switch {
				case err == nil:
					pterm.Success.Println("Selection sent, open the popup to see the result")
				case errors.Is(err, page.ErrNotGamingSite):
					return fmt.Errorf("%s: %w", tabURL, err)
				default:
					pterm.Warning.Println(err)
				}
			}
		},
	}

	cmd.Flags().IntVar(&tabID, "tab-id", client.DefaultTabID, "Tab id of the watched page")
	cmd.Flags().StringVar(&tabURL, "tab-url", "", "URL of the watched page")
	cmd.Flags().BoolVar(&check, "check", false, "Send every new selection to the coordinator")

	return cmd
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
