// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/rf-checker/internal/client"
	"github.com/MKhiriev/rf-checker/internal/config"
	"github.com/MKhiriev/rf-checker/internal/logger"
	"github.com/MKhiriev/rf-checker/internal/notify"
	"github.com/MKhiriev/rf-checker/models"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rfcheck",
		Short:         "Check links, games and text for Russian-made content",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			// .env is optional
			_ = godotenv.Load()
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newVersionCmd(),
		newServeCmd(),
		newWatchCmd(),
		newPopupCmd(),
		newCheckCmd(),
		newLastCmd(),
		newSettingsCmd(),
		newAccountCmd("login", "Log in and store the API key"),
		newAccountCmd("register", "Create an account and store its API key"),
		newAccountCmd("regenerate-key", "Replace the stored API key"),
		newLogoutCmd(),
		newHealthCmd(),
		newDashboardCmd(),
	)

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, _ []string) {
			info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", info.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", info.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", info.BuildCommit())
		},
	}
}

// session is what every command needs: the merged config and a wired app.
type session struct {
	cfg    *config.ClientConfig
	app    *client.App
	logger *logger.Logger
}

func (s *session) Close() {
	if err := s.app.Close(); err != nil {
		s.logger.Err(err).Msg("close storages")
	}
}

type mode int

const (
	// modeServe logs to stdout.
	modeServe mode = iota
	// modeCLI logs to a file and prints notifications.
	modeCLI
	// modeTUI logs to a file; the popup renders results itself.
	modeTUI
)

// openSession loads the config and builds the app.
func openSession(cmd *cobra.Command, m mode) (*session, error) {
	cfg, err := config.GetClientConfig(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	role := "rfcheck-" + cmd.Name()
	log := logger.NewLogger(role)
	if m != modeServe {
		log = logger.NewClientLogger(role, cfg.App.LogFile)
	}

	var sink notify.Notifier
	if m != modeTUI {
		sink = notify.NewTerminalNotifier(os.Stdout)
	}

	app, err := client.NewApp(cmd.Context(), cfg, sink, log)
	if err != nil {
		return nil, fmt.Errorf("init app: %w", err)
	}

	return &session{cfg: cfg, app: app, logger: log}, nil
}
