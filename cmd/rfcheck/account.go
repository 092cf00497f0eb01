// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"

	"github.com/MKhiriev/rf-checker/internal/service"
	"github.com/MKhiriev/rf-checker/models"
	"github.com/pkg/browser"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newSettingsCmd() *cobra.Command {
	var apiURL, apiKey string

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the API URL and key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd, modeCLI)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx := cmd.Context()
			auth := s.app.Services().Auth

			if cmd.Flags().Changed("api-key") || cmd.Flags().Changed("url") {
				current, err := auth.Credentials(ctx)
				if err != nil {
					return err
				}
				if !cmd.Flags().Changed("url") {
					apiURL = current.APIURL
				}
				if !cmd.Flags().Changed("api-key") {
					apiKey = current.APIKey
				}
				if err = auth.SaveSettings(ctx, apiURL, apiKey); err != nil {
					return err
				}
				pterm.Success.Println("Settings saved")
			}

			creds, err := auth.Credentials(ctx)
			if err != nil {
				return err
			}
			return renderCredentials(creds)
		},
	}

	// --api-url is the global fallback, the stored URL gets its own name
	cmd.Flags().StringVar(&apiURL, "url", "", "API URL to store")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key to store")

	return cmd
}

type accountAction func(ctx context.Context, auth service.Auth, apiURL string, req models.AuthRequest) (models.Credentials, error)

var accountActions = map[string]accountAction{
	"login": func(ctx context.Context, auth service.Auth, apiURL string, req models.AuthRequest) (models.Credentials, error) {
		return auth.Login(ctx, apiURL, req)
	},
	"register": func(ctx context.Context, auth service.Auth, apiURL string, req models.AuthRequest) (models.Credentials, error) {
		return auth.Register(ctx, apiURL, req)
	},
	"regenerate-key": func(ctx context.Context, auth service.Auth, apiURL string, req models.AuthRequest) (models.Credentials, error) {
		return auth.RegenerateKey(ctx, apiURL, req)
	},
}

func newAccountCmd(name, short string) *cobra.Command {
	var (
		apiURL string
		req    models.AuthRequest
	)

	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd, modeCLI)
			if err != nil {
				return err
			}
			defer s.Close()

			if req.Password == "" {
				req.Password, err = pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
				if err != nil {
					return err
				}
			}

			creds, err := accountActions[name](cmd.Context(), s.app.Services().Auth, apiURL, req)
			if err != nil {
				var verr *service.ValidationError
				if errors.As(err, &verr) {
					pterm.Warning.Printfln("%s: %s", verr.Field, verr.Message)
				}
				return err
			}

			pterm.Success.Printfln("%s: done", name)
			return renderCredentials(creds)
		},
	}

	cmd.Flags().StringVarP(&req.Username, "username", "u", "", "Account username")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "Account password, asked for when empty")
	cmd.Flags().StringVar(&apiURL, "url", "", "API URL, the stored one when empty")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd, modeCLI)
			if err != nil {
				return err
			}
			defer s.Close()

			if err = s.app.Services().Auth.Logout(cmd.Context()); err != nil {
				return err
			}
			pterm.Success.Println("Logged out")
			return nil
		},
	}
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Ask the API for its status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd, modeCLI)
			if err != nil {
				return err
			}
			defer s.Close()

			health, err := s.app.Services().Auth.Health(cmd.Context())
			if err != nil {
				pterm.Error.Println("API is unreachable")
				return err
			}

			printer := pterm.Success
			if !health.Healthy() {
				printer = pterm.Warning
			}
			printer.Printfln("API status: %s %s", health.Status, health.Version)
			return nil
		},
	}
}

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the web dashboard in the browser",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd, modeCLI)
			if err != nil {
				return err
			}
			defer s.Close()

			if err = browser.OpenURL(s.cfg.App.DashboardURL); err != nil {
				pterm.Info.Printfln("Open %s in your browser", s.cfg.App.DashboardURL)
				return err
			}
			return nil
		},
	}
}

func renderCredentials(creds models.Credentials) error {
	key := "-"
	if creds.APIKey != "" {
		key = "set"
	}

	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(pterm.TableData{
		{"Field", "Value"},
		{"API URL", valueOr(creds.APIURL, "-")},
		{"API key", key},
		{"User", valueOr(creds.Username, "-")},
	}).Render()
}
