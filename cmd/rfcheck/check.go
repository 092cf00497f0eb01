// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/rf-checker/internal/notify"
	"github.com/MKhiriev/rf-checker/internal/store"
	"github.com/MKhiriev/rf-checker/models"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var (
		game   string
		tabURL string
	)

	cmd := &cobra.Command{
		Use:   "check [input]",
		Short: "Check a link, a game title or text",
		Long: "Check a link, a game title or text. Input is classified the way a popup\n" +
			"entry is; with no input the --tab-url page is checked.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, modeCLI)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx := cmd.Context()
			input := strings.Join(args, " ")

			var last models.LastCheck
			if input == "" && game != "" {
				last, err = s.app.Popup().CheckPage(ctx, tabURL, game)
			} else {
				last, err = s.app.Popup().Check(ctx, input, tabURL)
			}
			if err != nil {
				return err
			}

			return renderLastCheck(last)
		},
	}

	cmd.Flags().StringVarP(&game, "game", "g", "", "Game name sent along with --tab-url")
	cmd.Flags().StringVar(&tabURL, "tab-url", "", "URL of the current page")

	return cmd
}

func newLastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "last",
		Short: "Show the last stored check",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd, modeCLI)
			if err != nil {
				return err
			}
			defer s.Close()

			last, err := s.app.Results().LastCheck(cmd.Context())
			if errors.Is(err, store.ErrNotFound) {
				pterm.Info.Println("Nothing has been checked yet")
				return nil
			}
			if err != nil {
				return err
			}

			return renderLastCheck(last)
		},
	}
}

func renderLastCheck(last models.LastCheck) error {
	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(lastCheckRows(last)).Render()
}

func lastCheckRows(last models.LastCheck) pterm.TableData {
	verdict := notify.UnknownTitle
	switch {
	case last.Result.Detected():
		verdict = notify.DetectedTitle
	case last.Result.Known():
		verdict = notify.SafeTitle
	}

	data := pterm.TableData{
		{"Field", "Value"},
		{"Checked", last.Provenance()},
		{"Verdict", verdict},
		{"Details", last.Result.Text},
		{"At", last.Timestamp.Local().Format("2006-01-02 15:04:05")},
	}
	if last.RequestID != "" {
		data = append(data, []string{"Request", last.RequestID})
	}

	if info, ok := last.Steam(); ok {
		data = append(data,
			[]string{"Game", info.Name},
			[]string{"Developers", valueOr(strings.Join(info.Developers, ", "), "-")},
			[]string{"Publishers", valueOr(strings.Join(info.Publishers, ", "), "-")},
			[]string{"Released", valueOr(string(info.ReleaseDate), "-")},
			[]string{"Price", valueOr(string(info.Price), "-")},
		)
	}

	for _, d := range last.Domains() {
		data = append(data, []string{"Domain " + d.Domain, fmt.Sprintf("IP %s, country %s, registrar %s, created %s",
			valueOr(string(d.IP), "-"),
			valueOr(d.CountryName(), "-"),
			valueOr(string(d.Registrar), "-"),
			valueOr(string(d.CreationDate), "-"),
		)})
		if len(d.RussianTraces) > 0 {
			data = append(data, []string{"RF traces", strings.Join(d.RussianTraces, "; ")})
		}
	}

	return data
}
