// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/MKhiriev/rf-checker/models"
	"github.com/spf13/cobra"
)

func newPopupCmd() *cobra.Command {
	var tab models.Tab

	cmd := &cobra.Command{
		Use:   "popup",
		Short: "Open the interactive popup",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd, modeTUI)
			if err != nil {
				return err
			}
			defer s.Close()

			return s.app.RunPopup(cmd.Context(), tab)
		},
	}

	cmd.Flags().IntVar(&tab.ID, "tab-id", 0, "Tab whose page surface the popup asks for the selection")
	cmd.Flags().StringVar(&tab.URL, "tab-url", "", "URL of the current page")

	return cmd
}
