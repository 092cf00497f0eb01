// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/rf-checker/internal/notify"
	"github.com/MKhiriev/rf-checker/models"
)

// renderResult draws the verdict box of a stored check.
func renderResult(check *models.LastCheck, width int) string {
	if check == nil {
		return helpStyle.Render("No checks yet")
	}

	title, style := notify.UnknownTitle, unknownStyle
	if check.Result.Known() {
		title, style = notify.SafeTitle, safeStyle
		if check.Result.Detected() {
			title, style = notify.DetectedTitle, dangerStyle
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(valueOrDash(strings.TrimSpace(check.Result.Text)))
	b.WriteString("\n\n")
	if info, ok := check.Steam(); ok {
		b.WriteString(renderSteamInfo(info))
		b.WriteString("\n")
	}
	if domains := check.Domains(); len(domains) > 0 {
		b.WriteString(renderDomains(domains))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("Checked: " + fitText(valueOrDash(check.Provenance()), 60)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("At:      " + formatTime(check.Timestamp)))
	if check.RequestID != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("Request: " + check.RequestID))
	}

	if width > 8 {
		style = style.Width(width - 4)
	}
	return style.Render(b.String())
}

func renderSteamInfo(info models.SteamInfo) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Game: " + info.Name))
	b.WriteString("\n")
	if len(info.Developers) > 0 {
		b.WriteString("Developer: " + strings.Join(info.Developers, ", ") + "\n")
	}
	if len(info.Publishers) > 0 {
		b.WriteString("Publisher: " + strings.Join(info.Publishers, ", ") + "\n")
	}
	if info.ReleaseDate != "" {
		b.WriteString("Released:  " + string(info.ReleaseDate) + "\n")
	}
	if info.Price != "" {
		b.WriteString("Price:     " + string(info.Price) + "\n")
	}
	if d := strings.TrimSpace(info.ShortDescription); d != "" {
		b.WriteString(helpStyle.Render(fitText(d, 160)) + "\n")
	}
	return b.String()
}

func renderDomains(domains []models.DomainInfo) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Domains"))
	b.WriteString("\n")
	for _, d := range domains {
		b.WriteString(d.Domain)
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(strings.Join([]string{
			"IP " + valueOrDash(string(d.IP)),
			"country " + valueOrDash(d.CountryName()),
			"registrar " + valueOrDash(string(d.Registrar)),
			"created " + valueOrDash(string(d.CreationDate)),
		}, " · ")))
		b.WriteString("\n")
		if len(d.RussianTraces) > 0 {
			traces, style := strings.Join(d.RussianTraces, "; "), statusStyle
			if d.TracesFound() {
				style = errorStyle
			}
			b.WriteString("  " + style.Render("RF traces: "+traces) + "\n")
		}
	}
	return b.String()
}
