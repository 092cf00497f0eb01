// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	nextScreen key.Binding
	register   key.Binding
	regenerate key.Binding
	logout     key.Binding
}

var keys = keyMap{
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab", "down")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:       key.NewBinding(key.WithKeys("ctrl+c")),
	nextScreen: key.NewBinding(key.WithKeys("ctrl+t")),
	register:   key.NewBinding(key.WithKeys("ctrl+r")),
	regenerate: key.NewBinding(key.WithKeys("ctrl+g")),
	logout:     key.NewBinding(key.WithKeys("ctrl+o")),
}
