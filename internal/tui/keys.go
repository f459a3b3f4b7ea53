// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	submit key.Binding
	back   key.Binding
	quit   key.Binding
	copy   key.Binding
}

var keys = keyMap{
	submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "exit")),
	copy:   key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy result")),
}
