// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/wine-cellar/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	cellarFocusTitle = iota
	cellarFocusDescription
	cellarFocusPhoto
	cellarFocusAdd
	cellarFocusList
	cellarFocusCount
)

// inventoryModel is the logged-in screen: the new-bottle form and the
// list of cached bottles.
type inventoryModel struct {
	inputs []textinput.Model
	focus  int

	bottles []models.WineBottle
	idx     int
	width   int
}

func newInventoryModel() *inventoryModel {
	titleInput := textinput.New()
	titleInput.Placeholder = "Chateau Margaux 2015"
	titleInput.Width = 40
	titleInput.Focus()

	descriptionInput := textinput.New()
	descriptionInput.Placeholder = "tasting notes"
	descriptionInput.Width = 40

	photoInput := textinput.New()
	photoInput.Placeholder = "/path/to/label.jpg"
	photoInput.Width = 40

	return &inventoryModel{
		inputs:  []textinput.Model{titleInput, descriptionInput, photoInput},
		bottles: make([]models.WineBottle, 0),
	}
}

func (m *inventoryModel) draft() models.WineBottleDraft {
	return models.WineBottleDraft{
		Title:       m.inputs[0].Value(),
		Description: m.inputs[1].Value(),
		PhotoPath:   strings.TrimSpace(m.inputs[2].Value()),
	}
}

// applyDraft writes d back to the form fields.
func (m *inventoryModel) applyDraft(d models.WineBottleDraft) {
	m.inputs[0].SetValue(d.Title)
	m.inputs[1].SetValue(d.Description)
	m.inputs[2].SetValue(d.PhotoPath)
}

func (m *inventoryModel) setBottles(bottles []models.WineBottle) {
	m.bottles = bottles
	if m.idx >= len(m.bottles) {
		m.idx = len(m.bottles) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *inventoryModel) selected() (models.WineBottle, bool) {
	if len(m.bottles) == 0 || m.idx < 0 || m.idx >= len(m.bottles) {
		return models.WineBottle{}, false
	}
	return m.bottles[m.idx], true
}

func (m *inventoryModel) reset() {
	m.applyDraft(models.WineBottleDraft{})
	m.setBottles(make([]models.WineBottle, 0))
	m.setFocus(cellarFocusTitle)
}

func (m *inventoryModel) onInput() bool {
	return m.focus < len(m.inputs)
}

func (m *inventoryModel) update(msg tea.KeyMsg) (action, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.tab):
		m.setFocus((m.focus + 1) % cellarFocusCount)
		return actNone, nil
	case key.Matches(msg, keys.backtab):
		m.setFocus((m.focus - 1 + cellarFocusCount) % cellarFocusCount)
		return actNone, nil
	}

	if m.onInput() {
		if key.Matches(msg, keys.enter) {
			if m.focus == cellarFocusPhoto {
				return actCreate, nil
			}
			m.setFocus(m.focus + 1)
			return actNone, nil
		}

		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return actNone, cmd
	}

	switch {
	case key.Matches(msg, keys.buildInfo):
		return actBuildInfo, nil
	case key.Matches(msg, keys.logout):
		return actLogout, nil
	}

	if m.focus == cellarFocusAdd {
		if key.Matches(msg, keys.enter) {
			return actCreate, nil
		}
		return actNone, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.bottles)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.delete):
		if _, ok := m.selected(); ok {
			return actDelete, nil
		}
	case key.Matches(msg, keys.copy):
		if b, ok := m.selected(); ok && b.PhotoURL != "" {
			return actCopy, nil
		}
	}
	return actNone, nil
}

func (m *inventoryModel) setFocus(focus int) {
	m.focus = focus
	for i := range m.inputs {
		if i == focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m *inventoryModel) View(pending bool, spinner string) string {
	var b strings.Builder
	b.WriteString("Title        │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Description  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Photo file   │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n\n")
	b.WriteString(renderButton("Add", m.focus == cellarFocusAdd))
	if pending {
		b.WriteString("  ")
		b.WriteString(spinner)
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Bottles (%d)\n", len(m.bottles))
	if len(m.bottles) == 0 {
		b.WriteString("  no bottles yet\n")
	}

	rowWidth := m.width - 8
	if rowWidth <= 0 {
		rowWidth = 72
	}
	for i, bottle := range m.bottles {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		row := fmt.Sprintf("%s · %s", bottle.Title, valueOrDash(bottle.Description))
		if bottle.PhotoURL != "" {
			row += " · photo"
		}
		row = cursor + fitText(row, rowWidth)
		if i == m.idx && m.focus == cellarFocusList {
			row = selectedStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	if bottle, ok := m.selected(); ok && m.focus == cellarFocusList {
		b.WriteString("\nPhoto: ")
		b.WriteString(valueOrDash(bottle.PhotoURL))
		b.WriteString("\n")
	}

	return b.String()
}
