package main

import (
	"unicode/utf8"

	"frtext/textbox"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) handleNavigation(key string) (tea.Model, tea.Cmd) {
	start, _ := m.editor.Selection()
	if pos, ok := caretAfterKey(m.editor.Text(), start, key); ok {
		m.editor.MoveCursor(pos, pos)
	}
	return m, nil
}

// caretAfterKey returns the rune offset the caret moves to when key is
// pressed with the caret at pos.
func caretAfterKey(text string, pos int, key string) (int, bool) {
	n := utf8.RuneCountInString(text)
	if pos > n {
		pos = n
	}
	if pos < 0 {
		pos = 0
	}

	lineStart := textbox.FindLineStart(text, pos)
	lineEnd := textbox.FindLineEnd(text, pos)
	column := pos - lineStart

	switch key {
	case "left":
		if pos > 0 {
			pos--
		}
	case "right":
		if pos < n {
			pos++
		}
	case "home":
		pos = lineStart
	case "end":
		pos = lineEnd
	case "ctrl+home":
		pos = 0
	case "ctrl+end":
		pos = n
	case "up":
		if lineStart == 0 {
			return 0, true
		}
		prevEnd := lineStart - 1
		prevStart := textbox.FindLineStart(text, prevEnd)
		pos = min(prevStart+column, prevEnd)
	case "down":
		if lineEnd >= n {
			return n, true
		}
		nextStart := lineEnd + 1
		nextEnd := textbox.FindLineEnd(text, nextStart)
		pos = min(nextStart+column, nextEnd)
	default:
		return pos, false
	}
	return pos, true
}
