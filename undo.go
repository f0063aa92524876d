package main

import (
	"unicode/utf8"

	"go.uber.org/zap"
)

func (m *model) undo() {
	if m.editor.Undo() {
		m.afterEdit()
	}
}

func (m *model) redo() {
	if m.editor.Redo() {
		m.afterEdit()
	}
}

// selectionRange returns the selection ordered and clamped to the text.
func (m *model) selectionRange() (start, end int) {
	start, end = m.editor.Selection()
	if start > end {
		start, end = end, start
	}
	n := utf8.RuneCountInString(m.editor.Text())
	return min(max(start, 0), n), min(max(end, 0), n)
}

// replaceSelection swaps the selection for s and hands the result to the
// editor with the caret after s.
func (m *model) replaceSelection(s string, from, to int) {
	runes := []rune(m.editor.Text())
	newText := string(runes[:from]) + s + string(runes[to:])
	pos := from + utf8.RuneCountInString(s)
	m.editor.HandleTextChange(newText, pos, pos)
	m.afterEdit()
}

func (m *model) insertText(s string) {
	if s == "" {
		return
	}
	start, end := m.selectionRange()
	m.replaceSelection(s, start, end)
}

func (m *model) deleteBackward() {
	start, end := m.selectionRange()
	if start == end {
		if start == 0 {
			return
		}
		start--
	}
	m.replaceSelection("", start, end)
}

func (m *model) deleteForward() {
	start, end := m.selectionRange()
	if start == end {
		if end >= utf8.RuneCountInString(m.editor.Text()) {
			return
		}
		end++
	}
	m.replaceSelection("", start, end)
}

func (m *model) paste() {
	text, err := m.clipboardRead()
	if err != nil {
		m.log.Warn("paste failed", zap.Error(err))
		m.errorMessage = "Clipboard unavailable"
		return
	}
	m.insertText(cleanClipboardText(text))
}

func (m *model) copyIngameText() {
	if err := m.clipboardWrite(m.editor.IngameText()); err != nil {
		m.log.Warn("copy failed", zap.Error(err))
		m.errorMessage = "Clipboard unavailable"
		return
	}
	m.successMessage = "Copied ingame text"
}

func (m *model) afterEdit() {
	m.dirty = true
	m.persist()
}

// persist writes the session file. Without autosave only the display
// settings are kept.
func (m *model) persist() {
	if m.sessionPath == "" {
		return
	}
	s := session{
		Text:            m.editor.Text(),
		TextColour:      m.textColour,
		DarkMode:        m.darkMode,
		AutosaveEnabled: m.autosaveEnabled,
	}
	if err := saveSession(m.sessionPath, s); err != nil {
		m.log.Error("autosave failed", zap.String("path", m.sessionPath), zap.Error(err))
		m.errorMessage = "Autosave failed"
		return
	}
	if m.autosaveEnabled {
		m.dirty = false
	}
}
