package main

import (
	"fmt"
	"strings"

	"frtext/textbox"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	caretStyle   = lipgloss.NewStyle().Reverse(true)
	statusStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5fd75f"))
	gaugeStyle   = lipgloss.NewStyle().Faint(true)
	overStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f"))
	previewStyle = lipgloss.NewStyle().Faint(true)
)

var helpLines = []string{
	"frtext Help",
	"===========",
	"",
	"Editing:",
	"--------",
	"  Type             Insert text at the caret",
	"  Enter            New line (a blank line starts a new textbox)",
	"  ←/→/↑/↓          Move the caret",
	"  Home/End         Start/end of the line",
	"  Ctrl+Z / Ctrl+Y  Undo / redo",
	"  Ctrl+P           Prettify: one sentence per textbox",
	"  Ctrl+L           Lock/unlock the final line",
	"",
	"Quick inserts:",
	"--------------",
	"  F2-F5            Black, blue, red, green text",
	"  F6 / F7          Player's / rival's name",
	"  F8               Pause (type the frames in hex)",
	"",
	"Clipboard and files:",
	"--------------------",
	"  Ctrl+V           Paste",
	"  Ctrl+K           Copy the ingame text",
	"  Ctrl+S           Save the ingame text as .txt",
	"  Ctrl+E           Export a .png preview of the textboxes",
	"  Ctrl+O           Open a saved .txt",
	"",
	"Display:",
	"--------",
	"  Ctrl+T           Cycle the text colour",
	"  Ctrl+D           Toggle the dark palette",
	"  Ctrl+A           Toggle autosave",
	"",
	"  F1               Toggle this help screen",
	"  Ctrl+Q/Ctrl+C    Quit",
}

func (m *model) View() string {
	if m.help {
		return m.helpView()
	}

	width := m.width
	if width < 1 {
		width = defaultWidth
	}

	var result strings.Builder
	if m.mode == ModeFileInput && m.fileOp == FileOpOpen {
		result.WriteString(m.fileListView(width))
	} else {
		result.WriteString(m.renderText(width))
	}

	result.WriteString("\n")
	result.WriteString(strings.Repeat("─", width))
	result.WriteString("\n")
	result.WriteString(previewStyle.Render(runewidth.Truncate(m.editor.IngameText(), width, "…")))
	result.WriteString("\n")
	result.WriteString(m.statusLine())
	return result.String()
}

// renderText draws the text in its colours with the caret, followed on each
// line by the pixels used out of the line's budget.
func (m *model) renderText(width int) string {
	text := m.editor.Text()
	lines := strings.Split(text, "\n")
	metrics := textbox.DefaultMetrics()
	locked := m.editor.FinalLineLocked()
	caret, _ := m.editor.Selection()
	base := textbox.DisplayColour(m.textColour, m.darkMode)

	textColumns := width - gaugeColumns
	if textColumns < 1 {
		textColumns = 1
	}

	coloured := textbox.ColourRunes(text, m.darkMode)
	var b strings.Builder
	offset := 0
	for i, line := range lines {
		lineRunes := coloured[offset : offset+len([]rune(line))]

		var row strings.Builder
		for j, cr := range lineRunes {
			colour := cr.Colour
			if colour == "" {
				colour = base
			}
			style := lipgloss.NewStyle().Foreground(terminalColours[colour])
			if offset+j == caret {
				style = caretStyle
			}
			row.WriteString(style.Render(string(cr.Rune)))
		}
		cols := runewidth.StringWidth(line)
		if caret == offset+len(lineRunes) {
			row.WriteString(caretStyle.Render(" "))
			cols++
		}

		used := metrics.StringWidth(line)
		total := textbox.LineTotalWidth(lines, i, locked)
		gauge := gaugeStyle
		if used > total {
			gauge = overStyle
		}

		b.WriteString(row.String())
		b.WriteString(strings.Repeat(" ", max(textColumns-cols, 1)))
		b.WriteString(gauge.Render(fmt.Sprintf("%3d/%d", used, total)))
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
		offset += len(lineRunes) + 1
	}
	return b.String()
}

func (m *model) fileListView(width int) string {
	var b strings.Builder
	b.WriteString("Select a saved text:\n")
	b.WriteString(strings.Repeat("─", width))
	b.WriteString("\n")
	if len(m.fileList) == 0 {
		b.WriteString("(No .txt files found)")
		return b.String()
	}
	for i, file := range m.fileList {
		name := strings.TrimSuffix(file, ".txt")
		if i == m.selectedFileIndex {
			b.WriteString("> " + name + " <")
		} else {
			b.WriteString("  " + name)
		}
		if i < len(m.fileList)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// caretColumn is the terminal column of the caret on its line.
func (m *model) caretColumn() (line, column int) {
	text := []rune(m.editor.Text())
	caret, _ := m.editor.Selection()
	caret = min(caret, len(text))
	for _, r := range text[:caret] {
		if r == '\n' {
			line++
		}
	}
	start := textbox.FindLineStart(string(text), caret)
	return line + 1, runewidth.StringWidth(string(text[start:caret])) + 1
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (m *model) statusLine() string {
	switch m.mode {
	case ModeFileInput:
		var op string
		switch m.fileOp {
		case FileOpSaveTXT:
			op = "Save"
		case FileOpSavePNG:
			op = "Export PNG"
		case FileOpOpen:
			op = "Open"
		}
		status := fmt.Sprintf("Mode: FILE | %s filename: %s█ | Enter=confirm, Esc=cancel", op, m.filename)
		if m.errorMessage != "" {
			status += " | " + errorStyle.Render("ERROR: "+m.errorMessage)
		}
		return status
	case ModeConfirm:
		message := "Autosave is off. Quit without saving? (y/n)"
		if m.confirmAction == ConfirmOverwriteFile {
			message = fmt.Sprintf("File %s already exists. Overwrite? (y/n)", m.filename)
		}
		return "Mode: CONFIRM | " + message
	}

	info := m.editor.SpaceInfo()
	line, column := m.caretColumn()
	status := statusStyle.Render(fmt.Sprintf("Ln %d, Col %d | %d/%d chars | Lock: %s | Autosave: %s | Colour: %s",
		line, column, info.CharCount, info.MaxCharCount,
		onOff(m.editor.FinalLineLocked()), onOff(m.autosaveEnabled), m.textColour))

	switch {
	case m.errorMessage != "":
		status += " | " + errorStyle.Render("ERROR: "+m.errorMessage)
	case m.successMessage != "":
		status += " | " + successStyle.Render(m.successMessage)
	default:
		status += statusStyle.Render(" | F1 for help | Ctrl+Q to quit")
	}
	return status
}

func (m *model) helpView() string {
	visibleHeight := m.height - 1
	if visibleHeight < 1 {
		visibleHeight = len(helpLines)
	}

	startLine := min(m.helpScroll, max(len(helpLines)-visibleHeight, 0))
	endLine := min(startLine+visibleHeight, len(helpLines))

	result := strings.Join(helpLines[startLine:endLine], "\n")
	result += "\n" + fmt.Sprintf("Help (%d-%d of %d lines) | j/k to scroll, Esc to close",
		startLine+1, endLine, len(helpLines))
	return result
}
