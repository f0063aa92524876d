package main

import "github.com/charmbracelet/lipgloss"

type Mode int

const (
	ModeEditing Mode = iota
	ModeFileInput
	ModeConfirm
)

type FileOperation int

const (
	FileOpSaveTXT FileOperation = iota
	FileOpSavePNG
	FileOpOpen
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmOverwriteFile
)

// textColours is the order Ctrl+T cycles the base text colour through.
var textColours = []string{"black", "blue", "red", "green", "orange"}

// quickInserts are bound to the function keys.
var quickInserts = []struct {
	key  string
	text string
	help string
}{
	{"f2", "⚫", "Black"},
	{"f3", "🔵", "Blue"},
	{"f4", "🔴", "Red"},
	{"f5", "🟢", "Green"},
	{"f6", "[PLAYER]", "Player's name"},
	{"f7", "[RIVAL]", "Rival's name"},
	{"f8", "[PAUSE][]", "Pause XX frames (hex)"},
}

// terminalColours maps the display colour names onto terminal colours.
var terminalColours = map[string]lipgloss.Color{
	"black":       lipgloss.Color("#3a3a3a"),
	"green":       lipgloss.Color("#008000"),
	"blue":        lipgloss.Color("#0000ff"),
	"red":         lipgloss.Color("#ff0000"),
	"orange":      lipgloss.Color("#ffa500"),
	"forestgreen": lipgloss.Color("#228b22"),
	"mediumblue":  lipgloss.Color("#0000cd"),
	"indianred":   lipgloss.Color("#cd5c5c"),
}

const (
	gaugeColumns = 12
	defaultWidth = 80
)
