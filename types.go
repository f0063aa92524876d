package main

import (
	"frtext/textbox"

	"go.uber.org/zap"
)

type model struct {
	width  int
	height int

	editor     *textbox.Editor
	mode       Mode
	help       bool
	helpScroll int

	darkMode        bool
	textColour      string
	autosaveEnabled bool
	dirty           bool

	filename          string
	fileList          []string
	selectedFileIndex int
	fileOp            FileOperation
	confirmAction     ConfirmAction

	errorMessage   string
	successMessage string

	config      *Config
	sessionPath string
	log         *zap.Logger

	// clipboardWrite and clipboardRead are swapped out in tests.
	clipboardWrite func(string) error
	clipboardRead  func() (string, error)
}
