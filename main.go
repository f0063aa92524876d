package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"frtext/textbox"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", defaultConfigPath(), "path to the rc file")
	flag.Parse()

	config, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := newLogger(config)
	defer logger.Sync()

	m := initialModel(config, logger)
	logger.Info("starting",
		zap.String("config", *configPath),
		zap.String("session", m.sessionPath),
		zap.Bool("autosave", m.autosaveEnabled))

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger logs to the configured file; stdout belongs to the terminal UI.
func newLogger(config *Config) *zap.Logger {
	if config.Files.LogFile == "" {
		return zap.NewNop()
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{config.GetSavePath(config.Files.LogFile)}
	cfg.ErrorOutputPaths = cfg.OutputPaths
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func initialModel(config *Config, logger *zap.Logger) *model {
	m := &model{
		mode:              ModeEditing,
		textColour:        config.Editor.TextColour,
		darkMode:          config.Editor.DarkMode,
		autosaveEnabled:   config.Files.AutoSave,
		selectedFileIndex: -1,
		config:            config,
		log:               logger,
		clipboardWrite:    writeClipboardText,
		clipboardRead:     readClipboardText,
	}
	if config.Files.SessionFile != "" {
		m.sessionPath = config.GetSavePath(config.Files.SessionFile)
	}

	text := ""
	if m.sessionPath != "" {
		s, err := loadSession(m.sessionPath)
		if err != nil {
			logger.Warn("session not restored", zap.Error(err))
			m.errorMessage = "Session not restored"
		}
		if config.Files.AutoSave {
			m.autosaveEnabled = s.AutosaveEnabled
		}
		if s.TextColour != "" {
			m.textColour = s.TextColour
		}
		if s.HasDarkMode {
			m.darkMode = s.DarkMode
		}
		if m.autosaveEnabled {
			text = s.Text
		}
	}

	formatter := textbox.NewFormatter(textbox.WithMaxBlankLines(config.Editor.MaxBlankLines))
	m.editor = textbox.NewEditor(text,
		textbox.WithFormatter(formatter),
		textbox.WithHistoryLimit(config.Editor.UndoLimit),
		textbox.WithLockFinalLine(config.Editor.LockFinalLine))
	n := len([]rune(text))
	m.editor.MoveCursor(n, n)
	return m
}

func (m *model) scanTxtFiles() {
	m.fileList = []string{}
	m.selectedFileIndex = -1

	dir := m.config.Files.SaveDirectory
	if dir == "" {
		var err error
		if dir, err = os.Getwd(); err != nil {
			return
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(strings.ToLower(entry.Name()), ".txt") {
			m.fileList = append(m.fileList, entry.Name())
		}
	}
	sort.Strings(m.fileList)

	if len(m.fileList) > 0 {
		m.selectedFileIndex = 0
		m.filename = strings.TrimSuffix(m.fileList[0], filepath.Ext(m.fileList[0]))
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.help {
			return m.updateHelp(msg)
		}
		switch m.mode {
		case ModeFileInput:
			return m.updateFileInput(msg)
		case ModeConfirm:
			return m.updateConfirm(msg)
		}
		return m.updateEditing(msg)
	}
	return m, nil
}

func (m *model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "f1", "q":
		m.help = false
		m.helpScroll = 0
	case "j", "down":
		if m.helpScroll < len(helpLines)-1 {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	case "ctrl+c":
		return m, m.quit()
	}
	return m, nil
}

func (m *model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key != "ctrl+q" && key != "ctrl+c" {
		m.errorMessage = ""
		m.successMessage = ""
	}

	switch key {
	case "ctrl+c", "ctrl+q":
		if !m.autosaveEnabled && m.dirty {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		return m, m.quit()
	case "f1":
		m.help = true
		return m, nil
	case "left", "right", "up", "down", "home", "end", "ctrl+home", "ctrl+end":
		return m.handleNavigation(key)
	case "enter":
		m.insertText("\n")
	case "backspace":
		m.deleteBackward()
	case "delete":
		m.deleteForward()
	case "ctrl+z":
		m.undo()
	case "ctrl+y":
		m.redo()
	case "ctrl+v":
		m.paste()
	case "ctrl+k":
		m.copyIngameText()
	case "ctrl+l":
		m.editor.SetLockFinalLine(!m.editor.FinalLineLocked())
	case "ctrl+p":
		m.editor.Prettify()
		m.afterEdit()
	case "ctrl+t":
		m.textColour = nextTextColour(m.textColour)
		m.persist()
	case "ctrl+d":
		m.darkMode = !m.darkMode
		m.persist()
	case "ctrl+a":
		m.autosaveEnabled = !m.autosaveEnabled
		m.persist()
	case "ctrl+s":
		m.startFileInput(FileOpSaveTXT)
	case "ctrl+e":
		m.startFileInput(FileOpSavePNG)
	case "ctrl+o":
		m.startFileInput(FileOpOpen)
	default:
		for _, q := range quickInserts {
			if key == q.key {
				m.editor.InsertAtSelection(q.text)
				m.afterEdit()
				return m, nil
			}
		}
		switch msg.Type {
		case tea.KeyRunes:
			text := string(msg.Runes)
			if msg.Paste {
				text = cleanClipboardText(text)
			}
			m.insertText(text)
		case tea.KeySpace:
			m.insertText(" ")
		}
	}
	return m, nil
}

func (m *model) startFileInput(op FileOperation) {
	m.mode = ModeFileInput
	m.fileOp = op
	m.filename = ""
	if op == FileOpOpen {
		m.scanTxtFiles()
	}
}

func (m *model) updateFileInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeEditing
		m.errorMessage = ""
		return m, nil
	case "enter":
		return m, m.confirmFileInput()
	case "backspace":
		if runes := []rune(m.filename); len(runes) > 0 {
			m.filename = string(runes[:len(runes)-1])
		}
	case "up":
		if m.fileOp == FileOpOpen && m.selectedFileIndex > 0 {
			m.selectedFileIndex--
			m.filename = strings.TrimSuffix(m.fileList[m.selectedFileIndex], ".txt")
		}
	case "down":
		if m.fileOp == FileOpOpen && m.selectedFileIndex >= 0 && m.selectedFileIndex < len(m.fileList)-1 {
			m.selectedFileIndex++
			m.filename = strings.TrimSuffix(m.fileList[m.selectedFileIndex], ".txt")
		}
	default:
		switch msg.Type {
		case tea.KeyRunes:
			m.filename += string(msg.Runes)
		case tea.KeySpace:
			m.filename += " "
		}
	}
	return m, nil
}

func (m *model) confirmFileInput() tea.Cmd {
	name := strings.TrimSpace(m.filename)
	if name == "" {
		m.errorMessage = "Filename required"
		return nil
	}

	if m.fileOp == FileOpOpen {
		path := m.config.GetSavePath(withExtension(name, ".txt"))
		text, err := readTXT(path)
		if err != nil {
			m.log.Error("open failed", zap.String("path", path), zap.Error(err))
			m.errorMessage = err.Error()
			return nil
		}
		n := len([]rune(text))
		m.editor.HandleTextChange(text, n, n)
		m.afterEdit()
		m.successMessage = "Opened " + path
		m.mode = ModeEditing
		return nil
	}

	ext := ".txt"
	if m.fileOp == FileOpSavePNG {
		ext = ".png"
	}
	if _, err := os.Stat(m.config.GetSavePath(withExtension(name, ext))); err == nil {
		m.mode = ModeConfirm
		m.confirmAction = ConfirmOverwriteFile
		return nil
	}
	m.saveFile(name)
	return nil
}

func (m *model) saveFile(name string) {
	m.mode = ModeEditing
	if err := m.exportFile(name); err != nil {
		m.log.Error("export failed", zap.String("file", name), zap.Error(err))
		m.errorMessage = err.Error()
		return
	}
	m.log.Info("exported", zap.String("file", name), zap.Int("op", int(m.fileOp)))
}

func (m *model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		switch m.confirmAction {
		case ConfirmQuit:
			return m, m.quit()
		case ConfirmOverwriteFile:
			m.saveFile(strings.TrimSpace(m.filename))
		}
	case "n", "N", "esc":
		if m.confirmAction == ConfirmOverwriteFile {
			m.mode = ModeFileInput
		} else {
			m.mode = ModeEditing
		}
	}
	return m, nil
}

func (m *model) quit() tea.Cmd {
	m.persist()
	return tea.Quit
}

func nextTextColour(current string) string {
	for i, c := range textColours {
		if c == current {
			return textColours[(i+1)%len(textColours)]
		}
	}
	return textColours[0]
}
