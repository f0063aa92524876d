package main

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type fakeClipboard struct {
	text string
	err  error
}

func newTestModel(t *testing.T) (*model, *fakeClipboard) {
	t.Helper()

	config, err := loadConfig("")
	require.NoError(t, err)
	config.Files.SaveDirectory = t.TempDir()
	config.Files.LogFile = ""

	m := initialModel(config, zap.NewNop())
	clip := &fakeClipboard{}
	m.clipboardWrite = func(s string) error {
		clip.text = s
		return clip.err
	}
	m.clipboardRead = func() (string, error) {
		return clip.text, clip.err
	}
	return m, clip
}

func typeRunes(m *model, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func press(m *model, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

func TestModelTyping(t *testing.T) {
	m, _ := newTestModel(t)

	typeRunes(m, "H")
	typeRunes(m, "i")
	assert.Equal(t, "Hi", m.editor.Text())

	press(m, tea.KeyEnter)
	assert.Equal(t, "Hi\n", m.editor.Text())

	press(m, tea.KeyBackspace)
	assert.Equal(t, "Hi", m.editor.Text())
	start, _ := m.editor.Selection()
	assert.Equal(t, 2, start)

	press(m, tea.KeyLeft)
	press(m, tea.KeyDelete)
	assert.Equal(t, "H", m.editor.Text())

	press(m, tea.KeyCtrlZ)
	assert.Equal(t, "Hi", m.editor.Text())
	press(m, tea.KeyCtrlY)
	assert.Equal(t, "H", m.editor.Text())
}

func TestModelAutosave(t *testing.T) {
	m, _ := newTestModel(t)
	typeRunes(m, "Hello")

	data, err := os.ReadFile(m.sessionPath)
	require.NoError(t, err)
	assert.Equal(t, "Hello", gjson.GetBytes(data, sessionTextKey).String())
	assert.False(t, m.dirty)

	press(m, tea.KeyCtrlT)
	data, err = os.ReadFile(m.sessionPath)
	require.NoError(t, err)
	assert.Equal(t, "blue", gjson.GetBytes(data, sessionColourKey).String())

	// A new model picks the session back up.
	restored := initialModel(m.config, zap.NewNop())
	assert.Equal(t, "Hello", restored.editor.Text())
	assert.Equal(t, "blue", restored.textColour)
	start, _ := restored.editor.Selection()
	assert.Equal(t, 5, start)
}

func TestModelAutosaveOffConfirmsQuit(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, tea.KeyCtrlA)
	require.False(t, m.autosaveEnabled)
	typeRunes(m, "x")

	assert.Nil(t, press(m, tea.KeyCtrlQ))
	assert.Equal(t, ModeConfirm, m.mode)

	typeRunes(m, "n")
	assert.Equal(t, ModeEditing, m.mode)
	assert.Equal(t, "x", m.editor.Text())

	press(m, tea.KeyCtrlQ)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelQuitWithAutosave(t *testing.T) {
	m, _ := newTestModel(t)
	typeRunes(m, "x")

	cmd := press(m, tea.KeyCtrlC)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelClipboard(t *testing.T) {
	m, clip := newTestModel(t)

	clip.text = "Say \"hi\"\r\nnow"
	press(m, tea.KeyCtrlV)
	assert.Equal(t, "Say \"hi\"\nnow", m.editor.Text())

	press(m, tea.KeyCtrlK)
	assert.Equal(t, `Say \"hi\"\nnow`, clip.text)
	assert.Equal(t, "Copied ingame text", m.successMessage)

	clip.err = assert.AnError
	press(m, tea.KeyCtrlK)
	assert.Equal(t, "Clipboard unavailable", m.errorMessage)
}

func TestModelQuickInsert(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, tea.KeyF8)
	assert.Equal(t, "[PAUSE][]", m.editor.Text())
	start, end := m.editor.Selection()
	assert.Equal(t, 8, start)
	assert.Equal(t, 8, end)
}

func TestModelToggles(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, tea.KeyCtrlL)
	assert.True(t, m.editor.FinalLineLocked())

	press(m, tea.KeyCtrlD)
	assert.True(t, m.darkMode)

	press(m, tea.KeyF1)
	assert.True(t, m.help)
	assert.Contains(t, m.View(), "Help (")
	press(m, tea.KeyEsc)
	assert.False(t, m.help)
}

func TestModelSaveAndOpen(t *testing.T) {
	m, _ := newTestModel(t)
	dir := m.config.Files.SaveDirectory
	typeRunes(m, "Bye…")

	press(m, tea.KeyCtrlS)
	require.Equal(t, ModeFileInput, m.mode)
	typeRunes(m, "out")
	press(m, tea.KeyEnter)
	assert.Equal(t, ModeEditing, m.mode)
	assert.Empty(t, m.errorMessage)

	data, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Bye[.]\n", string(data))

	// Saving over an existing file asks first.
	press(m, tea.KeyCtrlS)
	typeRunes(m, "out")
	press(m, tea.KeyEnter)
	require.Equal(t, ModeConfirm, m.mode)
	typeRunes(m, "y")
	assert.Equal(t, ModeEditing, m.mode)

	press(m, tea.KeyCtrlE)
	typeRunes(m, "preview")
	press(m, tea.KeyEnter)
	assert.FileExists(t, filepath.Join(dir, "preview.png"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "another.txt"), []byte(`Hello\pWorld`), 0644))
	press(m, tea.KeyCtrlO)
	require.Equal(t, []string{"another.txt", "out.txt"}, m.fileList)
	assert.Equal(t, "another", m.filename)
	press(m, tea.KeyEnter)
	assert.Equal(t, "Hello\n\nWorld", m.editor.Text())

	press(m, tea.KeyCtrlZ)
	assert.Equal(t, "Bye…", m.editor.Text())
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	typeRunes(m, "Hi \"you\"")

	view := m.View()
	assert.Contains(t, view, "/206")
	assert.Contains(t, view, `Hi \"you\"`)
	assert.Contains(t, view, "Ln 1, Col 9")
}
