package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const (
	sessionTextKey     = "autoSavedText"
	sessionColourKey   = "textColour"
	sessionDarkModeKey = "darkMode"
	sessionEnabledKey  = "autosaveEnabled"
)

// session is what survives between runs: the last text and the display
// choices made while editing it.
type session struct {
	Text            string
	TextColour      string
	DarkMode        bool
	HasDarkMode     bool
	AutosaveEnabled bool
}

// loadSession reads the session file. A missing file is an empty session
// with autosave on.
func loadSession(path string) (session, error) {
	s := session{AutosaveEnabled: true}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, errors.Wrapf(err, "failed to read session %s", path)
	}
	if len(data) > 0 && !gjson.ValidBytes(data) {
		return s, errors.Errorf("session %s is not valid JSON", path)
	}

	s.Text = gjson.GetBytes(data, sessionTextKey).String()
	s.TextColour = gjson.GetBytes(data, sessionColourKey).String()
	if dark := gjson.GetBytes(data, sessionDarkModeKey); dark.Exists() {
		s.DarkMode = dark.Bool()
		s.HasDarkMode = true
	}
	if enabled := gjson.GetBytes(data, sessionEnabledKey); enabled.Exists() {
		s.AutosaveEnabled = enabled.Bool()
	}
	return s, nil
}

// saveSession writes s over the session file, keeping keys it does not know
// about. With autosave off the saved text is removed.
func saveSession(path string, s session) error {
	data, err := os.ReadFile(path)
	if err != nil || !gjson.ValidBytes(data) {
		data = []byte(`{}`)
	}

	if data, err = sjson.SetBytes(data, sessionEnabledKey, s.AutosaveEnabled); err != nil {
		return errors.Wrap(err, "failed to encode session")
	}
	if data, err = sjson.SetBytes(data, sessionColourKey, s.TextColour); err != nil {
		return errors.Wrap(err, "failed to encode session")
	}
	if data, err = sjson.SetBytes(data, sessionDarkModeKey, s.DarkMode); err != nil {
		return errors.Wrap(err, "failed to encode session")
	}
	if s.AutosaveEnabled {
		data, err = sjson.SetBytes(data, sessionTextKey, s.Text)
	} else {
		data, err = sjson.DeleteBytes(data, sessionTextKey)
	}
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write session %s", path)
	}
	return nil
}
