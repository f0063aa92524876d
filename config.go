package main

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
)

//go:embed resources/defaultConfig.ini
var defaultConfig []byte

type Config struct {
	Editor struct {
		LockFinalLine bool   `ini:"LockFinalLine"`
		MaxBlankLines int    `ini:"MaxBlankLines"`
		UndoLimit     int    `ini:"UndoLimit"`
		DarkMode      bool   `ini:"DarkMode"`
		TextColour    string `ini:"TextColour"`
	} `ini:"Editor"`
	Files struct {
		SaveDirectory string `ini:"SaveDirectory"`
		AutoSave      bool   `ini:"AutoSave"`
		SessionFile   string `ini:"SessionFile"`
		LogFile       string `ini:"LogFile"`
	} `ini:"Files"`
}

func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".frtextrc")
}

// loadConfig reads the built in defaults and overlays the rc file at path
// when it exists.
func loadConfig(path string) (*Config, error) {
	options := ini.LoadOptions{
		SkipUnrecognizableLines: true,
	}

	sources := []interface{}{defaultConfig}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			sources = append(sources, path)
		}
	}

	iniFile, err := ini.LoadSources(options, sources[0], sources[1:]...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}

	config := &Config{}
	if err := iniFile.MapTo(config); err != nil {
		return nil, errors.Wrapf(err, "failed to map config %s", path)
	}
	config.normalize()
	return config, nil
}

func (c *Config) normalize() {
	c.Editor.TextColour = strings.ToLower(strings.TrimSpace(c.Editor.TextColour))
	if c.Editor.TextColour == "" {
		c.Editor.TextColour = "black"
	}
	if c.Editor.UndoLimit < 0 {
		c.Editor.UndoLimit = 0
	}

	dir := strings.TrimSpace(c.Files.SaveDirectory)
	if dir == "" {
		c.Files.SaveDirectory = ""
		return
	}
	if strings.HasPrefix(dir, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(homeDir, strings.TrimPrefix(dir, "~"))
		}
	}
	if !filepath.IsAbs(dir) {
		if absPath, err := filepath.Abs(dir); err == nil {
			dir = absPath
		}
	}
	c.Files.SaveDirectory = dir
}

func (c *Config) GetSavePath(filename string) string {
	if c.Files.SaveDirectory == "" || filepath.IsAbs(filename) {
		return filename
	}
	os.MkdirAll(c.Files.SaveDirectory, 0755)
	return filepath.Join(c.Files.SaveDirectory, filename)
}
