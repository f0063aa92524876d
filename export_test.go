package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"frtext/textbox"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportTXTAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	display := "Hi [PLAYER]!\n\nBye…"

	require.NoError(t, exportTXT(path, textbox.CreateIngameText(display)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Hi [PLAYER]!\\pBye[.]\n", string(data))

	got, err := readTXT(path)
	require.NoError(t, err)
	assert.Equal(t, display, got)
}

func TestReadTXTMissing(t *testing.T) {
	_, err := readTXT(filepath.Join(t.TempDir(), "none.txt"))
	assert.Error(t, err)
}

func TestExportPNG(t *testing.T) {
	dir := t.TempDir()
	text := "🔴Hi [PLAYER]!\n\n" + strings.Repeat("A", 40)

	for _, dark := range []bool{false, true} {
		path := filepath.Join(dir, "preview.png")
		style := pngStyle{dark: dark, textColour: "blue"}
		require.NoError(t, exportPNG(path, text, style, textbox.DefaultMetrics()))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}

	assert.Error(t, exportPNG(filepath.Join(dir, "empty.png"), "", pngStyle{}, textbox.DefaultMetrics()))
}

func TestWithExtension(t *testing.T) {
	assert.Equal(t, "a.txt", withExtension("a", ".txt"))
	assert.Equal(t, "a.TXT", withExtension("a.TXT", ".txt"))
	assert.Equal(t, "a.txt.png", withExtension("a.txt", ".png"))
}

func TestNamedColour(t *testing.T) {
	r, g, b, _ := namedColour("red").RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)

	r, g, b, _ = namedColour("nope").RGBA()
	assert.Equal(t, []uint32{0, 0, 0}, []uint32{r, g, b})
}
