package main

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"frtext/textbox"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// exportTXT writes the text in the game compiler's format.
func exportTXT(filename, wire string) error {
	if err := os.WriteFile(filename, []byte(wire+"\n"), 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", filename)
	}
	return nil
}

// readTXT loads a file written by exportTXT back as display text.
func readTXT(filename string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", filename)
	}
	wire := strings.TrimRight(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	return textbox.DecodeIngameText(strings.ReplaceAll(wire, "\n", "")), nil
}

type pngStyle struct {
	dark       bool
	locked     bool
	textColour string
}

// exportPNG draws every line of text at twice the in-game pixel size, over a
// gauge of the width the line may use. Lines past their budget are marked red.
func exportPNG(filename, text string, style pngStyle, metrics *textbox.Metrics) error {
	if text == "" {
		return errors.New("nothing to export")
	}

	const (
		scale      = 2.0
		lineHeight = 32.0
		padding    = 16.0
		labelWidth = 96.0
	)

	lines := strings.Split(text, "\n")
	imageWidth := int(textbox.FullLineWidth*scale + 2*padding + labelWidth)
	imageHeight := int(float64(len(lines))*lineHeight + 2*padding)

	dc := gg.NewContext(imageWidth, imageHeight)
	background, foreground := color.Color(color.White), color.Color(color.Black)
	if style.dark {
		background, foreground = color.RGBA{0x1e, 0x1e, 0x1e, 0xff}, color.White
	}
	dc.SetColor(background)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return errors.Wrap(err, "failed to parse font")
	}
	dc.SetFontFace(truetype.NewFace(ttfFont, &truetype.Options{
		Size:    14,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	base := textbox.DisplayColour(style.textColour, style.dark)
	current := base
	for i, line := range lines {
		y := padding + float64(i)*lineHeight
		total := textbox.LineTotalWidth(lines, i, style.locked)
		width := metrics.StringWidth(line)

		drawGauge(dc, padding, y, width, total, scale, lineHeight-8)
		current = drawLine(dc, []rune(line), padding, y+lineHeight-14, current, style.dark, scale, metrics)

		dc.SetColor(foreground)
		dc.DrawString(fmt.Sprintf("%d/%d", width, total), padding+textbox.FullLineWidth*scale+8, y+lineHeight-14)
	}

	if err := dc.SavePNG(filename); err != nil {
		return errors.Wrapf(err, "failed to write %s", filename)
	}
	return nil
}

func drawGauge(dc *gg.Context, x, y float64, width, total int, scale, height float64) {
	used := min(width, total)
	dc.SetColor(color.RGBA{0xc8, 0xe6, 0xc9, 0xff})
	dc.DrawRectangle(x, y, float64(used)*scale, height)
	dc.Fill()

	if width > total {
		dc.SetColor(color.RGBA{0xef, 0x9a, 0x9a, 0xff})
		dc.DrawRectangle(x+float64(total)*scale, y, float64(width-total)*scale, height)
		dc.Fill()
	}

	dc.SetLineWidth(1.0)
	dc.SetColor(color.Gray{0x90})
	dc.DrawRectangle(x, y, float64(total)*scale, height)
	dc.Stroke()
}

// drawLine draws one line with each letter advanced by its in-game width and
// returns the colour in effect at its end.
func drawLine(dc *gg.Context, runes []rune, x, baseline float64, current string, dark bool, scale float64, metrics *textbox.Metrics) string {
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if c, ok := textbox.GlyphColour(r, dark); ok {
			current = c
			dc.SetColor(namedColour(current))
			dc.DrawCircle(x+3, baseline-5, 3)
			dc.Fill()
			continue
		}

		if tok, ok := textbox.ScanMacro(runes, i); ok && tok.Closed {
			advance := float64(metrics.MacroWidth(tok.Name)) * scale
			dc.SetColor(color.Gray{0x80})
			dc.DrawStringAnchored(tok.Name, x+advance/2, baseline, 0.5, 0)
			x += advance
			i = tok.End - 1
			continue
		}

		dc.SetColor(namedColour(current))
		dc.DrawString(string(r), x, baseline)
		x += float64(metrics.CharWidth(r, runeAfter(runes, i))) * scale
	}
	return current
}

func runeAfter(runes []rune, i int) rune {
	if i+1 >= len(runes) {
		return '\n'
	}
	return runes[i+1]
}

func namedColour(name string) color.Color {
	c, ok := terminalColours[name]
	if !ok {
		return color.Black
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(string(c), "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.Black
	}
	return color.RGBA{r, g, b, 0xff}
}

func withExtension(filename, ext string) string {
	if strings.HasSuffix(strings.ToLower(filename), ext) {
		return filename
	}
	return filename + ext
}

// exportFile runs a save for the current file operation.
func (m *model) exportFile(filename string) error {
	switch m.fileOp {
	case FileOpSaveTXT:
		path := m.config.GetSavePath(withExtension(filename, ".txt"))
		if err := exportTXT(path, m.editor.IngameText()); err != nil {
			return err
		}
		m.successMessage = "Saved " + path
	case FileOpSavePNG:
		path := m.config.GetSavePath(withExtension(filename, ".png"))
		style := pngStyle{
			dark:       m.darkMode,
			locked:     m.editor.FinalLineLocked(),
			textColour: m.textColour,
		}
		if err := exportPNG(path, m.editor.Text(), style, textbox.DefaultMetrics()); err != nil {
			return err
		}
		m.successMessage = "Exported " + path
	}
	return nil
}
