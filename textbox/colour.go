package textbox

import (
	"strings"
)

// ColouredRune is a character of display text with the colour it is drawn in.
// An empty Colour means the text's base colour.
type ColouredRune struct {
	Rune   rune
	Colour string
}

// ColourRunes pairs every character of text with its colour. A colour glyph
// takes its own colour and holds until the next colour glyph or the end of
// its textbox.
func ColourRunes(text string, dark bool) []ColouredRune {
	out := make([]ColouredRune, 0, len(text))
	current := ""
	prev := rune(0)
	for _, r := range text {
		if r == '\n' && prev == '\n' {
			current = ""
		}
		if c, ok := GlyphColour(r, dark); ok {
			current = c
		}
		out = append(out, ColouredRune{Rune: r, Colour: current})
		prev = r
	}
	return out
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// ColouredHTML renders text as one coloured span per character.
func ColouredHTML(text string, dark bool) string {
	var b strings.Builder
	for _, cr := range ColourRunes(text, dark) {
		if cr.Rune == '\n' {
			b.WriteString("<br/>")
			continue
		}

		colour := cr.Colour
		if colour == "" {
			colour = "inherit"
		}
		b.WriteString(`<span style="color: `)
		b.WriteString(colour)
		b.WriteString(`">`)
		b.WriteString(htmlEscaper.Replace(string(cr.Rune)))
		b.WriteString("</span>")
	}

	html := b.String()
	if strings.HasSuffix(html, "<br/>") {
		// Keep the empty last line visible.
		html += `<span style="color: inherit">&nbsp;</span>`
	}
	return html
}
