package textbox

import (
	"strings"
)

var ingameReplacer = strings.NewReplacer(
	"Pokemon", `Pok\emon`,
	"é", `\e`,
	"–", "-",
	"“", `"`,
	"”", `"`,
)

// CreateIngameText converts display text into the escaped form the game's
// text compiler reads. The first line break of a textbox becomes \n, later
// ones \l, and a blank line becomes \p. Quotes and dollar signs are escaped
// unless a backslash already precedes them, so encoding twice is harmless.
func CreateIngameText(text string) string {
	text = strings.TrimSpace(text)
	text = ingameReplacer.Replace(text)
	text = ReplaceWithMacros(text, Colours)
	text = ReplaceWithMacros(text, OtherReplacements)

	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))
	newTextbox := true

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if r == ' ' && i+1 < len(runes) && (runes[i+1] == ' ' || runes[i+1] == '\n') {
			continue
		}

		switch r {
		case '\n':
			if i+1 >= len(runes) {
				continue
			}
			switch {
			case runes[i+1] == '\n':
				b.WriteString(`\p`)
				newTextbox = true
				for i+1 < len(runes) && runes[i+1] == '\n' {
					i++
				}
			case newTextbox:
				b.WriteString(`\n`)
				newTextbox = false
			default:
				b.WriteString(`\l`)
			}

		case '"', '$':
			if i == 0 || runes[i-1] != '\\' {
				b.WriteByte('\\')
			}
			b.WriteRune(r)

		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

var ingameUnescaper = strings.NewReplacer(`\"`, `"`, `\$`, `$`)

// DecodeIngameText turns compiler text back into display text.
func DecodeIngameText(wire string) string {
	return FormatStringForDisplay(ingameUnescaper.Replace(wire), false, nil)
}
