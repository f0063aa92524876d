package textbox

import (
	"strings"
)

// Replacement pairs a macro name with the glyph shown in its place while
// editing.
type Replacement struct {
	Name  string
	Glyph string
}

// Colours are the text colour macros. Their glyphs take up no width.
var Colours = []Replacement{
	{"BLACK", "⚫"},
	{"GREEN", "🟢"},
	{"BLUE", "🔵"},
	{"RED", "🔴"},
	{"ORANGE", "🟠"},
}

// OtherReplacements are the non-colour macros that are shown as a single
// glyph while editing.
var OtherReplacements = []Replacement{
	{".", "…"},
	{"ARROW_UP", "↑"},
	{"ARROW_DOWN", "↓"},
	{"ARROW_LEFT", "←"},
	{"ARROW_RIGHT", "→"},
	{"A_BUTTON", "🅰"},
	{"B_BUTTON", "🅱"},
}

var lightPalette = map[rune]string{
	'⚫': "black",
	'🟢': "green",
	'🔵': "blue",
	'🔴': "red",
	'🟠': "orange",
}

var darkPalette = map[rune]string{
	'⚫': "black",
	'🟢': "forestgreen",
	'🔵': "mediumblue",
	'🔴': "indianred",
	'🟠': "orange",
}

// ReplaceMacros replaces every [NAME] in text with the glyph from table.
func ReplaceMacros(text string, table []Replacement) string {
	for _, r := range table {
		text = strings.ReplaceAll(text, "["+r.Name+"]", r.Glyph)
	}
	return text
}

// ReplaceWithMacros is the inverse of ReplaceMacros. Because the formatter
// upper-cases macro names before substituting glyphs, "[red]" becomes "🔴"
// and comes back as "[RED]".
func ReplaceWithMacros(text string, table []Replacement) string {
	for _, r := range table {
		text = strings.ReplaceAll(text, r.Glyph, "["+r.Name+"]")
	}
	return text
}

// IsColour reports whether r is one of the colour glyphs.
func IsColour(r rune) bool {
	switch r {
	case '⚫', '🟢', '🔵', '🔴', '🟠':
		return true
	}
	return false
}

// GlyphColour returns the display colour for a colour glyph.
func GlyphColour(r rune, dark bool) (string, bool) {
	palette := lightPalette
	if dark {
		palette = darkPalette
	}
	c, ok := palette[r]
	return c, ok
}

// DisplayColour maps a colour name such as "green" onto the colour used to
// draw it. Unknown names are returned unchanged.
func DisplayColour(colour string, dark bool) string {
	upper := strings.ToUpper(colour)
	for _, c := range Colours {
		if c.Name != upper {
			continue
		}
		glyph := []rune(c.Glyph)[0]
		if display, ok := GlyphColour(glyph, dark); ok {
			return display
		}
	}
	return colour
}

// MacroKind classifies the name inside a macro's brackets.
type MacroKind int

const (
	MacroUnknown MacroKind = iota
	MacroPause
	MacroPlayer
	MacroRival
	MacroBuffer
	MacroColour
	MacroSymbol
)

func (k MacroKind) String() string {
	switch k {
	case MacroPause:
		return "pause"
	case MacroPlayer:
		return "player"
	case MacroRival:
		return "rival"
	case MacroBuffer:
		return "buffer"
	case MacroColour:
		return "colour"
	case MacroSymbol:
		return "symbol"
	}
	return "unknown"
}

// MacroToken is a macro found in a run of text. Start and End are rune
// offsets; End is exclusive and covers the argument bracket of a pause.
// Closed reports whether the name bracket was closed; an unclosed macro is
// always MacroUnknown.
type MacroToken struct {
	Kind   MacroKind
	Name   string
	Arg    string
	Start  int
	End    int
	Closed bool
}

// ScanMacro reads the macro that starts at text[i]. It reports false when
// text[i] is not an opening bracket. An unclosed macro runs to the end of
// text.
func ScanMacro(text []rune, i int) (MacroToken, bool) {
	if i < 0 || i >= len(text) || text[i] != '[' {
		return MacroToken{}, false
	}

	name, end, closed := scanBracket(text, i)
	tok := MacroToken{
		Name:   name,
		Start:  i,
		End:    end,
		Closed: closed,
	}
	if !closed {
		return tok, true
	}

	tok.Kind = classifyMacro(name)
	if tok.Kind == MacroPause && end < len(text) && text[end] == '[' {
		arg, argEnd, _ := scanBracket(text, end)
		tok.Arg = arg
		tok.End = argEnd
	}
	return tok, true
}

func scanBracket(text []rune, i int) (string, int, bool) {
	j := i + 1
	for j < len(text) && text[j] != ']' {
		j++
	}
	if j >= len(text) {
		return string(text[i+1:]), len(text), false
	}
	return string(text[i+1 : j]), j + 1, true
}

func classifyMacro(name string) MacroKind {
	switch name {
	case "PAUSE":
		return MacroPause
	case "PLAYER":
		return MacroPlayer
	case "RIVAL":
		return MacroRival
	}
	if strings.HasPrefix(name, "BUFFER") {
		return MacroBuffer
	}
	for _, c := range Colours {
		if c.Name == name {
			return MacroColour
		}
	}
	for _, o := range OtherReplacements {
		if o.Name == name {
			return MacroSymbol
		}
	}
	return MacroUnknown
}

// IsPause reports whether a [PAUSE] macro starts at text[i].
func IsPause(text []rune, i int) bool {
	tok, ok := ScanMacro(text, i)
	return ok && tok.Kind == MacroPause
}

// NextLetterIndex returns the index of the next printed letter at or after
// i. Colours, pauses and other silent macros are skipped. Name buffers
// count as letters and the index of the first letter of their name is
// returned.
func NextLetterIndex(text []rune, i int) int {
	for i < len(text) {
		if IsColour(text[i]) {
			i++
			continue
		}

		tok, ok := ScanMacro(text, i)
		if !ok {
			return i
		}

		switch tok.Kind {
		case MacroPlayer, MacroRival, MacroBuffer:
			return i + 1
		default:
			i = tok.End
		}
	}
	return len(text)
}
