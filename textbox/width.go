package textbox

import "strings"

// Width budgets of a line in the in-game textbox. A line followed by a scroll
// arrow loses the space the arrow takes up.
const (
	FullLineWidth = 206
	SemiLineWidth = 196
)

// StringWidth returns the pixel width of the first line of text. Macros count
// as their fixed width and a space that ends the line takes no room.
func (m *Metrics) StringWidth(text string) int {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	return m.widthBefore(text, '\n')
}

// widthBefore returns the width of text when after follows it on the same
// line. An after of '\n' measures text as the end of its line.
func (m *Metrics) widthBefore(text string, after rune) int {
	runes := []rune(text)
	width := 0
	inMacro := false
	var macro []rune

	for i, r := range runes {
		switch {
		case r == '[':
			inMacro = true
			macro = macro[:0]
		case inMacro:
			if r == ']' {
				inMacro = false
				width += m.MacroWidth(string(macro))
			} else {
				macro = append(macro, r)
			}
		default:
			next := after
			if i+1 < len(runes) {
				next = runes[i+1]
			}
			if r == ' ' && next == '\n' {
				return width
			}
			width += m.CharWidth(r, next)
		}
	}
	return width
}

// LineTotalWidth returns the width budget of lines[i].
//
// A line gets the full width unless a scroll arrow will be drawn after it. An
// unlocked final line that continues a textbox is kept to the shorter width so
// that typing on the next line does not reflow it.
func LineTotalWidth(lines []string, i int, finalLineLocked bool) int {
	total := FullLineWidth
	if LineHasScrollAfterItByLines(lines, i) {
		total = SemiLineWidth
	}

	if i+1 >= len(lines) && !finalLineLocked && i > 0 && lines[i-1] != "" {
		total = SemiLineWidth
	}
	return total
}

// LineHasScrollAfterItByLines reports whether the game draws a scroll arrow
// after lines[i]. The line before the first line counts as blank.
func LineHasScrollAfterItByLines(lines []string, i int) bool {
	if i >= len(lines)-1 {
		return false
	}

	prevBlank := i == 0 || lines[i-1] == ""
	nextBlank := lines[i+1] == ""
	twoMore := i+2 < len(lines)

	if prevBlank && nextBlank && twoMore {
		return true
	}
	return !prevBlank
}
