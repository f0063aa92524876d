package textbox

func runeAt(text []rune, i int) rune {
	if i < 0 || i >= len(text) {
		return 0
	}
	return text[i]
}

// FindLineStart returns the offset of the first character of the line that
// contains offset lineEnd. A lineEnd that sits on a newline belongs to the
// line the newline ends.
func FindLineStart(text string, lineEnd int) int {
	runes := []rune(text)
	if lineEnd <= 0 {
		return 0
	}
	if lineEnd > len(runes) {
		lineEnd = len(runes)
	}

	if runeAt(runes, lineEnd) == '\n' {
		lineEnd--
	}

	start := lineEnd
	for start > 0 && runeAt(runes, start) != '\n' {
		start--
	}
	if runeAt(runes, start) == '\n' {
		start++
	}
	return start
}

// FindLineEnd returns the offset of the newline ending the line under cursor,
// or the length of text on the last line.
func FindLineEnd(text string, cursor int) int {
	runes := []rune(text)
	if cursor >= len(runes) {
		return cursor
	}
	if cursor < 0 {
		cursor = 0
	}

	i := cursor
	for i < len(runes) && runes[i] != '\n' {
		i++
	}
	return i
}

// LineEndsTextbox reports whether the line starting at lineStart is followed
// by a blank line.
func LineEndsTextbox(text string, lineStart int) bool {
	runes := []rune(text)
	if lineStart < 0 {
		lineStart = 0
	}
	for i := lineStart; i < len(runes); i++ {
		if runes[i] == '\n' {
			return i+1 < len(runes) && runes[i+1] == '\n'
		}
	}
	return false
}

// LineHasScrollAfterIt is the offset based form of LineHasScrollAfterItByLines
// used for the line under the caret. An unlocked final line that continues a
// textbox reports true so that its budget matches LineTotalWidth.
func LineHasScrollAfterIt(text string, lineStart, lineEnd int, finalLineLocked bool) bool {
	runes := []rune(text)
	if finalLineLocked && lineEnd >= len(runes) {
		return false
	}

	if lineStart <= 0 {
		return LineEndsTextbox(text, 0)
	}

	if runeAt(runes, lineStart-1) == '\n' {
		if LineEndsTextbox(text, lineStart) {
			return true
		}
		if lineStart == 1 {
			return false
		}
		if runeAt(runes, lineStart-2) == '\n' {
			return false
		}
	}
	return true
}

// LineInfo describes the line under the caret.
type LineInfo struct {
	Start        int
	End          int
	Width        int
	TotalWidth   int
	CharCount    int
	MaxCharCount int
}

// Overflow reports whether the line is wider than its budget.
func (l LineInfo) Overflow() bool {
	return l.Width > l.TotalWidth
}

// CursorLineInfo measures the line containing cursor. The character counts
// assume an average glyph width of 5.6 pixels; a full width line holds 36.
func (m *Metrics) CursorLineInfo(text string, cursor int, finalLineLocked bool) LineInfo {
	end := FindLineEnd(text, cursor)
	start := FindLineStart(text, end)
	runes := []rune(text)
	if end > len(runes) {
		end = len(runes)
	}
	if start > end {
		start = end
	}

	info := LineInfo{
		Start:      start,
		End:        end,
		Width:      m.StringWidth(string(runes[start:end])),
		TotalWidth: FullLineWidth,
	}
	if LineHasScrollAfterIt(text, start, end, finalLineLocked) {
		info.TotalWidth = SemiLineWidth
	}

	info.CharCount = info.Width * 5 / 28
	if info.TotalWidth == SemiLineWidth {
		info.MaxCharCount = SemiLineWidth * 5 / 28
	} else {
		info.MaxCharCount = 36
	}
	return info
}
