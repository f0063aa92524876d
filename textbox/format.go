package textbox

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxBlankLines is the longest run of blank lines the formatter keeps.
// One blank line separates textboxes.
const DefaultMaxBlankLines = 2

// Formatter wraps display text to the textbox width.
type Formatter struct {
	metrics       *Metrics
	maxBlankLines int
}

type FormatterOption func(*Formatter)

// WithMetrics measures text with m instead of the built-in font table.
func WithMetrics(m *Metrics) FormatterOption {
	return func(f *Formatter) {
		if m != nil {
			f.metrics = m
		}
	}
}

// WithMaxBlankLines caps runs of blank lines at n. A value below 1 keeps every
// blank line.
func WithMaxBlankLines(n int) FormatterOption {
	return func(f *Formatter) {
		f.maxBlankLines = n
	}
}

func NewFormatter(opts ...FormatterOption) *Formatter {
	f := &Formatter{
		metrics:       DefaultMetrics(),
		maxBlankLines: DefaultMaxBlankLines,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Metrics returns the font table the formatter measures with.
func (f *Formatter) Metrics() *Metrics {
	return f.metrics
}

// FormatStringForDisplay formats text with the default formatter.
func FormatStringForDisplay(text string, finalLineLocked bool, change *TextChange) string {
	return NewFormatter().Format(text, finalLineLocked, change)
}

// Wire escapes and editor conventions pasted into the text. Applied in order.
var displayReplacements = [][2]string{
	{`\pn`, "\n\n"},
	{`\n`, "\n"},
	{`\p`, "\n\n"},
	{`\l`, "\n"},
	{"[.]", "…"},
	{"...", "…"},
	{"…]", "…"},
	{"[[", "["},
	{"]]", "]"},
	{`\e`, "é"},
	{"_FR]", "]"},
	{"_EM]", "]"},
}

func normaliseDisplayText(text string) string {
	for _, r := range displayReplacements {
		text = strings.ReplaceAll(text, r[0], r[1])
	}
	return text
}

// FormatTwice formats text and, if that changed it, formats the result again.
// Pasted escapes and brackets can leave text that only settles on the second
// pass.
func (f *Formatter) FormatTwice(text string, finalLineLocked bool, change *TextChange) string {
	formatted := f.Format(text, finalLineLocked, change)
	if formatted != text {
		formatted = f.Format(formatted, finalLineLocked, nil)
	}
	return formatted
}

// Format greedily wraps every line of text to its width budget and swaps
// colour and symbol macros for their glyphs. change is the edit that produced
// text; when it is a freshly typed "[" without a matching "]" on its line, the
// bracket is closed.
func (f *Formatter) Format(text string, finalLineLocked bool, change *TextChange) string {
	text = normaliseDisplayText(text)
	if finalLineLocked {
		text = trimTrailingBlankLines(text)
	}

	lines := strings.Split(text, "\n")
	finalLines := make([][]string, 0, len(lines))
	addedLine := false
	charsProcessed := 0

	for i, original := range lines {
		trimmed := strings.TrimLeftFunc(original, unicode.IsSpace)
		offset := utf8.RuneCountInString(original) - utf8.RuneCountInString(trimmed)
		line := []rune(trimmed)
		lineStart := charsProcessed + offset
		charsProcessed += utf8.RuneCountInString(original) + 1

		// finalLine holds the finished words of the line being built and
		// currWord the word still being read. lastWord is where the most
		// recently finished word starts in finalLine.
		var finalLine, currWord []string
		lastWord := 0
		width := 0
		inMacro := false
		var macro strings.Builder

		if addedLine {
			// The previous line was split off by the formatter; continue it.
			if prev := finalLines[len(finalLines)-1]; len(line) > 0 && len(prev) > 0 {
				finalLines = finalLines[:len(finalLines)-1]
				finalLine = append(finalLine, prev...)
				if prev[len(prev)-1] != " " {
					finalLine = append(finalLine, " ")
				}
				lastWord = len(finalLine)
				width = f.metrics.widthBefore(strings.Join(finalLine, ""), line[0])
			}
			addedLine = false
		}

		if len(line) == 0 && f.exceedsBlankCap(lines, i) {
			continue
		}

		prevBlank := len(finalLines) == 0 || len(finalLines[len(finalLines)-1]) == 0
		totalWidth := lineBudget(lines, i, prevBlank, finalLineLocked)

		for j, r := range line {
			letter := string(r)

			if r == ' ' && j > 0 && line[j-1] == ' ' {
				continue
			}
			next := nextKept(line, j)

			switch {
			case r == '[':
				inMacro = true
				macro.Reset()

				finalLine = append(finalLine, currWord...)
				currWord = nil

				if opensBracket(line, j, lineStart+j, change) {
					letter = "[]"
					inMacro = false
				}

			case inMacro:
				if r == ']' {
					inMacro = false
					width += f.metrics.MacroWidth(macro.String())
				} else {
					if closesBeforeOpening(line, j) {
						letter = strings.ToUpper(letter)
					}
					macro.WriteString(letter)
				}

			default:
				if r != ' ' || next != '\n' {
					width += f.metrics.CharWidth(r, next)
				}
			}

			switch r {
			case ' ', '-':
				lastWord = len(finalLine)
				finalLine = append(finalLine, currWord...)
				finalLine = append(finalLine, letter)
				currWord = nil
			default:
				currWord = append(currWord, letter)
			}

			if width <= totalWidth {
				continue
			}

			if i+1 >= len(lines) && finalLineLocked {
				// Nothing may follow a locked final line.
				if len(currWord) > 0 {
					currWord = currWord[:len(currWord)-1]
				} else if len(finalLine) > 0 {
					finalLine = finalLine[:len(finalLine)-1]
				}
				break
			}

			for width > totalWidth {
				n := len(finalLine)
				pending := make([]string, 0, n+len(currWord))
				pending = append(append(pending, finalLine...), currWord...)

				// Break before the word being read, or before a word that
				// a dash just ended.
				cut := n
				if r == '-' && len(currWord) == 0 {
					cut = lastWord
				}
				cut = f.breakAt(pending, cut, totalWidth)

				finalLines = append(finalLines, trimTrailingSpaces(pending[:cut:cut]))
				if cut < n {
					finalLine = pending[cut:n:n]
					currWord = pending[n:]
				} else {
					finalLine = nil
					currWord = pending[cut:]
				}
				lastWord = max(lastWord-cut, 0)

				totalWidth = lineBudget(lines, i, false, finalLineLocked)
				width = f.metrics.widthBefore(strings.Join(pending[cut:], ""), next)
				addedLine = true
			}
		}

		finalLine = append(finalLine, currWord...)
		if len(finalLine) == 0 && addedLine {
			// The break consumed the rest of the line.
			addedLine = false
			continue
		}
		finalLines = append(finalLines, finalLine)
	}

	joined := make([]string, len(finalLines))
	for i, l := range finalLines {
		joined[i] = strings.Join(l, "")
	}

	out := strings.Join(joined, "\n")
	out = ReplaceMacros(out, Colours)
	return ReplaceMacros(out, OtherReplacements)
}

// breakAt returns how many of tokens go on the line that is being ended,
// preferring cut. The line must not be empty and must fit in budget; when
// the preferred break gives no such line, the word is split instead.
func (f *Formatter) breakAt(tokens []string, cut, budget int) int {
	fits := func(k int) bool {
		head := trimTrailingSpaces(tokens[:k])
		return len(head) > 0 && f.metrics.StringWidth(strings.Join(head, "")) <= budget
	}

	if fits(cut) {
		return cut
	}
	for k := len(tokens) - 1; k > 1; k-- {
		if fits(k) {
			return k
		}
	}
	return 1
}

func trimTrailingSpaces(tokens []string) []string {
	for len(tokens) > 0 && tokens[len(tokens)-1] == " " {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}

// trimTrailingBlankLines drops the newlines and whitespace-only lines that
// end text.
func trimTrailingBlankLines(text string) string {
	for {
		text = strings.TrimRight(text, "\n")
		i := strings.LastIndexByte(text, '\n')
		if i < 0 || !isBlank(text[i+1:]) {
			return text
		}
		text = text[:i]
	}
}

// lineBudget is the width the formatter allows the line it builds from
// lines[i], given whether the line written before it is blank. It is never
// more than LineTotalWidth gives the finished line.
func lineBudget(lines []string, i int, prevBlank, finalLineLocked bool) int {
	last := i+1 >= len(lines)
	if !prevBlank {
		if last && finalLineLocked {
			return FullLineWidth
		}
		return SemiLineWidth
	}
	if i+2 < len(lines) && isBlank(lines[i+1]) {
		return SemiLineWidth
	}
	return FullLineWidth
}

// nextKept returns the rune after line[i] once runs of spaces are collapsed,
// treating the end of the line as '\n'.
func nextKept(line []rune, i int) rune {
	k := i + 1
	if line[i] == ' ' {
		for k < len(line) && line[k] == ' ' {
			k++
		}
	}
	if k >= len(line) {
		return '\n'
	}
	return line[k]
}

// exceedsBlankCap reports whether the blank lines[i] would lengthen a run of
// blank lines past the cap.
func (f *Formatter) exceedsBlankCap(lines []string, i int) bool {
	n := f.maxBlankLines
	if n < 1 || i < n {
		return false
	}
	for k := i - n; k < i; k++ {
		if strings.TrimLeftFunc(lines[k], unicode.IsSpace) != "" {
			return false
		}
	}
	return true
}

// opensBracket reports whether the "[" at line[j] was just typed and has no
// "]" after it on its line. pos is the offset of the bracket in the text the
// change produced.
func opensBracket(line []rune, j, pos int, change *TextChange) bool {
	if change == nil || change.Type != SingleInsert || change.Inserted != "[" {
		return false
	}
	if pos < change.Start {
		return false
	}
	for _, r := range line[j:] {
		if r == ']' {
			return false
		}
	}
	return true
}

// closesBeforeOpening reports whether a "]" follows line[j] before any "[".
func closesBeforeOpening(line []rune, j int) bool {
	for _, r := range line[j:] {
		switch r {
		case '[':
			return false
		case ']':
			return true
		}
	}
	return false
}
