package textbox

import (
	"strings"
)

// IsPunctuation reports whether r ends a sentence. Ellipses do not.
func IsPunctuation(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isUpperASCII(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// Prettify rewraps text so that each sentence starts a new textbox, then
// formats every textbox on its own so its first line may use the full width.
// An ellipsis followed by a capitalised word also ends a textbox unless a
// pause sits between them.
func Prettify(text string, f *Formatter) string {
	if f == nil {
		f = NewFormatter()
	}

	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "  ", " ")
	text = strings.ReplaceAll(text, "  ", " ")
	runes := []rune(text)

	var b strings.Builder
	inMacro := false
	skipNext := false
	skipSpace := false

	for i, r := range runes {
		if skipNext {
			skipNext = false
			continue
		}

		if !skipSpace || r != ' ' {
			b.WriteRune(r)
		}
		if !IsColour(r) {
			skipSpace = false
		}

		switch {
		case r == '[':
			inMacro = true
		case r == ']':
			inMacro = false
		case inMacro:
		case IsPunctuation(r):
			if i+1 < len(runes) {
				if runes[i+1] == '"' {
					// Keep the closing quote in this textbox.
					b.WriteRune('"')
					skipNext = true
				} else if IsPunctuation(runes[i+1]) {
					continue
				}
			}
			b.WriteString("\n\n")
			skipSpace = true
		case r == '…' && i+1 < len(runes):
			skipSpace = prettifyEllipsis(&b, runes, i)
		}
	}

	parts := strings.Split(b.String(), "\n\n")
	for i, p := range parts {
		parts[i] = f.Format(p, false, nil)
	}

	out := strings.TrimSpace(strings.Join(parts, "\n\n"))
	out = strings.TrimSpace(f.Format(out, false, nil))
	// Lines opening with an ellipsis run straight into their first word.
	out = strings.Replace(out, "\n… ", "\n…", 1)
	out = strings.Replace(out, "\n… ", "\n…", 1)
	return out
}

// prettifyEllipsis handles the ellipsis at runes[i] and reports whether a
// following space should be dropped.
func prettifyEllipsis(b *strings.Builder, runes []rune, i int) bool {
	next := NextLetterIndex(runes, i+1)
	nextLetter := runeAt(runes, next)

	leadsLine := i == 0 || runes[i-1] == ' '
	if leadsLine && nextLetter == '…' {
		leadsLine = false
	}
	if leadsLine {
		return true
	}

	if nextLetter != ' ' && !IsPunctuation(nextLetter) {
		// Sandwiched between two words: "Hi…there".
		b.WriteRune(' ')
		return false
	}

	second := NextLetterIndex(runes, next+1)
	if second >= len(runes) {
		return false
	}

	switch {
	case isUpperASCII(runes[second]):
		k := i + 1
		for k < len(runes) && runes[k] == ' ' {
			k++
		}
		if !IsPause(runes, k) {
			b.WriteString("\n\n")
			return true
		}
	case IsPunctuation(runes[second]):
		return true
	}
	return false
}
