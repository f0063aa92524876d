package main

import (
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", errors.Wrap(err, "failed to read clipboard")
	}
	return text, nil
}

func writeClipboardText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return errors.Wrap(err, "failed to write clipboard")
	}
	return nil
}

func isRTF(text string) bool {
	return strings.HasPrefix(text, "{\\rtf")
}

func isHTML(text string) bool {
	trimmed := strings.TrimSpace(text)
	return strings.HasPrefix(trimmed, "<") &&
		(strings.Contains(trimmed, "<html") || strings.Contains(trimmed, "<body") ||
			strings.Contains(trimmed, "<div") || strings.Contains(trimmed, "<p"))
}

// rtfText keeps the plain text of an RTF document. \par and \line become
// newlines and \'hh escapes are decoded as Latin-1.
func rtfText(rtf string) string {
	var b strings.Builder
	runes := []rune(rtf)

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '{', '}', '\r', '\n':
			continue
		case '\\':
		default:
			b.WriteRune(r)
			continue
		}

		if i+1 >= len(runes) {
			break
		}
		next := runes[i+1]
		switch {
		case next == '\\' || next == '{' || next == '}':
			b.WriteRune(next)
			i++
		case next == '\'' && i+3 < len(runes):
			if v, err := strconv.ParseUint(string(runes[i+2:i+4]), 16, 8); err == nil {
				b.WriteRune(rune(v))
			}
			i += 3
		case isASCIILetter(next):
			j := i + 1
			for j < len(runes) && isASCIILetter(runes[j]) {
				j++
			}
			word := string(runes[i+1 : j])
			for j < len(runes) && (runes[j] == '-' || (runes[j] >= '0' && runes[j] <= '9')) {
				j++
			}
			if j < len(runes) && runes[j] == ' ' {
				j++
			}
			if word == "par" || word == "line" {
				b.WriteRune('\n')
			}
			i = j - 1
		default:
			i++
		}
	}
	return b.String()
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

var htmlEntities = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", "\"",
	"&#39;", "'",
	"&nbsp;", " ",
	"&amp;", "&",
)

func htmlText(html string) string {
	html = strings.NewReplacer("<br>", "\n", "<br/>", "\n", "<br />", "\n", "</p>", "\n").Replace(html)

	var b strings.Builder
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return htmlEntities.Replace(b.String())
}

// cleanClipboardText turns pasted text into plain editor text: rich text is
// flattened, line endings become \n, tabs become spaces and the result is
// NFC normalised so that é is a single rune.
func cleanClipboardText(text string) string {
	if text == "" {
		return text
	}
	switch {
	case isRTF(text):
		text = rtfText(text)
	case isHTML(text):
		text = htmlText(text)
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\t", " ")

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r >= 32 {
			b.WriteRune(r)
		}
	}
	return norm.NFC.String(b.String())
}
