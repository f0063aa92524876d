package textbox

import (
	_ "embed" // Support for go:embed resources
	"sync"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

//go:embed fontsizes.json
var fontSizesJSON []byte

// DefaultCharWidth is the width of any character missing from the table.
const DefaultCharWidth = 6

// Metrics maps characters and macro names to their pixel widths in the
// in-game font. A Metrics value is never modified after it is loaded.
type Metrics struct {
	charSizes    map[rune]int
	lineEndSizes map[rune]int
	macroSizes   map[string]int
}

var (
	defaultMetricsOnce sync.Once
	defaultMetrics     *Metrics
)

// DefaultMetrics returns the built-in font table.
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		m, err := LoadMetrics(fontSizesJSON)
		if err != nil {
			panic(err)
		}
		defaultMetrics = m
	})
	return defaultMetrics
}

// LoadMetrics parses a font table of the form
//
//	{"charSizes": {"A": 6}, "actualCharSizes": {"!": 4}, "macroSizes": {"PLAYER": 42}}
//
// actualCharSizes holds the narrower width a character takes when it ends a
// line. Keys of the character tables that are not a single character are
// ignored.
func LoadMetrics(data []byte) (*Metrics, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("font metrics: invalid JSON")
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, errors.New("font metrics: top level is not an object")
	}

	m := &Metrics{
		charSizes:    readRuneSizes(root.Get("charSizes")),
		lineEndSizes: readRuneSizes(root.Get("actualCharSizes")),
		macroSizes:   make(map[string]int),
	}
	root.Get("macroSizes").ForEach(func(key, value gjson.Result) bool {
		m.macroSizes[key.String()] = int(value.Int())
		return true
	})
	return m, nil
}

func readRuneSizes(obj gjson.Result) map[rune]int {
	sizes := make(map[rune]int)
	obj.ForEach(func(key, value gjson.Result) bool {
		k := key.String()
		if utf8.RuneCountInString(k) != 1 {
			return true
		}
		r, _ := utf8.DecodeRuneInString(k)
		sizes[r] = int(value.Int())
		return true
	})
	return sizes
}

// CharWidth returns the width of r given the character that follows it.
// A next value of '\n' means r ends its line.
func (m *Metrics) CharWidth(r, next rune) int {
	if IsColour(r) {
		return 0
	}
	if next == '\n' {
		if w, ok := m.lineEndSizes[r]; ok {
			return w
		}
	}
	if w, ok := m.charSizes[r]; ok {
		return w
	}
	return DefaultCharWidth
}

// MacroWidth returns the width of the macro called name, or 0 when the macro
// has no fixed width.
func (m *Metrics) MacroWidth(name string) int {
	return m.macroSizes[name]
}
