package textbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceMacros(t *testing.T) {
	table := []Replacement{{"HELLO", "hi"}, {"WORLD", "earth"}}
	assert.Equal(t, "A hi earth!", ReplaceMacros("A [HELLO] [WORLD]!", table))
	assert.Equal(t, "A [HELLO] [WORLD]!", ReplaceWithMacros("A hi earth!", table))
}

func TestReplaceMacrosIsCaseSensitive(t *testing.T) {
	assert.Equal(t, "[red]", ReplaceMacros("[red]", Colours))
	assert.Equal(t, "🔴", ReplaceMacros("[RED]", Colours))
	assert.Equal(t, "[RED]x", ReplaceWithMacros(ReplaceMacros("[RED]x", Colours), Colours))
}

func TestIsColour(t *testing.T) {
	assert.True(t, IsColour('🟢'))
	assert.True(t, IsColour('🟠'))
	assert.False(t, IsColour('X'))
	assert.False(t, IsColour('🅰'))
}

func TestDisplayColour(t *testing.T) {
	tests := []struct {
		colour string
		dark   bool
		want   string
	}{
		{"green", false, "green"},
		{"blue", false, "blue"},
		{"green", true, "forestgreen"},
		{"GREEN", true, "forestgreen"},
		{"blue", true, "mediumblue"},
		{"red", true, "indianred"},
		{"UNKNOWN", true, "UNKNOWN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DisplayColour(tt.colour, tt.dark), "%s dark=%v", tt.colour, tt.dark)
	}
}

func TestScanMacro(t *testing.T) {
	tests := []struct {
		name string
		text string
		at   int
		want MacroToken
	}{
		{
			name: "pause with argument",
			text: "ab[PAUSE][20]cd",
			at:   2,
			want: MacroToken{Kind: MacroPause, Name: "PAUSE", Arg: "20", Start: 2, End: 13, Closed: true},
		},
		{
			name: "pause without argument",
			text: "[PAUSE]",
			want: MacroToken{Kind: MacroPause, Name: "PAUSE", Start: 0, End: 7, Closed: true},
		},
		{
			name: "player",
			text: "[PLAYER] wins",
			want: MacroToken{Kind: MacroPlayer, Name: "PLAYER", Start: 0, End: 8, Closed: true},
		},
		{
			name: "buffer",
			text: "[BUFFER_2]",
			want: MacroToken{Kind: MacroBuffer, Name: "BUFFER_2", Start: 0, End: 10, Closed: true},
		},
		{
			name: "colour",
			text: "[BLUE]",
			want: MacroToken{Kind: MacroColour, Name: "BLUE", Start: 0, End: 6, Closed: true},
		},
		{
			name: "symbol",
			text: "[A_BUTTON]",
			want: MacroToken{Kind: MacroSymbol, Name: "A_BUTTON", Start: 0, End: 10, Closed: true},
		},
		{
			name: "unclosed",
			text: "[PAUSE",
			want: MacroToken{Kind: MacroUnknown, Name: "PAUSE", Start: 0, End: 6},
		},
		{
			name: "unknown",
			text: "[WHATEVER]x",
			want: MacroToken{Kind: MacroUnknown, Name: "WHATEVER", Start: 0, End: 10, Closed: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, ok := ScanMacro([]rune(tt.text), tt.at)
			require.True(t, ok)
			assert.Equal(t, tt.want, tok)
		})
	}
}

func TestScanMacroNotAtBracket(t *testing.T) {
	_, ok := ScanMacro([]rune("abc"), 1)
	assert.False(t, ok)

	_, ok = ScanMacro([]rune("abc"), 5)
	assert.False(t, ok)
}

func TestMacroKindString(t *testing.T) {
	assert.Equal(t, "pause", MacroPause.String())
	assert.Equal(t, "unknown", MacroKind(99).String())
}

func TestIsPause(t *testing.T) {
	text := []rune("abc[PAUSE]def")
	assert.True(t, IsPause(text, 3))
	assert.False(t, IsPause(text, 4))

	assert.True(t, IsPause([]rune("[PAUSE]"), 0))
	assert.False(t, IsPause([]rune("[PAUSE]"), 1))
	assert.False(t, IsPause([]rune(""), 0))
	assert.False(t, IsPause([]rune("[PAUSE"), 0))
}

func TestNextLetterIndex(t *testing.T) {
	tests := []struct {
		name string
		text string
		at   int
		want int
	}{
		{"skips colours", "🟢A", 0, 1},
		{"skips pauses", "[PAUSE]X", 0, 7},
		{"skips pause argument", "[PAUSE][20]X", 0, 11},
		{"rival", "[RIVAL]", 0, 1},
		{"player", "[PLAYER]", 0, 1},
		{"buffer", "[BUFFER]", 0, 1},
		{"plain letter", "AB", 1, 1},
		{"end of text", "A", 1, 1},
		{"only macros left", "A[PAUSE]", 1, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextLetterIndex([]rune(tt.text), tt.at))
		})
	}
}
