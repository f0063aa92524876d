package textbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineTextChangeType(t *testing.T) {
	const base = "Hello World"

	tests := []struct {
		name    string
		oldText string
		newText string
		want    TextChange
	}{
		{"no change", base, base, TextChange{Type: NoChange}},
		{"single replace", base, "Hello Wxrld",
			TextChange{SingleReplace, "x", "o", 7, 8, 7, 8}},
		{"multi replace same length", base, "Hella Wxrld",
			TextChange{MultiReplaceMulti, "a Wx", "o Wo", 4, 8, 4, 8}},
		{"single insert at start", base, "XHello World",
			TextChange{SingleInsert, "X", "", 0, 1, 0, 0}},
		{"single insert in middle", base, "Hello XWorld",
			TextChange{SingleInsert, "X", "", 6, 7, 6, 6}},
		{"single insert at end", base, "Hello World!",
			TextChange{SingleInsert, "!", "", 11, 12, 11, 11}},
		{"multi insert at start", base, "XXHello World",
			TextChange{MultiInsert, "XX", "", 0, 2, 0, 0}},
		{"multi insert in middle", base, "Hello XXWorld",
			TextChange{MultiInsert, "XX", "", 6, 8, 6, 6}},
		{"multi insert at end", base, "Hello World!!",
			TextChange{MultiInsert, "!!", "", 11, 13, 11, 11}},
		{"multi replace grows by one", base, "Hello Wxrld!",
			TextChange{MultiReplaceMulti, "xrld!", "orld", 7, 12, 7, 11}},
		{"multi replace at end grows by one", base, "Hello Worl!!",
			TextChange{MultiReplaceSingle, "!!", "d", 10, 12, 10, 11}},
		{"multi replace grows by several", base, "XXHello XX World!!",
			TextChange{MultiReplaceMulti, "XXHello XX World!!", base, 0, 18, 0, 11}},
		{"one character to several", base, "Hello WXXXrld",
			TextChange{MultiReplaceSingle, "XXX", "o", 7, 10, 7, 8}},
		{"whole text from one character", "G", "Hello World!",
			TextChange{MultiReplaceSingle, "Hello World!", "G", 0, 12, 0, 1}},
		{"single delete at start", base, "ello World",
			TextChange{SingleDelete, "", "H", 0, 0, 0, 1}},
		{"single delete in middle", base, "Hell World",
			TextChange{SingleDelete, "", "o", 4, 4, 4, 5}},
		{"single delete at end", base, "Hello Worl",
			TextChange{SingleDelete, "", "d", 10, 10, 10, 11}},
		{"multi delete at start", base, "llo World",
			TextChange{MultiDelete, "", "He", 0, 0, 0, 2}},
		{"multi delete in middle", base, "Hlo World",
			TextChange{MultiDelete, "", "el", 1, 1, 1, 3}},
		{"multi delete at end", base, "Hello Wor",
			TextChange{MultiDelete, "", "ld", 9, 9, 9, 11}},
		{"several to one character", base, "Hello WorY",
			TextChange{SingleReplaceMulti, "Y", "ld", 9, 10, 9, 11}},
		{"shrinks by one", base, "Hello 1234",
			TextChange{MultiReplaceMulti, "1234", "World", 6, 10, 6, 11}},
		{"several to one shrinks by several", base, "Hello B",
			TextChange{SingleReplaceMulti, "B", "World", 6, 7, 6, 11}},
		{"shrinks by several", base, "Hello BAD",
			TextChange{MultiReplaceMulti, "BAD", "World", 6, 9, 6, 11}},
		{"offsets count runes", "é…A", "é…BA",
			TextChange{SingleInsert, "B", "", 2, 3, 2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetermineTextChangeType(tt.oldText, tt.newText)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.newText, got.Apply(tt.oldText))
		})
	}
}

func TestChangeTypeString(t *testing.T) {
	assert.Equal(t, "NO_CHANGE", NoChange.String())
	assert.Equal(t, "SINGLE_REPLACE_MULTI", SingleReplaceMulti.String())
	assert.Equal(t, "MULTI_REPLACE_SINGLE", MultiReplaceSingle.String())
	assert.Equal(t, "UNKNOWN", ChangeType(42).String())
}

func TestChangeTypePredicates(t *testing.T) {
	assert.True(t, SingleInsert.IsInsert())
	assert.True(t, MultiInsert.IsInsert())
	assert.False(t, SingleReplace.IsInsert())

	assert.True(t, SingleReplace.IsReplace())
	assert.True(t, MultiReplaceMulti.IsReplace())
	assert.False(t, MultiDelete.IsReplace())
}
