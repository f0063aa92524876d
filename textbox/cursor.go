package textbox

import (
	"strings"
	"unicode/utf8"
)

// Caret is the selection state around a raw edit.
type Caret struct {
	// Cursor is where the caret ended up after the edit was typed.
	Cursor int
	// PrevCursor and PrevSelectionEnd are the selection before the edit.
	PrevCursor       int
	PrevSelectionEnd int
}

// ResolveCursor picks the caret offset in newText after change turned oldText
// into newText. prior is the user's own edit when change is the reflow the
// formatter made on top of it, and nil otherwise.
//
// Newlines are compared as spaces, so a word pushed onto the next line does
// not count as replaced text.
func ResolveCursor(oldText, newText string, caret Caret, change TextChange, prior *TextChange) int {
	oldText = strings.ReplaceAll(oldText, "\n", " ")
	newText = strings.ReplaceAll(newText, "\n", " ")

	switch change.Type {
	case NoChange:
		return caret.PrevCursor

	case SingleInsert:
		// The caret has not moved yet, so the character went in behind it.
		if caret.Cursor > change.Start && caret.PrevCursor == caret.Cursor {
			return caret.Cursor + 1
		}
		return caret.Cursor

	case SingleDelete, MultiInsert, SingleReplace:
		return caret.Cursor

	case MultiDelete:
		return caret.PrevSelectionEnd - utf8.RuneCountInString(change.Deleted)

	case SingleReplaceMulti, MultiReplaceSingle, MultiReplaceMulti:
		actual := DetermineTextChangeType(oldText, newText)

		if !actual.Type.isMultiReplace() {
			if prior == nil || !prior.Type.IsInsert() {
				return caret.Cursor
			}

			// Reflow after an insert: a space swallowed by the line break
			// sits behind the caret.
			if actual.Type == SingleDelete && actual.Start < caret.Cursor {
				return caret.PrevCursor - 1
			}
			return ResolveCursor(oldText, newText, caret, actual, &change)
		}

		if caret.Cursor < actual.Start || caret.Cursor > actual.OldEnd {
			return caret.Cursor
		}
		return actual.End
	}

	return caret.Cursor
}
