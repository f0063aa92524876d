package textbox

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Editor is the state behind one text area: the text, the caret and the
// history. Each raw edit goes through HandleTextChange, which formats the
// text and works out where the caret belongs afterwards.
//
// An Editor is not safe for concurrent use.
type Editor struct {
	text          string
	selStart      int
	selEnd        int
	prevStart     int
	prevEnd       int
	lockFinalLine bool

	formatter *Formatter
	history   *History
}

type EditorOption func(*Editor)

func WithFormatter(f *Formatter) EditorOption {
	return func(e *Editor) {
		if f != nil {
			e.formatter = f
		}
	}
}

// WithHistoryLimit caps the undo steps kept. 0 keeps every step.
func WithHistoryLimit(n int) EditorOption {
	return func(e *Editor) {
		e.history = NewHistory(n)
	}
}

func WithLockFinalLine(locked bool) EditorOption {
	return func(e *Editor) {
		e.lockFinalLine = locked
	}
}

// NewEditor returns an editor holding text with the caret at the start. The
// text is taken as is; it is formatted on the first edit.
func NewEditor(text string, opts ...EditorOption) *Editor {
	e := &Editor{
		text:    text,
		history: NewHistory(0),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.formatter == nil {
		e.formatter = NewFormatter()
	}
	return e
}

func (e *Editor) Text() string { return e.text }

// Selection returns the selection as rune offsets.
func (e *Editor) Selection() (start, end int) { return e.selStart, e.selEnd }

func (e *Editor) FinalLineLocked() bool { return e.lockFinalLine }

// SetLockFinalLine changes how the last line is measured from the next edit on.
func (e *Editor) SetLockFinalLine(locked bool) { e.lockFinalLine = locked }

func (e *Editor) CanUndo() bool { return e.history.CanUndo() }
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// MoveCursor records a caret move that did not change the text.
func (e *Editor) MoveCursor(start, end int) {
	e.moveCaret(start, end)
}

func (e *Editor) moveCaret(start, end int) {
	e.prevStart, e.prevEnd = e.selStart, e.selEnd
	e.selStart, e.selEnd = e.clamp(start), e.clamp(end)
}

func (e *Editor) clamp(pos int) int {
	n := utf8.RuneCountInString(e.text)
	switch {
	case pos < 0:
		return 0
	case pos > n:
		return n
	}
	return pos
}

func (e *Editor) caret() Caret {
	return Caret{
		Cursor:           e.selStart,
		PrevCursor:       e.prevStart,
		PrevSelectionEnd: e.prevEnd,
	}
}

// HandleTextChange applies newText as typed by the user, with the selection
// the text area reported after the edit. It returns the formatted text.
func (e *Editor) HandleTextChange(newText string, selStart, selEnd int) string {
	if newText == e.text {
		return e.text
	}

	e.prevStart, e.prevEnd = e.selStart, e.selEnd
	e.selStart, e.selEnd = selStart, selEnd
	return e.setText(newText)
}

func (e *Editor) setText(newText string) string {
	oldText := e.text
	change := DetermineTextChangeType(oldText, newText)
	cursor := ResolveCursor(oldText, newText, e.caret(), change, nil)
	formatted := e.formatter.FormatTwice(newText, e.lockFinalLine, &change)

	afterFormat := DetermineTextChangeType(oldText, formatted)
	if afterFormat.Type == NoChange {
		e.selStart, e.selEnd = e.prevStart, e.prevEnd
		return e.text
	}

	var pending *Snapshot
	if e.history.Len() == 0 || change.Type != SingleInsert || isBlank(change.Inserted) {
		pending = &Snapshot{
			Text:           oldText,
			SelectionStart: e.prevStart,
			SelectionEnd:   e.prevEnd,
		}
	}

	// A typed "[" that was closed keeps the caret between the brackets.
	bracketOpened := change.Type == SingleInsert && change.Inserted == "[" &&
		afterFormat.Type == MultiInsert && afterFormat.Inserted == "[]"

	if formatted != newText && !bracketOpened {
		e.text = newText
		e.moveCaret(cursor, cursor)
		cursor = ResolveCursor(newText, formatted, e.caret(), DetermineTextChangeType(newText, formatted), &change)
	} else {
		cursor = ResolveCursor(oldText, formatted, e.caret(), afterFormat, nil)
	}

	e.text = formatted
	cursor = e.clamp(cursor)
	e.selStart, e.selEnd = cursor, cursor

	if pending == nil {
		e.history.AmendLast(cursor, cursor)
	} else {
		pending.RedoSelectionStart = cursor
		pending.RedoSelectionEnd = cursor
		e.history.Record(*pending)
	}
	e.history.DiscardRedo()
	return e.text
}

func isBlank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}

// InsertAtSelection inserts s at the start of the selection, as the quick
// insert buttons do. When s ends in "[]" the caret lands between the brackets.
func (e *Editor) InsertAtSelection(s string) string {
	runes := []rune(e.text)
	at := e.clamp(e.selStart)
	newText := string(runes[:at]) + s + string(runes[at:])

	pos := at + utf8.RuneCountInString(s)
	if strings.HasSuffix(s, "[]") {
		pos--
	}

	e.prevStart, e.prevEnd = e.selStart, e.selEnd
	e.selStart, e.selEnd = pos, pos
	return e.setText(newText)
}

// Undo restores the text before the newest undo step.
func (e *Editor) Undo() bool {
	s, ok := e.history.Undo(e.text)
	if !ok {
		return false
	}
	e.text = s.Text
	e.selStart, e.selEnd = e.clamp(s.SelectionStart), e.clamp(s.SelectionEnd)
	return true
}

func (e *Editor) Redo() bool {
	s, ok := e.history.Redo()
	if !ok {
		return false
	}
	e.text = s.Text
	e.selStart, e.selEnd = e.clamp(s.SelectionStart), e.clamp(s.SelectionEnd)
	return true
}

// Prettify splits the text into textboxes at sentence ends and reformats it.
// The final line is unlocked first.
func (e *Editor) Prettify() string {
	e.lockFinalLine = false
	return e.setText(Prettify(e.text, e.formatter))
}

// SpaceInfo measures the line under the caret.
func (e *Editor) SpaceInfo() LineInfo {
	return e.formatter.Metrics().CursorLineInfo(e.text, e.selStart, e.lockFinalLine)
}

// IngameText is the text in the game compiler's format.
func (e *Editor) IngameText() string {
	return CreateIngameText(e.text)
}
