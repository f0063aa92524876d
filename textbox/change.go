package textbox

// ChangeType classifies the difference between two versions of the text.
type ChangeType int

const (
	NoChange ChangeType = iota
	SingleInsert
	MultiInsert
	SingleDelete
	MultiDelete
	SingleReplace      // one character replaced by one
	SingleReplaceMulti // several characters replaced by one
	MultiReplaceSingle // one character replaced by several
	MultiReplaceMulti
)

var changeTypeNames = [...]string{
	NoChange:           "NO_CHANGE",
	SingleInsert:       "SINGLE_INSERT",
	MultiInsert:        "MULTI_INSERT",
	SingleDelete:       "SINGLE_DELETE",
	MultiDelete:        "MULTI_DELETE",
	SingleReplace:      "SINGLE_REPLACE",
	SingleReplaceMulti: "SINGLE_REPLACE_MULTI",
	MultiReplaceSingle: "MULTI_REPLACE_SINGLE",
	MultiReplaceMulti:  "MULTI_REPLACE_MULTI",
}

func (t ChangeType) String() string {
	if t < 0 || int(t) >= len(changeTypeNames) {
		return "UNKNOWN"
	}
	return changeTypeNames[t]
}

// IsInsert reports whether the change only added text.
func (t ChangeType) IsInsert() bool {
	return t == SingleInsert || t == MultiInsert
}

// IsReplace reports whether the change both removed and added text.
func (t ChangeType) IsReplace() bool {
	switch t {
	case SingleReplace, SingleReplaceMulti, MultiReplaceSingle, MultiReplaceMulti:
		return true
	}
	return false
}

func (t ChangeType) isMultiReplace() bool {
	return t.IsReplace() && t != SingleReplace
}

// TextChange is the single contiguous edit that turns one text into another.
// Start and End bound the inserted text in the new text; OldStart and OldEnd
// bound the deleted text in the old text. All offsets count runes.
type TextChange struct {
	Type     ChangeType
	Inserted string
	Deleted  string
	Start    int
	End      int
	OldStart int
	OldEnd   int
}

// DetermineTextChangeType diffs oldText against newText by their common
// prefix and suffix.
func DetermineTextChangeType(oldText, newText string) TextChange {
	if oldText == newText {
		return TextChange{Type: NoChange}
	}

	o, n := []rune(oldText), []rune(newText)

	start := 0
	for start < len(o) && start < len(n) && o[start] == n[start] {
		start++
	}

	endOld, endNew := len(o)-1, len(n)-1
	for endOld >= start && endNew >= start && o[endOld] == n[endNew] {
		endOld--
		endNew--
	}

	oldCount := endOld - start + 1
	newCount := endNew - start + 1

	c := TextChange{
		Start:    start,
		End:      start + newCount,
		OldStart: start,
		OldEnd:   endOld + 1,
	}
	if newCount > 0 {
		c.Inserted = string(n[start : start+newCount])
	}
	if oldCount > 0 {
		c.Deleted = string(o[start : start+oldCount])
	}

	switch {
	case oldCount > 0 && newCount > 0:
		switch {
		case oldCount == 1 && newCount == 1:
			c.Type = SingleReplace
		case newCount == 1:
			c.Type = SingleReplaceMulti
		case oldCount == 1:
			c.Type = MultiReplaceSingle
		default:
			c.Type = MultiReplaceMulti
		}
	case oldCount > 0:
		c.Type = MultiDelete
		if oldCount == 1 {
			c.Type = SingleDelete
		}
	default:
		c.Type = MultiInsert
		if newCount == 1 {
			c.Type = SingleInsert
		}
	}
	return c
}

// Apply replays the change on the text it was computed from.
func (c TextChange) Apply(oldText string) string {
	if c.Type == NoChange {
		return oldText
	}

	o := []rune(oldText)
	if c.OldStart < 0 || c.OldEnd > len(o) || c.OldStart > c.OldEnd {
		return oldText
	}
	return string(o[:c.OldStart]) + c.Inserted + string(o[c.OldEnd:])
}
