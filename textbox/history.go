package textbox

// Snapshot is a text and selection to return to. RedoSelectionStart and
// RedoSelectionEnd are where the caret goes when the undone edit is redone.
type Snapshot struct {
	Text               string
	SelectionStart     int
	SelectionEnd       int
	RedoSelectionStart int
	RedoSelectionEnd   int
}

// History keeps undo and redo stacks. Undone snapshots are parked on an
// applied stack so a redo can put them back.
type History struct {
	limit   int
	undo    []Snapshot
	applied []Snapshot
	redo    []Snapshot
}

// NewHistory returns an empty history keeping at most limit undo steps. A
// limit of 0 keeps every step.
func NewHistory(limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{limit: limit}
}

// Record pushes an undo step, dropping the oldest once the limit is reached.
func (h *History) Record(s Snapshot) {
	h.undo = append(h.undo, s)
	if h.limit > 0 && len(h.undo) > h.limit {
		h.undo = h.undo[len(h.undo)-h.limit:]
	}
}

// AmendLast updates where redoing the newest undo step puts the caret.
func (h *History) AmendLast(redoStart, redoEnd int) bool {
	if len(h.undo) == 0 {
		return false
	}
	last := &h.undo[len(h.undo)-1]
	last.RedoSelectionStart = redoStart
	last.RedoSelectionEnd = redoEnd
	return true
}

// DiscardRedo forgets everything that could be redone. Called after an edit.
func (h *History) DiscardRedo() {
	h.redo = h.redo[:0]
	h.applied = h.applied[:0]
}

// Undo pops the newest step. current is the text being replaced; it becomes
// the redo target.
func (h *History) Undo(current string) (Snapshot, bool) {
	if len(h.undo) == 0 {
		return Snapshot{}, false
	}

	s := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.applied = append(h.applied, s)
	h.redo = append(h.redo, Snapshot{
		Text:           current,
		SelectionStart: s.RedoSelectionStart,
		SelectionEnd:   s.RedoSelectionEnd,
	})
	return s, true
}

// Redo pops the newest redo target and moves its undo step back.
func (h *History) Redo() (Snapshot, bool) {
	if len(h.redo) == 0 {
		return Snapshot{}, false
	}

	s := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	if n := len(h.applied); n > 0 {
		h.Record(h.applied[n-1])
		h.applied = h.applied[:n-1]
	}
	return s, true
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Len is the number of undo steps.
func (h *History) Len() int { return len(h.undo) }
