// Package picker implements the paging and marking state behind the
// interactive file picker, its renderer, and a plain read-key loop.
package picker

import (
	"errors"

	"fatfinder/internal/scanner"
)

// ErrNoResults is returned when a session would start over zero files.
var ErrNoResults = errors.New("no files to pick from")

// Session is the selection state over a frozen display order: a cursor, a
// fixed-height viewport containing it, and one deletion mark per file.
type Session struct {
	records []scanner.FileRecord
	marks   []bool
	window  int
	cursor  int
	top     int
	bottom  int
}

// NewSession starts a session over records, which must already be in
// display order. The viewport height is lines, clamped to len(records).
// The cursor starts on the last record with the viewport at the end.
func NewSession(records []scanner.FileRecord, lines int) (*Session, error) {
	n := len(records)
	if n == 0 {
		return nil, ErrNoResults
	}
	window := lines
	if window <= 0 || window > n {
		window = n
	}
	frozen := make([]scanner.FileRecord, n)
	copy(frozen, records)
	return &Session{
		records: frozen,
		marks:   make([]bool, n),
		window:  window,
		cursor:  n - 1,
		top:     n - window,
		bottom:  n - 1,
	}, nil
}

// Len returns the number of records.
func (s *Session) Len() int { return len(s.records) }

// Cursor returns the selected index.
func (s *Session) Cursor() int { return s.cursor }

// Viewport returns the inclusive bounds of the visible rows.
func (s *Session) Viewport() (int, int) { return s.top, s.bottom }

// Window returns the viewport height.
func (s *Session) Window() int { return s.window }

// Current returns the record under the cursor.
func (s *Session) Current() scanner.FileRecord { return s.records[s.cursor] }

// Record returns the record at display index i.
func (s *Session) Record(i int) scanner.FileRecord { return s.records[i] }

// IsMarked reports whether the record at i is marked for deletion.
func (s *Session) IsMarked(i int) bool { return s.marks[i] }

// MoveUp moves the cursor one row up, scrolling when it leaves the viewport.
func (s *Session) MoveUp() {
	if s.cursor == 0 {
		return
	}
	s.cursor--
	if s.cursor < s.top {
		s.top--
		s.bottom--
	}
}

// MoveDown moves the cursor one row down, scrolling when it leaves the viewport.
func (s *Session) MoveDown() {
	if s.cursor == len(s.records)-1 {
		return
	}
	s.cursor++
	if s.cursor > s.bottom {
		s.top++
		s.bottom++
	}
}

// PageUp moves up by one viewport height.
func (s *Session) PageUp() {
	for i := 0; i < s.window; i++ {
		s.MoveUp()
	}
}

// PageDown moves down by one viewport height.
func (s *Session) PageDown() {
	for i := 0; i < s.window; i++ {
		s.MoveDown()
	}
}

// ToggleMark flips the mark of the record under the cursor.
func (s *Session) ToggleMark() {
	s.marks[s.cursor] = !s.marks[s.cursor]
}

// Marked returns the marked records in display order.
func (s *Session) Marked() []scanner.FileRecord {
	var out []scanner.FileRecord
	for i, marked := range s.marks {
		if marked {
			out = append(out, s.records[i])
		}
	}
	return out
}

// MarkedSize sums the sizes of the marked records.
func (s *Session) MarkedSize() int64 {
	var total int64
	for i, marked := range s.marks {
		if marked {
			total += s.records[i].Size
		}
	}
	return total
}

// Apply performs a navigation or marking action and reports whether the
// action ends the interaction (commit or quit).
func (s *Session) Apply(a Action) bool {
	switch a {
	case ActionUp:
		s.MoveUp()
	case ActionDown:
		s.MoveDown()
	case ActionPageUp:
		s.PageUp()
	case ActionPageDown:
		s.PageDown()
	case ActionToggle:
		s.ToggleMark()
	case ActionCommit, ActionQuit:
		return true
	}
	return false
}
