package picker

import (
	"fmt"
	"io"

	"fatfinder/internal/scanner"
)

const clearScreen = "\033[H\033[2J"

// KeyReader blocks until one key is pressed and returns its name.
type KeyReader interface {
	ReadKey() (string, error)
}

// Outcome is how an interaction ended.
type Outcome struct {
	Committed bool
	Marked    []scanner.FileRecord
}

// Loop runs the plain read-dispatch-redraw cycle: clear and render, block
// for one key, apply it. It returns on commit, quit, or a read error; a read
// error never yields a commit.
func Loop(s *Session, keys KeyReader, out io.Writer, km KeyMap, r Renderer) (Outcome, error) {
	for {
		fmt.Fprint(out, clearScreen)
		if err := s.Render(out, r); err != nil {
			return Outcome{}, err
		}
		name, err := keys.ReadKey()
		if err != nil {
			return Outcome{}, err
		}
		action := km.Action(name)
		if !s.Apply(action) {
			continue
		}
		if action == ActionCommit {
			return Outcome{Committed: true, Marked: s.Marked()}, nil
		}
		return Outcome{}, nil
	}
}
