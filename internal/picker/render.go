package picker

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"fatfinder/pkg/utils"
)

var highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("227")).Bold(true) // yellow

// Renderer controls how rows are drawn.
type Renderer struct {
	HumanReadable bool
	// Highlight styles the cursor row; nil leaves it unstyled.
	Highlight func(string) string
}

// NewRenderer returns a renderer highlighting the cursor row in bold yellow.
func NewRenderer(human bool) Renderer {
	return Renderer{
		HumanReadable: human,
		Highlight:     func(line string) string { return highlightStyle.Render(line) },
	}
}

// Row formats the record at display index i.
func (r Renderer) Row(s *Session, i int) string {
	mark := " "
	if s.IsMarked(i) {
		mark = "X"
	}
	rec := s.Record(i)
	line := fmt.Sprintf("[%s] %s: %s", mark, rec.Path, utils.FormatSize(rec.Size, r.HumanReadable))
	if i == s.Cursor() && r.Highlight != nil {
		line = r.Highlight(line)
	}
	return line
}

// Position formats the cursor indicator.
func (r Renderer) Position(s *Session) string {
	return fmt.Sprintf("[%d / %d]", s.Cursor(), s.Len()-1)
}

// Render writes the rows of the viewport followed by the position line.
func (s *Session) Render(w io.Writer, r Renderer) error {
	top, bottom := s.Viewport()
	for i := top; i <= bottom; i++ {
		if _, err := fmt.Fprintln(w, r.Row(s, i)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, r.Position(s))
	return err
}
