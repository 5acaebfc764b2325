// Package terminal reads single keypresses from a terminal in raw mode.
package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// KeyReader blocks until one key is pressed and returns its name.
type KeyReader interface {
	ReadKey() (string, error)
}

// TTY reads keys from a terminal file descriptor.
type TTY struct {
	in *os.File
}

// NewTTY returns a TTY reading from in. It fails when in is not a terminal.
func NewTTY(in *os.File) (*TTY, error) {
	if !term.IsTerminal(int(in.Fd())) {
		return nil, fmt.Errorf("%s is not a terminal", in.Name())
	}
	return &TTY{in: in}, nil
}

// ReadKey switches the terminal to raw mode, reads one keypress and restores
// the previous mode before returning, whatever the outcome of the read.
func (t *TTY) ReadKey() (string, error) {
	fd := int(t.in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("entering raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, state) }()

	buf := make([]byte, 8)
	n, err := t.in.Read(buf)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", io.EOF
	}
	return DecodeKey(buf[:n]), nil
}

var escapeSequences = map[string]string{
	"\x1b[A":  "up",
	"\x1b[B":  "down",
	"\x1b[C":  "right",
	"\x1b[D":  "left",
	"\x1bOA":  "up",
	"\x1bOB":  "down",
	"\x1b[5~": "pgup",
	"\x1b[6~": "pgdown",
	"\x1b[H":  "home",
	"\x1b[F":  "end",
}

// DecodeKey names the key encoded by raw terminal input, using the same
// names as the picker key bindings.
func DecodeKey(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	if name, ok := escapeSequences[string(b)]; ok {
		return name
	}
	switch b[0] {
	case '\r', '\n':
		return "enter"
	case 0x1b:
		return "esc"
	case 0x03:
		return "ctrl+c"
	case 0x7f, 0x08:
		return "backspace"
	case '\t':
		return "tab"
	}
	return string([]rune(string(b))[:1])
}

// WaitKey blocks until any key is pressed.
func WaitKey(r KeyReader) error {
	_, err := r.ReadKey()
	return err
}
