// Package input maps keyboard, gamepad and terminal keys to game actions.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal reads single key presses from a terminal in raw mode.
type Terminal struct {
	fd       int
	oldState *term.State
	reader   *bufio.Reader
}

// OpenTerminal switches stdin to raw mode. Close restores it.
func OpenTerminal() (*Terminal, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	return &Terminal{fd: fd, oldState: oldState, reader: bufio.NewReader(os.Stdin)}, nil
}

// Close restores the terminal state.
func (t *Terminal) Close() error {
	return term.Restore(t.fd, t.oldState)
}

// Size returns the terminal size in cells.
func (t *Terminal) Size() (cols, rows int, err error) {
	return term.GetSize(t.fd)
}

// ReadRaw blocks for the next key and returns it as a raw input event.
func (t *Terminal) ReadRaw() (RawInput, error) {
	code, err := ReadKeyCode(t.reader)
	if err != nil {
		return RawInput{}, err
	}
	return RawInput{Device: DeviceTerminal, Code: code}, nil
}

// ReadKeyCode reads one key from r and returns its binding code. Unknown
// escape sequences and control bytes yield "".
func ReadKeyCode(r io.ByteReader) (string, error) {
	b1, err := r.ReadByte()
	if err != nil {
		return "", err
	}
	switch b1 {
	case 0x1b:
		return readEscape(r)
	case '\r', '\n':
		return "enter", nil
	case ' ':
		return "space", nil
	case 3: // Ctrl+C
		return "escape", nil
	}
	if b1 >= 32 && b1 < 127 {
		return string(rune(b1)), nil
	}
	return "", nil
}

// readEscape decodes the rest of an arrow key escape sequence. A lone escape
// is only recognised when the terminal sends it on its own.
func readEscape(r io.ByteReader) (string, error) {
	if br, ok := r.(*bufio.Reader); ok && br.Buffered() == 0 {
		return "escape", nil
	}
	b2, err := r.ReadByte()
	if err != nil {
		return "", err
	}
	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return "", nil
	}
	b3, err := r.ReadByte()
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}
	// Unknown escape sequence - discard it
	return "", nil
}
