package lineedit

import (
	"bufio"
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// terminalInterface is the I/O boundary of a read-line session.
//
// SetRaw/Restore bracket raw mode, ReadByte blocks for the next input byte
// and Write sends rendered output. Implementations:
//   - realTerminal: the controlling tty via go-tty, raw mode via x/term
//   - simpleTerminal: stdin/stdout left in the host's cooked mode
//   - mockTerminal: scripted input for tests
type terminalInterface interface {
	io.ByteReader
	io.Writer
	SetRaw() error                        // Enter raw mode for key-by-key input
	Restore() error                       // Restore the state saved by SetRaw
	Size() (width, height int, err error) // Terminal dimensions with safe fallbacks
	Close() error                         // Release the device; safe to call twice
}

// realTerminal reads from the controlling tty opened by go-tty and writes to
// stdout (wrapped by go-colorable on Windows so ANSI sequences work).
type realTerminal struct {
	tty           *tty.TTY
	input         *bufio.Reader
	output        io.Writer
	closed        bool        // Prevents double-close panic on Windows
	fd            int         // Input descriptor put into raw mode
	originalState *term.State // Saved by SetRaw, consumed by Restore
}

func newRealTerminal() (*realTerminal, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}

	var output io.Writer = os.Stdout
	if runtime.GOOS == "windows" {
		output = colorable.NewColorableStdout()
	}

	return &realTerminal{
		tty:    t,
		input:  bufio.NewReader(t.Input()),
		output: output,
		fd:     int(t.Input().Fd()),
	}, nil
}

// SetRaw captures the current state of the tty and switches it to raw mode.
// A descriptor that is not a terminal is left untouched.
func (t *realTerminal) SetRaw() error {
	if !term.IsTerminal(t.fd) {
		return nil
	}
	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return err
	}
	t.originalState = state
	return nil
}

func (t *realTerminal) Restore() error {
	if t.originalState == nil {
		return nil
	}
	err := term.Restore(t.fd, t.originalState)
	// Reset the state so that SetRaw captures a fresh baseline next time
	t.originalState = nil
	return err
}

func (t *realTerminal) Size() (width, height int, err error) {
	w, h, err := t.tty.Size()
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24, err
	}
	return w, h, nil
}

func (t *realTerminal) ReadByte() (byte, error) {
	return t.input.ReadByte()
}

func (t *realTerminal) Write(p []byte) (int, error) {
	return t.output.Write(p)
}

func (t *realTerminal) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	if t.tty != nil {
		return t.tty.Close()
	}
	return nil
}

// simpleTerminal leaves line editing to the host: the tty stays in cooked
// mode and input is read as the kernel delivers it.
type simpleTerminal struct {
	input       *bufio.Reader
	output      io.Writer
	interactive bool // stdin is a terminal, so the host echoes the typed line
}

func newSimpleTerminal() *simpleTerminal {
	return &simpleTerminal{
		input:       bufio.NewReader(os.Stdin),
		output:      colorable.NewColorableStdout(),
		interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}
}

func (t *simpleTerminal) SetRaw() error  { return nil }
func (t *simpleTerminal) Restore() error { return nil }

func (t *simpleTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24, err
	}
	return w, h, nil
}

func (t *simpleTerminal) ReadByte() (byte, error) {
	return t.input.ReadByte()
}

func (t *simpleTerminal) Write(p []byte) (int, error) {
	return t.output.Write(p)
}

func (t *simpleTerminal) Close() error {
	return nil
}
