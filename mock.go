package lineedit

import (
	"bytes"
	"io"
	"sync"
)

// mockTerminal implements terminalInterface for testing.
//
// Input is a byte script; once it is exhausted ReadByte returns readErr
// (io.EOF unless a test sets another error), or waits for feed when blocking
// is set, like a tty with nothing typed yet. Output is captured and raw mode
// transitions are counted so tests can check that every acquisition was
// released.
type mockTerminal struct {
	mu           sync.Mutex
	more         *sync.Cond // signalled by feed
	blocking     bool
	input        []byte
	inputPos     int
	readErr      error
	output       bytes.Buffer
	rawMode      bool
	rawEntered   int
	rawRestored  int
	closed       bool
	terminalSize [2]int
}

func newMockTerminal(input string) *mockTerminal {
	m := &mockTerminal{
		input:        []byte(input),
		readErr:      io.EOF,
		terminalSize: [2]int{80, 24},
	}
	m.more = sync.NewCond(&m.mu)
	return m
}

func (m *mockTerminal) SetRaw() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rawMode = true
	m.rawEntered++
	return nil
}

func (m *mockTerminal) Restore() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rawMode {
		m.rawRestored++
	}
	m.rawMode = false
	return nil
}

func (m *mockTerminal) Size() (width, height int, err error) {
	return m.terminalSize[0], m.terminalSize[1], nil
}

func (m *mockTerminal) ReadByte() (byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for m.blocking && m.inputPos >= len(m.input) {
		m.more.Wait()
	}
	if m.inputPos >= len(m.input) {
		return 0, m.readErr
	}
	b := m.input[m.inputPos]
	m.inputPos++
	return b, nil
}

func (m *mockTerminal) Write(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.output.Write(p)
}

func (m *mockTerminal) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Output returns everything written so far.
func (m *mockTerminal) Output() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.output.String()
}

// feed appends more input to the script.
func (m *mockTerminal) feed(input string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.input = append(m.input, input...)
	if m.more != nil {
		m.more.Broadcast()
	}
}

// consumed returns how many input bytes have been read.
func (m *mockTerminal) consumed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inputPos
}
