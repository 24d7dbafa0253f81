package lineedit

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeAll decodes every key in input until end of input.
func decodeAll(t *testing.T, input string) []Key {
	t.Helper()

	r := bytes.NewReader([]byte(input))
	var keys []Key
	for {
		key, err := NextKey(r)
		if err != nil {
			require.ErrorIs(t, err, ErrEndOfInput)
			return keys
		}
		keys = append(keys, key)
	}
}

func TestNextKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Key
	}{
		{name: "printable ascii", input: "a", want: []Key{CharKey('a')}},
		{name: "space", input: " ", want: []Key{CharKey(' ')}},
		{name: "carriage return is enter", input: "\r", want: []Key{Named(NamedEnter)}},
		{name: "line feed is enter", input: "\n", want: []Key{Named(NamedEnter)}},
		{name: "tab", input: "\t", want: []Key{Named(NamedTab)}},
		{name: "DEL is backspace", input: "\x7f", want: []Key{Named(NamedBackspace)}},
		{name: "Ctrl+H is backspace", input: "\b", want: []Key{Named(NamedBackspace)}},
		{name: "Ctrl+A", input: "\x01", want: []Key{ControlKey(0x01)}},
		{name: "Ctrl+C", input: "\x03", want: []Key{Ctrl('c')}},
		{name: "up", input: "\x1b[A", want: []Key{Named(NamedUp)}},
		{name: "down", input: "\x1b[B", want: []Key{Named(NamedDown)}},
		{name: "right", input: "\x1b[C", want: []Key{Named(NamedRight)}},
		{name: "left", input: "\x1b[D", want: []Key{Named(NamedLeft)}},
		{name: "home letter", input: "\x1b[H", want: []Key{Named(NamedHome)}},
		{name: "end letter", input: "\x1b[F", want: []Key{Named(NamedEnd)}},
		{name: "home tilde", input: "\x1b[1~", want: []Key{Named(NamedHome)}},
		{name: "delete tilde", input: "\x1b[3~", want: []Key{Named(NamedDelete)}},
		{name: "end tilde", input: "\x1b[4~", want: []Key{Named(NamedEnd)}},
		{name: "page up is unknown", input: "\x1b[5~", want: []Key{UnknownKey}},
		{name: "unknown CSI final", input: "\x1b[Zx", want: []Key{UnknownKey, CharKey('x')}},
		{name: "alt letter", input: "\x1bZ", want: []Key{AltKey('Z')}},
		{name: "alt lower b", input: "\x1bb", want: []Key{AltKey('b')}},
		{name: "alt DEL", input: "\x1b\x7f", want: []Key{AltKey(0x7f)}},
		{name: "ctrl-right swallowed whole", input: "\x1b[1;5Cx", want: []Key{UnknownKey, CharKey('x')}},
		{name: "digit then final", input: "\x1b[2Ax", want: []Key{UnknownKey, CharKey('x')}},
		{name: "two byte utf8", input: "é", want: []Key{CharKey('é')}},
		{name: "three byte utf8", input: "こ", want: []Key{CharKey('こ')}},
		{name: "four byte utf8", input: "😀", want: []Key{CharKey('😀')}},
		{name: "stray continuation byte", input: "\x80a", want: []Key{UnknownKey, CharKey('a')}},
		{name: "broken lead byte keeps ascii", input: "\xc3A", want: []Key{CharKey('A')}},
		{name: "broken sequence keeps escape", input: "\xe3\x81\x1b[A", want: []Key{Named(NamedUp)}},
		{name: "broken sequence keeps next rune", input: "\xe3é", want: []Key{CharKey('é')}},
		{
			name:  "mixed stream",
			input: "ab\x1b[D\x0b\r",
			want:  []Key{CharKey('a'), CharKey('b'), Named(NamedLeft), Ctrl('k'), Named(NamedEnter)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, decodeAll(t, tt.input))
		})
	}
}

func TestNextKeyTruncatedSequences(t *testing.T) {
	t.Parallel()

	// A stream ending mid-sequence yields Unknown, then end of input.
	for _, input := range []string{"\x1b", "\x1b[", "\x1b[3", "\x1b[1;5", "\xe3\x81"} {
		t.Run(strings.ReplaceAll(input, "\x1b", "ESC"), func(t *testing.T) {
			t.Parallel()

			r := bytes.NewReader([]byte(input))
			key, err := NextKey(r)
			require.NoError(t, err)
			assert.Equal(t, UnknownKey, key)

			_, err = NextKey(r)
			assert.ErrorIs(t, err, ErrEndOfInput)
			assert.ErrorIs(t, err, io.EOF)
		})
	}
}

type failingReader struct {
	err error
}

func (f failingReader) ReadByte() (byte, error) {
	return 0, f.err
}

func TestNextKeyIOFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("device gone")
	_, err := NextKey(failingReader{err: cause})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIOFailure)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrEndOfInput)
}

func TestKeyString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  Key
		want string
	}{
		{CharKey('x'), "'x'"},
		{Ctrl('a'), "Ctrl+A"},
		{Ctrl('C'), "Ctrl+C"},
		{Named(NamedUp), "Up"},
		{Named(NamedBackspace), "Backspace"},
		{AltKey('f'), "Alt+f"},
		{UnknownKey, "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.key.String())
	}
}

func TestCtrl(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ControlKey(0x01), Ctrl('a'))
	assert.Equal(t, ControlKey(0x01), Ctrl('A'))
	assert.Equal(t, ControlKey(0x17), Ctrl('w'))
	assert.Equal(t, ControlKey(0x0c), Ctrl('l'))
}
