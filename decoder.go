package lineedit

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// Decoder errors
var (
	// ErrEndOfInput is returned when the byte source is cleanly exhausted before a key starts.
	ErrEndOfInput = errors.New("end of input")
	// ErrIOFailure wraps any other error reported by the byte source.
	ErrIOFailure = errors.New("input failure")
)

const (
	keyEscape = 0x1b
	keyDelete = 0x7f

	// maxCSILength bounds how many bytes of an unrecognised CSI sequence are swallowed.
	maxCSILength = 16
)

// NextKey reads exactly one logical key from r.
//
// Plain bytes are classified directly. ESC starts an escape sequence that is
// resolved by reading further bytes:
//
//	ESC [ A/B/C/D   Up/Down/Right/Left
//	ESC [ H / F     Home / End
//	ESC [ 1~ 3~ 4~  Home / Delete / End
//	ESC [ other     Unknown
//	ESC x           Alt(x)
//
// Decoding never pushes bytes back: whatever was read to resolve a sequence is
// consumed. When the source ends in the middle of a sequence the result is
// UnknownKey with a nil error; the next call reports ErrEndOfInput. A
// multi-byte code point cut short by a byte that is not a continuation byte
// is dropped, and that byte starts the returned key instead.
func NextKey(r io.ByteReader) (Key, error) {
	b, err := r.ReadByte()
	if err != nil {
		return UnknownKey, classifyReadError(err)
	}
	return decodeByte(b, r), nil
}

// decodeByte classifies the first byte of a key, reading more from r when b
// starts an escape sequence or a multi-byte code point.
func decodeByte(b byte, r io.ByteReader) Key {
	switch {
	case b == keyEscape:
		return decodeEscape(r)
	case b == '\r' || b == '\n':
		return Named(NamedEnter)
	case b == '\t':
		return Named(NamedTab)
	case b == keyDelete || b == '\b':
		return Named(NamedBackspace)
	case b < 0x20:
		return ControlKey(b)
	case b < utf8.RuneSelf:
		return CharKey(rune(b))
	default:
		return decodeUTF8(b, r)
	}
}

func classifyReadError(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrEndOfInput, err)
	}
	return fmt.Errorf("%w: %w", ErrIOFailure, err)
}

func decodeEscape(r io.ByteReader) Key {
	b, err := r.ReadByte()
	if err != nil {
		return UnknownKey
	}
	if b != '[' {
		return AltKey(b)
	}

	b, err = r.ReadByte()
	if err != nil {
		return UnknownKey
	}
	switch b {
	case 'A':
		return Named(NamedUp)
	case 'B':
		return Named(NamedDown)
	case 'C':
		return Named(NamedRight)
	case 'D':
		return Named(NamedLeft)
	case 'H':
		return Named(NamedHome)
	case 'F':
		return Named(NamedEnd)
	}
	if b < '0' || b > '9' {
		return UnknownKey
	}

	digit := b
	b, err = r.ReadByte()
	if err != nil {
		return UnknownKey
	}
	if b == '~' {
		switch digit {
		case '1':
			return Named(NamedHome)
		case '3':
			return Named(NamedDelete)
		case '4':
			return Named(NamedEnd)
		}
		return UnknownKey
	}

	skipCSI(b, r)
	return UnknownKey
}

// skipCSI swallows the rest of a parameterised CSI sequence (e.g. "1;5C") so
// its trailing bytes are not inserted as text. It stops at the final byte,
// at end of input, or after maxCSILength bytes.
func skipCSI(b byte, r io.ByteReader) {
	for range maxCSILength {
		if b >= 0x40 && b <= 0x7e {
			return
		}
		if b < 0x20 || b > 0x3f {
			return
		}
		var err error
		b, err = r.ReadByte()
		if err != nil {
			return
		}
	}
}

// decodeUTF8 assembles a multi-byte code point whose lead byte is lead.
func decodeUTF8(lead byte, r io.ByteReader) Key {
	var n int
	switch {
	case lead&0xe0 == 0xc0:
		n = 2
	case lead&0xf0 == 0xe0:
		n = 3
	case lead&0xf8 == 0xf0:
		n = 4
	default:
		return UnknownKey
	}

	buf := make([]byte, 1, utf8.UTFMax)
	buf[0] = lead
	for len(buf) < n {
		b, err := r.ReadByte()
		if err != nil {
			return UnknownKey
		}
		if b&0xc0 != 0x80 {
			// Not a continuation byte: drop the broken sequence and decode b
			// as the start of the next key.
			return decodeByte(b, r)
		}
		buf = append(buf, b)
	}

	cp, size := utf8.DecodeRune(buf)
	if cp == utf8.RuneError && size <= 1 {
		return UnknownKey
	}
	return CharKey(cp)
}
