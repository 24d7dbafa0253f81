package lineedit

import "fmt"

// KeyKind identifies which variant of Key is populated.
type KeyKind int

// Key kinds produced by the decoder.
const (
	KindUnknown KeyKind = iota
	KindChar
	KindControl
	KindNamed
	KindAlt
)

// NamedKey is a special key that terminals encode as a control byte or a CSI sequence.
type NamedKey int

// Named keys understood by the decoder.
const (
	NamedNone NamedKey = iota
	NamedUp
	NamedDown
	NamedLeft
	NamedRight
	NamedHome
	NamedEnd
	NamedDelete
	NamedEnter
	NamedBackspace
	NamedTab
)

// String returns a human-readable name for the named key.
func (n NamedKey) String() string {
	switch n {
	case NamedUp:
		return "Up"
	case NamedDown:
		return "Down"
	case NamedLeft:
		return "Left"
	case NamedRight:
		return "Right"
	case NamedHome:
		return "Home"
	case NamedEnd:
		return "End"
	case NamedDelete:
		return "Delete"
	case NamedEnter:
		return "Enter"
	case NamedBackspace:
		return "Backspace"
	case NamedTab:
		return "Tab"
	default:
		return "None"
	}
}

// Key is one logical key press decoded from the terminal byte stream.
//
// Only the field matching Kind is meaningful:
//   - KindChar: Rune holds the printable code point
//   - KindControl: Code holds the control byte (0x01 for Ctrl+A, 0x03 for Ctrl+C, ...)
//   - KindNamed: Name holds the special key
//   - KindAlt: Code holds the byte that followed ESC
//   - KindUnknown: nothing; the dispatcher ignores it
//
// Key is comparable, so it can be used directly as a map key in a KeyMap.
type Key struct {
	Kind KeyKind
	Rune rune
	Code byte
	Name NamedKey
}

// CharKey returns a printable character key.
func CharKey(r rune) Key {
	return Key{Kind: KindChar, Rune: r}
}

// ControlKey returns a control key for the given control byte.
func ControlKey(code byte) Key {
	return Key{Kind: KindControl, Code: code}
}

// Ctrl returns the control key produced by holding Ctrl with the given letter.
//
//	Ctrl('a') == ControlKey(0x01)
func Ctrl(letter byte) Key {
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	return ControlKey(letter & 0x1f)
}

// Named returns a named key.
func Named(n NamedKey) Key {
	return Key{Kind: KindNamed, Name: n}
}

// AltKey returns the meta combination ESC followed by b.
func AltKey(b byte) Key {
	return Key{Kind: KindAlt, Code: b}
}

// UnknownKey is returned for escape sequences the decoder cannot resolve.
var UnknownKey = Key{Kind: KindUnknown}

// String returns a human-readable representation such as "Ctrl+A", "Alt+b" or "Up".
func (k Key) String() string {
	switch k.Kind {
	case KindChar:
		return fmt.Sprintf("%q", k.Rune)
	case KindControl:
		return "Ctrl+" + string(rune(k.Code|0x40))
	case KindNamed:
		return k.Name.String()
	case KindAlt:
		return "Alt+" + string(rune(k.Code))
	default:
		return "Unknown"
	}
}
