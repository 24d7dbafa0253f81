package lineedit

import "unicode"

// EditBuffer holds the line being edited: its runes, the cursor and the kill ring.
//
// The cursor is an index into the rune slice and always satisfies
// 0 <= cursor <= len(text). Every operation is total; requests that would
// move past a boundary or delete nothing are silently ignored.
//
// An EditBuffer is owned by exactly one read-line session and mutated in place.
type EditBuffer struct {
	text     []rune
	cursor   int
	killRing KillRing
}

// NewEditBuffer returns an empty buffer.
func NewEditBuffer() *EditBuffer {
	return &EditBuffer{}
}

// Text returns the buffer contents.
func (b *EditBuffer) Text() string {
	return string(b.text)
}

// Cursor returns the cursor position in runes.
func (b *EditBuffer) Cursor() int {
	return b.cursor
}

// Len returns the number of runes in the buffer.
func (b *EditBuffer) Len() int {
	return len(b.text)
}

// KillRing returns the buffer's kill ring.
func (b *EditBuffer) KillRing() *KillRing {
	return &b.killRing
}

// SetText replaces the contents and moves the cursor to the end.
// The kill ring is preserved.
func (b *EditBuffer) SetText(text string) {
	b.text = []rune(text)
	b.cursor = len(b.text)
}

// SetCursor moves the cursor, clamping to the valid range.
func (b *EditBuffer) SetCursor(pos int) {
	b.cursor = max(0, min(pos, len(b.text)))
}

// Insert splices r at the cursor and advances the cursor by one.
func (b *EditBuffer) Insert(r rune) {
	b.text = append(b.text[:b.cursor], append([]rune{r}, b.text[b.cursor:]...)...)
	b.cursor++
}

// BackwardDelete removes the rune before the cursor.
func (b *EditBuffer) BackwardDelete() {
	if b.cursor == 0 {
		return
	}
	b.text = append(b.text[:b.cursor-1], b.text[b.cursor:]...)
	b.cursor--
}

// ForwardDelete removes the rune under the cursor.
func (b *EditBuffer) ForwardDelete() {
	if b.cursor >= len(b.text) {
		return
	}
	b.text = append(b.text[:b.cursor], b.text[b.cursor+1:]...)
}

// MoveLeft moves the cursor one rune left.
func (b *EditBuffer) MoveLeft() {
	if b.cursor > 0 {
		b.cursor--
	}
}

// MoveRight moves the cursor one rune right.
func (b *EditBuffer) MoveRight() {
	if b.cursor < len(b.text) {
		b.cursor++
	}
}

// MoveToStart moves the cursor to the beginning of the line.
func (b *EditBuffer) MoveToStart() {
	b.cursor = 0
}

// MoveToEnd moves the cursor past the last rune.
func (b *EditBuffer) MoveToEnd() {
	b.cursor = len(b.text)
}

// WordBoundaryBackward returns the start of the word at or before pos.
//
// Starting at pos it first skips non-word runes going left, then skips word
// runes going left. Word runes are defined by isWordChar.
func (b *EditBuffer) WordBoundaryBackward(pos int) int {
	pos = max(0, min(pos, len(b.text)))
	for pos > 0 && !isWordChar(b.text[pos-1]) {
		pos--
	}
	for pos > 0 && isWordChar(b.text[pos-1]) {
		pos--
	}
	return pos
}

// WordBoundaryForward returns the end of the word at or after pos.
// It mirrors WordBoundaryBackward.
func (b *EditBuffer) WordBoundaryForward(pos int) int {
	pos = max(0, min(pos, len(b.text)))
	for pos < len(b.text) && !isWordChar(b.text[pos]) {
		pos++
	}
	for pos < len(b.text) && isWordChar(b.text[pos]) {
		pos++
	}
	return pos
}

// MoveWordBackward moves the cursor to the previous word boundary.
func (b *EditBuffer) MoveWordBackward() {
	b.cursor = b.WordBoundaryBackward(b.cursor)
}

// MoveWordForward moves the cursor to the next word boundary.
func (b *EditBuffer) MoveWordForward() {
	b.cursor = b.WordBoundaryForward(b.cursor)
}

// KillToEnd removes everything from the cursor to the end of the line and
// pushes it onto the kill ring. The cursor does not move.
func (b *EditBuffer) KillToEnd() {
	b.killRing.Push(b.cut(b.cursor, len(b.text)))
}

// KillToStart removes everything before the cursor and pushes it onto the
// kill ring. The cursor moves to 0.
func (b *EditBuffer) KillToStart() {
	b.killRing.Push(b.cut(0, b.cursor))
	b.cursor = 0
}

// KillWordBackward removes the word before the cursor, pushes it onto the
// kill ring and moves the cursor to where the word started.
func (b *EditBuffer) KillWordBackward() {
	start := b.WordBoundaryBackward(b.cursor)
	b.killRing.Push(b.cut(start, b.cursor))
	b.cursor = start
}

// DeleteWordForward removes the word after the cursor. The kill ring is not touched.
func (b *EditBuffer) DeleteWordForward() {
	b.cut(b.cursor, b.WordBoundaryForward(b.cursor))
}

// cut removes text[from:to] and returns it. The cursor is left for the caller to adjust.
func (b *EditBuffer) cut(from, to int) string {
	if from >= to {
		return ""
	}
	removed := string(b.text[from:to])
	b.text = append(b.text[:from], b.text[to:]...)
	return removed
}

// isWordChar determines if a character is part of a word for navigation and editing operations.
//
// Letters, digits and underscore are word characters; everything else
// (spaces, punctuation, symbols) separates words.
func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
