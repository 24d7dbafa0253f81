package lineedit

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bufferAt returns a buffer holding text with the cursor at pos.
func bufferAt(text string, pos int) *EditBuffer {
	b := NewEditBuffer()
	b.SetText(text)
	b.SetCursor(pos)
	return b
}

func TestEditBufferInsert(t *testing.T) {
	t.Parallel()

	b := NewEditBuffer()
	for _, r := range "hllo" {
		b.Insert(r)
	}
	b.SetCursor(1)
	b.Insert('e')

	assert.Equal(t, "hello", b.Text())
	assert.Equal(t, 2, b.Cursor())
}

func TestEditBufferDelete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		text       string
		cursor     int
		op         func(*EditBuffer)
		wantText   string
		wantCursor int
	}{
		{"backward in middle", "hello", 3, (*EditBuffer).BackwardDelete, "helo", 2},
		{"backward at start is no-op", "hello", 0, (*EditBuffer).BackwardDelete, "hello", 0},
		{"backward at end", "hello", 5, (*EditBuffer).BackwardDelete, "hell", 4},
		{"forward in middle", "hello", 1, (*EditBuffer).ForwardDelete, "hllo", 1},
		{"forward at end is no-op", "hello", 5, (*EditBuffer).ForwardDelete, "hello", 5},
		{"forward on empty is no-op", "", 0, (*EditBuffer).ForwardDelete, "", 0},
		{"backward on empty is no-op", "", 0, (*EditBuffer).BackwardDelete, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := bufferAt(tt.text, tt.cursor)
			tt.op(b)
			assert.Equal(t, tt.wantText, b.Text())
			assert.Equal(t, tt.wantCursor, b.Cursor())
		})
	}
}

func TestEditBufferMovement(t *testing.T) {
	t.Parallel()

	b := bufferAt("hello", 5)

	b.MoveRight()
	assert.Equal(t, 5, b.Cursor(), "MoveRight at end must not move")

	b.MoveLeft()
	assert.Equal(t, 4, b.Cursor())

	b.MoveToStart()
	assert.Equal(t, 0, b.Cursor())

	b.MoveLeft()
	assert.Equal(t, 0, b.Cursor(), "MoveLeft at start must not move")

	b.MoveRight()
	assert.Equal(t, 1, b.Cursor())

	b.MoveToEnd()
	assert.Equal(t, 5, b.Cursor())
}

func TestEditBufferSetCursorClamps(t *testing.T) {
	t.Parallel()

	b := bufferAt("abc", 0)
	b.SetCursor(-4)
	assert.Equal(t, 0, b.Cursor())
	b.SetCursor(99)
	assert.Equal(t, 3, b.Cursor())
}

func TestEditBufferUnicode(t *testing.T) {
	t.Parallel()

	b := NewEditBuffer()
	for _, r := range "日本語" {
		b.Insert(r)
	}
	assert.Equal(t, 3, b.Len())

	b.MoveLeft()
	b.BackwardDelete()
	assert.Equal(t, "日語", b.Text())
	assert.Equal(t, 1, b.Cursor())
}

func TestWordBoundaries(t *testing.T) {
	t.Parallel()

	b := bufferAt("foo bar_baz  qux9", 0)

	tests := []struct {
		pos          int
		wantBackward int
		wantForward  int
	}{
		{pos: 0, wantBackward: 0, wantForward: 3},
		{pos: 2, wantBackward: 0, wantForward: 3},
		{pos: 3, wantBackward: 0, wantForward: 11},
		{pos: 4, wantBackward: 0, wantForward: 11},
		{pos: 7, wantBackward: 4, wantForward: 11},
		{pos: 11, wantBackward: 4, wantForward: 17},
		{pos: 13, wantBackward: 4, wantForward: 17},
		{pos: 17, wantBackward: 13, wantForward: 17},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("pos %d", tt.pos), func(t *testing.T) {
			assert.Equal(t, tt.wantBackward, b.WordBoundaryBackward(tt.pos))
			assert.Equal(t, tt.wantForward, b.WordBoundaryForward(tt.pos))
		})
	}
}

func TestWordBoundariesInverse(t *testing.T) {
	t.Parallel()

	corpus := []string{
		"hello world",
		"a b c",
		"one  two   three",
		"x1 y_2 z3",
	}

	for _, text := range corpus {
		b := bufferAt(text, 0)
		// From every word start, forward then backward returns to the start;
		// from every word end, backward then forward returns to the end.
		for pos := 0; pos <= b.Len(); pos++ {
			atStart := pos < b.Len() && isWordChar(b.text[pos]) && (pos == 0 || !isWordChar(b.text[pos-1]))
			if atStart {
				assert.Equal(t, pos, b.WordBoundaryBackward(b.WordBoundaryForward(pos)), "%q start %d", text, pos)
			}
			atEnd := pos > 0 && isWordChar(b.text[pos-1]) && (pos == b.Len() || !isWordChar(b.text[pos]))
			if atEnd {
				assert.Equal(t, pos, b.WordBoundaryForward(b.WordBoundaryBackward(pos)), "%q end %d", text, pos)
			}
		}
	}
}

func TestMoveWord(t *testing.T) {
	t.Parallel()

	b := bufferAt("cd  /tmp/dir", 12)
	b.MoveWordBackward()
	assert.Equal(t, 9, b.Cursor())
	b.MoveWordBackward()
	assert.Equal(t, 5, b.Cursor())
	b.MoveWordBackward()
	assert.Equal(t, 0, b.Cursor())
	b.MoveWordBackward()
	assert.Equal(t, 0, b.Cursor())

	b.MoveWordForward()
	assert.Equal(t, 2, b.Cursor())
	b.MoveWordForward()
	assert.Equal(t, 8, b.Cursor())
}

func TestKillToEnd(t *testing.T) {
	t.Parallel()

	b := NewEditBuffer()
	for _, r := range "hello" {
		b.Insert(r)
	}
	b.MoveLeft()
	b.MoveLeft()
	require.Equal(t, 3, b.Cursor())

	b.KillToEnd()
	assert.Equal(t, "hel", b.Text())
	assert.Equal(t, 3, b.Cursor())
	assert.Equal(t, "lo", b.KillRing().Front())

	// Nothing left to kill: the ring is unchanged.
	b.KillToEnd()
	assert.Equal(t, 1, b.KillRing().Len())
}

func TestKillToStart(t *testing.T) {
	t.Parallel()

	b := bufferAt("hello world", 6)
	b.KillToStart()

	assert.Equal(t, "world", b.Text())
	assert.Equal(t, 0, b.Cursor())
	assert.Equal(t, "hello ", b.KillRing().Front())

	b.KillToStart()
	assert.Equal(t, 1, b.KillRing().Len(), "empty kill must not be recorded")
}

func TestKillWordBackward(t *testing.T) {
	t.Parallel()

	b := bufferAt("git commit -m", 10)
	b.KillWordBackward()

	assert.Equal(t, "git  -m", b.Text())
	assert.Equal(t, 4, b.Cursor())
	assert.Equal(t, "commit", b.KillRing().Front())

	b.KillWordBackward()
	assert.Equal(t, " -m", b.Text())
	assert.Equal(t, 0, b.Cursor())
	assert.Equal(t, "git ", b.KillRing().Front())
	assert.Equal(t, []string{"git ", "commit"}, b.KillRing().Entries())
}

func TestDeleteWordForward(t *testing.T) {
	t.Parallel()

	b := bufferAt("echo hello world", 4)
	b.DeleteWordForward()

	assert.Equal(t, "echo world", b.Text())
	assert.Equal(t, 4, b.Cursor())
	assert.Equal(t, 0, b.KillRing().Len(), "delete word forward must not touch the kill ring")

	b.MoveToEnd()
	b.DeleteWordForward()
	assert.Equal(t, "echo world", b.Text())
}

func TestKillRingCapacity(t *testing.T) {
	t.Parallel()

	b := NewEditBuffer()
	for i := range 11 {
		b.SetText(fmt.Sprintf("kill%d", i))
		b.KillToStart()
	}

	ring := b.KillRing()
	assert.Equal(t, killRingCapacity, ring.Len())
	assert.Equal(t, "kill10", ring.Front())
	assert.NotContains(t, ring.Entries(), "kill0")
	assert.Equal(t, "kill1", ring.Entries()[killRingCapacity-1])
}

func TestKillRingEmpty(t *testing.T) {
	t.Parallel()

	var ring KillRing
	assert.Equal(t, "", ring.Front())
	ring.Push("")
	assert.Equal(t, 0, ring.Len())
}

func TestInsertBackwardDeleteIdentity(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "a", "hello", "héllo wörld"} {
		for pos := 0; pos <= len([]rune(text)); pos++ {
			b := bufferAt(text, pos)
			b.Insert('Z')
			b.BackwardDelete()
			assert.Equal(t, text, b.Text())
			assert.Equal(t, pos, b.Cursor())
		}
	}
}

func TestCursorInvariant(t *testing.T) {
	t.Parallel()

	ops := []func(*EditBuffer){
		func(b *EditBuffer) { b.Insert('x') },
		(*EditBuffer).BackwardDelete,
		(*EditBuffer).ForwardDelete,
		(*EditBuffer).MoveLeft,
		(*EditBuffer).MoveRight,
		(*EditBuffer).MoveToStart,
		(*EditBuffer).MoveToEnd,
		(*EditBuffer).MoveWordBackward,
		(*EditBuffer).MoveWordForward,
		(*EditBuffer).KillToEnd,
		(*EditBuffer).KillToStart,
		(*EditBuffer).KillWordBackward,
		(*EditBuffer).DeleteWordForward,
		func(b *EditBuffer) { b.Insert(' ') },
	}

	b := bufferAt("some text_here", 6)
	// Deterministic walk through every op pairing.
	for i := range ops {
		for j := range ops {
			ops[i](b)
			ops[j](b)
			require.GreaterOrEqual(t, b.Cursor(), 0)
			require.LessOrEqual(t, b.Cursor(), b.Len())
		}
	}
}
