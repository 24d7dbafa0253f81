package lineedit

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ANSI control sequences used by the renderer.
const (
	seqClearLine   = "\r\x1b[K"
	seqClearScreen = "\x1b[H\x1b[2J"
	seqBell        = "\a"
	seqNewLine     = "\r\n"
)

// candidateGap is the number of spaces between listed candidate columns.
const candidateGap = 2

// renderer redraws the prompt line.
//
// Every redraw rewrites the whole line: return to column 0, clear to end of
// line, write prefix and text, then step the cursor back over whatever
// follows the editing position. The terminal is in raw mode, so line breaks
// are written as CR LF.
type renderer struct {
	output      io.Writer
	colorScheme *ColorScheme
}

func newRenderer(output io.Writer, colorScheme *ColorScheme) *renderer {
	return &renderer{
		output:      output,
		colorScheme: colorScheme,
	}
}

// renderLine draws prefix and text and leaves the terminal cursor at cursor (in runes).
func (r *renderer) renderLine(prefix, text string, cursor int) error {
	_, err := io.WriteString(r.output, r.line(prefix, text, cursor))
	return err
}

func (r *renderer) line(prefix, text string, cursor int) string {
	var sb strings.Builder
	sb.WriteString(seqClearLine)
	sb.WriteString(r.colorScheme.paint(prefix, func(cs *ColorScheme) Color { return cs.Prefix }))
	sb.WriteString(r.colorScheme.paint(text, func(cs *ColorScheme) Color { return cs.Input }))

	runes := []rune(text)
	if cursor >= 0 && cursor < len(runes) {
		if back := runewidth.StringWidth(string(runes[cursor:])); back > 0 {
			fmt.Fprintf(&sb, "\x1b[%dD", back)
		}
	}
	return sb.String()
}

// clearScreen wipes the terminal, homes the cursor and redraws the line.
func (r *renderer) clearScreen(prefix, text string, cursor int) error {
	_, err := io.WriteString(r.output, seqClearScreen+r.line(prefix, text, cursor))
	return err
}

// bell rings the terminal bell.
func (r *renderer) bell() error {
	_, err := io.WriteString(r.output, seqBell)
	return err
}

// listCandidates prints candidates in columns below the line, then redraws
// the line underneath them.
func (r *renderer) listCandidates(prefix, text string, cursor int, candidates []string, width int) error {
	var sb strings.Builder
	sb.WriteString(seqNewLine)
	for _, row := range layoutColumns(candidates, width) {
		sb.WriteString(seqClearLine)
		sb.WriteString(r.colorScheme.paint(row, func(cs *ColorScheme) Color { return cs.Candidate }))
		sb.WriteString(seqNewLine)
	}
	sb.WriteString(r.line(prefix, text, cursor))
	_, err := io.WriteString(r.output, sb.String())
	return err
}

// newLine moves to the start of the next line, used when a session ends.
func (r *renderer) newLine() error {
	_, err := io.WriteString(r.output, seqNewLine)
	return err
}

// interrupted echoes ^C and moves to the next line.
func (r *renderer) interrupted() error {
	_, err := io.WriteString(r.output, "^C"+seqNewLine)
	return err
}

// layoutColumns arranges items into rows of equally wide columns that fit in
// width display cells, filling column by column like shells do. Items wider
// than the terminal get a row of their own.
func layoutColumns(items []string, width int) []string {
	if len(items) == 0 {
		return nil
	}

	colWidth := 0
	for _, item := range items {
		colWidth = max(colWidth, runewidth.StringWidth(item))
	}
	colWidth += candidateGap

	cols := 1
	if width > 0 {
		cols = max(1, width/colWidth)
	}
	rows := (len(items) + cols - 1) / cols

	lines := make([]string, 0, rows)
	for row := range rows {
		var sb strings.Builder
		for col := range cols {
			i := col*rows + row
			if i >= len(items) {
				break
			}
			last := col == cols-1 || (col+1)*rows+row >= len(items)
			if last {
				sb.WriteString(items[i])
			} else {
				sb.WriteString(runewidth.FillRight(items[i], colWidth))
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}
