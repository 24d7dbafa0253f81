package lineedit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// EngineKind selects how a Prompt reads lines. It is fixed when the Prompt is created.
type EngineKind int

const (
	// EngineAdvanced puts the tty in raw mode and edits the line itself.
	EngineAdvanced EngineKind = iota
	// EngineSimple leaves the tty in cooked mode and lets the host edit the line.
	// Key bindings, history navigation and completion are unavailable.
	EngineSimple
)

func (k EngineKind) String() string {
	switch k {
	case EngineAdvanced:
		return "advanced"
	case EngineSimple:
		return "simple"
	default:
		return fmt.Sprintf("EngineKind(%d)", int(k))
	}
}

// engine reads one line on behalf of a Prompt. The caller holds the Prompt's
// session lock for the whole call.
type engine interface {
	readLine(ctx context.Context) (string, error)
}

type advancedEngine struct {
	p *Prompt
}

func (e *advancedEngine) readLine(ctx context.Context) (string, error) {
	return e.p.runSession(ctx)
}

type simpleEngine struct {
	p    *Prompt
	echo bool // the host echoes typed input, so no newline is needed after reading
}

// readLine prints the prefix and reads bytes up to a newline. A final line
// without a newline is still returned; an empty stream is ErrEOF.
func (e *simpleEngine) readLine(ctx context.Context) (string, error) {
	p := e.p
	if _, err := p.terminal.Write([]byte(p.prefix())); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEOF, err)
	}

	var line bytes.Buffer
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		b, err := p.terminal.ReadByte()
		if err != nil {
			if !e.echo {
				_, _ = p.terminal.Write([]byte("\n"))
			}
			if line.Len() > 0 && errors.Is(err, io.EOF) {
				return p.accept(trimCR(line.String())), nil
			}
			return "", readFailure(err)
		}
		if b == '\n' {
			break
		}
		line.WriteByte(b)
	}

	if !e.echo {
		_, _ = p.terminal.Write([]byte("\n"))
	}
	return p.accept(trimCR(line.String())), nil
}

func trimCR(s string) string {
	return strings.TrimSuffix(s, "\r")
}
