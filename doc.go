// Package lineedit reads lines from a terminal with emacs-style editing,
// a kill ring, command history and sentinel-triggered completion.
//
// A Prompt is a session handle. ReadLine switches the terminal to raw mode,
// decodes the incoming bytes into keys, applies each key to an edit buffer
// and redraws the line after every change, until Enter accepts the line or
// Ctrl+C / Ctrl+D cancels it. Raw mode is released before ReadLine returns,
// whatever the outcome.
//
// Quick Start:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		"github.com/nao1215/lineedit"
//	)
//
//	func main() {
//		p, err := lineedit.New("> ", lineedit.WithMemoryHistory(100))
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer p.Close()
//
//		line, err := p.ReadLine()
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Printf("You entered: %s\n", line)
//	}
//
// Key Bindings:
//
//   - Ctrl+A / Home: Move to start of line
//   - Ctrl+E / End: Move to end of line
//   - Ctrl+B / Left, Ctrl+F / Right: Move one character
//   - Alt+B / Alt+F: Move one word
//   - Backspace / Delete: Delete before / at the cursor
//   - Ctrl+D: Delete at cursor, or return ErrEOF on an empty line
//   - Ctrl+K / Ctrl+U: Kill to end / start of line
//   - Ctrl+W: Kill word backwards
//   - Alt+D: Delete word forwards
//   - Ctrl+P / Up, Ctrl+N / Down: Walk history
//   - Ctrl+L: Clear screen and redraw
//   - Ctrl+C: Return ErrInterrupted
//   - Tab: Complete
//   - Enter: Accept line
//
// Completion:
//
// Completion only applies to lines starting with the sentinel rune ('/' by
// default). The text between the sentinel and the first space is passed to
// the Completer. One match replaces the token; several are listed below the
// line; none rings the bell.
//
//	p, _ := lineedit.New("> ",
//		lineedit.WithCompleter(lineedit.NewFuzzyCompleter([]string{"help", "history", "quit"})),
//	)
//
// Engines:
//
// EngineAdvanced (the default) edits the line itself in raw mode. EngineSimple
// leaves the terminal alone and reads whatever the host's line discipline
// delivers, for environments without a usable tty. The engine is chosen once,
// with WithEngine.
//
// History:
//
// Accepted lines are added newest-first, skipping empty lines and repeats of
// the newest entry. With WithFileHistory the history is loaded by New and
// saved by Close; the file lists entries oldest-first, one per line.
//
// Thread Safety:
//
// ReadLine calls are serialized per Prompt. AddHistory, SetCompleter,
// SetPrefix and the other setters are safe to call from other goroutines
// while a ReadLine is in progress.
package lineedit
