package lineedit

import "unicode"

// Completer returns the completions for a partial token, in display order.
type Completer func(partial string) []string

// DefaultCompletionSentinel is the rune a line must start with for Tab to complete.
const DefaultCompletionSentinel = '/'

// SessionState is the state of one read-line session.
type SessionState int

// Session states. StateCompleting only lasts while the completion provider runs
// and is never returned in an Outcome.
const (
	StateEditing SessionState = iota
	StateCompleting
	StateAccepted
	StateCancelled
)

// CancelReason tells an interrupt apart from end of file.
type CancelReason int

// Reasons a session can be cancelled.
const (
	CancelNone CancelReason = iota
	CancelInterrupt
	CancelEOF
)

// RenderOp tells the session loop what to draw after a key was dispatched.
type RenderOp int

// Render operations.
const (
	RenderNone RenderOp = iota
	RenderLine
	RenderClearScreen
	RenderBell
	RenderCandidates
)

// Outcome is the result of dispatching one key.
type Outcome struct {
	State      SessionState
	Reason     CancelReason // set when State is StateCancelled
	Render     RenderOp
	Candidates []string // set when Render is RenderCandidates
}

// Done reports whether the session has finished.
func (o Outcome) Done() bool {
	return o.State == StateAccepted || o.State == StateCancelled
}

// Dispatcher applies decoded keys to an EditBuffer and a HistoryNavigator.
type Dispatcher struct {
	buf       *EditBuffer
	nav       *HistoryNavigator
	keyMap    *KeyMap
	completer func() Completer
	sentinel  rune
	state     SessionState
}

// NewDispatcher creates a dispatcher for one session. completer is consulted
// on every Tab so the provider can be swapped while the session runs; it may
// be nil or return nil when completion is disabled.
func NewDispatcher(buf *EditBuffer, nav *HistoryNavigator, keyMap *KeyMap, completer func() Completer, sentinel rune) *Dispatcher {
	if keyMap == nil {
		keyMap = NewDefaultKeyMap()
	}
	return &Dispatcher{
		buf:       buf,
		nav:       nav,
		keyMap:    keyMap,
		completer: completer,
		sentinel:  sentinel,
		state:     StateEditing,
	}
}

// State returns the current session state. It reports StateCompleting while
// the completion provider runs, so a provider can tell it is being called
// from a Tab.
func (d *Dispatcher) State() SessionState {
	return d.state
}

// Dispatch handles one key. Once the session is done every further key is ignored.
func (d *Dispatcher) Dispatch(key Key) Outcome {
	if d.state == StateAccepted || d.state == StateCancelled {
		return Outcome{State: d.state}
	}

	action := d.keyMap.Action(key)
	if action == ActionNone {
		if key.Kind == KindChar && isInsertable(key.Rune) {
			d.buf.Insert(key.Rune)
			return d.redraw()
		}
		return Outcome{State: d.state}
	}

	switch action {
	case ActionSubmit:
		d.state = StateAccepted
		return Outcome{State: d.state}

	case ActionCancel:
		return d.cancel(CancelInterrupt)

	case ActionDeleteOrEOF:
		if d.buf.Len() == 0 {
			return d.cancel(CancelEOF)
		}
		d.buf.ForwardDelete()

	case ActionMoveLeft:
		d.buf.MoveLeft()
	case ActionMoveRight:
		d.buf.MoveRight()
	case ActionMoveHome:
		d.buf.MoveToStart()
	case ActionMoveEnd:
		d.buf.MoveToEnd()
	case ActionMoveWordLeft:
		d.buf.MoveWordBackward()
	case ActionMoveWordRight:
		d.buf.MoveWordForward()

	case ActionDeleteCharBack:
		d.buf.BackwardDelete()
	case ActionDeleteChar:
		d.buf.ForwardDelete()
	case ActionKillToEnd:
		d.buf.KillToEnd()
	case ActionKillToStart:
		d.buf.KillToStart()
	case ActionKillWordBack:
		d.buf.KillWordBackward()
	case ActionDeleteWordForward:
		d.buf.DeleteWordForward()

	case ActionHistoryPrev:
		d.nav.Prev(d.buf)
	case ActionHistoryNext:
		d.nav.Next(d.buf)

	case ActionClearScreen:
		return Outcome{State: d.state, Render: RenderClearScreen}

	case ActionComplete:
		return d.complete()

	default:
		return Outcome{State: d.state}
	}

	return d.redraw()
}

func (d *Dispatcher) redraw() Outcome {
	return Outcome{State: d.state, Render: RenderLine}
}

func (d *Dispatcher) cancel(reason CancelReason) Outcome {
	d.state = StateCancelled
	return Outcome{State: d.state, Reason: reason}
}

// complete runs the Tab subroutine. It only fires when a provider is set and
// the line starts with the sentinel. The token is the text between the
// sentinel and the first whitespace.
//
//	no match       bell, line unchanged
//	one match      token replaced by the match, cursor at end; a space is
//	               added unless whitespace already follows the token
//	several        candidates listed below the line, line unchanged
func (d *Dispatcher) complete() Outcome {
	var completer Completer
	if d.completer != nil {
		completer = d.completer()
	}
	text := []rune(d.buf.Text())
	if completer == nil || len(text) == 0 || text[0] != d.sentinel {
		return Outcome{State: d.state}
	}

	d.state = StateCompleting
	defer func() { d.state = StateEditing }()

	end := 1
	for end < len(text) && !unicode.IsSpace(text[end]) {
		end++
	}
	partial := string(text[1:end])

	matches := completer(partial)
	switch len(matches) {
	case 0:
		return Outcome{State: StateEditing, Render: RenderBell}
	case 1:
		// The token ends at whitespace or at the end of the line.
		rest := string(text[end:])
		if rest == "" {
			rest = " "
		}
		d.buf.SetText(string(d.sentinel) + matches[0] + rest)
		return Outcome{State: StateEditing, Render: RenderLine}
	default:
		return Outcome{
			State:      StateEditing,
			Render:     RenderCandidates,
			Candidates: append([]string{}, matches...),
		}
	}
}

// isInsertable reports whether r is typed text: any graphic rune or any space
// other than the control characters.
func isInsertable(r rune) bool {
	if unicode.IsControl(r) {
		return false
	}
	return unicode.IsGraphic(r) || unicode.IsSpace(r)
}
