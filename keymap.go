package lineedit

// KeyAction represents the action to perform when a key is pressed
type KeyAction int

// Key action constants define the actions that can be performed when keys are pressed
const (
	ActionNone KeyAction = iota
	ActionSubmit
	ActionCancel
	ActionDeleteOrEOF
	ActionMoveLeft
	ActionMoveRight
	ActionMoveHome
	ActionMoveEnd
	ActionMoveWordLeft
	ActionMoveWordRight
	ActionDeleteCharBack
	ActionDeleteChar
	ActionKillToEnd
	ActionKillToStart
	ActionKillWordBack
	ActionDeleteWordForward
	ActionHistoryPrev
	ActionHistoryNext
	ActionClearScreen
	ActionComplete
)

var actionNames = map[KeyAction]string{
	ActionNone:              "none",
	ActionSubmit:            "submit",
	ActionCancel:            "cancel",
	ActionDeleteOrEOF:       "delete-or-eof",
	ActionMoveLeft:          "move-left",
	ActionMoveRight:         "move-right",
	ActionMoveHome:          "move-home",
	ActionMoveEnd:           "move-end",
	ActionMoveWordLeft:      "move-word-left",
	ActionMoveWordRight:     "move-word-right",
	ActionDeleteCharBack:    "delete-char-backward",
	ActionDeleteChar:        "delete-char",
	ActionKillToEnd:         "kill-to-end",
	ActionKillToStart:       "kill-to-start",
	ActionKillWordBack:      "kill-word-backward",
	ActionDeleteWordForward: "delete-word-forward",
	ActionHistoryPrev:       "history-prev",
	ActionHistoryNext:       "history-next",
	ActionClearScreen:       "clear-screen",
	ActionComplete:          "complete",
}

func (a KeyAction) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// KeyMap holds the key binding configuration
type KeyMap struct {
	bindings map[Key]KeyAction
}

// NewDefaultKeyMap creates the emacs-style bindings:
//
//	Ctrl+A / Home     move to start
//	Ctrl+E / End      move to end
//	Ctrl+B / Left     move left
//	Ctrl+F / Right    move right
//	Alt+B             word backward
//	Alt+F             word forward
//	Backspace         delete before cursor
//	Delete            delete at cursor
//	Ctrl+D            delete at cursor, or EOF when the line is empty
//	Ctrl+K            kill to end
//	Ctrl+U            kill to start
//	Ctrl+W            kill word backward
//	Alt+D             delete word forward
//	Ctrl+P / Up       history previous
//	Ctrl+N / Down     history next
//	Ctrl+L            clear screen and redraw
//	Ctrl+C            cancel
//	Tab               complete
//	Enter             accept line
//
// Printable characters are inserted without needing a binding.
func NewDefaultKeyMap() *KeyMap {
	km := &KeyMap{bindings: make(map[Key]KeyAction)}

	km.Bind(Named(NamedEnter), ActionSubmit)
	km.Bind(Ctrl('c'), ActionCancel)
	km.Bind(Ctrl('d'), ActionDeleteOrEOF)

	km.Bind(Ctrl('a'), ActionMoveHome)
	km.Bind(Named(NamedHome), ActionMoveHome)
	km.Bind(Ctrl('e'), ActionMoveEnd)
	km.Bind(Named(NamedEnd), ActionMoveEnd)
	km.Bind(Ctrl('b'), ActionMoveLeft)
	km.Bind(Named(NamedLeft), ActionMoveLeft)
	km.Bind(Ctrl('f'), ActionMoveRight)
	km.Bind(Named(NamedRight), ActionMoveRight)

	// Terminals send the lower-case letter after ESC; Shift+Alt sends the upper-case one.
	for _, b := range []byte{'b', 'B'} {
		km.Bind(AltKey(b), ActionMoveWordLeft)
	}
	for _, b := range []byte{'f', 'F'} {
		km.Bind(AltKey(b), ActionMoveWordRight)
	}
	for _, b := range []byte{'d', 'D'} {
		km.Bind(AltKey(b), ActionDeleteWordForward)
	}

	km.Bind(Named(NamedBackspace), ActionDeleteCharBack)
	km.Bind(Named(NamedDelete), ActionDeleteChar)
	km.Bind(Ctrl('k'), ActionKillToEnd)
	km.Bind(Ctrl('u'), ActionKillToStart)
	km.Bind(Ctrl('w'), ActionKillWordBack)

	km.Bind(Ctrl('p'), ActionHistoryPrev)
	km.Bind(Named(NamedUp), ActionHistoryPrev)
	km.Bind(Ctrl('n'), ActionHistoryNext)
	km.Bind(Named(NamedDown), ActionHistoryNext)

	km.Bind(Ctrl('l'), ActionClearScreen)
	km.Bind(Named(NamedTab), ActionComplete)

	return km
}

// Bind adds or updates the action for a key.
//
// Example:
//
//	keyMap := lineedit.NewDefaultKeyMap()
//	// Make Alt+Backspace kill the previous word
//	keyMap.Bind(lineedit.AltKey(0x7f), lineedit.ActionKillWordBack)
func (km *KeyMap) Bind(key Key, action KeyAction) {
	km.bindings[key] = action
}

// Unbind removes a binding so the key is ignored (or inserted, if printable).
func (km *KeyMap) Unbind(key Key) {
	delete(km.bindings, key)
}

// Action returns the action for a key, or ActionNone if not bound
func (km *KeyMap) Action(key Key) KeyAction {
	if km == nil || km.bindings == nil {
		return ActionNone
	}
	return km.bindings[key]
}
