package lineedit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Common errors
var (
	// ErrEOF is returned when the user presses Ctrl+D on an empty line, when
	// input ends, or when the terminal fails. Terminal failures also wrap the
	// underlying error.
	ErrEOF = errors.New("EOF")
	// ErrInterrupted is returned when the user presses Ctrl+C
	ErrInterrupted = errors.New("interrupted")
	// ErrClosed is returned by ReadLine after Close
	ErrClosed = errors.New("prompt closed")
)

// Config holds the configuration for a prompt.
type Config struct {
	Prefix             string         // Prompt prefix (e.g., "$ ")
	Completer          Completer      // Completion provider (nil disables Tab)
	CompletionSentinel rune           // Lines must start with this rune for Tab to complete
	HistoryConfig      *HistoryConfig // History configuration (nil for default)
	ColorScheme        *ColorScheme   // Color scheme (nil for plain output)
	KeyMap             *KeyMap        // Key bindings (nil for default)
	Engine             EngineKind     // Line reading strategy
	Logger             *slog.Logger   // Logger (nil discards)
}

// Option represents a configuration option for prompt
type Option func(*Config)

// WithCompleter sets the completion provider
func WithCompleter(completer Completer) Option {
	return func(c *Config) {
		c.Completer = completer
	}
}

// WithCompletionSentinel sets the rune that activates completion
func WithCompletionSentinel(sentinel rune) Option {
	return func(c *Config) {
		c.CompletionSentinel = sentinel
	}
}

// WithHistory configures history settings with the provided configuration.
//
// Example:
//
//	lineedit.New("$ ", lineedit.WithHistory(&lineedit.HistoryConfig{
//		Enabled:    true,
//		MaxEntries: 100,
//		File:       "~/.myapp_history",
//	}))
func WithHistory(historyConfig *HistoryConfig) Option {
	return func(c *Config) {
		c.HistoryConfig = historyConfig
	}
}

// WithMemoryHistory is a convenience function for memory-only history setup.
func WithMemoryHistory(maxEntries int) Option {
	return func(c *Config) {
		if maxEntries <= 0 {
			maxEntries = defaultMaxEntries
		}
		c.HistoryConfig = &HistoryConfig{
			Enabled:    true,
			MaxEntries: maxEntries,
		}
	}
}

// WithFileHistory is a convenience function for history with file persistence.
// The file is loaded by New and written by Close.
func WithFileHistory(file string, maxEntries int) Option {
	return func(c *Config) {
		if maxEntries <= 0 {
			maxEntries = defaultMaxEntries
		}
		c.HistoryConfig = &HistoryConfig{
			Enabled:     true,
			MaxEntries:  maxEntries,
			File:        file,
			MaxFileSize: defaultMaxFileSize,
			MaxBackups:  defaultMaxBackups,
		}
	}
}

// WithColorScheme sets the color scheme
func WithColorScheme(colorScheme *ColorScheme) Option {
	return func(c *Config) {
		c.ColorScheme = colorScheme
	}
}

// WithKeyMap sets the key bindings
func WithKeyMap(keyMap *KeyMap) Option {
	return func(c *Config) {
		c.KeyMap = keyMap
	}
}

// WithEngine selects the line reading strategy
func WithEngine(kind EngineKind) Option {
	return func(c *Config) {
		c.Engine = kind
	}
}

// WithLogger sets the logger used for diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// Prompt is a line-editing session handle. Create one with New, call ReadLine
// for every line and Close when done.
//
// ReadLine calls are serialized: a second concurrent call waits until the
// first returns, so raw mode is never owned by two sessions. Close waits the
// same way. AddHistory,
// SetCompleter and the other setters may be called from any goroutine,
// including while a ReadLine is in progress. History changes made during a
// session become visible to navigation from the next session.
type Prompt struct {
	session sync.Mutex // held for the duration of one read-line session

	mu             sync.Mutex // guards the fields below
	config         Config
	historyManager *HistoryManager
	closed         bool

	logger   *slog.Logger
	terminal terminalInterface
	renderer *renderer
	engine   engine
}

// New creates a new prompt with the specified prefix and optional configuration.
//
// Example:
//
//	p, err := lineedit.New("$ ",
//		lineedit.WithCompleter(lineedit.NewPrefixCompleter([]string{"help", "history", "quit"})),
//		lineedit.WithMemoryHistory(100),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer p.Close()
//
//	line, err := p.ReadLine()
func New(prefix string, options ...Option) (*Prompt, error) {
	config := Config{
		Prefix: prefix,
	}
	for _, option := range options {
		option(&config)
	}

	var terminal terminalInterface
	switch config.Engine {
	case EngineAdvanced:
		t, err := newRealTerminal()
		if err != nil {
			return nil, fmt.Errorf("failed to create terminal: %w", err)
		}
		terminal = t
	case EngineSimple:
		terminal = newSimpleTerminal()
	default:
		return nil, fmt.Errorf("unknown engine %v", config.Engine)
	}

	p, err := newFromConfig(config, terminal)
	if err != nil {
		_ = terminal.Close()
		return nil, err
	}
	return p, nil
}

func newFromConfig(config Config, terminal terminalInterface) (*Prompt, error) {
	if config.HistoryConfig == nil {
		config.HistoryConfig = DefaultHistoryConfig()
	}
	if config.KeyMap == nil {
		config.KeyMap = NewDefaultKeyMap()
	}
	if config.CompletionSentinel == 0 {
		config.CompletionSentinel = DefaultCompletionSentinel
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}

	historyManager := NewHistoryManager(config.HistoryConfig)
	if err := historyManager.Load(); err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	p := &Prompt{
		config:         config,
		historyManager: historyManager,
		logger:         config.Logger.With(slog.String("engine", config.Engine.String())),
		terminal:       terminal,
		renderer:       newRenderer(terminal, config.ColorScheme),
	}

	switch config.Engine {
	case EngineSimple:
		echo := true
		if st, ok := terminal.(*simpleTerminal); ok {
			echo = st.interactive
		}
		p.engine = &simpleEngine{p: p, echo: echo}
	default:
		p.engine = &advancedEngine{p: p}
	}

	return p, nil
}

// ReadLine reads one line. It returns the accepted text without the trailing
// newline, ErrInterrupted on Ctrl+C, or ErrEOF on Ctrl+D with an empty line,
// end of input or terminal failure.
func (p *Prompt) ReadLine() (string, error) {
	return p.ReadLineContext(context.Background())
}

// ReadLineContext is ReadLine with a context. The context is checked between
// keys; a read that is already blocked waits for the next byte.
func (p *Prompt) ReadLineContext(ctx context.Context) (string, error) {
	p.session.Lock()
	defer p.session.Unlock()

	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return "", ErrClosed
	}

	return p.engine.readLine(ctx)
}

// runSession is the raw-mode read loop: decode a key, dispatch it, render,
// until the line is accepted or cancelled. Raw mode is released on every
// return path.
func (p *Prompt) runSession(ctx context.Context) (string, error) {
	if err := p.terminal.SetRaw(); err != nil {
		return "", fmt.Errorf("failed to enter raw mode: %w", err)
	}
	p.logger.Debug("raw mode acquired")
	defer p.releaseRawMode()

	p.mu.Lock()
	prefix := p.config.Prefix
	history := p.historyManager.History()
	keyMap := p.config.KeyMap
	sentinel := p.config.CompletionSentinel
	p.mu.Unlock()

	buf := NewEditBuffer()
	nav := NewHistoryNavigator(history)
	dispatcher := NewDispatcher(buf, nav, keyMap, p.completer, sentinel)

	if err := p.renderer.renderLine(prefix, buf.Text(), buf.Cursor()); err != nil {
		return "", fmt.Errorf("%w: failed to render prompt: %w", ErrEOF, err)
	}

	for {
		if err := ctx.Err(); err != nil {
			_ = p.renderer.newLine()
			return "", err
		}

		key, err := NextKey(p.terminal)
		if err != nil {
			_ = p.renderer.newLine()
			return "", readFailure(err)
		}

		outcome := dispatcher.Dispatch(key)
		switch outcome.State {
		case StateAccepted:
			_ = p.renderer.newLine()
			return p.accept(buf.Text()), nil
		case StateCancelled:
			if outcome.Reason == CancelInterrupt {
				_ = p.renderer.interrupted()
				return "", ErrInterrupted
			}
			_ = p.renderer.newLine()
			return "", ErrEOF
		}

		if err := p.draw(outcome, prefix, buf); err != nil {
			return "", fmt.Errorf("%w: failed to render: %w", ErrEOF, err)
		}
	}
}

func (p *Prompt) draw(outcome Outcome, prefix string, buf *EditBuffer) error {
	switch outcome.Render {
	case RenderLine:
		return p.renderer.renderLine(prefix, buf.Text(), buf.Cursor())
	case RenderClearScreen:
		return p.renderer.clearScreen(prefix, buf.Text(), buf.Cursor())
	case RenderBell:
		return p.renderer.bell()
	case RenderCandidates:
		width, _, _ := p.terminal.Size()
		return p.renderer.listCandidates(prefix, buf.Text(), buf.Cursor(), outcome.Candidates, width)
	}
	return nil
}

func (p *Prompt) releaseRawMode() {
	if err := p.terminal.Restore(); err != nil {
		p.logger.Warn("failed to restore terminal state", slog.Any("error", err))
		return
	}
	p.logger.Debug("raw mode released")
}

// readFailure maps a read error to the error returned by ReadLine.
func readFailure(err error) error {
	if errors.Is(err, io.EOF) {
		return ErrEOF
	}
	return fmt.Errorf("%w: %w", ErrEOF, err)
}

// accept records an accepted line in the history and returns it.
func (p *Prompt) accept(line string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.historyManager.AddEntry(line)
	return line
}

func (p *Prompt) completer() Completer {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.config.Completer
}

func (p *Prompt) prefix() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.config.Prefix
}

// Close saves history and releases the terminal. It is safe to call more than
// once; only the first call does anything.
//
// Close waits for a ReadLine in progress to return, so the terminal is never
// closed under an active session.
func (p *Prompt) Close() error {
	p.session.Lock()
	defer p.session.Unlock()

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	if err := p.historyManager.Save(); err != nil {
		p.logger.Warn("failed to save history",
			slog.String("file", p.historyManager.File()),
			slog.Any("error", err))
	}
	p.mu.Unlock()

	return p.terminal.Close()
}

// History management methods

// History returns the command history, newest first
func (p *Prompt) History() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.historyManager.History()
}

// AddHistory adds a line to the history and reports whether it was added.
// Empty lines, lines containing a newline and repeats of the newest entry are skipped.
func (p *Prompt) AddHistory(line string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.historyManager.AddEntry(line)
}

// ClearHistory clears the command history
func (p *Prompt) ClearHistory() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.historyManager.ClearHistory()
}

// SetHistory replaces the entire history with a newest-first list. Entries
// AddHistory would reject are dropped.
func (p *Prompt) SetHistory(history []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.historyManager.SetHistory(history)
}

// SaveHistory writes the history to the configured file now instead of waiting for Close
func (p *Prompt) SaveHistory() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.historyManager.Save()
}

// Configuration update methods

// SetPrefix changes the prompt prefix; it applies from the next ReadLine
func (p *Prompt) SetPrefix(prefix string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.config.Prefix = prefix
}

// SetCompleter registers or replaces the completion provider. A nil
// completer disables completion. It takes effect on the next Tab.
func (p *Prompt) SetCompleter(completer Completer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.config.Completer = completer
}
