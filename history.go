package lineedit

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// HistoryConfig holds all history-related configuration.
//
// File path supports multiple formats:
// - Empty string: Memory-only history (no persistence)
// - Absolute path: "/home/user/.app_history"
// - Home directory: "~/.app_history"
// - Relative path: "./app_history" (converted to absolute)
// - XDG compliant: Use DefaultHistoryFile() for "~/.config/lineedit/history"
type HistoryConfig struct {
	Enabled     bool   // Enable/disable history functionality
	MaxEntries  int    // Maximum number of entries to keep in memory (default: 1000)
	File        string // File path for history persistence (empty = memory only)
	MaxFileSize int64  // Maximum file size in bytes before rotation (default: 1MB)
	MaxBackups  int    // Maximum number of backup files to keep (default: 3)
}

const (
	defaultMaxEntries  = 1000
	defaultMaxFileSize = 1024 * 1024
	defaultMaxBackups  = 3

	// rotationKeepThreshold is the history size below which rotation keeps every entry.
	rotationKeepThreshold = 100
)

// DefaultHistoryConfig returns a default history configuration following XDG Base Directory Specification
func DefaultHistoryConfig() *HistoryConfig {
	return &HistoryConfig{
		Enabled:     true,
		MaxEntries:  defaultMaxEntries,
		File:        "",
		MaxFileSize: defaultMaxFileSize,
		MaxBackups:  defaultMaxBackups,
	}
}

// DefaultHistoryFile returns the default history file path following XDG Base Directory Specification.
// Returns ~/.config/lineedit/history or $XDG_CONFIG_HOME/lineedit/history if XDG_CONFIG_HOME is set.
func DefaultHistoryFile() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "lineedit", "history")
}

// HistoryManager owns the accepted-line history and its persistence.
//
// Entries are kept newest-first. A line is added only when it is non-empty,
// contains no newline and differs from the newest entry; older duplicates are
// allowed. When more than MaxEntries lines are held, the oldest are dropped.
//
// HistoryManager is not safe for concurrent use; Prompt serializes access to it.
type HistoryManager struct {
	config  *HistoryConfig
	history []string
}

// NewHistoryManager creates a new history manager with the given configuration
func NewHistoryManager(config *HistoryConfig) *HistoryManager {
	if config == nil {
		config = DefaultHistoryConfig()
	}
	if config.MaxEntries <= 0 {
		config.MaxEntries = defaultMaxEntries
	}
	if config.MaxFileSize <= 0 {
		config.MaxFileSize = defaultMaxFileSize
	}
	if config.MaxBackups < 0 {
		config.MaxBackups = defaultMaxBackups
	}

	if config.File != "" {
		if absPath, err := expandHistoryPath(config.File); err == nil {
			config.File = absPath
		}
	}

	return &HistoryManager{
		config:  config,
		history: make([]string, 0),
	}
}

// IsEnabled returns whether history functionality is enabled
func (hm *HistoryManager) IsEnabled() bool {
	return hm.config.Enabled
}

// File returns the resolved history file path, or "" for memory-only history.
func (hm *HistoryManager) File() string {
	return hm.config.File
}

// Load replaces the in-memory history with the contents of the configured file.
// A missing file is not an error.
func (hm *HistoryManager) Load() error {
	if !hm.config.Enabled || hm.config.File == "" {
		return nil
	}

	history, err := LoadHistoryFile(hm.config.File)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	hm.history = history
	hm.trim()
	return nil
}

// Save writes the in-memory history to the configured file, rotating it first
// when it has grown past MaxFileSize.
func (hm *HistoryManager) Save() error {
	if !hm.config.Enabled || hm.config.File == "" {
		return nil
	}

	if err := hm.rotateIfNeeded(); err != nil {
		return fmt.Errorf("failed to rotate history file: %w", err)
	}

	dir := filepath.Dir(hm.config.File)
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	return SaveHistoryFile(hm.config.File, hm.history)
}

// AddEntry records an accepted line and reports whether it was added.
func (hm *HistoryManager) AddEntry(entry string) bool {
	if !hm.config.Enabled || entry == "" || strings.ContainsAny(entry, "\r\n") {
		return false
	}
	if len(hm.history) > 0 && hm.history[0] == entry {
		return false
	}

	hm.history = append([]string{entry}, hm.history...)
	hm.trim()
	return true
}

// History returns a newest-first copy of the current history
func (hm *HistoryManager) History() []string {
	if !hm.config.Enabled {
		return []string{}
	}
	return append([]string{}, hm.history...)
}

// SetHistory replaces the current history with a newest-first list. Entries
// are replayed oldest first through AddEntry, so lines it would reject are
// dropped and the result always survives a save and load unchanged.
func (hm *HistoryManager) SetHistory(history []string) {
	if !hm.config.Enabled {
		return
	}
	hm.history = make([]string, 0, min(len(history), hm.config.MaxEntries))
	for i := len(history) - 1; i >= 0; i-- {
		hm.AddEntry(history[i])
	}
}

// ClearHistory clears the current history
func (hm *HistoryManager) ClearHistory() {
	if !hm.config.Enabled {
		return
	}
	hm.history = []string{}
}

func (hm *HistoryManager) trim() {
	if len(hm.history) > hm.config.MaxEntries {
		hm.history = hm.history[:hm.config.MaxEntries]
	}
}

// rotateIfNeeded checks if the history file needs rotation and performs it
func (hm *HistoryManager) rotateIfNeeded() error {
	info, err := os.Stat(hm.config.File)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if info.Size() < hm.config.MaxFileSize {
		return nil
	}

	return hm.rotateHistoryFile()
}

// rotateHistoryFile shifts file.N backups up by one, moves the current file to
// file.1 and halves the in-memory history so the next file starts smaller.
func (hm *HistoryManager) rotateHistoryFile() error {
	if hm.config.MaxBackups > 0 {
		oldestBackup := hm.config.File + "." + strconv.Itoa(hm.config.MaxBackups)
		if _, err := os.Stat(oldestBackup); err == nil {
			if err := os.Remove(oldestBackup); err != nil {
				return fmt.Errorf("failed to remove oldest backup: %w", err)
			}
		}

		for i := hm.config.MaxBackups - 1; i >= 1; i-- {
			oldFile := hm.config.File + "." + strconv.Itoa(i)
			newFile := hm.config.File + "." + strconv.Itoa(i+1)

			if _, err := os.Stat(oldFile); err == nil {
				if err := os.Rename(oldFile, newFile); err != nil {
					return fmt.Errorf("failed to rotate backup %d: %w", i, err)
				}
			}
		}

		if err := os.Rename(hm.config.File, hm.config.File+".1"); err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}
	}

	keepEntries := len(hm.history) / 2
	if keepEntries < rotationKeepThreshold {
		keepEntries = len(hm.history)
	}
	hm.history = hm.history[:keepEntries]
	return nil
}

// SaveHistoryFile writes a newest-first history to path.
//
// The file holds one entry per line, oldest first, each terminated by a newline.
func SaveHistoryFile(path string, history []string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create history file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for i := len(history) - 1; i >= 0; i-- {
		if _, err := w.WriteString(history[i] + "\n"); err != nil {
			return fmt.Errorf("failed to write history entry: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return file.Close()
}

// LoadHistoryFile reads a file written by SaveHistoryFile and returns its
// entries newest-first. Blank lines are skipped.
func LoadHistoryFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history file: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), defaultMaxFileSize)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}

	history := make([]string, len(lines))
	for i, line := range lines {
		history[len(lines)-1-i] = line
	}
	return history, nil
}

// expandHistoryPath expands and validates the history file path
// Supports:
// - Absolute paths: /home/user/.history
// - Home directory expansion: ~/.history or ~/config/.history
// - Relative paths: ./.history or config/.history (converted to absolute)
func expandHistoryPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = home
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to convert to absolute path: %w", err)
	}

	return absPath, nil
}
