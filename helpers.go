package lineedit

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sahilm/fuzzy"
)

// NewPrefixCompleter returns a completer offering the candidates that start
// with the partial token, in the order given.
func NewPrefixCompleter(candidates []string) Completer {
	candidates = append([]string{}, candidates...)
	return func(partial string) []string {
		var matches []string
		for _, c := range candidates {
			if strings.HasPrefix(c, partial) {
				matches = append(matches, c)
			}
		}
		return matches
	}
}

// NewFuzzyCompleter returns a completer that ranks candidates by fuzzy match
// quality, best first. Matching characters must appear in order but need not
// be adjacent, so "hst" matches "history". An empty token returns every
// candidate in the order given.
//
// Example:
//
//	completer := lineedit.NewFuzzyCompleter([]string{"help", "history", "quit"})
//	completer("hs") // ["history"]
func NewFuzzyCompleter(candidates []string) Completer {
	candidates = append([]string{}, candidates...)
	return func(partial string) []string {
		if partial == "" {
			return append([]string{}, candidates...)
		}
		matches := fuzzy.Find(partial, candidates)
		results := make([]string, len(matches))
		for i, m := range matches {
			results[i] = m.Str
		}
		return results
	}
}

// NewFileCompleter returns a completer that treats the token as a file path
// and offers the matching directory entries. Directories get a trailing slash.
func NewFileCompleter() Completer {
	return completeFilePath
}

// completeFilePath provides file and directory completion for the given path
func completeFilePath(path string) []string {
	if path == "" {
		path = "."
	}

	dir := filepath.Dir(path)
	base := filepath.Base(path)

	// If path ends with separator, we're completing in that directory
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		dir = path
		base = ""
	}
	if path == "." {
		base = ""
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var matches []string
	for _, entry := range entries {
		name := entry.Name()

		// Skip hidden files unless explicitly requested
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".") {
			continue
		}
		if base != "" && !strings.HasPrefix(name, base) {
			continue
		}

		fullPath := filepath.Join(dir, name)
		if dir == "." && !strings.HasPrefix(path, "./") {
			fullPath = name
		}
		if entry.IsDir() {
			fullPath += "/"
		}
		matches = append(matches, fullPath)
	}

	return matches
}
