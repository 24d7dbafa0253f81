package lineedit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrefixCompleter(t *testing.T) {
	t.Parallel()

	candidates := []string{"help", "history", "quit"}
	completer := NewPrefixCompleter(candidates)
	candidates[0] = "mutated"

	assert.Equal(t, []string{"help", "history", "quit"}, completer(""))
	assert.Equal(t, []string{"help", "history"}, completer("h"))
	assert.Equal(t, []string{"history"}, completer("his"))
	assert.Empty(t, completer("x"))
}

func TestNewFuzzyCompleter(t *testing.T) {
	t.Parallel()

	candidates := []string{"apple", "banana", "cherry"}
	completer := NewFuzzyCompleter(candidates)

	assert.Equal(t, candidates, completer(""), "empty token returns every candidate")
	assert.Equal(t, []string{"banana"}, completer("bnn"))
	assert.Empty(t, completer("zzz"))

	commands := NewFuzzyCompleter([]string{"help", "history", "quit"})
	assert.Equal(t, []string{"history"}, commands("hst"))

	matches := commands("h")
	assert.ElementsMatch(t, []string{"help", "history"}, matches)
}

func TestNewFileCompleter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "alpha.txt"), nil, 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "alpine"), nil, 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), nil, 0600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0750))

	completer := NewFileCompleter()

	tests := []struct {
		name string
		path string
		want []string
	}{
		{
			name: "prefix in directory",
			path: filepath.Join(dir, "al"),
			want: []string{filepath.Join(dir, "alpha.txt"), filepath.Join(dir, "alpine")},
		},
		{
			name: "trailing separator lists directory",
			path: dir + "/",
			want: []string{filepath.Join(dir, "alpha.txt"), filepath.Join(dir, "alpine"), filepath.Join(dir, "sub") + "/"},
		},
		{
			name: "directories get a slash",
			path: filepath.Join(dir, "s"),
			want: []string{filepath.Join(dir, "sub") + "/"},
		},
		{
			name: "hidden files when asked for",
			path: filepath.Join(dir, ".h"),
			want: []string{filepath.Join(dir, ".hidden")},
		},
		{
			name: "missing directory",
			path: filepath.Join(dir, "missing", "x"),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, completer(tt.path))
		})
	}
}
