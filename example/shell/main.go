// Package main provides a small file explorer built on slash commands.
//
// The engine is picked by the caller: raw-mode editing when stdin is a
// terminal, the host's line discipline otherwise (e.g. input piped from a file).
package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/nao1215/lineedit"
)

var commands = []string{"ls", "cd", "cat", "pwd", "exit"}

func main() {
	engine := lineedit.EngineAdvanced
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		engine = lineedit.EngineSimple
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	p, err := lineedit.New("shell> ",
		lineedit.WithEngine(engine),
		lineedit.WithCompleter(lineedit.NewPrefixCompleter(commands)),
		lineedit.WithMemoryHistory(1000),
		lineedit.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("failed to create prompt: %v", err)
	}
	defer p.Close()

	if engine == lineedit.EngineAdvanced {
		fmt.Println("Shell-like File Explorer Example")
		fmt.Println("Commands: /ls [path], /cd path, /cat file, /pwd, /exit")
		fmt.Println("Press Tab after '/' to complete command names")
		fmt.Println()
	}

	for {
		cwd, err := os.Getwd()
		if err != nil {
			cwd = "unknown"
		}
		p.SetPrefix(fmt.Sprintf("shell:%s> ", filepath.Base(cwd)))

		line, err := p.ReadLine()
		if err != nil {
			if !errors.Is(err, lineedit.ErrEOF) && !errors.Is(err, lineedit.ErrInterrupted) {
				fmt.Printf("Error: %v\n", err)
			}
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "/exit" {
			fmt.Println("Goodbye!")
			break
		}

		executeCommand(line)
	}
}

func executeCommand(input string) {
	words := strings.Fields(input)
	cmd := strings.TrimPrefix(words[0], "/")
	args := words[1:]

	switch cmd {
	case "pwd":
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println(cwd)

	case "ls":
		path := "."
		if len(args) > 0 {
			path = args[0]
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		for _, entry := range entries {
			if entry.IsDir() {
				fmt.Printf("  %s/\n", entry.Name())
			} else {
				fmt.Printf("  %s\n", entry.Name())
			}
		}

	case "cd":
		if len(args) == 0 {
			fmt.Println("Error: cd requires a directory argument")
			return
		}
		if err := os.Chdir(args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
		}

	case "cat":
		if len(args) == 0 {
			fmt.Println("Error: cat requires a file argument")
			return
		}
		content, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(content) > 1000 {
			fmt.Printf("%s\n... (truncated)\n", content[:1000])
		} else {
			fmt.Printf("%s\n", content)
		}

	default:
		fmt.Printf("Unknown command: %s (try /ls, /cd, /cat, /pwd, /exit)\n", words[0])
	}
}
