// Package main demonstrates history management features of the lineedit library.
package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/nao1215/lineedit"
)

func main() {
	fmt.Println("History Example with File Persistence")
	fmt.Println("Use Up/Down or Ctrl+P/Ctrl+N to walk the history")
	fmt.Println("Type 'history' to see command history")
	fmt.Println("Type 'clear' to clear history")
	fmt.Println("Type 'exit' or 'quit' to exit")
	fmt.Printf("History is saved to %s\n", lineedit.DefaultHistoryFile())
	fmt.Println()

	// The file is loaded now and written back by Close.
	p, err := lineedit.New("history> ",
		lineedit.WithFileHistory(lineedit.DefaultHistoryFile(), 1000),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	for {
		line, err := p.ReadLine()
		if err != nil {
			if errors.Is(err, lineedit.ErrEOF) || errors.Is(err, lineedit.ErrInterrupted) {
				fmt.Println("Goodbye!")
				break
			}
			log.Printf("Error: %v\n", err)
			continue
		}

		switch strings.TrimSpace(line) {
		case "":
			continue
		case "exit", "quit":
			fmt.Println("Goodbye!")
			return
		case "history":
			fmt.Println("Command History (newest first):")
			for i, cmd := range p.History() {
				fmt.Printf("  %3d: %s\n", i+1, cmd)
			}
		case "clear":
			p.ClearHistory()
			fmt.Println("History cleared")
		default:
			fmt.Printf("Executed: %s\n", line)
		}
	}
}
