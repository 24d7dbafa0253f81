// Package main demonstrates slash-command completion.
package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/nao1215/lineedit"
)

var commands = []string{
	"help",
	"list",
	"create",
	"delete",
	"update",
	"status",
	"exit",
}

func main() {
	fmt.Println("Autocomplete Example")
	fmt.Println("Commands start with '/'. Press Tab to complete, e.g. /st<Tab>")
	fmt.Println("Type /fuzzy to switch to fuzzy matching, /prefix to switch back")
	fmt.Println()

	p, err := lineedit.New("cmd> ",
		lineedit.WithCompleter(lineedit.NewPrefixCompleter(commands)),
		lineedit.WithMemoryHistory(100),
		lineedit.WithColorScheme(lineedit.ThemeDefault),
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
				return
			}
			log.Printf("Error: %v\n", err)
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "/exit":
			fmt.Println("Goodbye!")
			return
		case "/help":
			fmt.Println("Available commands:")
			for _, c := range commands {
				fmt.Printf("  /%s\n", c)
			}
		case "/fuzzy":
			p.SetCompleter(lineedit.NewFuzzyCompleter(commands))
			fmt.Println("Fuzzy completion enabled")
		case "/prefix":
			p.SetCompleter(lineedit.NewPrefixCompleter(commands))
			fmt.Println("Prefix completion enabled")
		default:
			fmt.Printf("Running %s with args %v\n", fields[0], fields[1:])
		}
	}
}
