// Package main demonstrates basic usage of the lineedit library.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/nao1215/lineedit"
)

func main() {
	p, err := lineedit.New(">>> ")
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	fmt.Println("Basic Line Editing Example")
	fmt.Println("Type 'exit' or 'quit' to exit")
	fmt.Println("Press Ctrl+D on an empty line to exit")
	fmt.Println()

	for {
		line, err := p.ReadLine()
		if err != nil {
			if errors.Is(err, lineedit.ErrEOF) {
				fmt.Println("Goodbye!")
				break
			}
			if errors.Is(err, lineedit.ErrInterrupted) {
				continue
			}
			log.Printf("Error: %v\n", err)
			continue
		}

		if line == "exit" || line == "quit" {
			fmt.Println("Goodbye!")
			break
		}

		fmt.Printf("You typed: %s\n", line)
	}
}
