package main

import (
	"fmt"
	"strings"
)

// lineReader reads lines of user input. It is implemented by readline.Instance.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// menu loops until the user chooses to exit or closes the input.
func menu(a *analyzer, input lineReader) {
	for {
		fmt.Fprintln(a.out, "\nSelect an option:")
		fmt.Fprintln(a.out, "1. Run predefined test cases")
		fmt.Fprintln(a.out, "2. Enter sentences manually")
		fmt.Fprintln(a.out, "3. Exit")
		input.SetPrompt("option> ")
		line, err := input.Readline()
		if err != nil {
			tracer().Debugf("menu input: %v", err)
			return
		}
		switch strings.TrimSpace(line) {
		case "1":
			a.demo()
		case "2":
			interactive(a, input)
		case "3":
			fmt.Fprintln(a.out, "\nGoodbye!")
			return
		default:
			a.errorf("Invalid option %q. Try again.", strings.TrimSpace(line))
		}
	}
}

// interactive checks sentences entered by the user, until 'exit' is entered
// or the input is closed. It returns the number of sentences checked.
func interactive(a *analyzer, input lineReader) int {
	fmt.Fprintln(a.out, "\nEnter sentences to check against the grammar. Type 'exit' to end.")
	input.SetPrompt("herogram> ")
	n := 0
	for {
		line, err := input.Readline()
		if err != nil {
			tracer().Debugf("sentence input: %v", err)
			return n
		}
		line = strings.TrimSpace(line)
		if strings.EqualFold(line, "exit") {
			return n
		}
		if line == "" {
			continue
		}
		a.analyze(line)
		n++
	}
}
