package rig

import (
	"fmt"
	"strconv"
	"strings"
)

// Option is one selectable choice: Label is what the user sees, Value is
// what the caller receives.
type Option struct {
	Label string
	Value string
}

// Choose presents options as a numbered list and blocks until the user
// enters a valid 1-based index, re-prompting on anything else. Invalid
// entries are recorded in the log but not echoed back. Returns the chosen
// option's Value.
//
// When the picker is enabled and both streams are terminals, a full-screen
// list is offered first; backing out of it lands on the numbered prompt.
func (c *Console) Choose(options []Option) string {
	log := c.cfg.Log
	log.Write("User input:")

	if c.pickerAvailable() {
		if opt, ok := c.pickOption(options); ok {
			log.Write("> User selected: " + opt.Value)
			return opt.Value
		}
	}

	for i, opt := range options {
		log.PrintAndLog(fmt.Sprintf("%d) %s", i+1, opt.Label))
	}

	for {
		fmt.Fprintf(c.cfg.Out, "Select number 1-%d: ", len(options))
		line, err := c.readLine()
		if err != nil {
			c.Fail(fmt.Sprintf("input stream closed while waiting for a selection: %v", err), false)
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil && n >= 1 && n <= len(options) {
			choice := options[n-1].Value
			log.Write("> User selected: " + choice)
			return choice
		}
		log.Write("> Invalid input: " + line)
	}
}

// Confirm prints message and asks for a yes/no answer. Only "y" or "yes"
// (case-insensitive, surrounding space ignored) confirm; anything else,
// including an empty line or a closed input stream, declines. The question
// is asked exactly once.
func (c *Console) Confirm(message string) bool {
	log := c.cfg.Log
	log.Write("User Confirmation")
	log.PrintAndLog(message)

	fmt.Fprint(c.cfg.Out, "Enter 'y' to confirm, 'n' to cancel: ")
	line, err := c.readLine()

	confirmed := false
	if err == nil {
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			confirmed = true
		}
	}

	if confirmed {
		log.Write("> Confirmation: confirm")
	} else {
		log.Write("> Confirmation: cancel")
	}
	return confirmed
}

// readLine reads one line from the console input without its trailing
// newline. A final unterminated line still counts as a line.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && line == "" {
		return "", err
	}
	return line, nil
}
