package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks yes/no questions on a terminal.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewPrompter creates a Prompter reading answers from in and writing questions to out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{reader: bufio.NewReader(in), out: out}
}

// Confirm prints the question and returns true only for "y" or "yes".
// EOF or any other answer counts as no.
func (p *Prompter) Confirm(question string) bool {
	fmt.Fprintf(p.out, "  %s (y/n): ", question)

	input, _ := p.reader.ReadString('\n')
	return IsAffirmative(input)
}

// IsAffirmative reports whether an answer means yes
func IsAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
