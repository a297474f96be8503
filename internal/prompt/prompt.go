package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Prompter interface
type Prompter interface {
	String(prompt string, args ...interface{}) string
	Confirm(prompt string, args ...interface{}) bool
}

// Default prompter, reading from stdin.
func Default() Prompter {
	return New(os.Stdin, os.Stdout)
}

// New returns a Prompter reading answers from in and writing prompts to out.
func New(in io.Reader, out io.Writer) Prompter {
	return prompter{bufio.NewReader(in), out}
}

type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// String prompt.
func (p prompter) String(prompt string, args ...interface{}) string {
	fmt.Fprintf(p.out, prompt, args...)
	s, _ := p.in.ReadString('\n')
	return strings.TrimRight(s, "\r\n")
}

// Confirm continues prompting until the input is boolean-ish. Anything
// other than an affirmative answer, including end of input, is a no.
func (p prompter) Confirm(prompt string, args ...interface{}) bool {
	for {
		fmt.Fprintf(p.out, prompt, args...)
		s, err := p.in.ReadString('\n')
		switch strings.TrimRight(s, "\r\n") {
		case "yes", "y", "Y":
			return true
		case "no", "n", "N":
			return false
		}
		if err != nil {
			return false
		}
	}
}
