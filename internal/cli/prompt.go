// Package cli is the interactive boundary: it collects validated choices
// and amounts from a line-oriented input.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var errNotInteger = errors.New("not an integer")

// Prompter reads menu choices and bet amounts, re-prompting indefinitely on
// invalid responses. It satisfies game.Prompter. The only errors it returns
// are real input failures (EOF, read errors); invalid answers never escape.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter reads from in and prints prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(in), out: out}
}

// Choose prints the numbered option list and returns the 1-based index of
// the player's pick.
func (p *Prompter) Choose(options []string) (int, error) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "What do you want to do?")
	for i, opt := range options {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, opt)
	}

	for {
		n, err := p.readInt()
		if errors.Is(err, errNotInteger) {
			fmt.Fprintln(p.out, "Please input an integer.")
			continue
		}
		if err != nil {
			return 0, err
		}
		if n < 1 || n > len(options) {
			fmt.Fprintln(p.out, "Please input one of the provided choices.")
			continue
		}
		fmt.Fprintf(p.out, "You chose to %s.\n", options[n-1])
		return n, nil
	}
}

// Amount reads an integer within the inclusive [min, max] range.
func (p *Prompter) Amount(min, max int) (int, error) {
	fmt.Fprintf(p.out, "Enter an amount between $%d and $%d.\n", min, max)

	for {
		n, err := p.readInt()
		if errors.Is(err, errNotInteger) {
			fmt.Fprintln(p.out, "Please input an integer.")
			continue
		}
		if err != nil {
			return 0, err
		}
		if n < min || n > max {
			fmt.Fprintf(p.out, "Please input an amount between %d and %d.\n", min, max)
			continue
		}
		return n, nil
	}
}

func (p *Prompter) readInt() (int, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	n, err := strconv.Atoi(strings.TrimSpace(p.scanner.Text()))
	if err != nil {
		return 0, errNotInteger
	}
	return n, nil
}
