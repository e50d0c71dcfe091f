// Package echo reads a single guess and prints it back untouched.
package echo

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lxyang1115/guess-game/internal/game"
)

// Run prints the prompts, reads one line from in and writes it back to out
// prefixed with "You guessed: ". The line is not trimmed, so its newline is
// printed too.
func Run(in io.Reader, out io.Writer) error {
	if _, err := fmt.Fprintln(out, "Guess the number!"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out, "Please input your guess."); err != nil {
		return err
	}

	line, err := game.ReadLine(bufio.NewReader(in))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "You guessed: %s\n", line)
	return err
}
