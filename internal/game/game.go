// Package game implements the guessing session: read a line, parse it,
// compare it against the secret and report, until the guess is right.
package game

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Outcome is the result of comparing a guess with the secret.
type Outcome int

const (
	TooSmall Outcome = iota
	TooBig
	Win
)

func (o Outcome) String() string {
	switch o {
	case TooSmall:
		return "Too small!"
	case TooBig:
		return "Too big!"
	case Win:
		return "You win!"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// ParseGuess trims raw and parses it as a base-10 uint32.
func ParseGuess(raw string) (uint32, error) {
	s := strings.TrimSpace(raw)
	// unsigned parse accepts one leading plus sign
	s = strings.TrimPrefix(s, "+")
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(ErrNotANumber, "parse %q", s)
	}
	return uint32(v), nil
}

// Compare orders guess against secret.
func Compare(guess, secret uint32) Outcome {
	if guess < secret {
		return TooSmall
	} else if guess > secret {
		return TooBig
	}
	return Win
}

// ReadLine reads one line including its terminator. A last line without a
// terminator is returned as is. End of stream with no data, and a line that
// is not valid UTF-8, are a *ReadError.
func ReadLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", &ReadError{Err: err}
	}
	if !utf8.ValidString(line) {
		return "", &ReadError{Err: ErrInvalidUTF8}
	}
	return line, nil
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for debug events. Defaults to zerolog.Nop().
func WithLogger(log zerolog.Logger) Option {
	return func(g *Game) {
		g.log = log
	}
}

// Game is a single guessing session. The secret is fixed at construction.
type Game struct {
	secret uint32
	in     *bufio.Reader
	out    io.Writer
	log    zerolog.Logger
}

// New returns a session against secret that reads guesses from in and reports to out.
func New(secret uint32, in io.Reader, out io.Writer, opts ...Option) *Game {
	g := &Game{
		secret: secret,
		in:     bufio.NewReader(in),
		out:    out,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Secret returns the number the session is played against.
func (g *Game) Secret() uint32 {
	return g.secret
}

// Play runs the session until a correct guess (nil) or until the input
// stream fails (an error matching ErrReadLine).
func (g *Game) Play() error {
	if err := g.println("Guess the number!"); err != nil {
		return err
	}
	for {
		if err := g.println("Please input your guess."); err != nil {
			return err
		}

		input, err := ReadLine(g.in)
		if err != nil {
			return err
		}

		guess, err := ParseGuess(input)
		if err != nil {
			g.log.Debug().Err(err).Msg("rejected input")
			if err := g.println("Please type a number!"); err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintf(g.out, "You guessed: %d\n", guess); err != nil {
			return err
		}

		outcome := Compare(guess, g.secret)
		g.log.Debug().Uint32("guess", guess).Str("outcome", outcome.String()).Msg("compared guess")
		if err := g.println(outcome.String()); err != nil {
			return err
		}
		if outcome == Win {
			return nil
		}
	}
}

func (g *Game) println(msg string) error {
	_, err := fmt.Fprintln(g.out, msg)
	return err
}
