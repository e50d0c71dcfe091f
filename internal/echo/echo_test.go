package echo

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lxyang1115/guess-game/internal/game"
)

func TestRun(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(strings.NewReader("hello\nignored\n"), &out))
	require.Equal(t, "Guess the number!\nPlease input your guess.\nYou guessed: hello\n\n", out.String())
}

func TestRun_KeepsWhitespace(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(strings.NewReader("  42 \n"), &out))
	require.Contains(t, out.String(), "You guessed:   42 \n\n")
}

func TestRun_UnterminatedLine(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(strings.NewReader("hello"), &out))
	require.True(t, strings.HasSuffix(out.String(), "You guessed: hello\n"))
}

func TestRun_EndOfStream(t *testing.T) {
	var out bytes.Buffer
	err := Run(strings.NewReader(""), &out)
	require.ErrorIs(t, err, game.ErrReadLine)
	require.ErrorIs(t, err, io.EOF)
	require.NotContains(t, out.String(), "You guessed:")
}

func TestRun_InvalidEncoding(t *testing.T) {
	var out bytes.Buffer
	err := Run(strings.NewReader("\xff\xfe\n"), &out)
	require.ErrorIs(t, err, game.ErrReadLine)
	require.ErrorIs(t, err, game.ErrInvalidUTF8)
	require.NotContains(t, out.String(), "You guessed:")
}
