// Package cli wires the guessing game and the echo program into cobra commands.
package cli

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lxyang1115/guess-game/internal/echo"
	"github.com/lxyang1115/guess-game/internal/game"
	"github.com/lxyang1115/guess-game/internal/secret"
)

const (
	envPrefix = "GUESSGAME"

	flagLogLevel = "log-level"
	flagSeed     = "seed"
)

// NewGuessCommand returns the guess-game command. It plays one session on
// the command's stdin and stdout.
func NewGuessCommand() *cobra.Command {
	v := newViper()
	cmd := &cobra.Command{
		Use:   "guess-game",
		Short: "Guess a secret number between 1 and 100",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger(cmd.ErrOrStderr(), v.GetString(flagLogLevel))
			if err != nil {
				return err
			}

			seed := v.GetInt64(flagSeed)
			s := secret.New(seed)
			log.Debug().Int64("seed", seed).Uint32("secret", s).Msg("secret drawn")

			return game.New(s, cmd.InOrStdin(), cmd.OutOrStdout(), game.WithLogger(log)).Play()
		},
	}
	addFlags(cmd, v)
	cmd.PersistentFlags().Int64(flagSeed, 0, "seed for the secret number, 0 seeds from the clock")
	_ = cmd.PersistentFlags().MarkHidden(flagSeed)
	_ = v.BindPFlag(flagSeed, cmd.PersistentFlags().Lookup(flagSeed))
	return cmd
}

// NewEchoCommand returns the echo command, which reads one line and prints it back.
func NewEchoCommand() *cobra.Command {
	v := newViper()
	cmd := &cobra.Command{
		Use:   "echo",
		Short: "Read one guess and print it back",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger(cmd.ErrOrStderr(), v.GetString(flagLogLevel))
			if err != nil {
				return err
			}
			log.Debug().Msg("echo started")
			return echo.Run(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	addFlags(cmd, v)
	return cmd
}

// Execute runs cmd and exits with status 1 if it fails.
func Execute(cmd *cobra.Command) {
	if err := cmd.Execute(); err != nil {
		reportFailure(os.Stderr, err)
		os.Exit(1)
	}
}

// reportFailure writes the diagnostic for a failed command to w.
func reportFailure(w io.Writer, err error) {
	log := zerolog.New(zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
		cw.NoColor = true
	})).With().Timestamp().Logger()

	msg := "command failed"
	if errors.Is(err, game.ErrReadLine) {
		msg = "Failed to read line"
	}
	log.Error().Err(err).Msg(msg)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func addFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.PersistentFlags().String(flagLogLevel, zerolog.WarnLevel.String(), "log level (debug, info, warn, error)")
	_ = v.BindPFlag(flagLogLevel, cmd.PersistentFlags().Lookup(flagLogLevel))
}

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), errors.Wrapf(err, "invalid --%s", flagLogLevel)
	}
	return zerolog.New(zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
		cw.NoColor = true
	})).Level(lvl).With().Timestamp().Logger(), nil
}
