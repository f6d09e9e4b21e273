// Package cli implements the chain command line tool. Each
// invocation loads a list from a YAML (or JSON) array, applies a
// single list operation to it, and writes the result.
package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type session struct {
	viper  *viper.Viper
	conf   Config
	logger *zap.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Run builds the command tree and executes it with the provided
// arguments and streams. Failures are logged to stderr and
// returned.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	s := &session{
		viper:  viper.New(),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}

	lg, err := newLogger(defaultLogLevel, stderr)
	if err != nil {
		return err
	}
	s.logger = lg
	defer func() { _ = s.logger.Sync() }()

	root := s.rootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		s.logger.Error("command failed", zap.Strings("args", args), zap.Error(err))
		return err
	}

	return nil
}

func (s *session) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "chain",
		Short: "Apply list operations to a YAML or JSON array.",
		Long: `chain reads an array of scalar values (YAML or JSON) from --input,
applies one operation to it, and prints the result.

Indexes may be negative to count from the end of the list. Spans use
the start:stop:step form, with every part optional (e.g. 1:4, ::2, -2:).
Separate negative arguments from flags with "--", as in: chain get -- -1`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.setup(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	fs := root.PersistentFlags()
	fs.StringP("config", "c", "", "config file")
	fs.String("log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	fs.StringP("input", "i", "-", `input file, "-" reads stdin`)
	fs.StringP("output", "o", outputText, "output format (text, json, yaml)")

	root.AddCommand(s.commands()...)
	return root
}

// setup loads configuration and replaces the bootstrap logger with
// one at the configured level.
func (s *session) setup(cmd *cobra.Command) error {
	if err := s.loadConfig(cmd); err != nil {
		return err
	}

	lg, err := newLogger(s.conf.LogLevel, s.stderr)
	if err != nil {
		return err
	}

	s.logger = lg
	s.logger.Debug("configuration loaded",
		zap.String("config", s.conf.ConfigFile),
		zap.String("input", s.conf.Input),
		zap.String("output", s.conf.Output),
	)

	return nil
}
