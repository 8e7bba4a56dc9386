package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/puzzles/fastreader"
)

// env carries what a subcommand needs once configuration is resolved.
type env struct {
	cmd    *cobra.Command
	config *Config
	log    *log.Logger
	out    io.Writer

	reader *fastreader.Reader
}

// input opens the configured input on first use.
func (e *env) input() (*fastreader.Reader, error) {
	if e.reader != nil {
		return e.reader, nil
	}
	if e.config.Input == "" || e.config.Input == "-" {
		e.reader = fastreader.New(e.cmd.InOrStdin())
		return e.reader, nil
	}
	f, err := os.Open(e.config.Input)
	if err != nil {
		return nil, err
	}
	e.reader = fastreader.New(f)
	return e.reader, nil
}

// withEnv resolves config, logger, profiling and output around run.
func withEnv(run func(e *env) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		config, err := LoadConfig(cmd, envPrefix)
		if err != nil {
			return fmt.Errorf("failed to load configurations: %w", err)
		}

		logger, err := newLogger(config, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		if config.Profiling {
			defer profile.Start(
				profile.CPUProfile,
				profile.ProfilePath(config.ProfilePath),
				profile.NoShutdownHook,
				profile.Quiet,
			).Stop()
		}

		e := &env{cmd: cmd, config: config, log: logger, out: cmd.OutOrStdout()}
		if config.Output != "" && config.Output != "-" {
			f, err := os.Create(config.Output)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := f.Close(); err == nil {
					err = cerr
				}
			}()
			e.out = f
		}
		defer func() {
			if e.reader != nil {
				_ = e.reader.Close()
			}
		}()

		logger.WithFields(log.Fields{
			"command": cmd.Name(),
			"input":   config.Input,
			"output":  config.Output,
		}).Debug("starting")

		if err := run(e); err != nil {
			return fmt.Errorf("%s: %w", cmd.Name(), err)
		}

		logger.WithField("command", cmd.Name()).Debug("done")
		return nil
	}
}
