package main

import (
	"github.com/spf13/cobra"
)

const envPrefix = "PUZZLES"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "puzzles <subcommand>",
		Short:         "solves small puzzles read from text input",
		Long:          `solves small puzzles read from text input; every subcommand reads stdin (or --input) and writes stdout (or --output)`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config-file", "c", "", "Path to the config file (eg ./config.yaml) [Optional]")
	flags.StringP("input", "i", "-", "Input file, - for stdin")
	flags.StringP("output", "o", "-", "Output file, - for stdout")
	flags.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	flags.String("log-format", "text", "Log format (text or json)")
	flags.Bool("profiling", false, "Write a CPU profile")
	flags.String("profile-path", ".", "Directory for the CPU profile")

	rootCmd.AddCommand(
		newCatVsDogCmd(),
		newReversedBinaryCmd(),
		newZipfSongCmd(),
		newBracesCmd(),
	)
	return rootCmd
}
