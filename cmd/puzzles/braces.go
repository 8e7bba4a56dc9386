package main

import (
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/puzzles/braces"
)

var errNoPath = errors.New("no path given (--path)")

func newBracesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "braces <subcommand>",
		Short: "spot the ugliest files by brace nesting depth",
	}

	fileCmd := &cobra.Command{
		Use:   "file",
		Short: "pretty print the braces of one file",
		Args:  cobra.NoArgs,
		RunE:  withEnv(runBracesFile),
	}
	fileCmd.Flags().StringP("path", "p", "", "File to analyze")
	fileCmd.Flags().BoolP("quiet", "q", false, "Omit the pretty printed braces")

	dirCmd := &cobra.Command{
		Use:   "dir",
		Short: "report the files with the deepest braces under a directory",
		Args:  cobra.NoArgs,
		RunE:  withEnv(runBracesDir),
	}
	dirCmd.Flags().StringP("path", "p", "", "Directory to traverse")
	dirCmd.Flags().Bool("nonrecursive", false, "Do not descend into subdirectories")
	dirCmd.Flags().String("extensions", strings.Join(braces.DefaultExtensions, ","), "Comma separated file extensions to analyze")
	dirCmd.Flags().IntP("limit", "n", braces.DefaultLimit, "Number of files to report")
	dirCmd.Flags().BoolP("quiet", "q", false, "Omit the pretty printed braces")

	cmd.AddCommand(fileCmd, dirCmd)
	return cmd
}

func runBracesFile(e *env) error {
	if e.config.Path == "" {
		return errNoPath
	}
	a, err := braces.AnalyzeFile(e.config.Path, e.config.Quiet)
	if err != nil {
		return err
	}
	return a.Format(e.out)
}

func runBracesDir(e *env) error {
	if e.config.Path == "" {
		return errNoPath
	}

	opts := []braces.Option{
		braces.WithRecursive(!e.config.NonRecursive),
		braces.WithExtensions(strings.Split(e.config.Extensions, ",")...),
		braces.WithLimit(e.config.Limit),
	}
	if e.config.Quiet {
		opts = append(opts, braces.WithQuiet())
	}

	results, err := braces.Ugliest(e.config.Path, opts...)
	if err != nil {
		return err
	}
	e.log.WithFields(log.Fields{"root": e.config.Path, "reported": len(results)}).Debug("scanned directory")

	for _, a := range results {
		if err := a.Format(e.out); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(e.out); err != nil {
			return err
		}
	}
	return nil
}
