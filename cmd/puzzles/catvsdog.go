package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/puzzles/catvsdog"
)

func newCatVsDogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catvsdog",
		Short: "count the votes left after resolving cat/dog contradictions",
		Args:  cobra.NoArgs,
		RunE:  withEnv(runCatVsDog),
	}
	cmd.Flags().Bool("exact", false, "Use a maximum matching instead of the greedy heuristic")
	return cmd
}

func runCatVsDog(e *env) error {
	r, err := e.input()
	if err != nil {
		return err
	}

	opts := []catvsdog.Option{
		catvsdog.WithOnMatch(func(cat, dog catvsdog.Vote) {
			e.log.WithFields(log.Fields{
				"cat": cat.String(),
				"dog": dog.String(),
			}).Debug("matched conflicting votes")
		}),
	}
	if e.config.Exact {
		opts = append(opts, catvsdog.WithExact())
	}

	return catvsdog.Solve(r, e.out, opts...)
}
