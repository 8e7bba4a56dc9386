package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/puzzles/reversedbinary"
)

func newReversedBinaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reversedbinary",
		Short: "reverse the binary digits of an integer",
		Args:  cobra.NoArgs,
		RunE: withEnv(func(e *env) error {
			r, err := e.input()
			if err != nil {
				return err
			}
			return reversedbinary.Solve(r, e.out)
		}),
	}
}
