package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/puzzles/zipfsong"
)

func newZipfSongCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "zipfsong",
		Short: "pick the album tracks that beat Zipf's law",
		Args:  cobra.NoArgs,
		RunE: withEnv(func(e *env) error {
			r, err := e.input()
			if err != nil {
				return err
			}
			return zipfsong.Solve(r, e.out)
		}),
	}
}
