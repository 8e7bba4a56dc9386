// Command puzzles answers the puzzle programs of this repository from text
// input: catvsdog, reversedbinary, zipfsong and the braces analyzer.
package main

import (
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Fatal("puzzles failed")
	}
}
