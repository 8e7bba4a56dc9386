// Package puzzles collects small, self-contained puzzle solvers and the
// utilities they share.
//
// Everything is organized under one package per problem:
//
//	boundedpq/      — fixed-size priority queue keeping the k greatest elements
//	braces/         — brace nesting profiles and the "ugliest files" scan
//	catvsdog/       — conflicting-vote resolution via bipartite matching
//	fastreader/     — line-buffered whitespace tokenizer with typed parses
//	reversedbinary/ — reversal of the significant binary digits of an integer
//	zipfsong/       — top-k album tracks by Zipf-normalized play counts
//
// Each solver exposes a pure function over in-memory values plus a Solve
// helper that reads the puzzle's text format and writes its answer. The
// cmd/puzzles binary wires those helpers to stdin/stdout:
//
//	go run ./cmd/puzzles catvsdog < input.txt
//	go run ./cmd/puzzles braces dir -p ./src -n 3 -q
package puzzles
