package catvsdog

import (
	"math"
	"sort"
)

// DiscardCount returns len(votes) minus the size of the matching found on
// the conflict graph: the number of votes left once every matched
// contradiction has given up one side.
//
// A single vote always yields 1. Without options the greedy matcher is
// used; WithExact switches to MaxMatching.
func DiscardCount(votes []Vote, opts ...Option) int {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(votes) == 1 {
		return 1
	}

	g := buildConflictGraph(votes)
	if o.Exact {
		return len(votes) - g.maxMatching()
	}
	return len(votes) - g.greedyMatching(o.OnMatch)
}

// MaxMatching returns the size of a maximum matching of the conflict graph.
func MaxMatching(votes []Vote) int {
	return buildConflictGraph(votes).maxMatching()
}

// greedyMatching assigns cat votes, fewest options first, each to the free
// conflicting dog vote with the smallest reverse-conflict set. Ties keep
// the earlier cat (stable sort) and the lower dog position.
func (g *conflictGraph) greedyMatching(onMatch func(cat, dog Vote)) int {
	order := make([]int, len(g.cats))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return len(g.forward[order[a]]) < len(g.forward[order[b]])
	})

	assigned := make([]bool, len(g.dogs))
	matches := 0
	for _, i := range order {
		best, bestSize := -1, math.MaxInt
		for _, j := range g.forward[i] {
			if assigned[j] {
				continue
			}
			if n := len(g.reverse[j]); n < bestSize {
				best, bestSize = j, n
			}
		}
		if best < 0 {
			continue
		}
		assigned[best] = true
		matches++
		onMatch(g.votes[g.cats[i]], g.votes[g.dogs[best]])
	}

	return matches
}

// maxMatching runs Kuhn's augmenting-path search from every cat vote.
//
// Complexity: O(V·E).
func (g *conflictGraph) maxMatching() int {
	owner := make([]int, len(g.dogs)) // owner[j]: cat matched to dog j, or -1
	for j := range owner {
		owner[j] = -1
	}
	seen := make([]int, len(g.dogs)) // seen[j] == round once visited

	var augment func(i, round int) bool
	augment = func(i, round int) bool {
		for _, j := range g.forward[i] {
			if seen[j] == round {
				continue
			}
			seen[j] = round
			if owner[j] < 0 || augment(owner[j], round) {
				owner[j] = i
				return true
			}
		}
		return false
	}

	matches := 0
	for i := range g.cats {
		if augment(i, i+1) {
			matches++
		}
	}
	return matches
}
