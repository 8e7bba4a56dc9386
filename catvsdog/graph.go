package catvsdog

import "sort"

// conflictGraph is the bipartite conflict graph over dense vote positions.
// Cat and dog votes are addressed by their position in cats and dogs, which
// keeps equal-valued votes distinct.
type conflictGraph struct {
	votes []Vote
	cats  []int // indices into votes, input order
	dogs  []int // indices into votes, input order

	// forward[i] lists the dog positions conflicting with cats[i], ascending.
	forward [][]int
	// reverse[j] lists the cat positions conflicting with dogs[j], ascending.
	reverse [][]int
}

// buildConflictGraph indexes dog votes by Keep and by Throwout and resolves
// every cat vote's conflicts through those two indexes.
//
// Complexity: O(V + E log D) time, O(V + E) memory.
func buildConflictGraph(votes []Vote) *conflictGraph {
	g := &conflictGraph{votes: votes}

	byKeep := make(map[int][]int)
	byThrowout := make(map[int][]int)
	for idx, v := range votes {
		if v.CatLover {
			g.cats = append(g.cats, idx)
			continue
		}
		j := len(g.dogs)
		g.dogs = append(g.dogs, idx)
		byKeep[v.Keep] = append(byKeep[v.Keep], j)
		byThrowout[v.Throwout] = append(byThrowout[v.Throwout], j)
	}

	g.forward = make([][]int, len(g.cats))
	g.reverse = make([][]int, len(g.dogs))
	// stamp[j] == i+1 once dog j was collected for cat i
	stamp := make([]int, len(g.dogs))
	for i, idx := range g.cats {
		cat := votes[idx]
		var options []int
		for _, bucket := range [2][]int{byKeep[cat.Throwout], byThrowout[cat.Keep]} {
			for _, j := range bucket {
				if stamp[j] == i+1 {
					continue
				}
				stamp[j] = i + 1
				options = append(options, j)
			}
		}
		sort.Ints(options)
		g.forward[i] = options
		for _, j := range options {
			g.reverse[j] = append(g.reverse[j], i)
		}
	}

	return g
}

