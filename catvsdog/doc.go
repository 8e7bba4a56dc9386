// Package catvsdog resolves contradicting votes between two classes of
// voters (cat lovers and dog lovers).
//
// Every vote names one item to keep and one item to throw out. A cat
// lover's vote and a dog lover's vote conflict when one keeps what the
// other throws out. Conflicts only ever cross the two classes, so the
// conflict graph is bipartite: removing the fewest votes that leaves no
// conflict is a matching problem on that graph.
//
// DiscardCount answers it with a greedy matching heuristic:
//
//  1. Dog votes are indexed by Keep and by Throwout, so each cat vote finds
//     its conflicts with two map lookups.
//  2. Cat votes are processed fewest-options first.
//  3. Each cat vote takes the still-free conflicting dog vote that the
//     fewest cat votes compete for.
//
// The result is len(votes) minus the number of matches. The heuristic is
// not guaranteed to find a maximum matching; MaxMatching computes the exact
// one (augmenting paths) and WithExact switches DiscardCount to it.
//
// Complexity of the heuristic: O(V log V + V·D) time and O(V + E) memory,
// where D is the average number of conflicts per cat vote.
//
// # Input
//
//	t
//	c d v
//	C1 D2
//	D2 C1
//	...
//
// The first token of a vote line selects the class (C or D); the character
// at index 1 of each token is the item number. Solve reads t test cases and
// writes one result per line.
//
// # Errors
//
//	ErrMalformedVote - a vote token does not follow the grammar above.
//	fastreader errors - truncated or non-numeric header fields.
package catvsdog
