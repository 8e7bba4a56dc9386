// Package boundedpq provides a priority queue that never holds more than a
// fixed number of elements, keeping the greatest ones seen so far.
//
// Once full, a new element replaces the current minimum only when it is
// strictly greater; otherwise the queue is left untouched. Feeding n
// elements therefore costs O(n log k) time and O(k) memory for a capacity
// of k, which is the usual way to pick the top k of a stream.
//
//	q, _ := boundedpq.New(3, func(a, b int) bool { return a < b })
//	for _, x := range []int{5, 1, 9, 7, 3} {
//	    q.Add(x)
//	}
//	q.Drain() // [5 7 9]
//
// A Queue is not safe for concurrent use.
package boundedpq
