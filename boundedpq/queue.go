package boundedpq

import (
	"container/heap"
	"fmt"
	"sort"
)

// minHeap adapts a slice and a comparator to heap.Interface.
type minHeap[E any] struct {
	items []E
	less  func(a, b E) bool
}

func (h *minHeap[E]) Len() int           { return len(h.items) }
func (h *minHeap[E]) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }
func (h *minHeap[E]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *minHeap[E]) Push(x any)         { h.items = append(h.items, x.(E)) }
func (h *minHeap[E]) Pop() any {
	n := len(h.items)
	x := h.items[n-1]
	var zero E
	h.items[n-1] = zero
	h.items = h.items[:n-1]
	return x
}

// Queue keeps at most MaxSize elements, evicting the minimum.
type Queue[E any] struct {
	h       *minHeap[E]
	maxSize int
}

// New returns an empty Queue holding at most maxSize elements ordered by less.
func New[E any](maxSize int, less func(a, b E) bool) (*Queue[E], error) {
	if maxSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, maxSize)
	}
	if less == nil {
		return nil, ErrNilLess
	}
	return &Queue[E]{
		h:       &minHeap[E]{items: make([]E, 0, maxSize), less: less},
		maxSize: maxSize,
	}, nil
}

// Add offers e to the queue and reports whether it was kept. A full queue
// keeps e only if it is strictly greater than the current minimum, which is
// then evicted.
func (q *Queue[E]) Add(e E) bool {
	if q.h.Len() >= q.maxSize {
		if !q.h.less(q.h.items[0], e) {
			return false
		}
		q.h.items[0] = e
		heap.Fix(q.h, 0)
		return true
	}
	heap.Push(q.h, e)
	return true
}

// Len returns the number of queued elements.
func (q *Queue[E]) Len() int { return q.h.Len() }

// MaxSize returns the capacity.
func (q *Queue[E]) MaxSize() int { return q.maxSize }

// Peek returns the minimum without removing it.
func (q *Queue[E]) Peek() (E, bool) {
	if q.h.Len() == 0 {
		var zero E
		return zero, false
	}
	return q.h.items[0], true
}

// Poll removes and returns the minimum.
func (q *Queue[E]) Poll() (E, bool) {
	if q.h.Len() == 0 {
		var zero E
		return zero, false
	}
	return heap.Pop(q.h).(E), true
}

// Sorted returns the elements in ascending order, leaving the queue intact.
func (q *Queue[E]) Sorted() []E {
	out := append([]E(nil), q.h.items...)
	sort.SliceStable(out, func(i, j int) bool { return q.h.less(out[i], out[j]) })
	return out
}

// Drain empties the queue and returns its elements in ascending order.
func (q *Queue[E]) Drain() []E {
	out := make([]E, 0, q.h.Len())
	for q.h.Len() > 0 {
		out = append(out, heap.Pop(q.h).(E))
	}
	return out
}
