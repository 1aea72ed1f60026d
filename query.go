package spatialtree

import (
	"container/heap"
	"math"
)

// Search returns the payloads of every entry whose box intersects area
// (spec.md §4.6). The traversal prunes any subtree whose MBR does not
// intersect area, in the teacher's stack-based style.
func (t *Tree) Search(area Rect) []any {
	var results []any
	if !Intersects(area, t.root.box) {
		return results
	}

	stack := []*node{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, c := range n.children {
			if !Intersects(area, c.box) {
				continue
			}
			if c.isEntry() {
				results = append(results, c.data)
			} else {
				stack = append(stack, c)
			}
		}
	}
	return results
}

// PointQuery returns the payloads of every entry whose box contains
// (x, y) (spec.md §4.6), implemented as Search over a degenerate
// single-point rectangle.
func (t *Tree) PointQuery(x, y float64) []any {
	return t.Search(Rect{MinX: x, MinY: y, MaxX: x, MaxY: y})
}

// distQueueEntry pairs a tree node with its MBR distance to the query
// point, ordered for use in a min-heap (grounded on the teacher pack's
// container/heap-based KNN priority queue).
type distQueueEntry struct {
	n    *node
	dist float64
}

type distQueue []*distQueueEntry

func (q distQueue) Len() int            { return len(q) }
func (q distQueue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q distQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *distQueue) Push(x any)         { *q = append(*q, x.(*distQueueEntry)) }
func (q *distQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	*q = old[:n-1]
	return e
}

// Nearest returns the payload of the entry whose box is closest to
// (x, y), and that distance, using a branch-and-bound best-first
// descent (spec.md §4.6, Open Question 5: every candidate subtree is
// pushed in distance order rather than eagerly pruned by a running
// bound, trading a little extra heap churn for simplicity). Returns
// (nil, +Inf) when the tree holds no entries (spec.md §6, §8).
func (t *Tree) Nearest(x, y float64) (any, float64) {
	if len(t.root.children) == 0 {
		return nil, math.Inf(1)
	}

	q := &distQueue{}
	heap.Push(q, &distQueueEntry{n: t.root, dist: 0})

	for q.Len() > 0 {
		top := heap.Pop(q).(*distQueueEntry)
		if top.n.isEntry() {
			return top.n.data, top.dist
		}
		for _, c := range top.n.children {
			heap.Push(q, &distQueueEntry{n: c, dist: MBRDistance(c.box, x, y)})
		}
	}
	return nil, math.Inf(1)
}
