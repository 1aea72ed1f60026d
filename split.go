package spatialtree

// splitQuadratic, splitLinear, and splitRStar each partition the
// MaxEntries+1 children of an overflowing node into two non-empty groups,
// returned in the order (group1, group2). tree.split keeps the original
// node for group 1, wraps group 2 in a fresh sibling node, and reparents
// both groups; adjustAndSplit then appends the sibling to the parent
// (spec.md §4.4).

// minOf returns the smaller of two ints.
func minOf(a, b int) int {
	if a < b {
		return a
	}
	return b
}
