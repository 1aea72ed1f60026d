package spatialtree

import "sort"

// splitRStar implements the R*-style split (spec.md §4.4): choose the
// axis whose every candidate split point yields the smaller sum of
// perimeters, then on that axis's sorted order choose the split index
// minimizing overlap area between the two halves. The split-point loop
// deliberately stops at n-2, skipping the final valid split k=n-1 — an
// off-by-one preserved from the source and flagged in spec.md §9.3. The
// minFill parameter is unused: this simplified R*-split considers every
// split point in [1, n-2] rather than the literature's
// forced-minimum-fill window.
func splitRStar(children []*node, minFill int) ([]*node, []*node) {
	_ = minFill
	byMinX := sortedByAxis(children, true)
	byMinY := sortedByAxis(children, false)

	if perimeterSum(byMinX) <= perimeterSum(byMinY) {
		return bestRStarSplit(byMinX)
	}
	return bestRStarSplit(byMinY)
}

// sortedByAxis returns children sorted by lower-edge coordinate on the
// requested axis (X if byX, else Y). The input slice is not mutated.
func sortedByAxis(children []*node, byX bool) []*node {
	sorted := make([]*node, len(children))
	copy(sorted, children)
	if byX {
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].box.MinX < sorted[j].box.MinX })
	} else {
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].box.MinY < sorted[j].box.MinY })
	}
	return sorted
}

// perimeterSum sums, over every split point k in [1, n-1], the combined
// perimeter of the two resulting MBRs.
func perimeterSum(sorted []*node) float64 {
	n := len(sorted)
	total := 0.0
	for k := 1; k <= n-1; k++ {
		left := mbrOfNodes(sorted[:k])
		right := mbrOfNodes(sorted[k:])
		total += Perimeter(left) + Perimeter(right)
	}
	return total
}

// bestRStarSplit picks the split index k in [1, n-2] minimizing the
// overlap area of the two resulting MBRs, breaking ties toward the
// smallest k, then partitions sorted into a prefix/suffix pair.
func bestRStarSplit(sorted []*node) ([]*node, []*node) {
	n := len(sorted)
	bestK := 1
	bestOverlap := -1.0
	for k := 1; k <= n-2; k++ {
		left := mbrOfNodes(sorted[:k])
		right := mbrOfNodes(sorted[k:])
		overlap := OverlapArea(left, right)
		if bestOverlap < 0 || overlap < bestOverlap {
			bestOverlap = overlap
			bestK = k
		}
	}
	g1 := make([]*node, bestK)
	copy(g1, sorted[:bestK])
	g2 := make([]*node, n-bestK)
	copy(g2, sorted[bestK:])
	return g1, g2
}

func mbrOfNodes(nodes []*node) Rect {
	boxes := make([]Rect, len(nodes))
	for i, n := range nodes {
		boxes[i] = n.box
	}
	return combineAll(boxes)
}
