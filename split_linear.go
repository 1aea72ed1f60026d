package spatialtree

import "sort"

// splitLinear implements the linear-time split heuristic (spec.md §4.4):
// for each axis, sort by the lower edge and measure the separation
// between the two extreme entries; the axis with the larger separation
// supplies the seeds (its first entry to group 1, its last to group 2,
// X winning ties). Remaining entries go to whichever group requires the
// smaller enlargement.
func splitLinear(children []*node) ([]*node, []*node) {
	n := len(children)

	byMinX := make([]int, n)
	byMinY := make([]int, n)
	for i := range children {
		byMinX[i] = i
		byMinY[i] = i
	}
	sort.Slice(byMinX, func(a, b int) bool { return children[byMinX[a]].box.MinX < children[byMinX[b]].box.MinX })
	sort.Slice(byMinY, func(a, b int) bool { return children[byMinY[a]].box.MinY < children[byMinY[b]].box.MinY })

	firstX, lastX := byMinX[0], byMinX[n-1]
	sepX := children[lastX].box.MinX - children[firstX].box.MaxX
	firstY, lastY := byMinY[0], byMinY[n-1]
	sepY := children[lastY].box.MinY - children[firstY].box.MaxY

	var seedI, seedJ int
	if sepY > sepX {
		seedI, seedJ = firstY, lastY
	} else {
		seedI, seedJ = firstX, lastX
	}

	g1 := []*node{children[seedI]}
	g2 := []*node{children[seedJ]}
	mbr1 := children[seedI].box
	mbr2 := children[seedJ].box

	remaining := make([]*node, 0, n-2)
	for i, c := range children {
		if i != seedI && i != seedJ {
			remaining = append(remaining, c)
		}
	}

	for len(remaining) > 0 {
		idx := 0
		bestCost := -1.0
		var bestInc1, bestInc2 float64
		for i, c := range remaining {
			inc1 := enlargement(mbr1, c.box)
			inc2 := enlargement(mbr2, c.box)
			cost := inc1
			if inc2 < cost {
				cost = inc2
			}
			if bestCost < 0 || cost < bestCost {
				bestCost = cost
				bestInc1, bestInc2 = inc1, inc2
				idx = i
			}
		}

		e := remaining[idx]
		remaining = append(remaining[:idx], remaining[idx+1:]...)

		if bestInc1 <= bestInc2 {
			g1 = append(g1, e)
			mbr1 = Combine(mbr1, e.box)
		} else {
			g2 = append(g2, e)
			mbr2 = Combine(mbr2, e.box)
		}
	}

	return g1, g2
}
