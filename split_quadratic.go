package spatialtree

import "math"

// splitQuadratic implements Guttman's quadratic split (spec.md §4.4):
// pick the pair of children that would waste the most area if combined as
// seeds, then repeatedly assign the remaining child with the strongest
// group preference to its cheaper group. No minimum-fill forcing is
// applied; groups may end up as small as 1.
func splitQuadratic(children []*node) ([]*node, []*node) {
	si, sj := quadraticSeeds(children)

	g1 := []*node{children[si]}
	g2 := []*node{children[sj]}
	mbr1 := children[si].box
	mbr2 := children[sj].box

	remaining := make([]*node, 0, len(children)-2)
	for i, c := range children {
		if i != si && i != sj {
			remaining = append(remaining, c)
		}
	}

	for len(remaining) > 0 {
		idx := 0
		var bestInc1, bestInc2 float64
		bestDiff := -1.0
		for i, c := range remaining {
			inc1 := enlargement(mbr1, c.box)
			inc2 := enlargement(mbr2, c.box)
			diff := inc1 - inc2
			if diff < 0 {
				diff = -diff
			}
			if diff > bestDiff {
				bestDiff = diff
				bestInc1, bestInc2 = inc1, inc2
				idx = i
			}
		}

		e := remaining[idx]
		remaining = append(remaining[:idx], remaining[idx+1:]...)

		if bestInc1 < bestInc2 {
			g1 = append(g1, e)
			mbr1 = Combine(mbr1, e.box)
		} else if bestInc2 < bestInc1 {
			g2 = append(g2, e)
			mbr2 = Combine(mbr2, e.box)
		} else {
			g1 = append(g1, e)
			mbr1 = Combine(mbr1, e.box)
		}
	}

	return g1, g2
}

// quadraticSeeds returns the index pair (i,j), i<j, that maximizes
// area(combine(bi,bj)) - area(bi) - area(bj). Ties keep the first pair
// found in row-major order.
func quadraticSeeds(children []*node) (int, int) {
	best := math.Inf(-1)
	bi, bj := 0, 1
	for i := 0; i < len(children); i++ {
		for j := i + 1; j < len(children); j++ {
			d := Area(Combine(children[i].box, children[j].box)) - Area(children[i].box) - Area(children[j].box)
			if d > best {
				best = d
				bi, bj = i, j
			}
		}
	}
	return bi, bj
}
