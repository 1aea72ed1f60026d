package spatialtree

import (
	"math/rand"
	"sort"
)

// quickselect performs a partial sort, ensuring every element before n
// is no greater than the element at n, and every element after n is no
// smaller. Used by the bulk loader to partition nodes by centroid
// without paying for a full sort at every level.
func quickselect(a sort.Interface, n int) {
	first := 0
	last := a.Len() - 1
	for {
		guess := rand.Intn(last-first+1) + first
		pivotIndex := partition(a, first, last, guess)
		switch {
		case n == pivotIndex:
			return
		case n < pivotIndex:
			last = pivotIndex - 1
		default:
			first = pivotIndex + 1
		}
	}
}

// partition moves every element smaller than the pivot to its left and
// every larger element to its right, returning the pivot's final index.
func partition(a sort.Interface, firstIdx, lastIdx, pivotIdx int) int {
	a.Swap(firstIdx, pivotIdx)
	pivotIdx = firstIdx

	left, right := firstIdx+1, lastIdx
	for left <= right {
		for left <= lastIdx && a.Less(left, pivotIdx) {
			left++
		}
		for right >= pivotIdx && a.Less(pivotIdx, right) {
			right--
		}
		if left <= right {
			a.Swap(left, right)
			left++
			right--
		}
	}
	a.Swap(pivotIdx, right)
	return right
}
