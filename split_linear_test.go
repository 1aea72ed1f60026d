package spatialtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLinearPartitionsAllChildren(t *testing.T) {
	children := []*node{
		newEntry(Rect{0, 0, 1, 1}, "a"),
		newEntry(Rect{10, 0, 11, 1}, "b"),
		newEntry(Rect{20, 0, 21, 1}, "c"),
		newEntry(Rect{30, 0, 31, 1}, "d"),
	}
	g1, g2 := splitLinear(children)
	assert.Equal(t, len(children), len(g1)+len(g2))
	assert.NotEmpty(t, g1)
	assert.NotEmpty(t, g2)
}

func TestSplitLinearSeedsAreAxisExtremes(t *testing.T) {
	// Far-apart seeds on X should end up in separate groups.
	children := []*node{
		newEntry(Rect{0, 0, 1, 1}, "left"),
		newEntry(Rect{100, 0, 101, 1}, "right"),
		newEntry(Rect{50, 0, 51, 1}, "middle"),
	}
	g1, g2 := splitLinear(children)

	sameGroup := func(groups [][]*node, a, b string) bool {
		for _, g := range groups {
			hasA, hasB := false, false
			for _, n := range g {
				if n.data == a {
					hasA = true
				}
				if n.data == b {
					hasB = true
				}
			}
			if hasA && hasB {
				return true
			}
		}
		return false
	}
	assert.False(t, sameGroup([][]*node{g1, g2}, "left", "right"))
}
