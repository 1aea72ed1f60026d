package spatialtree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulkLoadEmptyItems(t *testing.T) {
	tr, err := New(4, Quadratic)
	require.NoError(t, err)
	require.NoError(t, tr.BulkLoad(nil))
	assert.True(t, tr.root.isLeaf)
	assert.Empty(t, tr.root.children)
}

func TestBulkLoadRejectsNilData(t *testing.T) {
	tr, err := New(4, Quadratic)
	require.NoError(t, err)
	err = tr.BulkLoad([]Item{{Box: Rect{0, 0, 1, 1}, Data: nil}})
	assert.ErrorIs(t, err, ErrNilData)
}

func TestBulkLoadSingleItem(t *testing.T) {
	tr, err := New(4, Quadratic)
	require.NoError(t, err)
	require.NoError(t, tr.BulkLoad([]Item{{Box: Rect{0, 0, 1, 1}, Data: "only"}}))
	assert.Equal(t, []any{"only"}, tr.Search(Rect{0, 0, 1, 1}))
}

func TestBulkLoadAllItemsFindable(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	items := make([]Item, 200)
	for i := range items {
		x := rng.Float64() * 1000
		y := rng.Float64() * 1000
		items[i] = Item{Box: Rect{x, y, x + 2, y + 2}, Data: i}
	}

	tr, err := New(8, Quadratic)
	require.NoError(t, err)
	require.NoError(t, tr.BulkLoad(items))

	for _, it := range items {
		assert.Contains(t, tr.Search(it.Box), it.Data)
	}
}

func TestBulkLoadRespectsMaxEntriesFanout(t *testing.T) {
	items := make([]Item, 50)
	for i := range items {
		x := float64(i)
		items[i] = Item{Box: Rect{x, 0, x + 1, 1}, Data: i}
	}
	tr, err := New(4, Quadratic)
	require.NoError(t, err)
	require.NoError(t, tr.BulkLoad(items))

	var check func(n *node)
	check = func(n *node) {
		if !n.isEntry() {
			assert.LessOrEqual(t, len(n.children), tr.maxEntries)
		}
		for _, c := range n.children {
			check(c)
		}
	}
	check(tr.root)
}
