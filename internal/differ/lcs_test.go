package differ

import (
	"testing"

	"github.com/aleister1102/docdiff/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(edits []Edit) []models.OpKind {
	out := make([]models.OpKind, len(edits))
	for i, e := range edits {
		out[i] = e.Kind
	}
	return out
}

func TestAlign_Empty(t *testing.T) {
	assert.Empty(t, Align[string](nil, nil))
	assert.Equal(t, []models.OpKind{models.OpInsert, models.OpInsert},
		kinds(Align(nil, []string{"a", "b"})))
	assert.Equal(t, []models.OpKind{models.OpDelete},
		kinds(Align([]string{"a"}, nil)))
}

func TestAlign_TieBreakPrefersInsert(t *testing.T) {
	// Backtracking takes the insert first, so in document order the delete
	// precedes the insert.
	edits := Align([]string{"a"}, []string{"b"})
	require.Len(t, edits, 2)
	assert.Equal(t, Edit{Kind: models.OpDelete, LeftIndex: 0, RightIndex: -1}, edits[0])
	assert.Equal(t, Edit{Kind: models.OpInsert, LeftIndex: -1, RightIndex: 0}, edits[1])

	edits = Align([]string{"a", "b"}, []string{"b", "a"})
	assert.Equal(t, []Edit{
		{Kind: models.OpDelete, LeftIndex: 0, RightIndex: -1},
		{Kind: models.OpEqual, LeftIndex: 1, RightIndex: 0},
		{Kind: models.OpInsert, LeftIndex: -1, RightIndex: 1},
	}, edits)
}

func TestAlign_CoversBothSides(t *testing.T) {
	left := []string{"x", "a", "b", "c", "y"}
	right := []string{"a", "z", "c", "y", "w"}
	edits := Align(left, right)

	var li, ri, equal int
	for _, e := range edits {
		if e.LeftIndex >= 0 {
			assert.Equal(t, li, e.LeftIndex)
			li++
		}
		if e.RightIndex >= 0 {
			assert.Equal(t, ri, e.RightIndex)
			ri++
		}
		if e.Kind == models.OpEqual {
			assert.Equal(t, left[e.LeftIndex], right[e.RightIndex])
			equal++
		}
	}
	assert.Equal(t, len(left), li)
	assert.Equal(t, len(right), ri)
	assert.Equal(t, LCSLength(left, right), equal)
}

func TestLCSLength(t *testing.T) {
	assert.Equal(t, 0, LCSLength([]int{}, []int{1}))
	assert.Equal(t, 4, LCSLength([]rune("ABCBDAB"), []rune("BDCABA")))
}

func TestTableSize(t *testing.T) {
	assert.Equal(t, int64(12), TableCells(2, 3))
	assert.Equal(t, uint64(48), TableBytes(2, 3))
	assert.Equal(t, int64(1), TableCells(0, 0))
}
