package differ

import (
	"github.com/aleister1102/docdiff/internal/models"
)

// Edit is one step of the raw edit script. Equal edits carry both indices,
// Insert edits only RightIndex and Delete edits only LeftIndex; the unused
// index is -1.
type Edit struct {
	Kind       models.OpKind
	LeftIndex  int
	RightIndex int
}

// lcsTable is the (m+1)x(n+1) table of LCS lengths, stored row-major.
type lcsTable struct {
	cells []int32
	cols  int
}

func (t lcsTable) at(i, j int) int32 {
	return t.cells[i*t.cols+j]
}

// TableCells returns the number of cells Align allocates for inputs of
// length m and n.
func TableCells(m, n int) int64 {
	return int64(m+1) * int64(n+1)
}

// TableBytes estimates the memory Align needs for inputs of length m and n.
func TableBytes(m, n int) uint64 {
	return uint64(TableCells(m, n)) * 4
}

// Align computes a minimal insert/delete edit script between left and right
// using the classic dynamic-programming LCS table. On ties the backtrack
// prefers Insert over Delete, which fixes a single canonical script.
//
// Time and space are O(m*n); the table is allocated per call.
func Align[K comparable](left, right []K) []Edit {
	m, n := len(left), len(right)
	if m == 0 && n == 0 {
		return nil
	}
	table := buildLCSTable(left, right)

	edits := make([]Edit, 0, m+n)
	i, j := m, n
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && left[i-1] == right[j-1]:
			edits = append(edits, Edit{Kind: models.OpEqual, LeftIndex: i - 1, RightIndex: j - 1})
			i--
			j--
		case j > 0 && (i == 0 || table.at(i, j-1) >= table.at(i-1, j)):
			edits = append(edits, Edit{Kind: models.OpInsert, LeftIndex: -1, RightIndex: j - 1})
			j--
		default:
			edits = append(edits, Edit{Kind: models.OpDelete, LeftIndex: i - 1, RightIndex: -1})
			i--
		}
	}

	// Built back to front.
	for l, r := 0, len(edits)-1; l < r; l, r = l+1, r-1 {
		edits[l], edits[r] = edits[r], edits[l]
	}
	return edits
}

func buildLCSTable[K comparable](left, right []K) lcsTable {
	m, n := len(left), len(right)
	t := lcsTable{cells: make([]int32, (m+1)*(n+1)), cols: n + 1}
	for i := 1; i <= m; i++ {
		row := i * t.cols
		prev := (i - 1) * t.cols
		for j := 1; j <= n; j++ {
			if left[i-1] == right[j-1] {
				t.cells[row+j] = t.cells[prev+j-1] + 1
				continue
			}
			up, back := t.cells[prev+j], t.cells[row+j-1]
			if up >= back {
				t.cells[row+j] = up
			} else {
				t.cells[row+j] = back
			}
		}
	}
	return t
}

// LCSLength returns the length of the longest common subsequence.
func LCSLength[K comparable](left, right []K) int {
	if len(left) == 0 || len(right) == 0 {
		return 0
	}
	t := buildLCSTable(left, right)
	return int(t.at(len(left), len(right)))
}
