package models

import (
	"fmt"
)

// OpKind defines the type of change an operation represents.
type OpKind int

const (
	// OpEqual indicates a segment present on both sides.
	OpEqual OpKind = iota
	// OpInsert indicates a segment present only in the modified document.
	OpInsert
	// OpDelete indicates a segment present only in the original document.
	OpDelete
	// OpReplace indicates a segment that was edited: removed on the left and
	// substituted by different content on the right.
	OpReplace
)

// String returns the lower-case name of the kind.
func (k OpKind) String() string {
	switch k {
	case OpEqual:
		return "equal"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpReplace:
		return "replace"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// MarshalText encodes the kind by name so JSON reports stay readable.
func (k OpKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// HasLeft reports whether ops of this kind carry original-side content.
func (k OpKind) HasLeft() bool {
	return k == OpEqual || k == OpDelete || k == OpReplace
}

// HasRight reports whether ops of this kind carry modified-side content.
func (k OpKind) HasRight() bool {
	return k == OpEqual || k == OpInsert || k == OpReplace
}

// DiffOp is one unit of the grouped edit script.
//
// LeftText and RightText hold the stored representation (words for word mode,
// original markup for block modes). LeftPlain and RightPlain hold the text the
// units were compared on; in word mode they equal the stored text.
type DiffOp struct {
	Index      int    `json:"index"`
	Kind       OpKind `json:"kind"`
	LeftText   string `json:"left_text,omitempty"`
	RightText  string `json:"right_text,omitempty"`
	LeftPlain  string `json:"-"`
	RightPlain string `json:"-"`
}

// Validate checks the per-kind invariants of the op.
func (op DiffOp) Validate() error {
	switch op.Kind {
	case OpEqual:
		if op.LeftPlain != op.RightPlain {
			return fmt.Errorf("equal op %d: sides differ (%q vs %q)", op.Index, op.LeftPlain, op.RightPlain)
		}
		if op.LeftText == "" || op.RightText == "" {
			return fmt.Errorf("equal op %d: both sides required", op.Index)
		}
	case OpInsert:
		if op.LeftText != "" || op.RightText == "" {
			return fmt.Errorf("insert op %d: only right side allowed", op.Index)
		}
	case OpDelete:
		if op.RightText != "" || op.LeftText == "" {
			return fmt.Errorf("delete op %d: only left side allowed", op.Index)
		}
	case OpReplace:
		if op.LeftText == "" || op.RightText == "" {
			return fmt.Errorf("replace op %d: both sides required", op.Index)
		}
		if op.LeftPlain == op.RightPlain {
			return fmt.Errorf("replace op %d: sides are identical", op.Index)
		}
	default:
		return fmt.Errorf("op %d: unknown kind %d", op.Index, int(op.Kind))
	}
	return nil
}

// Stats aggregates the grouped script into user-facing counts.
type Stats struct {
	Insertions     int     `json:"insertions"`
	Deletions      int     `json:"deletions"`
	Replacements   int     `json:"replacements"`
	Unchanged      int     `json:"unchanged"`
	ChangedPercent float64 `json:"changed_percent"`
}

// TotalChanges returns changed words plus replacement groups.
func (s Stats) TotalChanges() int {
	return s.Insertions + s.Deletions + s.Replacements
}

// ChangeKind tags a change item.
type ChangeKind int

const (
	ChangeInserted ChangeKind = iota
	ChangeDeleted
	ChangeReplaced
)

// String returns the display name of the change kind.
func (k ChangeKind) String() string {
	switch k {
	case ChangeInserted:
		return "inserted"
	case ChangeDeleted:
		return "deleted"
	case ChangeReplaced:
		return "replaced"
	default:
		return fmt.Sprintf("ChangeKind(%d)", int(k))
	}
}

// MarshalText encodes the change kind by name.
func (k ChangeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ChangeItem is an addressable record of one non-equal grouped op.
// SourceOpIndex points into ComparisonResult.Ops.
type ChangeItem struct {
	ID            int        `json:"id"`
	Kind          ChangeKind `json:"kind"`
	Preview       string     `json:"preview"`
	SourceOpIndex int        `json:"source_op_index"`
}

// ComparisonResult holds the structured result of one comparison.
type ComparisonResult struct {
	Mode        Mode         `json:"mode"`
	Ops         []DiffOp     `json:"ops"`
	LeftBlocks  []DiffOp     `json:"left_blocks"`
	RightBlocks []DiffOp     `json:"right_blocks"`
	Stats       Stats        `json:"stats"`
	ChangeItems []ChangeItem `json:"change_items"`
}

// IsIdentical reports whether the comparison found no changes.
func (r *ComparisonResult) IsIdentical() bool {
	return len(r.ChangeItems) == 0
}

// OpAt resolves a change item back to its grouped op.
func (r *ComparisonResult) OpAt(item ChangeItem) (DiffOp, bool) {
	if item.SourceOpIndex < 0 || item.SourceOpIndex >= len(r.Ops) {
		return DiffOp{}, false
	}
	return r.Ops[item.SourceOpIndex], true
}
