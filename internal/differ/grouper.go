package differ

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aleister1102/docdiff/internal/models"
)

// maxReplaceLengthRatio bounds how different in size a delete and an insert
// may be and still be shown as one replacement.
const maxReplaceLengthRatio = 3

// ReplacePolicy decides whether a Delete followed by an Insert is reported as
// a single Replace.
type ReplacePolicy interface {
	ShouldReplace(deleted, inserted string) bool
}

// AlwaysReplace pairs every adjacent delete and insert. Block modes use it.
type AlwaysReplace struct{}

// ShouldReplace implements ReplacePolicy.
func (AlwaysReplace) ShouldReplace(string, string) bool { return true }

// SimilarityReplace pairs a delete and an insert only when both carry
// alphanumeric content of comparable length.
type SimilarityReplace struct{}

// ShouldReplace implements ReplacePolicy.
func (SimilarityReplace) ShouldReplace(deleted, inserted string) bool {
	d, i := strings.TrimSpace(deleted), strings.TrimSpace(inserted)
	if d == "" || i == "" {
		return false
	}
	dl, il := utf8.RuneCountInString(d), utf8.RuneCountInString(i)
	longer, shorter := max(dl, il), min(dl, il)
	if longer > maxReplaceLengthRatio*max(shorter, 1) {
		return false
	}
	return hasAlnum(d) && hasAlnum(i)
}

func hasAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// ReplacePolicyFor returns the replace policy of a comparison mode.
func ReplacePolicyFor(mode models.Mode) ReplacePolicy {
	switch mode {
	case models.ModeHTMLBlock, models.ModeMarkdownBlock:
		return AlwaysReplace{}
	default:
		return SimilarityReplace{}
	}
}

// run is a maximal stretch of raw edits sharing one kind.
type run struct {
	kind  models.OpKind
	left  []Unit
	right []Unit
}

// mergeRuns folds consecutive edits of the same kind into runs.
func mergeRuns(edits []Edit, left, right Sequence) []run {
	var runs []run
	for _, e := range edits {
		if len(runs) == 0 || runs[len(runs)-1].kind != e.Kind {
			runs = append(runs, run{kind: e.Kind})
		}
		cur := &runs[len(runs)-1]
		if e.LeftIndex >= 0 {
			cur.left = append(cur.left, left.Units[e.LeftIndex])
		}
		if e.RightIndex >= 0 {
			cur.right = append(cur.right, right.Units[e.RightIndex])
		}
	}
	return runs
}

// Group turns a raw edit script into the grouped script: same-kind runs are
// merged and Delete+Insert pairs accepted by policy become Replace ops. The
// result is a new slice; inputs are not modified.
func Group(edits []Edit, left, right Sequence, policy ReplacePolicy) []models.DiffOp {
	runs := mergeRuns(edits, left, right)
	ops := make([]models.DiffOp, 0, len(runs))
	emit := func(op models.DiffOp) {
		op.Index = len(ops)
		ops = append(ops, op)
	}

	for i := 0; i < len(runs); i++ {
		r := runs[i]
		switch r.kind {
		case models.OpEqual:
			emit(models.DiffOp{
				Kind:       models.OpEqual,
				LeftText:   left.joinText(r.left),
				RightText:  right.joinText(r.right),
				LeftPlain:  left.joinPlain(r.left),
				RightPlain: right.joinPlain(r.right),
			})
		case models.OpDelete:
			del := models.DiffOp{
				Kind:      models.OpDelete,
				LeftText:  left.joinText(r.left),
				LeftPlain: left.joinPlain(r.left),
			}
			if i+1 < len(runs) && runs[i+1].kind == models.OpInsert {
				next := runs[i+1]
				insPlain := right.joinPlain(next.right)
				if policy.ShouldReplace(del.LeftPlain, insPlain) {
					del.Kind = models.OpReplace
					del.RightText = right.joinText(next.right)
					del.RightPlain = insPlain
					emit(del)
					i++
					continue
				}
			}
			emit(del)
		case models.OpInsert:
			emit(models.DiffOp{
				Kind:       models.OpInsert,
				RightText:  right.joinText(r.right),
				RightPlain: right.joinPlain(r.right),
			})
		}
	}
	return ops
}
