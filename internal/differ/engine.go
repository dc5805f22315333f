package differ

import (
	"github.com/aleister1102/docdiff/internal/models"
)

// Compare diffs two documents in the given mode. It is a pure function: it
// never fails for string input, holds no state between calls and allocates
// its own alignment table, so concurrent calls are independent.
//
// Alignment is quadratic in the number of units per side. Callers comparing
// large documents should bound input size first; ContentDiffer does that.
func Compare(left, right string, mode models.Mode) *models.ComparisonResult {
	tokenizer := TokenizerFor(mode)
	return CompareSequences(tokenizer.Tokenize(left), tokenizer.Tokenize(right), mode)
}

// CompareSequences runs alignment, grouping and extraction over two
// already-tokenized sides.
func CompareSequences(left, right Sequence, mode models.Mode) *models.ComparisonResult {
	edits := Align(left.Keys(), right.Keys())
	ops := Group(edits, left, right, ReplacePolicyFor(mode))
	return BuildResult(mode, ops)
}

// BuildResult projects a grouped script into a ComparisonResult.
func BuildResult(mode models.Mode, ops []models.DiffOp) *models.ComparisonResult {
	result := &models.ComparisonResult{
		Mode:        mode,
		Ops:         ops,
		LeftBlocks:  make([]models.DiffOp, 0, len(ops)),
		RightBlocks: make([]models.DiffOp, 0, len(ops)),
		Stats:       CalculateStats(ops),
		ChangeItems: ExtractChangeItems(ops),
	}
	if result.Ops == nil {
		result.Ops = []models.DiffOp{}
	}
	for _, op := range ops {
		if op.Kind.HasLeft() {
			result.LeftBlocks = append(result.LeftBlocks, op)
		}
		if op.Kind.HasRight() {
			result.RightBlocks = append(result.RightBlocks, op)
		}
	}
	return result
}
