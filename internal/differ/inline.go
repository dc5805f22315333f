package differ

import (
	"github.com/aleister1102/docdiff/internal/models"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// InlineSpan is a character-level segment of one side of a Replace op.
type InlineSpan struct {
	Kind models.OpKind
	Text string
}

// InlineDiffer refines Replace ops into character-level spans for rendering.
type InlineDiffer struct {
	dmp    *diffmatchpatch.DiffMatchPatch
	config DiffConfig
}

// NewInlineDiffer creates a new inline differ
func NewInlineDiffer(config DiffConfig) *InlineDiffer {
	return &InlineDiffer{
		dmp:    diffmatchpatch.New(),
		config: config,
	}
}

// Refine splits a Replace op into spans for the left side (equal and deleted
// text) and the right side (equal and inserted text). Other kinds come back
// as a single span per present side.
func (id *InlineDiffer) Refine(op models.DiffOp) (left, right []InlineSpan) {
	if op.Kind != models.OpReplace {
		if op.Kind.HasLeft() {
			left = []InlineSpan{{Kind: op.Kind, Text: op.LeftPlain}}
		}
		if op.Kind.HasRight() {
			right = []InlineSpan{{Kind: op.Kind, Text: op.RightPlain}}
		}
		return left, right
	}

	diffs := id.dmp.DiffMain(op.LeftPlain, op.RightPlain, false)
	if id.config.EnableSemanticCleanup {
		diffs = id.dmp.DiffCleanupSemantic(diffs)
	}

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			left = appendSpan(left, models.OpEqual, d.Text)
			right = appendSpan(right, models.OpEqual, d.Text)
		case diffmatchpatch.DiffDelete:
			left = appendSpan(left, models.OpDelete, d.Text)
		case diffmatchpatch.DiffInsert:
			right = appendSpan(right, models.OpInsert, d.Text)
		}
	}
	return left, right
}

// appendSpan appends text, coalescing with the previous span of the same kind.
func appendSpan(spans []InlineSpan, kind models.OpKind, text string) []InlineSpan {
	if text == "" {
		return spans
	}
	if n := len(spans); n > 0 && spans[n-1].Kind == kind {
		spans[n-1].Text += text
		return spans
	}
	return append(spans, InlineSpan{Kind: kind, Text: text})
}
