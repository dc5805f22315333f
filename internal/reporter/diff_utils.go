package reporter

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/aleister1102/docdiff/internal/differ"
	"github.com/aleister1102/docdiff/internal/models"
)

// DiffUtils renders grouped ops and summaries for reports
type DiffUtils struct {
	inline *differ.InlineDiffer
}

// NewDiffUtils creates a new DiffUtils. A nil inline differ disables
// character-level highlighting of replacements.
func NewDiffUtils(inline *differ.InlineDiffer) *DiffUtils {
	return &DiffUtils{inline: inline}
}

// DisplayText returns the text shown for one side of op. HTML blocks are
// shown as their extracted text so document markup never reaches the report.
func (du *DiffUtils) DisplayText(op models.DiffOp, mode models.Mode, left bool) string {
	if mode == models.ModeHTMLBlock {
		if left {
			return op.LeftPlain
		}
		return op.RightPlain
	}
	if left {
		return op.LeftText
	}
	return op.RightText
}

// RenderSides returns the escaped HTML of both sides of op. Sides the op
// does not carry are empty.
func (du *DiffUtils) RenderSides(op models.DiffOp, mode models.Mode) (left, right template.HTML) {
	if op.Kind == models.OpReplace && du.inline != nil {
		leftSpans, rightSpans := du.inline.Refine(op)
		return renderSpans(leftSpans), renderSpans(rightSpans)
	}

	leftKind, rightKind := op.Kind, op.Kind
	if op.Kind == models.OpReplace {
		leftKind, rightKind = models.OpDelete, models.OpInsert
	}
	if op.Kind.HasLeft() {
		left = wrapKind(leftKind, du.DisplayText(op, mode, true))
	}
	if op.Kind.HasRight() {
		right = wrapKind(rightKind, du.DisplayText(op, mode, false))
	}
	return left, right
}

func renderSpans(spans []differ.InlineSpan) template.HTML {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(string(wrapKind(s.Kind, s.Text)))
	}
	return template.HTML(b.String())
}

func wrapKind(kind models.OpKind, text string) template.HTML {
	escaped := strings.ReplaceAll(template.HTMLEscapeString(text), "\n", "<br>")
	switch kind {
	case models.OpInsert:
		return template.HTML(`<ins>` + escaped + `</ins>`)
	case models.OpDelete:
		return template.HTML(`<del>` + escaped + `</del>`)
	default:
		return template.HTML(escaped)
	}
}

// CreateDiffSummary creates a one-line text summary of the result. Changes
// that only touch whitespace add no words to the stats but are still reported.
func (du *DiffUtils) CreateDiffSummary(result *models.ComparisonResult) string {
	if result.IsIdentical() {
		return "No textual changes detected."
	}
	stats := result.Stats
	if stats.TotalChanges() == 0 {
		return fmt.Sprintf("%d whitespace-only change(s), %d unchanged.", len(result.ChangeItems), stats.Unchanged)
	}
	return fmt.Sprintf("%d insertions (+), %d deletions (-), %d replacements (~), %d unchanged. %.1f%% changed.",
		stats.Insertions, stats.Deletions, stats.Replacements, stats.Unchanged, stats.ChangedPercent)
}

// OpAnchor is the fragment id of the row rendering op index i.
func OpAnchor(i int) string {
	return fmt.Sprintf("op-%d", i)
}
