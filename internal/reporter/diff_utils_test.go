package reporter

import (
	"testing"

	"github.com/aleister1102/docdiff/internal/differ"
	"github.com/aleister1102/docdiff/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDiffUtils_RenderSides(t *testing.T) {
	du := NewDiffUtils(nil)

	left, right := du.RenderSides(models.DiffOp{Kind: models.OpInsert, RightText: "a<b", RightPlain: "a<b"}, models.ModeWord)
	assert.Empty(t, left)
	assert.Equal(t, "<ins>a&lt;b</ins>", string(right))

	left, right = du.RenderSides(models.DiffOp{Kind: models.OpEqual, LeftText: "x\ny", RightText: "x\ny"}, models.ModeMarkdownBlock)
	assert.Equal(t, "x<br>y", string(left))
	assert.Equal(t, "x<br>y", string(right))
}

func TestDiffUtils_HTMLModeShowsPlainText(t *testing.T) {
	du := NewDiffUtils(nil)
	op := models.DiffOp{Kind: models.OpDelete, LeftText: "<p>Gone <b>now</b></p>", LeftPlain: "Gone now"}

	left, _ := du.RenderSides(op, models.ModeHTMLBlock)
	assert.Equal(t, "<del>Gone now</del>", string(left))
}

func TestDiffUtils_InlineReplace(t *testing.T) {
	du := NewDiffUtils(differ.NewInlineDiffer(differ.DefaultDiffConfig()))
	op := models.DiffOp{Kind: models.OpReplace, LeftText: "abc", RightText: "abd", LeftPlain: "abc", RightPlain: "abd"}

	left, right := du.RenderSides(op, models.ModeWord)
	assert.Contains(t, string(left), "<del>")
	assert.Contains(t, string(right), "<ins>")
}

func TestCreateDiffSummary(t *testing.T) {
	du := NewDiffUtils(nil)

	identical := &models.ComparisonResult{Stats: models.Stats{Unchanged: 4}}
	assert.Equal(t, "No textual changes detected.", du.CreateDiffSummary(identical))

	deleted := &models.ComparisonResult{
		Stats:       models.Stats{Deletions: 1, Unchanged: 1, ChangedPercent: 50},
		ChangeItems: []models.ChangeItem{{ID: 1, Kind: models.ChangeDeleted}},
	}
	assert.Equal(t, "0 insertions (+), 1 deletions (-), 0 replacements (~), 1 unchanged. 50.0% changed.",
		du.CreateDiffSummary(deleted))
}

func TestCreateDiffSummary_WhitespaceOnlyChange(t *testing.T) {
	du := NewDiffUtils(nil)
	result := differ.Compare("a, b", "a,b", models.ModeWord)

	assert.NotEmpty(t, result.ChangeItems)
	assert.Equal(t, 0, result.Stats.TotalChanges())

	summary := du.CreateDiffSummary(result)
	assert.NotEqual(t, "No textual changes detected.", summary)
	assert.Contains(t, summary, "whitespace-only")
}

func TestGetDiffTemplateFunctions(t *testing.T) {
	funcs := GetDiffTemplateFunctions()

	names := make([]string, 0, len(funcs))
	for name := range funcs {
		names = append(names, name)
	}
	assert.ElementsMatch(t, []string{"title", "percent", "kindClass"}, names)

	assert.Equal(t, "Html Block", funcs["title"].(func(string) string)("html block"))
	assert.Equal(t, "op-replace", funcs["kindClass"].(func(string) string)("Replace"))
}
