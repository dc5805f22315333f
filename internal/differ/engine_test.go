package differ

import (
	"strings"
	"testing"

	"github.com/aleister1102/docdiff/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func joinSide(ops []models.DiffOp, left bool) string {
	var b strings.Builder
	for _, op := range ops {
		if left && op.Kind.HasLeft() {
			b.WriteString(op.LeftText)
		}
		if !left && op.Kind.HasRight() {
			b.WriteString(op.RightText)
		}
	}
	return b.String()
}

func TestCompare_ReplaceScenario(t *testing.T) {
	result := Compare("apple banana cherry", "apple grape cherry", models.ModeWord)

	require.Len(t, result.Ops, 3)
	assert.Equal(t, models.OpEqual, result.Ops[0].Kind)
	assert.Equal(t, "apple ", result.Ops[0].LeftText)
	assert.Equal(t, models.OpReplace, result.Ops[1].Kind)
	assert.Equal(t, "banana", result.Ops[1].LeftText)
	assert.Equal(t, "grape", result.Ops[1].RightText)
	assert.Equal(t, models.OpEqual, result.Ops[2].Kind)
	assert.Equal(t, " cherry", result.Ops[2].RightText)

	assert.Equal(t, 0, result.Stats.Insertions)
	assert.Equal(t, 0, result.Stats.Deletions)
	assert.Equal(t, 1, result.Stats.Replacements)
	assert.Equal(t, 2, result.Stats.Unchanged)

	require.Len(t, result.ChangeItems, 1)
	assert.Equal(t, models.ChangeReplaced, result.ChangeItems[0].Kind)
	assert.Equal(t, "banana → grape", result.ChangeItems[0].Preview)
	assert.Equal(t, 1, result.ChangeItems[0].SourceOpIndex)
	assert.NoError(t, models.ValidateScript(result.Ops))
}

func TestCompare_Identity(t *testing.T) {
	for _, mode := range []models.Mode{models.ModeWord, models.ModeHTMLBlock, models.ModeMarkdownBlock} {
		t.Run(mode.String(), func(t *testing.T) {
			doc := "<p>Some text, here.</p>\n\n<p>Second block</p>"
			result := Compare(doc, doc, mode)

			assert.True(t, result.IsIdentical())
			for _, op := range result.Ops {
				assert.Equal(t, models.OpEqual, op.Kind)
			}
			assert.Zero(t, result.Stats.Insertions+result.Stats.Deletions+result.Stats.Replacements)
			assert.Zero(t, result.Stats.ChangedPercent)
		})
	}
}

func TestCompare_BothEmpty(t *testing.T) {
	result := Compare("", "", models.ModeWord)

	assert.NotNil(t, result.Ops)
	assert.Empty(t, result.Ops)
	assert.NotNil(t, result.ChangeItems)
	assert.Empty(t, result.ChangeItems)
	assert.Equal(t, models.Stats{}, result.Stats)
}

func TestCompare_OneSidedEmpty(t *testing.T) {
	result := Compare("", "hello world", models.ModeWord)

	require.Len(t, result.Ops, 1)
	assert.Equal(t, models.OpInsert, result.Ops[0].Kind)
	assert.Equal(t, "hello world", result.Ops[0].RightText)
	assert.Equal(t, 2, result.Stats.Insertions)
	assert.InDelta(t, 100.0, result.Stats.ChangedPercent, 1e-9)
	assert.Empty(t, result.LeftBlocks)
	assert.Len(t, result.RightBlocks, 1)

	reverse := Compare("hello world", "", models.ModeWord)
	require.Len(t, reverse.Ops, 1)
	assert.Equal(t, models.OpDelete, reverse.Ops[0].Kind)
	assert.Equal(t, 2, reverse.Stats.Deletions)
}

func TestCompare_Symmetry(t *testing.T) {
	forward := Compare("The cat sat", "The dog sat", models.ModeWord)
	backward := Compare("The dog sat", "The cat sat", models.ModeWord)

	require.Len(t, forward.Ops, 3)
	require.Len(t, backward.Ops, 3)
	assert.Equal(t, models.OpReplace, forward.Ops[1].Kind)
	assert.Equal(t, "cat", forward.Ops[1].LeftText)
	assert.Equal(t, "dog", forward.Ops[1].RightText)
	assert.Equal(t, models.OpReplace, backward.Ops[1].Kind)
	assert.Equal(t, "dog", backward.Ops[1].LeftText)
	assert.Equal(t, "cat", backward.Ops[1].RightText)
}

func TestCompare_PunctuationIsNotReplace(t *testing.T) {
	result := Compare("Hello.", "Hello,", models.ModeWord)

	for _, op := range result.Ops {
		assert.NotEqual(t, models.OpReplace, op.Kind)
	}
	assert.Equal(t, 1, result.Stats.Deletions)
	assert.Equal(t, 1, result.Stats.Insertions)
	assert.Len(t, result.ChangeItems, 2)
}

func TestCompare_RoundTripWordMode(t *testing.T) {
	pairs := [][2]string{
		{"The quick brown fox.", "A quick red fox, jumping!"},
		{"  spaced   out ", "spaced in"},
		{"", "only right"},
		{"x y z", "z y x"},
	}

	for _, p := range pairs {
		result := Compare(p[0], p[1], models.ModeWord)
		assert.Equal(t, NormalizeText(p[0]), joinSide(result.Ops, true))
		assert.Equal(t, NormalizeText(p[1]), joinSide(result.Ops, false))
		assert.NoError(t, models.ValidateScript(result.Ops))
	}
}

func TestCompare_SideBlocks(t *testing.T) {
	result := Compare("a b c", "a x c d", models.ModeWord)

	for _, op := range result.LeftBlocks {
		assert.True(t, op.Kind.HasLeft())
	}
	for _, op := range result.RightBlocks {
		assert.True(t, op.Kind.HasRight())
	}
	for _, item := range result.ChangeItems {
		op, ok := result.OpAt(item)
		require.True(t, ok)
		assert.NotEqual(t, models.OpEqual, op.Kind)
	}
}

func TestCompare_HTMLBlocks(t *testing.T) {
	left := "<html><body><p>One</p><p>Two</p></body></html>"
	right := "<html><body><p>One</p><p>Three</p></body></html>"

	result := Compare(left, right, models.ModeHTMLBlock)

	require.Len(t, result.Ops, 2)
	assert.Equal(t, models.OpEqual, result.Ops[0].Kind)
	assert.Equal(t, "<p>One</p>", result.Ops[0].LeftText)
	assert.Equal(t, models.OpReplace, result.Ops[1].Kind)
	assert.Equal(t, "<p>Two</p>", result.Ops[1].LeftText)
	assert.Equal(t, "<p>Three</p>", result.Ops[1].RightText)
	assert.Equal(t, 1, result.Stats.Unchanged)
	assert.Equal(t, 1, result.Stats.Replacements)
	assert.Equal(t, "Two → Three", result.ChangeItems[0].Preview)
}

func TestCompare_HTMLMarkupOnlyChangeIsEqual(t *testing.T) {
	result := Compare("<p>Same <b>text</b></p>", "<p class=\"x\">Same text</p>", models.ModeHTMLBlock)

	assert.True(t, result.IsIdentical())
}

func TestCompare_MarkdownBlocks(t *testing.T) {
	left := "# Title\n\nFirst paragraph.\n\nOld closing words."
	right := "# Title\n\nFirst paragraph.\n\nA new middle.\n\nOld closing words."

	result := Compare(left, right, models.ModeMarkdownBlock)

	require.Len(t, result.Ops, 3)
	assert.Equal(t, models.OpEqual, result.Ops[0].Kind)
	assert.Equal(t, "# Title\n\nFirst paragraph.", result.Ops[0].LeftText)
	assert.Equal(t, models.OpInsert, result.Ops[1].Kind)
	assert.Equal(t, "A new middle.", result.Ops[1].RightText)
	assert.Equal(t, models.OpEqual, result.Ops[2].Kind)
	assert.Equal(t, 3, result.Stats.Insertions)
}
