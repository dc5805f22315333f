package differ

import (
	"strings"
	"testing"

	"github.com/aleister1102/docdiff/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func concat(spans []InlineSpan) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

func TestInlineDiffer_RefineReplace(t *testing.T) {
	op := models.DiffOp{Kind: models.OpReplace, LeftPlain: "kitten sat", RightPlain: "sitting sat"}

	left, right := NewInlineDiffer(DefaultDiffConfig()).Refine(op)

	assert.Equal(t, op.LeftPlain, concat(left))
	assert.Equal(t, op.RightPlain, concat(right))
	for _, s := range left {
		assert.NotEqual(t, models.OpInsert, s.Kind)
	}
	for _, s := range right {
		assert.NotEqual(t, models.OpDelete, s.Kind)
	}
	require.NotEmpty(t, left)
	last := left[len(left)-1]
	assert.Equal(t, models.OpEqual, last.Kind)
	assert.True(t, strings.HasSuffix(last.Text, " sat"))
}

func TestInlineDiffer_NonReplace(t *testing.T) {
	id := NewInlineDiffer(DiffConfig{})

	left, right := id.Refine(models.DiffOp{Kind: models.OpInsert, RightPlain: "new"})
	assert.Nil(t, left)
	assert.Equal(t, []InlineSpan{{Kind: models.OpInsert, Text: "new"}}, right)

	left, right = id.Refine(models.DiffOp{Kind: models.OpEqual, LeftPlain: "x", RightPlain: "x"})
	assert.Equal(t, []InlineSpan{{Kind: models.OpEqual, Text: "x"}}, left)
	assert.Equal(t, []InlineSpan{{Kind: models.OpEqual, Text: "x"}}, right)
}

func TestAppendSpan_Coalesces(t *testing.T) {
	var spans []InlineSpan
	spans = appendSpan(spans, models.OpEqual, "a")
	spans = appendSpan(spans, models.OpEqual, "b")
	spans = appendSpan(spans, models.OpDelete, "")
	spans = appendSpan(spans, models.OpDelete, "c")

	assert.Equal(t, []InlineSpan{{Kind: models.OpEqual, Text: "ab"}, {Kind: models.OpDelete, Text: "c"}}, spans)
}
