package differ

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitMarkdownBlocks(t *testing.T) {
	source := "# Title\r\n\r\nPara one\nline two\n\n\n  \n- item  \n"

	assert.Equal(t, []string{"# Title", "Para one\nline two", "- item"}, SplitMarkdownBlocks(source))
	assert.Empty(t, SplitMarkdownBlocks("\n\n   \n"))
}

func TestMarkdownPlainText(t *testing.T) {
	mt := NewMarkdownBlockTokenizer(nil)
	tests := []struct {
		block string
		want  string
	}{
		{block: "# Title", want: "Title"},
		{block: "**bold** and [link](http://example.com)", want: "bold and link"},
		{block: "Para one\nline two", want: "Para one line two"},
		{block: "- first\n- second", want: "first second"},
		{block: "Use `code` here", want: "Use code here"},
	}

	for _, tt := range tests {
		t.Run(tt.block, func(t *testing.T) {
			assert.Equal(t, tt.want, collapseSpace(mt.PlainText(tt.block)))
		})
	}
}

func TestMarkdownBlockTokenizer(t *testing.T) {
	seq := NewMarkdownBlockTokenizer(nil).Tokenize("Intro *text*\n\n\n\nOutro")

	assert.Equal(t, []string{"Intro text", "Outro"}, seq.Keys())
	assert.Equal(t, "Intro *text*", seq.Units[0].Text)
	assert.Equal(t, "\n\n", seq.TextSep)
}
