package differ

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var blankLineRegex = regexp.MustCompile(`\n[ \t]*\n\s*`)

// MarkdownBlockTokenizer splits Markdown source into paragraphs separated by
// blank lines. Blocks keep their source for rendering and are compared on the
// inline text goldmark finds in them.
type MarkdownBlockTokenizer struct {
	md        goldmark.Markdown
	extractor TextExtractor
}

// NewMarkdownBlockTokenizer creates a tokenizer. The extractor handles raw
// HTML blocks embedded in the Markdown; nil selects goquery.
func NewMarkdownBlockTokenizer(extractor TextExtractor) *MarkdownBlockTokenizer {
	if extractor == nil {
		extractor = GoqueryTextExtractor{}
	}
	return &MarkdownBlockTokenizer{
		md:        goldmark.New(),
		extractor: extractor,
	}
}

// Tokenize implements Tokenizer.
func (mt *MarkdownBlockTokenizer) Tokenize(input string) Sequence {
	seq := Sequence{TextSep: "\n\n", PlainSep: " "}
	for _, block := range SplitMarkdownBlocks(input) {
		key := collapseSpace(mt.PlainText(block))
		if key == "" {
			continue
		}
		seq.Units = append(seq.Units, Unit{Text: block, Key: key})
	}
	return seq
}

// SplitMarkdownBlocks splits source on one or more blank lines and returns
// the trimmed, non-empty paragraphs.
func SplitMarkdownBlocks(source string) []string {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	var blocks []string
	for _, part := range blankLineRegex.Split(source, -1) {
		part = strings.Trim(part, "\n")
		if strings.TrimSpace(part) == "" {
			continue
		}
		blocks = append(blocks, strings.TrimRight(part, " \t"))
	}
	return blocks
}

// PlainText renders a Markdown block to its visible text: emphasis, link and
// heading markers are dropped, code and link labels are kept.
func (mt *MarkdownBlockTokenizer) PlainText(block string) string {
	src := []byte(block)
	doc := mt.md.Parser().Parse(text.NewReader(src))

	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if n.Type() == ast.TypeBlock {
				b.WriteByte(' ')
			}
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Text:
			b.Write(node.Segment.Value(src))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(node.Value)
		case *ast.AutoLink:
			b.Write(node.Label(src))
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		case *ast.HTMLBlock:
			b.WriteString(mt.extractor.ExtractText(string(blockLines(node, src))))
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			b.Write(blockLines(n, src))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// blockLines concatenates the raw source lines held by a block node.
func blockLines(n ast.Node, src []byte) []byte {
	var out []byte
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		out = append(out, seg.Value(src)...)
	}
	return out
}
