package differ

import (
	"strings"

	"github.com/aleister1102/docdiff/internal/models"
)

// Unit is one comparable element of a tokenized document: a word-mode token
// or a paragraph-level block. Text is what gets rendered, Key is what gets
// compared. For word tokens the two are identical.
type Unit struct {
	Text string
	Key  string
}

// Sequence is the tokenized form of one side of a comparison.
type Sequence struct {
	Units []Unit
	// TextSep joins the stored text of adjacent units inside a merged op.
	TextSep string
	// PlainSep joins the keys of adjacent units inside a merged op.
	PlainSep string
}

// Len returns the number of units.
func (s Sequence) Len() int {
	return len(s.Units)
}

// Keys returns the comparison keys in order.
func (s Sequence) Keys() []string {
	keys := make([]string, len(s.Units))
	for i, u := range s.Units {
		keys[i] = u.Key
	}
	return keys
}

// joinText concatenates the stored text of units.
func (s Sequence) joinText(units []Unit) string {
	parts := make([]string, len(units))
	for i, u := range units {
		parts[i] = u.Text
	}
	return strings.Join(parts, s.TextSep)
}

// joinPlain concatenates the comparison keys of units.
func (s Sequence) joinPlain(units []Unit) string {
	parts := make([]string, len(units))
	for i, u := range units {
		parts[i] = u.Key
	}
	return strings.Join(parts, s.PlainSep)
}

// Tokenizer splits a raw document into a Sequence.
type Tokenizer interface {
	Tokenize(input string) Sequence
}

// TokenizerFor returns the default tokenizer of a comparison mode.
func TokenizerFor(mode models.Mode) Tokenizer {
	switch mode {
	case models.ModeHTMLBlock:
		return NewHTMLBlockTokenizer(nil)
	case models.ModeMarkdownBlock:
		return NewMarkdownBlockTokenizer(nil)
	default:
		return NewWordTokenizer()
	}
}
