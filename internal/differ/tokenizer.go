package differ

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// punctuation is the fixed class of characters that always form their own token.
const punctuation = ".,!?;:()[]{}'\"—–-"

// NormalizeText applies compatibility composition (NFKC) and collapses every
// whitespace variant, including non-breaking and zero-width spaces, to a
// single ASCII space. Leading and trailing spaces are kept.
func NormalizeText(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFKC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if isSpace(r) {
			if !inSpace {
				b.WriteByte(' ')
				inSpace = true
			}
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// collapseSpace normalizes s and trims the result. Block keys use it.
func collapseSpace(s string) string {
	return strings.TrimSpace(NormalizeText(s))
}

func isSpace(r rune) bool {
	switch r {
	case '\u200b', '\ufeff':
		return true
	}
	return unicode.IsSpace(r)
}

func isPunct(r rune) bool {
	return strings.ContainsRune(punctuation, r)
}

// WordTokenizer splits text into words, single punctuation characters and
// whitespace runs. Whitespace and punctuation are kept as tokens so spacing
// and punctuation edits show up in the diff.
type WordTokenizer struct{}

// NewWordTokenizer creates a new word tokenizer
func NewWordTokenizer() *WordTokenizer {
	return &WordTokenizer{}
}

// Tokenize implements Tokenizer.
func (wt *WordTokenizer) Tokenize(input string) Sequence {
	tokens := SplitWords(NormalizeText(input))
	units := make([]Unit, len(tokens))
	for i, tok := range tokens {
		units[i] = Unit{Text: tok, Key: tok}
	}
	return Sequence{Units: units}
}

// SplitWords splits already-normalized text. Concatenating the result
// reproduces the input.
func SplitWords(s string) []string {
	if s == "" {
		return nil
	}
	tokens := make([]string, 0, len(s)/4+1)
	start := -1
	flush := func(end int) {
		if start >= 0 && end > start {
			tokens = append(tokens, s[start:end])
		}
		start = -1
	}

	spaceRun := -1
	for i, r := range s {
		switch {
		case isSpace(r):
			flush(i)
			if spaceRun < 0 {
				spaceRun = i
			}
		case isPunct(r):
			flush(i)
			if spaceRun >= 0 {
				tokens = append(tokens, s[spaceRun:i])
				spaceRun = -1
			}
			tokens = append(tokens, string(r))
		default:
			if spaceRun >= 0 {
				tokens = append(tokens, s[spaceRun:i])
				spaceRun = -1
			}
			if start < 0 {
				start = i
			}
		}
	}
	flush(len(s))
	if spaceRun >= 0 {
		tokens = append(tokens, s[spaceRun:])
	}
	return tokens
}
