package differ

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	bodyRegex     = regexp.MustCompile(`(?is)<body[^>]*>(.*)</body\s*>`)
	blockOpenTag  = regexp.MustCompile(`(?i)<(p|div|h[1-6]|li|blockquote)(?:\s[^>]*)?>`)
	tagStripRegex = regexp.MustCompile(`<[^>]*>`)
)

// TextExtractor turns an HTML fragment into its visible text with entities decoded.
type TextExtractor interface {
	ExtractText(fragment string) string
}

// GoqueryTextExtractor extracts text by parsing the fragment with goquery.
type GoqueryTextExtractor struct{}

// ExtractText implements TextExtractor.
func (GoqueryTextExtractor) ExtractText(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return stripTags(fragment)
	}
	return doc.Text()
}

// stripTags removes anything that looks like a tag and decodes the common entities.
func stripTags(fragment string) string {
	return entityReplacer.Replace(tagStripRegex.ReplaceAllString(fragment, " "))
}

var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&amp;", "&",
)

// HTMLBlockTokenizer splits an HTML document into block-level elements.
// Each block keeps its markup for rendering and is compared on its text.
type HTMLBlockTokenizer struct {
	extractor TextExtractor
}

// NewHTMLBlockTokenizer creates a tokenizer. A nil extractor selects goquery.
func NewHTMLBlockTokenizer(extractor TextExtractor) *HTMLBlockTokenizer {
	if extractor == nil {
		extractor = GoqueryTextExtractor{}
	}
	return &HTMLBlockTokenizer{extractor: extractor}
}

// Tokenize implements Tokenizer.
func (ht *HTMLBlockTokenizer) Tokenize(input string) Sequence {
	seq := Sequence{PlainSep: " "}
	for _, block := range FindHTMLBlocks(ExtractBody(input)) {
		key := collapseSpace(ht.extractor.ExtractText(block))
		if key == "" {
			continue
		}
		seq.Units = append(seq.Units, Unit{Text: block, Key: key})
	}
	return seq
}

// ExtractBody returns the content between <body> tags, or the whole input
// when the document has no body element.
func ExtractBody(document string) string {
	if m := bodyRegex.FindStringSubmatch(document); m != nil {
		return m[1]
	}
	return document
}

// FindHTMLBlocks returns the non-overlapping p, div, h1-h6, li and blockquote
// elements of fragment in document order. An element runs from its opening
// tag to the first closing tag with the same name; openings without a
// closing tag are skipped.
func FindHTMLBlocks(fragment string) []string {
	var blocks []string
	lower := asciiLower(fragment)
	pos := 0
	for pos < len(fragment) {
		loc := blockOpenTag.FindStringSubmatchIndex(fragment[pos:])
		if loc == nil {
			break
		}
		openStart, openEnd := pos+loc[0], pos+loc[1]
		name := lower[pos+loc[2] : pos+loc[3]]

		closeEnd, ok := findClosingTag(lower, openEnd, name)
		if !ok {
			pos = openEnd
			continue
		}
		blocks = append(blocks, fragment[openStart:closeEnd])
		pos = closeEnd
	}
	return blocks
}

// findClosingTag returns the end offset of the first "</name>" at or after
// from, allowing whitespace before '>'. lower must be asciiLower(document).
func findClosingTag(lower string, from int, name string) (int, bool) {
	needle := "</" + name
	for from < len(lower) {
		idx := strings.Index(lower[from:], needle)
		if idx < 0 {
			return 0, false
		}
		start := from + idx
		end := start + len(needle)
		for end < len(lower) && (lower[end] == ' ' || lower[end] == '\t' || lower[end] == '\n' || lower[end] == '\r') {
			end++
		}
		if end < len(lower) && lower[end] == '>' {
			return end + 1, true
		}
		from = start + len(needle)
	}
	return 0, false
}

// asciiLower lower-cases ASCII letters only, so byte offsets stay aligned
// with the original string.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
