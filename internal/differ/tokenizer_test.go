package differ

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "collapses runs", input: "a  \t\n b", want: "a b"},
		{name: "non-breaking space", input: "a\u00a0\u00a0b", want: "a b"},
		{name: "zero-width space", input: "a\u200bb", want: "a b"},
		{name: "keeps edges", input: "  a ", want: " a "},
		{name: "compatibility forms", input: "\ufb01ne", want: "fine"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeText(tt.input))
		})
	}
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{input: "", want: nil},
		{input: "Hello, world!", want: []string{"Hello", ",", " ", "world", "!"}},
		{input: "well—done", want: []string{"well", "—", "done"}},
		{input: " lead trail ", want: []string{" ", "lead", " ", "trail", " "}},
		{input: "(a)", want: []string{"(", "a", ")"}},
		{input: "don't", want: []string{"don", "'", "t"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := SplitWords(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, strings.Join(got, ""))
		})
	}
}

func TestWordTokenizer_KeysEqualText(t *testing.T) {
	seq := NewWordTokenizer().Tokenize("The  cat sat.")

	assert.Equal(t, []string{"The", " ", "cat", " ", "sat", "."}, seq.Keys())
	for _, u := range seq.Units {
		assert.Equal(t, u.Text, u.Key)
	}
}
