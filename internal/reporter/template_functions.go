package reporter

import (
	"fmt"
	"html/template"
	"strings"
	"unicode"
)

// titleCase upper-cases the first letter of each word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// GetDiffTemplateFunctions returns functions for the diff report template
func GetDiffTemplateFunctions() template.FuncMap {
	return template.FuncMap{
		"title": titleCase,
		"percent": func(f float64) string {
			return fmt.Sprintf("%.1f%%", f)
		},
		"kindClass": func(kind string) string {
			return "op-" + strings.ToLower(kind)
		},
	}
}
