package models

import (
	"fmt"
	"strings"
)

// Mode selects how inputs are split into comparable units.
type Mode int

const (
	// ModeWord compares words, punctuation and whitespace runs.
	ModeWord Mode = iota
	// ModeHTMLBlock compares block-level HTML elements by their text content.
	ModeHTMLBlock
	// ModeMarkdownBlock compares Markdown paragraphs by their text content.
	ModeMarkdownBlock
)

// String returns the canonical mode name.
func (m Mode) String() string {
	switch m {
	case ModeWord:
		return "word"
	case ModeHTMLBlock:
		return "htmlBlock"
	case ModeMarkdownBlock:
		return "markdownBlock"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// MarshalText encodes the mode by name.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes a mode name.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMode converts a mode name into a Mode. Matching is case-insensitive and
// accepts the short aliases "html" and "markdown"/"md".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "word", "text":
		return ModeWord, nil
	case "htmlblock", "html":
		return ModeHTMLBlock, nil
	case "markdownblock", "markdown", "md":
		return ModeMarkdownBlock, nil
	default:
		return ModeWord, fmt.Errorf("unknown comparison mode %q", s)
	}
}

// ValidModeNames lists the accepted mode names, used by config validation.
func ValidModeNames() []string {
	return []string{"word", "text", "htmlBlock", "html", "markdownBlock", "markdown", "md"}
}
