package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/aleister1102/docdiff/internal/models"
)

// WriteTextSummary writes the stats line and change index in plain text.
func WriteTextSummary(w io.Writer, result *models.ComparisonResult, meta models.ReportMeta) error {
	_, err := io.WriteString(w, FormatTextSummary(result, meta))
	return err
}

// FormatTextSummary renders the text summary used on stdout and in .txt reports.
func FormatTextSummary(result *models.ComparisonResult, meta models.ReportMeta) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Comparing %s -> %s (mode: %s)\n", displayName(meta.LeftName, "left"), displayName(meta.RightName, "right"), result.Mode)
	b.WriteString(NewDiffUtils(nil).CreateDiffSummary(result))
	b.WriteByte('\n')

	if len(result.ChangeItems) == 0 {
		return b.String()
	}

	b.WriteString("Changes:\n")
	width := len(fmt.Sprint(len(result.ChangeItems)))
	for _, item := range result.ChangeItems {
		fmt.Fprintf(&b, "  #%-*d %s %s\n", width, item.ID, kindMarker(item.Kind), item.Preview)
	}
	return b.String()
}

func kindMarker(kind models.ChangeKind) string {
	switch kind {
	case models.ChangeInserted:
		return "[+]"
	case models.ChangeDeleted:
		return "[-]"
	default:
		return "[~]"
	}
}

func displayName(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
