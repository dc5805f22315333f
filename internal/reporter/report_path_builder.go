package reporter

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// sanitizeNamePart reduces a source path to a short file-name-safe label.
func sanitizeNamePart(name string) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	base = strings.Trim(unsafeNameChars.ReplaceAllString(base, "_"), "_.")
	if base == "" {
		return "doc"
	}
	if len(base) > maxNamePartLength {
		base = base[:maxNamePartLength]
	}
	return base
}

// buildReportPath returns <dir>/<left>_vs_<right>_<timestamp>.<ext>.
func buildReportPath(outputDir, leftName, rightName string, at time.Time, ext string) string {
	filename := fmt.Sprintf("%s_vs_%s_%s.%s",
		sanitizeNamePart(leftName), sanitizeNamePart(rightName), at.Format(reportTimestampLayout), ext)
	return filepath.Join(outputDir, filename)
}
