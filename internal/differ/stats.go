package differ

import (
	"strings"

	"github.com/aleister1102/docdiff/internal/models"
)

const (
	previewLength        = 50
	replacePreviewLength = 25
	replaceArrow         = " → "
)

// WordCount counts whitespace-separated words. Empty and whitespace-only text
// counts as zero words.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// CalculateStats aggregates a grouped script. Replace ops count once each
// regardless of how many words they span.
func CalculateStats(ops []models.DiffOp) models.Stats {
	var stats models.Stats
	for _, op := range ops {
		switch op.Kind {
		case models.OpEqual:
			stats.Unchanged += WordCount(op.LeftPlain)
		case models.OpInsert:
			stats.Insertions += WordCount(op.RightPlain)
		case models.OpDelete:
			stats.Deletions += WordCount(op.LeftPlain)
		case models.OpReplace:
			stats.Replacements++
		}
	}

	changed := stats.Insertions + stats.Deletions
	if total := changed + stats.Unchanged; total > 0 {
		stats.ChangedPercent = float64(changed) / float64(total) * 100
	}
	return stats
}

// ExtractChangeItems lists every non-equal op in document order with a
// 1-based ID and a short preview. SourceOpIndex is the op's position in ops.
func ExtractChangeItems(ops []models.DiffOp) []models.ChangeItem {
	items := make([]models.ChangeItem, 0)
	for idx, op := range ops {
		var item models.ChangeItem
		switch op.Kind {
		case models.OpEqual:
			continue
		case models.OpInsert:
			item = models.ChangeItem{Kind: models.ChangeInserted, Preview: truncateRunes(strings.TrimSpace(op.RightPlain), previewLength)}
		case models.OpDelete:
			item = models.ChangeItem{Kind: models.ChangeDeleted, Preview: truncateRunes(strings.TrimSpace(op.LeftPlain), previewLength)}
		case models.OpReplace:
			item = models.ChangeItem{
				Kind: models.ChangeReplaced,
				Preview: truncateRunes(strings.TrimSpace(op.LeftPlain), replacePreviewLength) +
					replaceArrow +
					truncateRunes(strings.TrimSpace(op.RightPlain), replacePreviewLength),
			}
		}
		item.ID = len(items) + 1
		item.SourceOpIndex = idx
		items = append(items, item)
	}
	return items
}

// truncateRunes returns the first n runes of s.
func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
