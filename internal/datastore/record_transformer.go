package datastore

import (
	"time"

	"github.com/aleister1102/docdiff/internal/models"
	"github.com/rs/zerolog"
)

// RecordTransformer turns change items into parquet rows.
type RecordTransformer struct {
	logger          zerolog.Logger
	includeSideText bool
}

// NewRecordTransformer creates a new RecordTransformer
func NewRecordTransformer(logger zerolog.Logger, includeSideText bool) *RecordTransformer {
	return &RecordTransformer{
		logger:          logger.With().Str("component", "RecordTransformer").Logger(),
		includeSideText: includeSideText,
	}
}

// TransformChangeItem converts one change item, resolving its source op in result.
func (rt *RecordTransformer) TransformChangeItem(comparisonID string, item models.ChangeItem, result *models.ComparisonResult, exportTime time.Time) models.ParquetChangeItem {
	row := models.ParquetChangeItem{
		ComparisonID:    comparisonID,
		ChangeID:        int32(item.ID),
		Kind:            item.Kind.String(),
		Preview:         item.Preview,
		SourceOpIndex:   int32(item.SourceOpIndex),
		Mode:            result.Mode.String(),
		ExportTimestamp: models.TimeToUnixMilli(exportTime),
	}

	if !rt.includeSideText {
		return row
	}

	op, ok := result.OpAt(item)
	if !ok {
		rt.logger.Warn().Int("change_id", item.ID).Int("source_op_index", item.SourceOpIndex).Msg("Change item points outside the op script")
		return row
	}
	row.LeftText = StringPtrOrNil(op.LeftText)
	row.RightText = StringPtrOrNil(op.RightText)
	return row
}

// TransformResult converts every change item of result.
func (rt *RecordTransformer) TransformResult(comparisonID string, result *models.ComparisonResult, exportTime time.Time) []models.ParquetChangeItem {
	rows := make([]models.ParquetChangeItem, 0, len(result.ChangeItems))
	for _, item := range result.ChangeItems {
		rows = append(rows, rt.TransformChangeItem(comparisonID, item, result, exportTime))
	}
	return rows
}
