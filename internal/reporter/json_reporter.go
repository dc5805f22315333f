package reporter

import (
	"encoding/json"
	"time"

	"github.com/aleister1102/docdiff/internal/common"
	"github.com/aleister1102/docdiff/internal/models"
)

// jsonReport is the on-disk JSON layout: metadata plus the full result.
type jsonReport struct {
	Left         string                   `json:"left"`
	Right        string                   `json:"right"`
	GeneratedAt  time.Time                `json:"generated_at"`
	ComparisonID int64                    `json:"comparison_id,omitempty"`
	Result       *models.ComparisonResult `json:"result"`
}

// RenderJSON encodes result as indented JSON with kinds and modes by name.
func RenderJSON(result *models.ComparisonResult, meta models.ReportMeta) ([]byte, error) {
	data, err := json.MarshalIndent(jsonReport{
		Left:         meta.LeftName,
		Right:        meta.RightName,
		GeneratedAt:  meta.GeneratedAt.UTC(),
		ComparisonID: meta.ComparisonID,
		Result:       result,
	}, "", "  ")
	if err != nil {
		return nil, common.WrapError(err, "failed to marshal JSON report")
	}
	return append(data, '\n'), nil
}
