package models

// ParquetChangeItem defines the schema for exporting change items using parquet-go/parquet-go.
// Optional fields use pointers and the ',optional' tag.
type ParquetChangeItem struct {
	ComparisonID    string  `parquet:"comparison_id"`
	ChangeID        int32   `parquet:"change_id"`
	Kind            string  `parquet:"kind"`
	Preview         string  `parquet:"preview"`
	SourceOpIndex   int32   `parquet:"source_op_index"`
	LeftText        *string `parquet:"left_text,optional"`
	RightText       *string `parquet:"right_text,optional"`
	Mode            string  `parquet:"mode"`
	ExportTimestamp int64   `parquet:"export_timestamp"` // TIMESTAMP_MILLIS
}
