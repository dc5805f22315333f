package datastore

import (
	"context"

	"github.com/aleister1102/docdiff/internal/common"
	"github.com/rs/zerolog"
)

// checkCancellationWithLog returns a wrapped ctx error when ctx is done.
func checkCancellationWithLog(ctx context.Context, logger zerolog.Logger, operation string) error {
	if err := ctx.Err(); err != nil {
		logger.Info().Err(err).Str("operation", operation).Msg("Context cancelled")
		return common.WrapError(err, operation+" cancelled")
	}
	return nil
}

// StringPtrOrNil converts string to pointer, or nil if string is empty
func StringPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
