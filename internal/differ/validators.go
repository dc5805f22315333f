package differ

import (
	"fmt"
	"unicode/utf8"

	"github.com/aleister1102/docdiff/internal/common"
)

// TokenLimitValidator rejects tokenized inputs too large to align.
type TokenLimitValidator struct {
	maxTokens     int
	maxTableCells int64
}

// NewTokenLimitValidator creates a validator. A zero limit is disabled.
func NewTokenLimitValidator(maxTokens int, maxTableCells int64) *TokenLimitValidator {
	return &TokenLimitValidator{
		maxTokens:     maxTokens,
		maxTableCells: maxTableCells,
	}
}

// ValidateSequences checks each side against the token ceiling and the pair
// against the table-cell ceiling.
func (v *TokenLimitValidator) ValidateSequences(left, right Sequence) error {
	if err := v.validateSide(left.Len(), "left_tokens"); err != nil {
		return err
	}
	if err := v.validateSide(right.Len(), "right_tokens"); err != nil {
		return err
	}

	if v.maxTableCells > 0 {
		if cells := TableCells(left.Len(), right.Len()); cells > v.maxTableCells {
			return common.NewCapacityError("table_cells", cells,
				fmt.Sprintf("alignment table too large (%d cells > %d cells limit)", cells, v.maxTableCells))
		}
	}
	return nil
}

func (v *TokenLimitValidator) validateSide(count int, fieldName string) error {
	if v.maxTokens > 0 && count > v.maxTokens {
		return common.NewCapacityError(fieldName, count,
			fmt.Sprintf("%s too many (%d > %d limit)", fieldName, count, v.maxTokens))
	}
	return nil
}

// InputValidator checks raw inputs before tokenizing.
type InputValidator struct{}

// NewInputValidator creates a new input validator
func NewInputValidator() *InputValidator {
	return &InputValidator{}
}

// ValidateEncoding returns a validation error when content is not UTF-8.
func (iv *InputValidator) ValidateEncoding(content []byte, fieldName string) error {
	if !utf8.Valid(content) {
		return common.NewValidationError(fieldName, len(content), "content is not valid UTF-8")
	}
	return nil
}
