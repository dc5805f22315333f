package models

import "fmt"

// OpValidationError reports a grouped op that breaks its kind invariants.
type OpValidationError struct {
	Index   int
	Message string
}

// Error returns the error message for OpValidationError.
func (e *OpValidationError) Error() string {
	return fmt.Sprintf("invalid op at index %d: %s", e.Index, e.Message)
}

// ValidateScript checks every op of a grouped script, including that Index
// matches the op's position.
func ValidateScript(ops []DiffOp) error {
	for i, op := range ops {
		if op.Index != i {
			return &OpValidationError{Index: i, Message: fmt.Sprintf("index field is %d", op.Index)}
		}
		if err := op.Validate(); err != nil {
			return &OpValidationError{Index: i, Message: err.Error()}
		}
	}
	return nil
}
