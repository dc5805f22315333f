package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name            string
		originalError   error
		message         string
		expectedMessage string
	}{
		{
			name:            "wrap simple error",
			originalError:   errors.New("original error"),
			message:         "wrapper message",
			expectedMessage: "wrapper message: original error",
		},
		{
			name:            "empty wrapper message",
			originalError:   errors.New("original error"),
			message:         "",
			expectedMessage: ": original error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrappedError := WrapError(tt.originalError, tt.message)
			require.Error(t, wrappedError)
			assert.Equal(t, tt.expectedMessage, wrappedError.Error())
			assert.ErrorIs(t, wrappedError, tt.originalError)
		})
	}

	assert.NoError(t, WrapError(nil, "ignored"))
	assert.NoError(t, WrapErrorf(nil, "ignored %d", 1))
}

func TestWrapErrorf(t *testing.T) {
	err := WrapErrorf(ErrNotFound, "lookup %s #%d", "doc", 3)
	assert.Equal(t, "lookup doc #3: not found", err.Error())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestValidationErrorKinds(t *testing.T) {
	invalid := NewValidationError("mode", "xml", "unknown mode")
	assert.Equal(t, "validation failed for field 'mode': unknown mode (value: xml)", invalid.Error())
	assert.ErrorIs(t, invalid, ErrInvalidInput)
	assert.NotErrorIs(t, invalid, ErrCapacityExceeded)

	capacity := NewCapacityError("left_tokens", 30000, "exceeds maximum")
	wrapped := WrapError(capacity, "compare")
	assert.ErrorIs(t, wrapped, ErrCapacityExceeded)
	assert.True(t, IsValidationError(wrapped))

	var ve *ValidationError
	require.True(t, errors.As(wrapped, &ve))
	assert.Equal(t, "left_tokens", ve.Field)

	assert.False(t, IsValidationError(errors.New("plain")))
}

func TestConfigurationError(t *testing.T) {
	tests := []struct {
		err      *ConfigurationError
		expected string
	}{
		{NewConfigurationError("storage", "sqlite_db_path", "required"), "configuration error in section 'storage', field 'sqlite_db_path': required"},
		{NewConfigurationError("storage", "", "bad"), "configuration error in section 'storage': bad"},
		{NewConfigurationError("", "", "bad"), "configuration error: bad"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.err.Error())
		assert.ErrorIs(t, tt.err, ErrInvalidConfiguration)
	}
}

func TestErrorCollector(t *testing.T) {
	var ec ErrorCollector
	assert.False(t, ec.HasErrors())
	assert.NoError(t, ec.Error())

	ec.Add(nil)
	ec.AddWithContext(nil, "ignored")
	assert.False(t, ec.HasErrors())

	ec.Add(ErrNotFound)
	require.True(t, ec.HasErrors())
	assert.Equal(t, ErrNotFound, ec.Error())

	ec.AddWithContext(errors.New("disk full"), "write report")
	combined := ec.Error()
	assert.Equal(t, "multiple errors occurred: [not found; write report: disk full]", combined.Error())
}

func TestCombineErrors(t *testing.T) {
	assert.NoError(t, CombineErrors(nil))
	assert.NoError(t, CombineErrors([]error{nil, nil}))
	single := errors.New("only")
	assert.Equal(t, single, CombineErrors([]error{nil, single}))
}
