package differ

import (
	"context"
	"errors"
	"testing"

	"github.com/aleister1102/docdiff/internal/common"
	"github.com/aleister1102/docdiff/internal/config"
	"github.com/aleister1102/docdiff/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plentyOfMemory() (uint64, error) { return 1 << 40, nil }

func newTestDiffer(t *testing.T, cfg config.CompareConfig) *ContentDiffer {
	t.Helper()
	cd, err := NewContentDifferBuilder().
		WithLogger(zerolog.Nop()).
		WithCompareConfig(cfg).
		WithMemoryProbe(plentyOfMemory).
		Build()
	require.NoError(t, err)
	return cd
}

func TestContentDiffer_Compare(t *testing.T) {
	cd := newTestDiffer(t, config.NewDefaultCompareConfig())

	result, err := cd.Compare(context.Background(), []byte("apple banana cherry"), []byte("apple grape cherry"), models.ModeWord)

	require.NoError(t, err)
	assert.Equal(t, models.ModeWord, result.Mode)
	assert.Equal(t, 1, result.Stats.Replacements)
	assert.Equal(t, Compare("apple banana cherry", "apple grape cherry", models.ModeWord), result)
}

func TestContentDiffer_CapacityErrors(t *testing.T) {
	tests := []struct {
		name  string
		cfg   config.CompareConfig
		probe func() (uint64, error)
		left  string
		right string
		field string
	}{
		{
			name:  "left token ceiling",
			cfg:   config.CompareConfig{MaxTokens: 3},
			left:  "a b c d",
			right: "a",
			field: "left_tokens",
		},
		{
			name:  "right token ceiling",
			cfg:   config.CompareConfig{MaxTokens: 3},
			left:  "a",
			right: "a b c d",
			field: "right_tokens",
		},
		{
			name:  "table cell ceiling",
			cfg:   config.CompareConfig{MaxTableCells: 10},
			left:  "a b",
			right: "c d",
			field: "table_cells",
		},
		{
			name:  "memory headroom",
			cfg:   config.CompareConfig{MemoryHeadroomPercent: 0.5},
			probe: func() (uint64, error) { return 10, nil },
			left:  "a b",
			right: "c d",
			field: "table_bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe := tt.probe
			if probe == nil {
				probe = plentyOfMemory
			}
			cd, err := NewContentDifferBuilder().WithCompareConfig(tt.cfg).WithMemoryProbe(probe).Build()
			require.NoError(t, err)

			result, err := cd.Compare(context.Background(), []byte(tt.left), []byte(tt.right), models.ModeWord)

			assert.Nil(t, result)
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrCapacityExceeded))
			var ve *common.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestContentDiffer_WarnTokensDoesNotFail(t *testing.T) {
	cd := newTestDiffer(t, config.CompareConfig{WarnTokens: 1})

	_, err := cd.Compare(context.Background(), []byte("a b c"), []byte("a b"), models.ModeWord)
	assert.NoError(t, err)
}

func TestContentDiffer_CancelledContext(t *testing.T) {
	cd := newTestDiffer(t, config.NewDefaultCompareConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := cd.Compare(ctx, []byte("a"), []byte("b"), models.ModeWord)

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestContentDiffer_InvalidUTF8IsSanitized(t *testing.T) {
	cd := newTestDiffer(t, config.NewDefaultCompareConfig())

	result, err := cd.Compare(context.Background(), []byte{'o', 'k', ' ', 0xff}, []byte("ok"), models.ModeWord)

	require.NoError(t, err)
	require.NotEmpty(t, result.Ops)
	assert.Equal(t, "ok", result.Ops[0].LeftText)
	assert.False(t, result.IsIdentical())
}

func TestContentDifferBuilder_RejectsNegativeLimits(t *testing.T) {
	_, err := NewContentDifferBuilder().WithCompareConfig(config.CompareConfig{MaxTokens: -1}).Build()

	assert.True(t, common.IsValidationError(err))
}

func TestInputValidator_ValidateEncoding(t *testing.T) {
	iv := NewInputValidator()

	assert.NoError(t, iv.ValidateEncoding([]byte("héllo"), "left"))
	assert.Error(t, iv.ValidateEncoding([]byte{0xc3}, "left"))
}
