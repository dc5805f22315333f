package differ

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aleister1102/docdiff/internal/common"
	"github.com/aleister1102/docdiff/internal/config"
	"github.com/aleister1102/docdiff/internal/models"
	"github.com/aleister1102/docdiff/internal/rslimiter"
	"github.com/rs/zerolog"
)

// ContentDiffer runs guarded comparisons: it bounds input size and memory
// before handing the documents to the pure engine.
type ContentDiffer struct {
	logger         zerolog.Logger
	config         config.CompareConfig
	tokenLimits    *TokenLimitValidator
	inputValidator *InputValidator
	limiter        *rslimiter.ResourceLimiter
}

// ContentDifferBuilder provides a fluent interface for creating ContentDiffer
type ContentDifferBuilder struct {
	logger        zerolog.Logger
	compareConfig config.CompareConfig
	memoryProbe   rslimiter.MemoryProbe
}

// NewContentDifferBuilder creates a new builder
func NewContentDifferBuilder() *ContentDifferBuilder {
	return &ContentDifferBuilder{
		logger:        zerolog.Nop(),
		compareConfig: config.NewDefaultCompareConfig(),
	}
}

// WithLogger sets the logger
func (b *ContentDifferBuilder) WithLogger(logger zerolog.Logger) *ContentDifferBuilder {
	b.logger = logger
	return b
}

// WithCompareConfig sets the limits applied to each comparison
func (b *ContentDifferBuilder) WithCompareConfig(cfg config.CompareConfig) *ContentDifferBuilder {
	b.compareConfig = cfg
	return b
}

// WithMemoryProbe replaces the system memory probe.
func (b *ContentDifferBuilder) WithMemoryProbe(probe rslimiter.MemoryProbe) *ContentDifferBuilder {
	b.memoryProbe = probe
	return b
}

// Build creates a new ContentDiffer instance
func (b *ContentDifferBuilder) Build() (*ContentDiffer, error) {
	cfg := b.compareConfig
	if cfg.MaxTokens < 0 || cfg.WarnTokens < 0 || cfg.MaxTableCells < 0 {
		return nil, common.NewValidationError("compare_config", cfg, "limits cannot be negative")
	}

	limiterConfig := rslimiter.DefaultResourceLimiterConfig()
	if cfg.MemoryHeadroomPercent > 0 {
		limiterConfig.MemoryHeadroomPercent = cfg.MemoryHeadroomPercent
	}

	return &ContentDiffer{
		logger:         b.logger.With().Str("component", "ContentDiffer").Logger(),
		config:         cfg,
		tokenLimits:    NewTokenLimitValidator(cfg.MaxTokens, cfg.MaxTableCells),
		inputValidator: NewInputValidator(),
		limiter:        rslimiter.NewResourceLimiter(limiterConfig, b.memoryProbe, b.logger),
	}, nil
}

// NewContentDiffer creates a ContentDiffer with the given limits.
func NewContentDiffer(logger zerolog.Logger, cfg config.CompareConfig) (*ContentDiffer, error) {
	return NewContentDifferBuilder().
		WithLogger(logger).
		WithCompareConfig(cfg).
		Build()
}

// Compare diffs two documents. Invalid UTF-8 is replaced with U+FFFD and
// logged. Inputs over the configured limits, or whose alignment table would
// not fit in memory, return a *common.ValidationError matching
// common.ErrCapacityExceeded.
func (cd *ContentDiffer) Compare(ctx context.Context, left, right []byte, mode models.Mode) (*models.ComparisonResult, error) {
	startTime := time.Now()

	leftText := cd.sanitize(left, "left_content")
	rightText := cd.sanitize(right, "right_content")

	tokenizer := TokenizerFor(mode)
	leftSeq := tokenizer.Tokenize(leftText)
	rightSeq := tokenizer.Tokenize(rightText)

	if err := cd.checkLimits(leftSeq, rightSeq); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, common.WrapError(err, "comparison cancelled")
	}

	result := CompareSequences(leftSeq, rightSeq, mode)

	cd.logger.Debug().
		Str("mode", mode.String()).
		Int("left_units", leftSeq.Len()).
		Int("right_units", rightSeq.Len()).
		Int("ops", len(result.Ops)).
		Int("insertions", result.Stats.Insertions).
		Int("deletions", result.Stats.Deletions).
		Int("replacements", result.Stats.Replacements).
		Dur("duration", time.Since(startTime)).
		Msg("Comparison completed")

	return result, nil
}

func (cd *ContentDiffer) sanitize(content []byte, fieldName string) string {
	if err := cd.inputValidator.ValidateEncoding(content, fieldName); err != nil {
		cd.logger.Warn().Err(err).Msg("Replacing invalid UTF-8 sequences")
		return strings.ToValidUTF8(string(content), "\uFFFD")
	}
	return string(content)
}

func (cd *ContentDiffer) checkLimits(left, right Sequence) error {
	if err := cd.tokenLimits.ValidateSequences(left, right); err != nil {
		return err
	}

	if warn := cd.config.WarnTokens; warn > 0 && (left.Len() > warn || right.Len() > warn) {
		cd.logger.Warn().
			Int("left_units", left.Len()).
			Int("right_units", right.Len()).
			Int("warn_tokens", warn).
			Msg("Large comparison, alignment may be slow")
	}

	bytes := TableBytes(left.Len(), right.Len())
	if err := cd.limiter.CheckAllocation(bytes); err != nil {
		var limitErr *rslimiter.LimitError
		if errors.As(err, &limitErr) {
			return common.NewCapacityError("table_bytes", limitErr.RequestedBytes, limitErr.Error())
		}
		return err
	}
	return nil
}
