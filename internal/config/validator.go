package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aleister1102/docdiff/internal/common"
	"github.com/aleister1102/docdiff/internal/logger"
	"github.com/aleister1102/docdiff/internal/models"
	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	validate := validator.New()

	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := logger.ParseLogLevel(fl.Field().String())
		return err == nil
	})

	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		_, err := logger.ParseLogFormat(fl.Field().String())
		return err == nil
	})

	_ = validate.RegisterValidation("comparemode", func(fl validator.FieldLevel) bool {
		_, err := models.ParseMode(fl.Field().String())
		return err == nil
	})

	_ = validate.RegisterValidation("reportformat", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case ReportFormatHTML, ReportFormatJSON, ReportFormatText:
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("compression", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "zstd", "gzip", "snappy", "none":
			return true
		default:
			return false
		}
	})

	return validate
}

// ValidateConfig performs validation on the GlobalConfig structure.
func ValidateConfig(cfg *GlobalConfig) error {
	if cfg == nil {
		return common.NewConfigurationError("", "", "configuration is nil")
	}

	err := newValidator().Struct(cfg)
	if err == nil {
		return crossFieldChecks(cfg)
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return common.WrapError(err, "configuration validation error")
	}

	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		msg := fmt.Sprintf("Validation failed for '%s': rule '%s'", e.Namespace(), e.Tag())
		if e.Param() != "" {
			msg += fmt.Sprintf(" (expected: %s)", e.Param())
		}
		if e.Value() != nil && e.Value() != "" {
			msg += fmt.Sprintf(", actual: '%v'", e.Value())
		}
		messages = append(messages, msg)
	}
	return common.NewConfigurationError("", "", strings.Join(messages, "; "))
}

func crossFieldChecks(cfg *GlobalConfig) error {
	cc := cfg.CompareConfig
	if cc.WarnTokens > 0 && cc.MaxTokens > 0 && cc.WarnTokens > cc.MaxTokens {
		return common.NewConfigurationError("compare_config", "warn_tokens",
			fmt.Sprintf("warn_tokens (%d) must not exceed max_tokens (%d)", cc.WarnTokens, cc.MaxTokens))
	}
	return nil
}
