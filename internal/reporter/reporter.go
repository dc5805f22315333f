package reporter

import (
	"strings"
	"time"

	"github.com/aleister1102/docdiff/internal/common"
	"github.com/aleister1102/docdiff/internal/config"
	"github.com/aleister1102/docdiff/internal/differ"
	"github.com/aleister1102/docdiff/internal/models"
	"github.com/rs/zerolog"
)

// Reporter writes a comparison in every configured format.
type Reporter struct {
	logger       zerolog.Logger
	config       config.ReporterConfig
	html         *HtmlDiffReporter
	fileManager  *common.FileManager
	directoryMgr *DirectoryManager
}

// NewReporter creates a reporter for cfg.
func NewReporter(cfg config.ReporterConfig, logger zerolog.Logger) (*Reporter, error) {
	if strings.TrimSpace(cfg.OutputDir) == "" {
		return nil, common.NewValidationError("output_dir", cfg.OutputDir, "output directory cannot be empty")
	}

	componentLogger := logger.With().Str("component", "Reporter").Logger()

	var inline *differ.InlineDiffer
	if cfg.EmbedInlineDiff {
		inline = differ.NewInlineDiffer(differ.DefaultDiffConfig())
	}
	html, err := NewHtmlDiffReporter(componentLogger, NewDiffUtils(inline))
	if err != nil {
		return nil, err
	}

	return &Reporter{
		logger:       componentLogger,
		config:       cfg,
		html:         html,
		fileManager:  common.NewFileManager(logger),
		directoryMgr: NewDirectoryManager(componentLogger),
	}, nil
}

// Generate writes result in each configured format into OutputDir and
// returns the written paths in format order.
func (r *Reporter) Generate(result *models.ComparisonResult, meta models.ReportMeta) ([]string, error) {
	if result == nil {
		return nil, common.NewValidationError("result", nil, "comparison result cannot be nil")
	}
	if meta.GeneratedAt.IsZero() {
		meta.GeneratedAt = time.Now()
	}
	if meta.Title == "" {
		meta.Title = r.config.Title
	}

	if err := r.directoryMgr.EnsureOutputDirectories(r.config.OutputDir); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(r.config.Formats))
	for _, format := range r.config.Formats {
		format = strings.ToLower(format)
		data, ext, err := r.render(format, result, meta)
		if err != nil {
			return paths, err
		}

		path := buildReportPath(r.config.OutputDir, meta.LeftName, meta.RightName, meta.GeneratedAt, ext)
		opts := common.DefaultFileWriteOptions()
		opts.Permissions = FilePermissions
		if err := r.fileManager.WriteFile(path, data, opts); err != nil {
			return paths, common.WrapErrorf(err, "failed to write %s report", format)
		}

		r.logger.Info().Str("format", format).Str("path", path).Int("changes", len(result.ChangeItems)).Msg("Report written")
		paths = append(paths, path)
	}
	return paths, nil
}

func (r *Reporter) render(format string, result *models.ComparisonResult, meta models.ReportMeta) ([]byte, string, error) {
	switch format {
	case config.ReportFormatHTML:
		data, err := r.html.Render(result, meta)
		return data, "html", err
	case config.ReportFormatJSON:
		data, err := RenderJSON(result, meta)
		return data, "json", err
	case config.ReportFormatText:
		return []byte(FormatTextSummary(result, meta)), "txt", nil
	default:
		return nil, "", common.NewValidationError("format", format, "unsupported report format")
	}
}
