package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aleister1102/docdiff/internal/common"
	"github.com/aleister1102/docdiff/internal/config"
	"github.com/aleister1102/docdiff/internal/datastore"
	"github.com/aleister1102/docdiff/internal/differ"
	"github.com/aleister1102/docdiff/internal/models"
	"github.com/aleister1102/docdiff/internal/reporter"
	"github.com/rs/zerolog"
)

// ComparisonRequest names the two documents of one comparison run.
type ComparisonRequest struct {
	LeftPath  string
	RightPath string
	Mode      models.Mode
}

// ComparisonOutcome collects everything a run produced.
type ComparisonOutcome struct {
	Result      *models.ComparisonResult
	Meta        models.ReportMeta
	ReportPaths []string
	ExportPath  string
	HistoryID   int64
	Duration    time.Duration
}

// ComparisonOrchestrator runs the read -> compare -> report -> store workflow.
type ComparisonOrchestrator struct {
	globalConfig *config.GlobalConfig
	logger       zerolog.Logger
	contentDiff  *differ.ContentDiffer
	reporter     *reporter.Reporter
	history      models.HistoryStore
	exporter     *datastore.ChangeIndexWriter
	fileManager  *common.FileManager
	hasher       *datastore.ContentHasher
}

// NewComparisonOrchestrator creates a new ComparisonOrchestrator. history and
// exporter may be nil when the matching storage feature is disabled.
func NewComparisonOrchestrator(
	cfg *config.GlobalConfig,
	logger zerolog.Logger,
	contentDiff *differ.ContentDiffer,
	rep *reporter.Reporter,
	history models.HistoryStore,
	exporter *datastore.ChangeIndexWriter,
) *ComparisonOrchestrator {
	return &ComparisonOrchestrator{
		globalConfig: cfg,
		logger:       logger.With().Str("component", "ComparisonOrchestrator").Logger(),
		contentDiff:  contentDiff,
		reporter:     rep,
		history:      history,
		exporter:     exporter,
		fileManager:  common.NewFileManager(logger),
		hasher:       datastore.NewContentHasher(0),
	}
}

// NewFromConfig wires every component the configuration enables. The
// returned close function releases the history database.
func NewFromConfig(cfg *config.GlobalConfig, logger zerolog.Logger) (*ComparisonOrchestrator, func() error, error) {
	contentDiff, err := differ.NewContentDiffer(logger, cfg.CompareConfig)
	if err != nil {
		return nil, nil, common.WrapError(err, "failed to initialize content differ")
	}

	rep, err := reporter.NewReporter(cfg.ReporterConfig, logger)
	if err != nil {
		return nil, nil, common.WrapError(err, "failed to initialize reporter")
	}

	closeFn := func() error { return nil }
	var history models.HistoryStore
	if cfg.StorageConfig.HistoryEnabled {
		db, err := datastore.NewHistoryDB(cfg.StorageConfig.SQLiteDBPath, logger)
		if err != nil {
			return nil, nil, common.WrapError(err, "failed to open comparison history")
		}
		history = db
		closeFn = db.Close
	}

	var exporter *datastore.ChangeIndexWriter
	if cfg.StorageConfig.ExportEnabled {
		exporter, err = datastore.NewChangeIndexWriter(&cfg.StorageConfig, logger)
		if err != nil {
			_ = closeFn()
			return nil, nil, common.WrapError(err, "failed to initialize change index writer")
		}
	}

	return NewComparisonOrchestrator(cfg, logger, contentDiff, rep, history, exporter), closeFn, nil
}

// History exposes the configured history store, nil when disabled.
func (o *ComparisonOrchestrator) History() models.HistoryStore {
	return o.history
}

// ExecuteComparison reads both documents and runs the full workflow. Reading
// or comparing failures abort the run. Report, history and export failures are
// collected and returned alongside the outcome so the summary is never lost.
func (o *ComparisonOrchestrator) ExecuteComparison(ctx context.Context, req ComparisonRequest) (*ComparisonOutcome, error) {
	startTime := time.Now()

	left, err := o.readDocument(ctx, req.LeftPath)
	if err != nil {
		return nil, err
	}
	right, err := o.readDocument(ctx, req.RightPath)
	if err != nil {
		return nil, err
	}

	result, err := o.contentDiff.Compare(ctx, left, right, req.Mode)
	if err != nil {
		return nil, err
	}

	outcome := &ComparisonOutcome{
		Result:   result,
		Duration: time.Since(startTime),
		Meta: models.ReportMeta{
			LeftName:    req.LeftPath,
			RightName:   req.RightPath,
			Title:       o.globalConfig.ReporterConfig.Title,
			GeneratedAt: time.Now(),
		},
	}

	var collector common.ErrorCollector

	if o.history != nil {
		entry := models.NewHistoryEntry(
			absOrSelf(req.LeftPath), absOrSelf(req.RightPath),
			o.hasher.Hash(left), o.hasher.Hash(right),
			result, outcome.Duration,
		)
		id, err := o.history.RecordComparison(entry)
		collector.AddWithContext(err, "failed to record comparison history")
		outcome.Meta.ComparisonID = id
	}

	paths, err := o.reporter.Generate(result, outcome.Meta)
	outcome.ReportPaths = paths
	collector.AddWithContext(err, "failed to generate reports")

	if o.exporter != nil {
		written, err := o.exporter.Write(ctx, datastore.WriteRequest{
			ComparisonID: o.exportName(outcome.Meta),
			Result:       result,
			ExportTime:   outcome.Meta.GeneratedAt,
		})
		if err == nil {
			outcome.ExportPath = written.FilePath
		}
		collector.AddWithContext(err, "failed to export change index")
	}

	o.logger.Info().
		Str("left", req.LeftPath).
		Str("right", req.RightPath).
		Str("mode", req.Mode.String()).
		Int("changes", len(result.ChangeItems)).
		Float64("changed_percent", result.Stats.ChangedPercent).
		Dur("duration", outcome.Duration).
		Msg("Comparison workflow finished")

	return outcome, collector.Error()
}

func (o *ComparisonOrchestrator) readDocument(ctx context.Context, path string) ([]byte, error) {
	opts := common.DefaultFileReadOptions()
	opts.Context = ctx
	content, err := o.fileManager.ReadFile(path, opts)
	if err != nil {
		return nil, common.WrapError(err, "failed to read document")
	}
	return content, nil
}

// exportName prefers the history row id so exports join back to history.
func (o *ComparisonOrchestrator) exportName(meta models.ReportMeta) string {
	base := fmt.Sprintf("%s_vs_%s",
		trimExt(filepath.Base(meta.LeftName)), trimExt(filepath.Base(meta.RightName)))
	if meta.ComparisonID > 0 {
		return fmt.Sprintf("%s_%d", base, meta.ComparisonID)
	}
	return fmt.Sprintf("%s_%s", base, meta.GeneratedAt.Format("20060102-150405"))
}

func trimExt(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}

func absOrSelf(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
