package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aleister1102/docdiff/internal/config"
	"github.com/aleister1102/docdiff/internal/logger"
	"github.com/aleister1102/docdiff/internal/models"
	"github.com/aleister1102/docdiff/internal/orchestrator"
	"github.com/aleister1102/docdiff/internal/reporter"
	"github.com/aleister1102/docdiff/internal/watcher"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

const historyTimeLayout = "2006-01-02 15:04:05"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags, err := ParseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "[FATAL] %v\n", err)
		return 1
	}

	bootLogger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).With().Timestamp().Logger()
	gCfg, err := config.LoadGlobalConfig(flags.ConfigFile, bootLogger)
	if err != nil {
		bootLogger.Error().Err(err).Str("path", flags.ConfigFile).Msg("Could not load configuration")
		return 1
	}
	applyFlagOverrides(gCfg, flags)

	if err := config.ValidateConfig(gCfg); err != nil {
		bootLogger.Error().Err(err).Msg("Configuration validation failed")
		return 1
	}

	appLogger, err := logger.NewLoggerBuilder().
		WithConfig(gCfg.LogConfig).
		WithConsoleOutput(stderr).
		Build()
	if err != nil {
		bootLogger.Error().Err(err).Msg("Could not initialize logger")
		return 1
	}
	zLogger := *appLogger.GetZerolog()

	orch, closeStores, err := orchestrator.NewFromConfig(gCfg, zLogger)
	if err != nil {
		zLogger.Error().Err(err).Msg("Failed to initialize comparison workflow")
		return 1
	}
	defer func() {
		if err := closeStores(); err != nil {
			zLogger.Error().Err(err).Msg("Failed to close history database")
		}
	}()

	if flags.ListHistory > 0 {
		if err := printHistory(stdout, orch.History(), flags.ListHistory); err != nil {
			zLogger.Error().Err(err).Msg("Failed to list comparison history")
			return 1
		}
		return 0
	}

	mode, err := resolveMode(flags.Mode, gCfg.CompareConfig.DefaultMode)
	if err != nil {
		zLogger.Error().Err(err).Msg("Invalid comparison mode")
		return 1
	}
	req := orchestrator.ComparisonRequest{
		LeftPath:  flags.LeftPath,
		RightPath: flags.RightPath,
		Mode:      mode,
	}

	runErr := runComparison(ctx, orch, req, stdout, zLogger)
	if !flags.Watch {
		if runErr != nil {
			return 1
		}
		return 0
	}

	if err := watchAndCompare(ctx, orch, req, stdout, zLogger); err != nil {
		zLogger.Error().Err(err).Msg("Watch mode failed")
		return 1
	}
	zLogger.Info().Msg("Watch mode stopped")
	return 0
}

// applyFlagOverrides lets command line flags take precedence over the file.
func applyFlagOverrides(cfg *config.GlobalConfig, flags AppFlags) {
	if flags.OutputDir != "" {
		cfg.ReporterConfig.OutputDir = flags.OutputDir
	}
	if len(flags.Formats) > 0 {
		cfg.ReporterConfig.Formats = flags.Formats
	}
	if flags.History || flags.ListHistory > 0 {
		cfg.StorageConfig.HistoryEnabled = true
	}
	if flags.Export {
		cfg.StorageConfig.ExportEnabled = true
	}
	if flags.LogLevel != "" {
		cfg.LogConfig.LogLevel = flags.LogLevel
	}
}

func resolveMode(flagMode, configMode string) (models.Mode, error) {
	if flagMode != "" {
		return models.ParseMode(flagMode)
	}
	if configMode == "" {
		return models.ModeWord, nil
	}
	return models.ParseMode(configMode)
}

// runComparison runs one comparison and prints its summary. Partial failures
// still print the summary before being reported.
func runComparison(ctx context.Context, orch *orchestrator.ComparisonOrchestrator, req orchestrator.ComparisonRequest, stdout io.Writer, log zerolog.Logger) error {
	outcome, err := orch.ExecuteComparison(ctx, req)
	if outcome != nil {
		if writeErr := reporter.WriteTextSummary(stdout, outcome.Result, outcome.Meta); writeErr != nil {
			log.Error().Err(writeErr).Msg("Failed to print summary")
		}
		for _, path := range outcome.ReportPaths {
			fmt.Fprintf(stdout, "Report: %s\n", path)
		}
		if outcome.ExportPath != "" {
			fmt.Fprintf(stdout, "Change index: %s\n", outcome.ExportPath)
		}
	}
	if err != nil {
		log.Error().Err(err).Str("left", req.LeftPath).Str("right", req.RightPath).Msg("Comparison failed")
	}
	return err
}

func watchAndCompare(ctx context.Context, orch *orchestrator.ComparisonOrchestrator, req orchestrator.ComparisonRequest, stdout io.Writer, log zerolog.Logger) error {
	opts := watcher.DefaultOptions()
	opts.Logger = log
	fw, err := watcher.NewFileWatcher([]string{req.LeftPath, req.RightPath}, opts)
	if err != nil {
		return err
	}
	defer fw.Close()

	log.Info().Str("left", req.LeftPath).Str("right", req.RightPath).Msg("Watching documents for changes, press Ctrl+C to stop")
	return fw.Run(ctx, func(changed []string) {
		log.Info().Strs("changed", changed).Msg("Documents changed, comparing again")
		_ = runComparison(ctx, orch, req, stdout, log)
	})
}

func printHistory(w io.Writer, store models.HistoryStore, limit int) error {
	if store == nil {
		return fmt.Errorf("comparison history is disabled")
	}
	entries, err := store.ListRecent(limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "No comparisons recorded.")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(w, "#%d  %s  %s -> %s  [%s]  %d changes, %.1f%% changed, %s\n",
			e.ID,
			models.FormatTimeOptional(e.ComparedAt.Local(), historyTimeLayout),
			e.LeftPath, e.RightPath, e.Mode,
			e.ChangeCount, e.Stats.ChangedPercent,
			time.Duration(e.DurationMs)*time.Millisecond,
		)
	}
	return nil
}
