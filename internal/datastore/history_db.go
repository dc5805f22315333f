package datastore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aleister1102/docdiff/internal/common"
	"github.com/aleister1102/docdiff/internal/models"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// defaultListLimit caps ListRecent when the caller passes a non-positive limit.
const defaultListLimit = 20

// HistoryDB wraps the SQL database connection holding comparison history.
type HistoryDB struct {
	db     *sql.DB
	logger zerolog.Logger
}

var _ models.HistoryStore = (*HistoryDB)(nil)

// NewHistoryDB opens the sqlite database at dataSourceName and ensures the schema is set up.
func NewHistoryDB(dataSourceName string, logger zerolog.Logger) (*HistoryDB, error) {
	logger = logger.With().Str("component", "HistoryDB").Logger()
	logger.Debug().Str("db_path", dataSourceName).Msg("Initializing history database connection")

	dbDir := filepath.Dir(dataSourceName)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		logger.Error().Err(err).Str("directory", dbDir).Msg("Failed to create history database directory")
		return nil, common.WrapError(err, "failed to create history database directory "+dbDir)
	}

	dbInstance, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		logger.Error().Err(err).Str("db_path", dataSourceName).Msg("Failed to open history database")
		return nil, fmt.Errorf("sql.Open failed for %s: %w", dataSourceName, err)
	}

	db := &HistoryDB{
		db:     dbInstance,
		logger: logger,
	}

	if err := db.InitSchema(); err != nil {
		_ = db.Close()
		logger.Error().Err(err).Msg("Failed to initialize history schema")
		return nil, common.WrapError(err, "failed to initialize schema")
	}
	logger.Debug().Str("path", dataSourceName).Msg("History database initialized and schema verified")
	return db, nil
}

// Close closes the database connection.
func (d *HistoryDB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// InitSchema creates the comparison_history table if it doesn't already exist.
func (d *HistoryDB) InitSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS comparison_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		left_path TEXT NOT NULL,
		right_path TEXT NOT NULL,
		left_hash TEXT NOT NULL,
		right_hash TEXT NOT NULL,
		mode TEXT NOT NULL,
		insertions INTEGER NOT NULL,
		deletions INTEGER NOT NULL,
		replacements INTEGER NOT NULL,
		unchanged INTEGER NOT NULL,
		changed_percent REAL NOT NULL,
		change_count INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		compared_at INTEGER NOT NULL
	);`
	if _, err := d.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create comparison_history table: %w", err)
	}

	indexQuery := `CREATE INDEX IF NOT EXISTS idx_comparison_history_paths ON comparison_history (left_path, right_path);`
	if _, err := d.db.Exec(indexQuery); err != nil {
		return fmt.Errorf("failed to create comparison_history index: %w", err)
	}
	return nil
}

// RecordComparison inserts one comparison summary and returns its row ID.
func (d *HistoryDB) RecordComparison(entry models.HistoryEntry) (int64, error) {
	comparedAt := entry.ComparedAt
	if comparedAt.IsZero() {
		comparedAt = time.Now().UTC()
	}

	query := `
	INSERT INTO comparison_history (
		left_path, right_path, left_hash, right_hash, mode,
		insertions, deletions, replacements, unchanged, changed_percent,
		change_count, duration_ms, compared_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	res, err := d.db.Exec(query,
		entry.LeftPath, entry.RightPath, entry.LeftHash, entry.RightHash, entry.Mode.String(),
		entry.Stats.Insertions, entry.Stats.Deletions, entry.Stats.Replacements, entry.Stats.Unchanged, entry.Stats.ChangedPercent,
		entry.ChangeCount, entry.DurationMs, models.TimeToUnixMilli(comparedAt),
	)
	if err != nil {
		d.logger.Error().Err(err).Str("left", entry.LeftPath).Str("right", entry.RightPath).Msg("Failed to record comparison")
		return 0, fmt.Errorf("failed to insert comparison history: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID for comparison history: %w", err)
	}
	d.logger.Debug().Int64("id", id).Str("mode", entry.Mode.String()).Msg("Recorded comparison")
	return id, nil
}

// ListRecent returns the newest entries first.
func (d *HistoryDB) ListRecent(limit int) ([]models.HistoryEntry, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := `
	SELECT id, left_path, right_path, left_hash, right_hash, mode,
		insertions, deletions, replacements, unchanged, changed_percent,
		change_count, duration_ms, compared_at
	FROM comparison_history
	ORDER BY id DESC
	LIMIT ?;`

	rows, err := d.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query comparison history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []models.HistoryEntry
	for rows.Next() {
		entry, err := scanHistoryEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comparison history: %w", err)
	}
	return entries, nil
}

// GetComparison loads a single entry by ID.
func (d *HistoryDB) GetComparison(id int64) (models.HistoryEntry, error) {
	query := `
	SELECT id, left_path, right_path, left_hash, right_hash, mode,
		insertions, deletions, replacements, unchanged, changed_percent,
		change_count, duration_ms, compared_at
	FROM comparison_history
	WHERE id = ?;`

	entry, err := scanHistoryEntry(d.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return models.HistoryEntry{}, models.ErrRecordNotFound
	}
	return entry, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHistoryEntry(row rowScanner) (models.HistoryEntry, error) {
	var (
		entry      models.HistoryEntry
		modeName   string
		comparedAt int64
	)
	err := row.Scan(
		&entry.ID, &entry.LeftPath, &entry.RightPath, &entry.LeftHash, &entry.RightHash, &modeName,
		&entry.Stats.Insertions, &entry.Stats.Deletions, &entry.Stats.Replacements, &entry.Stats.Unchanged, &entry.Stats.ChangedPercent,
		&entry.ChangeCount, &entry.DurationMs, &comparedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return entry, err
		}
		return entry, fmt.Errorf("failed to scan comparison history row: %w", err)
	}

	mode, err := models.ParseMode(modeName)
	if err != nil {
		return entry, common.WrapError(err, "stored comparison has unknown mode")
	}
	entry.Mode = mode
	entry.ComparedAt = time.UnixMilli(comparedAt).UTC()
	return entry, nil
}
