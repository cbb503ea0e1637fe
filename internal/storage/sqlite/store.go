// Package sqlite provides a SQLite-backed generation record store.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/lingogen/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/lingogen/internal/storage"
	"github.com/louisbranch/lingogen/internal/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists generation records and telemetry in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite generation store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// CreateGenerationRecord inserts one generation record.
func (s *Store) CreateGenerationRecord(ctx context.Context, record storage.GenerationRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id := strings.TrimSpace(record.ID)
	if id == "" {
		return fmt.Errorf("record id is required")
	}
	slotName := strings.TrimSpace(record.SlotName)
	if slotName == "" {
		return fmt.Errorf("slot name is required")
	}

	mapping, err := json.Marshal(record.PaintingMapping)
	if err != nil {
		return fmt.Errorf("encode painting mapping: %w", err)
	}

	createdAt := record.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO generation_records (
		   id,
		   slot_name,
		   seed,
		   door_shuffle,
		   color_shuffle,
		   painting_shuffle,
		   victory_condition,
		   location_checks,
		   progressive_orange_tower,
		   forced_good_item,
		   real_location_count,
		   real_item_count,
		   painting_mapping,
		   created_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		slotName,
		record.Seed,
		record.DoorShuffle,
		boolToInt(record.ColorShuffle),
		boolToInt(record.PaintingShuffle),
		record.VictoryCondition,
		record.LocationChecks,
		boolToInt(record.ProgressiveOrangeTower),
		record.ForcedGoodItem,
		record.RealLocationCount,
		record.RealItemCount,
		string(mapping),
		toMillis(createdAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("create generation record: %w", err)
	}
	return nil
}

// GetGenerationRecord returns one record by id.
func (s *Store) GetGenerationRecord(ctx context.Context, id string) (storage.GenerationRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.GenerationRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.GenerationRecord{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return storage.GenerationRecord{}, fmt.Errorf("record id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, slot_name, seed, door_shuffle, color_shuffle,
		        painting_shuffle, victory_condition, location_checks,
		        progressive_orange_tower, forced_good_item,
		        real_location_count, real_item_count, painting_mapping,
		        created_at
		   FROM generation_records
		  WHERE id = ?`,
		id,
	)
	record, err := scanGenerationRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.GenerationRecord{}, storage.ErrNotFound
		}
		return storage.GenerationRecord{}, fmt.Errorf("get generation record: %w", err)
	}
	return record, nil
}

// ListGenerationRecords returns the most recent records, newest first.
func (s *Store) ListGenerationRecords(ctx context.Context, limit int) ([]storage.GenerationRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, slot_name, seed, door_shuffle, color_shuffle,
		        painting_shuffle, victory_condition, location_checks,
		        progressive_orange_tower, forced_good_item,
		        real_location_count, real_item_count, painting_mapping,
		        created_at
		   FROM generation_records
		  ORDER BY created_at DESC, id
		  LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list generation records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []storage.GenerationRecord
	for rows.Next() {
		record, err := scanGenerationRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan generation record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate generation records: %w", err)
	}
	return records, nil
}

// AppendTelemetryEvent records one telemetry event.
func (s *Store) AppendTelemetryEvent(ctx context.Context, event storage.TelemetryEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	timestamp := event.Timestamp.UTC()
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO telemetry_events (timestamp, severity, slot_name, message)
		 VALUES (?, ?, ?, ?)`,
		toMillis(timestamp),
		event.Severity,
		event.SlotName,
		event.Message,
	)
	if err != nil {
		return fmt.Errorf("append telemetry event: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGenerationRecord(row rowScanner) (storage.GenerationRecord, error) {
	var record storage.GenerationRecord
	var colorShuffle, paintingShuffle, progressiveTower int
	var mapping string
	var createdAt int64

	err := row.Scan(
		&record.ID,
		&record.SlotName,
		&record.Seed,
		&record.DoorShuffle,
		&colorShuffle,
		&paintingShuffle,
		&record.VictoryCondition,
		&record.LocationChecks,
		&progressiveTower,
		&record.ForcedGoodItem,
		&record.RealLocationCount,
		&record.RealItemCount,
		&mapping,
		&createdAt,
	)
	if err != nil {
		return storage.GenerationRecord{}, err
	}

	if err := json.Unmarshal([]byte(mapping), &record.PaintingMapping); err != nil {
		return storage.GenerationRecord{}, fmt.Errorf("decode painting mapping: %w", err)
	}
	record.ColorShuffle = colorShuffle != 0
	record.PaintingShuffle = paintingShuffle != 0
	record.ProgressiveOrangeTower = progressiveTower != 0
	record.CreatedAt = fromMillis(createdAt)
	return record, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "unique constraint failed") &&
		strings.Contains(message, "generation_records.id")
}

var (
	_ storage.GenerationStore = (*Store)(nil)
	_ storage.TelemetryStore  = (*Store)(nil)
)
