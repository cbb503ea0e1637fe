package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound indicates a requested record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a duplicate record id.
	ErrAlreadyExists = errors.New("record already exists")
)

// GenerationRecord captures one player's generation run for auditing. The
// record is sufficient to reproduce the run: same seed, same options, same
// rule set.
type GenerationRecord struct {
	ID       string
	SlotName string
	Seed     int64

	DoorShuffle            string
	ColorShuffle           bool
	PaintingShuffle        bool
	VictoryCondition       string
	LocationChecks         string
	ProgressiveOrangeTower bool

	ForcedGoodItem    string
	RealLocationCount int
	RealItemCount     int

	// PaintingMapping maps entrance painting ids to exit painting ids.
	PaintingMapping map[string]string

	CreatedAt time.Time
}

// GenerationStore persists generation records.
type GenerationStore interface {
	CreateGenerationRecord(ctx context.Context, record GenerationRecord) error
	GetGenerationRecord(ctx context.Context, id string) (GenerationRecord, error)
	ListGenerationRecords(ctx context.Context, limit int) ([]GenerationRecord, error)
}

// TelemetryEvent is one operational event recorded during generation.
type TelemetryEvent struct {
	Timestamp time.Time
	Severity  string
	SlotName  string
	Message   string
}

// TelemetryStore appends operational telemetry events.
type TelemetryStore interface {
	AppendTelemetryEvent(ctx context.Context, event TelemetryEvent) error
}
