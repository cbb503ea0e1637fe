// Package telemetry records operational events for generation runs.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/louisbranch/lingogen/internal/storage"
)

// Severity describes the telemetry severity level.
type Severity string

const (
	SeverityInfo  Severity = "INFO"
	SeverityWarn  Severity = "WARN"
	SeverityError Severity = "ERROR"
)

// Emitter records operational telemetry events.
type Emitter struct {
	store storage.TelemetryStore
	clock func() time.Time
}

// NewEmitter creates a new telemetry emitter.
func NewEmitter(store storage.TelemetryStore) *Emitter {
	return &Emitter{store: store, clock: time.Now}
}

// Emit records a telemetry event. It is a no-op when the store is nil.
func (e *Emitter) Emit(ctx context.Context, event storage.TelemetryEvent) error {
	if e == nil || e.store == nil {
		return nil
	}
	if event.Timestamp.IsZero() {
		if e.clock == nil {
			event.Timestamp = time.Now().UTC()
		} else {
			event.Timestamp = e.clock().UTC()
		}
	}
	return e.store.AppendTelemetryEvent(ctx, event)
}

// GenerationCompleted records a successful generation run.
func (e *Emitter) GenerationCompleted(ctx context.Context, slotName string, seed int64) error {
	return e.Emit(ctx, storage.TelemetryEvent{
		Severity: string(SeverityInfo),
		SlotName: slotName,
		Message:  fmt.Sprintf("generation completed with seed %d", seed),
	})
}

// GenerationFailed records a failed generation run.
func (e *Emitter) GenerationFailed(ctx context.Context, slotName string, cause error) error {
	return e.Emit(ctx, storage.TelemetryEvent{
		Severity: string(SeverityError),
		SlotName: slotName,
		Message:  fmt.Sprintf("generation failed: %v", cause),
	})
}
