// Package generate orchestrates a full per-player generation run: it
// builds the player graph from the static tables, assembles the slot
// data payload, and records the run for auditing.
package generate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/louisbranch/lingogen/internal/options"
	"github.com/louisbranch/lingogen/internal/platform/id"
	"github.com/louisbranch/lingogen/internal/player"
	"github.com/louisbranch/lingogen/internal/random"
	"github.com/louisbranch/lingogen/internal/slotdata"
	"github.com/louisbranch/lingogen/internal/static"
	"github.com/louisbranch/lingogen/internal/storage"
	"github.com/louisbranch/lingogen/internal/telemetry"
)

// ErrNoTables indicates the service was constructed without static tables.
var ErrNoTables = errors.New("static tables are required")

// ErrEmptySlotName indicates a generation request without a slot name.
var ErrEmptySlotName = errors.New("slot name is required")

// Request describes one generation run. A zero Seed asks the service to
// draw a fresh one.
type Request struct {
	SlotName string
	Seed     int64
	Options  options.Options
}

// Result is the outcome of a successful generation run.
type Result struct {
	RecordID string
	Seed     int64
	Logic    *player.Logic
	SlotData slotdata.SlotData
}

// Service runs generations against a fixed rule set and records each run.
type Service struct {
	tables      *static.Logic
	store       storage.GenerationStore
	emitter     *telemetry.Emitter
	clock       func() time.Time
	idGenerator func() (string, error)
	newSeed     func() (int64, error)
}

// New creates a Service with default dependencies. The store and emitter
// may be nil, in which case runs are not persisted or reported.
func New(tables *static.Logic, store storage.GenerationStore, emitter *telemetry.Emitter) *Service {
	return &Service{
		tables:      tables,
		store:       store,
		emitter:     emitter,
		clock:       time.Now,
		idGenerator: id.NewID,
		newSeed:     random.NewSeed,
	}
}

// Generate builds the player graph for one slot and persists an audit
// record. Telemetry failures do not fail the run.
func (s *Service) Generate(ctx context.Context, req Request) (Result, error) {
	if s.tables == nil {
		return Result{}, ErrNoTables
	}
	if req.SlotName == "" {
		return Result{}, ErrEmptySlotName
	}
	if err := req.Options.Validate(); err != nil {
		return Result{}, fmt.Errorf("validate options: %w", err)
	}

	seed := req.Seed
	if seed == 0 {
		drawn, err := s.newSeed()
		if err != nil {
			return Result{}, fmt.Errorf("draw seed: %w", err)
		}
		seed = drawn
	}

	logic, err := player.Build(s.tables, req.Options, random.NewRand(seed))
	if err != nil {
		if s.emitter != nil {
			_ = s.emitter.GenerationFailed(ctx, req.SlotName, err)
		}
		return Result{}, fmt.Errorf("build player graph: %w", err)
	}

	recordID, err := s.persist(ctx, req, seed, logic)
	if err != nil {
		return Result{}, err
	}

	if s.emitter != nil {
		_ = s.emitter.GenerationCompleted(ctx, req.SlotName, seed)
	}

	return Result{
		RecordID: recordID,
		Seed:     seed,
		Logic:    logic,
		SlotData: slotdata.Build(logic, req.Options, seed),
	}, nil
}

func (s *Service) persist(ctx context.Context, req Request, seed int64, logic *player.Logic) (string, error) {
	if s.store == nil {
		return "", nil
	}

	recordID, err := s.idGenerator()
	if err != nil {
		return "", fmt.Errorf("generate record id: %w", err)
	}

	record := storage.GenerationRecord{
		ID:                     recordID,
		SlotName:               req.SlotName,
		Seed:                   seed,
		DoorShuffle:            req.Options.DoorShuffle.String(),
		ColorShuffle:           req.Options.ColorShuffle,
		PaintingShuffle:        req.Options.PaintingShuffle,
		VictoryCondition:       req.Options.VictoryCondition.String(),
		LocationChecks:         req.Options.LocationChecks.String(),
		ProgressiveOrangeTower: req.Options.ProgressiveOrangeTower,
		ForcedGoodItem:         logic.ForcedGoodItem,
		RealLocationCount:      len(logic.RealLocations),
		RealItemCount:          len(logic.RealItems),
		PaintingMapping:        logic.PaintingMapping,
		CreatedAt:              s.clock(),
	}
	if err := s.store.CreateGenerationRecord(ctx, record); err != nil {
		return "", fmt.Errorf("persist generation record: %w", err)
	}
	return recordID, nil
}
