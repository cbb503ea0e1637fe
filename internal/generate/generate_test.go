package generate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/louisbranch/lingogen/internal/options"
	"github.com/louisbranch/lingogen/internal/static"
	"github.com/louisbranch/lingogen/internal/storage"
)

type fakeGenerationStore struct {
	records []storage.GenerationRecord
	err     error
}

func (f *fakeGenerationStore) CreateGenerationRecord(ctx context.Context, record storage.GenerationRecord) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, record)
	return nil
}

func (f *fakeGenerationStore) GetGenerationRecord(ctx context.Context, id string) (storage.GenerationRecord, error) {
	return storage.GenerationRecord{}, storage.ErrNotFound
}

func (f *fakeGenerationStore) ListGenerationRecords(ctx context.Context, limit int) ([]storage.GenerationRecord, error) {
	return f.records, nil
}

func newTestService(t *testing.T, store storage.GenerationStore) *Service {
	t.Helper()
	tables, err := static.Default()
	if err != nil {
		t.Fatalf("load tables: %v", err)
	}
	svc := New(tables, store, nil)
	svc.clock = func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) }
	svc.idGenerator = func() (string, error) { return "rec-1", nil }
	svc.newSeed = func() (int64, error) { return 4242, nil }
	return svc
}

func TestGeneratePersistsRecord(t *testing.T) {
	store := &fakeGenerationStore{}
	svc := newTestService(t, store)

	result, err := svc.Generate(context.Background(), Request{
		SlotName: "player-one",
		Seed:     7,
		Options:  options.Options{DoorShuffle: options.DoorShuffleSimple},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if result.RecordID != "rec-1" {
		t.Fatalf("expected record id rec-1, got %q", result.RecordID)
	}
	if result.Seed != 7 {
		t.Fatalf("expected seed 7, got %d", result.Seed)
	}
	if result.Logic == nil {
		t.Fatal("expected player logic")
	}
	if result.SlotData.Seed != 7 {
		t.Fatalf("expected slot data seed 7, got %d", result.SlotData.Seed)
	}

	if len(store.records) != 1 {
		t.Fatalf("expected one record, got %d", len(store.records))
	}
	record := store.records[0]
	if record.ID != "rec-1" || record.SlotName != "player-one" || record.Seed != 7 {
		t.Fatalf("unexpected record: %+v", record)
	}
	if record.DoorShuffle != "simple" {
		t.Fatalf("expected door shuffle simple, got %q", record.DoorShuffle)
	}
	if record.RealLocationCount != len(result.Logic.RealLocations) {
		t.Fatalf("real location count mismatch: %d vs %d", record.RealLocationCount, len(result.Logic.RealLocations))
	}
	if record.RealItemCount != len(result.Logic.RealItems) {
		t.Fatalf("real item count mismatch: %d vs %d", record.RealItemCount, len(result.Logic.RealItems))
	}
	if !record.CreatedAt.Equal(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected created at: %v", record.CreatedAt)
	}
}

func TestGenerateDrawsSeedWhenZero(t *testing.T) {
	store := &fakeGenerationStore{}
	svc := newTestService(t, store)

	result, err := svc.Generate(context.Background(), Request{SlotName: "player-one"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.Seed != 4242 {
		t.Fatalf("expected drawn seed 4242, got %d", result.Seed)
	}
	if store.records[0].Seed != 4242 {
		t.Fatalf("expected persisted seed 4242, got %d", store.records[0].Seed)
	}
}

func TestGenerateWithoutStoreSkipsPersistence(t *testing.T) {
	svc := newTestService(t, nil)

	result, err := svc.Generate(context.Background(), Request{SlotName: "player-one", Seed: 7})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.RecordID != "" {
		t.Fatalf("expected empty record id, got %q", result.RecordID)
	}
}

func TestGenerateRejectsBadInput(t *testing.T) {
	svc := newTestService(t, &fakeGenerationStore{})

	if _, err := svc.Generate(context.Background(), Request{Seed: 7}); !errors.Is(err, ErrEmptySlotName) {
		t.Fatalf("expected ErrEmptySlotName, got %v", err)
	}

	_, err := svc.Generate(context.Background(), Request{
		SlotName: "player-one",
		Seed:     7,
		Options:  options.Options{DoorShuffle: options.DoorShuffle(9)},
	})
	if !errors.Is(err, options.ErrInvalidDoorShuffle) {
		t.Fatalf("expected ErrInvalidDoorShuffle, got %v", err)
	}

	svc.tables = nil
	if _, err := svc.Generate(context.Background(), Request{SlotName: "player-one", Seed: 7}); !errors.Is(err, ErrNoTables) {
		t.Fatalf("expected ErrNoTables, got %v", err)
	}
}

func TestGeneratePropagatesStoreError(t *testing.T) {
	storeErr := errors.New("disk full")
	svc := newTestService(t, &fakeGenerationStore{err: storeErr})

	_, err := svc.Generate(context.Background(), Request{SlotName: "player-one", Seed: 7})
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}
