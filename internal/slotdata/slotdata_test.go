package slotdata

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/louisbranch/lingogen/internal/options"
	"github.com/louisbranch/lingogen/internal/player"
)

func TestBuildEchoesOptionsAndVictoryWiring(t *testing.T) {
	logic := &player.Logic{
		VictoryCondition: "The End (Solved)",
		MasteryLocation:  "Orange Tower Seventh Floor - THE MASTER",
		LevelTwoLocation: "Second Room - LEVEL 2",
		PaintingMapping:  map[string]string{"maze_painting": "garden_painting"},
		ForcedGoodItem:   "Slowness Trap",
	}
	opts := options.Options{
		DoorShuffle:     options.DoorShuffleFull,
		ColorShuffle:    true,
		PaintingShuffle: true,
		LocationChecks:  options.LocationChecksInsanity,
	}

	data := Build(logic, opts, 123)

	if data.Seed != 123 {
		t.Fatalf("expected seed 123, got %d", data.Seed)
	}
	if data.DoorShuffle != "full" {
		t.Fatalf("expected door shuffle full, got %q", data.DoorShuffle)
	}
	if !data.ColorShuffle || !data.PaintingShuffle {
		t.Fatal("expected shuffle flags to be echoed")
	}
	if data.LocationChecks != "insanity" {
		t.Fatalf("expected location checks insanity, got %q", data.LocationChecks)
	}
	if data.VictoryCondition != "The End (Solved)" {
		t.Fatalf("unexpected victory condition %q", data.VictoryCondition)
	}
	if data.MasteryLocation != "Orange Tower Seventh Floor - THE MASTER" {
		t.Fatalf("unexpected mastery location %q", data.MasteryLocation)
	}
	if data.LevelTwoLocation != "Second Room - LEVEL 2" {
		t.Fatalf("unexpected level 2 location %q", data.LevelTwoLocation)
	}
	if data.PaintingMapping["maze_painting"] != "garden_painting" {
		t.Fatalf("unexpected painting mapping %v", data.PaintingMapping)
	}
	if data.ForcedGoodItem != "Slowness Trap" {
		t.Fatalf("unexpected forced good item %q", data.ForcedGoodItem)
	}
}

func TestMarshalOmitsEmptyForcedGoodItem(t *testing.T) {
	logic := &player.Logic{
		VictoryCondition: "The End (Solved)",
		LevelTwoLocation: "N/A",
	}

	raw, err := Build(logic, options.Options{}, 1).Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if strings.Contains(string(raw), "forced_good_item") {
		t.Fatalf("expected forced_good_item to be omitted, got %s", raw)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded["shuffle_doors"] != "off" {
		t.Fatalf("expected shuffle_doors off, got %v", decoded["shuffle_doors"])
	}
	if decoded["level_2_location"] != "N/A" {
		t.Fatalf("expected level_2_location N/A, got %v", decoded["level_2_location"])
	}
}
