// Package slotdata serializes one player's generation result for the game
// client.
//
// The payload is the client's only view of the generated world: it carries
// the option echo the client needs to configure itself, the painting warp
// mapping, and the victory wiring. The encoding is stable JSON so that
// clients on other platforms can consume it.
package slotdata

import (
	"encoding/json"
	"fmt"

	"github.com/louisbranch/lingogen/internal/options"
	"github.com/louisbranch/lingogen/internal/player"
)

// SlotData is the client-facing summary of one generated world.
type SlotData struct {
	Seed int64 `json:"seed"`

	DoorShuffle     string `json:"shuffle_doors"`
	ColorShuffle    bool   `json:"shuffle_colors"`
	PaintingShuffle bool   `json:"shuffle_paintings"`
	LocationChecks  string `json:"location_checks"`

	VictoryCondition string `json:"victory_condition"`
	MasteryLocation  string `json:"mastery_location"`
	LevelTwoLocation string `json:"level_2_location"`

	PaintingMapping map[string]string `json:"painting_entrance_to_exit"`
	ForcedGoodItem  string            `json:"forced_good_item,omitempty"`
}

// Build assembles the slot data payload from a generation result.
func Build(logic *player.Logic, opts options.Options, seed int64) SlotData {
	return SlotData{
		Seed:             seed,
		DoorShuffle:      opts.DoorShuffle.String(),
		ColorShuffle:     opts.ColorShuffle,
		PaintingShuffle:  opts.PaintingShuffle,
		LocationChecks:   opts.LocationChecks.String(),
		VictoryCondition: logic.VictoryCondition,
		MasteryLocation:  logic.MasteryLocation,
		LevelTwoLocation: logic.LevelTwoLocation,
		PaintingMapping:  logic.PaintingMapping,
		ForcedGoodItem:   logic.ForcedGoodItem,
	}
}

// Marshal encodes the payload as JSON.
func (s SlotData) Marshal() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode slot data: %w", err)
	}
	return data, nil
}
