package player

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/louisbranch/lingogen/internal/options"
	"github.com/louisbranch/lingogen/internal/static"
)

// MaxPaintingAttempts bounds the painting matcher's random retries before
// generation is aborted.
const MaxPaintingAttempts = 20

// Canonical rooms, locations, and synthetic items of the base game.
const (
	towerRoom = "Orange Tower"

	endgameLocation             = "Orange Tower Seventh Floor - THE END"
	masteryPanelLocation        = "Orange Tower Seventh Floor - THE MASTER"
	masteryAchievementsLocation = "Orange Tower Seventh Floor - Mastery Achievements"
	masteryRoom                 = "Orange Tower Seventh Floor"
	endgameSolvedLocation       = "The End (Solved)"

	levelTwoRoom           = "Second Room"
	levelTwoPanel          = "LEVEL 2"
	levelTwoPanelLocation  = "Second Room - LEVEL 2"
	unlockLevelTwoLocation = "Second Room - Unlock Level 2"

	startingRoom       = "Starting Room"
	forcedGoodLocation = "Starting Room - HI"

	victoryItem            = "Victory"
	masteryAchievementItem = "Mastery Achievement"
	countingPanelItem      = "Counting Panel Solved"

	// levelTwoUnset is the level 2 location value when the counting goal
	// is not active.
	levelTwoUnset = "N/A"
)

var (
	// ErrPaintingMapping indicates that the painting matcher could not
	// produce a workable mapping. This signals a rule-table defect.
	ErrPaintingMapping = errors.New("painting mapping failed")
	// ErrDuplicateLocation indicates two player locations sharing a name.
	ErrDuplicateLocation = errors.New("duplicate player location")
	// ErrDuplicateDoorItem indicates a door bound to two items.
	ErrDuplicateDoorItem = errors.New("door item already bound")
)

// PlayerLocation is a checkable or event location in one player's world. A
// zero Code marks an event that exists only for the reachability solver.
type PlayerLocation struct {
	Name   string
	Code   int
	Panels []static.RoomAndPanel
}

// Logic is the per-player generation result. Every field is populated once
// by Build and read-only afterward.
type Logic struct {
	// LocationsByRoom lists each room's locations in insertion order:
	// events first as generation steps add them, then real checks in
	// static-table order. Consumers rely on this ordering.
	LocationsByRoom map[string][]PlayerLocation

	// ItemByDoor maps room → door → the item or event that opens it under
	// the active options.
	ItemByDoor map[string]map[string]string

	// EventLocToItem maps event location names to the synthetic items they
	// grant.
	EventLocToItem map[string]string

	// RealLocations and RealItems are the checkable locations and
	// shuffled pool items. RealItems may repeat a progressive item once
	// per tier.
	RealLocations []string
	RealItems     []string

	VictoryCondition string
	MasteryLocation  string
	LevelTwoLocation string

	// PaintingMapping maps entrance painting ids to exit painting ids.
	// Empty unless painting shuffle is on. Multiple entrances may share
	// one exit.
	PaintingMapping map[string]string

	// ForcedGoodItem is the item guaranteed to be placed reachably early,
	// or empty when the feature did not apply.
	ForcedGoodItem string
}

type builder struct {
	out   Logic
	names map[string]bool
}

// Build constructs the player's world logic.
func Build(tables *static.Logic, opts options.Options, rng *rand.Rand) (*Logic, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("options: %w", err)
	}

	b := &builder{
		out: Logic{
			LocationsByRoom:  make(map[string][]PlayerLocation),
			ItemByDoor:       make(map[string]map[string]string),
			EventLocToItem:   make(map[string]string),
			PaintingMapping:  make(map[string]string),
			LevelTwoLocation: levelTwoUnset,
			MasteryLocation:  masteryPanelLocation,
		},
		names: make(map[string]bool),
	}

	if err := b.addRoomEvents(tables); err != nil {
		return nil, err
	}
	if err := b.addDoorEvents(tables, opts); err != nil {
		return nil, err
	}
	if err := b.addPanelEvents(tables, opts); err != nil {
		return nil, err
	}
	if err := b.bindVictory(opts); err != nil {
		return nil, err
	}
	if err := b.addRealLocations(tables, opts); err != nil {
		return nil, err
	}
	b.addRealItems(tables, opts)

	if opts.PaintingShuffle {
		if err := b.shufflePaintings(tables, opts, rng); err != nil {
			return nil, err
		}
	}

	if err := b.forceGoodItem(tables, opts, rng); err != nil {
		return nil, err
	}

	return &b.out, nil
}

// addLocation appends a location to its room, failing on a name collision.
func (b *builder) addLocation(room string, loc PlayerLocation) error {
	if b.names[loc.Name] {
		return fmt.Errorf("%w: %q", ErrDuplicateLocation, loc.Name)
	}
	b.names[loc.Name] = true
	b.out.LocationsByRoom[room] = append(b.out.LocationsByRoom[room], loc)
	return nil
}

// addEventLocation adds an event location granting the given synthetic item.
func (b *builder) addEventLocation(room string, loc PlayerLocation, item string) error {
	if err := b.addLocation(room, loc); err != nil {
		return err
	}
	b.out.EventLocToItem[loc.Name] = item
	return nil
}

// setDoorItem binds a door to its required item, failing if the door is
// already bound.
func (b *builder) setDoorItem(room, door, item string) error {
	byDoor, ok := b.out.ItemByDoor[room]
	if !ok {
		byDoor = make(map[string]string)
		b.out.ItemByDoor[room] = byDoor
	}
	if _, bound := byDoor[door]; bound {
		return fmt.Errorf("%w: %q in room %q", ErrDuplicateDoorItem, door, room)
	}
	byDoor[door] = item
	return nil
}

// overrideDoorItem rebinds a door unconditionally. Only the event-door rule
// may overwrite an earlier binding.
func (b *builder) overrideDoorItem(room, door, item string) {
	byDoor, ok := b.out.ItemByDoor[room]
	if !ok {
		byDoor = make(map[string]string)
		b.out.ItemByDoor[room] = byDoor
	}
	byDoor[door] = item
}

// addRoomEvents creates one reached event per room.
func (b *builder) addRoomEvents(tables *static.Logic) error {
	for _, room := range tables.Rooms {
		name := room.Name + " (Reached)"
		err := b.addEventLocation(room.Name, PlayerLocation{Name: name}, name)
		if err != nil {
			return err
		}
	}
	return nil
}

// addDoorEvents creates door opened events and binds door items according
// to the door shuffle mode.
func (b *builder) addDoorEvents(tables *static.Logic, opts options.Options) error {
	for _, room := range tables.Rooms {
		for _, door := range room.Doors {
			if opts.DoorShuffle == options.DoorShuffleOff {
				name := room.Name + " - " + door.Name + " (Opened)"
				loc := PlayerLocation{Name: name, Panels: door.Panels}
				if err := b.addEventLocation(room.Name, loc, name); err != nil {
					return err
				}
				if err := b.setDoorItem(room.Name, door.Name, name); err != nil {
					return err
				}
			} else if !door.Skip && !door.Event {
				if door.Group != "" && opts.DoorShuffle == options.DoorShuffleSimple {
					// Grouped doors share one item under simple shuffle.
					if err := b.setDoorItem(room.Name, door.Name, door.Group); err != nil {
						return err
					}
				} else if err := b.bindNonGroupedDoor(tables, opts, room.Name, door); err != nil {
					return err
				}
			}

			if door.Event {
				loc := PlayerLocation{Name: door.ItemName, Panels: door.Panels}
				if err := b.addEventLocation(room.Name, loc, door.ItemName+" (Opened)"); err != nil {
					return err
				}
				// Event semantics win over the shuffle-mode binding.
				b.overrideDoorItem(room.Name, door.Name, door.ItemName+" (Opened)")
			}
		}
	}
	return nil
}

// bindNonGroupedDoor resolves a shuffled door through the progression
// table. Orange Tower floors fall back to their plain items when the
// progressive tower option is off.
func (b *builder) bindNonGroupedDoor(tables *static.Logic, opts options.Options, room string, door static.Door) error {
	prog, ok := tables.Progression(room, door.Name)
	if !ok {
		return b.setDoorItem(room, door.Name, door.ItemName)
	}
	if room == towerRoom && !opts.ProgressiveOrangeTower {
		return b.setDoorItem(room, door.Name, door.ItemName)
	}
	if err := b.setDoorItem(room, door.Name, prog.ItemName); err != nil {
		return err
	}
	b.out.RealItems = append(b.out.RealItems, prog.ItemName)
	return nil
}

// addPanelEvents creates achievement events for mastery tracking and, under
// the counting goal, counted events for every counting panel.
func (b *builder) addPanelEvents(tables *static.Logic, opts options.Options) error {
	for _, room := range tables.Rooms {
		for _, panel := range room.Panels {
			ref := []static.RoomAndPanel{{Room: room.Name, Panel: panel.Name}}

			if panel.Achievement {
				name := room.Name + " - " + panel.Name + " (Achieved)"
				loc := PlayerLocation{Name: name, Panels: ref}
				if err := b.addEventLocation(room.Name, loc, masteryAchievementItem); err != nil {
					return err
				}
			}

			if !panel.NonCounting && opts.VictoryCondition == options.VictoryLevelTwo {
				name := room.Name + " - " + panel.Name + " (Counted)"
				loc := PlayerLocation{Name: name, Panels: ref}
				if err := b.addEventLocation(room.Name, loc, countingPanelItem); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// bindVictory wires exactly one goal location to the Victory item. The two
// inactive goal locations stay in play as regular checks.
func (b *builder) bindVictory(opts options.Options) error {
	switch opts.VictoryCondition {
	case options.VictoryTheEnd:
		b.out.VictoryCondition = endgameLocation
		loc := PlayerLocation{Name: endgameSolvedLocation}
		return b.addEventLocation(masteryRoom, loc, victoryItem)
	case options.VictoryTheMaster:
		b.out.VictoryCondition = masteryPanelLocation
		b.out.MasteryLocation = masteryAchievementsLocation
		loc := PlayerLocation{Name: masteryAchievementsLocation}
		return b.addEventLocation(masteryRoom, loc, victoryItem)
	case options.VictoryLevelTwo:
		b.out.VictoryCondition = levelTwoPanelLocation
		b.out.LevelTwoLocation = unlockLevelTwoLocation
		loc := PlayerLocation{
			Name:   unlockLevelTwoLocation,
			Panels: []static.RoomAndPanel{{Room: levelTwoRoom, Panel: levelTwoPanel}},
		}
		return b.addEventLocation(levelTwoRoom, loc, victoryItem)
	}
	return options.ErrInvalidVictoryCondition
}

// addRealLocations instantiates every static location compatible with the
// density tier, except the active victory location.
func (b *builder) addRealLocations(tables *static.Logic, opts options.Options) error {
	for _, loc := range tables.AllLocations {
		if loc.Name == b.out.VictoryCondition {
			continue
		}
		if !loc.Classification.Contains(opts.LocationChecks) {
			continue
		}
		playerLoc := PlayerLocation{Name: loc.Name, Code: loc.Code, Panels: loc.Panels}
		if err := b.addLocation(loc.Room, playerLoc); err != nil {
			return err
		}
		b.out.RealLocations = append(b.out.RealLocations, loc.Name)
	}
	return nil
}

// addRealItems instantiates every static item whose inclusion predicate
// passes under the active options.
func (b *builder) addRealItems(tables *static.Logic, opts options.Options) {
	for _, item := range tables.AllItems {
		if item.ShouldInclude(opts) {
			b.out.RealItems = append(b.out.RealItems, item.Name)
		}
	}
}

// shufflePaintings retries the painting matcher up to MaxPaintingAttempts.
func (b *builder) shufflePaintings(tables *static.Logic, opts options.Options, rng *rand.Rand) error {
	for attempt := 0; attempt < MaxPaintingAttempts; attempt++ {
		if b.randomizePaintings(tables, opts, rng) {
			return nil
		}
	}
	return fmt.Errorf("%w: no workable mapping after %d attempts; this almost certainly indicates a rule-table defect",
		ErrPaintingMapping, MaxPaintingAttempts)
}
