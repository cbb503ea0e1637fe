package player

import (
	"fmt"
	"math/rand"

	"github.com/louisbranch/lingogen/internal/options"
	"github.com/louisbranch/lingogen/internal/random"
	"github.com/louisbranch/lingogen/internal/static"
)

// forceGoodItem guarantees one exit-unlocking item lands reachably early by
// reserving it out of the shuffled pool. With door shuffle on, the opening
// checks can otherwise dead-end immediately. The feature quietly does
// nothing when no candidate survives the plando exclusions.
func (b *builder) forceGoodItem(tables *static.Logic, opts options.Options, rng *rand.Rand) error {
	if opts.DoorShuffle == options.DoorShuffleOff {
		return nil
	}
	if opts.LocationChecks == options.LocationChecksInsanity {
		return nil
	}
	if opts.DisableForcedGoodItem {
		return nil
	}

	// The pilgrim and rhyme entrances only hide extra checks when color
	// shuffle is off, so they only count as good items then.
	pool := []string{"Starting Room - Back Right Door"}
	if !opts.ColorShuffle {
		pool = append(pool, "Pilgrim Room - Sun Painting")
	}
	if opts.DoorShuffle == options.DoorShuffleSimple {
		pool = append(pool, "Entry Doors", "Welcome Back Doors")
		if !opts.ColorShuffle {
			pool = append(pool, "Rhyme Room Doors")
		}
	} else {
		pool = append(pool, "Starting Room - Main Door", "Welcome Back Area - Shortcut to Starting Room")
	}

	if room, ok := tables.Room(startingRoom); ok {
		for _, painting := range room.Paintings {
			if !painting.EnterOnly || painting.RequiredDoor == nil {
				continue
			}
			// Under painting shuffle, only paintings that actually warp
			// somewhere unlock anything.
			if opts.PaintingShuffle {
				if _, mapped := b.out.PaintingMapping[painting.ID]; !mapped {
					continue
				}
			}
			door, ok := tables.Door(painting.RequiredDoor.Room, painting.RequiredDoor.Door)
			if !ok {
				continue
			}
			pool = append(pool, door.ItemName)
		}
	}

	// Items already claimed by a from-pool plando directive cannot be
	// reserved again.
	pool = excludePlandoItems(pool, opts.PlandoItems)
	if len(pool) == 0 {
		return nil
	}

	choice, err := random.Choice(rng, pool)
	if err != nil {
		return fmt.Errorf("choose forced good item: %w", err)
	}

	realItems, ok := removeFirstChecked(b.out.RealItems, choice)
	if !ok {
		return fmt.Errorf("forced good item %q is not in the item pool", choice)
	}
	realLocations, ok := removeFirstChecked(b.out.RealLocations, forcedGoodLocation)
	if !ok {
		return fmt.Errorf("forced good location %q is not in the location pool", forcedGoodLocation)
	}

	b.out.ForcedGoodItem = choice
	b.out.RealItems = realItems
	b.out.RealLocations = realLocations
	return nil
}

// excludePlandoItems drops every pool entry referenced by a from-pool
// directive, whatever shape the directive takes.
func excludePlandoItems(pool []string, directives []options.PlandoItem) []string {
	kept := make([]string, 0, len(pool))
	for _, item := range pool {
		referenced := false
		for _, directive := range directives {
			if directive.FromPool && directive.References(item) {
				referenced = true
				break
			}
		}
		if !referenced {
			kept = append(kept, item)
		}
	}
	return kept
}

// removeFirstChecked removes the first occurrence of value and reports
// whether it was present.
func removeFirstChecked(list []string, value string) ([]string, bool) {
	for i, entry := range list {
		if entry == value {
			out := make([]string, 0, len(list)-1)
			out = append(out, list[:i]...)
			return append(out, list[i+1:]...), true
		}
	}
	return list, false
}
