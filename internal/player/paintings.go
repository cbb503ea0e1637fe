package player

import (
	"math/rand"

	"github.com/louisbranch/lingogen/internal/options"
	"github.com/louisbranch/lingogen/internal/random"
	"github.com/louisbranch/lingogen/internal/static"
)

// The eye wall painting is double-sided and moves during play, so it sits
// outside the general shuffle. Its vanilla exit is the only eligible
// double-sided destination: if that exit is not consumed as an entrance by
// the shuffle, the eye wall is forced back onto it.
const (
	eyeWallEntrance = "eye_painting"
	eyeWallExit     = "eye_painting_2"
)

// randomizePaintings is a single matching attempt. It reports false when
// the attempt must be abandoned: a sampled binding would link two
// required-painting rooms, the painting table cannot fill the target sets,
// or a required painting ends up unreachable.
func (b *builder) randomizePaintings(tables *static.Logic, opts options.Options, rng *rand.Rand) bool {
	b.out.PaintingMapping = make(map[string]string)

	doorsOff := opts.DoorShuffle == options.DoorShuffleOff

	// Exit set: paintings that must stay reachable are seeded first, then
	// the remainder is sampled from the freely exitable pool.
	var chosenExits []string
	chosen := make(map[string]bool)
	if doorsOff {
		for _, painting := range tables.Paintings {
			if painting.RequiredWhenNoDoors && !chosen[painting.ID] {
				chosenExits = append(chosenExits, painting.ID)
				chosen[painting.ID] = true
			}
		}
	}
	for _, painting := range tables.Paintings {
		if painting.ExitOnly && painting.Required && !chosen[painting.ID] {
			chosenExits = append(chosenExits, painting.ID)
			chosen[painting.ID] = true
		}
	}

	var exitable []string
	for _, painting := range tables.Paintings {
		if !painting.EnterOnly && !painting.Disable && !painting.Required && !chosen[painting.ID] {
			exitable = append(exitable, painting.ID)
		}
	}
	fill, err := random.Sample(rng, exitable, tables.PaintingExits-len(chosenExits))
	if err != nil {
		return false
	}
	for _, id := range fill {
		chosenExits = append(chosenExits, id)
		chosen[id] = true
	}

	// Entrance set: sampled from enterable paintings not already spent as
	// exits.
	var enterable []string
	for _, painting := range tables.Paintings {
		if !painting.ExitOnly && !painting.Disable && !chosen[painting.ID] {
			enterable = append(enterable, painting.ID)
		}
	}
	entrances, err := random.Sample(rng, enterable, tables.PaintingEntrances)
	if err != nil {
		return false
	}

	// Primary pass: bind each exit to a distinct entrance. A warp between
	// two required-painting rooms could trap required reachability in a
	// cycle, so such an attempt is abandoned outright.
	available := entrances
	for _, exitID := range chosenExits {
		enterID, err := random.Choice(rng, available)
		if err != nil {
			return false
		}

		exitPainting, _ := tables.PaintingByID(exitID)
		enterPainting, _ := tables.PaintingByID(enterID)
		if tables.RequiredPaintingRoom(exitPainting.Room, doorsOff) &&
			tables.RequiredPaintingRoom(enterPainting.Room, doorsOff) {
			return false
		}

		available = removeFirst(available, enterID)
		b.out.PaintingMapping[enterID] = exitID
	}

	// Secondary pass: leftover entrances reuse exits with replacement.
	// Entrances may outnumber exits, so the mapping is many-to-one.
	for _, enterID := range available {
		exitID, err := random.Choice(rng, chosenExits)
		if err != nil {
			return false
		}
		b.out.PaintingMapping[enterID] = exitID
	}

	if _, isEntrance := b.out.PaintingMapping[eyeWallExit]; !isEntrance {
		b.out.PaintingMapping[eyeWallEntrance] = eyeWallExit
	}

	// Every required painting must be some entrance's destination.
	destinations := make(map[string]bool, len(b.out.PaintingMapping))
	for _, exitID := range b.out.PaintingMapping {
		destinations[exitID] = true
	}
	for _, painting := range tables.Paintings {
		required := painting.Required || (painting.RequiredWhenNoDoors && doorsOff)
		if required && !destinations[painting.ID] {
			return false
		}
	}

	return true
}

// removeFirst removes the first occurrence of value, preserving order.
func removeFirst(list []string, value string) []string {
	for i, entry := range list {
		if entry == value {
			out := make([]string, 0, len(list)-1)
			out = append(out, list[:i]...)
			return append(out, list[i+1:]...)
		}
	}
	return list
}
