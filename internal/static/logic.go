package static

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateRoom indicates two rooms sharing a name.
	ErrDuplicateRoom = errors.New("duplicate room name")
	// ErrDuplicateLocation indicates two locations sharing a name.
	ErrDuplicateLocation = errors.New("duplicate location name")
	// ErrDuplicatePainting indicates two paintings sharing an id.
	ErrDuplicatePainting = errors.New("duplicate painting id")
	// ErrUnknownReference indicates a table entry referencing a room, door,
	// or panel that does not exist.
	ErrUnknownReference = errors.New("reference to unknown table entry")
	// ErrPaintingCounts indicates entrance/exit targets that the painting
	// table cannot satisfy.
	ErrPaintingCounts = errors.New("painting entrance/exit targets are unsatisfiable")
)

// Logic is the assembled, validated rule set. Slices preserve authored
// order; maps exist for lookup only and are never iterated during
// generation.
type Logic struct {
	Rooms []Room
	// Paintings is every painting in authored order, with Room filled in.
	Paintings    []Painting
	AllLocations []Location
	AllItems     []Item

	// ProgressionByRoom maps room → door → progressive tier.
	ProgressionByRoom map[string]map[string]Progression

	// PaintingEntrances and PaintingExits are the shuffle's target set
	// sizes.
	PaintingEntrances int
	PaintingExits     int

	roomIndex     map[string]int
	paintingIndex map[string]int

	requiredPaintingRooms        map[string]bool
	requiredNoDoorsPaintingRooms map[string]bool
}

// Room returns the named room.
func (l *Logic) Room(name string) (Room, bool) {
	i, ok := l.roomIndex[name]
	if !ok {
		return Room{}, false
	}
	return l.Rooms[i], true
}

// Door returns the named door within a room.
func (l *Logic) Door(room, door string) (Door, bool) {
	r, ok := l.Room(room)
	if !ok {
		return Door{}, false
	}
	for _, d := range r.Doors {
		if d.Name == door {
			return d, true
		}
	}
	return Door{}, false
}

// PaintingByID returns the painting with the given id.
func (l *Logic) PaintingByID(id string) (Painting, bool) {
	i, ok := l.paintingIndex[id]
	if !ok {
		return Painting{}, false
	}
	return l.Paintings[i], true
}

// RequiredPaintingRoom reports whether a room hosts a required painting.
// When extendNoDoors is set, rooms hosting required-when-no-doors paintings
// count as well.
func (l *Logic) RequiredPaintingRoom(room string, extendNoDoors bool) bool {
	if l.requiredPaintingRooms[room] {
		return true
	}
	return extendNoDoors && l.requiredNoDoorsPaintingRooms[room]
}

// Progression returns the progressive tier for a door, if the door is part
// of a progressive chain.
func (l *Logic) Progression(room, door string) (Progression, bool) {
	byDoor, ok := l.ProgressionByRoom[room]
	if !ok {
		return Progression{}, false
	}
	p, ok := byDoor[door]
	return p, ok
}

// index rebuilds lookup tables and derived sets from the slices.
func (l *Logic) index() {
	l.roomIndex = make(map[string]int, len(l.Rooms))
	for i, room := range l.Rooms {
		l.roomIndex[room.Name] = i
	}

	l.Paintings = nil
	l.paintingIndex = make(map[string]int)
	l.requiredPaintingRooms = make(map[string]bool)
	l.requiredNoDoorsPaintingRooms = make(map[string]bool)
	for i := range l.Rooms {
		room := &l.Rooms[i]
		for j := range room.Paintings {
			room.Paintings[j].Room = room.Name
			painting := room.Paintings[j]
			l.paintingIndex[painting.ID] = len(l.Paintings)
			l.Paintings = append(l.Paintings, painting)
			if painting.Required {
				l.requiredPaintingRooms[room.Name] = true
			}
			if painting.RequiredWhenNoDoors {
				l.requiredNoDoorsPaintingRooms[room.Name] = true
			}
		}
	}
}

// Validate checks referential integrity across the tables.
func (l *Logic) Validate() error {
	seenRooms := make(map[string]bool, len(l.Rooms))
	for _, room := range l.Rooms {
		if seenRooms[room.Name] {
			return fmt.Errorf("%w: room %q", ErrDuplicateRoom, room.Name)
		}
		seenRooms[room.Name] = true

		seenDoors := make(map[string]bool, len(room.Doors))
		seenPanels := make(map[string]bool, len(room.Panels))
		for _, panel := range room.Panels {
			if seenPanels[panel.Name] {
				return fmt.Errorf("%w: panel %q in room %q", ErrUnknownReference, panel.Name, room.Name)
			}
			seenPanels[panel.Name] = true
		}
		for _, door := range room.Doors {
			if seenDoors[door.Name] {
				return fmt.Errorf("%w: door %q in room %q", ErrUnknownReference, door.Name, room.Name)
			}
			seenDoors[door.Name] = true
			for _, ref := range door.Panels {
				if err := l.checkPanelRef(room.Name, ref); err != nil {
					return fmt.Errorf("door %q in room %q: %w", door.Name, room.Name, err)
				}
			}
		}
	}

	seenPaintings := make(map[string]bool, len(l.Paintings))
	for _, painting := range l.Paintings {
		if seenPaintings[painting.ID] {
			return fmt.Errorf("%w: painting %q", ErrDuplicatePainting, painting.ID)
		}
		seenPaintings[painting.ID] = true
		if painting.RequiredDoor != nil {
			if _, ok := l.Door(painting.RequiredDoor.Room, painting.RequiredDoor.Door); !ok {
				return fmt.Errorf("%w: painting %q requires door %q in room %q",
					ErrUnknownReference, painting.ID, painting.RequiredDoor.Door, painting.RequiredDoor.Room)
			}
		}
	}

	seenLocations := make(map[string]bool, len(l.AllLocations))
	for _, location := range l.AllLocations {
		if seenLocations[location.Name] {
			return fmt.Errorf("%w: location %q", ErrDuplicateLocation, location.Name)
		}
		seenLocations[location.Name] = true
		if !seenRooms[location.Room] {
			return fmt.Errorf("%w: location %q in room %q", ErrUnknownReference, location.Name, location.Room)
		}
		for _, ref := range location.Panels {
			if err := l.checkPanelRef(location.Room, ref); err != nil {
				return fmt.Errorf("location %q: %w", location.Name, err)
			}
		}
	}

	for roomName, byDoor := range l.ProgressionByRoom {
		for doorName := range byDoor {
			if _, ok := l.Door(roomName, doorName); !ok {
				return fmt.Errorf("%w: progression for door %q in room %q", ErrUnknownReference, doorName, roomName)
			}
		}
	}

	return l.validatePaintingCounts()
}

// validatePaintingCounts checks that the entrance and exit targets can be
// met by the painting table under every door shuffle mode.
func (l *Logic) validatePaintingCounts() error {
	exitable := 0
	requiredExits := 0
	seededNoDoors := 0
	enterable := 0
	for _, painting := range l.Paintings {
		if !painting.EnterOnly && !painting.Disable && !painting.Required {
			exitable++
		}
		if painting.ExitOnly && painting.Required {
			requiredExits++
		} else if painting.RequiredWhenNoDoors {
			seededNoDoors++
		}
		if !painting.ExitOnly && !painting.Disable {
			enterable++
		}
	}
	if requiredExits+seededNoDoors > l.PaintingExits {
		return fmt.Errorf("%w: %d required exits exceed target %d",
			ErrPaintingCounts, requiredExits+seededNoDoors, l.PaintingExits)
	}
	if requiredExits+exitable < l.PaintingExits {
		return fmt.Errorf("%w: only %d candidate exits for target %d", ErrPaintingCounts, requiredExits+exitable, l.PaintingExits)
	}
	if enterable < l.PaintingEntrances+l.PaintingExits {
		return fmt.Errorf("%w: only %d enterable paintings for %d entrances and %d exits",
			ErrPaintingCounts, enterable, l.PaintingEntrances, l.PaintingExits)
	}
	return nil
}

func (l *Logic) checkPanelRef(ownRoom string, ref RoomAndPanel) error {
	room := ref.Room
	if room == "" {
		room = ownRoom
	}
	r, ok := l.Room(room)
	if !ok {
		return fmt.Errorf("%w: room %q", ErrUnknownReference, room)
	}
	for _, panel := range r.Panels {
		if panel.Name == ref.Panel {
			return nil
		}
	}
	return fmt.Errorf("%w: panel %q in room %q", ErrUnknownReference, ref.Panel, room)
}
