package static

import "github.com/louisbranch/lingogen/internal/options"

// RoomAndPanel identifies a panel, optionally in another room. An empty
// Room means "the room this reference appears in".
type RoomAndPanel struct {
	Room  string `yaml:"room"`
	Panel string `yaml:"panel"`
}

// RoomAndDoor identifies a door in a specific room.
type RoomAndDoor struct {
	Room string `yaml:"room"`
	Door string `yaml:"door"`
}

// Door is a passage inside a room that opens once its item is held or its
// panels are solved.
type Door struct {
	Name string `yaml:"name"`
	// ItemName is the canonical item that opens this door.
	ItemName string `yaml:"item"`
	// Skip marks doors that have no item under any shuffle mode.
	Skip bool `yaml:"skip_item"`
	// Event marks doors that are modeled purely as reachability events.
	Event bool `yaml:"event"`
	// Group is the shared item name used under simple door shuffle.
	Group  string         `yaml:"group"`
	Panels []RoomAndPanel `yaml:"panels"`
}

// Panel is a solvable puzzle inside a room.
type Panel struct {
	Name string `yaml:"name"`
	// Achievement panels count toward mastery.
	Achievement bool `yaml:"achievement"`
	// NonCounting panels are excluded from the counting goal.
	NonCounting bool `yaml:"non_counting"`
}

// Painting is a warp surface. Under painting shuffle, enterable paintings
// are rebound to randomly chosen exits.
type Painting struct {
	ID   string `yaml:"id"`
	Room string `yaml:"-"`

	EnterOnly bool `yaml:"enter_only"`
	ExitOnly  bool `yaml:"exit_only"`
	// Disable excludes the painting from shuffling entirely.
	Disable bool `yaml:"disable"`
	// Required paintings must remain reachable as warp destinations.
	Required bool `yaml:"required"`
	// RequiredWhenNoDoors extends Required when door shuffle is off.
	RequiredWhenNoDoors bool `yaml:"required_when_no_doors"`
	// Move marks paintings that relocate during play.
	Move bool `yaml:"move"`
	// RequiredDoor must be openable before the painting can be entered.
	RequiredDoor *RoomAndDoor `yaml:"required_door"`
}

// Classification is the set of location density tiers a location belongs to.
type Classification uint8

const (
	// ClassificationNormal locations exist at every density.
	ClassificationNormal Classification = 1 << iota
	// ClassificationReduced locations appear at reduced density and above.
	ClassificationReduced
	// ClassificationInsanity locations appear only at insanity density.
	ClassificationInsanity
)

// Contains reports whether the location exists at the given density tier.
func (c Classification) Contains(tier options.LocationChecks) bool {
	switch tier {
	case options.LocationChecksNormal:
		return c&ClassificationNormal != 0
	case options.LocationChecksReduced:
		return c&ClassificationReduced != 0
	case options.LocationChecksInsanity:
		return c&ClassificationInsanity != 0
	default:
		return false
	}
}

// Location is a checkable spot tied to one or more panels.
type Location struct {
	Name string
	Room string
	// Code is the numeric check ID registered with the session host. Zero
	// means the location is an event, not a real check.
	Code           int
	Classification Classification
	Panels         []RoomAndPanel
}

// ItemMode selects the inclusion predicate for an item.
type ItemMode int

const (
	// ItemModeFiller items are always in the pool.
	ItemModeFiller ItemMode = iota
	// ItemModeDoor items exist when door shuffle places door items.
	ItemModeDoor
	// ItemModeDoorGroup items replace their member doors' items under
	// simple door shuffle.
	ItemModeDoorGroup
	// ItemModeColor items exist when color shuffle is on.
	ItemModeColor
	// ItemModeGoal items exist only under one victory condition.
	ItemModeGoal
)

// Item is a pool entry with an option-dependent inclusion predicate.
type Item struct {
	Name string
	Mode ItemMode
	// Grouped marks door items whose door belongs to a simple-shuffle
	// group; they only appear individually under full shuffle.
	Grouped bool
	// NonProgressiveOnly marks tower floor items that are replaced by the
	// progressive tower item unless that option is disabled.
	NonProgressiveOnly bool
	// Victory gates goal items to one victory condition.
	Victory options.VictoryCondition
}

// ShouldInclude reports whether the item belongs in the player's pool.
func (i Item) ShouldInclude(opts options.Options) bool {
	switch i.Mode {
	case ItemModeFiller:
		return true
	case ItemModeDoor:
		if opts.DoorShuffle == options.DoorShuffleOff {
			return false
		}
		if i.Grouped && opts.DoorShuffle == options.DoorShuffleSimple {
			return false
		}
		if i.NonProgressiveOnly && opts.ProgressiveOrangeTower {
			return false
		}
		return true
	case ItemModeDoorGroup:
		return opts.DoorShuffle == options.DoorShuffleSimple
	case ItemModeColor:
		return opts.ColorShuffle
	case ItemModeGoal:
		return opts.VictoryCondition == i.Victory
	default:
		return false
	}
}

// Progression is one tier of a progressive item chain, keyed by the door it
// unlocks.
type Progression struct {
	ItemName string
	Index    int
}

// Room groups the doors, panels, and paintings that share a physical room.
// Slice order follows the authored rule set and is load-bearing: generation
// iterates rooms and their contents in this order so that a seed reproduces
// the same world.
type Room struct {
	Name      string
	Doors     []Door
	Panels    []Panel
	Paintings []Painting
}
