package options

import "errors"

// DoorShuffle controls whether doors require their vanilla unlock item or a
// shuffled one.
type DoorShuffle int

const (
	// DoorShuffleOff leaves every door openable by solving its panels.
	DoorShuffleOff DoorShuffle = iota
	// DoorShuffleSimple shuffles door items, keeping grouped doors on a
	// shared item.
	DoorShuffleSimple
	// DoorShuffleFull shuffles every door item individually.
	DoorShuffleFull
)

// VictoryCondition selects which goal ends the game.
type VictoryCondition int

const (
	// VictoryTheEnd requires solving the endgame panel.
	VictoryTheEnd VictoryCondition = iota
	// VictoryTheMaster requires every achievement before the mastery panel.
	VictoryTheMaster
	// VictoryLevelTwo requires solving enough counting panels.
	VictoryLevelTwo
)

// LocationChecks selects how densely panels are mapped to checks.
type LocationChecks int

const (
	// LocationChecksNormal includes one check per panel group.
	LocationChecksNormal LocationChecks = iota
	// LocationChecksReduced includes the normal checks plus a few more.
	LocationChecksReduced
	// LocationChecksInsanity includes a check for every panel.
	LocationChecksInsanity
)

var (
	// ErrInvalidDoorShuffle indicates an out-of-range door shuffle mode.
	ErrInvalidDoorShuffle = errors.New("door shuffle mode must be off, simple, or full")
	// ErrInvalidVictoryCondition indicates an out-of-range victory condition.
	ErrInvalidVictoryCondition = errors.New("victory condition must be the end, the master, or level 2")
	// ErrInvalidLocationChecks indicates an out-of-range location density.
	ErrInvalidLocationChecks = errors.New("location checks must be normal, reduced, or insanity")
)

// Options is one player's resolved option snapshot.
type Options struct {
	DoorShuffle            DoorShuffle
	ColorShuffle           bool
	PaintingShuffle        bool
	VictoryCondition       VictoryCondition
	LocationChecks         LocationChecks
	ProgressiveOrangeTower bool
	DisableForcedGoodItem  bool

	// PlandoItems are pre-seeded placement directives supplied by the host
	// session. Generation only inspects them; placement happens downstream.
	PlandoItems []PlandoItem
}

// Validate checks that every option value is in range.
func (o Options) Validate() error {
	if o.DoorShuffle < DoorShuffleOff || o.DoorShuffle > DoorShuffleFull {
		return ErrInvalidDoorShuffle
	}
	if o.VictoryCondition < VictoryTheEnd || o.VictoryCondition > VictoryLevelTwo {
		return ErrInvalidVictoryCondition
	}
	if o.LocationChecks < LocationChecksNormal || o.LocationChecks > LocationChecksInsanity {
		return ErrInvalidLocationChecks
	}
	for _, directive := range o.PlandoItems {
		if err := directive.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// String returns the option name used in player-facing output.
func (d DoorShuffle) String() string {
	switch d {
	case DoorShuffleOff:
		return "off"
	case DoorShuffleSimple:
		return "simple"
	case DoorShuffleFull:
		return "full"
	default:
		return "unknown"
	}
}

// String returns the option name used in player-facing output.
func (v VictoryCondition) String() string {
	switch v {
	case VictoryTheEnd:
		return "the_end"
	case VictoryTheMaster:
		return "the_master"
	case VictoryLevelTwo:
		return "level_2"
	default:
		return "unknown"
	}
}

// String returns the option name used in player-facing output.
func (l LocationChecks) String() string {
	switch l {
	case LocationChecksNormal:
		return "normal"
	case LocationChecksReduced:
		return "reduced"
	case LocationChecksInsanity:
		return "insanity"
	default:
		return "unknown"
	}
}
