package static

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/louisbranch/lingogen/internal/options"
)

//go:embed data/ruleset.yaml
var defaultRuleset []byte

// fileConfig mirrors the yaml layout of a rule set file.
type fileConfig struct {
	PaintingEntrances int                `yaml:"painting_entrances"`
	PaintingExits     int                `yaml:"painting_exits"`
	Rooms             []roomConfig       `yaml:"rooms"`
	Locations         []locationConfig   `yaml:"locations"`
	Items             []itemConfig       `yaml:"items"`
	Progression       []progressionEntry `yaml:"progression"`
}

type roomConfig struct {
	Name      string     `yaml:"name"`
	Doors     []Door     `yaml:"doors"`
	Panels    []Panel    `yaml:"panels"`
	Paintings []Painting `yaml:"paintings"`
}

type locationConfig struct {
	Name           string         `yaml:"name"`
	Room           string         `yaml:"room"`
	Code           int            `yaml:"code"`
	Classification []string       `yaml:"classification"`
	Panels         []RoomAndPanel `yaml:"panels"`
}

type itemConfig struct {
	Name               string `yaml:"name"`
	Mode               string `yaml:"mode"`
	Grouped            bool   `yaml:"grouped"`
	NonProgressiveOnly bool   `yaml:"non_progressive_only"`
	Victory            string `yaml:"victory"`
}

type progressionEntry struct {
	Room  string `yaml:"room"`
	Door  string `yaml:"door"`
	Item  string `yaml:"item"`
	Index int    `yaml:"index"`
}

// Parse decodes and validates a yaml rule set.
func Parse(data []byte) (*Logic, error) {
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode rule set: %w", err)
	}

	logic := &Logic{
		PaintingEntrances: cfg.PaintingEntrances,
		PaintingExits:     cfg.PaintingExits,
		ProgressionByRoom: make(map[string]map[string]Progression),
	}

	for _, room := range cfg.Rooms {
		logic.Rooms = append(logic.Rooms, Room{
			Name:      room.Name,
			Doors:     room.Doors,
			Panels:    room.Panels,
			Paintings: room.Paintings,
		})
	}

	for _, loc := range cfg.Locations {
		classification, err := parseClassification(loc.Classification)
		if err != nil {
			return nil, fmt.Errorf("location %q: %w", loc.Name, err)
		}
		logic.AllLocations = append(logic.AllLocations, Location{
			Name:           loc.Name,
			Room:           loc.Room,
			Code:           loc.Code,
			Classification: classification,
			Panels:         loc.Panels,
		})
	}

	for _, item := range cfg.Items {
		parsed, err := parseItem(item)
		if err != nil {
			return nil, err
		}
		logic.AllItems = append(logic.AllItems, parsed)
	}

	for _, entry := range cfg.Progression {
		byDoor, ok := logic.ProgressionByRoom[entry.Room]
		if !ok {
			byDoor = make(map[string]Progression)
			logic.ProgressionByRoom[entry.Room] = byDoor
		}
		byDoor[entry.Door] = Progression{ItemName: entry.Item, Index: entry.Index}
	}

	logic.index()
	if err := logic.Validate(); err != nil {
		return nil, fmt.Errorf("validate rule set: %w", err)
	}
	return logic, nil
}

// Default returns the embedded base-game rule set.
func Default() (*Logic, error) {
	return Parse(defaultRuleset)
}

func parseClassification(tiers []string) (Classification, error) {
	var c Classification
	for _, tier := range tiers {
		switch strings.TrimSpace(tier) {
		case "normal":
			c |= ClassificationNormal
		case "reduced":
			c |= ClassificationReduced
		case "insanity":
			c |= ClassificationInsanity
		default:
			return 0, fmt.Errorf("unknown classification %q", tier)
		}
	}
	if c == 0 {
		return 0, fmt.Errorf("classification is required")
	}
	return c, nil
}

func parseItem(cfg itemConfig) (Item, error) {
	item := Item{
		Name:               cfg.Name,
		Grouped:            cfg.Grouped,
		NonProgressiveOnly: cfg.NonProgressiveOnly,
	}
	switch cfg.Mode {
	case "", "filler":
		item.Mode = ItemModeFiller
	case "door":
		item.Mode = ItemModeDoor
	case "door_group":
		item.Mode = ItemModeDoorGroup
	case "color":
		item.Mode = ItemModeColor
	case "goal":
		item.Mode = ItemModeGoal
	default:
		return Item{}, fmt.Errorf("item %q: unknown mode %q", cfg.Name, cfg.Mode)
	}
	if item.Mode == ItemModeGoal {
		switch cfg.Victory {
		case "the_end":
			item.Victory = options.VictoryTheEnd
		case "the_master":
			item.Victory = options.VictoryTheMaster
		case "level_2":
			item.Victory = options.VictoryLevelTwo
		default:
			return Item{}, fmt.Errorf("item %q: unknown victory gate %q", cfg.Name, cfg.Victory)
		}
	}
	return item, nil
}
