// Package main provides a CLI for generating one player's world: it
// loads the rule set, runs generation with the requested options, prints
// the slot data payload, and optionally records the run in a local
// database.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/louisbranch/lingogen/internal/generate"
	"github.com/louisbranch/lingogen/internal/options"
	"github.com/louisbranch/lingogen/internal/platform/config"
	"github.com/louisbranch/lingogen/internal/static"
	"github.com/louisbranch/lingogen/internal/storage"
	"github.com/louisbranch/lingogen/internal/storage/sqlite"
	"github.com/louisbranch/lingogen/internal/telemetry"
)

type envConfig struct {
	// DBPath is the sqlite database used to record generation runs.
	// Empty disables persistence.
	DBPath string `env:"LINGOGEN_DB_PATH"`
}

func main() {
	var cfg envConfig
	if err := config.ParseEnv(&cfg); err != nil {
		config.Exitf("load config: %v", err)
	}

	var (
		slotName    string
		seed        int64
		rulesetPath string
		dbPath      string

		doorShuffle     string
		colorShuffle    bool
		paintingShuffle bool
		victory         string
		locationChecks  string
		plainTower      bool
		noGoodItem      bool
	)

	flag.StringVar(&slotName, "slot", "", "slot name for this player (required)")
	flag.Int64Var(&seed, "seed", 0, "random seed for reproducibility (0 = random)")
	flag.StringVar(&rulesetPath, "ruleset", "", "path to a rule set YAML file (default: embedded)")
	flag.StringVar(&dbPath, "db", cfg.DBPath, "sqlite database to record runs (empty = no persistence)")

	flag.StringVar(&doorShuffle, "doors", "off", "door shuffle mode (off, simple, full)")
	flag.BoolVar(&colorShuffle, "colors", false, "shuffle colors")
	flag.BoolVar(&paintingShuffle, "paintings", false, "shuffle painting warps")
	flag.StringVar(&victory, "victory", "the_end", "victory condition (the_end, the_master, level_2)")
	flag.StringVar(&locationChecks, "checks", "normal", "location check density (normal, reduced, insanity)")
	flag.BoolVar(&plainTower, "plain-tower", false, "use plain tower floor keys instead of progressive ones")
	flag.BoolVar(&noGoodItem, "no-good-item", false, "skip the forced good item")

	flag.Parse()

	if slotName == "" {
		config.Exitf("missing required -slot flag")
	}

	opts, err := parseOptions(doorShuffle, victory, locationChecks)
	if err != nil {
		config.Exitf("%v", err)
	}
	opts.ColorShuffle = colorShuffle
	opts.PaintingShuffle = paintingShuffle
	opts.ProgressiveOrangeTower = !plainTower
	opts.DisableForcedGoodItem = noGoodItem

	tables, err := loadTables(rulesetPath)
	if err != nil {
		config.Exitf("load rule set: %v", err)
	}

	var store storage.GenerationStore
	var emitter *telemetry.Emitter
	if dbPath != "" {
		db, err := sqlite.Open(dbPath)
		if err != nil {
			config.Exitf("open database: %v", err)
		}
		defer db.Close()
		store = db
		emitter = telemetry.NewEmitter(db)
	}

	svc := generate.New(tables, store, emitter)
	result, err := svc.Generate(context.Background(), generate.Request{
		SlotName: slotName,
		Seed:     seed,
		Options:  opts,
	})
	if err != nil {
		config.Exitf("generate: %v", err)
	}

	payload, err := result.SlotData.Marshal()
	if err != nil {
		config.Exitf("encode slot data: %v", err)
	}

	fmt.Fprintf(os.Stderr, "slot %q generated with seed %d (%d locations, %d items)\n",
		slotName, result.Seed, len(result.Logic.RealLocations), len(result.Logic.RealItems))
	if result.RecordID != "" {
		fmt.Fprintf(os.Stderr, "recorded run %s in %s\n", result.RecordID, dbPath)
	}
	fmt.Println(string(payload))
}

func loadTables(path string) (*static.Logic, error) {
	if path == "" {
		return static.Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return static.Parse(raw)
}

func parseOptions(doors, victory, checks string) (options.Options, error) {
	var opts options.Options

	switch doors {
	case "off":
		opts.DoorShuffle = options.DoorShuffleOff
	case "simple":
		opts.DoorShuffle = options.DoorShuffleSimple
	case "full":
		opts.DoorShuffle = options.DoorShuffleFull
	default:
		return opts, fmt.Errorf("unknown door shuffle mode %q", doors)
	}

	switch victory {
	case "the_end":
		opts.VictoryCondition = options.VictoryTheEnd
	case "the_master":
		opts.VictoryCondition = options.VictoryTheMaster
	case "level_2":
		opts.VictoryCondition = options.VictoryLevelTwo
	default:
		return opts, fmt.Errorf("unknown victory condition %q", victory)
	}

	switch checks {
	case "normal":
		opts.LocationChecks = options.LocationChecksNormal
	case "reduced":
		opts.LocationChecks = options.LocationChecksReduced
	case "insanity":
		opts.LocationChecks = options.LocationChecksInsanity
	default:
		return opts, fmt.Errorf("unknown location check density %q", checks)
	}

	return opts, nil
}
