package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// BattleSim holds all configuration for the headless battle simulator.
type BattleSim struct {
	LogLevel string `yaml:"log_level"`

	// DataPath points to optional YAML ability/unit tables overlaid on the built-in ones.
	DataPath string `yaml:"data_path"`

	// Batch
	Seed        uint64        `yaml:"seed"` // 0 = derive from wall clock
	Matches     int           `yaml:"matches"`
	Parallelism int           `yaml:"parallelism"`
	TickMs      int           `yaml:"tick_ms"`
	MaxDuration time.Duration `yaml:"max_duration"` // simulated time per match

	Engine Engine `yaml:"engine"`
	Armies []Army `yaml:"armies"`
}

// Engine holds combat engine tunables.
type Engine struct {
	ArmorFactor         float64  `yaml:"armor_factor"`
	DeadHistoryCapacity int      `yaml:"dead_history_capacity"`
	MaxLinkMembers      int      `yaml:"max_link_members"`
	Autocast            Autocast `yaml:"autocast"`
}

// Autocast holds the thresholds of autocast heuristics.
type Autocast struct {
	HealBelow          float64 `yaml:"heal_below"` // health fraction
	GroupBuffMinAllies int     `yaml:"group_buff_min_allies"`
	DebuffMinEnemies   int     `yaml:"debuff_min_enemies"`
	TauntMinEnemies    int     `yaml:"taunt_min_enemies"`
}

// Army is the initial formation of one faction.
type Army struct {
	Faction    string      `yaml:"faction"`
	Stronghold Placement   `yaml:"stronghold"`
	Units      []Placement `yaml:"units"`

	// Upgrades lists researched ability ids: upgrade-gated abilities start enabled.
	Upgrades []string `yaml:"upgrades"`
}

// Placement is one unit on the staging grid.
type Placement struct {
	Type string  `yaml:"type"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// TickDelta returns the simulation step in seconds.
func (c BattleSim) TickDelta() float64 {
	return float64(c.TickMs) / 1000
}

// DefaultEngine returns engine tunables with sensible defaults.
func DefaultEngine() Engine {
	return Engine{
		ArmorFactor:         0.06,
		DeadHistoryCapacity: 20,
		MaxLinkMembers:      4,
		Autocast: Autocast{
			HealBelow:          0.70,
			GroupBuffMinAllies: 3,
			DebuffMinEnemies:   3,
			TauntMinEnemies:    2,
		},
	}
}

// DefaultBattleSim returns BattleSim config with sensible defaults.
func DefaultBattleSim() BattleSim {
	return BattleSim{
		LogLevel:    "info",
		Matches:     8,
		Parallelism: 4,
		TickMs:      50,
		MaxDuration: 10 * time.Minute,
		Engine:      DefaultEngine(),
		Armies: []Army{
			{
				Faction:    "west",
				Stronghold: Placement{Type: "stronghold", X: 0, Y: 0},
				Units: []Placement{
					{Type: "footman", X: 120, Y: -40},
					{Type: "footman", X: 120, Y: 40},
					{Type: "juggernaut", X: 110, Y: 0},
					{Type: "archer", X: 80, Y: -30},
					{Type: "archer", X: 80, Y: 30},
					{Type: "weaver", X: 60, Y: 0},
					{Type: "cleric", X: 50, Y: 20},
				},
				Upgrades: []string{"unstable_shield", "scorched_earth"},
			},
			{
				Faction:    "east",
				Stronghold: Placement{Type: "stronghold", X: 1200, Y: 0},
				Units: []Placement{
					{Type: "warden", X: 1080, Y: 0},
					{Type: "raider", X: 1090, Y: -40},
					{Type: "raider", X: 1090, Y: 40},
					{Type: "archer", X: 1120, Y: -30},
					{Type: "shaman", X: 1140, Y: 0},
					{Type: "necromancer", X: 1150, Y: 30},
					{Type: "footman", X: 1100, Y: 60},
				},
				Upgrades: []string{"thick_hide"},
			},
		},
	}
}

// LoadBattleSim loads simulator config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadBattleSim(path string) (BattleSim, error) {
	cfg := DefaultBattleSim()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c BattleSim) Validate() error {
	var errs []error
	if c.Matches < 1 {
		errs = append(errs, fmt.Errorf("matches must be >= 1, got %d", c.Matches))
	}
	if c.Parallelism < 1 {
		errs = append(errs, fmt.Errorf("parallelism must be >= 1, got %d", c.Parallelism))
	}
	if c.TickMs < 1 || c.TickMs > 1000 {
		errs = append(errs, fmt.Errorf("tick_ms must be in 1..1000, got %d", c.TickMs))
	}
	if c.MaxDuration <= 0 {
		errs = append(errs, fmt.Errorf("max_duration must be positive"))
	}
	if c.Engine.ArmorFactor <= 0 {
		errs = append(errs, fmt.Errorf("engine.armor_factor must be positive, got %g", c.Engine.ArmorFactor))
	}
	if c.Engine.MaxLinkMembers < 2 {
		errs = append(errs, fmt.Errorf("engine.max_link_members must be >= 2, got %d", c.Engine.MaxLinkMembers))
	}
	if h := c.Engine.Autocast.HealBelow; h <= 0 || h > 1 {
		errs = append(errs, fmt.Errorf("engine.autocast.heal_below must be in (0, 1], got %g", h))
	}
	if len(c.Armies) != 2 {
		errs = append(errs, fmt.Errorf("exactly 2 armies required, got %d", len(c.Armies)))
	}
	return errors.Join(errs...)
}

// ParseLogLevel maps a config string to slog.Level (default info).
func ParseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
