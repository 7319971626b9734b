package battle

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/udisondev/lanewars/internal/config"
	"github.com/udisondev/lanewars/internal/data"
	"github.com/udisondev/lanewars/internal/model"
)

// ctxCheckEvery is how many ticks run between context checks.
const ctxCheckEvery = 256

// Result is the outcome of one simulated match.
type Result struct {
	ID       uuid.UUID
	Seed     uint64
	Winner   model.Faction // AnyFaction if undecided
	Decided  bool
	Ticks    int
	Duration time.Duration // simulated

	Survivors map[model.Faction]int
	Gold      map[model.Faction]float64
}

// Deploy places both armies of cfg on the battlefield and enables their researched upgrades.
func (e *Engine) Deploy(armies []config.Army) error {
	for _, army := range armies {
		faction, ok := model.ParseFaction(army.Faction)
		if !ok {
			return fmt.Errorf("army: unknown faction %q", army.Faction)
		}

		for _, id := range army.Upgrades {
			e.Research(faction, id)
		}

		placements := army.Units
		if army.Stronghold.Type != "" {
			placements = append([]config.Placement{army.Stronghold}, placements...)
		}
		for _, p := range placements {
			if _, err := e.Spawn(p.Type, faction, model.NewVec2(p.X, p.Y)); err != nil {
				return fmt.Errorf("army %s: %w", army.Faction, err)
			}
		}
	}
	return nil
}

// RunMatch simulates one match from cfg until a stronghold falls, MaxDuration of
// simulated time passes, or ctx is cancelled.
func RunMatch(ctx context.Context, reg *data.Registry, cfg config.BattleSim, seed uint64, opts ...Option) (Result, error) {
	res := Result{
		ID:        uuid.New(),
		Seed:      seed,
		Survivors: make(map[model.Faction]int, 2),
		Gold:      make(map[model.Faction]float64, 2),
	}

	e := New(reg, cfg.Engine, append([]Option{WithSeed(seed)}, opts...)...)
	if err := e.Deploy(cfg.Armies); err != nil {
		return res, fmt.Errorf("match %s: %w", res.ID, err)
	}

	delta := cfg.TickDelta()
	maxTicks := int(math.Round(cfg.MaxDuration.Seconds() / delta))

	slog.Debug("match started",
		"match", res.ID,
		"seed", seed,
		"units", e.World().Count())

	for res.Ticks < maxTicks && !e.Over() {
		if res.Ticks%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return res, fmt.Errorf("match %s: %w", res.ID, err)
			}
		}
		e.Tick(delta)
		res.Ticks++
	}

	res.Duration = time.Duration(e.Now() * float64(time.Second))
	res.Winner, res.Decided = e.Winner()
	for _, f := range []model.Faction{model.FactionWest, model.FactionEast} {
		res.Survivors[f] = len(e.World().Units(f))
		res.Gold[f] = e.Treasury().Gold(f)
	}

	slog.Debug("match finished",
		"match", res.ID,
		"winner", res.Winner,
		"decided", res.Decided,
		"ticks", res.Ticks)
	return res, nil
}
