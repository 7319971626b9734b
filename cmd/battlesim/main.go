package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/lanewars/internal/config"
	"github.com/udisondev/lanewars/internal/data"
	"github.com/udisondev/lanewars/internal/game/battle"
	"github.com/udisondev/lanewars/internal/model"
)

const (
	ConfigPath      = "config/battlesim.yaml"
	eventBufferSize = 1024
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("LANEWARS_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadBattleSim(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: config.ParseLogLevel(cfg.LogLevel),
	})))

	reg, err := data.LoadRegistry(cfg.DataPath)
	if err != nil {
		return fmt.Errorf("loading tables: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	slog.Info("battlesim starting",
		"matches", cfg.Matches,
		"parallelism", cfg.Parallelism,
		"seed", seed,
		"tick_ms", cfg.TickMs)

	var (
		mu      sync.Mutex
		results = make([]battle.Result, 0, cfg.Matches)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallelism)
	for i := range cfg.Matches {
		matchSeed := seed + uint64(i)
		g.Go(func() error {
			res, events, err := runMatch(gctx, reg, cfg, matchSeed)
			if err != nil {
				return err
			}

			slog.Info("match finished",
				"match", res.ID,
				"seed", res.Seed,
				"winner", res.Winner,
				"decided", res.Decided,
				"duration", res.Duration,
				"events", events)

			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("running matches: %w", err)
	}

	summarize(results)
	return nil
}

// runMatch simulates one match and counts the effect events it produced.
func runMatch(ctx context.Context, reg *data.Registry, cfg config.BattleSim, seed uint64) (battle.Result, int, error) {
	buf := battle.NewEventBuffer(eventBufferSize)

	counted := make(chan int, 1)
	go func() {
		n := 0
		for range buf.Events() {
			n++
		}
		counted <- n
	}()

	res, err := battle.RunMatch(ctx, reg, cfg, seed, battle.WithSink(buf.Sink()))
	buf.Close()
	n := <-counted

	if dropped := buf.Dropped(); dropped > 0 {
		slog.Warn("effect events dropped", "match", res.ID, "dropped", dropped)
	}
	return res, n + int(buf.Dropped()), err
}

func summarize(results []battle.Result) {
	wins := map[model.Faction]int{}
	var (
		undecided int
		total     time.Duration
	)
	for _, r := range results {
		total += r.Duration
		if !r.Decided {
			undecided++
			continue
		}
		wins[r.Winner]++
	}

	var avg time.Duration
	if len(results) > 0 {
		avg = total / time.Duration(len(results))
	}
	slog.Info("battlesim finished",
		"matches", len(results),
		"west_wins", wins[model.FactionWest],
		"east_wins", wins[model.FactionEast],
		"undecided", undecided,
		"avg_duration", avg.Round(time.Millisecond))
}
