package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"chrono-ghost/internal/app"
	"chrono-ghost/internal/config"
	"chrono-ghost/internal/logging"
	"chrono-ghost/internal/sims/sand"
	"chrono-ghost/internal/sweep"

	"go.uber.org/zap"
)

func main() {
	steps := flag.Int("steps", 600, "ticks to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("width", 160, "grid width for sweep runs")
	height := flag.Int("height", 120, "grid height for sweep runs")
	seed := flag.Int64("seed", 1337, "first seed")
	seeds := flag.Int("seeds", 4, "number of consecutive seeds per variant")
	top := flag.Int("top", 5, "results to print")
	var overrides, vary app.KVList
	flag.Var(&overrides, "set", "base parameter override in key=value form (repeatable)")
	flag.Var(&vary, "vary", "parameter values to sweep in key=v1,v2 form (repeatable)")
	flag.Parse()

	log, err := logging.New(config.LoggingConfig{Level: "info", Format: "console"})
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	cfg := sand.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg = sand.ApplyMap(cfg, overrides.Map())

	values, err := parseVary(vary.Map())
	if err != nil {
		log.Fatal("bad -vary", zap.Error(err))
	}
	seedList := make([]int64, max(*seeds, 1))
	for i := range seedList {
		seedList[i] = *seed + int64(i)
	}
	scenarios := sweep.Grid(cfg.Params, seedList, values)

	fmt.Printf("Sweeping %d scenarios (%d workers, %d steps, %dx%d)\n", len(scenarios), *workers, *steps, cfg.Width, cfg.Height)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := sweep.Run(ctx, cfg, scenarios, *steps, *workers)
	if err != nil {
		log.Fatal("sweep", zap.Error(err))
	}
	elapsed := time.Since(start)

	var ticks int
	for _, r := range results {
		ticks += r.Ticks
	}
	sweep.Rank(results)

	fmt.Printf("\nTop %d results (elapsed %s, %.0f ticks/s overall):\n", min(*top, len(results)), elapsed.Round(time.Millisecond), float64(ticks)/elapsed.Seconds())
	for i := 0; i < len(results) && i < *top; i++ {
		printResult(i+1, results[i])
	}
}

func printResult(rank int, r sweep.Result) {
	var parts []string
	for _, m := range sand.Materials() {
		if m == sand.Empty || r.Census[m] == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%d", m, r.Census[m]))
	}
	label := r.Scenario.Label
	if label == "" {
		label = "base"
	}
	fmt.Printf("%2d) seed=%d particles=%d blasts=%d %.0f ticks/s [%s] %s\n",
		rank, r.Scenario.Seed, r.Particles(), r.Blasts, r.TicksPerSecond(), label, strings.Join(parts, " "))
}

func parseVary(raw map[string]string) (map[string][]float64, error) {
	out := make(map[string][]float64, len(raw))
	for key, list := range raw {
		for _, field := range strings.Split(list, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			out[key] = append(out[key], v)
		}
	}
	return out, nil
}
