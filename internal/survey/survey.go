// Package survey runs deterministic headless simulations and compares rule
// presets from a shared starting pattern.
package survey

import (
	"fmt"
	"sync"
	"time"

	"biglife/pkg/life"
)

// Outcome classifies how a run ended.
type Outcome string

const (
	// OutcomeRunning means the step budget ran out while cells still changed.
	OutcomeRunning Outcome = "running"
	// OutcomeStable means a generation changed no cell.
	OutcomeStable Outcome = "stable"
	// OutcomeExtinct means the population died out.
	OutcomeExtinct Outcome = "extinct"
)

// Scenario describes the random starting pattern.
type Scenario struct {
	Bounds life.Rect
	Count  int
}

// Square returns a scenario seeding size*size toggles into a size x size
// square centred on the origin.
func Square(size int) Scenario {
	h := size / 2
	return Scenario{Bounds: life.R(-h, -h, size-h, size-h), Count: size * size}
}

// RunResult captures telemetry from one deterministic run.
type RunResult struct {
	Rule     string
	Notation string
	Outcome  Outcome
	// Generations counts the generations that changed at least one cell.
	Generations int
	// InitialLive is the population right after seeding.
	InitialLive int
	FinalLive   int
	// PeakLive and PeakTracked are the largest live and tracked counts seen
	// after any generation, seeding included.
	PeakLive    int
	PeakTracked int
	Bounds      life.Rect
	Elapsed     time.Duration
}

// Run seeds an engine built from cfg and steps it until the budget is spent,
// a fixed point is reached or the population dies out. The engine is handed
// to observe after every generation when observe is not nil.
func Run(cfg life.Config, sc Scenario, steps int, observe func(*life.Engine)) (RunResult, error) {
	e, err := life.New(cfg)
	if err != nil {
		return RunResult{}, err
	}
	start := time.Now()
	e.SeedRandom(sc.Bounds, sc.Count)

	res := RunResult{
		Rule:        e.RuleName(),
		Notation:    e.Rule().String(),
		Outcome:     OutcomeRunning,
		InitialLive: e.LiveCellCount(),
		PeakLive:    e.LiveCellCount(),
		PeakTracked: e.TrackedCellCount(),
	}
	if e.LiveCellCount() == 0 {
		res.Outcome = OutcomeExtinct
	}
	for step := 0; step < steps && res.Outcome == OutcomeRunning; step++ {
		r := e.Step()
		switch {
		case r.Extinct:
			res.Outcome = OutcomeExtinct
		case !r.Advanced:
			res.Outcome = OutcomeStable
		}
		res.PeakLive = max(res.PeakLive, e.LiveCellCount())
		res.PeakTracked = max(res.PeakTracked, e.TrackedCellCount())
		if observe != nil {
			observe(e)
		}
	}
	res.Generations = e.Generation()
	res.FinalLive = e.LiveCellCount()
	res.Bounds, _ = e.AliveBounds()
	res.Elapsed = time.Since(start)
	return res, nil
}

// Sweep runs the scenario once per named rule with at most workers runs in
// flight. Results come back in the order of rules; done is called from the
// worker goroutines as each run finishes.
func Sweep(base life.Config, rules []string, sc Scenario, steps, workers int, done func(RunResult)) ([]RunResult, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]RunResult, len(rules))
	errs := make([]error, len(rules))

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for idx, rule := range rules {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, rule string) {
			defer wg.Done()
			defer func() { <-sem }()
			cfg := base
			cfg.Rule = rule
			// A sweep already saturates the workers; keep each run sequential.
			cfg.ParallelThreshold = 0
			res, err := Run(cfg, sc, steps, nil)
			if err != nil {
				errs[i] = fmt.Errorf("survey %q: %w", rule, err)
				return
			}
			results[i] = res
			if done != nil {
				done(res)
			}
		}(idx, rule)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
