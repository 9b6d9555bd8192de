package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"biglife/internal/survey"
	"biglife/pkg/life"

	"github.com/gernest/wow"
	"github.com/gernest/wow/spin"
)

func main() {
	def := life.DefaultConfig()
	rule := flag.String("rule", def.Rule, "rule preset name or B/S notation")
	seed := flag.Int64("seed", def.Seed, "seed for the random fill")
	size := flag.Int("size", 64, "side of the square seeded around the origin")
	count := flag.Int("count", 0, "random toggles to issue (default size*size)")
	steps := flag.Int("steps", 1000, "maximum generations to run")
	workers := flag.Int("workers", def.Workers, "goroutines for large generations")
	check := flag.Bool("check", false, "verify engine invariants after every generation")
	flag.Parse()

	cfg := def
	cfg.Rule = *rule
	cfg.Seed = *seed
	cfg.Workers = *workers

	sc := survey.Square(*size)
	if *count > 0 {
		sc.Count = *count
	}

	w := wow.New(os.Stderr, spin.Get(spin.Dots), " seeding")
	w.Start()
	observe := func(e *life.Engine) {
		if e.Generation()%50 == 0 {
			w.Text(fmt.Sprintf(" generation %d, %d live", e.Generation(), e.LiveCellCount()))
		}
		if *check {
			if err := e.CheckInvariants(); err != nil {
				w.Stop()
				log.Fatalf("generation %d: %v", e.Generation(), err)
			}
		}
	}
	res, err := survey.Run(cfg, sc, *steps, observe)
	if err != nil {
		w.Stop()
		log.Fatal(err)
	}
	w.PersistWith(spin.Spinner{Frames: []string{"✔"}}, fmt.Sprintf(" %s after %d generations", res.Outcome, res.Generations))

	fmt.Printf("Rule: %s (%s)\n", res.Rule, res.Notation)
	fmt.Printf("Seeded %d toggles in %v, %d live\n", sc.Count, sc.Bounds, res.InitialLive)
	fmt.Printf("Outcome: %s after %d generations in %v\n", res.Outcome, res.Generations, res.Elapsed.Round(time.Microsecond))
	fmt.Printf("Live cells: %d (peak %d), peak tracked %d\n", res.FinalLive, res.PeakLive, res.PeakTracked)
	if res.FinalLive > 0 {
		fmt.Printf("Bounds: %v\n", res.Bounds)
	}
}
