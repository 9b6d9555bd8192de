package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"text/tabwriter"
	"time"

	"biglife/internal/survey"
	"biglife/pkg/life"

	"github.com/cheggaaa/pb/v3"
)

func main() {
	steps := flag.Int("steps", 500, "generations to run per rule")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel rule evaluations")
	size := flag.Int("size", 48, "side of the square seeded around the origin")
	seed := flag.Int64("seed", 1337, "seed shared by every run")
	only := flag.String("rules", "", "comma-separated rules to run instead of every preset")
	flag.Parse()

	rules := life.PresetNames()
	if *only != "" {
		rules = strings.Split(*only, ",")
		for i := range rules {
			rules[i] = strings.TrimSpace(rules[i])
		}
	}

	base := life.DefaultConfig()
	base.Seed = *seed
	sc := survey.Square(*size)

	fmt.Printf("Surveying %d rules (%d workers, %d steps, %d toggles in %v)\n", len(rules), *workers, *steps, sc.Count, sc.Bounds)

	bar := pb.StartNew(len(rules))
	results, err := survey.Sweep(base, rules, sc, *steps, *workers, func(survey.RunResult) { bar.Increment() })
	bar.Finish()
	if err != nil {
		log.Fatal(err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RULE\tNOTATION\tOUTCOME\tGENS\tLIVE\tPEAK LIVE\tPEAK TRACKED\tTIME")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%v\n",
			r.Rule, r.Notation, r.Outcome, r.Generations, r.FinalLive, r.PeakLive, r.PeakTracked, r.Elapsed.Round(time.Millisecond))
	}
	tw.Flush()
}
