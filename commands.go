package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"
)

var appConfig = DefaultConfig()

// engineFlags registers the shared engine tuning flags on fs and returns
// pointers to the bound values.
func engineFlags(fs *flag.FlagSet) (temperature, exploration, riskAversion *float64, topK *int, seed *string) {
	temperature = fs.Float64("temperature", defaultTemperature, "Softmax temperature (lower = more greedy)")
	exploration = fs.Float64("exploration", 0.12, "Probability of a probabilistic pick [0,1)")
	riskAversion = fs.Float64("risk-aversion", defaultRiskAversion, "Weight on risk in utility")
	topK = fs.Int("top", defaultTopK, "Ranked candidates to report per day")
	seed = fs.String("seed", "", "Integer seed for reproducible runs (empty = time-seeded)")
	return
}

func buildEngine(temperature, exploration, riskAversion float64, topK int, seed string) (*Engine, error) {
	cfg := EngineConfig{
		Temperature:  temperature,
		Exploration:  exploration,
		RiskAversion: riskAversion,
		TopK:         topK,
	}
	if seed != "" {
		s, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid seed %q: %w", seed, err)
		}
		cfg.Seed = &s
	}
	return NewEngine(cfg)
}

// handlePlan implements the 'plan' command.
func handlePlan(args []string) {
	fs := flag.NewFlagSet("plan", flag.ExitOnError)

	weekPath := fs.String("week", "", "Week file (YAML) with one athlete state per day")
	startStr := fs.String("start", "", "Start date (2006-01-02), overrides the week file")
	catalogDir := fs.String("catalog", appConfig.CatalogDir, "Catalog directory (empty = built-in catalog)")
	csvPath := fs.String("csv", "", "Export the day logs as CSV to this file")
	temperature, exploration, riskAversion, topK, seed := engineFlags(fs)

	fs.Parse(args)

	if *weekPath == "" {
		fmt.Fprintln(os.Stderr, "Error: --week FILE is required (or use 'quantumdice demo')")
		os.Exit(1)
	}

	week, err := LoadWeekFile(*weekPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading week file: %v\n", err)
		os.Exit(1)
	}

	start := week.StartDate()
	if *startStr != "" {
		start, err = time.Parse("2006-01-02", *startStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid start date %q: %v\n", *startStr, err)
			os.Exit(1)
		}
	}

	options, err := LoadCatalog(*catalogDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	engine, err := buildEngine(*temperature, *exploration, *riskAversion, *topK, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logs, _, err := PlanWeek(start, week.Days, options, engine)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error planning week: %v\n", err)
		os.Exit(1)
	}

	PrintPlan(os.Stdout, logs)

	if *csvPath != "" {
		if err := writeCSVFile(*csvPath, logs); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nExported %d records to %s\n", len(logs), *csvPath)
	}
}

// handleDemo implements the 'demo' command: the built-in example week of a
// tired ultra athlete with limited time on most days.
func handleDemo(args []string) {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	csvPath := fs.String("csv", "", "Export the day logs as CSV to this file")
	fs.Parse(args)

	states := demoWeek()

	seed := int64(42)
	engine, err := NewEngine(EngineConfig{
		Temperature:  0.60, // less chaos
		Exploration:  0.10,
		RiskAversion: 1.45, // punish risk harder
		Seed:         &seed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	logs, _, err := PlanWeek(start, states, DefaultCatalog(), engine)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error planning week: %v\n", err)
		os.Exit(1)
	}

	PrintPlan(os.Stdout, logs)

	if *csvPath != "" {
		if err := writeCSVFile(*csvPath, logs); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nExported %d records to %s\n", len(logs), *csvPath)
	}
}

// demoWeek is a week where the athlete is tired, somewhat stressed, and
// often has only 45-60 minutes.
func demoWeek() []AthleteState {
	return []AthleteState{
		{Fatigue: 6.5, Soreness: 5.0, Pain: 2.0, SleepHours: 6.0, Stress: 6.0, TimeMinutes: 50, Goal: "ultra"},
		{Fatigue: 7.5, Soreness: 6.0, Pain: 3.0, SleepHours: 5.5, Stress: 7.0, TimeMinutes: 40, Goal: "ultra"},
		{Fatigue: 5.5, Soreness: 4.0, Pain: 2.0, SleepHours: 7.2, Stress: 5.0, TimeMinutes: 70, Goal: "ultra"},
		{Fatigue: 6.0, Soreness: 5.0, Pain: 4.5, SleepHours: 6.5, Stress: 6.0, TimeMinutes: 60, Goal: "ultra"}, // pain>=4 => brakes on
		{Fatigue: 4.5, Soreness: 3.5, Pain: 2.0, SleepHours: 7.8, Stress: 4.0, TimeMinutes: 110, Goal: "ultra"},
		{Fatigue: 6.0, Soreness: 5.0, Pain: 2.5, SleepHours: 6.8, Stress: 5.0, TimeMinutes: 45, Goal: "ultra"},
		{Fatigue: 5.0, Soreness: 4.0, Pain: 2.0, SleepHours: 7.0, Stress: 4.5, TimeMinutes: 70, Goal: "ultra"},
	}
}

// handleScore implements the 'score' command: rank every catalog option
// for a single day's state against a fresh microcycle.
func handleScore(args []string) {
	fs := flag.NewFlagSet("score", flag.ExitOnError)

	fatigue := fs.Float64("fatigue", 5.0, "Fatigue 0-10")
	soreness := fs.Float64("soreness", 3.0, "Soreness 0-10")
	pain := fs.Float64("pain", 0.0, "Injury pain 0-10 (4+ = alarm)")
	sleep := fs.Float64("sleep", 7.0, "Sleep hours")
	stress := fs.Float64("stress", 5.0, "Stress 0-10")
	timeMin := fs.Int("time", 60, "Available time in minutes")
	goal := fs.String("goal", "ultra", "Training goal (ultra, half, cut)")
	catalogDir := fs.String("catalog", appConfig.CatalogDir, "Catalog directory (empty = built-in catalog)")
	riskAversion := fs.Float64("risk-aversion", defaultRiskAversion, "Weight on risk in utility")

	fs.Parse(args)

	options, err := LoadCatalog(*catalogDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	state := AthleteState{
		Fatigue:     *fatigue,
		Soreness:    *soreness,
		Pain:        *pain,
		SleepHours:  *sleep,
		Stress:      *stress,
		TimeMinutes: *timeMin,
		Goal:        *goal,
	}

	now := time.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	ranked := make([]ScoredCandidate, len(options))
	for i, opt := range options {
		ranked[i] = scoreOption(opt, state, MicroCycleStats{}, day, *riskAversion)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Utility > ranked[j].Utility
	})

	PrintRanking(os.Stdout, ranked)
}

// handleCatalog implements the 'catalog' command.
func handleCatalog(args []string) {
	fs := flag.NewFlagSet("catalog", flag.ExitOnError)
	catalogDir := fs.String("catalog", appConfig.CatalogDir, "Catalog directory (empty = built-in catalog)")
	fs.Parse(args)

	options, err := LoadCatalog(*catalogDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	PrintCatalog(os.Stdout, options)
}

// handleConfig implements the 'config' command.
func handleConfig(args []string) {
	cfg := appConfig

	fmt.Println(reportRule)
	fmt.Println("  QUANTUMDICE CONFIGURATION")
	fmt.Println(reportRule)
	fmt.Println()

	if cfg.CatalogDir == "" {
		fmt.Println("Catalog:          built-in")
		fmt.Println()
		fmt.Println("To use a custom catalog directory:")
		fmt.Println("  export QUANTUMDICE_CATALOG_DIR=/path/to/your/catalog")
	} else {
		fmt.Printf("Catalog:          %s\n", cfg.CatalogDir)
		options, err := LoadCatalog(cfg.CatalogDir)
		if err != nil {
			fmt.Printf("Warning: error loading catalog: %v\n", err)
		} else {
			fmt.Printf("Found %d training options\n", len(options))
		}
	}
	fmt.Println()
	fmt.Printf("Engine defaults:  temperature=%.2f exploration=%.2f risk-aversion=%.2f top=%d\n",
		defaultTemperature, 0.12, defaultRiskAversion, defaultTopK)
}

func writeCSVFile(path string, logs []TrainingDayLog) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteCSV(f, logs)
}
