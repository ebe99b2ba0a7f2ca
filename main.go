package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		return
	}

	command := os.Args[1]

	switch command {
	case "plan":
		handlePlan(os.Args[2:])
	case "demo":
		handleDemo(os.Args[2:])
	case "score":
		handleScore(os.Args[2:])
	case "catalog":
		handleCatalog(os.Args[2:])
	case "config":
		handleConfig(os.Args[2:])
	case "version", "--version", "-v":
		fmt.Printf("quantumdice version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`quantumdice - Daily training session decision engine

USAGE:
    quantumdice <command> [options]

COMMANDS:
    plan                Plan a week of sessions from a week file
    demo                Plan the built-in example week (seeded, reproducible)
    score               Rank all catalog options for a single day's state
    catalog             List the loaded session catalog
    config              Show current configuration
    version             Show version information
    help                Show this help message

PLAN OPTIONS:
    --week FILE         Week file (YAML) with one athlete state per day
    --start DATE        Start date (2006-01-02), overrides the week file
    --catalog DIR       Catalog directory (empty = built-in catalog)
    --temperature T     Softmax temperature, lower = more greedy
    --exploration E     Probability of a probabilistic pick [0,1)
    --risk-aversion R   Weight on risk in utility
    --seed N            Integer seed for reproducible runs
    --top K             Ranked candidates to report per day
    --csv FILE          Export the day logs as CSV

SCORE OPTIONS:
    --fatigue F         Fatigue 0-10
    --soreness S        Soreness 0-10
    --pain P            Injury pain 0-10 (4+ = alarm)
    --sleep H           Sleep hours
    --stress S          Stress 0-10
    --time MINS         Available time in minutes
    --goal GOAL         Training goal (ultra, half, cut)

CATALOG:
    Sessions load from *.yaml group files in $QUANTUMDICE_CATALOG_DIR,
    falling back to the built-in catalog.

EXAMPLES:
    quantumdice demo                          # Reproducible example week
    quantumdice plan --week week.yaml --seed 42
    quantumdice plan --week week.yaml --exploration 0 --temperature 0.01
    quantumdice score --pain 4.5 --time 90    # What would today look like?
    quantumdice catalog
`)
}

// Command handlers are implemented in commands.go
