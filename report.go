package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const reportRule = "═══════════════════════════════════════"

// PrintPlan writes the day-by-day plan report to w.
func PrintPlan(w io.Writer, logs []TrainingDayLog) {
	for _, log := range logs {
		fmt.Fprintln(w)
		fmt.Fprintln(w, reportRule)
		fmt.Fprintf(w, "DATE: %s | SESSION: %s | %d min | %s\n",
			log.Date.Format("2006-01-02"), log.SessionID, log.Minutes, log.Intensity)
		if log.SessionID != SummaryID {
			fmt.Fprintf(w, "SCORE: %.2f | RISK: %.2f\n", log.Score, log.Risk)
		}
		fmt.Fprintln(w, log.Rationale)
	}
}

// PrintRanking writes a scored candidate table for a single day to w.
func PrintRanking(w io.Writer, ranked []ScoredCandidate) {
	fmt.Fprintln(w, reportRule)
	fmt.Fprintln(w, "  CANDIDATE RANKING")
	fmt.Fprintln(w, reportRule)
	for rank, c := range ranked {
		fmt.Fprintf(w, "%d. %-18s u=%8.2f  risk=%5.2f  %s\n",
			rank+1, c.Option.ID, c.Utility, c.Risk, c.Rationale())
		if c.Rejected() {
			continue
		}
		for _, n := range c.Notes {
			fmt.Fprintf(w, "     %s  %s\n", formatDelta(n.Delta), n.Rule)
		}
	}
}

// PrintCatalog lists the loaded options with their coefficients.
func PrintCatalog(w io.Writer, options []TrainingOption) {
	fmt.Fprintln(w, reportRule)
	fmt.Fprintf(w, "  SESSION CATALOG (%d options)\n", len(options))
	fmt.Fprintln(w, reportRule)
	for _, opt := range options {
		fmt.Fprintf(w, "\n%s\n", opt.Name)
		fmt.Fprintf(w, "  id: %s | intensity: %s | %d min (min %d)\n",
			opt.ID, opt.Intensity, opt.Minutes, opt.MinTime)
		fmt.Fprintf(w, "  benefit: %.2f | risk: %.2f", opt.BaseBenefit, opt.BaseRisk)
		if len(opt.Tags) > 0 {
			fmt.Fprintf(w, " | tags: %s", strings.Join(opt.Tags, ", "))
		}
		fmt.Fprintln(w)
	}
}

// WriteCSV exports the day logs as CSV with a header row. This is an
// export format for downstream tooling, not a store: nothing reads it back.
func WriteCSV(w io.Writer, logs []TrainingDayLog) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"date", "session_id", "minutes", "intensity", "score", "risk", "rationale"}); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, log := range logs {
		record := []string{
			log.Date.Format("2006-01-02"),
			log.SessionID,
			strconv.Itoa(log.Minutes),
			log.Intensity,
			strconv.FormatFloat(log.Score, 'f', 2, 64),
			strconv.FormatFloat(log.Risk, 'f', 2, 64),
			log.Rationale,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
