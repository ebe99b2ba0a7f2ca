package main

import (
	"fmt"
	"strings"
	"time"
)

// Deficiency thresholds for the end-of-cycle diagnosis.
const (
	diagnoseRunDays      = 3
	diagnoseStrengthDays = 2
	diagnoseQualityDays  = 1
	diagnoseLongRuns     = 1
)

// PlanWeek runs the engine over one athlete state per day, starting at
// start. Day N scores against exactly the statistics committed by days
// 1..N-1; the stats are owned by this run and mutated once per day.
// The returned log carries one entry per day plus a trailing summary
// record (SessionID == SummaryID) dated one day past the last planned day.
func PlanWeek(start time.Time, states []AthleteState, options []TrainingOption, engine *Engine) ([]TrainingDayLog, MicroCycleStats, error) {
	if err := ValidateCatalog(options); err != nil {
		return nil, MicroCycleStats{}, err
	}

	var stats MicroCycleStats
	logs := make([]TrainingDayLog, 0, len(states)+1)

	for i, state := range states {
		day := start.AddDate(0, 0, i)

		chosen, top, err := engine.Choose(options, state, stats, day)
		if err != nil {
			return nil, stats, err
		}

		// Score the pick once more so the log carries exactly the values
		// the selector ranked it with on this day.
		verdict := engine.Score(chosen, state, stats, day)

		logs = append(logs, TrainingDayLog{
			Date:      day,
			SessionID: chosen.ID,
			Minutes:   chosen.Minutes,
			Intensity: chosen.Intensity,
			Score:     verdict.Utility,
			Risk:      verdict.Risk,
			Rationale: dayRationale(&chosen, &verdict, top),
		})

		applySession(&stats, &chosen, day)
	}

	logs = append(logs, TrainingDayLog{
		Date:      start.AddDate(0, 0, len(states)),
		SessionID: SummaryID,
		Minutes:   stats.TotalMinutes,
		Intensity: "summary",
		Rationale: summaryRationale(&stats),
	})

	return logs, stats, nil
}

// applySession commits a chosen session to the microcycle counters. The
// updates are not mutually exclusive: one option may bump several. Callers
// must apply each day's pick exactly once, or counters double-count.
func applySession(stats *MicroCycleStats, session *TrainingOption, day time.Time) {
	stats.TotalMinutes += session.Minutes

	// Strength-only sessions and rest don't count as run days.
	if !session.IsStrength() && session.Intensity != IntensityRest {
		stats.RunDays++
	}

	if session.IsStrength() {
		stats.StrengthDays++
		d := day
		stats.LastStrengthDate = &d
	}

	if session.IsQuality() {
		stats.QualityDays++
		d := day
		stats.LastQualityDate = &d
	}

	if session.IsLong() {
		stats.LongRuns++
		d := day
		stats.LastLongDate = &d
	}
}

// dayRationale narrates one day's pick: the session, why, and the top
// candidates it beat.
func dayRationale(chosen *TrainingOption, verdict *ScoredCandidate, top []ScoredCandidate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Picked: %s\n", chosen.Name)
	fmt.Fprintf(&b, "Reason: %s\n", verdict.Rationale())
	b.WriteString("Top candidates:")
	for rank, c := range top {
		fmt.Fprintf(&b, "\n  %d. u=%.2f, risk=%.2f | %s | %s", rank+1, c.Utility, c.Risk, c.Option.ID, c.Rationale())
	}
	return b.String()
}

// summaryRationale renders the final counters plus the coach's diagnosis.
func summaryRationale(stats *MicroCycleStats) string {
	return fmt.Sprintf(
		"Microcycle summary:\n"+
			"- run_days=%d\n"+
			"- strength_days=%d\n"+
			"- quality_days=%d\n"+
			"- long_runs=%d\n"+
			"- total_minutes=%d\n\n%s",
		stats.RunDays, stats.StrengthDays, stats.QualityDays, stats.LongRuns, stats.TotalMinutes,
		coachComment(stats),
	)
}

// coachComment is the blunt layer: no poetry, just diagnosis. Each
// threshold is checked independently; a clean cycle gets one line of
// grudging approval.
func coachComment(stats *MicroCycleStats) string {
	var bullets []string

	if stats.RunDays < diagnoseRunDays {
		bullets = append(bullets, fmt.Sprintf("- Running %d days/week: not enough. That maintains a base at best, it doesn't build one.", stats.RunDays))
	}
	if stats.StrengthDays < diagnoseStrengthDays {
		bullets = append(bullets, fmt.Sprintf("- Strength %d days/week: that's box-ticking, not progress.", stats.StrengthDays))
	}
	if stats.QualityDays < diagnoseQualityDays {
		bullets = append(bullets, "- No quality work: without a speed or running-strength stimulus you stand still.")
	}
	if stats.LongRuns < diagnoseLongRuns {
		bullets = append(bullets, "- No long run: for ultra that's building a bridge without the middle pillar.")
	}

	if len(bullets) == 0 {
		return "This microcycle looks sensible. Now don't wreck it with ego and chaos."
	}

	return "Diagnosis (no sugar):\n" + strings.Join(bullets, "\n")
}
