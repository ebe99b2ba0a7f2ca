package main

import (
	"fmt"
	"strings"
	"time"
)

// Scoring constants. Utility = benefit - riskAversion*risk - penalties.
const (
	rejectedUtility = -9999.0 // hard-gate sentinel, sorts below any feasible option
	rejectedRisk    = 10.0    // display-only; ranking uses utility alone

	injuryPainThreshold  = 4.0 // pain at or above this blocks quality/long/hard
	highFatigueThreshold = 7.0
	weeklyRunMinimum     = 3 // run days per microcycle before the bonus stops
	weeklyStrengthMin    = 2
	qualitySpacingDays   = 2 // minimum days between quality sessions

	injuryGatePenalty  = 4.0
	runMinimumBonus    = 0.8
	strengthMinBonus   = 0.9
	qualitySpacingPen  = 2.2
	longRunCapPenalty  = 2.5
	highFatiguePenalty = 1.8
	lowBasePenalty     = 2.0
)

const noAdjustments = "no adjustments"

// rejectedNote is the single note attached to options that fail the time gate.
var rejectedNote = RuleNote{Rule: "rejected: insufficient time", Delta: rejectedUtility}

// scoreRule is one microcycle penalty/bonus rule. Rules are evaluated in a
// fixed order and are independently triggerable; each returns the benefit
// delta and penalty delta it contributes, with a note for the rationale.
type scoreRule struct {
	id    string
	apply func(opt *TrainingOption, state *AthleteState, stats *MicroCycleStats, day time.Time) (benefit, penalty float64, fired bool)
}

// microcycleRules holds the ordered rule list. Adding or reordering rules
// here changes scoring without touching any call site.
var microcycleRules = []scoreRule{
	{
		id: "penalty: pain>=4 blocks quality/long/hard",
		apply: func(opt *TrainingOption, state *AthleteState, stats *MicroCycleStats, day time.Time) (float64, float64, bool) {
			if state.Pain >= injuryPainThreshold && (opt.IsQuality() || opt.IsLong() || opt.Intensity == IntensityHard) {
				return 0, injuryGatePenalty, true
			}
			return 0, 0, false
		},
	},
	{
		id: "bonus: closes the 3 run days/week gap",
		apply: func(opt *TrainingOption, state *AthleteState, stats *MicroCycleStats, day time.Time) (float64, float64, bool) {
			if stats.RunDays < weeklyRunMinimum && isRunIntensity(opt.Intensity) {
				return runMinimumBonus, 0, true
			}
			return 0, 0, false
		},
	},
	{
		id: "bonus: closes the strength gap",
		apply: func(opt *TrainingOption, state *AthleteState, stats *MicroCycleStats, day time.Time) (float64, float64, bool) {
			if stats.StrengthDays < weeklyStrengthMin && opt.IsStrength() {
				return strengthMinBonus, 0, true
			}
			return 0, 0, false
		},
	},
	{
		id: "penalty: quality too soon after quality",
		apply: func(opt *TrainingOption, state *AthleteState, stats *MicroCycleStats, day time.Time) (float64, float64, bool) {
			if opt.IsQuality() && stats.LastQualityDate != nil && daysBetween(*stats.LastQualityDate, day) < qualitySpacingDays {
				return 0, qualitySpacingPen, true
			}
			return 0, 0, false
		},
	},
	{
		id: "penalty: long run already done this microcycle",
		apply: func(opt *TrainingOption, state *AthleteState, stats *MicroCycleStats, day time.Time) (float64, float64, bool) {
			if opt.IsLong() && stats.LongRuns >= 1 {
				return 0, longRunCapPenalty, true
			}
			return 0, 0, false
		},
	},
	{
		id: "penalty: fatigue>=7 dislikes hard efforts",
		apply: func(opt *TrainingOption, state *AthleteState, stats *MicroCycleStats, day time.Time) (float64, float64, bool) {
			if state.Fatigue >= highFatigueThreshold &&
				(opt.Intensity == IntensityHard || opt.Intensity == IntensityModerate) &&
				!opt.IsStrength() {
				return 0, highFatiguePenalty, true
			}
			return 0, 0, false
		},
	},
	{
		id: "penalty: low base makes hard risky",
		apply: func(opt *TrainingOption, state *AthleteState, stats *MicroCycleStats, day time.Time) (float64, float64, bool) {
			if stats.RunDays <= 1 && opt.Intensity == IntensityHard {
				return 0, lowBasePenalty, true
			}
			return 0, 0, false
		},
	},
}

func isRunIntensity(intensity string) bool {
	return intensity == IntensityEasy || intensity == IntensityModerate || intensity == IntensityHard
}

// daysBetween returns the whole calendar days from a to b.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// scoreOption evaluates one option against the athlete's state and the
// current microcycle. Pure: it never mutates its inputs.
func scoreOption(opt TrainingOption, state AthleteState, stats MicroCycleStats, day time.Time, riskAversion float64) ScoredCandidate {
	// Hard constraint: not enough time today.
	if state.TimeMinutes < opt.MinTime {
		return ScoredCandidate{
			Option:  opt,
			Utility: rejectedUtility,
			Risk:    rejectedRisk,
			Notes:   []RuleNote{rejectedNote},
		}
	}

	// State-dependent risk. Pain is the loudest signal: pain 5 doubles risk.
	painFactor := 1.0 + state.Pain/5.0
	fatigueFactor := 1.0 + state.Fatigue/10.0 // fatigue 10 => x2
	sleepPenalty := 0.0
	if state.SleepHours < 7.0 {
		sleepPenalty = (7.0 - state.SleepHours) / 7.0
	}
	risk := opt.BaseRisk * painFactor * fatigueFactor * (1.0 + sleepPenalty)

	// Goal-dependent benefit.
	benefit := opt.BaseBenefit
	switch state.Goal {
	case "ultra":
		// ultra: long runs plus easy consistency
		if opt.IsLong() {
			benefit *= 1.25
		}
		if opt.Intensity == IntensityEasy {
			benefit *= 1.10
		}
	case "half":
		// half marathon: tempo and quality work
		if opt.IsQuality() {
			benefit *= 1.25
		}
		if opt.Intensity == IntensityModerate {
			benefit *= 1.10
		}
	case "cut":
		// cut: low-to-moderate volume and strength
		if opt.Intensity == IntensityEasy || opt.Intensity == IntensityModerate {
			benefit *= 1.10
		}
		if opt.IsStrength() {
			benefit *= 1.15
		}
	}

	// Microcycle rules, in order.
	penalties := 0.0
	var notes []RuleNote
	for _, rule := range microcycleRules {
		b, p, fired := rule.apply(&opt, &state, &stats, day)
		if !fired {
			continue
		}
		benefit += b
		penalties += p
		notes = append(notes, RuleNote{Rule: rule.id, Delta: b - p})
	}

	return ScoredCandidate{
		Option:  opt,
		Utility: benefit - riskAversion*risk - penalties,
		Risk:    risk,
		Notes:   notes,
	}
}

// Rationale renders the structured notes as a single line for reports.
func (c *ScoredCandidate) Rationale() string {
	if len(c.Notes) == 0 {
		return noAdjustments
	}
	parts := make([]string, len(c.Notes))
	for i, n := range c.Notes {
		parts[i] = n.Rule
	}
	return strings.Join(parts, "; ")
}

// Rejected reports whether the candidate failed the hard time gate.
func (c *ScoredCandidate) Rejected() bool {
	return c.Utility == rejectedUtility && len(c.Notes) == 1 && c.Notes[0] == rejectedNote
}

func formatDelta(d float64) string {
	return fmt.Sprintf("%+.1f", d)
}
