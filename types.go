package main

import "time"

// Intensity classes for a training option.
const (
	IntensityRest     = "rest"
	IntensityEasy     = "easy"
	IntensityModerate = "moderate"
	IntensityHard     = "hard"
	IntensityStrength = "strength"
)

// Tags used for microcycle control.
const (
	TagRecovery = "recovery"
	TagRun      = "run"
	TagQuality  = "quality"
	TagLong     = "long"
	TagStrength = "strength"
)

// SummaryID is the reserved session id of the trailing week-summary log
// record. The catalog loader rejects options that try to use it.
const SummaryID = "WEEK_SUMMARY"

// AthleteState is the athlete's condition for one day. All scales are
// nominal 0-10; out-of-range values are scored as-is, never rejected.
// Pain of 4+ is treated as an injury warning by the scorer.
type AthleteState struct {
	Fatigue     float64 `yaml:"fatigue"`
	Soreness    float64 `yaml:"soreness"`
	Pain        float64 `yaml:"pain"`
	SleepHours  float64 `yaml:"sleep_hours"`
	Stress      float64 `yaml:"stress"`
	TimeMinutes int     `yaml:"time_minutes"`
	Goal        string  `yaml:"goal,omitempty"` // "ultra" / "half" / "cut" / ...
}

// TrainingOption is one candidate session from the catalog.
// MinTime is the entry threshold, Minutes the suggested duration.
type TrainingOption struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	MinTime     int      `yaml:"min_time"`
	Minutes     int      `yaml:"minutes"`
	Intensity   string   `yaml:"intensity"`
	BaseBenefit float64  `yaml:"base_benefit"`
	BaseRisk    float64  `yaml:"base_risk"`
	Tags        []string `yaml:"tags"`

	// Computed field (not in YAML)
	Group string `yaml:"-"`
}

// HasTag checks whether the option carries the given tag.
func (o *TrainingOption) HasTag(tag string) bool {
	for _, t := range o.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (o *TrainingOption) IsQuality() bool  { return o.HasTag(TagQuality) }
func (o *TrainingOption) IsLong() bool     { return o.HasTag(TagLong) }
func (o *TrainingOption) IsStrength() bool { return o.HasTag(TagStrength) }

// MicroCycleStats tracks the rolling microcycle (nominally 7 days): how
// much running, strength and quality work has been committed so far.
// The zero value is the valid start-of-week state. One instance is owned
// by a single planning run and mutated exactly once per day.
type MicroCycleStats struct {
	RunDays      int
	StrengthDays int
	QualityDays  int
	LongRuns     int
	TotalMinutes int

	LastQualityDate  *time.Time
	LastLongDate     *time.Time
	LastStrengthDate *time.Time
}

// RuleNote records one scoring adjustment that fired: which rule and the
// signed utility delta it contributed (positive = bonus, negative = penalty).
type RuleNote struct {
	Rule  string
	Delta float64
}

// ScoredCandidate is the scorer's verdict on one option for one day.
// Utility may be the deep-negative sentinel for infeasible options.
// Notes carry the structured rationale; rendering happens at the
// reporting boundary.
type ScoredCandidate struct {
	Option  TrainingOption
	Utility float64
	Risk    float64
	Notes   []RuleNote
}

// TrainingDayLog is one planned day, or the trailing week summary
// (SessionID == SummaryID). Appended by the planner, never mutated.
type TrainingDayLog struct {
	Date      time.Time
	SessionID string
	Minutes   int
	Intensity string
	Score     float64
	Risk      float64
	Rationale string
}
