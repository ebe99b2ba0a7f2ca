package main

import (
	"math"
	"math/rand"
	"sort"
	"time"
)

// temperatureEpsilon guards the softmax against division by a near-zero
// temperature; at or below it the selector degenerates to argmax.
const temperatureEpsilon = 1e-9

// Engine scores catalog options and picks one session per day:
// utility = benefit - riskAversion*risk - penalties, a temperature softmax
// over utilities, and a small exploration chance of sampling instead of
// taking the top candidate.
//
// The random generator is run-scoped: two engines built with the same seed
// replay the same draws, so a whole planning run is reproducible. Each day
// issues one draw for the exploration coin flip and, only when it lands,
// a second draw for the distribution sample.
type Engine struct {
	cfg EngineConfig
	rng *rand.Rand
}

// NewEngine creates an engine from the given config. Zero-value fields take
// defaults; out-of-range values return an error wrapping ErrInvalidConfig.
func NewEngine(cfg EngineConfig) (*Engine, error) {
	cfg, err := cfg.validate()
	if err != nil {
		return nil, err
	}

	seed := time.Now().UnixNano()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}

	return &Engine{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}, nil
}

// Config returns the normalized engine configuration.
func (e *Engine) Config() EngineConfig { return e.cfg }

// softmax turns utilities into a probability distribution. Temperatures at
// or below the epsilon fall back to a deterministic indicator split evenly
// across the candidates tied for the maximum.
func softmax(xs []float64, temperature float64) []float64 {
	probs := make([]float64, len(xs))
	if len(xs) == 0 {
		return probs
	}

	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}

	if temperature <= temperatureEpsilon {
		ties := 0
		for _, x := range xs {
			if x == m {
				ties++
			}
		}
		for i, x := range xs {
			if x == m {
				probs[i] = 1.0 / float64(ties)
			}
		}
		return probs
	}

	// Numerically stabilized: shift by the max before exponentiating.
	sum := 0.0
	for i, x := range xs {
		probs[i] = math.Exp((x - m) / temperature)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}

// Choose scores every option for the day, ranks them by utility and picks
// one. Ties keep catalog order. The returned ranked slice is truncated to
// the configured top-k for reporting.
func (e *Engine) Choose(options []TrainingOption, state AthleteState, stats MicroCycleStats, day time.Time) (TrainingOption, []ScoredCandidate, error) {
	if len(options) == 0 {
		return TrainingOption{}, nil, ErrEmptyCatalog
	}

	scored := make([]ScoredCandidate, len(options))
	for i, opt := range options {
		scored[i] = e.Score(opt, state, stats, day)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Utility > scored[j].Utility
	})

	utilities := make([]float64, len(scored))
	for i, c := range scored {
		utilities[i] = c.Utility
	}
	probs := softmax(utilities, e.cfg.Temperature)

	// Exploration: sometimes sample from the softmax, otherwise take top-1.
	chosen := scored[0].Option
	if e.rng.Float64() < e.cfg.Exploration {
		chosen = scored[e.sample(probs)].Option
	}

	if len(scored) > e.cfg.TopK {
		scored = scored[:e.cfg.TopK]
	}
	return chosen, scored, nil
}

// Score evaluates a single option under the engine's risk aversion.
func (e *Engine) Score(opt TrainingOption, state AthleteState, stats MicroCycleStats, day time.Time) ScoredCandidate {
	return scoreOption(opt, state, stats, day, e.cfg.RiskAversion)
}

// sample draws an index from the distribution by cumulative-sum inversion.
// Floating residue can leave the loop unfired; the last index absorbs it.
func (e *Engine) sample(probs []float64) int {
	pick := e.rng.Float64()
	cum := 0.0
	for i, p := range probs {
		cum += p
		if pick <= cum {
			return i
		}
	}
	return len(probs) - 1
}
