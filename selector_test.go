package main

import (
	"errors"
	"math"
	"testing"
)

func seeded(t *testing.T, cfg EngineConfig, seed int64) *Engine {
	t.Helper()
	cfg.Seed = &seed
	e, err := NewEngine(cfg)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func TestNewEngineValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     EngineConfig
		wantErr bool
	}{
		{"zero config takes defaults", EngineConfig{}, false},
		{"explicit valid", EngineConfig{Temperature: 0.5, Exploration: 0.2, RiskAversion: 1.0, TopK: 3}, false},
		{"negative temperature", EngineConfig{Temperature: -0.1}, true},
		{"negative exploration", EngineConfig{Exploration: -0.01}, true},
		{"exploration at one", EngineConfig{Exploration: 1.0}, true},
		{"negative risk aversion", EngineConfig{RiskAversion: -2}, true},
		{"negative top-k", EngineConfig{TopK: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEngine(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got none")
				}
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("error %v should wrap ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := e.Config()
			if got.Temperature <= 0 || got.RiskAversion <= 0 || got.TopK <= 0 {
				t.Errorf("defaults not applied: %+v", got)
			}
		})
	}
}

func TestSoftmaxIsDistribution(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		temp float64
	}{
		{"plain utilities", []float64{3.1, 2.0, -0.5, 1.7}, 0.65},
		{"with sentinel", []float64{3.1, 2.0, rejectedUtility}, 0.65},
		{"hot temperature", []float64{1, 2, 3}, 50},
		{"single entry", []float64{-4.2}, 0.65},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probs := softmax(tt.xs, tt.temp)
			sum := 0.0
			for i, p := range probs {
				if p < 0 {
					t.Errorf("probs[%d] = %v < 0", i, p)
				}
				sum += p
			}
			if math.Abs(sum-1.0) > 1e-9 {
				t.Errorf("probabilities sum to %v, want 1", sum)
			}
		})
	}
}

func TestSoftmaxDegenerateTemperature(t *testing.T) {
	probs := softmax([]float64{2.0, 5.0, 5.0, 1.0}, 0)

	want := []float64{0, 0.5, 0.5, 0}
	for i := range want {
		if math.Abs(probs[i]-want[i]) > 1e-9 {
			t.Errorf("probs[%d] = %v, want %v", i, probs[i], want[i])
		}
	}
}

func TestChooseGreedyDeterministic(t *testing.T) {
	options := DefaultCatalog()
	state := calmState()
	state.Goal = "ultra"
	stats := calmStats()

	e := seeded(t, EngineConfig{Temperature: 1e-12, Exploration: 0, RiskAversion: 1.35}, 7)

	first, ranked, err := e.Choose(options, state, stats, testDay)
	if err != nil {
		t.Fatalf("Choose: %v", err)
	}
	if first.ID != ranked[0].Option.ID {
		t.Errorf("greedy choice %s is not the top-ranked %s", first.ID, ranked[0].Option.ID)
	}

	for i := 0; i < 50; i++ {
		got, _, err := e.Choose(options, state, stats, testDay)
		if err != nil {
			t.Fatalf("Choose: %v", err)
		}
		if got.ID != first.ID {
			t.Fatalf("greedy selection changed between calls: %s vs %s", got.ID, first.ID)
		}
	}
}

func TestChooseTieKeepsCatalogOrder(t *testing.T) {
	twin := func(id string) TrainingOption {
		return TrainingOption{
			ID: id, Name: id, MinTime: 10, Minutes: 30,
			Intensity: IntensityEasy, BaseBenefit: 2.0, BaseRisk: 0.3,
			Tags: []string{TagRun},
		}
	}
	options := []TrainingOption{twin("first"), twin("second")}

	e := seeded(t, EngineConfig{Temperature: 1e-12, Exploration: 0, RiskAversion: 1.0}, 1)

	chosen, ranked, err := e.Choose(options, calmState(), calmStats(), testDay)
	if err != nil {
		t.Fatalf("Choose: %v", err)
	}
	if chosen.ID != "first" {
		t.Errorf("tie should keep catalog order, got %s", chosen.ID)
	}
	if ranked[0].Option.ID != "first" || ranked[1].Option.ID != "second" {
		t.Errorf("ranked order %s, %s; want first, second", ranked[0].Option.ID, ranked[1].Option.ID)
	}
}

func TestChooseNeverPicksInfeasibleWhileFeasibleExists(t *testing.T) {
	options := DefaultCatalog()
	state := calmState()
	state.TimeMinutes = 40 // only rest, easy_run_40 and strength_45 fit

	e := seeded(t, EngineConfig{Temperature: 0.65, Exploration: 0.999, RiskAversion: 1.35}, 99)

	for i := 0; i < 500; i++ {
		chosen, _, err := e.Choose(options, state, calmStats(), testDay)
		if err != nil {
			t.Fatalf("Choose: %v", err)
		}
		opt, err := FindOption(options, chosen.ID)
		if err != nil {
			t.Fatalf("chosen option %s not in catalog", chosen.ID)
		}
		if state.TimeMinutes < opt.MinTime {
			t.Fatalf("picked infeasible option %s (min %d > available %d)", opt.ID, opt.MinTime, state.TimeMinutes)
		}
	}
}

func TestChooseEmptyCatalog(t *testing.T) {
	e := seeded(t, EngineConfig{}, 1)

	_, _, err := e.Choose(nil, calmState(), calmStats(), testDay)
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestChooseSeedReproducible(t *testing.T) {
	options := DefaultCatalog()
	state := calmState()
	state.Goal = "half"
	cfg := EngineConfig{Temperature: 0.65, Exploration: 0.5, RiskAversion: 1.35}

	a := seeded(t, cfg, 1234)
	b := seeded(t, cfg, 1234)

	for i := 0; i < 200; i++ {
		got1, _, err1 := a.Choose(options, state, calmStats(), testDay)
		got2, _, err2 := b.Choose(options, state, calmStats(), testDay)
		if err1 != nil || err2 != nil {
			t.Fatalf("Choose: %v / %v", err1, err2)
		}
		if got1.ID != got2.ID {
			t.Fatalf("call %d diverged: %s vs %s", i, got1.ID, got2.ID)
		}
	}
}

func TestTopKTruncation(t *testing.T) {
	options := DefaultCatalog()
	e := seeded(t, EngineConfig{TopK: 3, Exploration: 0}, 5)

	_, ranked, err := e.Choose(options, calmState(), calmStats(), testDay)
	if err != nil {
		t.Fatalf("Choose: %v", err)
	}
	if len(ranked) != 3 {
		t.Errorf("ranked list has %d entries, want 3", len(ranked))
	}
}
