package main

import "fmt"

// DefaultCatalog returns the built-in session catalog, used when no catalog
// directory is configured. Coefficients are the baseline set; a custom
// catalog directory overrides all of it.
func DefaultCatalog() []TrainingOption {
	return []TrainingOption{
		{
			ID:          "rest",
			Name:        "Full rest + 20 min mobility work",
			MinTime:     20,
			Minutes:     20,
			Intensity:   IntensityRest,
			BaseBenefit: 0.6,
			BaseRisk:    0.05,
			Tags:        []string{TagRecovery},
		},
		{
			ID:          "easy_run_40",
			Name:        "Easy run 40 min (Z2, relaxed)",
			MinTime:     35,
			Minutes:     40,
			Intensity:   IntensityEasy,
			BaseBenefit: 2.6,
			BaseRisk:    0.35,
			Tags:        []string{TagRun},
		},
		{
			ID:          "easy_run_60",
			Name:        "Easy run 60 min (Z2, steady)",
			MinTime:     55,
			Minutes:     60,
			Intensity:   IntensityEasy,
			BaseBenefit: 3.2,
			BaseRisk:    0.45,
			Tags:        []string{TagRun},
		},
		{
			ID:          "moderate_hills",
			Name:        "Technical hill repeats 10x45s + warmup/cooldown (55 min total)",
			MinTime:     50,
			Minutes:     55,
			Intensity:   IntensityModerate,
			BaseBenefit: 3.8,
			BaseRisk:    0.85,
			Tags:        []string{TagRun, TagQuality},
		},
		{
			ID:          "tempo_45",
			Name:        "Tempo: 3x8 min (3 min jog between), 50 min total",
			MinTime:     45,
			Minutes:     50,
			Intensity:   IntensityHard,
			BaseBenefit: 4.2,
			BaseRisk:    1.05,
			Tags:        []string{TagRun, TagQuality},
		},
		{
			ID:          "long_run_110",
			Name:        "Long run 110 min (Z2, controlled, fueling en route)",
			MinTime:     95,
			Minutes:     110,
			Intensity:   IntensityEasy,
			BaseBenefit: 5.0,
			BaseRisk:    1.10,
			Tags:        []string{TagRun, TagLong},
		},
		{
			ID:          "strength_45",
			Name:        "Strength 45 min (legs + core + glutes + calves, no ego)",
			MinTime:     35,
			Minutes:     45,
			Intensity:   IntensityStrength,
			BaseBenefit: 3.0,
			BaseRisk:    0.40,
			Tags:        []string{TagStrength},
		},
		{
			ID:          "easy_plus_str_70",
			Name:        "Easy run 35 min + strength 30 min (~65-70 min total)",
			MinTime:     60,
			Minutes:     70,
			Intensity:   IntensityModerate,
			BaseBenefit: 4.1,
			BaseRisk:    0.75,
			Tags:        []string{TagRun, TagStrength},
		},
	}
}

var validIntensities = map[string]bool{
	IntensityRest:     true,
	IntensityEasy:     true,
	IntensityModerate: true,
	IntensityHard:     true,
	IntensityStrength: true,
}

// ValidateCatalog checks catalog-wide invariants: non-empty, unique ids,
// no reserved ids, positive benefit, non-negative risk, known intensity.
func ValidateCatalog(options []TrainingOption) error {
	if len(options) == 0 {
		return ErrEmptyCatalog
	}

	seen := make(map[string]bool, len(options))
	for _, opt := range options {
		if opt.ID == "" {
			return fmt.Errorf("option %q: missing id", opt.Name)
		}
		if opt.ID == SummaryID {
			return fmt.Errorf("%w: %s", ErrReservedID, opt.ID)
		}
		if seen[opt.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateOption, opt.ID)
		}
		seen[opt.ID] = true

		if !validIntensities[opt.Intensity] {
			return fmt.Errorf("option %s: unknown intensity %q", opt.ID, opt.Intensity)
		}
		if opt.BaseBenefit <= 0 {
			return fmt.Errorf("option %s: base_benefit %g must be positive", opt.ID, opt.BaseBenefit)
		}
		if opt.BaseRisk < 0 {
			return fmt.Errorf("option %s: base_risk %g must not be negative", opt.ID, opt.BaseRisk)
		}
		if opt.MinTime < 0 || opt.Minutes < 0 {
			return fmt.Errorf("option %s: negative duration", opt.ID)
		}
	}

	return nil
}

// FindOption looks an option up by id.
func FindOption(options []TrainingOption, id string) (*TrainingOption, error) {
	for i := range options {
		if options[i].ID == id {
			return &options[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownSession, id)
}
