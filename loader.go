package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// CatalogGroup is one YAML catalog file: a named group of sessions with
// optional group-level tags folded into every session in it.
type CatalogGroup struct {
	Group    string           `yaml:"group"`
	Tags     []string         `yaml:"tags"`
	Sessions []TrainingOption `yaml:"sessions"`
}

// WeekFile is the YAML input for one planning run: an optional start date,
// a file-level goal applied to days that don't set their own, and one
// athlete state per day.
type WeekFile struct {
	Start string         `yaml:"start,omitempty"` // 2006-01-02
	Goal  string         `yaml:"goal,omitempty"`
	Days  []AthleteState `yaml:"days"`
}

// LoadCatalog loads all session definitions from *.yaml files in the
// catalog directory. An empty dir means the built-in catalog.
func LoadCatalog(catalogDir string) ([]TrainingOption, error) {
	if catalogDir == "" {
		return DefaultCatalog(), nil
	}

	if _, err := os.Stat(catalogDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("catalog directory not found: %s", catalogDir)
	}

	files, err := filepath.Glob(filepath.Join(catalogDir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("error finding YAML files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no YAML files found in catalog directory %s", catalogDir)
	}

	var options []TrainingOption

	for _, file := range files {
		group, err := loadGroup(file)
		if err != nil {
			return nil, fmt.Errorf("error loading %s: %w", file, err)
		}

		for i := range group.Sessions {
			opt := group.Sessions[i]
			opt.Group = group.Group

			// Group tags apply to every session in the file.
			if len(group.Tags) > 0 {
				merged := append([]string{}, group.Tags...)
				for _, t := range opt.Tags {
					if !containsTag(merged, t) {
						merged = append(merged, t)
					}
				}
				opt.Tags = merged
			}

			options = append(options, opt)
		}
	}

	if err := ValidateCatalog(options); err != nil {
		return nil, err
	}

	return options, nil
}

func loadGroup(path string) (*CatalogGroup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var group CatalogGroup
	if err := yaml.Unmarshal(data, &group); err != nil {
		return nil, err
	}

	return &group, nil
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// LoadWeekFile loads a planning week from YAML. The file-level goal is
// folded into days that don't override it; the start date, if present,
// must be in 2006-01-02 form.
func LoadWeekFile(path string) (*WeekFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading week file: %w", err)
	}

	var week WeekFile
	if err := yaml.Unmarshal(data, &week); err != nil {
		return nil, fmt.Errorf("error parsing week file %s: %w", path, err)
	}

	if len(week.Days) == 0 {
		return nil, fmt.Errorf("week file %s contains no days", path)
	}

	for i := range week.Days {
		if week.Days[i].Goal == "" {
			week.Days[i].Goal = week.Goal
		}
	}

	if week.Start != "" {
		if _, err := time.Parse("2006-01-02", week.Start); err != nil {
			return nil, fmt.Errorf("invalid start date %q in %s: %w", week.Start, path, err)
		}
	}

	return &week, nil
}

// StartDate resolves the week's start date, defaulting to today.
func (w *WeekFile) StartDate() time.Time {
	if w.Start != "" {
		if d, err := time.Parse("2006-01-02", w.Start); err == nil {
			return d
		}
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
