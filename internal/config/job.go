// SPDX-License-Identifier: EPL-2.0

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Job describes the inputs of an insert or notes run.
type Job struct {
	Backing string      `yaml:"backing"`
	Effects []EffectJob `yaml:"effects"`
	Notes   []NoteJob   `yaml:"notes"`
}

type EffectJob struct {
	Src       string  `yaml:"src"`
	Duration  float64 `yaml:"duration"`   // seconds
	StartTime float64 `yaml:"start_time"` // seconds
}

type NoteJob struct {
	Pitch    int     `yaml:"pitch"`
	Duration float64 `yaml:"duration"` // seconds
}

// LoadJob reads and validates a job file.
func LoadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}

	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job file %s: %w", path, err)
	}

	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("job validation failed: %w", err)
	}

	return &job, nil
}

// Validate checks the entries that are present. Whether a job needs a
// backing track or notes depends on the command running it.
func (j *Job) Validate() error {
	if len(j.Effects) > 0 && j.Backing == "" {
		return fmt.Errorf("backing cannot be empty when effects are listed")
	}

	for i, e := range j.Effects {
		if e.Src == "" {
			return fmt.Errorf("effect %d: src cannot be empty", i)
		}
		if e.Duration < 0 {
			return fmt.Errorf("effect %d: duration cannot be negative, got %f", i, e.Duration)
		}
	}

	for i, n := range j.Notes {
		if n.Duration < 0 {
			return fmt.Errorf("note %d: duration cannot be negative, got %f", i, n.Duration)
		}
	}

	return nil
}
