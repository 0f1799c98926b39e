package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Jobs is a batch of independent GIF builds read from a YAML file.
type Jobs struct {
	Workers int      `yaml:"workers"`
	Jobs    []Config `yaml:"jobs"`
}

// LoadJobs reads a job file. Fields a job leaves unset take the default values.
func LoadJobs(path string) (*Jobs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw struct {
		Workers int         `yaml:"workers"`
		Jobs    []yaml.Node `yaml:"jobs"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(raw.Jobs) == 0 {
		return nil, fmt.Errorf("no jobs in %s", path)
	}

	jobs := &Jobs{Workers: raw.Workers, Jobs: make([]Config, len(raw.Jobs))}
	for i, n := range raw.Jobs {
		cfg := Default()
		if err := n.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("job %d: %w", i, err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("job %d: %w", i, err)
		}
		jobs.Jobs[i] = cfg
	}
	return jobs, nil
}
