// Package manifest records how an animation was assembled.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const Version = "1.0"

// Manifest describes one assembled animation.
type Manifest struct {
	Version string  `yaml:"version"`
	Output  string  `yaml:"output"`
	Loop    int     `yaml:"loop"` // 0 loops forever
	Frames  []Frame `yaml:"frames"`
}

// Frame is a single frame of the animation in display order.
type Frame struct {
	Index    int    `yaml:"index"`
	Source   string `yaml:"source"`
	Duration int    `yaml:"duration"` // milliseconds
}

// New builds a manifest from the frame sources and their durations, which
// must have equal length.
func New(output string, loop int, sources []string, durations []int) *Manifest {
	m := &Manifest{
		Version: Version,
		Output:  output,
		Loop:    loop,
		Frames:  make([]Frame, len(sources)),
	}
	for i, src := range sources {
		m.Frames[i] = Frame{Index: i, Source: src, Duration: durations[i]}
	}
	return m
}

// Write stores m at path as YAML.
func Write(m *Manifest, path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Read loads the manifest stored at path.
func Read(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return &m, nil
}
