// Package config loads yaml job files describing a disassembly extraction.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Job describes one extraction: which source file to compile, with which
// backend and options, and which root functions to keep in the output.
type Job struct {
	Source      string   `yaml:"source"`
	Compiler    string   `yaml:"compiler,omitempty"`
	Output      string   `yaml:"output,omitempty"`
	Roots       []string `yaml:"roots"`
	IncludeDirs []string `yaml:"include_dirs,omitempty"`
	Defines     []string `yaml:"defines,omitempty"`
	Options     []string `yaml:"options,omitempty"`
}

// Load reads a Job from a yaml file.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &job, nil
}

// Validate checks that the job names a source file and at least one root.
func (j *Job) Validate() error {
	if j.Source == "" {
		return fmt.Errorf("job is missing a source file")
	}
	if len(j.Roots) == 0 {
		return fmt.Errorf("job needs at least one root function")
	}
	return nil
}
