package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"asmtidy/pkg/extract"
	"gopkg.in/yaml.v3"
)

// ScenarioSpec is a single end-to-end extraction case.
type ScenarioSpec struct {
	Name         string   `yaml:"name"`
	Roots        []string `yaml:"roots"`
	Listing      string   `yaml:"listing"`
	Expect       []string `yaml:"expect"`        // Strings that must appear in output
	ExpectUnique []string `yaml:"expect_unique"` // Strings that must appear exactly once
	ExpectNot    []string `yaml:"expect_not"`    // Strings that must NOT appear in output
	ExpectEmpty  bool     `yaml:"expect_empty,omitempty"`
}

// ScenarioFile is the scenarios.yaml file structure.
type ScenarioFile struct {
	Scenarios []ScenarioSpec `yaml:"scenarios"`
}

func TestScenarios(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "scenarios.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	var file ScenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		t.Fatal(err)
	}
	if len(file.Scenarios) == 0 {
		t.Fatal("no scenarios loaded")
	}

	for _, sc := range file.Scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			got := extract.Listing(extract.SplitLines(sc.Listing), sc.Roots)

			if sc.ExpectEmpty && got != "" {
				t.Fatalf("expected empty output, got:\n%s", got)
			}
			for _, s := range sc.Expect {
				if !strings.Contains(got, s) {
					t.Errorf("expected %q in output, got:\n%s", s, got)
				}
			}
			for _, s := range sc.ExpectUnique {
				if n := strings.Count(got, s); n != 1 {
					t.Errorf("expected %q exactly once, found %d times in:\n%s", s, n, got)
				}
			}
			for _, s := range sc.ExpectNot {
				if strings.Contains(got, s) {
					t.Errorf("did not expect %q in output, got:\n%s", s, got)
				}
			}
		})
	}
}
