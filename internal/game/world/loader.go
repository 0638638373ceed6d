package world

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scenario describes the startup world: the table surface and the
// robots that exist before the first command is read.
type Scenario struct {
	// Table is the initial table surface.
	Table Bounds
	// Robots lists the names of the robots created at startup, in
	// registration order.
	Robots []string
}

// yamlScenarioFile is the top-level YAML structure for scenario files.
type yamlScenarioFile struct {
	Scenario yamlScenario `yaml:"scenario"`
}

// yamlScenario is the YAML representation of a scenario.
type yamlScenario struct {
	Table  yamlTable `yaml:"table"`
	Robots []string  `yaml:"robots"`
}

// yamlTable is the YAML representation of table bounds.
type yamlTable struct {
	XMin int `yaml:"xmin"`
	YMin int `yaml:"ymin"`
	XMax int `yaml:"xmax"`
	YMax int `yaml:"ymax"`
}

// LoadScenarioFromFile reads and validates a scenario YAML file.
//
// Precondition: path must point to a valid YAML scenario file.
// Postcondition: Returns a validated Scenario or a non-nil error.
func LoadScenarioFromFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file %s: %w", path, err)
	}
	scenario, err := LoadScenarioFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("scenario file %s: %w", path, err)
	}
	return scenario, nil
}

// LoadScenarioFromBytes parses and validates a scenario from YAML bytes.
//
// Precondition: data must be valid YAML conforming to the scenario schema.
// Postcondition: Returns a validated Scenario or a non-nil error.
func LoadScenarioFromBytes(data []byte) (*Scenario, error) {
	var file yamlScenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing scenario YAML: %w", err)
	}

	scenario := &Scenario{
		Table: Bounds{
			XMin: file.Scenario.Table.XMin,
			YMin: file.Scenario.Table.YMin,
			XMax: file.Scenario.Table.XMax,
			YMax: file.Scenario.Table.YMax,
		},
		Robots: file.Scenario.Robots,
	}
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("validating scenario: %w", err)
	}
	return scenario, nil
}

// Validate checks scenario invariants.
//
// Postcondition: Returns nil if valid, or an error describing the first violation.
func (s *Scenario) Validate() error {
	if err := s.Table.Validate(); err != nil {
		return err
	}
	seen := make(map[string]bool, len(s.Robots))
	for _, name := range s.Robots {
		if err := ValidateEntityName(name); err != nil {
			return err
		}
		if seen[name] {
			return fmt.Errorf("duplicate robot name %q", name)
		}
		seen[name] = true
	}
	return nil
}

// ValidateEntityName checks that a name is usable as an addressable
// entity name: non-empty, a single token, and free of the ':' used by
// the targeting prefix.
//
// Postcondition: Returns nil if valid, or an error naming the violation.
func ValidateEntityName(name string) error {
	if name == "" {
		return fmt.Errorf("entity name must not be empty")
	}
	if strings.ContainsAny(name, " \t:,") {
		return fmt.Errorf("entity name %q must not contain whitespace, commas, or ':'", name)
	}
	return nil
}
