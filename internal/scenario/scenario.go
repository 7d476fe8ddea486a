package scenario

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidScenario = errors.New("invalid scenario")
	ErrUnknownStep     = errors.New("unknown step")
)

//go:embed scenarios.yaml
var defaultScenarios []byte

// File is the root of a scenario file
type File struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario describes one chain and what concluding it must produce
type Scenario struct {
	Name string `yaml:"name"`
	// Given is the parameter; absent means a chain without one
	Given *string `yaml:"given,omitempty"`
	When  bool    `yaml:"when"`

	Then      *Step  `yaml:"then,omitempty"`
	ThenThrow string `yaml:"then_throw,omitempty"`

	OrElse      *Step  `yaml:"or_else,omitempty"`
	OrElseThrow string `yaml:"or_else_throw,omitempty"`

	Expect       *string `yaml:"expect,omitempty"`
	ExpectError  string  `yaml:"expect_error,omitempty"`
	ExpectOutput *string `yaml:"expect_output,omitempty"`
}

// Step is one branch. Exactly one field is set.
type Step struct {
	// Print writes a literal line
	Print *string `yaml:"print,omitempty"`
	// Do calls a named consumer of the parameter
	Do string `yaml:"do,omitempty"`
	// Return produces a literal value
	Return *string `yaml:"return,omitempty"`
	// Apply calls a named function of the parameter
	Apply string `yaml:"apply,omitempty"`
}

func (s Step) kinds() int {
	n := 0
	for _, set := range []bool{s.Print != nil, s.Do != "", s.Return != nil, s.Apply != ""} {
		if set {
			n++
		}
	}
	return n
}

// returns reports whether the step produces a value
func (s Step) returns() bool {
	return s.Return != nil || s.Apply != ""
}

// needsParameter reports whether the step reads the parameter
func (s Step) needsParameter() bool {
	return s.Do != "" || s.Apply != ""
}

// Default returns the embedded scenario set
func Default() ([]Scenario, error) {
	return Load(bytes.NewReader(defaultScenarios))
}

// LoadFile reads and validates a scenario file
func LoadFile(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scenario file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load decodes and validates scenarios
func Load(r io.Reader) ([]Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode scenarios: %w", err)
	}

	for i, s := range file.Scenarios {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("scenario #%d: %w", i+1, err)
		}
	}
	return file.Scenarios, nil
}

// Validate checks that the scenario describes a complete, well-shaped chain
func (s Scenario) Validate() error {
	invalid := func(reason string) error {
		return fmt.Errorf("%w %q: %s", ErrInvalidScenario, s.Name, reason)
	}

	if s.Name == "" {
		return invalid("name is required")
	}

	if s.ThenThrow != "" {
		if s.Then != nil || s.OrElse != nil || s.OrElseThrow != "" {
			return invalid("then_throw concludes the chain on its own")
		}
		if s.Given != nil {
			return invalid("then_throw is not available on parameterized chains")
		}
		return nil
	}

	if s.Then == nil {
		return invalid("then or then_throw is required")
	}
	if s.OrElse == nil && s.OrElseThrow == "" {
		return invalid("or_else or or_else_throw is required")
	}
	if s.OrElse != nil && s.OrElseThrow != "" {
		return invalid("or_else and or_else_throw are exclusive")
	}

	steps := []*Step{s.Then, s.OrElse}
	for _, step := range steps {
		if step == nil {
			continue
		}
		if step.kinds() != 1 {
			return invalid("a step sets exactly one of print, do, return, apply")
		}
		if step.needsParameter() && s.Given == nil {
			return invalid("do and apply need a given parameter")
		}
		if err := step.resolve(); err != nil {
			return fmt.Errorf("scenario %q: %w", s.Name, err)
		}
	}

	if s.OrElse != nil && s.Then.returns() != s.OrElse.returns() {
		return invalid("then and or_else must both produce a value or both not")
	}
	return nil
}

func (s Step) resolve() error {
	if s.Do != "" {
		if _, ok := consumers[s.Do]; !ok {
			return fmt.Errorf("%w: do %q", ErrUnknownStep, s.Do)
		}
	}
	if s.Apply != "" {
		if _, ok := functions[s.Apply]; !ok {
			return fmt.Errorf("%w: apply %q", ErrUnknownStep, s.Apply)
		}
	}
	return nil
}
