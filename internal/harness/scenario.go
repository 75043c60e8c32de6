package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/roach88/pratt/internal/grammar"
	"github.com/roach88/pratt/internal/pratt"
	"github.com/roach88/pratt/internal/tree"
)

// Scenario defines a conformance test scenario.
type Scenario struct {
	// Name uniquely identifies this scenario. It names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Grammar is the path of a YAML or CUE grammar file. LoadScenario
	// resolves relative paths against the scenario file's directory.
	Grammar string `yaml:"grammar,omitempty"`

	// Builtin names a builtin grammar. Exactly one of Grammar and Builtin
	// must be set.
	Builtin string `yaml:"builtin,omitempty"`

	// Separators is "lenient" (default) or "strict".
	Separators string `yaml:"separators,omitempty"`

	// MaxDepth limits expression nesting. Zero means unlimited.
	MaxDepth int `yaml:"max_depth,omitempty"`

	// Cases are parsed in order.
	Cases []Case `yaml:"cases"`
}

// Case is one input and its expected outcome.
type Case struct {
	// Input is the source text. It may be empty.
	Input string `yaml:"input"`

	// Expect is the expected tree as an s-expression.
	Expect string `yaml:"expect,omitempty"`

	// Error is the expected error code.
	Error string `yaml:"error,omitempty"`
}

var knownCodes = map[string]bool{
	string(pratt.ErrCodeEmptyInput):       true,
	string(pratt.ErrCodeInvalidPosition):  true,
	string(pratt.ErrCodeMissingReducer):   true,
	string(pratt.ErrCodeTrailingInput):    true,
	string(pratt.ErrCodeMissingSeparator): true,
	string(pratt.ErrCodeDepthExceeded):    true,
	tree.CodeUnknownToken:                 true,
	tree.CodeOther:                        true,
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, err
	}

	if scenario.Grammar != "" && !filepath.IsAbs(scenario.Grammar) {
		scenario.Grammar = filepath.Join(filepath.Dir(path), scenario.Grammar)
	}

	if err := validateScenario(scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return scenario, nil
}

// ParseScenario decodes a scenario without validating it.
// Unknown fields are rejected (catches typos like "case:" vs "cases:").
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &scenario, nil
}

// LoadGrammar returns the operator table the scenario runs against.
func (s *Scenario) LoadGrammar() (*grammar.Table, error) {
	if s.Builtin != "" {
		return grammar.Builtin(s.Builtin)
	}
	return grammar.Load(s.Grammar)
}

// SeparatorMode returns the parsed separator mode.
func (s *Scenario) SeparatorMode() (pratt.SeparatorMode, error) {
	mode, ok := pratt.ParseSeparatorMode(s.Separators)
	if !ok {
		return mode, fmt.Errorf("separators must be lenient or strict, got %q", s.Separators)
	}
	return mode, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	switch {
	case s.Grammar == "" && s.Builtin == "":
		return fmt.Errorf("one of grammar or builtin is required")
	case s.Grammar != "" && s.Builtin != "":
		return fmt.Errorf("grammar and builtin are mutually exclusive")
	}

	if s.Grammar != "" {
		if _, err := os.Stat(s.Grammar); os.IsNotExist(err) {
			return fmt.Errorf("grammar file not found: %s", s.Grammar)
		}
	}

	if _, err := s.SeparatorMode(); err != nil {
		return err
	}

	if s.MaxDepth < 0 {
		return fmt.Errorf("max_depth must be non-negative")
	}

	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	for i, c := range s.Cases {
		switch {
		case c.Expect == "" && c.Error == "":
			return fmt.Errorf("cases[%d]: one of expect or error is required", i)
		case c.Expect != "" && c.Error != "":
			return fmt.Errorf("cases[%d]: expect and error are mutually exclusive", i)
		case c.Error != "" && !knownCodes[c.Error]:
			return fmt.Errorf("cases[%d]: unknown error code %q", i, c.Error)
		}
	}

	return nil
}
