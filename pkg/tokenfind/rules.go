package tokenfind

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RulesFile represents the structure of a YAML rules file. The tokens list
// is ordered; its order becomes the registration order and therefore the
// any-type trial order. Highlight and Verbose are presentation flags for
// the caller — the matching engine itself ignores them.
type RulesFile struct {
	Tokens    []TokenRule `yaml:"tokens"`
	Highlight bool        `yaml:"highlight"`
	Verbose   bool        `yaml:"verbose"`
}

// TokenRule is a single (type, pattern) pair in a rules file.
type TokenRule struct {
	Type    string `yaml:"type"`
	Pattern string `yaml:"pattern"`
}

// DefaultRules returns the built-in token set. Users typically start from
// this (via the --make-rules output) and edit it.
func DefaultRules() *RulesFile {
	return &RulesFile{
		Tokens: []TokenRule{
			{Type: "number", Pattern: `\b[0-9]+\b`},
			{Type: "email", Pattern: `\b[\w.%+-]+@[\w.-]+\.[A-Za-z]{2,}\b`},
			{Type: "ip", Pattern: `\b(?:[0-9]{1,3}\.){3}[0-9]{1,3}\b`},
			// The alternation binds loosely: \b anchors the ISO branch on
			// the left and the slash branch on the right only. Kept as
			// documented; override it in a rules file if that bites.
			{Type: "date", Pattern: `\b[0-9]{4}-[0-9]{2}-[0-9]{2}|[0-9]{2}/[0-9]{2}/[0-9]{4}\b`},
		},
		Highlight: true,
		Verbose:   false,
	}
}

// LoadRulesFile loads and parses a YAML rules file.
func LoadRulesFile(filename string) (*RulesFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file '%s': %w", filename, err)
	}

	var rules RulesFile
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse YAML in rules file '%s': %w", filename, err)
	}

	return &rules, nil
}

// Apply registers every token rule into reg, in file order. It stops at
// the first failure: a *PatternError for a pattern that does not compile,
// or a plain error for a rule with no type name. Rules registered before
// the failure remain registered.
func (rf *RulesFile) Apply(reg *Registry) error {
	for i, rule := range rf.Tokens {
		if rule.Type == "" {
			return fmt.Errorf("token rule %d: missing type name", i+1)
		}
		if err := reg.Register(Type(rule.Type), rule.Pattern); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistryFromRules builds a fresh registry from a rules file.
func NewRegistryFromRules(rf *RulesFile) (*Registry, error) {
	reg := NewRegistry()
	if err := rf.Apply(reg); err != nil {
		return nil, err
	}
	return reg, nil
}
