// Package inspect provides the debugging surface over a form's derived
// state: point-in-time YAML snapshots of a field tree and a human-readable
// report of what the engine would decide for them. It consumes only the
// engine's already-decided outputs, like any other downstream layer.
package inspect

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formstate/pkg/fieldstate"
	"github.com/goliatone/go-formstate/pkg/fieldtree"
	"github.com/goliatone/go-formstate/pkg/finding"
	"github.com/goliatone/go-formstate/pkg/submission"
	"github.com/goliatone/go-formstate/pkg/visibility"
)

// SnapshotFinding is the YAML shape of one finding.
type SnapshotFinding struct {
	Kind    string `yaml:"kind"`
	Message string `yaml:"message,omitempty"`
}

// SnapshotField is the YAML shape of one field's flags and direct findings,
// keyed by dotted path in the snapshot document.
type SnapshotField struct {
	Touched  bool              `yaml:"touched,omitempty"`
	Dirty    bool              `yaml:"dirty,omitempty"`
	Pending  bool              `yaml:"pending,omitempty"`
	Valid    bool              `yaml:"valid,omitempty"`
	Invalid  bool              `yaml:"invalid,omitempty"`
	Findings []SnapshotFinding `yaml:"findings,omitempty"`
}

// Snapshot is a point-in-time capture of a form suitable for offline
// inspection: the model value driving the tree shape, per-path field states,
// and the submission booleans the lifecycle would be derived from.
type Snapshot struct {
	Form       string                   `yaml:"form,omitempty"`
	Strategy   string                   `yaml:"strategy,omitempty"`
	Submitting bool                     `yaml:"submitting,omitempty"`
	Submitted  bool                     `yaml:"submitted,omitempty"`
	Model      map[string]any           `yaml:"model"`
	Fields     map[string]SnapshotField `yaml:"fields"`
}

// ParseSnapshot decodes a YAML snapshot document.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("inspect: parse snapshot: %w", err)
	}
	return &snap, nil
}

// LoadSnapshot reads and decodes a YAML snapshot file.
func LoadSnapshot(path string) (*Snapshot, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("inspect: snapshot path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("inspect: read snapshot: %w", err)
	}
	return ParseSnapshot(data)
}

// Tree materializes a field-node arena from the snapshot. Each field's state
// is a fixed fieldstate.Snapshot whose value is resolved from the model by
// path.
func (s *Snapshot) Tree() *fieldtree.Tree {
	tree := fieldtree.NewTree()
	if s == nil {
		return tree
	}
	for path, field := range s.Fields {
		value, _ := fieldtree.ResolveValue(s.modelValue(), path)
		findings := make([]finding.Finding, 0, len(field.Findings))
		for _, f := range field.Findings {
			findings = append(findings, finding.Finding{Kind: f.Kind, Message: f.Message})
		}
		snap := fieldstate.NewSnapshot(fieldstate.SnapshotData{
			Value:    value,
			Touched:  field.Touched,
			Dirty:    field.Dirty,
			Pending:  field.Pending,
			Valid:    field.Valid,
			Invalid:  field.Invalid,
			Findings: findings,
		})
		tree.Register(path, fieldtree.StateFunc(func() any { return snap }))
	}
	return tree
}

func (s *Snapshot) modelValue() any {
	if s == nil || s.Model == nil {
		return nil
	}
	return s.Model
}

// ResolvedStrategy parses the snapshot's strategy through the standard
// precedence chain (snapshot value, process default, on-touch fallback).
func (s *Snapshot) ResolvedStrategy() visibility.Strategy {
	if s == nil {
		return visibility.Resolve()
	}
	parsed, ok := visibility.ParseStrategy(s.Strategy)
	if !ok {
		return visibility.Resolve()
	}
	return visibility.Resolve(visibility.Static(parsed))
}

// Status derives the lifecycle status a live tracker would report for the
// snapshot's booleans. A static capture cannot observe transitions, so the
// completed-submit bit is carried explicitly in the document.
func (s *Snapshot) Status() submission.Status {
	if s == nil {
		return submission.StatusUnsubmitted
	}
	switch {
	case s.Submitting:
		return submission.StatusSubmitting
	case s.Submitted:
		return submission.StatusSubmitted
	default:
		return submission.StatusUnsubmitted
	}
}
