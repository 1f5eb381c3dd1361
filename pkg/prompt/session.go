package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-formstate/pkg/announce"
	"github.com/goliatone/go-formstate/pkg/fieldset"
	"github.com/goliatone/go-formstate/pkg/fieldstate"
	"github.com/goliatone/go-formstate/pkg/fieldtree"
	"github.com/goliatone/go-formstate/pkg/finding"
	"github.com/goliatone/go-formstate/pkg/submission"
	"github.com/goliatone/go-formstate/pkg/visibility"
)

// Validator produces the findings for one field's current value. Nil means
// "everything passes".
type Validator func(path string, value any) []finding.Finding

// Result summarizes a completed session.
type Result struct {
	// Status is the derived submission status at session end.
	Status submission.Status
	// Findings is the deduplicated, classified aggregate across all fields.
	Findings finding.Classified
	// Values holds the collected answers keyed by dotted path.
	Values map[string]any
}

// sessionField is the session-owned mutable state of one leaf. The session
// plays the role of the validation runtime; the engine only reads snapshots
// of it.
type sessionField struct {
	value    any
	touched  bool
	dirty    bool
	findings []finding.Finding
}

func (f *sessionField) snapshot() fieldstate.Snapshot {
	return fieldstate.NewSnapshot(fieldstate.SnapshotData{
		Value:    f.value,
		Touched:  f.touched,
		Dirty:    f.dirty,
		Valid:    len(f.findings) == 0,
		Invalid:  len(f.findings) > 0,
		Findings: f.findings,
	})
}

// Session walks a form model interactively.
type Session struct {
	model    map[string]any
	driver   Driver
	validate Validator
	strategy visibility.Source

	tree    *fieldtree.Tree
	tracker *submission.Tracker
	fields  map[string]*sessionField
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithDriver overrides the terminal driver (the survey driver by default).
func WithDriver(driver Driver) SessionOption {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithValidator supplies the per-field validator.
func WithValidator(validate Validator) SessionOption {
	return func(s *Session) {
		if validate != nil {
			s.validate = validate
		}
	}
}

// WithStrategy overrides the display strategy used when echoing findings.
func WithStrategy(strategy visibility.Strategy) SessionOption {
	return func(s *Session) {
		s.strategy = visibility.Static(strategy)
	}
}

// NewSession builds a session over the model value that drives the tree
// shape. Collected values live in the session, not in the model.
func NewSession(model map[string]any, options ...SessionOption) *Session {
	session := &Session{
		model:   model,
		driver:  NewSurveyDriver(),
		tree:    fieldtree.NewTree(),
		tracker: submission.NewTracker(),
		fields:  make(map[string]*sessionField),
	}
	for _, opt := range options {
		if opt != nil {
			opt(session)
		}
	}

	session.tree.Walk("", anyModel(model), func(v fieldtree.Visit) {
		if !v.Leaf {
			return
		}
		field := &sessionField{value: v.Value}
		session.fields[v.Path] = field
		session.tree.Register(v.Path, fieldtree.StateFunc(func() any {
			return field.snapshot()
		}))
	})

	return session
}

func anyModel(model map[string]any) any {
	if model == nil {
		return nil
	}
	return model
}

// Run prompts for every leaf in traversal order, then offers to submit.
// Findings are echoed only when the display policy says they are visible, so
// the terminal mirrors exactly what a rendered form would announce.
func (s *Session) Run(ctx context.Context) (Result, error) {
	strategy := visibility.Resolve(s.strategy)

	for _, path := range s.paths() {
		if err := s.askField(ctx, path, strategy); err != nil {
			return Result{}, err
		}
	}

	submit, err := s.driver.Confirm(ctx, ConfirmConfig{
		Message: "Submit?",
		Default: true,
	})
	if err != nil {
		return Result{}, err
	}
	if submit {
		s.tracker.Observe(true, true)
		s.tracker.Observe(false, true)
	}

	result := Result{
		Status:   s.tracker.Status(),
		Findings: fieldset.Aggregate(s.tree, "", anyModel(s.model)),
		Values:   s.values(),
	}

	if err := s.reportAggregate(ctx, result); err != nil {
		return Result{}, err
	}
	return result, nil
}

func (s *Session) paths() []string {
	var out []string
	s.tree.Walk("", anyModel(s.model), func(v fieldtree.Visit) {
		if v.Leaf {
			out = append(out, v.Path)
		}
	})
	return out
}

func (s *Session) askField(ctx context.Context, path string, strategy visibility.Strategy) error {
	field, ok := s.fields[path]
	if !ok {
		return nil
	}

	answer, err := s.driver.Input(ctx, InputConfig{
		Message: path,
		Default: valueLabel(field.value),
	})
	if err != nil {
		return err
	}

	if answer != valueLabel(field.value) {
		field.dirty = true
	}
	field.value = answer
	field.touched = true
	if s.validate != nil {
		field.findings = s.validate(path, answer)
	}

	view := field.snapshot()
	classified := finding.Classify(finding.Dedupe(field.findings))
	show := visibility.ShouldShow(view, strategy, s.tracker.Status())

	if region, active := announce.ForField(path, classified, show); active {
		for _, msg := range region.Messages {
			if err := s.driver.Info(ctx, fmt.Sprintf("[%s] %s", region.ID, msg)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Session) reportAggregate(ctx context.Context, result Result) error {
	var lines []string
	if result.Findings.HasBlocking() {
		lines = append(lines, fmt.Sprintf("%d blocking finding(s)", len(result.Findings.Blocking)))
	}
	if result.Findings.HasWarnings() {
		lines = append(lines, fmt.Sprintf("%d warning(s)", len(result.Findings.Warnings)))
	}
	if len(lines) == 0 {
		lines = append(lines, "all fields pass")
	}
	return s.driver.Info(ctx, fmt.Sprintf("%s — %s", result.Status, strings.Join(lines, ", ")))
}

func (s *Session) values() map[string]any {
	out := make(map[string]any, len(s.fields))
	for path, field := range s.fields {
		out[path] = field.value
	}
	return out
}

func valueLabel(value any) string {
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}
