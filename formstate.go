// Package formstate is the top-level entry point for the validation-state
// engine: it binds a field-node tree, a submission lifecycle tracker, and
// display-strategy defaults into a Form whose derived field and fieldset
// views expose only already-decided booleans, lists, and identifiers to
// rendering and inspection layers.
//
// The engine never mutates field state; it reads snapshots owned by the
// external validation runtime and recomputes its derived views from current
// state on every read, so results are idempotent and independent of update
// order — with the single exception of the submission tracker, which
// deliberately observes transitions.
package formstate

import (
	"github.com/goliatone/go-formstate/pkg/announce"
	"github.com/goliatone/go-formstate/pkg/fieldset"
	"github.com/goliatone/go-formstate/pkg/fieldstate"
	"github.com/goliatone/go-formstate/pkg/fieldtree"
	"github.com/goliatone/go-formstate/pkg/finding"
	"github.com/goliatone/go-formstate/pkg/identity"
	"github.com/goliatone/go-formstate/pkg/signal"
	"github.com/goliatone/go-formstate/pkg/submission"
	"github.com/goliatone/go-formstate/pkg/visibility"
)

// Re-exported aliases so small consumers only import the root package.
type (
	Finding      = finding.Finding
	Classified   = finding.Classified
	State        = fieldstate.State
	Snapshot     = fieldstate.Snapshot
	SnapshotData = fieldstate.SnapshotData
	Node         = fieldtree.Node
	Tree         = fieldtree.Tree
	Group        = fieldset.Group
	Strategy     = visibility.Strategy
	Status       = submission.Status
	Region       = announce.Region
)

const (
	StrategyImmediate = visibility.StrategyImmediate
	StrategyOnTouch   = visibility.StrategyOnTouch
	StrategyOnSubmit  = visibility.StrategyOnSubmit
	StrategyManual    = visibility.StrategyManual

	StatusUnsubmitted = submission.StatusUnsubmitted
	StatusSubmitting  = submission.StatusSubmitting
	StatusSubmitted   = submission.StatusSubmitted
)

// NewSnapshot re-exports the fieldstate constructor.
func NewSnapshot(data SnapshotData) Snapshot {
	return fieldstate.NewSnapshot(data)
}

// Option configures a Form.
type Option func(*Form)

// WithDefaultStrategy fixes the form-level default display strategy,
// consulted when a field has no explicit override.
func WithDefaultStrategy(s Strategy) Option {
	return WithStrategySource(visibility.Static(s))
}

// WithStrategySource supplies a reactively-resolved form-level default.
func WithStrategySource(src visibility.Source) Option {
	return func(f *Form) {
		if src != nil {
			f.defaultStrategy = src
		}
	}
}

// WithModel supplies the accessor yielding the form's current model value.
// The tree walk is driven by this value's shape.
func WithModel(accessor func() any) Option {
	return func(f *Form) {
		if accessor != nil {
			f.model = accessor
		}
	}
}

// WithSubmissionSignals binds the form to externally-owned submitting and
// touched cells instead of the form's internal ones.
func WithSubmissionSignals(submitting, touched *signal.Cell[bool]) Option {
	return func(f *Form) {
		if submitting != nil {
			f.submitting = submitting
		}
		if touched != nil {
			f.touched = touched
		}
	}
}

// Form is one live form instance. It owns the node arena and the submission
// tracker; field states remain owned by the validation runtime.
type Form struct {
	tree            *fieldtree.Tree
	model           func() any
	defaultStrategy visibility.Source
	submitting      *signal.Cell[bool]
	touched         *signal.Cell[bool]
	tracker         *submission.Tracker
	stop            func()
	// anon names fields evaluated without a path; the generated fallback is
	// stable for the form's lifetime.
	anon *identity.NameResolver
}

// New constructs a Form and wires its submission tracker to the submitting
// and touched cells (internal ones unless supplied via options).
func New(options ...Option) *Form {
	form := &Form{
		tree:       fieldtree.NewTree(),
		submitting: signal.NewCell(false),
		touched:    signal.NewCell(false),
		anon:       identity.NewNameResolver(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(form)
		}
	}
	form.tracker, form.stop = submission.Track(form.submitting, form.touched)
	return form
}

// Close detaches the submission watchers. The form stays readable; its status
// simply stops advancing.
func (f *Form) Close() {
	if f != nil && f.stop != nil {
		f.stop()
	}
}

// Tree exposes the node arena for registration and inspection tooling.
func (f *Form) Tree() *fieldtree.Tree {
	return f.tree
}

// Register adds or replaces the node at path.
func (f *Form) Register(path string, source fieldtree.StateSource) *Node {
	return f.tree.Register(path, source)
}

// SetSubmitting drives the live submitting boolean.
func (f *Form) SetSubmitting(v bool) {
	f.submitting.Set(v)
}

// SetTouched drives the live form-level touched boolean. Dropping it to false
// while not submitting is the reset signal that collapses the status back to
// unsubmitted.
func (f *Form) SetTouched(v bool) {
	f.touched.Set(v)
}

// Status returns the derived submission status.
func (f *Form) Status() Status {
	if f == nil {
		return StatusUnsubmitted
	}
	return f.tracker.Status()
}

func (f *Form) modelValue() any {
	if f.model == nil {
		return nil
	}
	return f.model()
}

// Field evaluates the derived view of one field using the form's default
// strategy resolution.
func (f *Form) Field(path string) FieldView {
	return f.FieldWithStrategy(path, nil)
}

// FieldWithStrategy evaluates a field view with an explicit strategy override
// at the head of the precedence chain.
func (f *Form) FieldWithStrategy(path string, explicit visibility.Source) FieldView {
	node, _ := f.tree.Lookup(path)
	state := node.State()
	strategy := visibility.Resolve(explicit, f.defaultStrategy)
	status := f.Status()

	name := fieldtree.JoinSegments(fieldtree.SplitPath(path)...)
	if name == "" {
		name = f.anon.Resolve()
	}

	return FieldView{
		Name:     name,
		Path:     node.Path(),
		State:    state,
		Findings: finding.Classify(finding.Dedupe(fieldstate.Findings(state))),
		Strategy: strategy,
		Status:   status,
		show:     visibility.ShouldShow(state, strategy, status),
	}
}

// Fieldset evaluates the aggregated view of the subtree rooted at path, or of
// the explicitly listed field paths when supplied.
func (f *Form) Fieldset(path string, explicitPaths ...string) Group {
	strategy := visibility.Resolve(f.defaultStrategy)

	var explicit []*fieldtree.Node
	for _, p := range explicitPaths {
		if node, ok := f.tree.Lookup(p); ok {
			explicit = append(explicit, node)
		}
	}

	return fieldset.New(f.tree, path, f.modelValue(), strategy, f.Status(), explicit...)
}

// FieldView is the per-field derived snapshot downstream consumers read:
// classified findings plus already-decided visibility booleans and ARIA ids.
type FieldView struct {
	Name     string
	Path     string
	State    any
	Findings Classified
	Strategy Strategy
	Status   Status

	show bool
}

// HasBlocking reports whether the field carries blocking findings.
func (v FieldView) HasBlocking() bool {
	return v.Findings.HasBlocking()
}

// HasWarnings reports whether the field carries warning findings.
func (v FieldView) HasWarnings() bool {
	return v.Findings.HasWarnings()
}

// ShouldShow reports the raw visibility verdict, independent of whether there
// is anything to show.
func (v FieldView) ShouldShow() bool {
	return v.show
}

// ShouldShowErrors reports whether blocking findings are currently visible.
func (v FieldView) ShouldShowErrors() bool {
	return v.show && v.HasBlocking()
}

// ShouldShowWarnings reports whether warnings are currently visible. Blocking
// errors take precedence: warnings stay hidden while errors are shown.
func (v FieldView) ShouldShowWarnings() bool {
	return !v.ShouldShowErrors() && v.show && v.HasWarnings()
}

// ErrorID returns the field's ARIA error-region id.
func (v FieldView) ErrorID() string {
	return identity.ErrorID(v.Name)
}

// WarningID returns the field's ARIA warning-region id.
func (v FieldView) WarningID() string {
	return identity.WarningID(v.Name)
}

// ActiveRegion returns the single live region to announce for this
// evaluation, if any.
func (v FieldView) ActiveRegion() (Region, bool) {
	return announce.ForField(v.Name, v.Findings, v.show)
}
