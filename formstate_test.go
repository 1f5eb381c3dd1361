package formstate_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	formstate "github.com/goliatone/go-formstate"
	"github.com/goliatone/go-formstate/pkg/fieldtree"
	"github.com/goliatone/go-formstate/pkg/visibility"
)

// runtimeField mimics the external validation runtime's mutable ownership of
// a field state: the engine reads fresh snapshots through the source.
type runtimeField struct {
	data formstate.SnapshotData
}

func (r *runtimeField) source() fieldtree.StateSource {
	return fieldtree.StateFunc(func() any { return formstate.NewSnapshot(r.data) })
}

func TestRequiredFieldOnTouchScenario(t *testing.T) {
	form := formstate.New(formstate.WithDefaultStrategy(formstate.StrategyOnTouch))
	defer form.Close()

	email := &runtimeField{data: formstate.SnapshotData{
		Invalid:  true,
		Findings: []formstate.Finding{{Kind: "required"}},
	}}
	form.Register("email", email.source())

	view := form.Field("email")
	if view.ShouldShowErrors() {
		t.Fatal("untouched field must not show errors under on-touch")
	}
	if !view.HasBlocking() {
		t.Fatal("blocking finding must still be classified while hidden")
	}

	// Blur the field.
	email.data.Touched = true

	view = form.Field("email")
	if !view.ShouldShowErrors() {
		t.Fatal("touched field must show errors")
	}
	if !view.ShouldShow() {
		t.Fatal("visibility verdict should be true after touch")
	}
}

func TestSubmitLifecycleThroughForm(t *testing.T) {
	form := formstate.New()
	defer form.Close()

	if got := form.Status(); got != formstate.StatusUnsubmitted {
		t.Fatalf("initial status = %q", got)
	}

	form.SetTouched(true)
	form.SetSubmitting(true)
	if got := form.Status(); got != formstate.StatusSubmitting {
		t.Fatalf("during submit = %q", got)
	}

	form.SetSubmitting(false)
	if got := form.Status(); got != formstate.StatusSubmitted {
		t.Fatalf("after submit = %q", got)
	}

	// A submit attempt reveals on-submit findings even for untouched fields.
	field := &runtimeField{data: formstate.SnapshotData{
		Findings: []formstate.Finding{{Kind: "required"}},
	}}
	form.Register("name", field.source())

	view := form.FieldWithStrategy("name", visibility.Static(formstate.StrategyOnSubmit))
	if !view.ShouldShowErrors() {
		t.Fatal("on-submit errors must show once submitted")
	}

	// Reset collapses back to unsubmitted.
	form.SetTouched(false)
	if got := form.Status(); got != formstate.StatusUnsubmitted {
		t.Fatalf("after reset = %q", got)
	}
	view = form.FieldWithStrategy("name", visibility.Static(formstate.StrategyOnSubmit))
	if view.ShouldShowErrors() {
		t.Fatal("reset must hide on-submit errors again")
	}
}

func TestFieldViewRegionWiring(t *testing.T) {
	form := formstate.New(formstate.WithDefaultStrategy(formstate.StrategyImmediate))
	defer form.Close()

	field := &runtimeField{data: formstate.SnapshotData{
		Findings: []formstate.Finding{
			{Kind: "required", Message: "Required"},
			{Kind: "warn:weak", Message: "Weak"},
		},
	}}
	form.Register("password", field.source())

	view := form.Field("password")
	if view.ErrorID() != "password-error" || view.WarningID() != "password-warning" {
		t.Fatalf("region ids = %q / %q", view.ErrorID(), view.WarningID())
	}

	region, ok := view.ActiveRegion()
	if !ok {
		t.Fatal("expected an active region")
	}
	if region.ID != "password-error" {
		t.Fatalf("errors take announcement precedence, got %q", region.ID)
	}
	if view.ShouldShowWarnings() {
		t.Fatal("warnings hidden while errors show")
	}
}

func TestFieldsetAggregationThroughForm(t *testing.T) {
	model := map[string]any{
		"owner": map[string]any{"email": "", "phone": ""},
	}
	form := formstate.New(
		formstate.WithDefaultStrategy(formstate.StrategyImmediate),
		formstate.WithModel(func() any { return model }),
	)
	defer form.Close()

	required := formstate.Finding{Kind: "required", Message: "Required"}
	emailField := &runtimeField{data: formstate.SnapshotData{Findings: []formstate.Finding{required}}}
	phoneField := &runtimeField{data: formstate.SnapshotData{Findings: []formstate.Finding{required}}}
	form.Register("owner.email", emailField.source())
	form.Register("owner.phone", phoneField.source())

	group := form.Fieldset("owner")
	want := []formstate.Finding{required}
	if diff := cmp.Diff(want, group.Findings.Blocking); diff != "" {
		t.Fatalf("sibling dedup mismatch (-want +got):\n%s", diff)
	}
	if !group.ShouldShowErrors() {
		t.Fatal("immediate strategy shows aggregated errors")
	}

	// Explicit field selection bypasses the subtree.
	group = form.Fieldset("owner", "owner.email")
	if diff := cmp.Diff(want, group.Findings.Blocking); diff != "" {
		t.Fatalf("explicit selection mismatch (-want +got):\n%s", diff)
	}
}

func TestUnregisteredFieldDegrades(t *testing.T) {
	form := formstate.New()
	defer form.Close()

	view := form.Field("missing")
	if view.HasBlocking() || view.HasWarnings() || view.ShouldShowErrors() {
		t.Fatal("absent field must degrade to empty view")
	}
	if view.Name != "missing" {
		t.Fatalf("name = %q", view.Name)
	}
}
