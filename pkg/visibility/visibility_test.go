package visibility_test

import (
	"testing"

	"github.com/goliatone/go-formstate/pkg/fieldstate"
	"github.com/goliatone/go-formstate/pkg/submission"
	"github.com/goliatone/go-formstate/pkg/visibility"
)

func snapshot(touched bool) fieldstate.Snapshot {
	return fieldstate.NewSnapshot(fieldstate.SnapshotData{Touched: touched})
}

func TestShouldShowDecisionTable(t *testing.T) {
	cases := []struct {
		name     string
		touched  bool
		strategy visibility.Strategy
		status   submission.Status
		want     bool
	}{
		{"immediate untouched unsubmitted", false, visibility.StrategyImmediate, submission.StatusUnsubmitted, true},
		{"on-touch untouched unsubmitted", false, visibility.StrategyOnTouch, submission.StatusUnsubmitted, false},
		{"on-submit untouched unsubmitted", false, visibility.StrategyOnSubmit, submission.StatusUnsubmitted, false},
		{"manual untouched unsubmitted", false, visibility.StrategyManual, submission.StatusUnsubmitted, false},
		{"on-touch touched unsubmitted", true, visibility.StrategyOnTouch, submission.StatusUnsubmitted, true},
		{"on-touch untouched submitted", false, visibility.StrategyOnTouch, submission.StatusSubmitted, true},
		{"on-touch touched submitted", true, visibility.StrategyOnTouch, submission.StatusSubmitted, true},
		{"on-submit untouched submitted", false, visibility.StrategyOnSubmit, submission.StatusSubmitted, true},
		{"on-submit untouched submitting", false, visibility.StrategyOnSubmit, submission.StatusSubmitting, true},
		{"manual touched submitted", true, visibility.StrategyManual, submission.StatusSubmitted, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := visibility.ShouldShow(snapshot(tc.touched), tc.strategy, tc.status)
			if got != tc.want {
				t.Fatalf("ShouldShow(touched=%v, %q, %q) = %v, want %v",
					tc.touched, tc.strategy, tc.status, got, tc.want)
			}
		})
	}
}

func TestShouldShowNilStateDegrades(t *testing.T) {
	if visibility.ShouldShow(nil, visibility.StrategyOnTouch, submission.StatusUnsubmitted) {
		t.Fatal("nil state must read as untouched")
	}
	if !visibility.ShouldShow(nil, visibility.StrategyOnTouch, submission.StatusSubmitted) {
		t.Fatal("submitted status must still trigger on-touch visibility")
	}
}

func TestShouldShowUnknownStrategyFallsBackToOnTouch(t *testing.T) {
	if visibility.ShouldShow(snapshot(false), visibility.Strategy("bogus"), submission.StatusUnsubmitted) {
		t.Fatal("unknown strategy should behave as on-touch")
	}
	if !visibility.ShouldShow(snapshot(true), visibility.Strategy("bogus"), submission.StatusUnsubmitted) {
		t.Fatal("unknown strategy should behave as on-touch")
	}
}

func TestParseStrategy(t *testing.T) {
	if s, ok := visibility.ParseStrategy("  On-Touch "); !ok || s != visibility.StrategyOnTouch {
		t.Fatalf("ParseStrategy = %q, %v", s, ok)
	}
	if _, ok := visibility.ParseStrategy("whenever"); ok {
		t.Fatal("unknown strategy should not parse")
	}
}

func TestResolvePrecedence(t *testing.T) {
	explicit := visibility.Static(visibility.StrategyImmediate)
	formDefault := visibility.Static(visibility.StrategyOnSubmit)

	if got := visibility.Resolve(explicit, formDefault); got != visibility.StrategyImmediate {
		t.Fatalf("explicit should win, got %q", got)
	}
	if got := visibility.Resolve(nil, formDefault); got != visibility.StrategyOnSubmit {
		t.Fatalf("form default should win when explicit is absent, got %q", got)
	}

	unset := visibility.SourceFunc(func() visibility.Strategy { return "" })
	if got := visibility.Resolve(unset, nil); got != visibility.StrategyOnTouch {
		t.Fatalf("fallback should be on-touch, got %q", got)
	}
}

func TestResolveUsesProcessDefault(t *testing.T) {
	visibility.SetDefaultStrategy(visibility.StrategyOnSubmit)
	defer visibility.SetDefaultStrategy(visibility.StrategyOnTouch)

	if got := visibility.Resolve(); got != visibility.StrategyOnSubmit {
		t.Fatalf("process default not honored, got %q", got)
	}

	// Unknown values never replace the default.
	visibility.SetDefaultStrategy("bogus")
	if got := visibility.Resolve(); got != visibility.StrategyOnSubmit {
		t.Fatalf("unknown default should be ignored, got %q", got)
	}
}
