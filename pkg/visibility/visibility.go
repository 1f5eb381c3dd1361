// Package visibility decides when validation findings become visible to the
// user. It answers only "is it time to show" — whether there is anything to
// show is the caller's separate check against the classified findings.
package visibility

import (
	"github.com/goliatone/go-formstate/pkg/fieldstate"
	"github.com/goliatone/go-formstate/pkg/submission"
)

// ShouldShow applies the display-strategy decision table to the current field
// state and submission status. The state may be nil or partial; an absent
// touched capability reads as false, and an unrecognized strategy behaves as
// the on-touch fallback.
//
//	immediate  always visible
//	on-touch   visible once touched or once a submit was attempted
//	on-submit  visible once a submit was attempted
//	manual     never visible; the caller branches on raw findings itself
func ShouldShow(state any, strategy Strategy, status submission.Status) bool {
	switch strategy {
	case StrategyImmediate:
		return true
	case StrategyOnSubmit:
		return status != submission.StatusUnsubmitted
	case StrategyManual:
		return false
	default:
		return fieldstate.Touched(state) || status != submission.StatusUnsubmitted
	}
}
