// Package submission derives the submit lifecycle of a form from transitions
// of two observable booleans: "is submitting" and "touched". It is the one
// intentionally order-dependent piece of the engine — it tracks transitions,
// not snapshots.
package submission

import (
	"sync"

	"github.com/goliatone/go-formstate/pkg/signal"
)

// Status is the derived submit lifecycle state.
type Status string

const (
	// StatusUnsubmitted means no submit has completed since the last reset.
	StatusUnsubmitted Status = "unsubmitted"
	// StatusSubmitting means the live submitting boolean is currently true.
	StatusSubmitting Status = "submitting"
	// StatusSubmitted means at least one submit completed (submitting went
	// true then false) since the last detected reset.
	StatusSubmitted Status = "submitted"
)

// Tracker observes submitting/touched transitions and exposes the derived
// Status. Previous values initialize to false/false, so a tracker that never
// observes anything reports StatusUnsubmitted — the required degradation for
// an absent field state.
//
// Overlapping resubmission is collapsed: only the boolean is observed, so a
// submit restarting before its completion is seen is indistinguishable from
// one continuous submission.
type Tracker struct {
	mu sync.Mutex

	prevSubmitting bool
	prevTouched    bool
	submitting     bool
	hasSubmitted   bool
}

// NewTracker returns a tracker in the unsubmitted state.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Observe feeds the tracker one evaluation of the current submitting and
// touched values and returns the resulting status. A true→false transition of
// submitting marks a completed submit; a true→false transition of touched
// while not submitting is a reset and clears the completed mark.
func (t *Tracker) Observe(submitting, touched bool) Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch {
	case t.prevSubmitting && !submitting:
		t.hasSubmitted = true
	case t.prevTouched && !touched && !submitting:
		t.hasSubmitted = false
	}

	t.prevSubmitting = submitting
	t.prevTouched = touched
	t.submitting = submitting

	return t.statusLocked()
}

// Status returns the current derived status without feeding new observations.
func (t *Tracker) Status() Status {
	if t == nil {
		return StatusUnsubmitted
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.statusLocked()
}

func (t *Tracker) statusLocked() Status {
	if t.submitting {
		return StatusSubmitting
	}
	if t.hasSubmitted {
		return StatusSubmitted
	}
	return StatusUnsubmitted
}

// Track wires a tracker to live cells and returns it together with a stop
// function that detaches the watchers. Nil cells are treated as an absent
// source and read as false; with both absent the tracker stays unsubmitted
// and performs no transition bookkeeping.
func Track(submitting, touched *signal.Cell[bool]) (*Tracker, func()) {
	tracker := NewTracker()

	read := func(cell *signal.Cell[bool]) bool {
		if cell == nil {
			return false
		}
		return cell.Get()
	}

	if submitting == nil && touched == nil {
		return tracker, func() {}
	}

	// Seed with the current values so the first real transition compares
	// against live state, not the false/false defaults.
	tracker.Observe(read(submitting), read(touched))

	var removers []func()
	observe := func(bool, bool) {
		tracker.Observe(read(submitting), read(touched))
	}
	if submitting != nil {
		removers = append(removers, submitting.Watch(observe))
	}
	if touched != nil {
		removers = append(removers, touched.Watch(observe))
	}

	return tracker, func() {
		for _, remove := range removers {
			remove()
		}
	}
}
