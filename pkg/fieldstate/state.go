// Package fieldstate defines the minimal capability surface the engine reads
// from the external validation runtime. Implementations may satisfy any
// subset of the capabilities; readers go through the package-level safe
// accessors, which degrade to zero values instead of panicking on nil or
// partial states.
package fieldstate

import "github.com/goliatone/go-formstate/pkg/finding"

// State is the full capability set of a field snapshot.
type State interface {
	Valuer
	Toucher
	Dirtier
	Pender
	Validity
	FindingSource
}

// Valuer exposes the field's current value.
type Valuer interface {
	Value() any
}

// Toucher exposes whether the field has been blurred at least once.
type Toucher interface {
	Touched() bool
}

// Dirtier exposes whether the field's value changed from its initial value.
type Dirtier interface {
	Dirty() bool
}

// Pender exposes whether an async validation is in flight for the field.
type Pender interface {
	Pending() bool
}

// Validity exposes the runtime's current verdict for the field.
type Validity interface {
	Valid() bool
	Invalid() bool
}

// FindingSource exposes the field's direct findings (its own, not its
// descendants').
type FindingSource interface {
	Findings() []finding.Finding
}

// Value reads the field value, or nil when the state lacks the capability.
func Value(state any) any {
	if s, ok := state.(Valuer); ok && s != nil {
		return s.Value()
	}
	return nil
}

// Touched reads the touched flag, defaulting to false.
func Touched(state any) bool {
	if s, ok := state.(Toucher); ok && s != nil {
		return s.Touched()
	}
	return false
}

// Dirty reads the dirty flag, defaulting to false.
func Dirty(state any) bool {
	if s, ok := state.(Dirtier); ok && s != nil {
		return s.Dirty()
	}
	return false
}

// Pending reads the pending flag, defaulting to false.
func Pending(state any) bool {
	if s, ok := state.(Pender); ok && s != nil {
		return s.Pending()
	}
	return false
}

// Valid reads the valid flag, defaulting to false. Absence of a verdict is
// not a verdict: a partial state is neither valid nor invalid.
func Valid(state any) bool {
	if s, ok := state.(Validity); ok && s != nil {
		return s.Valid()
	}
	return false
}

// Invalid reads the invalid flag, defaulting to false.
func Invalid(state any) bool {
	if s, ok := state.(Validity); ok && s != nil {
		return s.Invalid()
	}
	return false
}

// Findings reads the direct findings, defaulting to nil.
func Findings(state any) []finding.Finding {
	if s, ok := state.(FindingSource); ok && s != nil {
		return s.Findings()
	}
	return nil
}

// Flags is the boolean summary of a state, extracted via the safe accessors
// so absent capabilities read as false.
type Flags struct {
	Touched bool
	Dirty   bool
	Pending bool
	Valid   bool
	Invalid bool
}

// FlagsOf summarizes any state, including nil and partial ones.
func FlagsOf(state any) Flags {
	return Flags{
		Touched: Touched(state),
		Dirty:   Dirty(state),
		Pending: Pending(state),
		Valid:   Valid(state),
		Invalid: Invalid(state),
	}
}
