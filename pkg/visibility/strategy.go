package visibility

import (
	"strings"
	"sync"
)

// Strategy names a display policy for validation findings.
type Strategy string

const (
	// StrategyImmediate shows findings as soon as they exist.
	StrategyImmediate Strategy = "immediate"
	// StrategyOnTouch shows findings once the field was touched or a submit
	// was attempted. This is the hard-coded fallback.
	StrategyOnTouch Strategy = "on-touch"
	// StrategyOnSubmit shows findings only once a submit was attempted.
	StrategyOnSubmit Strategy = "on-submit"
	// StrategyManual never shows findings automatically.
	StrategyManual Strategy = "manual"
)

// Known reports whether s is one of the defined strategies.
func (s Strategy) Known() bool {
	switch s {
	case StrategyImmediate, StrategyOnTouch, StrategyOnSubmit, StrategyManual:
		return true
	default:
		return false
	}
}

// ParseStrategy normalizes a raw string into a Strategy. Unknown or empty
// input yields ("", false).
func ParseStrategy(raw string) (Strategy, bool) {
	s := Strategy(strings.ToLower(strings.TrimSpace(raw)))
	if s.Known() {
		return s, true
	}
	return "", false
}

// Source yields the strategy that currently applies. Implementations may be
// static or reactively resolved.
type Source interface {
	Strategy() Strategy
}

// SourceFunc adapts a zero-argument accessor into a Source.
type SourceFunc func() Strategy

// Strategy delegates to the underlying function.
func (fn SourceFunc) Strategy() Strategy {
	return fn()
}

// Static returns a Source that always yields s.
func Static(s Strategy) Source {
	return SourceFunc(func() Strategy { return s })
}

var (
	defaultMu       sync.RWMutex
	defaultStrategy = StrategyOnTouch
)

// DefaultStrategy returns the process-wide default, used as the last link of
// the resolution chain before the hard-coded on-touch fallback.
func DefaultStrategy() Strategy {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultStrategy
}

// SetDefaultStrategy replaces the process-wide default. Unknown strategies
// are ignored.
func SetDefaultStrategy(s Strategy) {
	if !s.Known() {
		return
	}
	defaultMu.Lock()
	defaultStrategy = s
	defaultMu.Unlock()
}

// Resolve walks the precedence chain — typically (explicit override, form
// default) — returning the first source that yields a known strategy, then
// the process default, then on-touch. Nil sources fall through.
func Resolve(sources ...Source) Strategy {
	for _, src := range sources {
		if src == nil {
			continue
		}
		if s := src.Strategy(); s.Known() {
			return s
		}
	}
	if s := DefaultStrategy(); s.Known() {
		return s
	}
	return StrategyOnTouch
}
