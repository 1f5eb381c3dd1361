// Package identity generates the stable identifiers that wire assistive
// technology announcements to the correct field: process-unique ids for
// auto-named fields and deterministic error/warning region ids derived from
// a field name.
package identity

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
)

// counter is deliberately process-global: ids must stay unique across every
// form instance in the process, so prefixes share one sequence instead of
// keeping independent counters. It resets only at process start.
var counter atomic.Uint64

// NextID returns "<prefix>-<n>" where n is drawn from the shared monotonic
// counter. Numbers are never reused; per-prefix numbering is therefore
// non-contiguous. An empty prefix falls back to "field".
func NextID(prefix string) string {
	trimmed := strings.TrimSpace(prefix)
	if trimmed == "" {
		trimmed = "field"
	}
	return fmt.Sprintf("%s-%d", trimmed, counter.Add(1))
}

// ErrorID returns the ARIA error-region id for a field name. Uniqueness is
// only as good as the field name; callers own name uniqueness within a form.
func ErrorID(fieldName string) string {
	return fieldName + "-error"
}

// WarningID returns the ARIA warning-region id for a field name.
func WarningID(fieldName string) string {
	return fieldName + "-warning"
}

// Accessor yields the current value of a reactively-resolvable string input.
type Accessor func() string

// NameResolver resolves the effective name of a field following the
// precedence chain: explicit name, host element id, generated fallback. The
// generated fallback is created at most once per resolver and stays stable
// for the resolver's lifetime even when explicit inputs keep changing.
type NameResolver struct {
	explicit Accessor
	hostID   Accessor

	once      sync.Once
	generated string
}

// ResolverOption configures a NameResolver.
type ResolverOption func(*NameResolver)

// WithExplicitName supplies the reactive explicit-name input. Re-resolution
// picks up changes; an empty or whitespace-only value falls through.
func WithExplicitName(accessor Accessor) ResolverOption {
	return func(r *NameResolver) {
		if accessor != nil {
			r.explicit = accessor
		}
	}
}

// WithStaticName supplies a fixed explicit name.
func WithStaticName(name string) ResolverOption {
	return WithExplicitName(func() string { return name })
}

// WithHostID supplies the identifier already present on the bound host
// element, consulted when no explicit name resolves.
func WithHostID(accessor Accessor) ResolverOption {
	return func(r *NameResolver) {
		if accessor != nil {
			r.hostID = accessor
		}
	}
}

// NewNameResolver constructs a resolver with the provided inputs. A resolver
// with no inputs always answers with its generated fallback.
func NewNameResolver(options ...ResolverOption) *NameResolver {
	resolver := &NameResolver{}
	for _, opt := range options {
		if opt != nil {
			opt(resolver)
		}
	}
	return resolver
}

// Resolve returns the effective field name. This path cannot fail: when both
// the explicit name and the host id are absent it returns the stable
// generated id.
func (r *NameResolver) Resolve() string {
	if r == nil {
		return NextID("field")
	}
	if r.explicit != nil {
		if name := strings.TrimSpace(r.explicit()); name != "" {
			return name
		}
	}
	if r.hostID != nil {
		if id := strings.TrimSpace(r.hostID()); id != "" {
			return id
		}
	}
	r.once.Do(func() {
		r.generated = NextID("field")
	})
	return r.generated
}
