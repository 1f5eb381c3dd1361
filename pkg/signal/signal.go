// Package signal is the minimal observable-cell runtime hosting the engine's
// derived values: writable cells with change notification, memoized derived
// computations, and a watcher primitive that observes transitions (previous
// and current value) rather than snapshots.
//
// The model is cooperative and push-based. Computations are synchronous pure
// functions of current cell values; a read always sees a fully computed
// value, but no ordering is defined between independent cells.
package signal

import "sync"

// Source is anything whose change history can be summarized as a
// monotonically increasing version. Cells and Deriveds are Sources, so
// derived values can chain.
type Source interface {
	Version() uint64
}

// Cell is a writable reactive value. Set only notifies watchers when the
// value actually changed, which is why T must be comparable.
type Cell[T comparable] struct {
	mu       sync.Mutex
	value    T
	version  uint64
	watchers map[int]func(prev, curr T)
	nextKey  int
}

// NewCell returns a cell seeded with the initial value at version zero.
func NewCell[T comparable](initial T) *Cell[T] {
	return &Cell[T]{value: initial}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Set stores a new value. Watchers run synchronously, in registration order,
// with both the previous and the new value; they are not invoked when the
// value is unchanged.
func (c *Cell[T]) Set(value T) {
	c.mu.Lock()
	if c.value == value {
		c.mu.Unlock()
		return
	}
	prev := c.value
	c.value = value
	c.version++
	watchers := make([]func(prev, curr T), 0, len(c.watchers))
	for key := 0; key < c.nextKey; key++ {
		if fn, ok := c.watchers[key]; ok {
			watchers = append(watchers, fn)
		}
	}
	c.mu.Unlock()

	for _, fn := range watchers {
		fn(prev, value)
	}
}

// Version implements Source.
func (c *Cell[T]) Version() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.version
}

// Watch registers a transition observer and returns its remover. The observer
// fires on every effective change until removed.
func (c *Cell[T]) Watch(fn func(prev, curr T)) (remove func()) {
	if fn == nil {
		return func() {}
	}
	c.mu.Lock()
	if c.watchers == nil {
		c.watchers = make(map[int]func(prev, curr T))
	}
	key := c.nextKey
	c.nextKey++
	c.watchers[key] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.watchers, key)
		c.mu.Unlock()
	}
}

// Derived is a memoized computation over declared sources. It recomputes
// lazily on Get when any source changed since the last computation; versions
// only grow, so the summed source version is itself monotonic.
type Derived[T any] struct {
	mu      sync.Mutex
	compute func() T
	sources []Source
	cached  T
	seen    uint64
	valid   bool
}

// NewDerived builds a derived value. The compute function must be pure over
// the declared sources; undeclared inputs will not invalidate the memo.
func NewDerived[T any](compute func() T, sources ...Source) *Derived[T] {
	deps := make([]Source, 0, len(sources))
	for _, src := range sources {
		if src != nil {
			deps = append(deps, src)
		}
	}
	return &Derived[T]{compute: compute, sources: deps}
}

// Get returns the memoized value, recomputing first if any source moved.
func (d *Derived[T]) Get() T {
	d.mu.Lock()
	defer d.mu.Unlock()

	sum := d.versionSumLocked()
	if !d.valid || sum != d.seen {
		d.cached = d.compute()
		d.seen = sum
		d.valid = true
	}
	return d.cached
}

// Version implements Source so deriveds can feed other deriveds.
func (d *Derived[T]) Version() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.versionSumLocked()
}

func (d *Derived[T]) versionSumLocked() uint64 {
	var sum uint64
	for _, src := range d.sources {
		sum += src.Version()
	}
	return sum
}
