// Package fieldtree holds the field-node arena mirroring the shape of the
// underlying form model. Nodes are indexed by dotted path instead of holding
// child pointers; traversal is driven by the model value itself, so stale
// nodes are skipped and cycles are impossible.
package fieldtree

import (
	"sort"
	"sync"

	"github.com/goliatone/go-formstate/pkg/fieldstate"
	"github.com/goliatone/go-formstate/pkg/finding"
)

// StateSource resolves a node to its current field state. The returned value
// may be nil or partial; readers go through fieldstate safe accessors.
type StateSource interface {
	FieldState() any
}

// StateFunc adapts a function into a StateSource.
type StateFunc func() any

// FieldState delegates to the underlying function.
func (fn StateFunc) FieldState() any {
	return fn()
}

// Node is one entry in the arena. It carries no child pointers; descendants
// are found by path during a walk.
type Node struct {
	path   string
	source StateSource
}

// Path returns the node's dotted path within the tree.
func (n *Node) Path() string {
	if n == nil {
		return ""
	}
	return n.path
}

// State resolves the node's current field state, nil-safe.
func (n *Node) State() any {
	if n == nil || n.source == nil {
		return nil
	}
	return n.source.FieldState()
}

// Findings returns the node's direct findings (never its descendants').
func (n *Node) Findings() []finding.Finding {
	return fieldstate.Findings(n.State())
}

// Tree is the arena of registered nodes. It is owned by the form instance;
// the engine only reads states through it.
type Tree struct {
	mu    sync.RWMutex
	nodes map[string]*Node
}

// NewTree returns an empty arena.
func NewTree() *Tree {
	return &Tree{nodes: make(map[string]*Node)}
}

// Register adds or replaces the node at path and returns it. The path is
// normalized (trimmed segments, empty segments dropped).
func (t *Tree) Register(path string, source StateSource) *Node {
	normalized := JoinSegments(SplitPath(path)...)
	node := &Node{path: normalized, source: source}

	t.mu.Lock()
	if t.nodes == nil {
		t.nodes = make(map[string]*Node)
	}
	t.nodes[normalized] = node
	t.mu.Unlock()

	return node
}

// Lookup returns the node registered at path, if any.
func (t *Tree) Lookup(path string) (*Node, bool) {
	if t == nil {
		return nil, false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	node, ok := t.nodes[JoinSegments(SplitPath(path)...)]
	return node, ok
}

// Remove drops the node at path. Removing an unknown path is a no-op; this is
// how array-item deletion reaches the arena.
func (t *Tree) Remove(path string) {
	if t == nil {
		return
	}
	t.mu.Lock()
	delete(t.nodes, JoinSegments(SplitPath(path)...))
	t.mu.Unlock()
}

// Len reports how many nodes are registered.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.nodes)
}

// Paths returns the registered paths in sorted order, for inspection tooling.
func (t *Tree) Paths() []string {
	if t == nil {
		return nil
	}
	t.mu.RLock()
	out := make([]string, 0, len(t.nodes))
	for path := range t.nodes {
		out = append(out, path)
	}
	t.mu.RUnlock()

	sort.Strings(out)
	return out
}
