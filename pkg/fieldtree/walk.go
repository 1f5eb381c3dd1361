package fieldtree

import "sort"

// Visit describes one node reached during a walk. Node is nil when no state
// was registered for the path — the walk is driven by the model shape, not by
// the arena, so model keys without nodes are still visited and arena nodes
// without model keys are skipped.
type Visit struct {
	Node *Node
	Path string
	// Value is the model value at Path.
	Value any
	// Leaf reports whether Value is neither a keyed structure nor an
	// ordered list (nil included). Only leaves contribute their findings to
	// leaf-level aggregation; interior nodes carry cross-field findings.
	Leaf bool
}

// VisitFunc receives each visited path in traversal order.
type VisitFunc func(Visit)

// Walk descends from root guided by the model value's shape: keyed structures
// recurse per key (sorted, for deterministic traversal order), ordered lists
// recurse by index up to their current length, and everything else is a leaf.
// The descent is strictly bounded by the model value, so cycles cannot occur.
func (t *Tree) Walk(root string, modelValue any, visit VisitFunc) {
	if visit == nil {
		return
	}
	value := modelValue
	if resolved, ok := ResolveValue(modelValue, root); ok {
		value = resolved
	} else if root != "" {
		value = nil
	}
	t.walk(JoinSegments(SplitPath(root)...), value, visit)
}

func (t *Tree) walk(path string, value any, visit VisitFunc) {
	node, _ := t.Lookup(path)

	switch typed := value.(type) {
	case map[string]any:
		visit(Visit{Node: node, Path: path, Value: value})
		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			t.walk(JoinPath(path, key), typed[key], visit)
		}
	case []any:
		visit(Visit{Node: node, Path: path, Value: value})
		for idx, item := range typed {
			t.walk(IndexPath(path, idx), item, visit)
		}
	default:
		visit(Visit{Node: node, Path: path, Value: value, Leaf: true})
	}
}
