package fieldtree

import (
	"strconv"
	"strings"
)

// JoinPath concatenates two dotted paths, tolerating empty halves.
func JoinPath(parent, child string) string {
	parent = strings.TrimSpace(parent)
	child = strings.TrimSpace(child)
	if parent == "" {
		return child
	}
	if child == "" {
		return parent
	}
	return parent + "." + child
}

// JoinSegments builds a dotted path from individual segments, dropping empty
// ones.
func JoinSegments(segments ...string) string {
	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		trimmed := strings.TrimSpace(segment)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return strings.Join(out, ".")
}

// SplitPath breaks a dotted path into segments, dropping empty ones.
func SplitPath(path string) []string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil
	}
	parts := strings.Split(trimmed, ".")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			continue
		}
		out = append(out, segment)
	}
	return out
}

// IndexPath appends a numeric array index to a parent path.
func IndexPath(parent string, index int) string {
	return JoinPath(parent, strconv.Itoa(index))
}

// ResolveValue descends into a model value following a dotted path: keyed
// structures by key, ordered lists by numeric index. The empty path resolves
// to the value itself.
func ResolveValue(value any, path string) (any, bool) {
	current := value
	for _, segment := range SplitPath(path) {
		switch node := current.(type) {
		case map[string]any:
			next, ok := node[segment]
			if !ok {
				return nil, false
			}
			current = next
		case []any:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		default:
			return nil, false
		}
	}
	return current, true
}
