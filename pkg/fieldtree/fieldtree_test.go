package fieldtree_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formstate/pkg/fieldstate"
	"github.com/goliatone/go-formstate/pkg/fieldtree"
	"github.com/goliatone/go-formstate/pkg/finding"
)

func staticState(data fieldstate.SnapshotData) fieldtree.StateSource {
	snap := fieldstate.NewSnapshot(data)
	return fieldtree.StateFunc(func() any { return snap })
}

func TestRegisterLookupRemove(t *testing.T) {
	tree := fieldtree.NewTree()

	node := tree.Register("owner.email", staticState(fieldstate.SnapshotData{Touched: true}))
	if node.Path() != "owner.email" {
		t.Fatalf("path = %q", node.Path())
	}

	found, ok := tree.Lookup("owner.email")
	if !ok || found != node {
		t.Fatal("lookup should return the registered node")
	}
	if !fieldstate.Touched(found.State()) {
		t.Fatal("state should resolve through the source")
	}

	tree.Remove("owner.email")
	if _, ok := tree.Lookup("owner.email"); ok {
		t.Fatal("removed node still present")
	}
	if tree.Len() != 0 {
		t.Fatalf("len = %d", tree.Len())
	}
}

func TestNodeNilSafety(t *testing.T) {
	var node *fieldtree.Node
	if node.Path() != "" || node.State() != nil || node.Findings() != nil {
		t.Fatal("nil node accessors must degrade")
	}
}

func TestWalkFollowsModelShape(t *testing.T) {
	tree := fieldtree.NewTree()
	model := map[string]any{
		"name": "Ada",
		"owner": map[string]any{
			"email": "ada@example.com",
		},
		"tags": []any{"a", "b"},
	}

	var visited []string
	var leaves []string
	tree.Walk("", model, func(v fieldtree.Visit) {
		visited = append(visited, v.Path)
		if v.Leaf {
			leaves = append(leaves, v.Path)
		}
	})

	wantVisited := []string{"", "name", "owner", "owner.email", "tags", "tags.0", "tags.1"}
	if diff := cmp.Diff(wantVisited, visited); diff != "" {
		t.Fatalf("visit order mismatch (-want +got):\n%s", diff)
	}

	wantLeaves := []string{"name", "owner.email", "tags.0", "tags.1"}
	if diff := cmp.Diff(wantLeaves, leaves); diff != "" {
		t.Fatalf("leaves mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkSkipsStaleNodes(t *testing.T) {
	tree := fieldtree.NewTree()
	tree.Register("ghost", staticState(fieldstate.SnapshotData{
		Findings: []finding.Finding{{Kind: "required"}},
	}))

	model := map[string]any{"name": "Ada"}

	var visited []string
	tree.Walk("", model, func(v fieldtree.Visit) {
		visited = append(visited, v.Path)
	})

	want := []string{"", "name"}
	if diff := cmp.Diff(want, visited); diff != "" {
		t.Fatalf("stale node should be skipped (-want +got):\n%s", diff)
	}
}

func TestWalkSubtreeRoot(t *testing.T) {
	tree := fieldtree.NewTree()
	model := map[string]any{
		"owner": map[string]any{
			"email": "x",
			"phone": "y",
		},
	}

	var visited []string
	tree.Walk("owner", model, func(v fieldtree.Visit) {
		visited = append(visited, v.Path)
	})

	want := []string{"owner", "owner.email", "owner.phone"}
	if diff := cmp.Diff(want, visited); diff != "" {
		t.Fatalf("subtree walk mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkArrayBoundedByModelLength(t *testing.T) {
	tree := fieldtree.NewTree()
	// A node for an index the model no longer has.
	tree.Register("tags.2", staticState(fieldstate.SnapshotData{}))

	model := map[string]any{"tags": []any{"only"}}

	var visited []string
	tree.Walk("tags", model, func(v fieldtree.Visit) {
		visited = append(visited, v.Path)
	})

	want := []string{"tags", "tags.0"}
	if diff := cmp.Diff(want, visited); diff != "" {
		t.Fatalf("array walk mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkNilModelIsLeaf(t *testing.T) {
	tree := fieldtree.NewTree()

	var leaves int
	tree.Walk("", nil, func(v fieldtree.Visit) {
		if !v.Leaf {
			t.Fatalf("nil model should visit as leaf, got %+v", v)
		}
		leaves++
	})
	if leaves != 1 {
		t.Fatalf("expected a single leaf visit, got %d", leaves)
	}
}

func TestResolveValue(t *testing.T) {
	model := map[string]any{
		"tags": []any{
			map[string]any{"label": "x"},
		},
	}

	got, ok := fieldtree.ResolveValue(model, "tags.0.label")
	if !ok || got != "x" {
		t.Fatalf("ResolveValue = %v, %v", got, ok)
	}

	if _, ok := fieldtree.ResolveValue(model, "tags.5"); ok {
		t.Fatal("out-of-range index should not resolve")
	}
	if _, ok := fieldtree.ResolveValue(model, "missing"); ok {
		t.Fatal("missing key should not resolve")
	}
}
