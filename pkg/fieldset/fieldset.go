// Package fieldset aggregates findings across a subtree of fields for
// group-level display: collect in traversal order, deduplicate, classify, and
// apply the display policy with blocking errors taking precedence over
// warnings.
package fieldset

import (
	"github.com/goliatone/go-formstate/pkg/fieldstate"
	"github.com/goliatone/go-formstate/pkg/fieldtree"
	"github.com/goliatone/go-formstate/pkg/finding"
	"github.com/goliatone/go-formstate/pkg/submission"
	"github.com/goliatone/go-formstate/pkg/visibility"
)

// Collect gathers the direct findings of every node reached by walking the
// subtree rooted at root, in traversal order. Interior nodes contribute their
// own findings (cross-field validators on composite objects) alongside leaf
// findings.
func Collect(tree *fieldtree.Tree, root string, modelValue any) []finding.Finding {
	var all []finding.Finding
	tree.Walk(root, modelValue, func(v fieldtree.Visit) {
		all = append(all, v.Node.Findings()...)
	})
	return all
}

// Aggregate concatenates, deduplicates, and classifies findings for a group.
// When explicit nodes are supplied, only their direct findings are read —
// descendants are not followed — letting callers hand-pick the fields feeding
// a display, bypassing tree shape. Otherwise the subtree at root is walked.
func Aggregate(tree *fieldtree.Tree, root string, modelValue any, explicit ...*fieldtree.Node) finding.Classified {
	var all []finding.Finding
	if len(explicit) > 0 {
		for _, node := range explicit {
			all = append(all, node.Findings()...)
		}
	} else {
		all = Collect(tree, root, modelValue)
	}
	return finding.Classify(finding.Dedupe(all))
}

// Group is the derived view of a fieldset at one evaluation: classified
// findings, the root's flags, and the already-decided visibility booleans
// downstream consumers read.
type Group struct {
	// Path is the subtree root the group was aggregated from.
	Path string
	// Findings holds the deduplicated, classified findings of the group.
	Findings finding.Classified
	// Flags summarizes the root node's own state via safe access; absent
	// accessors read as false, never panic.
	Flags fieldstate.Flags
	// Strategy and Status are the resolved inputs the visibility decision
	// was made with.
	Strategy visibility.Strategy
	Status   submission.Status

	show bool
}

// New evaluates a group: aggregates the subtree (or the explicit nodes),
// reads the root's flags, and resolves visibility once against the root's
// state.
func New(tree *fieldtree.Tree, root string, modelValue any, strategy visibility.Strategy, status submission.Status, explicit ...*fieldtree.Node) Group {
	rootNode, _ := tree.Lookup(root)
	rootState := rootNode.State()

	return Group{
		Path:     fieldtree.JoinSegments(fieldtree.SplitPath(root)...),
		Findings: Aggregate(tree, root, modelValue, explicit...),
		Flags:    fieldstate.FlagsOf(rootState),
		Strategy: strategy,
		Status:   status,
		show:     visibility.ShouldShow(rootState, strategy, status),
	}
}

// HasBlocking reports whether the group aggregated any blocking finding.
func (g Group) HasBlocking() bool {
	return g.Findings.HasBlocking()
}

// HasWarnings reports whether the group aggregated any warning finding.
func (g Group) HasWarnings() bool {
	return g.Findings.HasWarnings()
}

// ShouldShowErrors reports whether the group's blocking findings are visible
// under the resolved strategy.
func (g Group) ShouldShowErrors() bool {
	return g.show && g.HasBlocking()
}

// ShouldShowWarnings reports whether the group's warnings are visible.
// Blocking errors always take visual and ARIA precedence: warnings stay
// hidden whenever errors are shown.
func (g Group) ShouldShowWarnings() bool {
	return !g.ShouldShowErrors() && g.show && g.HasWarnings()
}
