package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/goliatone/go-formstate/pkg/finding"
	"github.com/goliatone/go-formstate/pkg/inspect"
	"github.com/goliatone/go-formstate/pkg/prompt"
	"github.com/goliatone/go-formstate/pkg/visibility"
)

func main() {
	snapshot := flag.String("snapshot", "form.yaml", "form snapshot path (YAML)")
	fieldset := flag.String("fieldset", "", "subtree root to aggregate (empty for whole form)")
	strategy := flag.String("strategy", "", "display strategy override (immediate|on-touch|on-submit|manual)")
	interactive := flag.Bool("interactive", false, "walk the form interactively instead of printing a report")
	flag.Parse()

	snap, err := inspect.LoadSnapshot(*snapshot)
	if err != nil {
		log.Fatalf("Failed to load snapshot: %v", err)
	}

	if raw := strings.TrimSpace(*strategy); raw != "" {
		parsed, ok := visibility.ParseStrategy(raw)
		if !ok {
			log.Fatalf("invalid strategy: %q", raw)
		}
		snap.Strategy = string(parsed)
	}

	if *interactive {
		runSession(snap)
		return
	}

	report, err := inspect.Report(snap, *fieldset)
	if err != nil {
		log.Fatalf("Failed to build report: %v", err)
	}
	fmt.Print(report)
}

// runSession replays the snapshot's findings as a per-field validator so the
// interactive walk shows the same feedback the report would.
func runSession(snap *inspect.Snapshot) {
	ctx := context.Background()

	validate := func(path string, value any) []finding.Finding {
		field, ok := snap.Fields[path]
		if !ok {
			return nil
		}
		if s, isString := value.(string); isString && strings.TrimSpace(s) != "" {
			return nil
		}
		out := make([]finding.Finding, 0, len(field.Findings))
		for _, f := range field.Findings {
			out = append(out, finding.Finding{Kind: f.Kind, Message: f.Message})
		}
		return out
	}

	session := prompt.NewSession(snap.Model,
		prompt.WithValidator(validate),
		prompt.WithStrategy(snap.ResolvedStrategy()),
	)

	result, err := session.Run(ctx)
	if err != nil {
		log.Fatalf("Session failed: %v", err)
	}

	fmt.Printf("status: %s, blocking: %d, warnings: %d\n",
		result.Status, len(result.Findings.Blocking), len(result.Findings.Warnings))
}
