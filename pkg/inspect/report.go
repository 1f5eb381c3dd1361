package inspect

import (
	"fmt"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formstate/pkg/announce"
	"github.com/goliatone/go-formstate/pkg/fieldset"
	"github.com/goliatone/go-formstate/pkg/fieldstate"
	"github.com/goliatone/go-formstate/pkg/fieldtree"
)

const reportTemplate = `Form: {{ form }}
Strategy: {{ strategy }}  Status: {{ status }}

{% for row in rows %}{{ row.marker }} {{ row.path }}{% if row.flags %} [{{ row.flags }}]{% endif %}
{% for message in row.messages %}    - {{ message }}
{% endfor %}{% endfor %}
Blocking: {{ blocking }}  Warnings: {{ warnings }}
Errors visible: {{ show_errors }}  Warnings visible: {{ show_warnings }}
`

var (
	reportOnce sync.Once
	reportTpl  *pongo2.Template
	reportErr  error
)

func reportTemplateSet() (*pongo2.Template, error) {
	reportOnce.Do(func() {
		reportTpl, reportErr = pongo2.FromString(reportTemplate)
	})
	return reportTpl, reportErr
}

// Report renders a plain-text report of the engine's decisions for the
// snapshot, aggregated at root ("" for the whole form).
func Report(snap *Snapshot, root string) (string, error) {
	if snap == nil {
		return "", fmt.Errorf("inspect: snapshot is required")
	}

	tpl, err := reportTemplateSet()
	if err != nil {
		return "", fmt.Errorf("inspect: compile report template: %w", err)
	}

	tree := snap.Tree()
	strategy := snap.ResolvedStrategy()
	status := snap.Status()
	group := fieldset.New(tree, root, snap.modelValue(), strategy, status)

	var rows []map[string]any
	tree.Walk(root, snap.modelValue(), func(v fieldtree.Visit) {
		state := v.Node.State()
		flags := fieldstate.FlagsOf(state)

		marker := "·"
		if len(v.Node.Findings()) > 0 {
			marker = "!"
		}

		path := v.Path
		if path == "" {
			path = "(root)"
		}

		var messages []string
		for _, f := range v.Node.Findings() {
			text := announce.SanitizeMessage(f.Message)
			if text == "" {
				text = f.Kind
			}
			messages = append(messages, fmt.Sprintf("%s: %s", f.Kind, text))
		}

		rows = append(rows, map[string]any{
			"marker":   marker,
			"path":     path,
			"flags":    flagsLabel(flags),
			"messages": messages,
		})
	})

	out, err := tpl.Execute(pongo2.Context{
		"form":          label(snap.Form),
		"strategy":      string(strategy),
		"status":        string(status),
		"rows":          rows,
		"blocking":      len(group.Findings.Blocking),
		"warnings":      len(group.Findings.Warnings),
		"show_errors":   group.ShouldShowErrors(),
		"show_warnings": group.ShouldShowWarnings(),
	})
	if err != nil {
		return "", fmt.Errorf("inspect: render report: %w", err)
	}
	return out, nil
}

func label(name string) string {
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		return trimmed
	}
	return "(unnamed)"
}

func flagsLabel(flags fieldstate.Flags) string {
	var parts []string
	if flags.Touched {
		parts = append(parts, "touched")
	}
	if flags.Dirty {
		parts = append(parts, "dirty")
	}
	if flags.Pending {
		parts = append(parts, "pending")
	}
	if flags.Valid {
		parts = append(parts, "valid")
	}
	if flags.Invalid {
		parts = append(parts, "invalid")
	}
	return strings.Join(parts, ",")
}
