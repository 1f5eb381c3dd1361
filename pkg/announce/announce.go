// Package announce builds the ARIA live-region payloads that surface
// findings to assistive technology. Region ids come from the identity
// package; message text is sanitized to plain text so markup in
// validator-supplied messages can never reach aria-live output.
package announce

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formstate/pkg/finding"
	"github.com/goliatone/go-formstate/pkg/identity"
)

// Region is one live region bound to a field. Errors use role="alert" with
// assertive delivery; warnings use role="status" with polite delivery.
type Region struct {
	ID       string
	Role     string
	Live     string
	Messages []string
}

// Empty reports whether the region carries no announceable text.
func (r Region) Empty() bool {
	return len(r.Messages) == 0
}

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

func plainTextPolicy() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

// SanitizeMessage strips any markup from a finding message and collapses it
// to trimmed plain text.
func SanitizeMessage(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := plainTextPolicy().Sanitize(trimmed)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

// messages sanitizes each finding's text, falling back to the machine kind
// when no usable message survives, and drops duplicates introduced by
// sanitization.
func messages(findings []finding.Finding) []string {
	if len(findings) == 0 {
		return nil
	}
	out := make([]string, 0, len(findings))
	seen := make(map[string]struct{}, len(findings))
	for _, f := range findings {
		text := SanitizeMessage(f.Message)
		if text == "" {
			text = strings.TrimSpace(f.Kind)
		}
		if text == "" {
			continue
		}
		if _, exists := seen[text]; exists {
			continue
		}
		seen[text] = struct{}{}
		out = append(out, text)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ErrorRegion builds the blocking-error region for a field.
func ErrorRegion(fieldName string, blocking []finding.Finding) Region {
	return Region{
		ID:       identity.ErrorID(fieldName),
		Role:     "alert",
		Live:     "assertive",
		Messages: messages(blocking),
	}
}

// WarningRegion builds the warning region for a field.
func WarningRegion(fieldName string, warnings []finding.Finding) Region {
	return Region{
		ID:       identity.WarningID(fieldName),
		Role:     "status",
		Live:     "polite",
		Messages: messages(warnings),
	}
}

// ForField returns the single active region for one evaluation, honoring
// blocking precedence: when errors are visible the warning region never
// activates, so a field announces at most once per evaluation. The show flag
// is the already-decided visibility verdict; ok is false when nothing should
// be announced.
func ForField(fieldName string, classified finding.Classified, show bool) (Region, bool) {
	if !show {
		return Region{}, false
	}
	if classified.HasBlocking() {
		region := ErrorRegion(fieldName, classified.Blocking)
		return region, !region.Empty()
	}
	if classified.HasWarnings() {
		region := WarningRegion(fieldName, classified.Warnings)
		return region, !region.Empty()
	}
	return Region{}, false
}
