package finding

import "strings"

// WarningPrefix marks non-blocking findings. Validators opt a finding out of
// blocking submission by prefixing its kind, e.g. "warn:password-weak".
const WarningPrefix = "warn:"

// Finding is a single validation outcome. Kind is the machine identifier
// produced by the validator; Message is optional human-readable text resolved
// upstream (an empty string is the normalized form of "no message").
type Finding struct {
	Kind    string `json:"kind"`
	Message string `json:"message,omitempty"`
}

// Warning reports whether the finding is non-blocking.
func (f Finding) Warning() bool {
	return strings.HasPrefix(f.Kind, WarningPrefix)
}

// Classified splits findings into blocking errors and non-blocking warnings.
// The two slices are disjoint and preserve the input order.
type Classified struct {
	Blocking []Finding
	Warnings []Finding
}

// HasBlocking reports whether any blocking finding is present.
func (c Classified) HasBlocking() bool {
	return len(c.Blocking) > 0
}

// HasWarnings reports whether any warning finding is present.
func (c Classified) HasWarnings() bool {
	return len(c.Warnings) > 0
}

// Classify partitions findings by the WarningPrefix convention. It does not
// deduplicate; callers that aggregate across fields should run Dedupe first.
func Classify(findings []Finding) Classified {
	var out Classified
	for _, f := range findings {
		if f.Warning() {
			out.Warnings = append(out.Warnings, f)
			continue
		}
		out.Blocking = append(out.Blocking, f)
	}
	return out
}

// Dedupe removes findings whose (kind, message) pair was already seen,
// preserving first-occurrence order. A missing message compares equal to an
// empty one. Returns nil for empty input so callers can range safely.
func Dedupe(findings []Finding) []Finding {
	if len(findings) == 0 {
		return nil
	}

	out := make([]Finding, 0, len(findings))
	seen := make(map[Finding]struct{}, len(findings))

	for _, f := range findings {
		if _, exists := seen[f]; exists {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
