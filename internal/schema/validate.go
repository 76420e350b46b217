package schema

import (
	"fmt"
	"strings"
)

// Issue captures one problem with a schema definition.
type Issue struct {
	Field   string
	Message string
}

// SchemaError aggregates schema self-check issues. A bad schema is a
// configuration error, never a data-quality finding.
type SchemaError struct {
	Issues []Issue
}

// Error renders schema errors as a multi-line string.
func (err *SchemaError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "schema validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// issueCollector accumulates schema issues.
type issueCollector struct {
	issues []Issue
}

// add records a new schema issue.
func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

// result returns a SchemaError when issues are present.
func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &SchemaError{Issues: c.issues}
}

// Validate self-checks the schema table and reports every problem at once.
func (s *Schema) Validate() error {
	collector := &issueCollector{}

	if s.Version == 0 {
		collector.add("version", "is required")
	} else if s.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", s.Version))
	}

	if s.MinimumSegments <= 0 {
		collector.add("minimum_segments", "must be positive")
	}
	if len(s.Mandatory) == 0 {
		collector.add("mandatory", "is required")
	}

	known := map[string]bool{}
	checkNames := func(field string, names []string) {
		for i, name := range names {
			where := fmt.Sprintf("%s[%d]", field, i)
			if strings.TrimSpace(name) == "" {
				collector.add(where, "is empty")
				continue
			}
			if known[name] {
				collector.add(where, fmt.Sprintf("duplicate segment name %q", name))
			}
			known[name] = true
		}
	}
	checkNames("mandatory", s.Mandatory)
	checkNames("optional", s.Optional)

	seen := map[string]bool{}
	for i, q := range s.Quantities {
		where := fmt.Sprintf("quantities[%d]", i)
		if strings.TrimSpace(q.Name) == "" {
			collector.add(where+".name", "is empty")
		} else if seen[q.Name] {
			collector.add(where+".name", fmt.Sprintf("duplicate quantity %q", q.Name))
		}
		seen[q.Name] = true
		if len(q.Bindings) == 0 {
			collector.add(where+".bindings", "is empty")
		}
		for j, b := range q.Bindings {
			at := fmt.Sprintf("%s.bindings[%d]", where, j)
			if b.Axis < 0 {
				collector.add(at+".axis", "must not be negative")
			}
			if strings.TrimSpace(b.Segment) == "" {
				collector.add(at+".segment", "is empty")
			} else if !known[b.Segment] {
				collector.add(at+".segment", fmt.Sprintf("%q is neither mandatory nor optional", b.Segment))
			}
		}
	}

	return collector.result()
}
