// Package engine reconciles a segment catalog against the kernel-phase
// format schema. It is a pure function from (catalog, schema) to an ordered
// list of findings: every check always runs, so one pass surfaces the
// complete diagnostic picture instead of stopping at the first problem.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"kpfits/internal/catalog"
	"kpfits/internal/schema"
)

// Severity classifies a finding. Only FAIL affects the overall verdict.
type Severity string

const (
	Pass    Severity = "PASS"
	Fail    Severity = "FAIL"
	Warning Severity = "WARNING"
)

// Finding is one structured validation result.
type Finding struct {
	Severity Severity
	CheckID  string
	Message  string
}

// Check identifiers, stable across releases.
const (
	CheckSegmentCount = "segment-count-floor"
	CheckMandatory    = "mandatory-hdus-present"
	CheckUnknown      = "unknown-hdu"
)

// consistencyCheckID returns the check id for one quantity.
func consistencyCheckID(quantity string) string {
	return "consistency:" + quantity
}

// Check runs every structural and cross-segment check in fixed order and
// returns the full findings list. Structural checks come first so "not
// enough data" reads apart from "data present but inconsistent".
func Check(cat catalog.Catalog, sch *schema.Schema) []Finding {
	findings := []Finding{
		checkSegmentCount(cat, sch),
		checkMandatory(cat, sch),
	}
	for _, quantity := range sch.Quantities {
		findings = append(findings, checkQuantity(cat, quantity))
	}
	findings = append(findings, checkUnknownNames(cat, sch)...)
	return findings
}

// OverallPass reports the verdict: true iff no finding is FAIL. Warnings
// are surfaced but never change the verdict.
func OverallPass(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == Fail {
			return false
		}
	}
	return true
}

// checkSegmentCount enforces the minimum segment count.
func checkSegmentCount(cat catalog.Catalog, sch *schema.Schema) Finding {
	if len(cat) < sch.MinimumSegments {
		return Finding{
			Severity: Fail,
			CheckID:  CheckSegmentCount,
			Message:  fmt.Sprintf("file has %d HDUs, the format requires at least %d", len(cat), sch.MinimumSegments),
		}
	}
	return Finding{
		Severity: Pass,
		CheckID:  CheckSegmentCount,
		Message:  fmt.Sprintf("file has %d HDUs (minimum %d)", len(cat), sch.MinimumSegments),
	}
}

// checkMandatory verifies every required segment name appears in the
// catalog. Missing names are aggregated into a single finding.
func checkMandatory(cat catalog.Catalog, sch *schema.Schema) Finding {
	var missing []string
	for _, name := range sch.MandatoryNames() {
		if !cat.Has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return Finding{
			Severity: Fail,
			CheckID:  CheckMandatory,
			Message:  "missing mandatory HDUs: " + strings.Join(missing, ", "),
		}
	}
	return Finding{
		Severity: Pass,
		CheckID:  CheckMandatory,
		Message:  "all mandatory HDUs present",
	}
}

// checkQuantity gathers the bound axis value from every present segment
// and compares them. Segments bound but absent are skipped here; their
// absence is the mandatory-presence check's concern. Fewer than two
// gathered values means there is nothing to compare.
func checkQuantity(cat catalog.Catalog, quantity schema.Quantity) Finding {
	checkID := consistencyCheckID(quantity.Name)
	var values []int
	for _, binding := range quantity.Bindings {
		seg, ok := cat.Find(binding.Segment)
		if !ok {
			continue
		}
		if binding.Axis >= len(seg.Shape) {
			return Finding{
				Severity: Fail,
				CheckID:  checkID,
				Message: fmt.Sprintf("%s axis %d is bound to %s but the HDU has only %d %s",
					binding.Segment, binding.Axis, quantity.Label, len(seg.Shape), axisWord(len(seg.Shape))),
			}
		}
		values = append(values, seg.Shape[binding.Axis])
	}
	if len(values) < 2 {
		return Finding{
			Severity: Pass,
			CheckID:  checkID,
			Message:  fmt.Sprintf("number of %s not cross-checked (fewer than two HDUs present)", quantity.Label),
		}
	}
	if distinct := distinctValues(values); len(distinct) > 1 {
		return Finding{
			Severity: Fail,
			CheckID:  checkID,
			Message:  fmt.Sprintf("Inconsistent number of %s: %s", quantity.Label, formatValues(distinct)),
		}
	}
	return Finding{
		Severity: Pass,
		CheckID:  checkID,
		Message:  fmt.Sprintf("number of %s consistent across %d axes (%d)", quantity.Label, len(values), values[0]),
	}
}

// checkUnknownNames warns, once per name, about segments outside the
// format's mandatory and optional name sets.
func checkUnknownNames(cat catalog.Catalog, sch *schema.Schema) []Finding {
	var findings []Finding
	warned := map[string]bool{}
	for _, seg := range cat {
		if sch.Known(seg.Name) || warned[seg.Name] {
			continue
		}
		warned[seg.Name] = true
		findings = append(findings, Finding{
			Severity: Warning,
			CheckID:  CheckUnknown,
			Message:  fmt.Sprintf("%s is not a standard HDU name", seg.Name),
		})
	}
	return findings
}

// axisWord declines "axis" for a count.
func axisWord(n int) string {
	if n == 1 {
		return "axis"
	}
	return "axes"
}

// distinctValues keeps the first occurrence of each value, in encounter
// order.
func distinctValues(values []int) []int {
	seen := map[int]bool{}
	var distinct []int
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		distinct = append(distinct, v)
	}
	return distinct
}

// formatValues renders values as "[105, 104]".
func formatValues(values []int) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, strconv.Itoa(v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
