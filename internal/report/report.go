// Package report renders validation findings into the human-readable
// transcript and derives the process exit status.
package report

import (
	"fmt"
	"io"

	"kpfits/internal/catalog"
	"kpfits/internal/engine"
)

const (
	ExitPass = 0
	ExitFail = 1
)

// Write prints the transcript for one file: header, the segment listing,
// one line per finding, and the overall verdict. Output is deterministic
// byte-for-byte when color is disabled.
func Write(w io.Writer, path string, cat catalog.Catalog, findings []engine.Finding, noColor bool) {
	fmt.Fprintf(w, "Validating: %s\n", path)
	WriteListing(w, cat)
	for _, finding := range findings {
		fmt.Fprintf(w, "%s  %s  %s\n",
			severityTag(finding.Severity, noColor), finding.CheckID, finding.Message)
	}
	fmt.Fprintf(w, "Overall: %s\n", verdictLabel(findings, noColor))
}

// WriteListing prints the indexed segment listing for one catalog.
func WriteListing(w io.Writer, cat catalog.Catalog) {
	for i, seg := range cat {
		fmt.Fprintf(w, "  %d: %s %s\n", i, seg.Name, catalog.FormatShape(seg.Shape))
	}
}

// ExitCode maps findings to the process exit status.
func ExitCode(findings []engine.Finding) int {
	if engine.OverallPass(findings) {
		return ExitPass
	}
	return ExitFail
}

// verdictLabel renders the overall verdict, styled when color is on.
func verdictLabel(findings []engine.Finding, noColor bool) string {
	if engine.OverallPass(findings) {
		return stylize("PASS", engine.Pass, noColor)
	}
	return stylize("FAIL", engine.Fail, noColor)
}
