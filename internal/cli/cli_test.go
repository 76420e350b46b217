package cli

import (
	"bytes"
	"strings"
	"testing"
)

// TestRunWithoutArgs verifies the bare invocation prints usage.
func TestRunWithoutArgs(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run(nil, &out, &errOut)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Fatalf("expected usage output, got %q", out.String())
	}
}

// TestRunHelp verifies top-level help exits cleanly.
func TestRunHelp(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run([]string{"--help"}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	for _, name := range []string{"validate", "inspect", "dummy"} {
		if !strings.Contains(out.String(), name) {
			t.Fatalf("expected command %s in usage, got %q", name, out.String())
		}
	}
}

// TestRunUnknownCommand verifies unknown commands print usage to stderr.
func TestRunUnknownCommand(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run([]string{"frobnicate"}, &out, &errOut)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(errOut.String(), "Unknown command: frobnicate") {
		t.Fatalf("expected unknown command message, got %q", errOut.String())
	}
}

// TestCommandHelp verifies per-command help.
func TestCommandHelp(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run([]string{"validate", "--help"}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if !strings.Contains(out.String(), "kpfits validate") {
		t.Fatalf("expected validate usage, got %q", out.String())
	}
}
