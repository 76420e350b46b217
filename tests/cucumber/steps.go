package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"kpfits/internal/cli"
	"kpfits/internal/fits"
	"kpfits/internal/fixture"
)

// featureState holds scenario state for cucumber CLI tests.
type featureState struct {
	workDir  string
	stdout   bytes.Buffer
	stderr   bytes.Buffer
	exitCode int
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, state.reset()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a conformant kernel-phase file "([^"]+)"$`, state.aConformantFile)
	ctx.Step(`^a kernel-phase file "([^"]+)" whose BLM-MAT disagrees on apertures$`, state.anInconsistentFile)
	ctx.Step(`^a conformant kernel-phase file "([^"]+)" with an extra "([^"]+)" extension$`, state.aFileWithExtraExtension)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is (\d+)$`, state.theExitCodeIs)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the output contains "([^"]+)"$`, state.theOutputContains)
	ctx.Step(`^the error output contains "([^"]+)"$`, state.theErrorOutputContains)
}

// reset clears buffers and creates a fresh scenario directory.
func (s *featureState) reset() error {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	dir, err := os.MkdirTemp("", "kpfits-cucumber-")
	if err != nil {
		return fmt.Errorf("create scenario dir: %w", err)
	}
	s.workDir = dir
	return nil
}

// cleanup removes the scenario directory.
func (s *featureState) cleanup() {
	if s.workDir != "" {
		_ = os.RemoveAll(s.workDir)
		s.workDir = ""
	}
}

func (s *featureState) aConformantFile(name string) error {
	return fits.WriteFile(filepath.Join(s.workDir, name), fixture.HDUs(fixture.SmallParams()))
}

func (s *featureState) anInconsistentFile(name string) error {
	hdus := fixture.HDUs(fixture.SmallParams())
	for i := range hdus {
		if hdus[i].Name == "BLM-MAT" {
			hdus[i].Shape = []int{hdus[i].Shape[0], hdus[i].Shape[1] - 1}
		}
	}
	return fits.WriteFile(filepath.Join(s.workDir, name), hdus)
}

func (s *featureState) aFileWithExtraExtension(name, extra string) error {
	hdus := append(fixture.HDUs(fixture.SmallParams()), fits.HDUSpec{Name: extra, Shape: []int{3}})
	return fits.WriteFile(filepath.Join(s.workDir, name), hdus)
}

// iRunCommand executes the CLI in-process with paths resolved against the
// scenario directory.
func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	for i, arg := range args {
		if strings.HasSuffix(arg, ".fits") {
			args[i] = filepath.Join(s.workDir, arg)
		}
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) theExitCodeIs(want int) error {
	if s.exitCode != want {
		return fmt.Errorf("expected exit code %d, got %d (stderr %q)", want, s.exitCode, s.stderr.String())
	}
	return nil
}

func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected a non-zero exit code (stdout %q)", s.stdout.String())
	}
	return nil
}

func (s *featureState) theOutputContains(want string) error {
	if !strings.Contains(s.stdout.String(), want) {
		return fmt.Errorf("expected stdout to contain %q, got %q", want, s.stdout.String())
	}
	return nil
}

func (s *featureState) theErrorOutputContains(want string) error {
	if !strings.Contains(s.stderr.String(), want) {
		return fmt.Errorf("expected stderr to contain %q, got %q", want, s.stderr.String())
	}
	return nil
}
