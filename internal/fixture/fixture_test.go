package fixture

import (
	"math/rand"
	"testing"

	"kpfits/internal/engine"
	"kpfits/internal/schema"
)

// TestSegmentsAreConformant verifies the fixture catalog passes every
// check of the built-in schema.
func TestSegmentsAreConformant(t *testing.T) {
	cat := Segments(SmallParams())
	if len(cat) != 17 {
		t.Fatalf("expected 17 segments, got %d", len(cat))
	}
	findings := engine.Check(cat, schema.KernelPhaseV1())
	for _, f := range findings {
		if f.Severity != engine.Pass {
			t.Fatalf("fixture not conformant: %s %s: %s", f.Severity, f.CheckID, f.Message)
		}
	}
}

// TestRandomParamsRanges verifies drawn dimensions stay in the format
// generator's ranges.
func TestRandomParamsRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		p := RandomParams(rng)
		if p.Kernels < 10 || p.Kernels >= 1000 {
			t.Fatalf("kernels out of range: %d", p.Kernels)
		}
		if p.Frames < 5 || p.Frames >= 50 {
			t.Fatalf("frames out of range: %d", p.Frames)
		}
		if p.Pixels < 4 || p.Pixels > 128 {
			t.Fatalf("pixels out of range: %d", p.Pixels)
		}
		if p.Pixels&(p.Pixels-1) != 0 {
			t.Fatalf("pixels not a power of two: %d", p.Pixels)
		}
		if p.Apertures < 56 || p.Apertures >= 752 {
			t.Fatalf("apertures out of range: %d", p.Apertures)
		}
		if p.Wavelengths < 1 || p.Wavelengths >= 11 {
			t.Fatalf("wavelengths out of range: %d", p.Wavelengths)
		}
		if p.UVPoints < 100 || p.UVPoints >= 200 {
			t.Fatalf("uv points out of range: %d", p.UVPoints)
		}
	}
}

// TestRandomSegmentsAreConformant verifies any drawn dimension set yields
// a conformant catalog.
func TestRandomSegmentsAreConformant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sch := schema.KernelPhaseV1()
	for i := 0; i < 20; i++ {
		cat := Segments(RandomParams(rng))
		findings := engine.Check(cat, sch)
		if !engine.OverallPass(findings) {
			t.Fatalf("random fixture failed validation: %+v", findings)
		}
	}
}
