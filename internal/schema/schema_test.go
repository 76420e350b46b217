package schema

import (
	"errors"
	"testing"
)

// TestKernelPhaseV1IsValid verifies the built-in table passes its own
// self-check.
func TestKernelPhaseV1IsValid(t *testing.T) {
	if err := KernelPhaseV1().Validate(); err != nil {
		t.Fatalf("built-in schema invalid: %v", err)
	}
}

// TestBindingsForKnownQuantity verifies quantity lookup.
func TestBindingsForKnownQuantity(t *testing.T) {
	sch := KernelPhaseV1()
	q, err := sch.BindingsFor("apertures")
	if err != nil {
		t.Fatalf("lookup apertures: %v", err)
	}
	if len(q.Bindings) != 2 {
		t.Fatalf("expected 2 aperture bindings, got %d", len(q.Bindings))
	}
	if q.Bindings[0].Segment != "APERTURE" || q.Bindings[0].Axis != 0 {
		t.Fatalf("unexpected first binding %+v", q.Bindings[0])
	}
	if q.Bindings[1].Segment != "BLM-MAT" || q.Bindings[1].Axis != 1 {
		t.Fatalf("unexpected second binding %+v", q.Bindings[1])
	}
}

// TestBindingsForUnknownQuantity verifies the error path.
func TestBindingsForUnknownQuantity(t *testing.T) {
	sch := KernelPhaseV1()
	if _, err := sch.BindingsFor("baselines"); !errors.Is(err, ErrUnknownQuantity) {
		t.Fatalf("expected ErrUnknownQuantity, got %v", err)
	}
}

// TestKnownCoversMandatoryAndOptional verifies name recognition.
func TestKnownCoversMandatoryAndOptional(t *testing.T) {
	sch := KernelPhaseV1()
	for _, name := range []string{"PRIMARY", "CWAVEL", "IMSHIFT", "DETPA"} {
		if !sch.Known(name) {
			t.Fatalf("expected %s to be a known HDU name", name)
		}
	}
	if sch.Known("FOO") {
		t.Fatalf("expected FOO to be unknown")
	}
}

// TestQuantityNamesOrder verifies quantities keep schema order.
func TestQuantityNamesOrder(t *testing.T) {
	names := KernelPhaseV1().QuantityNames()
	want := []string{"kernels", "frames", "apertures", "wavelengths", "uv-points", "pixels"}
	if len(names) != len(want) {
		t.Fatalf("expected %d quantities, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected quantities %v, got %v", want, names)
		}
	}
}
