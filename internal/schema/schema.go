// Package schema defines the declarative kernel-phase format table: which
// HDUs must be present, how many segments a file needs at minimum, and
// which shape axes encode each shared semantic quantity. The consistency
// engine only ever consults this table, so a format revision is a schema
// edit, not a logic change.
package schema

import (
	"errors"
	"fmt"
)

// ErrUnknownQuantity is returned when a quantity name is not in the schema.
var ErrUnknownQuantity = errors.New("unknown quantity")

// Binding ties one axis of one segment's shape to a semantic quantity.
type Binding struct {
	Segment string `yaml:"segment"`
	Axis    int    `yaml:"axis"`
}

// Quantity is a shared dimension that several segments encode redundantly.
// Label is the human form used in messages ("apertures", "uv points").
type Quantity struct {
	Name     string    `yaml:"name"`
	Label    string    `yaml:"label"`
	Bindings []Binding `yaml:"bindings"`
}

// Schema is the full format description. It is a read-only value: built in
// below or loaded from YAML once at startup, never mutated afterwards.
type Schema struct {
	Version         int        `yaml:"version"`
	MinimumSegments int        `yaml:"minimum_segments"`
	Mandatory       []string   `yaml:"mandatory"`
	Optional        []string   `yaml:"optional"`
	Quantities      []Quantity `yaml:"quantities"`
}

// MandatoryNames returns the required segment names in schema order.
func (s *Schema) MandatoryNames() []string {
	return s.Mandatory
}

// Known reports whether a segment name is part of the format, either
// mandatory or recognized optional.
func (s *Schema) Known(name string) bool {
	for _, known := range s.Mandatory {
		if known == name {
			return true
		}
	}
	for _, known := range s.Optional {
		if known == name {
			return true
		}
	}
	return false
}

// QuantityNames returns the quantity names in schema order.
func (s *Schema) QuantityNames() []string {
	names := make([]string, 0, len(s.Quantities))
	for _, q := range s.Quantities {
		names = append(names, q.Name)
	}
	return names
}

// BindingsFor returns the quantity with the given name.
func (s *Schema) BindingsFor(name string) (Quantity, error) {
	for _, q := range s.Quantities {
		if q.Name == name {
			return q, nil
		}
	}
	return Quantity{}, fmt.Errorf("%w: %q", ErrUnknownQuantity, name)
}

// KernelPhaseV1 returns the built-in schema for version 1 of the
// kernel-phase interchange format. The axis indices follow the row-major
// shapes of the format document (e.g. KP-DATA is frames x wavelengths x
// kernels).
func KernelPhaseV1() *Schema {
	return &Schema{
		Version:         1,
		MinimumSegments: 7,
		Mandatory: []string{
			"PRIMARY",
			"APERTURE",
			"UV-PLANE",
			"KER-MAT",
			"BLM-MAT",
			"KP-DATA",
			"CWAVEL",
		},
		Optional: []string{
			"KP-SIGM",
			"DETPA",
			"VIS-DATA",
			"KA-DATA",
			"KA-SIGM",
			"CAL-MAT",
			"KP-COV",
			"KA-COV",
			"FULL-COV",
			"IMSHIFT",
		},
		Quantities: []Quantity{
			{
				Name:  "kernels",
				Label: "kernels",
				Bindings: []Binding{
					{Segment: "KER-MAT", Axis: 0},
					{Segment: "KP-DATA", Axis: 2},
					{Segment: "KP-SIGM", Axis: 2},
					{Segment: "KA-DATA", Axis: 2},
					{Segment: "KA-SIGM", Axis: 2},
					{Segment: "CAL-MAT", Axis: 1},
					{Segment: "KP-COV", Axis: 2},
					{Segment: "KP-COV", Axis: 3},
					{Segment: "KA-COV", Axis: 2},
					{Segment: "KA-COV", Axis: 3},
					{Segment: "FULL-COV", Axis: 3},
					{Segment: "FULL-COV", Axis: 5},
				},
			},
			{
				Name:  "frames",
				Label: "frames",
				Bindings: []Binding{
					{Segment: "PRIMARY", Axis: 0},
					{Segment: "KP-DATA", Axis: 0},
					{Segment: "KP-SIGM", Axis: 0},
					{Segment: "DETPA", Axis: 0},
					{Segment: "VIS-DATA", Axis: 0},
					{Segment: "KA-DATA", Axis: 0},
					{Segment: "KA-SIGM", Axis: 0},
					{Segment: "KP-COV", Axis: 0},
					{Segment: "KA-COV", Axis: 0},
					{Segment: "FULL-COV", Axis: 0},
					{Segment: "IMSHIFT", Axis: 0},
				},
			},
			{
				Name:  "apertures",
				Label: "apertures",
				Bindings: []Binding{
					{Segment: "APERTURE", Axis: 0},
					{Segment: "BLM-MAT", Axis: 1},
				},
			},
			{
				Name:  "wavelengths",
				Label: "wavelengths",
				Bindings: []Binding{
					{Segment: "PRIMARY", Axis: 1},
					{Segment: "KP-DATA", Axis: 1},
					{Segment: "KP-SIGM", Axis: 1},
					{Segment: "VIS-DATA", Axis: 1},
					{Segment: "CWAVEL", Axis: 0},
					{Segment: "KA-DATA", Axis: 1},
					{Segment: "KA-SIGM", Axis: 1},
					{Segment: "KP-COV", Axis: 1},
					{Segment: "KA-COV", Axis: 1},
					{Segment: "FULL-COV", Axis: 1},
				},
			},
			{
				Name:  "uv-points",
				Label: "uv points",
				Bindings: []Binding{
					{Segment: "UV-PLANE", Axis: 0},
					{Segment: "KER-MAT", Axis: 1},
					{Segment: "BLM-MAT", Axis: 0},
					{Segment: "VIS-DATA", Axis: 2},
				},
			},
			{
				Name:  "pixels",
				Label: "pixels",
				Bindings: []Binding{
					{Segment: "PRIMARY", Axis: 2},
					{Segment: "PRIMARY", Axis: 3},
				},
			},
		},
	}
}
