// Package catalog holds the in-memory view of a kernel-phase file: the
// ordered list of segments (HDUs) with their declared names and shapes.
package catalog

import (
	"strconv"
	"strings"
)

// Segment is one named array block. Shape is row-major (slowest axis
// first) and empty for scalar data.
type Segment struct {
	Name  string
	Shape []int
}

// Catalog is the ordered segment list of one file, in on-disk order.
type Catalog []Segment

// Find returns the first segment with the given name.
func (c Catalog) Find(name string) (Segment, bool) {
	for _, seg := range c {
		if seg.Name == name {
			return seg, true
		}
	}
	return Segment{}, false
}

// Has reports whether a segment with the given name exists.
func (c Catalog) Has(name string) bool {
	_, ok := c.Find(name)
	return ok
}

// Names returns the segment names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for _, seg := range c {
		names = append(names, seg.Name)
	}
	return names
}

// FormatShape renders a shape as "[d1, d2, ...]"; scalars render as "[]".
func FormatShape(shape []int) string {
	if len(shape) == 0 {
		return "[]"
	}
	parts := make([]string, 0, len(shape))
	for _, dim := range shape {
		parts = append(parts, strconv.Itoa(dim))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// String renders a segment as "NAME [d1, d2, ...]".
func (s Segment) String() string {
	return s.Name + " " + FormatShape(s.Shape)
}
