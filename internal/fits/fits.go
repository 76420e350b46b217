// Package fits is the container boundary: it turns a FITS file into a
// segment catalog and writes synthetic kernel-phase files for the dummy
// generator. Everything here fails fast with ordinary errors; data-quality
// diagnosis is the engine's job, not this package's.
package fits

import (
	"fmt"
	"os"

	"github.com/astrogo/fitsio"

	"kpfits/internal/catalog"
)

// ReadCatalog opens a FITS file and returns its segment catalog in HDU
// order. Image HDUs contribute their axis list in row-major order (FITS
// stores the fastest axis first); table HDUs contribute their row count as
// a single axis. An unnamed primary HDU is cataloged as PRIMARY; unnamed
// extensions get a positional HDU<i> placeholder.
func ReadCatalog(path string) (catalog.Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	f, err := fitsio.Open(file)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var cat catalog.Catalog
	for i, hdu := range f.HDUs() {
		seg := catalog.Segment{Name: hdu.Name()}
		if seg.Name == "" {
			if i == 0 {
				seg.Name = "PRIMARY"
			} else {
				seg.Name = fmt.Sprintf("HDU%d", i)
			}
		}
		switch hdu.Type() {
		case fitsio.BINARY_TBL, fitsio.ASCII_TBL:
			tbl, ok := hdu.(*fitsio.Table)
			if !ok {
				return nil, fmt.Errorf("%s: HDU %d is not a readable table", path, i)
			}
			seg.Shape = []int{int(tbl.NumRows())}
		default:
			seg.Shape = rowMajor(hdu.Header().Axes())
		}
		cat = append(cat, seg)
	}
	return cat, nil
}

// rowMajor reverses a FITS axis list into slowest-first order.
func rowMajor(axes []int) []int {
	shape := make([]int, len(axes))
	for i, dim := range axes {
		shape[len(axes)-1-i] = dim
	}
	return shape
}

// HDUSpec describes one HDU to synthesize. A non-empty Columns list means a
// binary table with Shape[0] rows of float64 columns; otherwise a
// zero-filled float64 image with the given row-major shape.
type HDUSpec struct {
	Name    string
	Shape   []int
	Columns []string
	Cards   []fitsio.Card
}

// WriteFile writes the given HDUs to a new FITS file at path.
func WriteFile(path string, hdus []HDUSpec) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	f, err := fitsio.Create(file)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	for _, spec := range hdus {
		if len(spec.Columns) > 0 {
			err = writeTable(f, spec)
		} else {
			err = writeImage(f, spec)
		}
		if err != nil {
			return fmt.Errorf("write %s HDU %s: %w", path, spec.Name, err)
		}
	}
	return nil
}

// writeImage appends one zero-filled float64 image extension.
func writeImage(f *fitsio.File, spec HDUSpec) error {
	img := fitsio.NewImage(-64, rowMajor(spec.Shape))
	defer img.Close()

	cards := spec.Cards
	if spec.Name != "" {
		cards = append([]fitsio.Card{{Name: "EXTNAME", Value: spec.Name}}, spec.Cards...)
	}
	if err := img.Header().Append(cards...); err != nil {
		return err
	}
	size := 1
	for _, dim := range spec.Shape {
		size *= dim
	}
	data := make([]float64, size)
	if err := img.Write(&data); err != nil {
		return err
	}
	return f.Write(img)
}

// writeTable appends one binary table with Shape[0] zero-filled rows.
func writeTable(f *fitsio.File, spec HDUSpec) error {
	cols := make([]fitsio.Column, 0, len(spec.Columns))
	for _, name := range spec.Columns {
		cols = append(cols, fitsio.Column{Name: name, Format: "D"})
	}
	tbl, err := fitsio.NewTable(spec.Name, cols, fitsio.BINARY_TBL)
	if err != nil {
		return err
	}
	defer tbl.Close()

	values := make([]float64, len(cols))
	row := make([]interface{}, len(cols))
	for i := range values {
		row[i] = &values[i]
	}
	rows := 0
	if len(spec.Shape) > 0 {
		rows = spec.Shape[0]
	}
	for r := 0; r < rows; r++ {
		if err := tbl.Write(row...); err != nil {
			return err
		}
	}
	return f.Write(tbl)
}
