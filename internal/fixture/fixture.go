// Package fixture builds the HDU set of a conformant kernel-phase file
// from one set of dimensions. The dummy command and the tests share it so
// both work from the same definition of "well-formed".
package fixture

import (
	"math/rand"

	"github.com/astrogo/fitsio"

	"kpfits/internal/catalog"
	"kpfits/internal/fits"
)

// Params are the shared dimensions of one synthetic file. CalFrames is the
// calibrator count of the optional CAL-MAT extension, which is independent
// of every cross-checked quantity.
type Params struct {
	Kernels     int
	Frames      int
	Pixels      int
	Apertures   int
	Wavelengths int
	UVPoints    int
	CalFrames   int
}

// RandomParams draws dimensions from the ranges of the format test-file
// generator.
func RandomParams(rng *rand.Rand) Params {
	return Params{
		Kernels:     10 + rng.Intn(990),
		Frames:      5 + rng.Intn(45),
		Pixels:      1 << (2 + rng.Intn(6)),
		Apertures:   56 + rng.Intn(696),
		Wavelengths: 1 + rng.Intn(10),
		UVPoints:    100 + rng.Intn(100),
		CalFrames:   2 + rng.Intn(18),
	}
}

// SmallParams returns fixed, compact dimensions for tests.
func SmallParams() Params {
	return Params{
		Kernels:     100,
		Frames:      6,
		Pixels:      16,
		Apertures:   105,
		Wavelengths: 1,
		UVPoints:    204,
		CalFrames:   5,
	}
}

// HDUs returns the full 17-extension HDU list (10 required, 7 optional)
// for the given dimensions, in the canonical on-disk order.
func HDUs(p Params) []fits.HDUSpec {
	return []fits.HDUSpec{
		{
			Name:  "PRIMARY",
			Shape: []int{p.Frames, p.Wavelengths, p.Pixels, p.Pixels},
			Cards: []fitsio.Card{
				{Name: "PSCALE", Value: 3.14, Comment: "plate scale in mas/pixel"},
				{Name: "DIAM", Value: 1.62, Comment: "telescope diameter in m"},
				{Name: "EXPTIME", Value: 2.72, Comment: "exposure time in s"},
			},
		},
		{Name: "APERTURE", Shape: []int{p.Apertures, 3}},
		{Name: "UV-PLANE", Shape: []int{p.UVPoints, 3}},
		{Name: "KER-MAT", Shape: []int{p.Kernels, p.UVPoints}},
		{Name: "BLM-MAT", Shape: []int{p.UVPoints, p.Apertures}},
		{Name: "KP-DATA", Shape: []int{p.Frames, p.Wavelengths, p.Kernels}},
		{Name: "KP-SIGM", Shape: []int{p.Frames, p.Wavelengths, p.Kernels}},
		{Name: "CWAVEL", Shape: []int{p.Wavelengths}, Columns: []string{"CWAVEL", "DWAVEL"}},
		{Name: "DETPA", Shape: []int{p.Frames}},
		{Name: "VIS-DATA", Shape: []int{p.Frames, p.Wavelengths, p.UVPoints}},
		{Name: "KA-DATA", Shape: []int{p.Frames, p.Wavelengths, p.Kernels}},
		{Name: "KA-SIGM", Shape: []int{p.Frames, p.Wavelengths, p.Kernels}},
		{Name: "CAL-MAT", Shape: []int{p.CalFrames, p.Kernels}},
		{Name: "KP-COV", Shape: []int{p.Frames, p.Wavelengths, p.Kernels, p.Kernels}},
		{Name: "KA-COV", Shape: []int{p.Frames, p.Wavelengths, p.Kernels, p.Kernels}},
		{Name: "FULL-COV", Shape: []int{p.Frames, p.Wavelengths, 2, p.Kernels, 2, p.Kernels}},
		{Name: "IMSHIFT", Shape: []int{p.Frames}, Columns: []string{"XSHIFT", "YSHIFT"}},
	}
}

// Segments returns the catalog a reader would report for HDUs(p), without
// touching the filesystem. Tables appear with their row count as the only
// axis, which is exactly what HDUs declares for them.
func Segments(p Params) catalog.Catalog {
	hdus := HDUs(p)
	cat := make(catalog.Catalog, 0, len(hdus))
	for _, hdu := range hdus {
		cat = append(cat, catalog.Segment{Name: hdu.Name, Shape: hdu.Shape})
	}
	return cat
}
