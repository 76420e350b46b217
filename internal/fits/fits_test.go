package fits_test

import (
	"path/filepath"
	"reflect"
	"testing"

	"kpfits/internal/fits"
	"kpfits/internal/fixture"
)

// TestWriteReadRoundTrip verifies a written fixture file reads back as the
// catalog the fixture declares.
func TestWriteReadRoundTrip(t *testing.T) {
	params := fixture.SmallParams()
	path := filepath.Join(t.TempDir(), "dummy.fits")
	if err := fits.WriteFile(path, fixture.HDUs(params)); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cat, err := fits.ReadCatalog(path)
	if err != nil {
		t.Fatalf("read catalog: %v", err)
	}
	want := fixture.Segments(params)
	if len(cat) != len(want) {
		t.Fatalf("expected %d segments, got %d", len(want), len(cat))
	}
	for i := range want {
		if cat[i].Name != want[i].Name {
			t.Fatalf("segment %d: expected name %s, got %s", i, want[i].Name, cat[i].Name)
		}
		if !reflect.DeepEqual(cat[i].Shape, want[i].Shape) {
			t.Fatalf("segment %s: expected shape %v, got %v", want[i].Name, want[i].Shape, cat[i].Shape)
		}
	}
}

// TestReadCatalogNamesUnnamedExtensions verifies extensions without an
// EXTNAME are cataloged under a positional placeholder.
func TestReadCatalogNamesUnnamedExtensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unnamed.fits")
	hdus := []fits.HDUSpec{
		{Name: "PRIMARY", Shape: []int{4, 4}},
		{Name: "", Shape: []int{3}},
	}
	if err := fits.WriteFile(path, hdus); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cat, err := fits.ReadCatalog(path)
	if err != nil {
		t.Fatalf("read catalog: %v", err)
	}
	if len(cat) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(cat))
	}
	if cat[0].Name != "PRIMARY" {
		t.Fatalf("expected first segment PRIMARY, got %q", cat[0].Name)
	}
	if cat[1].Name != "HDU1" {
		t.Fatalf("expected placeholder HDU1 for unnamed extension, got %q", cat[1].Name)
	}
}

// TestReadCatalogMissingFile verifies the boundary error path.
func TestReadCatalogMissingFile(t *testing.T) {
	if _, err := fits.ReadCatalog(filepath.Join(t.TempDir(), "absent.fits")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

// TestRowMajorReversesAxes verifies the FITS-to-row-major conversion.
func TestRowMajorReversesAxes(t *testing.T) {
	got := fits.RowMajor([]int{192, 192, 1, 6})
	want := []int{6, 1, 192, 192}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if len(fits.RowMajor(nil)) != 0 {
		t.Fatalf("expected empty axes to stay empty")
	}
}
