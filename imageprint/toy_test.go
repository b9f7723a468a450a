package imageprint

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"badc0de.net/pkg/go-aseprite/ase"
	"badc0de.net/pkg/go-aseprite/ttesting"
)

func capture(t *testing.T, f func()) string {
	t.Helper()
	var buf bytes.Buffer
	old := Out
	Out = &buf
	defer func() { Out = old }()
	f()
	return buf.String()
}

func TestPrint24bit(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 255})

	got := capture(t, func() { Print24bit(img, true) })
	if !strings.Contains(got, "\x1b[48;2;1;2;3m  ") {
		t.Errorf("missing true color swatch in %q", got)
	}
	ttesting.AssertEqualInt(t, "one line per row", strings.Count(got, "\n"), 1)
}

func TestPrintNoColor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{A: 255})

	got := capture(t, func() { PrintNoColor(img, false) })
	if !strings.Contains(got, "##") || !strings.Contains(got, "..") {
		t.Errorf("missing ascii shades in %q", got)
	}
}

func TestPrintPalette(t *testing.T) {
	p := ase.Palette{Colors: []ase.Color{
		{R: 255, A: 255}, {G: 255, A: 255}, {B: 255, A: 255}, {},
	}}
	got := capture(t, func() { PrintPalette(p, 2) })
	ttesting.AssertEqualInt(t, "rows", strings.Count(got, "\n"), 2)
	ttesting.AssertEqualInt(t, "opaque swatches", strings.Count(got, "\x1b[48;2;"), 3)
}

func TestPrintSwatch(t *testing.T) {
	got := capture(t, func() { PrintSwatch(ase.Color{R: 9, G: 8, B: 7}, "walk") })
	if !strings.Contains(got, "\x1b[48;2;9;8;7m") || !strings.HasSuffix(got, " walk\n") {
		t.Errorf("got %q", got)
	}
}
