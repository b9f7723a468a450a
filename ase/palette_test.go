package ase

import (
	"image/color"
	"testing"

	"badc0de.net/pkg/go-aseprite/ttesting"
)

func TestPalette(t *testing.T) {
	colors := []color.NRGBA{
		{R: 0x11, G: 0x22, B: 0x33, A: 0x44},
		{R: 0xFF, G: 0x00, B: 0x80, A: 0xFF},
		{R: 0x01, G: 0x02, B: 0x03, A: 0x00},
	}
	b := ttesting.NewBuilder(1, 1, 8)
	b.Frame(10).Palette(0, colors, map[int]string{1: "pink"})

	doc, err := DecodeBytes(b.Bytes())
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	p := doc.Palette
	ttesting.AssertEqualInt(t, "declared size", p.Size, 3)
	ttesting.AssertEqualInt(t, "first", p.FirstColor, 0)
	ttesting.AssertEqualInt(t, "last", p.LastColor, 2)
	ttesting.AssertEqualInt(t, "one color per entry", len(p.Colors), 3)
	for i, want := range colors {
		got := p.Colors[i]
		if got.R != want.R || got.G != want.G || got.B != want.B || got.A != want.A {
			t.Errorf("color %d: got %+v; want %+v", i, got, want)
		}
	}
}

func TestUnpackColor(t *testing.T) {
	got := unpackColor(0xAABBCCDD)
	if got != (Color{R: 0xDD, G: 0xCC, B: 0xBB, A: 0xAA}) {
		t.Errorf("got %+v; want R=DD G=CC B=BB A=AA", got)
	}
}

func TestPaletteBoundsInverted(t *testing.T) {
	b := ttesting.NewBuilder(1, 1, 8)
	b.Frame(10).Palette(0, []color.NRGBA{{}}, nil)
	buf := b.Bytes()
	// size, first, last follow the chunk header of the only chunk.
	first := headerSize + 16 + 6 + 4
	buf[first] = 5

	_, err := DecodeBytes(buf)
	ttesting.AssertErrorIs(t, "first after last", err, ErrInvalidRange)
}

func TestColorPalette(t *testing.T) {
	p := Palette{Colors: []Color{{R: 255, A: 255}, {G: 255, A: 128}}}
	pal := p.ColorPalette()
	ttesting.AssertEqualInt(t, "entries", len(pal), 2)
	r, _, _, a := pal[0].RGBA()
	ttesting.AssertEqualUint32(t, "red channel", r, 0xFFFF)
	ttesting.AssertEqualUint32(t, "alpha channel", a, 0xFFFF)
	_, g, _, a := pal[1].RGBA()
	ttesting.AssertInRangeUint32(t, "premultiplied green", g, 0x8000-0x100, 0x8000+0x100)
	ttesting.AssertEqualUint32(t, "half alpha", a, 0x8080)
}
