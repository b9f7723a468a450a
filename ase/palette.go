package ase

import "image/color"

// Color is a non-premultiplied RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// unpackColor splits a dword stored as R in the lowest byte up to A in the
// highest.
func unpackColor(v uint32) Color {
	return Color{
		R: uint8(v),
		G: uint8(v >> 8),
		B: uint8(v >> 16),
		A: uint8(v >> 24),
	}
}

const paletteEntryHasName = 1 << 0

// Palette is the sprite's color table.
type Palette struct {
	Size       int
	FirstColor int
	LastColor  int
	Colors     []Color
}

// ColorPalette converts the palette for use with the image package.
func (p *Palette) ColorPalette() color.Palette {
	pal := make(color.Palette, len(p.Colors))
	for i, c := range p.Colors {
		pal[i] = c
	}
	return pal
}

func (d *decoder) parsePalette(start int) error {
	c := &d.c

	size := c.u32()
	first := c.u32()
	last := c.u32()
	c.skip(8)
	if c.err != nil {
		return c.err
	}
	if first > last {
		return newError(ErrInvalidRange, start, "palette first color %d after last color %d", first, last)
	}

	p := Palette{
		Size:       int(size),
		FirstColor: int(first),
		LastColor:  int(last),
	}
	// Every entry takes at least six bytes.
	n := (len(c.buf) - c.pos) / 6
	if int64(size) < int64(n) {
		n = int(size)
	}
	p.Colors = make([]Color, 0, n)
	for i := uint32(0); i < size; i++ {
		flags := c.u16()
		v := c.u32()
		if flags&paletteEntryHasName != 0 {
			c.str() // names are not kept
		}
		if c.err != nil {
			return c.err
		}
		p.Colors = append(p.Colors, unpackColor(v))
	}
	d.doc.Palette = p
	return nil
}
