package ase

import "image"

// Slice flags.
const (
	sliceHas9Patch = 1 << 0
	sliceHasPivot  = 1 << 1
)

// Rect is a rectangle given by its origin and size.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Rectangle converts r for use with the image package.
func (r Rect) Rectangle() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Point is a position relative to a slice's origin.
type Point struct {
	X, Y int
}

// Slice is a named region of the sprite, keyed by frame.
type Slice struct {
	Name      string
	Has9Slice bool
	HasPivot  bool
	Keys      []SliceKey
}

// SliceKey is the state of a slice from Frame onwards.
type SliceKey struct {
	Frame  int
	Bounds Rect

	// Patch is the center of a 9-slice, set only if the slice has one.
	Patch *Rect
	// Pivot is set only if the slice has one.
	Pivot *Point
}

func (c *cursor) rect() Rect {
	return Rect{
		X:      int(c.i32()),
		Y:      int(c.i32()),
		Width:  int(c.u32()),
		Height: int(c.u32()),
	}
}

func (d *decoder) parseSlice() error {
	c := &d.c

	keys := c.u32()
	flags := c.u32()
	c.skip(4)
	name := c.str()
	if c.err != nil {
		return c.err
	}

	s := Slice{
		Name:      name,
		Has9Slice: flags&sliceHas9Patch != 0,
		HasPivot:  flags&sliceHasPivot != 0,
	}
	for i := uint32(0); i < keys; i++ {
		k := SliceKey{
			Frame:  int(c.u32()),
			Bounds: c.rect(),
		}
		if s.Has9Slice {
			patch := c.rect()
			k.Patch = &patch
		}
		if s.HasPivot {
			k.Pivot = &Point{X: int(c.i32()), Y: int(c.i32())}
		}
		if c.err != nil {
			return c.err
		}
		s.Keys = append(s.Keys, k)
	}
	d.doc.Slices = append(d.doc.Slices, s)
	return nil
}
