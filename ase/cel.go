package ase

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// CelKind is how a cel's pixels are stored in the file.
type CelKind uint16

const (
	CelRaw               CelKind = 0
	CelLinked            CelKind = 1
	CelCompressed        CelKind = 2
	CelCompressedTilemap CelKind = 3
)

func (k CelKind) String() string {
	switch k {
	case CelRaw:
		return "raw"
	case CelLinked:
		return "linked"
	case CelCompressed:
		return "compressed"
	case CelCompressedTilemap:
		return "compressed tilemap"
	}
	return fmt.Sprintf("CelKind(%d)", uint16(k))
}

// celHeaderSize is everything in a raw or compressed cel chunk before the
// pixel data, chunk header included.
const celHeaderSize = 26

// Cel holds the pixels of one layer in one frame.
type Cel struct {
	Frame FrameIndex
	Layer LayerIndex
	Kind  CelKind

	X, Y          int
	Width, Height int
	Opacity       uint8
	ZIndex        int

	// Link is the frame whose cel this one shares pixels with, or NoFrame.
	Link FrameIndex

	// Pixels are width*height pixels of ColorDepth/8 bytes each, row-major.
	// Linked cels share the slice of the cel they point at. Never modify.
	Pixels []byte
}

func (d *decoder) parseCel(frame FrameIndex, start, size int) error {
	c := &d.c

	layer := int(c.u16())
	x := c.i16()
	y := c.i16()
	opacity := c.u8()
	kind := CelKind(c.u16())
	z := c.i16()
	c.skip(5)
	if c.err != nil {
		return c.err
	}
	if layer >= len(d.doc.Layers) {
		return newError(ErrInvalidReference, start, "cel in frame %d names layer %d of %d", frame, layer, len(d.doc.Layers))
	}

	fr := &d.doc.Frames[frame]
	for len(fr.Cels) <= layer {
		fr.Cels = append(fr.Cels, NoCel)
	}

	cel := Cel{
		Frame:   frame,
		Layer:   LayerIndex(layer),
		Kind:    kind,
		X:       int(x),
		Y:       int(y),
		Opacity: opacity,
		ZIndex:  int(z),
		Link:    NoFrame,
	}

	switch kind {
	case CelRaw:
		cel.Width = int(c.u16())
		cel.Height = int(c.u16())
		pix := c.span(size - celHeaderSize)
		if c.err != nil {
			return c.err
		}
		cel.Pixels = append([]byte(nil), pix...)

	case CelLinked:
		link := FrameIndex(c.u16())
		if c.err != nil {
			return c.err
		}
		target, ok := d.doc.FrameCel(link, cel.Layer)
		if !ok {
			return newError(ErrInvalidReference, start, "cel in frame %d layer %d links to frame %d, which has no cel there", frame, layer, link)
		}
		t := &d.doc.Cels[target]
		cel.Width = t.Width
		cel.Height = t.Height
		cel.Pixels = t.Pixels
		cel.Link = link

	case CelCompressed:
		cel.Width = int(c.u16())
		cel.Height = int(c.u16())
		src := c.span(size - celHeaderSize)
		if c.err != nil {
			return c.err
		}
		pix, err := inflate(src, cel.Width*cel.Height*d.doc.BytesPerPixel())
		if err != nil {
			return newError(ErrDecompression, start, "cel in frame %d layer %d: %v", frame, layer, err)
		}
		cel.Pixels = pix

	default:
		return newError(ErrUnsupportedCelType, start, "cel kind %d in frame %d layer %d", uint16(kind), frame, layer)
	}

	ci := CelIndex(len(d.doc.Cels))
	d.doc.Cels = append(d.doc.Cels, cel)
	fr.Cels[layer] = ci
	return nil
}

// maxDeflateRatio bounds how far deflate can expand its input.
const maxDeflateRatio = 1032

// inflate decompresses a zlib stream that must produce exactly want bytes.
func inflate(src []byte, want int) ([]byte, error) {
	if want > maxDeflateRatio*len(src) {
		return nil, errors.Errorf("%d compressed bytes cannot hold %d bytes", len(src), want)
	}
	zr, err := zlib.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, errors.Wrap(err, "opening zlib stream")
	}
	defer zr.Close()

	out := make([]byte, want)
	if _, err := io.ReadFull(zr, out); err != nil {
		return nil, errors.Wrapf(err, "inflating %d bytes", want)
	}
	var extra [1]byte
	switch _, err := io.ReadFull(zr, extra[:]); err {
	case io.EOF:
		return out, nil
	case nil:
		return nil, errors.Errorf("stream inflates to more than %d bytes", want)
	default:
		return nil, errors.Wrap(err, "finishing zlib stream")
	}
}
