package ttesting

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"image/color"
)

// Builder writes synthetic sprite files for tests. Only the fields the
// decoder reads are filled in; the rest stay zero.
type Builder struct {
	Width, Height           uint16
	ColorDepth              uint16
	Flags                   uint32
	TransparentIndex        uint8
	NumColors               uint16
	PixelWidth, PixelHeight uint8

	frames []*FrameBuilder
}

// NewBuilder starts a sprite with valid layer opacity.
func NewBuilder(width, height, colorDepth int) *Builder {
	return &Builder{
		Width:      uint16(width),
		Height:     uint16(height),
		ColorDepth: uint16(colorDepth),
		Flags:      1,
	}
}

// FrameBuilder collects the chunks of one frame.
type FrameBuilder struct {
	Duration uint16
	chunks   [][]byte
}

// Frame appends a frame lasting durationMS milliseconds.
func (b *Builder) Frame(durationMS int) *FrameBuilder {
	f := &FrameBuilder{Duration: uint16(durationMS)}
	b.frames = append(b.frames, f)
	return f
}

type writer struct{ bytes.Buffer }

func (w *writer) put(vs ...interface{}) *writer {
	for _, v := range vs {
		binary.Write(&w.Buffer, binary.LittleEndian, v)
	}
	return w
}

func (w *writer) str(s string) *writer {
	w.put(uint16(len(s)))
	w.WriteString(s)
	return w
}

func (w *writer) zeros(n int) *writer {
	w.Write(make([]byte, n))
	return w
}

// Chunk appends a chunk with an arbitrary type and payload.
func (f *FrameBuilder) Chunk(typ uint16, payload []byte) *FrameBuilder {
	w := &writer{}
	w.put(uint32(6+len(payload)), typ)
	w.Write(payload)
	f.chunks = append(f.chunks, w.Bytes())
	return f
}

// LayerSpec describes a layer chunk.
type LayerSpec struct {
	Name    string
	Kind    uint16
	Depth   uint16
	Flags   uint16
	Blend   uint16
	Opacity uint8
}

func (f *FrameBuilder) Layer(l LayerSpec) *FrameBuilder {
	w := &writer{}
	w.put(l.Flags, l.Kind, l.Depth, uint16(0), uint16(0), l.Blend, uint32(l.Opacity))
	w.str(l.Name)
	return f.Chunk(0x2004, w.Bytes())
}

// CelSpec holds the fields shared by every cel kind.
type CelSpec struct {
	Layer   uint16
	X, Y    int16
	Opacity uint8
	ZIndex  int16
}

func (f *FrameBuilder) cel(c CelSpec, kind uint16, body []byte) *FrameBuilder {
	w := &writer{}
	w.put(c.Layer, c.X, c.Y, c.Opacity, kind, c.ZIndex).zeros(5)
	w.Write(body)
	return f.Chunk(0x2005, w.Bytes())
}

func (f *FrameBuilder) RawCel(c CelSpec, width, height int, pix []byte) *FrameBuilder {
	w := &writer{}
	w.put(uint16(width), uint16(height))
	w.Write(pix)
	return f.cel(c, 0, w.Bytes())
}

func (f *FrameBuilder) LinkedCel(c CelSpec, frame int) *FrameBuilder {
	w := &writer{}
	w.put(uint16(frame))
	return f.cel(c, 1, w.Bytes())
}

// CompressedCel deflates pix into a compressed cel.
func (f *FrameBuilder) CompressedCel(c CelSpec, width, height int, pix []byte) *FrameBuilder {
	return f.CompressedCelStream(c, width, height, Deflate(pix))
}

// CompressedCelStream stores stream as is, valid or not.
func (f *FrameBuilder) CompressedCelStream(c CelSpec, width, height int, stream []byte) *FrameBuilder {
	w := &writer{}
	w.put(uint16(width), uint16(height))
	w.Write(stream)
	return f.cel(c, 2, w.Bytes())
}

// CelOfKind writes a cel header with an arbitrary kind and no body.
func (f *FrameBuilder) CelOfKind(c CelSpec, kind uint16) *FrameBuilder {
	return f.cel(c, kind, nil)
}

// Deflate returns pix as a zlib stream.
func Deflate(pix []byte) []byte {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	zw.Write(pix)
	zw.Close()
	return buf.Bytes()
}

// Palette writes a palette chunk whose entries start at first. Entries with a
// name in names get the has-name flag.
func (f *FrameBuilder) Palette(first int, colors []color.NRGBA, names map[int]string) *FrameBuilder {
	w := &writer{}
	w.put(uint32(len(colors)), uint32(first), uint32(first+len(colors)-1)).zeros(8)
	for i, c := range colors {
		name, ok := names[i]
		flags := uint16(0)
		if ok {
			flags = 1
		}
		w.put(flags, c.R, c.G, c.B, c.A)
		if ok {
			w.str(name)
		}
	}
	return f.Chunk(0x2019, w.Bytes())
}

// TagSpec describes one tag in a tags chunk.
type TagSpec struct {
	Name      string
	From, To  uint16
	Direction uint8
	Repeat    uint16
	Color     color.NRGBA
}

func (f *FrameBuilder) Tags(tags ...TagSpec) *FrameBuilder {
	w := &writer{}
	w.put(uint16(len(tags))).zeros(8)
	for _, t := range tags {
		w.put(t.From, t.To, t.Direction, t.Repeat).zeros(6)
		w.put(t.Color.R, t.Color.G, t.Color.B, t.Color.A)
		w.str(t.Name)
	}
	return f.Chunk(0x2018, w.Bytes())
}

// SliceKeySpec is one key of a slice; Patch and Pivot are written only when
// the slice flags ask for them.
type SliceKeySpec struct {
	Frame  uint32
	X, Y   int32
	W, H   uint32
	Patch  [4]int32
	PivotX int32
	PivotY int32
}

func (f *FrameBuilder) Slice(name string, flags uint32, keys ...SliceKeySpec) *FrameBuilder {
	w := &writer{}
	w.put(uint32(len(keys)), flags, uint32(0))
	w.str(name)
	for _, k := range keys {
		w.put(k.Frame, k.X, k.Y, k.W, k.H)
		if flags&1 != 0 {
			w.put(k.Patch[0], k.Patch[1], uint32(k.Patch[2]), uint32(k.Patch[3]))
		}
		if flags&2 != 0 {
			w.put(k.PivotX, k.PivotY)
		}
	}
	return f.Chunk(0x2022, w.Bytes())
}

// Bytes serialises the whole sprite.
func (b *Builder) Bytes() []byte {
	body := &writer{}
	for _, f := range b.frames {
		fw := &writer{}
		for _, c := range f.chunks {
			fw.Write(c)
		}
		body.put(uint32(16+fw.Len()), uint16(0xF1FA), uint16(len(f.chunks)), f.Duration).zeros(6)
		body.Write(fw.Bytes())
	}

	w := &writer{}
	w.put(uint32(128+body.Len()), uint16(0xA5E0), uint16(len(b.frames)), b.Width, b.Height, b.ColorDepth)
	w.put(b.Flags, uint16(0)).zeros(8)
	w.put(b.TransparentIndex).zeros(3)
	w.put(b.NumColors, b.PixelWidth, b.PixelHeight).zeros(92)
	w.Write(body.Bytes())
	return w.Bytes()
}
