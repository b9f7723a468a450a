package ase

const (
	fileMagic  = 0xA5E0
	headerSize = 128
)

// Header flags.
const (
	FlagLayerOpacityValid = 1 << 0
	FlagGroupOpacityValid = 1 << 1
	FlagLayerUUIDs        = 1 << 2
)

// Header holds the global metadata from the first 128 bytes of the file.
type Header struct {
	FileSize   uint32
	FrameCount int
	Width      int
	Height     int
	ColorDepth int // bits per pixel: 8 (indexed), 16 (grayscale) or 32 (RGBA)
	Flags      uint32

	// TransparentIndex is the palette entry treated as transparent in
	// indexed sprites.
	TransparentIndex uint8

	// NumColors is the palette size hint; 0 means 256 in old files.
	NumColors int

	PixelWidth, PixelHeight uint8
	PixelRatio              float64

	Grid Grid
}

// Grid is the editor grid stored in the header.
type Grid struct {
	X, Y          int
	Width, Height int
}

// BytesPerPixel derives the size of one decoded pixel from the color depth.
func (h *Header) BytesPerPixel() int {
	return h.ColorDepth / 8
}

func (d *decoder) parseHeader() error {
	c := &d.c
	h := &d.doc.Header

	h.FileSize = c.u32()
	magic := c.u16()
	if c.err != nil {
		return c.err
	}
	if magic != fileMagic {
		return newError(ErrMagicMismatch, c.pos-2, "file magic %#04x, want %#04x", magic, fileMagic)
	}

	h.FrameCount = int(c.u16())
	h.Width = int(c.u16())
	h.Height = int(c.u16())
	h.ColorDepth = int(c.u16())
	h.Flags = c.u32()
	c.skip(2 + 8) // deprecated speed, two reserved dwords
	h.TransparentIndex = c.u8()
	c.skip(3)
	h.NumColors = int(c.u16())
	h.PixelWidth = c.u8()
	h.PixelHeight = c.u8()
	h.Grid.X = int(c.i16())
	h.Grid.Y = int(c.i16())
	h.Grid.Width = int(c.u16())
	h.Grid.Height = int(c.u16())
	c.skip(84)
	if c.err != nil {
		return c.err
	}

	h.PixelRatio = 1.0
	if h.PixelWidth != 0 && h.PixelHeight != 0 {
		h.PixelRatio = float64(h.PixelWidth) / float64(h.PixelHeight)
	}
	return nil
}
