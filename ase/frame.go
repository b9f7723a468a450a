package ase

import (
	"time"

	"github.com/golang/glog"
)

const frameMagic = 0xF1FA

// Chunk types.
const (
	ChunkOldPalette256 = 0x0004
	ChunkOldPalette64  = 0x0011
	ChunkLayer         = 0x2004
	ChunkCel           = 0x2005
	ChunkCelExtra      = 0x2006
	ChunkColorProfile  = 0x2007
	ChunkExternalFiles = 0x2008
	ChunkMask          = 0x2016
	ChunkPath          = 0x2017
	ChunkFrameTags     = 0x2018
	ChunkPalette       = 0x2019
	ChunkUserData      = 0x2020
	ChunkSlice         = 0x2022
	ChunkTileset       = 0x2023
)

// chunkHeaderSize covers the size dword and the type word.
const chunkHeaderSize = 6

// Frame is one step of the animation.
type Frame struct {
	Duration time.Duration

	// Cels has one slot per layer, NoCel where the layer is empty in this
	// frame.
	Cels []CelIndex

	// Tags lists every tag whose range covers this frame.
	Tags []TagIndex
}

// parseFrame reads one frame header and dispatches every chunk in it.
func (d *decoder) parseFrame() error {
	c := &d.c
	start := c.pos

	c.skip(4) // frame size in bytes
	magic := c.u16()
	if c.err != nil {
		return c.err
	}
	if magic != frameMagic {
		return newError(ErrMagicMismatch, c.pos-2, "frame %d magic %#04x, want %#04x", len(d.doc.Frames), magic, frameMagic)
	}
	chunks := int(c.u16())
	duration := c.u16()
	c.skip(2)
	if n := c.u32(); n != 0 {
		chunks = int(n)
	}
	if c.err != nil {
		return c.err
	}

	idx := FrameIndex(len(d.doc.Frames))
	d.doc.Frames = append(d.doc.Frames, Frame{
		Duration: time.Duration(duration) * time.Millisecond,
	})
	glog.V(2).Infof("frame %d at %d: %d chunks, %dms", idx, start, chunks, duration)

	for i := 0; i < chunks; i++ {
		if err := d.parseChunk(idx); err != nil {
			return err
		}
	}

	// One slot per layer, whatever the cels asked for.
	fr := &d.doc.Frames[idx]
	for len(fr.Cels) < len(d.doc.Layers) {
		fr.Cels = append(fr.Cels, NoCel)
	}
	fr.Cels = fr.Cels[:len(d.doc.Layers)]
	return nil
}

func (d *decoder) parseChunk(frame FrameIndex) error {
	c := &d.c
	start := c.pos

	size := int(c.u32())
	typ := c.u16()
	if c.err != nil {
		return c.err
	}
	if size < chunkHeaderSize {
		return newError(ErrUnexpectedEndOfData, start, "chunk size %d smaller than its header", size)
	}
	glog.V(3).Infof("chunk %#04x at %d, %d bytes", typ, start, size)

	var err error
	switch typ {
	case ChunkLayer:
		err = d.parseLayer(start)
	case ChunkCel:
		err = d.parseCel(frame, start, size)
	case ChunkFrameTags:
		err = d.parseTags()
	case ChunkPalette:
		err = d.parsePalette(start)
	case ChunkSlice:
		err = d.parseSlice()
	default:
		// ChunkCelExtra, ChunkUserData and anything unknown.
		c.skip(size - chunkHeaderSize)
	}
	if err != nil {
		return err
	}
	if c.err != nil {
		return c.err
	}

	// Newer writers append fields to known chunks; step over them.
	if end := start + size; c.pos < end {
		c.skip(end - c.pos)
	}
	return c.err
}
