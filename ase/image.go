package ase

// This file hooks the decoder into the image package, the way the other
// format packages register themselves.

import (
	"image"
	"image/color"
	"io"

	"github.com/pkg/errors"
)

func init() {
	image.RegisterFormat("aseprite", "????\xE0\xA5", Decode, DecodeConfig)
}

// DecodeConfig reads only the file header.
func DecodeConfig(r io.Reader) (image.Config, error) {
	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return image.Config{}, errors.Wrap(err, "ase: reading header")
	}
	d := &decoder{c: cursor{buf: buf}, doc: &Document{}}
	if err := d.parseHeader(); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      d.doc.Width,
		Height:     d.doc.Height,
	}, nil
}

// Decode returns the first frame of the sprite, composited.
func Decode(r io.Reader) (image.Image, error) {
	doc, err := DecodeAll(r)
	if err != nil {
		return nil, err
	}
	if len(doc.Frames) == 0 {
		return nil, errors.New("ase: sprite has no frames")
	}
	return doc.FrameImage(0)
}
