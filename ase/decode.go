package ase

import (
	"io"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

type state int

const (
	stateStart state = iota
	stateHeaderParsed
	stateFrameParsed
	stateTagsResolved
	stateDone
	stateFailed
)

func (s state) String() string {
	switch s {
	case stateStart:
		return "start"
	case stateHeaderParsed:
		return "header parsed"
	case stateFrameParsed:
		return "frame parsed"
	case stateTagsResolved:
		return "tags resolved"
	case stateDone:
		return "done"
	case stateFailed:
		return "failed"
	}
	return "unknown"
}

// decoder carries the state of one decoding run. It is never shared.
type decoder struct {
	c      cursor
	doc    *Document
	layers layerTracker
	state  state
}

// DecodeBytes decodes a complete sprite file held in buf.
//
// buf is not retained: raw and inflated pixel buffers are copies. On failure
// the returned error matches one of the Err* kinds and no document is
// returned.
func DecodeBytes(buf []byte) (*Document, error) {
	d := &decoder{
		c:   cursor{buf: buf},
		doc: &Document{},
	}
	if err := d.run(); err != nil {
		glog.V(2).Infof("decoding stopped in state %q", d.state)
		d.state = stateFailed
		return nil, err
	}
	return d.doc, nil
}

// DecodeAll reads r to the end and decodes the sprite file it contains.
func DecodeAll(r io.Reader) (*Document, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "ase: reading sprite file")
	}
	return DecodeBytes(buf)
}

func (d *decoder) run() error {
	if err := d.parseHeader(); err != nil {
		return err
	}
	d.state = stateHeaderParsed

	for i := 0; i < d.doc.FrameCount; i++ {
		if err := d.parseFrame(); err != nil {
			return err
		}
		d.state = stateFrameParsed
	}

	if err := d.resolveTags(); err != nil {
		return err
	}
	d.state = stateTagsResolved

	d.state = stateDone
	return nil
}

// resolveTags links every tag to the frames in its inclusive range and back.
func (d *decoder) resolveTags() error {
	frames := FrameIndex(len(d.doc.Frames))
	for i := range d.doc.Tags {
		t := &d.doc.Tags[i]
		if t.From < 0 || t.From > t.To || t.To >= frames {
			return newError(ErrInvalidRange, -1, "tag %q covers frames %d..%d of %d", t.Name, t.From, t.To, frames)
		}
		for f := t.From; f <= t.To; f++ {
			t.Frames = append(t.Frames, f)
			d.doc.Frames[f].Tags = append(d.doc.Frames[f].Tags, TagIndex(i))
		}
	}
	return nil
}
