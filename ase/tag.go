package ase

import "fmt"

// Direction is the playback direction of a tag.
type Direction uint8

const (
	Forward  Direction = 0
	Reverse  Direction = 1
	PingPong Direction = 2
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	case PingPong:
		return "pingpong"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Tag names an inclusive range of frames.
type Tag struct {
	Name      string
	Color     Color
	Direction Direction

	// Repeat is how many times the range plays; 0 means forever.
	Repeat int

	From, To FrameIndex

	// Frames holds From..To once decoding has finished.
	Frames []FrameIndex
}

// Sequence lists the frames of one pass through the tag in playback order.
// A ping-pong pass does not repeat the turning frames.
func (t *Tag) Sequence() []FrameIndex {
	var seq []FrameIndex
	switch t.Direction {
	case Reverse:
		for f := t.To; f >= t.From; f-- {
			seq = append(seq, f)
		}
	case PingPong:
		for f := t.From; f <= t.To; f++ {
			seq = append(seq, f)
		}
		for f := t.To - 1; f > t.From; f-- {
			seq = append(seq, f)
		}
	default:
		for f := t.From; f <= t.To; f++ {
			seq = append(seq, f)
		}
	}
	return seq
}

func (d *decoder) parseTags() error {
	c := &d.c

	count := int(c.u16())
	c.skip(8)
	for i := 0; i < count; i++ {
		from := c.u16()
		to := c.u16()
		dir := c.u8()
		repeat := c.u16()
		c.skip(6)
		col := c.u32()
		name := c.str()
		if c.err != nil {
			return c.err
		}
		d.doc.Tags = append(d.doc.Tags, Tag{
			Name:      name,
			Color:     unpackColor(col),
			Direction: Direction(dir),
			Repeat:    int(repeat),
			From:      FrameIndex(from),
			To:        FrameIndex(to),
		})
	}
	return c.err
}
