package ase

import (
	"encoding/binary"
)

// cursor is a forward-only little-endian reader over an immutable buffer.
//
// The first failed read is remembered in err; every later read is a no-op
// returning a zero value, so callers read a group of fields and check err once
// before acting on any of them.
type cursor struct {
	buf []byte
	pos int
	err error
}

// need reports whether n more bytes are available, recording
// ErrUnexpectedEndOfData otherwise.
func (c *cursor) need(n int) bool {
	if c.err != nil {
		return false
	}
	if n < 0 {
		c.err = newError(ErrUnexpectedEndOfData, c.pos, "negative length %d", n)
		return false
	}
	if n > len(c.buf)-c.pos {
		c.err = newError(ErrUnexpectedEndOfData, c.pos, "need %d bytes, %d left", n, len(c.buf)-c.pos)
		return false
	}
	return true
}

func (c *cursor) u8() uint8 {
	if !c.need(1) {
		return 0
	}
	v := c.buf[c.pos]
	c.pos++
	return v
}

func (c *cursor) u16() uint16 {
	if !c.need(2) {
		return 0
	}
	v := binary.LittleEndian.Uint16(c.buf[c.pos:])
	c.pos += 2
	return v
}

func (c *cursor) i16() int16 {
	return int16(c.u16())
}

func (c *cursor) u32() uint32 {
	if !c.need(4) {
		return 0
	}
	v := binary.LittleEndian.Uint32(c.buf[c.pos:])
	c.pos += 4
	return v
}

func (c *cursor) i32() int32 {
	return int32(c.u32())
}

// span returns the next n bytes without copying them.
func (c *cursor) span(n int) []byte {
	if !c.need(n) {
		return nil
	}
	b := c.buf[c.pos : c.pos+n : c.pos+n]
	c.pos += n
	return b
}

// str reads a string prefixed by its 16-bit byte length.
func (c *cursor) str() string {
	n := c.u16()
	return string(c.span(int(n)))
}

func (c *cursor) skip(n int) {
	if c.need(n) {
		c.pos += n
	}
}
