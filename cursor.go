package pgwire

import (
	"bytes"
	"encoding/binary"
)

// cursor is a bounded read-only view over a message body. Every read is
// checked against the body boundary: a false result means the body did not
// hold enough bytes, which inside an already-framed body is a protocol
// violation, not a wait-for-more-data condition. A cursor never reads past
// the slice it was given, even when more of the stream is buffered beyond it.
type cursor struct {
	src []byte
	rp  int
}

func (c *cursor) remaining() int {
	return len(c.src) - c.rp
}

func (c *cursor) byte() (byte, bool) {
	if c.remaining() < 1 {
		return 0, false
	}
	b := c.src[c.rp]
	c.rp++
	return b, true
}

func (c *cursor) uint16() (uint16, bool) {
	if c.remaining() < 2 {
		return 0, false
	}
	n := binary.BigEndian.Uint16(c.src[c.rp:])
	c.rp += 2
	return n, true
}

func (c *cursor) int16() (int16, bool) {
	n, ok := c.uint16()
	return int16(n), ok
}

func (c *cursor) uint32() (uint32, bool) {
	if c.remaining() < 4 {
		return 0, false
	}
	n := binary.BigEndian.Uint32(c.src[c.rp:])
	c.rp += 4
	return n, true
}

func (c *cursor) int32() (int32, bool) {
	n, ok := c.uint32()
	return int32(n), ok
}

// next returns the next n bytes of the body without copying. The returned
// slice aliases the body.
func (c *cursor) next(n int) ([]byte, bool) {
	if n < 0 || c.remaining() < n {
		return nil, false
	}
	b := c.src[c.rp : c.rp+n : c.rp+n]
	c.rp += n
	return b, true
}

// cstring reads a NUL-terminated string. A false result means no terminator
// was found before the body boundary.
func (c *cursor) cstring() (string, bool) {
	idx := bytes.IndexByte(c.src[c.rp:], 0)
	if idx < 0 {
		return "", false
	}
	s := string(c.src[c.rp : c.rp+idx])
	c.rp += idx + 1
	return s, true
}
