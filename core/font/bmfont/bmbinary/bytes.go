package bmbinary

import (
	"bytes"
	"encoding/binary"

	"github.com/npillmayer/bmfont/core/font/bmfont"
)

// Reading bytes from a font's binary representation

// cursor is a read position within a byte slice. Reads either succeed and
// advance the position by exactly the number of bytes consumed, or fail with
// bmfont.ErrUnderflow and leave the position untouched.
//
// Byte slices handed out by a cursor are sub-slices of the underlying data.
type cursor struct {
	data []byte
	pos  int
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data}
}

// Len returns the number of unread bytes.
func (c *cursor) Len() int {
	return len(c.data) - c.pos
}

// Offset returns the number of bytes consumed so far.
func (c *cursor) Offset() int {
	return c.pos
}

func (c *cursor) empty() bool {
	return c.pos >= len(c.data)
}

// peek returns the next n bytes without consuming them.
func (c *cursor) peek(n int) ([]byte, error) {
	if n < 0 || n > c.Len() {
		return nil, bmfont.ErrUnderflow
	}
	return c.data[c.pos : c.pos+n], nil
}

// take consumes n bytes.
func (c *cursor) take(n int) ([]byte, error) {
	b, err := c.peek(n)
	if err != nil {
		return nil, err
	}
	c.pos += n
	return b, nil
}

func (c *cursor) u8() (uint8, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *cursor) u16() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *cursor) i16() (int16, error) {
	n, err := c.u16()
	return int16(n), err
}

func (c *cursor) u32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// cstring consumes a NUL-terminated string and returns it without the
// terminator. A missing terminator is an underflow.
func (c *cursor) cstring() ([]byte, error) {
	rest := c.data[c.pos:]
	n := bytes.IndexByte(rest, 0)
	if n < 0 {
		return nil, bmfont.ErrUnderflow
	}
	c.pos += n + 1
	return rest[:n], nil
}

// bytesU8 reads consecutive bytes into dst, all or nothing.
func (c *cursor) bytesU8(dst ...*uint8) error {
	b, err := c.take(len(dst))
	if err != nil {
		return err
	}
	for i, d := range dst {
		*d = b[i]
	}
	return nil
}
