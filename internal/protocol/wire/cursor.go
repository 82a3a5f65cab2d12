// Package wire reads the fixed-width little-endian unsigned integers PM5
// characteristics are built from.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var ErrInsufficientData = errors.New("wire: insufficient data")

// Width is a field size in bytes.
type Width int

const (
	W8  Width = 1
	W16 Width = 2
	W24 Width = 3
	W32 Width = 4
)

// ShortReadError reports a read that ran past the end of the payload.
type ShortReadError struct {
	Offset int
	Need   int
	Have   int
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("wire: insufficient data at offset %d: need %d bytes, have %d", e.Offset, e.Need, e.Have)
}

func (e *ShortReadError) Unwrap() error { return ErrInsufficientData }

// Cursor is a forward-only reader over a payload. It does not copy buf.
type Cursor struct {
	buf []byte
	off int
}

func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

func (c *Cursor) Offset() int    { return c.off }
func (c *Cursor) Len() int       { return len(c.buf) }
func (c *Cursor) Remaining() int { return len(c.buf) - c.off }

func (c *Cursor) take(n int) ([]byte, error) {
	if c.Remaining() < n {
		return nil, &ShortReadError{Offset: c.off, Need: n, Have: c.Remaining()}
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b, nil
}

func (c *Cursor) ReadUint8() (uint8, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *Cursor) ReadUint16() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadUint24 assembles exactly three bytes as b0 + b1<<8 + b2<<16.
func (c *Cursor) ReadUint24() (Uint24, error) {
	b, err := c.take(3)
	if err != nil {
		return 0, err
	}
	return Uint24(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16), nil
}

func (c *Cursor) ReadUint32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadUint reads one field of width w widened to uint32.
func (c *Cursor) ReadUint(w Width) (uint32, error) {
	switch w {
	case W8:
		v, err := c.ReadUint8()
		return uint32(v), err
	case W16:
		v, err := c.ReadUint16()
		return uint32(v), err
	case W24:
		v, err := c.ReadUint24()
		return uint32(v), err
	case W32:
		return c.ReadUint32()
	default:
		return 0, fmt.Errorf("wire: unsupported width %d", w)
	}
}
