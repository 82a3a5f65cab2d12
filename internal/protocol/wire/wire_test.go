package wire

import (
	"errors"
	"testing"

	"github.com/danmuck/rowctl/internal/testutil/testlog"
)

type tenths uint16

func (tenths) Width() Width { return W16 }

type level uint8

func (level) Width() Width { return W8 }

type belt uint32

func (belt) Width() Width { return W32 }

func TestReadUint24AllByteCombinations(t *testing.T) {
	testlog.Start(t)

	// Every value of each byte position, the others held at a marker.
	for b := 0; b < 256; b++ {
		cases := [][3]byte{{byte(b), 0x5a, 0xa5}, {0x5a, byte(b), 0xa5}, {0x5a, 0xa5, byte(b)}}
		for _, in := range cases {
			c := NewCursor(in[:])
			got, err := c.ReadUint24()
			if err != nil {
				t.Fatalf("read %v: %v", in, err)
			}
			want := uint32(in[0]) + 256*uint32(in[1]) + 65536*uint32(in[2])
			if uint32(got) != want {
				t.Fatalf("read %v: expected %d, got %d", in, want, got)
			}
			if c.Remaining() != 0 {
				t.Fatalf("expected cursor exhausted, %d bytes remain", c.Remaining())
			}
		}
	}
}

func TestReadLittleEndianWidths(t *testing.T) {
	testlog.Start(t)

	c := NewCursor([]byte{0x01, 0x34, 0x12, 0x56, 0x34, 0x12, 0x78, 0x56, 0x34, 0x12})
	u8, err := c.ReadUint8()
	if err != nil || u8 != 0x01 {
		t.Fatalf("u8: got %#x err=%v", u8, err)
	}
	u16, err := c.ReadUint16()
	if err != nil || u16 != 0x1234 {
		t.Fatalf("u16: got %#x err=%v", u16, err)
	}
	u24, err := c.ReadUint24()
	if err != nil || u24 != 0x123456 {
		t.Fatalf("u24: got %#x err=%v", u24, err)
	}
	u32, err := c.ReadUint32()
	if err != nil || u32 != 0x12345678 {
		t.Fatalf("u32: got %#x err=%v", u32, err)
	}
	if c.Offset() != 10 {
		t.Fatalf("expected offset 10, got %d", c.Offset())
	}
}

func TestShortReadLeavesCursorInPlace(t *testing.T) {
	testlog.Start(t)

	c := NewCursor([]byte{0xba, 0x05})
	_, err := c.ReadUint24()
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
	var short *ShortReadError
	if !errors.As(err, &short) {
		t.Fatalf("expected *ShortReadError, got %T", err)
	}
	if short.Offset != 0 || short.Need != 3 || short.Have != 2 {
		t.Fatalf("unexpected short read: %+v", short)
	}
	if c.Offset() != 0 {
		t.Fatalf("cursor advanced on failure: %d", c.Offset())
	}
	if _, err := NewCursor(nil).ReadUint8(); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData on empty payload, got %v", err)
	}
}

func TestGenericReadDelegatesByWidth(t *testing.T) {
	testlog.Start(t)

	c := NewCursor([]byte{0x07, 0xe8, 0x03, 0xef, 0xbe, 0xad, 0xde, 0x10, 0x20, 0x30})
	lv, err := Read[level](c)
	if err != nil || lv != 7 {
		t.Fatalf("level: got %d err=%v", lv, err)
	}
	tv, err := Read[tenths](c)
	if err != nil || tv != 1000 {
		t.Fatalf("tenths: got %d err=%v", tv, err)
	}
	bv, err := Read[belt](c)
	if err != nil || bv != 0xdeadbeef {
		t.Fatalf("belt: got %#x err=%v", bv, err)
	}
	uv, err := Read[Uint24](c)
	if err != nil || uv != 0x302010 {
		t.Fatalf("uint24: got %#x err=%v", uv, err)
	}
}

func TestReadAll(t *testing.T) {
	testlog.Start(t)

	got, err := ReadAll[tenths](NewCursor([]byte{1, 0, 2, 0, 0xff, 0xff}))
	if err != nil {
		t.Fatalf("read all: %v", err)
	}
	want := []tenths{1, 2, 0xffff}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sample %d: expected %d, got %d", i, want[i], got[i])
		}
	}

	empty, err := ReadAll[tenths](NewCursor(nil))
	if err != nil || len(empty) != 0 {
		t.Fatalf("empty: got %v err=%v", empty, err)
	}

	_, err = ReadAll[tenths](NewCursor([]byte{1, 0, 2}))
	var short *ShortReadError
	if !errors.As(err, &short) || short.Offset != 2 || short.Have != 1 {
		t.Fatalf("expected short read at offset 2, got %v", err)
	}
}
