package bmbinary

import (
	"encoding/binary"

	"github.com/npillmayer/bmfont/core/font/bmfont"
)

// Record sizes in bytes.
const (
	charSize     = 20
	kerningSize  = 10
	commonSizeV1 = 11
	commonSizeV3 = 15
)

var le = binary.LittleEndian

// --- Repeated and tight records --------------------------------------------

// unpackTight decodes a single record from src, which has to be consumed
// exactly.
func unpackTight[T any](src []byte, unpack func(*cursor) (T, error)) (T, error) {
	var zero T
	c := newCursor(src)
	v, err := unpack(c)
	if err != nil {
		return zero, err
	}
	if !c.empty() {
		return zero, bmfont.ErrOverflow
	}
	return v, nil
}

// unpackAll decodes fixed-size records from src until it is exhausted,
// calling yield for each of them. A trailing partial record is an underflow.
func unpackAll[T any](src []byte, size int, unpack func([]byte) T, yield func(T)) error {
	c := newCursor(src)
	for !c.empty() {
		b, err := c.take(size)
		if err != nil {
			return err
		}
		yield(unpack(b))
	}
	return nil
}

// unpackStrings decodes NUL-terminated strings from src until it is
// exhausted. Strings are copied; src may be released after the call.
func unpackStrings(src []byte, yield func(string)) error {
	c := newCursor(src)
	for !c.empty() {
		b, err := c.cstring()
		if err != nil {
			return err
		}
		yield(string(b))
	}
	return nil
}

// --- Info ------------------------------------------------------------------

// unpackInfo reads an info block. Version 1 did not store an outline
// thickness.
func unpackInfo(withOutline bool) func(*cursor) (bmfont.Info, error) {
	return func(c *cursor) (info bmfont.Info, err error) {
		if info.Size, err = c.i16(); err != nil {
			return
		}
		var bits, charset uint8
		if err = c.bytesU8(&bits, &charset); err != nil {
			return
		}
		info.SetFlags(bits)
		info.Charset = bmfont.Charset(charset)
		if info.StretchH, err = c.u16(); err != nil {
			return
		}
		p, s := &info.Padding, &info.Spacing
		if err = c.bytesU8(&info.AA, &p.Up, &p.Right, &p.Down, &p.Left, &s.Horiz, &s.Vert); err != nil {
			return
		}
		if withOutline {
			if info.Outline, err = c.u8(); err != nil {
				return
			}
		}
		var face []byte
		if face, err = c.cstring(); err != nil {
			return
		}
		if info.Unicode {
			info.Face = string(face)
		} else {
			info.Face = info.Charset.DecodeString(face)
		}
		return info, nil
	}
}

// --- Common ----------------------------------------------------------------

// unpackCommon reads a common block. Channel packing was introduced with
// version 3.
func unpackCommon(withChannels bool) func(*cursor) (bmfont.Common, error) {
	size := commonSizeV1
	if withChannels {
		size = commonSizeV3
	}
	return func(c *cursor) (bmfont.Common, error) {
		b, err := c.take(size)
		if err != nil {
			return bmfont.Common{}, err
		}
		common := bmfont.Common{
			LineHeight: le.Uint16(b[0:]),
			Base:       le.Uint16(b[2:]),
			ScaleW:     le.Uint16(b[4:]),
			ScaleH:     le.Uint16(b[6:]),
			Pages:      le.Uint16(b[8:]),
			Packed:     b[10]&bmfont.CommonPacked != 0,
		}
		if withChannels {
			common.AlphaChnl = bmfont.Packing(b[11])
			common.RedChnl = bmfont.Packing(b[12])
			common.GreenChnl = bmfont.Packing(b[13])
			common.BlueChnl = bmfont.Packing(b[14])
		}
		return common, nil
	}
}

// --- Chars and kerning pairs -----------------------------------------------

func unpackChar(b []byte) bmfont.Char {
	_ = b[charSize-1] // bounds check hint to compiler
	return bmfont.Char{
		ID:       le.Uint32(b[0:]),
		X:        le.Uint16(b[4:]),
		Y:        le.Uint16(b[6:]),
		Width:    le.Uint16(b[8:]),
		Height:   le.Uint16(b[10:]),
		XOffset:  int16(le.Uint16(b[12:])),
		YOffset:  int16(le.Uint16(b[14:])),
		XAdvance: int16(le.Uint16(b[16:])),
		Page:     b[18],
		Chnl:     bmfont.Chnl(b[19]),
	}
}

func unpackKerning(b []byte) bmfont.Kerning {
	_ = b[kerningSize-1] // bounds check hint to compiler
	return bmfont.Kerning{
		First:  le.Uint32(b[0:]),
		Second: le.Uint32(b[4:]),
		Amount: int16(le.Uint16(b[8:])),
	}
}
