package bmbinary

import (
	"encoding/binary"

	"github.com/npillmayer/bmfont/core/font/bmfont"
)

// fontBuilder writes binary descriptors for tests.
type fontBuilder struct {
	buf []byte
}

func newFontBuilder(version FormatVersion) *fontBuilder {
	return &fontBuilder{buf: append([]byte("BMF"), byte(version))}
}

// body starts a builder without file header.
func body() *fontBuilder {
	return &fontBuilder{}
}

func (fb *fontBuilder) block(id uint8, payload []byte) *fontBuilder {
	return fb.rawBlock(id, uint32(len(payload)), payload)
}

// rawBlock writes a block with a declared length independent of the payload.
func (fb *fontBuilder) rawBlock(id uint8, n uint32, payload []byte) *fontBuilder {
	fb.buf = append(fb.buf, id)
	fb.buf = binary.LittleEndian.AppendUint32(fb.buf, n)
	fb.buf = append(fb.buf, payload...)
	return fb
}

func (fb *fontBuilder) raw(b ...byte) *fontBuilder {
	fb.buf = append(fb.buf, b...)
	return fb
}

func (fb *fontBuilder) info(info bmfont.Info) *fontBuilder {
	return fb.block(tagInfo, infoPayload(info, true))
}

func (fb *fontBuilder) common(common bmfont.Common) *fontBuilder {
	return fb.block(tagCommon, commonPayload(common, true))
}

func (fb *fontBuilder) pages(pages ...string) *fontBuilder {
	return fb.block(tagPages, pagesPayload(pages...))
}

func (fb *fontBuilder) chars(chars ...bmfont.Char) *fontBuilder {
	return fb.block(tagChars, charsPayload(chars...))
}

func (fb *fontBuilder) kernings(kernings ...bmfont.Kerning) *fontBuilder {
	return fb.block(tagKerningPairs, kerningsPayload(kernings...))
}

func (fb *fontBuilder) bytes() []byte {
	return fb.buf
}

// --- Payloads --------------------------------------------------------------

var le16 = binary.LittleEndian.AppendUint16
var le32 = binary.LittleEndian.AppendUint32

func infoPayload(info bmfont.Info, withOutline bool) []byte {
	b := le16(nil, uint16(info.Size))
	b = append(b, info.Flags(), uint8(info.Charset))
	b = le16(b, info.StretchH)
	b = append(b, info.AA,
		info.Padding.Up, info.Padding.Right, info.Padding.Down, info.Padding.Left,
		info.Spacing.Horiz, info.Spacing.Vert)
	if withOutline {
		b = append(b, info.Outline)
	}
	b = append(b, info.Face...)
	return append(b, 0)
}

func commonPayload(common bmfont.Common, withChannels bool) []byte {
	var b []byte
	for _, n := range []uint16{common.LineHeight, common.Base, common.ScaleW, common.ScaleH, common.Pages} {
		b = le16(b, n)
	}
	var bits uint8
	if common.Packed {
		bits = bmfont.CommonPacked
	}
	b = append(b, bits)
	if withChannels {
		b = append(b, uint8(common.AlphaChnl), uint8(common.RedChnl),
			uint8(common.GreenChnl), uint8(common.BlueChnl))
	}
	return b
}

func pagesPayload(pages ...string) []byte {
	var b []byte
	for _, p := range pages {
		b = append(b, p...)
		b = append(b, 0)
	}
	return b
}

func charsPayload(chars ...bmfont.Char) []byte {
	var b []byte
	for _, c := range chars {
		b = le32(b, c.ID)
		for _, n := range []uint16{c.X, c.Y, c.Width, c.Height,
			uint16(c.XOffset), uint16(c.YOffset), uint16(c.XAdvance)} {
			b = le16(b, n)
		}
		b = append(b, c.Page, uint8(c.Chnl))
	}
	return b
}

func kerningsPayload(kernings ...bmfont.Kerning) []byte {
	var b []byte
	for _, k := range kernings {
		b = le32(b, k.First)
		b = le32(b, k.Second)
		b = le16(b, uint16(k.Amount))
	}
	return b
}

// --- Sample records --------------------------------------------------------

var sampleInfo = bmfont.Info{
	Face:     "Test Sans",
	Size:     -24,
	Smooth:   true,
	Unicode:  true,
	Bold:     true,
	Charset:  bmfont.CharsetANSI,
	StretchH: 100,
	AA:       1,
	Padding:  bmfont.Padding{Up: 1, Right: 2, Down: 3, Left: 4},
	Spacing:  bmfont.Spacing{Horiz: 1, Vert: 2},
	Outline:  1,
}

var sampleCommon = bmfont.Common{
	LineHeight: 32,
	Base:       26,
	ScaleW:     256,
	ScaleH:     256,
	Pages:      2,
	Packed:     true,
	AlphaChnl:  bmfont.PackGlyph,
	RedChnl:    bmfont.PackOutline,
	GreenChnl:  bmfont.PackGlyphOutline,
	BlueChnl:   bmfont.PackOne,
}

var sampleChars = []bmfont.Char{
	{ID: 'A', X: 10, Y: 20, Width: 16, Height: 18, XOffset: -1, YOffset: 8, XAdvance: 15, Page: 0, Chnl: bmfont.ChnlAll},
	{ID: 'B', X: 30, Y: 20, Width: 14, Height: 18, XOffset: 1, YOffset: 8, XAdvance: 16, Page: 0, Chnl: bmfont.ChnlAll},
	{ID: 0x1F600, X: 0, Y: 0, Width: 24, Height: 24, XOffset: 0, YOffset: 2, XAdvance: 26, Page: 1, Chnl: bmfont.ChnlAlpha},
}

var sampleKerning = bmfont.Kerning{First: 'A', Second: 'V', Amount: -2}

// sampleFont is header + info + common + 2 pages + 3 chars + 1 kerning pair.
func sampleFont() []byte {
	return newFontBuilder(SupportedVersion).
		info(sampleInfo).
		common(sampleCommon).
		pages("test_0.png", "test_1.png").
		chars(sampleChars...).
		kernings(sampleKerning).
		bytes()
}
