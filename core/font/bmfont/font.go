package bmfont

import (
	"fmt"
	"slices"
	"strings"
)

// Font is a decoded BMFont descriptor.
//
// A Font is created once with NewFont and never changes afterwards.
type Font struct {
	info     Info
	common   Common
	pages    []string
	chars    []Char
	kernings []Kerning
}

// NewFont creates a font from its parts. Lists are copied, callers may
// re-use their slices.
func NewFont(info Info, common Common, pages []string, chars []Char, kernings []Kerning) *Font {
	return &Font{
		info:     info,
		common:   common,
		pages:    slices.Clone(pages),
		chars:    slices.Clone(chars),
		kernings: slices.Clone(kernings),
	}
}

// Info returns information about how the font was generated.
func (f *Font) Info() Info {
	return f.info
}

// Common returns information common to all characters.
func (f *Font) Common() Common {
	return f.common
}

// Pages returns the texture file names, in page order.
func (f *Font) Pages() []string {
	return slices.Clone(f.pages)
}

// Chars returns the character records in file order.
func (f *Font) Chars() []Char {
	return slices.Clone(f.chars)
}

// Kernings returns the kerning pairs in file order.
func (f *Font) Kernings() []Kerning {
	return slices.Clone(f.kernings)
}

// PageCount is the number of page references.
func (f *Font) PageCount() int { return len(f.pages) }

// CharCount is the number of character records.
func (f *Font) CharCount() int { return len(f.chars) }

// KerningCount is the number of kerning pairs.
func (f *Font) KerningCount() int { return len(f.kernings) }

func (f *Font) String() string {
	return fmt.Sprintf("BMFont[%q %dpx, %d pages, %d chars, %d kernings]",
		f.info.Face, f.info.Size, len(f.pages), len(f.chars), len(f.kernings))
}

// --- Info ------------------------------------------------------------------

// Info holds information on how the font was generated.
type Info struct {
	Face        string  // name of the true type font
	Size        int16   // size of the true type font, negative for matching char height
	Smooth      bool    // smoothing was turned on
	Unicode     bool    // unicode charset
	Italic      bool    // font is italic
	Bold        bool    // font is bold
	FixedHeight bool    // fixed height
	Charset     Charset // OEM charset, unless Unicode is set
	StretchH    uint16  // font height stretch in percentage; 100 means no stretch
	AA          uint8   // supersampling level, 1 means no supersampling
	Padding     Padding // padding for each character
	Spacing     Spacing // spacing for each character
	Outline     uint8   // outline thickness
}

// Padding for each character (up, right, down, left).
type Padding struct {
	Up, Right, Down, Left uint8
}

// Spacing for each character (horizontal, vertical).
type Spacing struct {
	Horiz, Vert uint8
}

// Bits of the info block bit field.
const (
	InfoSmooth      uint8 = 0x80
	InfoUnicode     uint8 = 0x40
	InfoItalic      uint8 = 0x20
	InfoBold        uint8 = 0x10
	InfoFixedHeight uint8 = 0x08
)

// SetFlags sets the boolean attributes of info from a bit field.
func (info *Info) SetFlags(bits uint8) {
	info.Smooth = bits&InfoSmooth != 0
	info.Unicode = bits&InfoUnicode != 0
	info.Italic = bits&InfoItalic != 0
	info.Bold = bits&InfoBold != 0
	info.FixedHeight = bits&InfoFixedHeight != 0
}

// Flags returns the boolean attributes of info as a bit field.
func (info Info) Flags() uint8 {
	var bits uint8
	for _, f := range []struct {
		set bool
		bit uint8
	}{
		{info.Smooth, InfoSmooth},
		{info.Unicode, InfoUnicode},
		{info.Italic, InfoItalic},
		{info.Bold, InfoBold},
		{info.FixedHeight, InfoFixedHeight},
	} {
		if f.set {
			bits |= f.bit
		}
	}
	return bits
}

// --- Common ----------------------------------------------------------------

// Common holds information common to all characters.
type Common struct {
	LineHeight uint16  // distance in pixels between each line of text
	Base       uint16  // pixels from the absolute top of the line to the base of the characters
	ScaleW     uint16  // width of the texture
	ScaleH     uint16  // height of the texture
	Pages      uint16  // number of texture pages
	Packed     bool    // monochrome characters have been packed into each texture channel
	AlphaChnl  Packing // content of the alpha channel
	RedChnl    Packing // content of the red channel
	GreenChnl  Packing // content of the green channel
	BlueChnl   Packing // content of the blue channel
}

// CommonPacked is the bit of the common block bit field for packed textures.
const CommonPacked uint8 = 0x01

// Packing describes what a texture channel holds.
type Packing uint8

// Channel contents
const (
	PackGlyph        Packing = 0 // glyph data
	PackOutline      Packing = 1 // outline
	PackGlyphOutline Packing = 2 // glyph and outline
	PackZero         Packing = 3 // set to zero
	PackOne          Packing = 4 // set to one
)

func (p Packing) String() string {
	switch p {
	case PackGlyph:
		return "glyph"
	case PackOutline:
		return "outline"
	case PackGlyphOutline:
		return "glyph+outline"
	case PackZero:
		return "zero"
	case PackOne:
		return "one"
	}
	return fmt.Sprintf("packing(%d)", uint8(p))
}

// --- Chars -----------------------------------------------------------------

// Char describes a character in the font.
type Char struct {
	ID       uint32 // character id
	X        uint16 // left position of the character image in the texture
	Y        uint16 // top position of the character image in the texture
	Width    uint16 // width of the character image in the texture
	Height   uint16 // height of the character image in the texture
	XOffset  int16  // offset from the pen position to the character image
	YOffset  int16  // offset from the top of the line to the character image
	XAdvance int16  // how much to advance the pen after drawing
	Page     uint8  // texture page where the character image is found
	Chnl     Chnl   // texture channel where the character image is found
}

// Chnl is a set of texture channels.
type Chnl uint8

// Texture channels
const (
	ChnlBlue  Chnl = 0x01
	ChnlGreen Chnl = 0x02
	ChnlRed   Chnl = 0x04
	ChnlAlpha Chnl = 0x08
	ChnlAll   Chnl = 0x0f
)

func (c Chnl) String() string {
	if c == ChnlAll {
		return "all"
	}
	var names []string
	for _, ch := range []struct {
		bit  Chnl
		name string
	}{
		{ChnlRed, "red"}, {ChnlGreen, "green"}, {ChnlBlue, "blue"}, {ChnlAlpha, "alpha"},
	} {
		if c&ch.bit != 0 {
			names = append(names, ch.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// --- Kerning ---------------------------------------------------------------

// Kerning is a kerning pair.
type Kerning struct {
	First  uint32 // first character id
	Second uint32 // second character id
	Amount int16  // x adjustment when drawing Second immediately after First
}
