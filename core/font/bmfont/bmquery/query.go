/*
Package bmquery queries glyph metrics and kerning from BMFont descriptors.

A bmfont.Font stores characters and kerning pairs as flat lists, in file
order. Package bmquery indexes them for lookup by code point and converts
pixel values to the fixed point types of golang.org/x/image.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package bmquery

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/bmfont/core/font/bmfont"
	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// tracer writes to trace with key 'bmfont.query'
func tracer() tracing.Trace {
	return tracing.Select("bmfont.query")
}

// Index provides lookups into a font. If a character or a kerning pair is
// defined more than once, the last definition wins.
type Index struct {
	font  *bmfont.Font
	pages []string
	chars *treemap.Map // int(char ID) -> bmfont.Char
	kerns *treemap.Map // pair -> int16
}

type pair struct {
	first, second uint32
}

func comparePairs(a, b interface{}) int {
	p, q := a.(pair), b.(pair)
	switch {
	case p.first < q.first:
		return -1
	case p.first > q.first:
		return 1
	case p.second < q.second:
		return -1
	case p.second > q.second:
		return 1
	}
	return 0
}

// NewIndex indexes the characters and kerning pairs of f.
func NewIndex(f *bmfont.Font) *Index {
	inx := &Index{
		font:  f,
		pages: f.Pages(),
		chars: treemap.NewWithIntComparator(),
		kerns: treemap.NewWith(comparePairs),
	}
	chars := f.Chars()
	for _, ch := range chars {
		inx.chars.Put(int(ch.ID), ch)
	}
	if inx.chars.Size() < len(chars) {
		tracer().Infof("font %q defines %d characters more than once", f.Info().Face,
			len(chars)-inx.chars.Size())
	}
	for _, k := range f.Kernings() {
		inx.kerns.Put(pair{k.First, k.Second}, k.Amount)
	}
	tracer().Debugf("indexed %d chars and %d kerning pairs", inx.chars.Size(), inx.kerns.Size())
	return inx
}

// Font returns the indexed font.
func (inx *Index) Font() *bmfont.Font {
	return inx.font
}

// Glyph returns the character record for code point r.
func (inx *Index) Glyph(r rune) (bmfont.Char, bool) {
	if r < 0 {
		return bmfont.Char{}, false
	}
	v, found := inx.chars.Get(int(r))
	if !found {
		return bmfont.Char{}, false
	}
	return v.(bmfont.Char), true
}

// Advance returns the horizontal advance of r, in pixels.
func (inx *Index) Advance(r rune) (fixed.Int26_6, bool) {
	ch, ok := inx.Glyph(r)
	if !ok {
		return 0, false
	}
	return fixed.I(int(ch.XAdvance)), true
}

// Kern returns the horizontal adjustment for b following a, in pixels.
func (inx *Index) Kern(a, b rune) fixed.Int26_6 {
	if a < 0 || b < 0 {
		return 0
	}
	if v, found := inx.kerns.Get(pair{uint32(a), uint32(b)}); found {
		return fixed.I(int(v.(int16)))
	}
	return 0
}

// Bounds returns the box of r's image relative to the pen position on the
// top of the line. Y grows downwards.
func (inx *Index) Bounds(r rune) (fixed.Rectangle26_6, bool) {
	ch, ok := inx.Glyph(r)
	if !ok {
		return fixed.Rectangle26_6{}, false
	}
	x, y := int(ch.XOffset), int(ch.YOffset)
	return fixed.R(x, y, x+int(ch.Width), y+int(ch.Height)), true
}

// PageFor returns the texture file holding the image of r.
func (inx *Index) PageFor(r rune) (string, bool) {
	ch, ok := inx.Glyph(r)
	if !ok {
		return "", false
	}
	if int(ch.Page) >= len(inx.pages) {
		tracer().Errorf("char %d refers to page %d, font has %d pages", ch.ID, ch.Page, len(inx.pages))
		return "", false
	}
	return inx.pages[ch.Page], true
}

// Metrics returns the line metrics of the font, in pixels.
func (inx *Index) Metrics() xfont.Metrics {
	common := inx.font.Common()
	descent := int(common.LineHeight) - int(common.Base)
	return xfont.Metrics{
		Height:  fixed.I(int(common.LineHeight)),
		Ascent:  fixed.I(int(common.Base)),
		Descent: fixed.I(descent),
	}
}
