package bmfont

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFontCopiesLists(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmfont")
	defer teardown()
	//
	pages := []string{"a.png", "b.png"}
	chars := []Char{{ID: 'a', XAdvance: 5}}
	f := NewFont(Info{Face: "Arial", Size: 12}, Common{LineHeight: 14}, pages, chars, nil)
	pages[0] = "x.png"
	chars[0].XAdvance = 99
	if f.Pages()[0] != "a.png" {
		t.Errorf("expected font to keep its own pages, has %v", f.Pages())
	}
	if f.Chars()[0].XAdvance != 5 {
		t.Errorf("expected font to keep its own chars, has %v", f.Chars())
	}
	f.Chars()[0].XAdvance = 42
	if f.Chars()[0].XAdvance != 5 {
		t.Errorf("expected chars accessor to hand out a copy")
	}
	if f.PageCount() != 2 || f.CharCount() != 1 || f.KerningCount() != 0 {
		t.Errorf("unexpected counts for %v", f)
	}
	if f.String() != `BMFont["Arial" 12px, 2 pages, 1 chars, 0 kernings]` {
		t.Errorf("unexpected string representation %s", f)
	}
}

func TestInfoFlags(t *testing.T) {
	for _, bits := range []uint8{0, InfoSmooth, InfoUnicode | InfoBold, 0xf8} {
		var info Info
		info.SetFlags(bits)
		if info.Flags() != bits {
			t.Errorf("expected flags %#x to round-trip, got %#x", bits, info.Flags())
		}
	}
	var info Info
	info.SetFlags(0x07) // reserved bits
	if info.Flags() != 0 {
		t.Errorf("expected reserved bits to be ignored, got %#x", info.Flags())
	}
	info.SetFlags(InfoItalic | InfoFixedHeight)
	if !info.Italic || !info.FixedHeight || info.Smooth {
		t.Errorf("flags decoded wrongly: %+v", info)
	}
}

func TestChannelNames(t *testing.T) {
	for c, s := range map[Chnl]string{
		ChnlAll:              "all",
		0:                    "none",
		ChnlAlpha:            "alpha",
		ChnlRed | ChnlBlue:   "red|blue",
		ChnlGreen | ChnlBlue: "green|blue",
	} {
		if c.String() != s {
			t.Errorf("expected channel %d to be %q, is %q", uint8(c), s, c.String())
		}
	}
	for p, s := range map[Packing]string{
		PackGlyph:        "glyph",
		PackGlyphOutline: "glyph+outline",
		PackOne:          "one",
		Packing(9):       "packing(9)",
	} {
		if p.String() != s {
			t.Errorf("expected packing %d to be %q, is %q", uint8(p), s, p.String())
		}
	}
}
