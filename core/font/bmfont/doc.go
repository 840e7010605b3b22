/*
Package bmfont holds the descriptor of an AngelCode BMFont bitmap font.

A BMFont descriptor does not contain any glyph images. It describes where to
find glyphs on one or more texture pages, together with line metrics and
kerning pairs. Descriptors come in a text, an XML and a binary flavour;
decoding of the binary flavour is homed in sub-package bmbinary.

A Font is immutable once created. Accessors hand out copies of the
descriptor's lists, so clients are free to modify what they receive.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package bmfont

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bmfont'
func tracer() tracing.Trace {
	return tracing.Select("bmfont")
}
