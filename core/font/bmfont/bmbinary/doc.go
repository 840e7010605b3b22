/*
Package bmbinary decodes the binary flavour of BMFont descriptors.

A binary descriptor starts with the signature "BMF" and a format version
byte, followed by blocks. Every block is introduced by a one-byte tag and
a little-endian 32-bit length:

	+-----+-----------------+----------------------+
	| tag | length (uint32) | length bytes payload |
	+-----+-----------------+----------------------+

Tags are 1 (info), 2 (common), 3 (pages), 4 (chars) and 5 (kerning pairs).
Info and common have to be present exactly once, the others may occur any
number of times and carry zero or more records each. Blocks are decoded in
file order.

Earlier versions of the format packed fewer fields into the info and common
blocks. Decoding strategies for versions 1 to 3 are available internally, but
only version 3 files are accepted, as this is what current BMFont tools
write.

Decoding either succeeds with a complete font or fails with the first
structural error found; see package bmfont for the error values.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package bmbinary

import (
	"github.com/npillmayer/bmfont/core"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bmfont.binary'
func tracer() tracing.Trace {
	return tracing.Select("bmfont.binary")
}

// errFontFormat wraps a decoding error into an application error, noting the
// byte offset where decoding stopped.
func errFontFormat(err error, offset int) error {
	return core.WrapError(err, core.EINVALID, "BMFont binary format: %v (at byte %d)", err, offset)
}
