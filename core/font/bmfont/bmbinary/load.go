package bmbinary

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/npillmayer/bmfont/core"
	"github.com/npillmayer/bmfont/core/font/bmfont"
)

// Block tags
const (
	tagInfo         uint8 = 1
	tagCommon       uint8 = 2
	tagPages        uint8 = 3
	tagChars        uint8 = 4
	tagKerningPairs uint8 = 5
)

const (
	headerSize      = 4 // signature + version
	blockHeaderSize = 5 // tag + length
)

var magic = []byte("BMF")

// IsBinary reports whether b starts with the signature of a binary BMFont
// descriptor.
func IsBinary(b []byte) bool {
	return bytes.HasPrefix(b, magic)
}

// LoadFile reads and decodes a binary descriptor file.
func LoadFile(path string) (*bmfont.Font, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, core.WrapError(err, core.EMISSING, "font not found: %s", path)
		}
		return nil, core.WrapError(err, core.EIO, "cannot read font file %s", path)
	}
	return DecodeBytes(b)
}

// Decode reads all of r and decodes it as a binary descriptor.
func Decode(r io.Reader) (*bmfont.Font, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, core.WrapError(err, core.EIO, "cannot read BMFont binary data")
	}
	return DecodeBytes(b)
}

// DecodeBytes decodes a binary descriptor. The returned font does not refer
// to b.
func DecodeBytes(b []byte) (*bmfont.Font, error) {
	c := newCursor(b)
	version, err := readHeader(c)
	if err != nil {
		return nil, errFontFormat(err, c.Offset())
	}
	if version != SupportedVersion {
		return nil, errFontFormat(bmfont.UnsupportedVersionError{Version: uint8(version)}, c.Offset())
	}
	acc, err := newAccumulator(version)
	if err != nil {
		return nil, errFontFormat(err, c.Offset())
	}
	if err = acc.load(c); err != nil {
		return nil, errFontFormat(err, c.Offset())
	}
	f, err := acc.finalize()
	if err != nil {
		return nil, errFontFormat(err, c.Offset())
	}
	tracer().Infof("decoded %s", f)
	return f, nil
}

func readHeader(c *cursor) (FormatVersion, error) {
	h, err := c.peek(headerSize)
	if err != nil {
		return 0, err
	}
	if !IsBinary(h) {
		return 0, bmfont.ErrInvalidMagic
	}
	c.take(headerSize)
	return FormatVersion(h[3]), nil
}

// --- Accumulator -----------------------------------------------------------

// accumulator collects the blocks of a single decoding run.
type accumulator struct {
	version  FormatVersion
	decode   strategy
	info     *bmfont.Info
	common   *bmfont.Common
	pages    []string
	chars    []bmfont.Char
	kernings []bmfont.Kerning
}

func newAccumulator(version FormatVersion) (*accumulator, error) {
	s, err := strategyFor(version)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("decoding blocks with %v layout", version)
	return &accumulator{version: version, decode: s}, nil
}

// load consumes blocks from c until it is exhausted.
func (acc *accumulator) load(c *cursor) error {
	for !c.empty() {
		if err := acc.next(c); err != nil {
			return err
		}
	}
	return nil
}

func (acc *accumulator) next(c *cursor) error {
	id, src, err := block(c)
	if err != nil {
		return err
	}
	tracer().Debugf("block %d with %d bytes, ends at %d", id, len(src), c.Offset())
	switch id {
	case tagInfo:
		return acc.addInfo(src)
	case tagCommon:
		return acc.addCommon(src)
	case tagPages:
		return acc.decode.pages(src, func(page string) {
			acc.pages = append(acc.pages, page)
		})
	case tagChars:
		return acc.decode.chars(src, func(ch bmfont.Char) {
			acc.chars = append(acc.chars, ch)
		})
	case tagKerningPairs:
		return acc.decode.kernings(src, func(k bmfont.Kerning) {
			acc.kernings = append(acc.kernings, k)
		})
	}
	return bmfont.InvalidBlockError{ID: id}
}

func (acc *accumulator) addInfo(src []byte) error {
	if acc.info != nil {
		return bmfont.ErrDuplicateInfoBlock
	}
	info, err := acc.decode.info(src)
	if err != nil {
		return err
	}
	acc.info = &info
	return nil
}

func (acc *accumulator) addCommon(src []byte) error {
	if acc.common != nil {
		return bmfont.ErrDuplicateCommonBlock
	}
	common, err := acc.decode.common(src)
	if err != nil {
		return err
	}
	acc.common = &common
	return nil
}

// finalize checks for the required blocks and creates the font.
func (acc *accumulator) finalize() (*bmfont.Font, error) {
	if acc.info == nil {
		return nil, bmfont.ErrNoInfoBlock
	}
	if acc.common == nil {
		return nil, bmfont.ErrNoCommonBlock
	}
	f := bmfont.NewFont(*acc.info, *acc.common, acc.pages, acc.chars, acc.kernings)
	*acc = accumulator{}
	return f, nil
}

// --- Blocks ----------------------------------------------------------------

// block frames the next block of c and returns its tag and payload. The
// payload is a sub-slice of c's data.
func block(c *cursor) (uint8, []byte, error) {
	h, err := c.peek(blockHeaderSize)
	if err != nil {
		return 0, nil, err
	}
	id, n := h[0], le.Uint32(h[1:])
	if uint64(n) > uint64(c.Len()-blockHeaderSize) {
		return 0, nil, bmfont.ErrUnderflow
	}
	c.take(blockHeaderSize)
	src, _ := c.take(int(n))
	return id, src, nil
}
