package bmbinary

import (
	"fmt"

	"github.com/npillmayer/bmfont/core/font/bmfont"
)

// FormatVersion is the revision of the binary layout, as stored in the file
// header.
type FormatVersion uint8

// Format versions of BMFont binary files.
const (
	Version1 FormatVersion = 1 // BMFont 1.10
	Version2 FormatVersion = 2 // BMFont 1.11, adds outline thickness to info
	Version3 FormatVersion = 3 // BMFont 1.12, adds channel packing to common
)

// SupportedVersion is the only version accepted by DecodeBytes.
const SupportedVersion = Version3

func (v FormatVersion) String() string {
	return fmt.Sprintf("v%d", uint8(v))
}

// strategy bundles the block decoders for one format version. All decoders
// produce the same record types, whatever the version.
type strategy struct {
	info     func([]byte) (bmfont.Info, error)
	common   func([]byte) (bmfont.Common, error)
	pages    func([]byte, func(string)) error
	chars    func([]byte, func(bmfont.Char)) error
	kernings func([]byte, func(bmfont.Kerning)) error
}

var strategies = map[FormatVersion]strategy{
	Version1: makeStrategy(false, false),
	Version2: makeStrategy(true, false),
	Version3: makeStrategy(true, true),
}

func makeStrategy(infoOutline, commonChannels bool) strategy {
	info, common := unpackInfo(infoOutline), unpackCommon(commonChannels)
	return strategy{
		info: func(src []byte) (bmfont.Info, error) {
			return unpackTight(src, info)
		},
		common: func(src []byte) (bmfont.Common, error) {
			return unpackTight(src, common)
		},
		pages: unpackStrings,
		chars: func(src []byte, yield func(bmfont.Char)) error {
			return unpackAll(src, charSize, unpackChar, yield)
		},
		kernings: func(src []byte, yield func(bmfont.Kerning)) error {
			return unpackAll(src, kerningSize, unpackKerning, yield)
		},
	}
}

// strategyFor returns the decoders for version v. Unknown versions are
// reported as unsupported.
func strategyFor(v FormatVersion) (strategy, error) {
	s, ok := strategies[v]
	if !ok {
		return strategy{}, bmfont.UnsupportedVersionError{Version: uint8(v)}
	}
	return s, nil
}
