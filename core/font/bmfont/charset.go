package bmfont

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// Charset is a Windows character set number, as BMFont stores it for
// non-unicode fonts.
type Charset uint8

// Character sets known to BMFont.
const (
	CharsetANSI        Charset = 0
	CharsetDefault     Charset = 1
	CharsetSymbol      Charset = 2
	CharsetMac         Charset = 77
	CharsetShiftJIS    Charset = 128
	CharsetHangul      Charset = 129
	CharsetJohab       Charset = 130
	CharsetGB2312      Charset = 134
	CharsetChineseBig5 Charset = 136
	CharsetGreek       Charset = 161
	CharsetTurkish     Charset = 162
	CharsetVietnamese  Charset = 163
	CharsetHebrew      Charset = 177
	CharsetArabic      Charset = 178
	CharsetBaltic      Charset = 186
	CharsetRussian     Charset = 204
	CharsetThai        Charset = 222
	CharsetEastEurope  Charset = 238
	CharsetOEM         Charset = 255
)

var charsetNames = map[Charset]string{
	CharsetANSI:        "ANSI",
	CharsetDefault:     "DEFAULT",
	CharsetSymbol:      "SYMBOL",
	CharsetMac:         "MAC",
	CharsetShiftJIS:    "SHIFTJIS",
	CharsetHangul:      "HANGUL",
	CharsetJohab:       "JOHAB",
	CharsetGB2312:      "GB2312",
	CharsetChineseBig5: "CHINESEBIG5",
	CharsetGreek:       "GREEK",
	CharsetTurkish:     "TURKISH",
	CharsetVietnamese:  "VIETNAMESE",
	CharsetHebrew:      "HEBREW",
	CharsetArabic:      "ARABIC",
	CharsetBaltic:      "BALTIC",
	CharsetRussian:     "RUSSIAN",
	CharsetThai:        "THAI",
	CharsetEastEurope:  "EASTEUROPE",
	CharsetOEM:         "OEM",
}

func (cs Charset) String() string {
	if name, ok := charsetNames[cs]; ok {
		return name
	}
	return fmt.Sprintf("charset(%d)", uint8(cs))
}

// Encoding returns the text encoding for a character set. Character sets
// without a known encoding (symbol, default, Johab) return nil.
func (cs Charset) Encoding() encoding.Encoding {
	switch cs {
	case CharsetANSI:
		return charmap.Windows1252
	case CharsetMac:
		return charmap.Macintosh
	case CharsetOEM:
		return charmap.CodePage437
	case CharsetShiftJIS:
		return japanese.ShiftJIS
	case CharsetHangul:
		return korean.EUCKR
	case CharsetGB2312:
		return simplifiedchinese.GBK
	case CharsetChineseBig5:
		return traditionalchinese.Big5
	case CharsetGreek:
		return charmap.Windows1253
	case CharsetTurkish:
		return charmap.Windows1254
	case CharsetVietnamese:
		return charmap.Windows1258
	case CharsetHebrew:
		return charmap.Windows1255
	case CharsetArabic:
		return charmap.Windows1256
	case CharsetBaltic:
		return charmap.Windows1257
	case CharsetRussian:
		return charmap.Windows1251
	case CharsetThai:
		return charmap.Windows874
	case CharsetEastEurope:
		return charmap.Windows1250
	}
	return nil
}

// DecodeString converts bytes stored in character set cs to a Go string.
// Valid UTF-8 input, and input in a character set without known encoding,
// is copied unchanged. The UTF-8 check comes first: tools often write
// UTF-8 names regardless of the charset field, so a legacy byte sequence
// which happens to be valid UTF-8 (e.g. Windows-1252 "Ã©", bytes C3 A9) is
// read as UTF-8 ("é").
func (cs Charset) DecodeString(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	enc := cs.Encoding()
	if enc == nil {
		return string(b)
	}
	s, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		tracer().Debugf("cannot decode %d bytes as %s: %v", len(b), cs, err)
		return string(b)
	}
	return string(s)
}
