package bmfont

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestCharsetNames(t *testing.T) {
	assert.Equal(t, "ANSI", CharsetANSI.String())
	assert.Equal(t, "SHIFTJIS", CharsetShiftJIS.String())
	assert.Equal(t, "charset(42)", Charset(42).String())
}

func TestCharsetDecoding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmfont")
	defer teardown()
	//
	for _, tc := range []struct {
		cs   Charset
		in   string
		want string
	}{
		{CharsetANSI, "Fran\xe7ais", "Français"},
		{CharsetRussian, "\xcf\xf0\xe8\xe2\xe5\xf2", "Привет"},
		{CharsetGreek, "\xc1\xe8\xde\xed\xe1", "Αθήνα"},
		{CharsetShiftJIS, "\x93\xfa\x96\x7b", "日本"},
		{CharsetANSI, "plain", "plain"},
		{CharsetRussian, "already ü", "already ü"},
		{CharsetANSI, "\xc3\xa9", "é"}, // valid UTF-8 wins over the charset
		{CharsetSymbol, "\xf0\x9f", "\xf0\x9f"},
	} {
		assert.Equal(t, tc.want, tc.cs.DecodeString([]byte(tc.in)), "charset %s", tc.cs)
	}
	assert.Nil(t, CharsetDefault.Encoding())
	assert.NotNil(t, CharsetOEM.Encoding())
}
