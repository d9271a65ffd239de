// Package charset maps RTF codepage and \fcharset numbers onto decoders
// from golang.org/x/text.
package charset

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// Codepages used by the \mac, \pc and \pca document charset words.
const (
	CodepageMac = 10000
	CodepagePC  = 437
	CodepagePCA = 850
)

var codepages = map[int]encoding.Encoding{
	437:   charmap.CodePage437,
	708:   charmap.ISO8859_6,
	819:   charmap.ISO8859_1,
	850:   charmap.CodePage850,
	852:   charmap.CodePage852,
	855:   charmap.CodePage855,
	858:   charmap.CodePage858,
	860:   charmap.CodePage860,
	862:   charmap.CodePage862,
	863:   charmap.CodePage863,
	865:   charmap.CodePage865,
	866:   charmap.CodePage866,
	874:   charmap.Windows874,
	932:   japanese.ShiftJIS,
	936:   simplifiedchinese.GBK,
	949:   korean.EUCKR,
	950:   traditionalchinese.Big5,
	1250:  charmap.Windows1250,
	1251:  charmap.Windows1251,
	1252:  charmap.Windows1252,
	1253:  charmap.Windows1253,
	1254:  charmap.Windows1254,
	1255:  charmap.Windows1255,
	1256:  charmap.Windows1256,
	1257:  charmap.Windows1257,
	1258:  charmap.Windows1258,
	10000: charmap.Macintosh,
	10007: charmap.MacintoshCyrillic,
	20866: charmap.KOI8R,
	21866: charmap.KOI8U,
	28591: charmap.ISO8859_1,
	28592: charmap.ISO8859_2,
	28595: charmap.ISO8859_5,
	28597: charmap.ISO8859_7,
	28605: charmap.ISO8859_15,
}

// \fcharset values and the codepage each one implies.
var charsets = map[int]int{
	0:   1252, // ANSI
	77:  10000,
	128: 932,
	129: 949,
	134: 936,
	136: 950,
	161: 1253,
	162: 1254,
	163: 1258,
	177: 1255,
	178: 1256,
	179: 1256,
	180: 1256,
	181: 1255,
	186: 1257,
	204: 1251,
	222: 874,
	238: 1250,
	254: 437,
	255: 437,
}

// CodepageForCharset returns the codepage implied by an \fcharset value.
// Symbol (2) and default (1) charsets report false so the caller keeps the
// document codepage.
func CodepageForCharset(cs int) (int, bool) {
	cp, ok := charsets[cs]
	return cp, ok
}

// Supported reports whether a decoder exists for codepage.
func Supported(codepage int) bool {
	_, ok := codepages[codepage]
	return ok
}

// Decode converts raw bytes in the given codepage to UTF-8.
// Unknown codepages fall back to Windows-1252.
func Decode(codepage int, raw []byte) (string, error) {
	enc, ok := codepages[codepage]
	if !ok {
		enc = charmap.Windows1252
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decoding codepage %d: %w", codepage, err)
	}
	return string(out), nil
}

// IsLeadByte reports whether b starts a two-byte sequence in a DBCS codepage.
func IsLeadByte(codepage int, b byte) bool {
	switch codepage {
	case 932:
		return (b >= 0x81 && b <= 0x9F) || (b >= 0xE0 && b <= 0xFC)
	case 936, 949, 950:
		return b >= 0x81 && b <= 0xFE
	default:
		return false
	}
}
