package filters

import (
	"fmt"
	"strings"
)

// EscapeMarker introduces a hex byte escape.
const EscapeMarker = `\'`

const hexDigits = "0123456789abcdef"

// EscapeHighBytes returns data as text with every byte above 0x7F replaced
// by \'hh, where hh is the byte value in lowercase hexadecimal. ASCII bytes
// are copied unchanged and order is preserved.
func EscapeHighBytes(data []byte) string {
	var b strings.Builder
	b.Grow(len(data) + CountHighBytes(data)*3)

	for _, c := range data {
		if c <= 0x7F {
			b.WriteByte(c)
			continue
		}
		b.WriteString(EscapeMarker)
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0x0F])
	}

	return b.String()
}

// UnescapeHighBytes reverses EscapeHighBytes. Only escapes naming a byte
// above 0x7F are decoded; escapes of ASCII values were present in the
// original input and are kept verbatim. The result is exact unless the
// original input already contained a literal \'hh escape above 7f.
func UnescapeHighBytes(s string) []byte {
	out := make([]byte, 0, len(s))

	for i := 0; i < len(s); i++ {
		if v, ok := highEscapeAt(s, i); ok {
			out = append(out, v)
			i += len(EscapeMarker) + 1
			continue
		}
		out = append(out, s[i])
	}

	return out
}

// CountEscapes returns the number of high-byte escapes in s.
func CountEscapes(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if _, ok := highEscapeAt(s, i); ok {
			n++
			i += len(EscapeMarker) + 1
		}
	}
	return n
}

// CountHighBytes returns the number of bytes above 0x7F in data.
func CountHighBytes(data []byte) int {
	n := 0
	for _, c := range data {
		if c > 0x7F {
			n++
		}
	}
	return n
}

// highEscapeAt reports whether s[i:] starts with an escape of a byte above 0x7F.
func highEscapeAt(s string, i int) (byte, bool) {
	if i+len(EscapeMarker)+2 > len(s) || s[i:i+len(EscapeMarker)] != EscapeMarker {
		return 0, false
	}
	j := i + len(EscapeMarker)
	v, err := DecodeHexPair(s[j], s[j+1])
	if err != nil || v <= 0x7F {
		return 0, false
	}
	return v, true
}

// DecodeHexPair combines two hex digits into one byte.
func DecodeHexPair(hi, lo byte) (byte, error) {
	b1, err := hexDigitToByte(hi)
	if err != nil {
		return 0, err
	}
	b2, err := hexDigitToByte(lo)
	if err != nil {
		return 0, err
	}
	return b1<<4 | b2, nil
}

// hexDigitToByte converts a hex digit character to its value.
func hexDigitToByte(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	default:
		return 0, fmt.Errorf("invalid hex digit: %q", c)
	}
}
