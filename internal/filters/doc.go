// Package filters provides byte-level encoders for RTF input.
//
// RTF carries non-ASCII content as explicit hex escapes rather than in a
// multi-byte encoding. Raw input is therefore viewed byte by byte and every
// byte above 0x7F is rewritten as the escape \'hh before tokenizing:
//
//	text := filters.EscapeHighBytes(data)
//
// The reverse direction is available for diagnostics:
//
//	data := filters.UnescapeHighBytes(text)
//
// # Hex Digits
//
// [DecodeHexPair] converts the two digits of an escape into the byte they
// name. Upper and lower case digits are both accepted.
package filters
