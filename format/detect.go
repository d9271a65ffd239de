// Package format provides file format detection for the rtftext library.
package format

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// RTF indicates a Rich Text Format document.
	RTF
	// Text indicates plain text, the conversion output.
	Text
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case RTF:
		return "RTF"
	case Text:
		return "Text"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case RTF:
		return ".rtf"
	case Text:
		return ".txt"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".rtf":
		return RTF
	case ".txt", ".text":
		return Text
	default:
		return Unknown
	}
}

var (
	rtfMagic = []byte(`{\rtf`)
	utf8BOM  = []byte{0xEF, 0xBB, 0xBF}
)

// DetectFromMagic checks the leading bytes for the {\rtf signature. A UTF-8
// byte order mark and leading whitespace are skipped.
func DetectFromMagic(data []byte) Format {
	data = bytes.TrimPrefix(data, utf8BOM)
	data = bytes.TrimLeft(data, " \t\r\n")
	if bytes.HasPrefix(data, rtfMagic) {
		return RTF
	}
	return Unknown
}

// DetectFromReader reads the start of r to determine the format.
func DetectFromReader(r io.Reader) (Format, error) {
	magic := make([]byte, 512)
	n, err := io.ReadFull(r, magic)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}

// OutputPath returns the path of the plain text file written next to
// source: the same directory and base name with ext as the extension.
// Only an .rtf extension is replaced; any other name keeps its extension.
func OutputPath(source, ext string) string {
	dir := filepath.Dir(source)
	base := filepath.Base(source)
	if Detect(base) == RTF {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return filepath.Join(dir, base+ext)
}
