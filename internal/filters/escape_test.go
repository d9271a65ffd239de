package filters

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
)

// TestEscapeHighBytesHex checks that escapes are base 16, not base 10
func TestEscapeHighBytesHex(t *testing.T) {
	got := EscapeHighBytes([]byte{0x41, 0x80})
	want := `A\'80`
	if got != want {
		t.Errorf("EscapeHighBytes() = %q, want %q", got, want)
	}
}

func TestEscapeHighBytes(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"empty", nil, ""},
		{"ascii", []byte(`{\rtf1 Hello}`), `{\rtf1 Hello}`},
		{"del is ascii", []byte{0x7F}, "\x7f"},
		{"lowest high byte", []byte{0x80}, `\'80`},
		{"highest byte", []byte{0xFF}, `\'ff`},
		{"latin-1 e acute", []byte("caf\xe9"), `caf\'e9`},
		{"utf-8 bytes escaped individually", []byte("é"), `\'c3\'a9`},
		{"0xab lowercase", []byte{0xAB}, `\'ab`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeHighBytes(tt.in); got != tt.want {
				t.Errorf("EscapeHighBytes() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestEscapeAllBytes runs every byte value through the escaper
func TestEscapeAllBytes(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}

	out := EscapeHighBytes(all)

	if !strings.HasPrefix(out, string(all[:128])) {
		t.Error("ASCII prefix was not copied unchanged")
	}

	escapes := regexp.MustCompile(`\\'([0-9a-f]{2})`).FindAllStringSubmatch(out[128:], -1)
	if len(escapes) != 128 {
		t.Fatalf("found %d escapes, want 128", len(escapes))
	}
	for i, m := range escapes {
		v, err := DecodeHexPair(m[1][0], m[1][1])
		if err != nil {
			t.Fatalf("escape %q: %v", m[0], err)
		}
		if int(v) != 128+i {
			t.Errorf("escape %d = %#x, want %#x", i, v, 128+i)
		}
	}

	if n := CountEscapes(out); n != 128 {
		t.Errorf("CountEscapes() = %d, want 128", n)
	}
	if !bytes.Equal(UnescapeHighBytes(out), all) {
		t.Error("round trip over all byte values failed")
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte("plain ascii"),
		[]byte("\x80\x81\xfe\xff"),
		[]byte("{\\rtf1\\ansi \xe9t\xe9}"),
		[]byte(`\'`),
		[]byte{'\\', '\'', 0xC3},
		[]byte("日本語"),
	}

	for _, in := range inputs {
		escaped := EscapeHighBytes(in)
		if len(escaped) < len(in) {
			t.Errorf("escaped %q shorter than input", in)
		}
		if n, want := CountEscapes(escaped), CountHighBytes(in); n != want {
			t.Errorf("CountEscapes(%q) = %d, want %d", escaped, n, want)
		}
		if got := UnescapeHighBytes(escaped); !bytes.Equal(got, in) {
			t.Errorf("UnescapeHighBytes(%q) = %q, want %q", escaped, got, in)
		}
	}
}

func TestUnescapeKeepsASCIIEscapes(t *testing.T) {
	in := `\'41\'e9\'zz\'`
	want := []byte("\\'41\xe9\\'zz\\'")
	if got := UnescapeHighBytes(in); !bytes.Equal(got, want) {
		t.Errorf("UnescapeHighBytes(%q) = %q, want %q", in, got, want)
	}
}

func TestDecodeHexPair(t *testing.T) {
	tests := []struct {
		hi, lo  byte
		want    byte
		wantErr bool
	}{
		{'0', '0', 0x00, false},
		{'8', '0', 0x80, false},
		{'f', 'f', 0xFF, false},
		{'F', 'F', 0xFF, false},
		{'a', 'B', 0xAB, false},
		{'g', '0', 0, true},
		{'0', ' ', 0, true},
	}

	for _, tt := range tests {
		got, err := DecodeHexPair(tt.hi, tt.lo)
		if (err != nil) != tt.wantErr {
			t.Errorf("DecodeHexPair(%c, %c) error = %v, wantErr %v", tt.hi, tt.lo, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("DecodeHexPair(%c, %c) = %#x, want %#x", tt.hi, tt.lo, got, tt.want)
		}
	}
}
