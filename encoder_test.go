package scsu

import (
	"bytes"
	"errors"
	"testing"
	"unicode/utf16"
)

func units(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

func TestEncodeSingleByteMode(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []byte
	}{
		{"empty", "", nil},
		{"ascii", "Hello", []byte("Hello")},
		{"latin1", "AéB", []byte{0x41, 0xE9, 0x42}},
		{"nul and control", "a\x00b\x01c\td", []byte{0x61, 0x00, 0x62, 0x01, 0x01, 0x63, 0x09, 0x64}},
		{"select cyrillic", "Привет", []byte{0x12, 0x9F, 0xC0, 0xB8, 0xB2, 0xB5, 0xC2}},
		{"quote dynamic", "éЖé", []byte{0xE9, 0x03, 0x96, 0xE9}},
		{"quote static", "a…b", []byte{0x61, 0x05, 0x26, 0x62}},
		{"define fixed", "αβγ", []byte{0x1B, 0xFB, 0xC1, 0xC2, 0xC3}},
		{"reuse window", "αβ αβ", []byte{0x1B, 0xFB, 0xC1, 0xC2, 0x20, 0xC1, 0xC2}},
		{"switch windows", "αβ Жж αβ", []byte{0x1B, 0xFB, 0xC1, 0xC2, 0x20, 0x12, 0x96, 0xB6, 0x20, 0x13, 0xC1, 0xC2}},
		{"define extended", "𐐀𐐁", []byte{0x0B, 0x60, 0x08, 0x80, 0x81}},
		{"emoji", "😀😃", []byte{0x0B, 0x61, 0xEC, 0x80, 0x83}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeString(tt.text)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("encoding %q: expected % x, got % x", tt.text, tt.want, got)
			}
		})
	}
}

func TestEncodeUnicodeMode(t *testing.T) {
	tests := []struct {
		name string
		src  []uint16
		want []byte
	}{
		{
			"cjk run",
			[]uint16{0x4E00, 0x4E8C, 0x4E09, 0x56DB},
			[]byte{0x0F, 0x4E, 0x00, 0x4E, 0x8C, 0x4E, 0x09, 0x56, 0xDB},
		},
		{
			"single unit becomes SQU",
			units("a中bc"),
			[]byte{0x61, 0x0E, 0x4E, 0x2D, 0x62, 0x63},
		},
		{
			"trailing compressible stays in run",
			units("a中b"),
			[]byte{0x61, 0x0F, 0x4E, 0x2D, 0x00, 0x62},
		},
		{
			"back to ascii",
			units("一丁ab"),
			[]byte{0x0F, 0x4E, 0x00, 0x4E, 0x01, 0xE0, 0x61, 0x62},
		},
		{
			"define from unicode mode",
			units("一丁αβ"),
			[]byte{0x0F, 0x4E, 0x00, 0x4E, 0x01, 0xEB, 0xFB, 0xC1, 0xC2},
		},
		{
			"quote colliding unit",
			[]uint16{0x4E00, 0xE000, 0x4E01},
			[]byte{0x0F, 0x4E, 0x00, 0xF0, 0xE0, 0x00, 0x4E, 0x01},
		},
		{
			"hangul",
			units("한국어"),
			[]byte{0x0F, 0xD5, 0x5C, 0xAD, 0x6D, 0xC5, 0xB4},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.src)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("expected % x, got % x", tt.want, got)
			}
			back, err := Decode(got)
			if err != nil {
				t.Fatal(err)
			}
			if !equalUnits(back, tt.src) {
				t.Errorf("round trip failed: %x became %x", tt.src, back)
			}
		})
	}
}

func TestEncodeRotatesWindows(t *testing.T) {
	// Greek, Armenian, Hebrew, Thai, Georgian, Ethiopic: each needs a new window
	got, err := EncodeRunes([]rune{0x03B1, 0x0531, 0x05D0, 0x0E01, 0x10D0, 0x1200})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{
		0x1B, 0xFB, 0xC1,
		0x1C, 0xFC, 0x81,
		0x1D, 0x0B, 0xD0,
		0x1E, 0x1C, 0x81,
		0x1F, 0x21, 0xD0,
		0x18, 0x24, 0x80,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("expected % x, got % x", want, got)
	}
}

func TestEncodeExtendedDefineForWindowZero(t *testing.T) {
	// the sixth definition reaches window 0, which needs the extended form
	// for a supplementary character as well
	got, err := EncodeRunes([]rune{0x03B1, 0x0531, 0x05D0, 0x0E01, 0x10D0, 0x10400})
	if err != nil {
		t.Fatal(err)
	}
	if tail := got[len(got)-4:]; !bytes.Equal(tail, []byte{0x0B, 0x00, 0x08, 0x80}) {
		t.Errorf("expected SDX for window 0, got % x", tail)
	}
	s, err := DecodeString(got)
	if err != nil {
		t.Fatal(err)
	}
	if s != string([]rune{0x03B1, 0x0531, 0x05D0, 0x0E01, 0x10D0, 0x10400}) {
		t.Errorf("round trip failed, got %q", s)
	}
}

func TestEncodeSurrogateErrors(t *testing.T) {
	tests := []struct {
		name string
		src  []uint16
		kind Kind
		pos  int
	}{
		{"leading low", []uint16{0xDC00, 0x41}, KindUnpairedLowSurrogate, 0},
		{"low after ascii", []uint16{0x41, 0xDC00}, KindUnpairedLowSurrogate, 1},
		{"high at end", []uint16{0x41, 0x42, 0xD800}, KindUnpairedHighSurrogate, 2},
		{"high before ascii", []uint16{0xD800, 0x41}, KindUnpairedHighSurrogate, 0},
		{"two highs", []uint16{0xD800, 0xD800, 0xDC00}, KindUnpairedHighSurrogate, 0},
		{"low in unicode run", []uint16{0x4E00, 0xDC00}, KindUnpairedLowSurrogate, 1},
		{"high in unicode run", []uint16{0x4E00, 0x4E01, 0xD83D, 0x4E02}, KindUnpairedHighSurrogate, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Encode(tt.src)
			if err == nil {
				t.Fatalf("expected an error, got % x", out)
			}
			if out != nil {
				t.Errorf("expected no output on error")
			}
			var e *Error
			if !errors.As(err, &e) {
				t.Fatalf("expected *Error, got %T", err)
			}
			if e.Kind != tt.kind || e.Pos != tt.pos || e.Phase != PhaseEncode {
				t.Errorf("expected %s at %d, got %v", tt.kind, tt.pos, e)
			}
		})
	}
}

func TestEncodeSurrogatePairs(t *testing.T) {
	src := units("x😀y𐐀z")
	encoded, err := Encode(src)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Decode(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if !equalUnits(back, src) {
		t.Errorf("round trip failed: %x became %x", src, back)
	}
	// a pair in Unicode mode is written as a whole
	src = []uint16{0x4E00, 0xD83D, 0xDE00, 0x4E01}
	if encoded, err = Encode(src); err != nil {
		t.Fatal(err)
	}
	want := []byte{0x0F, 0x4E, 0x00, 0xD8, 0x3D, 0xDE, 0x00, 0x4E, 0x01}
	if !bytes.Equal(encoded, want) {
		t.Errorf("expected % x, got % x", want, encoded)
	}
}

func TestEncoderReuse(t *testing.T) {
	var e Encoder
	first, err := e.Encode(units("αβγ 中文字"), nil)
	if err != nil {
		t.Fatal(err)
	}
	second, err := e.Encode(units("αβγ 中文字"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("window state leaked between calls: % x vs % x", first, second)
	}
	dst := []byte("prefix:")
	out, err := e.Encode(units("Hi"), dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "prefix:Hi" {
		t.Errorf("expected output to be appended, got %q", out)
	}
}

func TestFindFirstEncodable(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"", -1},
		{"plain-file_name.txt", -1},
		{"tab\tnew\nline\r", -1},
		{"a\x00b", -1},
		{"bell\x07", 4},
		{"née", 1},
		{"\x0Fx", 0},
	}
	for _, tt := range tests {
		if got := FindFirstEncodable(tt.s); got != tt.want {
			t.Errorf("FindFirstEncodable(%q) = %d, expected %d", tt.s, got, tt.want)
		}
	}
}

func equalUnits(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
