package scsu

import (
	"unicode/utf16"
	"unicode/utf8"
)

// EncodeString compresses a Go string. Invalid UTF-8 is replaced by
// U+FFFD, as in a conversion to []rune.
func EncodeString(s string) ([]byte, error) {
	return Encode(utf16.Encode([]rune(s)))
}

// EncodeRunes compresses a sequence of code points. Code points beyond the
// BMP are split into surrogate pairs first.
func EncodeRunes(r []rune) ([]byte, error) {
	return Encode(utf16.Encode(r))
}

// DecodeString expands SCSU to a Go string. Unpaired surrogates in the
// decoded code units, which SCSU does not forbid, become U+FFFD.
func DecodeString(b []byte) (string, error) {
	units, err := Decode(b)
	if err != nil {
		return "", err
	}
	return string(utf16.Decode(units)), nil
}

// FindFirstEncodable returns the index of the first byte of s which is not
// written unchanged by the encoder, or -1 if the encoded form of s equals s.
func FindFirstEncodable(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf || (s[i] != 0 && !isPassThrough(rune(s[i]))) {
			return i
		}
	}
	return -1
}
