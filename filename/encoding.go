package filename

import (
	"encoding/base32"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/Max-Sum/base32768"
)

// Encoding turns compressed bytes into characters which are safe to use in
// file names.
type Encoding interface {
	EncodeToString(src []byte) string
	DecodeString(s string) ([]byte, error)
}

// ErrBadBase32 is returned for base32 input with padding.
var ErrBadBase32 = errors.New("bad base32 filename encoding")

// caseInsensitiveBase32 is base32 with the extended hex alphabet, lower case
// and without padding, so names survive case-insensitive file systems.
type caseInsensitiveBase32 struct{}

func (caseInsensitiveBase32) EncodeToString(src []byte) string {
	encoded := base32.HexEncoding.EncodeToString(src)
	encoded = strings.TrimRight(encoded, "=")
	return strings.ToLower(encoded)
}

func (caseInsensitiveBase32) DecodeString(s string) ([]byte, error) {
	if strings.HasSuffix(s, "=") {
		return nil, ErrBadBase32
	}
	roundUpToMultipleOf8 := (len(s) + 7) &^ 7
	equals := roundUpToMultipleOf8 - len(s)
	s = strings.ToUpper(s) + "========"[:equals]
	return base32.HexEncoding.DecodeString(s)
}

// Base32 is the default encoding. It is the longest, but works on any file
// system.
var Base32 Encoding = caseInsensitiveBase32{}

// Base64 is URL-safe base64 without padding. It needs a case-sensitive file
// system.
var Base64 Encoding = base64.RawURLEncoding

// Base32768 packs 15 bits into each character. Use it for storage which
// limits the number of characters rather than bytes of a name.
var Base32768 Encoding = base32768.SafeEncoding

// ParseEncoding selects an Encoding by name: base32, base64 or base32768.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(s) {
	case "", "base32":
		return Base32, nil
	case "base64":
		return Base64, nil
	case "base32768":
		return Base32768, nil
	}
	return nil, fmt.Errorf("unknown file name encoding %q", s)
}
