/*
Package scsu implements the Standard Compression Scheme for Unicode (SCSU).

SCSU (Unicode Technical Standard #6) encodes text as a byte stream in which
runs of characters from a small script are written one byte per character.
Each byte in the range 0x80..0xFF addresses a window of 128 code points. Eight
of these windows are dynamic and may be moved around by the encoder, eight
are static, and seven well-known "fixed" offsets allow a dynamic window to be
moved with a single position byte. Text which does not cluster, like CJK
ideographs, is written in Unicode mode as big-endian UTF-16 code units.

The package operates on UTF-16 code units, with surrogate pairs treated as one
code point:

	encoded, err := scsu.Encode(utf16.Encode([]rune("Ελληνικά")))
	units, err := scsu.Decode(encoded)

For Go strings use EncodeString and DecodeString. Both directions process one
complete input per call; the window state is private to the call, so the
package level functions are safe for concurrent use. Encoder and Decoder
values may be re-used to save allocations, but not concurrently.

Malformed input is never repaired. Every failure is reported as an *Error,
which may be matched against the sentinel errors of this package with
errors.Is.

Further Reading

	https://www.unicode.org/reports/tr6/
	https://www.unicode.org/reports/tr6/SCSU.java   (reference implementation)

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package scsu

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'scsu'
func tracer() tracing.Trace {
	return tracing.Select("scsu")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
