/*
Package charset makes SCSU available as a golang.org/x/text encoding.

The SCSU encoder reads UTF-8 and writes SCSU, the decoder does the reverse:

	compressed, err := charset.SCSU.NewEncoder().String("Ελληνικά")
	text, err := charset.SCSU.NewDecoder().Bytes(compressed)

Window state of SCSU spans the whole text, therefore the transformers buffer
their input until the end of the stream and convert it in one go. They may be
used with transform.NewReader and transform.NewWriter as usual, but produce no
output before the input is complete.

The package also keeps a small registry of character sets by name, which
holds SCSU together with the UTF-16 and legacy single-byte encodings of
golang.org/x/text.
*/
package charset

import (
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/npillmayer/scsu"
)

// tracer writes to trace with key 'scsu.charset'
func tracer() tracing.Trace {
	return tracing.Select("scsu.charset")
}

// Name is the IANA name of SCSU.
const Name = "SCSU"

// Aliases are alternative names of SCSU, the IANA alias first.
var Aliases = []string{"csSCSU", "x-scsu"}

// SCSU is the Standard Compression Scheme for Unicode.
var SCSU encoding.Encoding = scsuEncoding{}

type scsuEncoding struct{}

func (scsuEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: &wholeInput{convert: decode}}
}

func (scsuEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: &wholeInput{convert: encode}}
}

func (scsuEncoding) String() string {
	return Name
}

func encode(in []byte) ([]byte, error) {
	if !utf8.Valid(in) {
		tracer().Errorf("input to SCSU encoder is not valid UTF-8")
		return nil, encoding.ErrInvalidUTF8
	}
	return scsu.EncodeString(string(in))
}

func decode(in []byte) ([]byte, error) {
	s, err := scsu.DecodeString(in)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// wholeInput is a transformer which collects all of its input and converts
// it once the end of the stream is reached.
type wholeInput struct {
	convert func([]byte) ([]byte, error)
	in      []byte
	out     []byte // converted but not yet delivered
	done    bool
}

var _ transform.Transformer = (*wholeInput)(nil)

// Transform implements transform.Transformer
func (w *wholeInput) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if !w.done {
		w.in = append(w.in, src...)
		nSrc = len(src)
		if !atEOF {
			return 0, nSrc, nil
		}
		if w.out, err = w.convert(w.in); err != nil {
			return 0, nSrc, err
		}
		tracer().Debugf("converted %d bytes to %d bytes", len(w.in), len(w.out))
		w.done = true
	}
	nDst = copy(dst, w.out)
	w.out = w.out[nDst:]
	if len(w.out) > 0 {
		return nDst, nSrc, transform.ErrShortDst
	}
	return nDst, nSrc, nil
}

// Reset implements transform.Transformer
func (w *wholeInput) Reset() {
	w.in = w.in[:0]
	w.out = nil
	w.done = false
}
