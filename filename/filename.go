/*
Package filename stores text compactly in file names.

A name is compressed with SCSU, optionally followed by a Huffman stage, and
the result is written with a file name safe Encoding. The first compressed
byte tells the decoder which stages were applied:

	0   SCSU
	1   SCSU, then huff0 with the table in front of the data

Names which Huffman coding would not shrink are stored with SCSU only.
*/
package filename

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/klauspost/compress/huff0"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/scsu"
)

// tracer writes to trace with key 'scsu.filename'
func tracer() tracing.Trace {
	return tracing.Select("scsu.filename")
}

const (
	stageSCSU    byte = 0
	stageHuffman byte = 1
)

var (
	// ErrCorrupted is returned if a name cannot have been produced by Encode.
	ErrCorrupted = errors.New("corrupted file name")
	// ErrInvalidUTF8 is returned by Encode for names which are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("name is not valid UTF-8")
)

// Options configures a Codec.
type Options struct {
	Encoding Encoding // defaults to Base32
	Huffman  bool     // try to shrink the SCSU output further
}

// Codec translates between text and encoded file names.
// A Codec is safe for concurrent use.
type Codec struct {
	enc     Encoding
	huffman bool
}

// New creates a Codec.
func New(opts Options) *Codec {
	c := &Codec{enc: opts.Encoding, huffman: opts.Huffman}
	if c.enc == nil {
		c.enc = Base32
	}
	return c
}

// Encode compresses name. It fails only for names which are not valid UTF-8.
func (c *Codec) Encode(name string) (string, error) {
	if !utf8.ValidString(name) {
		return "", ErrInvalidUTF8
	}
	var e scsu.Encoder
	compressed, err := e.Encode(utf16.Encode([]rune(name)), []byte{stageSCSU})
	if err != nil {
		return "", err
	}
	if c.huffman {
		compressed = shrink(compressed)
	}
	return c.enc.EncodeToString(compressed), nil
}

// shrink applies the Huffman stage to an SCSU stream with its stage byte in
// front. If this does not pay off, the input is returned.
func shrink(compressed []byte) []byte {
	out, _, err := huff0.Compress1X(compressed[1:], &huff0.Scratch{})
	switch {
	case errors.Is(err, huff0.ErrIncompressible), errors.Is(err, huff0.ErrUseRLE), errors.Is(err, huff0.ErrTooBig):
		tracer().Debugf("huffman stage skipped: %v", err)
		return compressed
	case err != nil:
		tracer().Errorf("huffman stage failed: %v", err)
		return compressed
	case len(out)+1 >= len(compressed):
		return compressed
	}
	return append([]byte{stageHuffman}, out...)
}

// Decode restores a name produced by Encode of a Codec with the same
// Encoding. The Huffman option does not matter for decoding.
func (c *Codec) Decode(encoded string) (string, error) {
	data, err := c.enc.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCorrupted, err)
	}
	if len(data) == 0 {
		return "", ErrCorrupted
	}
	switch data[0] {
	case stageSCSU:
		data = data[1:]
	case stageHuffman:
		s, remain, err := huff0.ReadTable(data[1:], nil)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrCorrupted, err)
		}
		// every symbol takes at least one bit
		dst := make([]byte, 0, 8*len(remain))
		if data, err = s.Decoder().Decompress1X(dst, remain); err != nil {
			return "", fmt.Errorf("%w: %w", ErrCorrupted, err)
		}
	default:
		return "", fmt.Errorf("%w: unknown stage %d", ErrCorrupted, data[0])
	}
	return scsu.DecodeString(data)
}
