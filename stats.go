package scsu

// event is something the decoder counts.
type event uint8

const (
	evQuote event = iota
	evSelect
	evDefine
	evDefineExtended
	evQuoteUnicode
	evSwitchUnicode
	evLiteral
	evUnicodeUnit
	numEvents
)

// Stats reports how an SCSU stream makes use of the scheme.
type Stats struct {
	Bytes           int // length of the encoded stream
	CodeUnits       int // length of the decoded text in UTF-16 code units
	Literals        int // single bytes representing a character by themselves
	Quotes          int // SQn
	Selects         int // SCn and UCn
	Defines         int // SDn and UDn
	ExtendedDefines int // SDX and UDX
	UnicodeSwitches int // SCU
	UnicodeQuotes   int // SQU and UQU
	UnicodeUnits    int // 2-byte units read in Unicode mode
}

// Ratio is the size of the encoded stream relative to UTF-16.
func (s Stats) Ratio() float64 {
	if s.CodeUnits == 0 {
		return 0
	}
	return float64(s.Bytes) / float64(2*s.CodeUnits)
}

// TagBytes is the number of bytes spent on tags, including window position
// arguments.
func (s Stats) TagBytes() int {
	return s.Quotes + s.Selects + 2*s.Defines + 3*s.ExtendedDefines +
		s.UnicodeSwitches + s.UnicodeQuotes
}

// Analyze decodes an SCSU stream and counts its tags.
func Analyze(encoded []byte) (Stats, error) {
	var d Decoder
	units, err := d.Decode(encoded, nil)
	if err != nil {
		return Stats{}, err
	}
	stats := Stats{
		Bytes:           len(encoded),
		CodeUnits:       len(units),
		Literals:        d.tally[evLiteral],
		Quotes:          d.tally[evQuote],
		Selects:         d.tally[evSelect],
		Defines:         d.tally[evDefine],
		ExtendedDefines: d.tally[evDefineExtended],
		UnicodeSwitches: d.tally[evSwitchUnicode],
		UnicodeQuotes:   d.tally[evQuoteUnicode],
		UnicodeUnits:    d.tally[evUnicodeUnit],
	}
	tracer().Infof("scsu stats bytes=%d units=%d ratio=%.2f", stats.Bytes, stats.CodeUnits, stats.Ratio())
	return stats, nil
}
