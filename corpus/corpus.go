package corpus

import (
	"bufio"
	"io"
	"strings"
)

// Reader streams text samples from a sample file, one sample per line.
//
// Sample files are UTF-8 text in a TeX-like layout. Lines starting with % are
// comments, blank lines are skipped and \message{...} names the collection:
//
//	\message{Russian}
//	% pangrams
//	Съешь же ещё этих мягких французских булок, да выпей чаю.
//	\verbatim{
//	% this line is a sample
//	}
//
// Lines inside \verbatim{...} are samples as they are, including comment-like
// and empty lines.
type Reader struct {
	scanner    *bufio.Scanner
	identifier string
	inBlock    bool
}

// ReadAll parses a complete sample file and returns its name together with
// all samples.
func ReadAll(reader io.Reader) (string, []string, error) {
	r := NewReader(reader)
	var samples []string
	for {
		sample, err := r.Next()
		if err == io.EOF {
			return r.Identifier(), samples, nil
		}
		if err != nil {
			return r.Identifier(), samples, err
		}
		samples = append(samples, sample)
	}
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Identifier is the name given by \message{...}, if the reader has seen one.
func (r *Reader) Identifier() string {
	return r.identifier
}

// Next returns the next sample.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, error) {
	for r.scanner.Scan() {
		line := strings.TrimSuffix(r.scanner.Text(), "\r")
		if r.inBlock {
			if strings.HasPrefix(line, "}") {
				r.inBlock = false
				continue
			}
			return line, nil
		}
		if strings.HasPrefix(line, "\\message{") && strings.HasSuffix(line, "}") {
			r.identifier = line[9 : len(line)-1]
			continue
		}
		if strings.HasPrefix(line, "\\verbatim{") {
			r.inBlock = true
			continue
		}
		if strings.HasPrefix(line, "%") || strings.TrimSpace(line) == "" {
			continue
		}
		return line, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
