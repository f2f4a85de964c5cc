package charset

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnknown is returned by Lookup for names which are not registered.
var ErrUnknown = errors.New("unknown character set")

// Charset is a text encoding known by name.
type Charset struct {
	Name     string
	Aliases  []string
	Encoding encoding.Encoding
}

var charsets = map[string]*Charset{}

func init() {
	Register(&Charset{Name: Name, Aliases: Aliases, Encoding: SCSU})
	Register(&Charset{Name: "utf-8", Aliases: []string{"utf8"}, Encoding: unicode.UTF8})
	Register(&Charset{
		Name:     "utf-16be",
		Aliases:  []string{"utf16be"},
		Encoding: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	})
	Register(&Charset{
		Name:     "utf-16le",
		Aliases:  []string{"utf16le"},
		Encoding: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	})
	Register(&Charset{
		Name:     "utf-16",
		Aliases:  []string{"utf16"},
		Encoding: unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
	})
	Register(&Charset{Name: "iso-8859-1", Aliases: []string{"latin1", "l1"}, Encoding: charmap.ISO8859_1})
	Register(&Charset{Name: "windows-1252", Aliases: []string{"cp1252"}, Encoding: charmap.Windows1252})
	Register(&Charset{Name: "macintosh", Aliases: []string{"mac", "macroman"}, Encoding: charmap.Macintosh})
}

// Register makes a character set available under its name and aliases.
// Names are case-insensitive. Register is meant to be called from init
// functions and must not run concurrently with Lookup.
func Register(cs *Charset) {
	charsets[strings.ToLower(cs.Name)] = cs
	for _, alias := range cs.Aliases {
		charsets[strings.ToLower(alias)] = cs
	}
}

// Lookup finds a registered character set by name or alias.
func Lookup(name string) (*Charset, error) {
	if cs, ok := charsets[strings.ToLower(strings.TrimSpace(name))]; ok {
		return cs, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
}

// Names lists the primary names of all registered character sets.
func Names() []string {
	var names []string
	for _, cs := range charsets {
		if !slices.Contains(names, cs.Name) {
			names = append(names, cs.Name)
		}
	}
	slices.Sort(names)
	return names
}
