package csv

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// pgEncodings maps PostgreSQL client encoding names (upper-cased, without
// separators) to decoders. nil means the input is already UTF-8.
var pgEncodings = map[string]encoding.Encoding{
	"UTF8":      nil,
	"UNICODE":   nil,
	"SQLASCII":  nil,
	"LATIN1":    charmap.ISO8859_1,
	"LATIN2":    charmap.ISO8859_2,
	"LATIN9":    charmap.ISO8859_15,
	"WIN1250":   charmap.Windows1250,
	"WIN1251":   charmap.Windows1251,
	"WIN1252":   charmap.Windows1252,
	"WIN866":    charmap.CodePage866,
	"KOI8R":     charmap.KOI8R,
	"ISO885915": charmap.ISO8859_15,
}

// LookupEncoding resolves an encoding name. PostgreSQL names are tried first,
// then IANA, then WHATWG labels. A nil Encoding with a nil error means UTF-8.
func LookupEncoding(name string) (encoding.Encoding, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return nil, nil
	}
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToUpper(n))
	if enc, ok := pgEncodings[key]; ok {
		return enc, nil
	}
	if enc, err := ianaindex.IANA.Encoding(n); err == nil && enc != nil {
		return utf8OrNil(enc), nil
	}
	if enc, err := htmlindex.Get(n); err == nil {
		return utf8OrNil(enc), nil
	}
	return nil, fmt.Errorf("csv: unknown encoding %q", name)
}

func utf8OrNil(enc encoding.Encoding) encoding.Encoding {
	if enc == encoding.Nop {
		return nil
	}
	if name, err := ianaindex.IANA.Name(enc); err == nil && name == "UTF-8" {
		return nil
	}
	return enc
}

// NewDecoder wraps r so it yields UTF-8 text.
func NewDecoder(r io.Reader, name string) (io.Reader, error) {
	enc, err := LookupEncoding(name)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return r, nil
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
