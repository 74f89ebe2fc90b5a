// Package ident turns free-form header and dictionary text into SQL
// identifiers. Every function here is pure: same input, same output.
package ident

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxLen is PostgreSQL's identifier limit (NAMEDATALEN-1) in bytes.
const MaxLen = 63

// Normalize converts raw text into a canonical lowercase identifier:
//
//  1. trim surrounding whitespace, replace interior whitespace runs with "_"
//  2. fold accents (NFD → drop nonspacing marks → NFC), so "Situação" keeps
//     its letters as "situacao"
//  3. drop every rune outside [A-Za-z0-9_]
//  4. collapse "_" runs and trim leading/trailing "_"
//  5. prefix "_" when the result starts with a digit
//  6. lowercase
//
// ok is false when nothing usable is left. The result always matches
// [a-z_][a-z0-9_]* and Normalize(Normalize(s)) == Normalize(s).
func Normalize(raw string) (name string, ok bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}

	folded, _, err := transform.String(foldAccents(), s)
	if err == nil {
		s = folded
	}

	var b strings.Builder
	b.Grow(len(s))
	prevUnderscore := true // suppresses a leading "_"
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevUnderscore = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
			prevUnderscore = false
		case r == '_' || unicode.IsSpace(r):
			if !prevUnderscore {
				b.WriteByte('_')
				prevUnderscore = true
			}
		default:
			// dropped
		}
	}

	name = strings.TrimRight(b.String(), "_")
	if name == "" {
		return "", false
	}
	if name[0] >= '0' && name[0] <= '9' {
		name = "_" + name
	}
	return name, true
}

// foldAccents returns a fresh transformer chain; transform.Chain values are
// stateful and must not be shared.
func foldAccents() transform.Transformer {
	return transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
}

// MatchKey is the loose comparison key used when mapping file headers onto
// existing table columns: only case and surrounding whitespace are ignored.
func MatchKey(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Truncate caps an identifier at MaxLen bytes by keeping the first 10 and the
// last 53 bytes, which keeps distinguishing suffixes ("_2024", "_uf") intact.
// The input is expected to be ASCII (a Normalize result).
func Truncate(name string) string {
	if len(name) <= MaxLen {
		return name
	}
	head, tail := name[:10], name[len(name)-(MaxLen-10):]
	if strings.HasSuffix(head, "_") && strings.HasPrefix(tail, "_") {
		tail = tail[1:]
	}
	return head + tail
}
