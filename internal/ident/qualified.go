package ident

import "strings"

// SplitQualified splits a possibly schema-qualified name on the dots that sit
// outside double quotes. A segment that starts with a double quote is taken
// verbatim up to its closing quote, with "" read as one quote, so
//
//	SplitQualified(`"Censo"."Cursos"`) // ["Censo" "Cursos"]
//	SplitQualified(`censo.cursos`)     // ["censo" "cursos"]
//	SplitQualified(`"a.b".c`)          // ["a.b" "c"]
//
// Unquoted segments are trimmed and keep their case. Empty segments are
// dropped.
func SplitQualified(name string) []string {
	var (
		parts    []string
		sb       strings.Builder
		quoted   bool
		inQuotes bool
	)
	flush := func() {
		seg := sb.String()
		if !quoted {
			seg = strings.TrimSpace(seg)
		}
		if seg != "" {
			parts = append(parts, seg)
		}
		sb.Reset()
		quoted = false
	}

	s := strings.TrimSpace(name)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inQuotes && c == '"':
			if i+1 < len(s) && s[i+1] == '"' {
				sb.WriteByte('"')
				i++
				continue
			}
			inQuotes = false
		case inQuotes:
			sb.WriteByte(c)
		case c == '.':
			flush()
		case c == ' ' || c == '\t':
			// Space after a closing quote or before any text is not part
			// of the name.
			if !quoted && sb.Len() > 0 {
				sb.WriteByte(c)
			}
		case c == '"' && !quoted && sb.Len() == 0:
			inQuotes, quoted = true, true
		default:
			sb.WriteByte(c)
		}
	}
	flush()
	return parts
}
