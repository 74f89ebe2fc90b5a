package ddl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// TextType is the fallback storage type for unknown or inferred-text columns.
const TextType = "TEXT"

// ErrInvalidSize marks a size/precision spec that could not be applied. It is
// never fatal: the column keeps its type without a modifier.
var ErrInvalidSize = errors.New("invalid size")

// vocabulary maps upper-cased declared type tokens, as they appear in data
// dictionaries (Portuguese and SQL spellings), to PostgreSQL storage types.
// Extend it by adding entries; Resolve has no per-token branching.
var vocabulary = map[string]string{
	"TIPO":      "TEXT",
	"TEXTO":     "TEXT",
	"TEXT":      "TEXT",
	"VARCHAR":   "VARCHAR",
	"CHAR":      "CHAR",
	"NUM":       "INTEGER",
	"INTEIRO":   "INTEGER",
	"INTEGER":   "INTEGER",
	"BIGINT":    "BIGINT",
	"NUMÉRICO":  "NUMERIC",
	"NUMERICO":  "NUMERIC",
	"NUMERIC":   "NUMERIC",
	"DECIMAL":   "DECIMAL",
	"FLOAT":     "REAL",
	"REAL":      "REAL",
	"DUPLO":     "DOUBLE PRECISION",
	"DATA":      "DATE",
	"DATE":      "DATE",
	"TIMESTAMP": "TIMESTAMP",
	"BOOLEAN":   "BOOLEAN",
	"LOGICO":    "BOOLEAN",
	"LÓGICO":    "BOOLEAN",
}

// Lookup returns the storage type registered for a declared token. Matching
// is case-insensitive and ignores surrounding whitespace.
func Lookup(declared string) (string, bool) {
	t, ok := vocabulary[strings.ToUpper(strings.TrimSpace(declared))]
	return t, ok
}

// Resolved is the outcome of Resolve.
type Resolved struct {
	// StorageType is the target type without modifier.
	StorageType string
	// Size is the parsed modifier, nil when absent or dropped.
	Size *Size
	// Fallback is true when the declared token was not in the vocabulary and
	// StorageType defaulted to TEXT.
	Fallback bool
	// SizeErr explains why a present size spec was dropped (wraps
	// ErrInvalidSize), nil otherwise.
	SizeErr error
}

// SQLType returns StorageType with its modifier, e.g. "NUMERIC(10, 2)".
func (r Resolved) SQLType() string {
	return r.StorageType + r.Size.Suffix()
}

// Resolve maps a declared type token plus an optional size spec onto a
// storage type. It never fails: unknown tokens fall back to TEXT, and a size
// spec that does not fit the resolved type is dropped with SizeErr set.
//
// Size rules (applied only when sizeSpec is non-blank):
//   - character types take one integer N > 0: "(N)"
//   - NUMERIC/DECIMAL take "p" or "p,s" (parentheses tolerated) with p > 0
//     and s >= 0: "(p)" or "(p, s)"
//   - all other types ignore sizeSpec
func Resolve(declared, sizeSpec string) Resolved {
	storage, ok := Lookup(declared)
	res := Resolved{StorageType: storage}
	if !ok {
		res.StorageType = TextType
		res.Fallback = true
	}

	spec := strings.TrimSpace(sizeSpec)
	if spec == "" {
		return res
	}

	switch {
	case isCharType(res.StorageType):
		res.Size, res.SizeErr = parseLength(spec, res.StorageType)
	case isNumericType(res.StorageType):
		res.Size, res.SizeErr = parsePrecision(spec, res.StorageType)
	}
	return res
}

func parseLength(spec, storage string) (*Size, error) {
	n, err := strconv.Atoi(spec)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not an integer length for %s", ErrInvalidSize, spec, storage)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: length %d for %s must be > 0", ErrInvalidSize, n, storage)
	}
	return &Size{Precision: n}, nil
}

func parsePrecision(spec, storage string) (*Size, error) {
	s := strings.TrimSpace(strings.NewReplacer("(", "", ")", "").Replace(spec))
	if s == "" {
		return nil, fmt.Errorf("%w: %q has no precision for %s", ErrInvalidSize, spec, storage)
	}

	parts := strings.Split(s, ",")
	switch len(parts) {
	case 1:
		p, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a valid precision for %s", ErrInvalidSize, spec, storage)
		}
		if p <= 0 {
			return nil, fmt.Errorf("%w: precision %d for %s must be > 0", ErrInvalidSize, p, storage)
		}
		return &Size{Precision: p}, nil
	case 2:
		p, perr := strconv.Atoi(strings.TrimSpace(parts[0]))
		sc, serr := strconv.Atoi(strings.TrimSpace(parts[1]))
		if perr != nil || serr != nil {
			return nil, fmt.Errorf("%w: %q is not a valid precision,scale for %s", ErrInvalidSize, spec, storage)
		}
		if p <= 0 || sc < 0 {
			return nil, fmt.Errorf("%w: precision %d / scale %d for %s out of range", ErrInvalidSize, p, sc, storage)
		}
		return &Size{Precision: p, Scale: sc, HasScale: true}, nil
	default:
		return nil, fmt.Errorf("%w: %q is not of the form \"p\" or \"p,s\" for %s", ErrInvalidSize, spec, storage)
	}
}

// Inferred type kinds produced by sampling data values.
const (
	KindInteger = "integer"
	KindReal    = "real"
	KindBoolean = "boolean"
	KindText    = "text"
)

// FromInferred maps a sampled-data kind onto a storage type. Floats become
// NUMERIC so no precision is lost on load.
func FromInferred(kind string) string {
	switch kind {
	case KindInteger:
		return "INTEGER"
	case KindReal:
		return "NUMERIC"
	case KindBoolean:
		return "BOOLEAN"
	default:
		return TextType
	}
}
