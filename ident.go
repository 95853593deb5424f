package pgident

import (
	"strings"
	"unicode"
)

// maxIdentBytes is the PostgreSQL default identifier limit, NAMEDATALEN-1.
// The server accepts longer names in commands but truncates them, so longer
// inputs are routed to the quoting path here.
const maxIdentBytes = 63

// StringView is satisfied by any type whose underlying representation is a
// read-only string. It lets Ident and Name carry named string types without
// forcing a copy on the bare path.
type StringView interface {
	~string
}

// Ident is a single PostgreSQL identifier after safety classification.
// It has exactly two variants: bare, holding the original input unchanged,
// and quoted, holding the input with every embedded double quote doubled.
// Values are immutable once constructed; build them with NewIdent.
type Ident[T StringView] struct {
	raw     T
	escaped string
	quoted  bool
}

// NewIdent classifies raw and returns it as an identifier.
//
// Inputs that satisfy the unquoted identifier lexical rules stay bare, with
// no allocation. Everything else takes the quoting path: empty or over-long
// inputs, upper-case letters, characters outside the allowed set. None of
// those are errors; quoting is the remedy. The single failure mode is an
// input containing a NUL byte, which yields ErrNullByte.
func NewIdent[T StringView](raw T) (Ident[T], error) {
	s := string(raw)
	if isBareCompatible(s) {
		return Ident[T]{raw: raw}, nil
	}
	if strings.IndexByte(s, 0) >= 0 {
		return Ident[T]{}, ErrNullByte
	}
	return Ident[T]{
		escaped: strings.ReplaceAll(s, `"`, `""`),
		quoted:  true,
	}, nil
}

// Quoted reports whether the identifier took the quoting path.
func (id Ident[T]) Quoted() bool {
	return id.quoted
}

// String renders the canonical SQL form: the original text for a bare
// identifier, the escaped text wrapped in double quotes for a quoted one.
// Escaping happened once at construction and is never re-applied.
func (id Ident[T]) String() string {
	if id.quoted {
		return `"` + id.escaped + `"`
	}
	return string(id.raw)
}

// isBareCompatible reports whether s can appear in SQL text without quoting.
//
// Rules from https://www.postgresql.org/docs/16/sql-syntax-lexical.html#SQL-SYNTAX-IDENTIFIERS:
// an identifier begins with a letter or underscore and continues with
// letters, digits, underscores or dollar signs. Unquoted identifiers fold
// to lower case, so only lower-case letters qualify (any script, not just
// a-z). The byte length must be between 1 and NAMEDATALEN-1.
func isBareCompatible(s string) bool {
	if len(s) == 0 || len(s) > maxIdentBytes {
		return false
	}
	for i, c := range s {
		if i == 0 {
			if !unicode.IsLower(c) && c != '_' {
				return false
			}
			continue
		}
		if !unicode.IsLower(c) && !unicode.IsNumber(c) && c != '_' && c != '$' {
			return false
		}
	}
	return true
}
