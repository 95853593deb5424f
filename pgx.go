package pgident

import "github.com/jackc/pgx/v5"

// FromIdentifier converts a pgx.Identifier into a Name, classifying each
// part instead of quoting unconditionally the way Identifier.Sanitize does.
// Shape follows the part count, and an empty identifier fails with
// ErrEmptyName. The conversion is one-way: a quoted Ident does not retain
// its raw text, so there is no mapping back to a pgx.Identifier.
func FromIdentifier(ident pgx.Identifier) (Name[string], error) {
	return NewPath([]string(ident)...)
}
