package pgident

import "strings"

// Name is a reference path of one or more identifiers, rendered with dot
// separators. It has exactly three shapes: Single, Pair and Path. The set
// is closed; no other type implements the interface.
type Name[T StringView] interface {
	// Leaf returns the rightmost identifier, the one addressed by WithLeaf.
	Leaf() Ident[T]

	// WithLeaf validates raw and returns a new Name of the same shape with
	// every component except the leaf unchanged. The receiver is not
	// modified.
	WithLeaf(raw T) (Name[T], error)

	// String renders the canonical dotted form, no surrounding whitespace.
	String() string

	sealed()
}

// Single is a Name of one identifier.
type Single[T StringView] struct {
	Ident Ident[T]
}

// Pair is a two-part schema-qualified Name. Two-part references are the
// dominant case, so they keep direct field access rather than living in a
// two-element Path.
type Pair[T StringView] struct {
	Schema Ident[T]
	Table  Ident[T]
}

// Path is a Name of three or more identifiers in insertion order.
// Constructors never build a Path with fewer than three parts.
type Path[T StringView] struct {
	parts []Ident[T]
}

// NewName validates raw and wraps it as a single-identifier Name.
// It fails exactly when NewIdent fails.
func NewName[T StringView](raw T) (Name[T], error) {
	id, err := NewIdent(raw)
	if err != nil {
		return nil, err
	}
	return Single[T]{Ident: id}, nil
}

// NewPair validates schema then table, short-circuiting on the first
// failure, and returns the two-part Name.
func NewPair[T StringView](schema, table T) (Name[T], error) {
	s, err := NewIdent(schema)
	if err != nil {
		return nil, err
	}
	tbl, err := NewIdent(table)
	if err != nil {
		return nil, err
	}
	return Pair[T]{Schema: s, Table: tbl}, nil
}

// NewPath validates every part left to right, short-circuiting on the first
// failure, and returns a Name shaped by the part count: one part yields a
// Single, two a Pair, three or more a Path. Dots inside a part are opaque
// characters that force quoting, never separators. An empty part list fails
// with ErrEmptyName before any validation.
func NewPath[T StringView](parts ...T) (Name[T], error) {
	if len(parts) == 0 {
		return nil, ErrEmptyName
	}
	ids := make([]Ident[T], 0, len(parts))
	for _, p := range parts {
		id, err := NewIdent(p)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	switch len(ids) {
	case 1:
		return Single[T]{Ident: ids[0]}, nil
	case 2:
		return Pair[T]{Schema: ids[0], Table: ids[1]}, nil
	default:
		return Path[T]{parts: ids}, nil
	}
}

// Leaf returns the only identifier.
func (n Single[T]) Leaf() Ident[T] { return n.Ident }

// WithLeaf returns a Single holding the freshly validated identifier.
func (n Single[T]) WithLeaf(raw T) (Name[T], error) {
	id, err := NewIdent(raw)
	if err != nil {
		return nil, err
	}
	return Single[T]{Ident: id}, nil
}

func (n Single[T]) String() string { return n.Ident.String() }

func (Single[T]) sealed() {}

// Leaf returns the table identifier.
func (n Pair[T]) Leaf() Ident[T] { return n.Table }

// WithLeaf returns a Pair with the same schema and a new table identifier.
func (n Pair[T]) WithLeaf(raw T) (Name[T], error) {
	id, err := NewIdent(raw)
	if err != nil {
		return nil, err
	}
	return Pair[T]{Schema: n.Schema, Table: id}, nil
}

func (n Pair[T]) String() string {
	return n.Schema.String() + "." + n.Table.String()
}

func (Pair[T]) sealed() {}

// Leaf returns the last identifier in the path.
func (n Path[T]) Leaf() Ident[T] { return n.parts[len(n.parts)-1] }

// WithLeaf returns a Path sharing the unchanged prefix identifiers, copied
// into a fresh backing slice, with the new leaf appended.
func (n Path[T]) WithLeaf(raw T) (Name[T], error) {
	id, err := NewIdent(raw)
	if err != nil {
		return nil, err
	}
	parts := make([]Ident[T], len(n.parts))
	copy(parts, n.parts[:len(n.parts)-1])
	parts[len(parts)-1] = id
	return Path[T]{parts: parts}, nil
}

func (n Path[T]) String() string {
	rendered := make([]string, len(n.parts))
	for i, id := range n.parts {
		rendered[i] = id.String()
	}
	return strings.Join(rendered, ".")
}

func (Path[T]) sealed() {}
