package pgident

import (
	"errors"
	"strings"
	"testing"

	"github.com/lib/pq"
)

func TestNewIdent_Bare(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"simple", "foo"},
		{"underscore_start", "_foo"},
		{"underscore_only", "_"},
		{"with_digits", "table1"},
		{"with_dollar", "tbl$partition"},
		{"snake_case", "my_table"},
		{"single_letter", "a"},
		{"unicode_lowercase", "tabletté"},
		{"max_length", strings.Repeat("a", 63)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NewIdent(tt.input)
			if err != nil {
				t.Fatalf("NewIdent(%q) returned error: %v", tt.input, err)
			}
			if id.Quoted() {
				t.Errorf("NewIdent(%q) took the quoting path, want bare", tt.input)
			}
			if got := id.String(); got != tt.input {
				t.Errorf("NewIdent(%q).String() = %q, want input unchanged", tt.input, got)
			}
		})
	}
}

func TestNewIdent_Quoted(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", `""`},
		{"upper_case", "FOO", `"FOO"`},
		{"mixed_case", "MyTable", `"MyTable"`},
		{"leading_digit", "1foo", `"1foo"`},
		{"leading_dollar", "$foo", `"$foo"`},
		{"with_space", "my table", `"my table"`},
		{"with_dot", "foo.bar", `"foo.bar"`},
		{"with_hyphen", "my-table", `"my-table"`},
		{"embedded_quotes", `The "table"`, `"The ""table"""`},
		{"only_quote", `"`, `""""`},
		{"too_long", strings.Repeat("a", 64), `"` + strings.Repeat("a", 64) + `"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NewIdent(tt.input)
			if err != nil {
				t.Fatalf("NewIdent(%q) returned error: %v", tt.input, err)
			}
			if !id.Quoted() {
				t.Errorf("NewIdent(%q) stayed bare, want quoted", tt.input)
			}
			if got := id.String(); got != tt.expected {
				t.Errorf("NewIdent(%q).String() = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewIdent_NullByte(t *testing.T) {
	inputs := []string{
		"\x00",
		"foo\x00bar",
		"FOO\x00",
		"\x00select",
	}

	for _, input := range inputs {
		if _, err := NewIdent(input); !errors.Is(err, ErrNullByte) {
			t.Errorf("NewIdent(%q) error = %v, want ErrNullByte", input, err)
		}
	}
}

// Every NUL-free input that takes the quoting path must render exactly like
// lib/pq's always-quote QuoteIdentifier.
func TestNewIdent_MatchesPqQuoting(t *testing.T) {
	inputs := []string{
		"",
		"FOO",
		"my table",
		`a"b"c`,
		"foo.bar",
		`"; DROP TABLE users; --`,
		"unicode: 中文",
		strings.Repeat("x", 100),
	}

	for _, input := range inputs {
		id, err := NewIdent(input)
		if err != nil {
			t.Fatalf("NewIdent(%q) returned error: %v", input, err)
		}
		if !id.Quoted() {
			t.Fatalf("NewIdent(%q) stayed bare, test expects quoting inputs", input)
		}
		if got, want := id.String(), pq.QuoteIdentifier(input); got != want {
			t.Errorf("NewIdent(%q).String() = %q, pq.QuoteIdentifier = %q", input, got, want)
		}
	}
}

func TestNewIdent_EscapesOnce(t *testing.T) {
	id, err := NewIdent(`a"b`)
	if err != nil {
		t.Fatal(err)
	}

	// Rendering is stable; escaping happened at construction only.
	first := id.String()
	second := id.String()
	if first != second {
		t.Errorf("rendering is not stable: %q then %q", first, second)
	}
	if first != `"a""b"` {
		t.Errorf("String() = %q, want %q", first, `"a""b"`)
	}
}

func TestNewIdent_NamedStringType(t *testing.T) {
	type tableName string

	bare, err := NewIdent(tableName("users"))
	if err != nil {
		t.Fatal(err)
	}
	if bare.Quoted() || bare.String() != "users" {
		t.Errorf("NewIdent(tableName) = %q quoted=%v, want bare users", bare.String(), bare.Quoted())
	}

	quoted, err := NewIdent(tableName("Users"))
	if err != nil {
		t.Fatal(err)
	}
	if !quoted.Quoted() || quoted.String() != `"Users"` {
		t.Errorf("NewIdent(tableName) = %q quoted=%v, want quoted", quoted.String(), quoted.Quoted())
	}
}

func TestIsBareCompatible_Boundaries(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"one_byte", "a", true},
		{"sixty_three_bytes", strings.Repeat("a", 63), true},
		{"sixty_four_bytes", strings.Repeat("a", 64), false},
		{"empty", "", false},
		{"multibyte_counts_bytes", strings.Repeat("é", 32), false}, // 64 bytes in UTF-8
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isBareCompatible(tt.input); got != tt.expected {
				t.Errorf("isBareCompatible(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
