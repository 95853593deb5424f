// Package pgident produces syntactically safe, canonical textual
// representations of PostgreSQL identifiers and dotted identifier paths
// such as schema.table.
//
// Identifiers that already satisfy the unquoted lexical rules render as
// their original text; anything else is wrapped in double quotes with
// embedded quotes doubled. The only unrepresentable input is one containing
// a NUL byte. The package never parses SQL or talks to a database; it only
// formats names that a caller embeds in SQL text.
package pgident
