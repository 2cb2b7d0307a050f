package view

import "iter"

// Debug and inspection tooling needs to visit a table without knowing its
// concrete type at the call site. Walker is that capability: a name plus
// an ordered sequence of named field values, where a value may itself be a
// Walker. Generated-style table types implement it next to their getters;
// consumers hold Walker references only.
//
// Walking is a diagnostic path, not a shaping path: implementations may
// allocate while enumerating fields.

// Walker is a table view that can enumerate itself.
type Walker interface {
	TableName() string      // the schema name of the table type
	Fields() iter.Seq[Field] // fields in declaration order
}

// Field is one (name, value) pair of a walked table. Value holds a
// scalar, an Option, an array view, or a nested Walker.
type Field struct {
	Name  string
	Value any
}

// FieldSeq builds a Fields sequence from a fixed list, for Walker
// implementations whose field set is known up front.
func FieldSeq(fields ...Field) iter.Seq[Field] {
	return func(yield func(Field) bool) {
		for _, f := range fields {
			if !yield(f) {
				return
			}
		}
	}
}
