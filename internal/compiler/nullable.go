package compiler

import (
	language "github.com/hanpama/graphbind/internal/language"
)

// The parsed grammar marks non-null explicitly and leaves everything else
// nullable by default. NullableType inverts that polarity: nullability is the
// explicit wrapper, non-null is the bare shape. The inversion is total and
// one-way; nothing converts back to the grammar form.

type nullableKind int

const (
	nullableNamed nullableKind = iota
	nullableList
	nullableWrapped
)

type NullableType struct {
	Kind nullableKind
	Name string
	Elem *NullableType
}

func nullableTypeFromAST(t *language.Type) *NullableType {
	var n *NullableType
	if t.NamedType != "" {
		n = &NullableType{Kind: nullableNamed, Name: t.NamedType}
	} else {
		n = &NullableType{Kind: nullableList, Elem: nullableTypeFromAST(t.Elem)}
	}
	if !t.NonNull {
		n = &NullableType{Kind: nullableWrapped, Elem: n}
	}
	return n
}
