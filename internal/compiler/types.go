package compiler

import (
	"github.com/dave/jennifer/jen"
)

// TypeKind discriminates the internal type model.
type TypeKind int

const (
	KindScalar TypeKind = iota
	KindEnum
	KindUnion
	KindInterface
	KindObject
	KindRef
	KindList
	KindNullable
)

// GoType names a concrete Go type a scalar leaf maps to. Path is empty for
// predeclared types.
type GoType struct {
	Path string
	Name string
	Ptr  bool
}

// Type is the compiler's internal type model. Named kinds carry the GraphQL
// type name; scalar leaves with a fixed binding carry Go instead. Ref, List
// and Nullable wrap Elem. Ref only ever appears directly inside a List or
// Nullable produced by the as-ref transform.
type Type struct {
	Kind TypeKind
	Name string
	Go   *GoType
	Elem *Type
}

func (t *Type) IsNullable() bool { return t.Kind == KindNullable }

// SupportsAsRef reports whether the as-ref ownership transform is legal for
// this shape. Only container shapes qualify; borrowing a bare named value is
// not supported by the emission templates.
func (t *Type) SupportsAsRef() bool {
	return t.Kind == KindList || t.Kind == KindNullable
}

// Innermost strips Ref, List and Nullable wrappers down to the underlying
// named-type classification.
func (t *Type) Innermost() *Type {
	switch t.Kind {
	case KindRef, KindList, KindNullable:
		return t.Elem.Innermost()
	default:
		return t
	}
}

// IsComposite reports whether the innermost type resolves to an object,
// interface or union. Composite returns get a query-trail parameter; scalar
// and enum leaves do not.
func (t *Type) IsComposite() bool {
	switch t.Innermost().Kind {
	case KindObject, KindInterface, KindUnion:
		return true
	default:
		return false
	}
}

// RemoveOneNullable unwraps a single Nullable layer, if present. Arguments
// with a default value lose their outer nullability in the resolver contract.
func (t *Type) RemoveOneNullable() *Type {
	if t.Kind == KindNullable {
		return t.Elem
	}
	return t
}

// Code renders the type as the Go type expression of the binding ABI:
// Nullable becomes a pointer, List a slice, and Ref a pointer element inside
// its container. Nullable(Ref(T)) collapses to a single pointer, since one
// pointer already carries both optionality and sharing; nullable interface
// and union types collapse to the bare interface, since a nil interface
// already expresses absence.
func (t *Type) Code() jen.Code {
	switch t.Kind {
	case KindNullable:
		if t.Elem.Kind == KindRef {
			return jen.Op("*").Add(t.Elem.Elem.Code())
		}
		if t.Elem.Kind == KindInterface || t.Elem.Kind == KindUnion {
			return t.Elem.Code()
		}
		return jen.Op("*").Add(t.Elem.Code())
	case KindList:
		return jen.Index().Add(t.Elem.Code())
	case KindRef:
		return jen.Op("*").Add(t.Elem.Code())
	case KindScalar:
		if t.Go != nil {
			return t.Go.code()
		}
		return jen.Id(GoName(t.Name))
	case KindInterface:
		// The GraphQL name belongs to the implementor-facing Go interface;
		// object implementors keep their bare names.
		return jen.Id(GoName(t.Name) + "Interface")
	default:
		return jen.Id(GoName(t.Name))
	}
}

func (g *GoType) code() jen.Code {
	var s jen.Statement
	if g.Ptr {
		s.Op("*")
	}
	if g.Path == "" {
		s.Id(g.Name)
	} else {
		s.Qual(g.Path, g.Name)
	}
	return &s
}
