package compiler

import (
	"fmt"
	"go/parser"

	"github.com/dave/jennifer/jen"

	language "github.com/hanpama/graphbind/internal/language"
)

const scalarPkgPath = "github.com/hanpama/graphbind/scalar"

// FieldArg is one compiled resolver argument. Wire is the type as declared in
// the schema; Type is the type the resolver method receives. They differ only
// when a non-null default value strips the outer nullability, in which case
// Default holds the rebinding expression.
type FieldArg struct {
	Name        string
	Description string
	Wire        *Type
	Type        *Type
	Default     jen.Code
}

// Field is one compiled field of an object, interface or subscription root.
type Field struct {
	Name        string
	Description string
	Type        *Type
	Args        []FieldArg
	Directives  FieldDirectives
}

func (f *Field) MethodName() string { return FieldMethodName(f.Name) }

// compileField maps one field definition through directive parsing, the type
// mapper and the ownership transform. It always returns a Field; unresolvable
// pieces leave nil types behind and the checkpoint stops generation before
// anyone reads them.
func (c *compilation) compileField(node *language.FieldDefinition, loc FieldLocation) Field {
	dirs := c.parseFieldDirectives(node.Directives, loc)
	c.validateDirectivesForLocation(&dirs, node, loc)

	retType := c.mapNullable(nullableTypeFromAST(node.Type), node.Position)
	if retType != nil && dirs.Ownership == OwnershipAsRef {
		if retType.SupportsAsRef() {
			retType = asRefType(retType)
		} else {
			c.bag.add(node.Position, ErrAsRefOwnershipForNamedType, fmt.Sprintf("field `%s`", node.Name))
		}
	}

	args := make([]FieldArg, 0, len(node.Arguments))
	for _, arg := range node.Arguments {
		args = append(args, c.compileArg(arg))
	}

	return Field{
		Name:        node.Name,
		Description: node.Description,
		Type:        retType,
		Args:        args,
		Directives:  dirs,
	}
}

func (c *compilation) compileArg(node *language.ArgumentDefinition) FieldArg {
	typ := c.mapNullable(nullableTypeFromAST(node.Type), node.Position)
	arg := FieldArg{
		Name:        node.Name,
		Description: node.Description,
		Wire:        typ,
		Type:        typ,
	}
	if node.DefaultValue == nil || typ == nil {
		return arg
	}
	if !typ.IsNullable() {
		c.bag.add(node.Position, ErrNonnullableFieldWithDefaultValue, fmt.Sprintf("`%s`", node.Name))
		return arg
	}
	// A `null` default adds nothing over the absent-argument behavior, so
	// the contract keeps the nullable type.
	if node.DefaultValue.Kind == language.NullValue {
		return arg
	}
	contract := typ.RemoveOneNullable()
	def := c.literalExpr(node.DefaultValue, contract)
	if def == nil {
		return arg
	}
	arg.Type = contract
	arg.Default = def
	return arg
}

// asRefType pushes a Ref layer under the outer container, so list and
// nullable returns can hand out pointers into resolver-owned data.
func asRefType(t *Type) *Type {
	return &Type{Kind: t.Kind, Elem: &Type{Kind: KindRef, Elem: t.Elem}}
}

func (c *compilation) validateDirectivesForLocation(dirs *FieldDirectives, node *language.FieldDefinition, loc FieldLocation) {
	switch loc {
	case FieldLocationObject, FieldLocationInterface:
		if dirs.StreamType != nil {
			c.bag.add(node.Position, ErrStreamTypeNotSupportedHere, fmt.Sprintf("field `%s`", node.Name))
			dirs.StreamType = nil
		}
		if dirs.StreamItemInfallible != nil {
			c.bag.add(node.Position, ErrStreamItemInfallibleNotSupportedHere, fmt.Sprintf("field `%s`", node.Name))
			dirs.StreamItemInfallible = nil
		}
	case FieldLocationSubscription:
		if dirs.Ownership != OwnershipOwned {
			c.bag.add(node.Position, ErrSubscriptionFieldMustBeOwned, fmt.Sprintf("field `%s`", node.Name))
			dirs.Ownership = OwnershipOwned
		}
		if dirs.StreamType != nil {
			if _, err := parser.ParseExpr(*dirs.StreamType); err != nil {
				c.bag.add(node.Position, ErrInvalidStreamReturnType, fmt.Sprintf("%q", *dirs.StreamType))
				dirs.StreamType = nil
			}
		}
	}
}

// mapNullable converts the polarity-inverted grammar type into the internal
// model, resolving named types against the symbol table.
func (c *compilation) mapNullable(n *NullableType, pos *language.Position) *Type {
	switch n.Kind {
	case nullableWrapped:
		elem := c.mapNullable(n.Elem, pos)
		if elem == nil {
			return nil
		}
		return &Type{Kind: KindNullable, Elem: elem}
	case nullableList:
		elem := c.mapNullable(n.Elem, pos)
		if elem == nil {
			return nil
		}
		return &Type{Kind: KindList, Elem: elem}
	default:
		return c.mapNamed(n.Name, pos)
	}
}

// mapNamed resolves a named type reference. Built-in and reserved scalars get
// their fixed Go bindings here; reserved scalars additionally require a prior
// declaration in the document. A missing declaration is a diagnostic, but the
// concrete binding is returned anyway so downstream emission stays well-typed.
func (c *compilation) mapNamed(name string, pos *language.Position) *Type {
	switch name {
	case "String":
		return &Type{Kind: KindScalar, Name: name, Go: &GoType{Name: "string"}}
	case "Int":
		return &Type{Kind: KindScalar, Name: name, Go: &GoType{Name: "int32"}}
	case "Float":
		return &Type{Kind: KindScalar, Name: name, Go: &GoType{Name: "float64"}}
	case "Boolean":
		return &Type{Kind: KindScalar, Name: name, Go: &GoType{Name: "bool"}}
	case "ID":
		return &Type{Kind: KindScalar, Name: name, Go: &GoType{Path: trailPkgPath, Name: "ID"}}
	case DateScalarName:
		if !c.astData.DateScalarDefined() {
			c.bag.add(pos, ErrDateScalarNotDefined, "")
		}
		return &Type{Kind: KindScalar, Name: name, Go: &GoType{Path: scalarPkgPath, Name: "Date"}}
	case DateTimeScalarName:
		kind := c.astData.DateTimeScalarDefinition()
		if kind == nil {
			c.bag.add(pos, ErrDateTimeScalarNotDefined, "")
		}
		if kind != nil && *kind == DateTimeWithoutTimeZone {
			return &Type{Kind: KindScalar, Name: name, Go: &GoType{Path: scalarPkgPath, Name: "NaiveDateTime"}}
		}
		return &Type{Kind: KindScalar, Name: name, Go: &GoType{Path: "time", Name: "Time"}}
	case UuidScalarName:
		if !c.astData.UuidScalarDefined() {
			c.bag.add(pos, ErrUuidScalarNotDefined, "")
		}
		return &Type{Kind: KindScalar, Name: name, Go: &GoType{Path: "github.com/google/uuid", Name: "UUID"}}
	case UrlScalarName:
		if !c.astData.UrlScalarDefined() {
			c.bag.add(pos, ErrUrlScalarNotDefined, "")
		}
		return &Type{Kind: KindScalar, Name: name, Go: &GoType{Path: "net/url", Name: "URL", Ptr: true}}
	}

	switch {
	case c.astData.IsScalar(name):
		return &Type{Kind: KindScalar, Name: name}
	case c.astData.IsEnum(name):
		return &Type{Kind: KindEnum, Name: name}
	case c.astData.IsUnion(name):
		return &Type{Kind: KindUnion, Name: name}
	case c.astData.IsInterface(name):
		return &Type{Kind: KindInterface, Name: name}
	default:
		// Unknown names fall back to object. The engine's own schema
		// validation is responsible for undefined-type errors.
		return &Type{Kind: KindObject, Name: name}
	}
}
