package compiler

import (
	"fmt"
	"strconv"

	"github.com/dave/jennifer/jen"

	language "github.com/hanpama/graphbind/internal/language"
)

const trailPkgPath = "github.com/hanpama/graphbind/trail"

// literalExpr translates a schema default-value literal into the Go
// expression that produces the same value at the internal type. A nil result
// means the literal could not be translated; a diagnostic has already been
// recorded and the caller drops the default.
func (c *compilation) literalExpr(v *language.Value, typ *Type) jen.Code {
	switch v.Kind {
	case language.Variable:
		c.bag.add(v.Position, ErrVariableDefaultValue, "$"+v.Raw)
		return nil
	case language.NullValue:
		return jen.Nil()
	case language.IntValue:
		n, err := strconv.ParseInt(v.Raw, 10, 32)
		if err != nil {
			c.bag.add(v.Position, ErrIntegerOutOfRange, v.Raw)
			return nil
		}
		return jen.Lit(int(n))
	case language.FloatValue:
		f, err := strconv.ParseFloat(v.Raw, 64)
		if err != nil {
			c.bag.add(v.Position, ErrFloatOutOfRange, v.Raw)
			return nil
		}
		return jen.Lit(f)
	case language.StringValue, language.BlockValue:
		return jen.Lit(v.Raw)
	case language.BooleanValue:
		return jen.Lit(v.Raw == "true")
	case language.EnumValue:
		return jen.Id(EnumConstName(typ.Innermost().Name, v.Raw))
	case language.ListValue:
		return c.listLiteral(v, typ)
	case language.ObjectValue:
		return c.objectLiteral(v, typ)
	default:
		c.bag.add(v.Position, ErrVariableDefaultValue, fmt.Sprintf("unsupported literal %q", v.Raw))
		return nil
	}
}

func (c *compilation) listLiteral(v *language.Value, typ *Type) jen.Code {
	base := typ
	for base.Kind == KindNullable || base.Kind == KindRef {
		base = base.Elem
	}
	if base.Kind != KindList {
		c.bag.add(v.Position, ErrVariableDefaultValue, "list literal for a non-list argument")
		return nil
	}
	elem := base.Elem

	items := make([]jen.Code, 0, len(v.Children))
	for _, child := range v.Children {
		code := c.nullableLiteral(child.Value, elem)
		if code == nil {
			return nil
		}
		items = append(items, code)
	}
	return jen.Index().Add(elem.Code()).Values(items...)
}

// objectLiteral renders an input-object literal as a struct literal. Fields
// the literal omits are left null when nullable; the parser has already
// guaranteed nullability for omittable fields in a valid document.
func (c *compilation) objectLiteral(v *language.Value, typ *Type) jen.Code {
	name := typ.Innermost().Name

	present := make(map[string]*language.Value, len(v.Children))
	for _, child := range v.Children {
		if _, ok := c.astData.InputFieldType(name, child.Name); !ok {
			c.bag.add(v.Position, ErrUnknownInputObjectField,
				fmt.Sprintf("`%s` has no field `%s`", name, child.Name))
			return nil
		}
		present[child.Name] = child.Value
	}

	dict := jen.Dict{}
	for _, fieldName := range c.astData.InputFieldNames(name) {
		astType, _ := c.astData.InputFieldType(name, fieldName)
		fieldType := c.mapNullable(nullableTypeFromAST(astType), v.Position)
		if fieldType == nil {
			return nil
		}

		child, ok := present[fieldName]
		if !ok {
			if fieldType.IsNullable() {
				dict[jen.Id(GoName(fieldName))] = jen.Nil()
			}
			continue
		}
		code := c.nullableLiteral(child, fieldType)
		if code == nil {
			return nil
		}
		dict[jen.Id(GoName(fieldName))] = code
	}
	return jen.Id(GoName(name)).Values(dict)
}

// nullableLiteral renders a literal at a possibly-nullable slot. Non-null
// values at nullable slots take the address through trail.Ptr, which keeps
// the expression usable inside composite literals.
func (c *compilation) nullableLiteral(v *language.Value, t *Type) jen.Code {
	if !t.IsNullable() {
		return c.literalExpr(v, t)
	}
	if v.Kind == language.NullValue {
		return jen.Nil()
	}
	inner := c.literalExpr(v, t.RemoveOneNullable())
	if inner == nil {
		return nil
	}
	return jen.Qual(trailPkgPath, "Ptr").Call(inner)
}
