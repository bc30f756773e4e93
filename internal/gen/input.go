package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/hanpama/graphbind/internal/compiler"
)

// genScalar emits the newtype for a user-defined scalar. The wire form of a
// custom scalar is always a string.
func genScalar(f *jen.File, s compiler.Scalar) {
	name := compiler.GoName(s.Name)
	comment(f, s.Description)
	f.Type().Id(name).String()
	f.Func().Id("New" + name).Params(jen.Id("v").String()).Id(name).Block(
		jen.Return(jen.Id(name).Call(jen.Id("v"))),
	)
	f.Func().Id(name + "FromSelectionValue").Params(jen.Id("v").Qual(trailPkg, "Value")).Id(name).Block(
		jen.Return(jen.Id(name).Call(jen.Qual(trailPkg, "DecodeString").Call(jen.Id("v")))),
	)
}

// genEnum emits the enum newtype, one constant per value carrying the
// GraphQL spelling, and the panicking decoder.
func genEnum(f *jen.File, e compiler.Enum) {
	name := compiler.GoName(e.Name)
	comment(f, e.Description)
	f.Type().Id(name).String()

	f.Const().DefsFunc(func(g *jen.Group) {
		for _, v := range e.Values {
			if v.Description != "" {
				g.Comment(v.Description)
			}
			if v.Deprecated != nil {
				g.Comment("Deprecated: " + v.Deprecated.Reason)
			}
			g.Id(compiler.EnumConstName(e.Name, v.Name)).Id(name).Op("=").Lit(v.Name)
		}
	})

	cases := make([]jen.Code, 0, len(e.Values))
	for _, v := range e.Values {
		cases = append(cases, jen.Id(compiler.EnumConstName(e.Name, v.Name)))
	}
	body := []jen.Code{
		jen.List(jen.Id("ev"), jen.Id("ok")).Op(":=").Id("v").Assert(jen.Qual(trailPkg, "EnumValue")),
		jen.If(jen.Op("!").Id("ok")).Block(
			jen.Panic(jen.Lit("failed converting selection value: expected enum for " + e.Name)),
		),
	}
	if len(cases) > 0 {
		body = append(body, jen.Switch(jen.Id(name).Call(jen.Id("ev"))).Block(
			jen.Case(cases...).Block(
				jen.Return(jen.Id(name).Call(jen.Id("ev"))),
			),
		))
	}
	body = append(body, jen.Panic(
		jen.Qual("fmt", "Sprintf").Call(jen.Lit("unknown "+e.Name+" value %q"), jen.String().Call(jen.Id("ev"))),
	))
	f.Func().Id(name + "FromSelectionValue").Params(jen.Id("v").Qual(trailPkg, "Value")).Id(name).Block(body...)
}

// genInputObject emits the input struct and its decoder. The decoder panics
// on unknown keys and on any missing field. An explicitly null value still
// counts as set and decodes to nil; only an absent key is an error.
func genInputObject(f *jen.File, in compiler.InputObject) {
	name := compiler.GoName(in.Name)

	structFields := make([]jen.Code, 0, len(in.Fields))
	for _, fd := range in.Fields {
		field := jen.Id(compiler.GoName(fd.Name)).Add(fd.Type.Code())
		if fd.Description != "" {
			structFields = append(structFields, jen.Comment(fd.Description))
		}
		structFields = append(structFields, field)
	}
	comment(f, in.Description)
	f.Type().Id(name).Struct(structFields...)

	body := []jen.Code{
		jen.List(jen.Id("obj"), jen.Id("ok")).Op(":=").Id("v").Assert(jen.Qual(trailPkg, "ObjectValue")),
		jen.If(jen.Op("!").Id("ok")).Block(
			jen.Panic(jen.Lit("failed converting selection value: expected object for " + in.Name)),
		),
		jen.Var().Id("out").Id(name),
	}
	for _, fd := range in.Fields {
		body = append(body, jen.Var().Id("set"+compiler.GoName(fd.Name)).Bool())
	}

	loop := jen.For(jen.List(jen.Id("_"), jen.Id("fv")).Op(":=").Range().Id("obj")).BlockFunc(func(g *jen.Group) {
		g.Switch(jen.Id("fv").Dot("Key")).BlockFunc(func(sw *jen.Group) {
			for _, fd := range in.Fields {
				sw.Case(jen.Lit(fd.Name)).BlockFunc(func(cs *jen.Group) {
					cs.Id("out").Dot(compiler.GoName(fd.Name)).Op("=").Add(
						decodeCall(fd.Type, jen.Id("fv").Dot("Value")),
					)
					cs.Id("set" + compiler.GoName(fd.Name)).Op("=").True()
				})
			}
			sw.Default().Block(
				jen.Panic(jen.Qual("fmt", "Sprintf").Call(
					jen.Lit("unknown field %q on "+in.Name), jen.Id("fv").Dot("Key"),
				)),
			)
		})
	})
	body = append(body, loop)

	for _, fd := range in.Fields {
		body = append(body, jen.If(jen.Op("!").Id("set"+compiler.GoName(fd.Name))).Block(
			jen.Panic(jen.Lit("missing field \""+fd.Name+"\" on "+in.Name)),
		))
	}
	body = append(body, jen.Return(jen.Id("out")))

	f.Func().Id(name + "FromSelectionValue").Params(jen.Id("v").Qual(trailPkg, "Value")).Id(name).Block(body...)
}

// decodeCall renders the expression decoding a selection value at the given
// type. Containers compose through the generic helpers in the trail package;
// leaves resolve to a named decode function.
func decodeCall(t *compiler.Type, v jen.Code) jen.Code {
	switch t.Kind {
	case compiler.KindNullable:
		return jen.Qual(trailPkg, "DecodeNullable").Call(v, decodeFunc(t.Elem))
	case compiler.KindList:
		return jen.Qual(trailPkg, "DecodeList").Call(v, decodeFunc(t.Elem))
	default:
		return jen.Add(decodeFunc(t)).Call(v)
	}
}

// decodeFunc renders a func(trail.Value) T expression for the type, suitable
// as the decode argument of DecodeNullable and DecodeList.
func decodeFunc(t *compiler.Type) jen.Code {
	switch t.Kind {
	case compiler.KindNullable, compiler.KindList:
		return jen.Func().Params(jen.Id("v").Qual(trailPkg, "Value")).Add(t.Code()).Block(
			jen.Return(decodeCall(t, jen.Id("v"))),
		)
	case compiler.KindScalar:
		if t.Go == nil {
			return jen.Id(compiler.GoName(t.Name) + "FromSelectionValue")
		}
		switch t.Name {
		case "String":
			return jen.Qual(trailPkg, "DecodeString")
		case "Int":
			return jen.Qual(trailPkg, "DecodeInt")
		case "Float":
			return jen.Qual(trailPkg, "DecodeFloat")
		case "Boolean":
			return jen.Qual(trailPkg, "DecodeBool")
		case "ID":
			return jen.Qual(trailPkg, "DecodeID")
		case compiler.DateScalarName:
			return jen.Qual(trailPkg, "DecodeDate")
		case compiler.DateTimeScalarName:
			if t.Go.Name == "NaiveDateTime" {
				return jen.Qual(trailPkg, "DecodeNaiveDateTime")
			}
			return jen.Qual(trailPkg, "DecodeDateTime")
		case compiler.UuidScalarName:
			return jen.Qual(trailPkg, "DecodeUUID")
		case compiler.UrlScalarName:
			return jen.Qual(trailPkg, "DecodeURL")
		}
		return jen.Qual(trailPkg, "DecodeString")
	default:
		// Enums and input objects decode through their generated functions.
		return jen.Id(compiler.GoName(t.Name) + "FromSelectionValue")
	}
}
