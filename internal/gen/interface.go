package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/hanpama/graphbind/internal/compiler"
)

// genInterface emits a Go interface over the engine-facing wrapper methods of
// the GraphQL interface's fields. Implementing objects satisfy it
// structurally because their wrappers are generated from the same field
// shapes; the var assertions turn any drift into a compile error.
func genInterface(f *jen.File, i compiler.Interface) {
	name := compiler.GoName(i.Name) + "Interface"

	var methods []jen.Code
	for _, field := range i.Fields {
		if field.Description != "" {
			methods = append(methods, jen.Comment(field.Description))
		}
		params := []jen.Code{jen.Id("exec").Op("*").Qual(trailPkg, "Executor")}
		for _, a := range field.Args {
			params = append(params, jen.Id(paramName(a.Name)).Add(a.Wire.Code()))
		}
		methods = append(methods, jen.Id(compiler.GoName(field.Name)).
			Params(params...).
			Params(field.Type.Code(), jen.Error()))
	}

	comment(f, i.Description)
	f.Type().Id(name).Interface(methods...)

	for _, impl := range i.Implementors {
		f.Var().Id("_").Id(name).Op("=").Parens(jen.Op("*").Id(compiler.GoName(impl))).Call(jen.Nil())
	}
}

// genUnion emits a marker interface plus a conversion constructor per member.
func genUnion(f *jen.File, u compiler.Union) {
	name := compiler.GoName(u.Name)
	marker := "is" + name

	comment(f, u.Description)
	f.Type().Id(name).Interface(jen.Id(marker).Params())

	for _, m := range u.Members {
		member := compiler.GoName(m)
		f.Func().Params(jen.Id(member)).Id(marker).Params().Block()
		f.Func().Id(name + "From" + member).Params(jen.Id("v").Id(member)).Id(name).Block(
			jen.Return(jen.Id("v")),
		)
	}
}
