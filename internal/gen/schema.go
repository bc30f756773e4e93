package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/hanpama/graphbind/internal/compiler"
)

// genSchema emits the root wiring struct. Roots the schema block omits are
// filled with the empty types from the trail package.
func genSchema(f *jen.File, art *compiler.Artifact) {
	root := art.SchemaRoot
	if root == nil {
		return
	}

	fields := []jen.Code{jen.Id("Query").Id(compiler.GoName(root.Query))}
	params := []jen.Code{jen.Id("query").Id(compiler.GoName(root.Query))}
	values := jen.Dict{jen.Id("Query"): jen.Id("query")}

	if root.Mutation != "" {
		fields = append(fields, jen.Id("Mutation").Id(compiler.GoName(root.Mutation)))
		params = append(params, jen.Id("mutation").Id(compiler.GoName(root.Mutation)))
		values[jen.Id("Mutation")] = jen.Id("mutation")
	} else {
		fields = append(fields, jen.Id("Mutation").Qual(trailPkg, "EmptyMutation"))
	}
	if root.Subscription != "" {
		fields = append(fields, jen.Id("Subscription").Id(compiler.GoName(root.Subscription)))
		params = append(params, jen.Id("subscription").Id(compiler.GoName(root.Subscription)))
		values[jen.Id("Subscription")] = jen.Id("subscription")
	} else {
		fields = append(fields, jen.Id("Subscription").Qual(trailPkg, "EmptySubscription"))
	}

	f.Comment("Schema wires the operation root types together.")
	f.Type().Id("Schema").Struct(fields...)
	f.Func().Id("NewSchema").Params(params...).Id("Schema").Block(
		jen.Return(jen.Id("Schema").Values(values)),
	)
}
