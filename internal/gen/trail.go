package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/hanpama/graphbind/internal/compiler"
)

// genTrail emits the two-state lookahead helper for one composite type. The
// unwalked form only offers Walk; the walked form answers leaf fields with a
// bool and steps into composite fields with the child's unwalked trail.
func genTrail(f *jen.File, t compiler.Trail) {
	name := trailName(t.Name)
	walked := trailWalkedName(t.Name)

	f.Commentf("%s is the lookahead over a %s selection that has not been checked for presence yet.", name, t.Name)
	f.Type().Id(name).Struct(jen.Id("sel").Qual(trailPkg, "Selection"))

	f.Comment("Walk reports whether the field was selected and, when it was, hands back the walked trail.")
	f.Func().Params(jen.Id("t").Id(name)).Id("Walk").Params().Params(jen.Id(walked), jen.Bool()).Block(
		jen.If(jen.Id("t").Dot("sel").Op("==").Nil()).Block(
			jen.Return(jen.Id(walked).Values(), jen.False()),
		),
		jen.Return(jen.Id(walked).Values(jen.Dict{jen.Id("sel"): jen.Id("t").Dot("sel")}), jen.True()),
	)

	f.Type().Id(walked).Struct(jen.Id("sel").Qual(trailPkg, "Selection"))

	// Accessors tolerate a nil selection; nothing is selected then.
	for _, tf := range t.Fields {
		method := compiler.GoName(tf.Name)
		if tf.TrailType == "" {
			f.Func().Params(jen.Id("t").Id(walked)).Id(method).Params().Bool().Block(
				jen.Return(jen.Id("t").Dot("sel").Op("!=").Nil().Op("&&").
					Id("t").Dot("sel").Dot("Child").Call(jen.Lit(tf.Name)).Op("!=").Nil()),
			)
			continue
		}
		child := trailName(tf.TrailType)
		f.Func().Params(jen.Id("t").Id(walked)).Id(method).Params().Id(child).Block(
			jen.If(jen.Id("t").Dot("sel").Op("==").Nil()).Block(
				jen.Return(jen.Id(child).Values()),
			),
			jen.Return(jen.Id(child).Values(jen.Dict{
				jen.Id("sel"): jen.Id("t").Dot("sel").Dot("Child").Call(jen.Lit(tf.Name)),
			})),
		)
	}
}
