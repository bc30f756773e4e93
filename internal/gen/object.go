package gen

import (
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/hanpama/graphbind/internal/compiler"
)

// genObject emits the struct for one object type, the engine-facing wrapper
// method per field, and the XFields resolver contract the user implements.
func genObject(f *jen.File, o compiler.Object) {
	name := compiler.GoName(o.Name)
	comment(f, o.Description)
	f.Type().Id(name).Struct(
		jen.Id("fields").Id(name + "Fields"),
	)
	f.Func().Id("New" + name).Params(jen.Id("fields").Id(name + "Fields")).Id(name).Block(
		jen.Return(jen.Id(name).Values(jen.Dict{jen.Id("fields"): jen.Id("fields")})),
	)

	for _, field := range o.Fields {
		genFieldWrapper(f, name, field, false)
	}
	genFieldsInterface(f, name, o.Name, o.Fields, false)
}

// genSubscription is genObject for the subscription root; the only
// difference is that resolvers return streams.
func genSubscription(f *jen.File, s *compiler.Subscription) {
	name := compiler.GoName(s.Name)
	comment(f, s.Description)
	f.Type().Id(name).Struct(
		jen.Id("fields").Id(name + "Fields"),
	)
	f.Func().Id("New" + name).Params(jen.Id("fields").Id(name + "Fields")).Id(name).Block(
		jen.Return(jen.Id(name).Values(jen.Dict{jen.Id("fields"): jen.Id("fields")})),
	)

	for _, field := range s.Fields {
		genFieldWrapper(f, name, field, true)
	}
	genFieldsInterface(f, name, s.Name, s.Fields, true)
}

// genFieldWrapper emits the method the engine calls. It bridges the wire
// shape to the resolver contract: defaults are substituted for missing
// arguments, and composite returns get a pre-walked trail built from the
// executor's lookahead.
func genFieldWrapper(f *jen.File, recv string, field compiler.Field, stream bool) {
	recvVar := strings.ToLower(recv[:1])

	params := []jen.Code{jen.Id("exec").Op("*").Qual(trailPkg, "Executor")}
	for _, a := range field.Args {
		params = append(params, jen.Id(paramName(a.Name)).Add(a.Wire.Code()))
	}

	var body []jen.Code
	callArgs := []jen.Code{jen.Id("exec").Dot("Context").Call(), jen.Id("exec")}
	if field.Type.IsComposite() {
		walked := trailWalkedName(field.Type.Innermost().Name)
		body = append(body, jen.Id("tr").Op(":=").Id(walked).Values(jen.Dict{
			jen.Id("sel"): jen.Id("exec").Dot("LookAhead").Call(),
		}))
		callArgs = append(callArgs, jen.Id("tr"))
	}
	for _, a := range field.Args {
		pn := paramName(a.Name)
		if a.Default == nil {
			callArgs = append(callArgs, jen.Id(pn))
			continue
		}
		pv := pn + "Value"
		body = append(body,
			jen.Var().Id(pv).Add(a.Type.Code()).Op("=").Add(a.Default),
			jen.If(jen.Id(pn).Op("!=").Nil()).Block(
				jen.Id(pv).Op("=").Op("*").Id(pn),
			),
		)
		callArgs = append(callArgs, jen.Id(pv))
	}

	call := jen.Id(recvVar).Dot("fields").Dot(field.MethodName()).Call(callArgs...)
	if field.Directives.Infallible {
		body = append(body, jen.Return(call, jen.Nil()))
	} else {
		body = append(body, jen.Return(call))
	}

	if dep := field.Directives.Deprecated; dep != nil {
		f.Comment("Deprecated: " + dep.Reason)
	}
	f.Func().Params(jen.Id(recvVar).Id(recv)).Id(compiler.GoName(field.Name)).
		Params(params...).
		Params(wireReturn(field, stream), jen.Error()).
		Block(body...)
}

// genFieldsInterface emits the resolver contract. Method signatures carry the
// context, the executor, a walked trail for composite returns, and the
// arguments at their contract types.
func genFieldsInterface(f *jen.File, name, gqlName string, fields []compiler.Field, stream bool) {
	var methods []jen.Code
	for _, field := range fields {
		if field.Description != "" {
			methods = append(methods, jen.Comment(field.Description))
		}
		if dep := field.Directives.Deprecated; dep != nil {
			methods = append(methods, jen.Comment("Deprecated: "+dep.Reason))
		}
		sig := jen.Id(field.MethodName()).Params(resolverParams(field)...)
		if field.Directives.Infallible {
			sig.Add(wireReturn(field, stream))
		} else {
			sig.Params(wireReturn(field, stream), jen.Error())
		}
		methods = append(methods, sig)
	}
	f.Commentf("%sFields resolves the fields of the %s type.", name, gqlName)
	f.Type().Id(name + "Fields").Interface(methods...)
}

func resolverParams(field compiler.Field) []jen.Code {
	params := []jen.Code{
		jen.Id("ctx").Qual("context", "Context"),
		jen.Id("exec").Op("*").Qual(trailPkg, "Executor"),
	}
	if field.Type.IsComposite() {
		params = append(params, jen.Id("tr").Id(trailWalkedName(field.Type.Innermost().Name)))
	}
	for _, a := range field.Args {
		params = append(params, jen.Id(paramName(a.Name)).Add(a.Type.Code()))
	}
	return params
}

// wireReturn is the value type a field produces: the mapped Go type for
// plain fields, a stream for subscription fields.
func wireReturn(field compiler.Field, stream bool) jen.Code {
	if !stream {
		return field.Type.Code()
	}
	if st := field.Directives.StreamType; st != nil {
		return jen.Id(*st)
	}
	elem := field.Type.Code()
	if sii := field.Directives.StreamItemInfallible; sii != nil && !*sii {
		return jen.Op("<-").Chan().Qual(trailPkg, "StreamItem").Index(elem)
	}
	return jen.Op("<-").Chan().Add(elem)
}
