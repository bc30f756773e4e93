// Package gen renders a compiled schema model into Go source. All emission
// goes through jennifer, which takes care of import management and
// formatting, so the output never needs a separate goimports pass.
package gen

import (
	"bytes"
	"go/token"

	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"

	"github.com/hanpama/graphbind/internal/compiler"
)

const trailPkg = "github.com/hanpama/graphbind/trail"

// Generate renders the full bindings for art into one Go source file in
// package pkgName.
func Generate(art *compiler.Artifact, pkgName string) ([]byte, error) {
	f := jen.NewFile(pkgName)
	f.HeaderComment("Code generated by graphbind. DO NOT EDIT.")

	genSchema(f, art)
	for _, s := range art.Scalars {
		genScalar(f, s)
	}
	for _, e := range art.Enums {
		genEnum(f, e)
	}
	for _, in := range art.InputObjects {
		genInputObject(f, in)
	}
	for _, o := range art.Objects {
		genObject(f, o)
	}
	if art.Subscription != nil {
		genSubscription(f, art.Subscription)
	}
	for _, i := range art.Interfaces {
		genInterface(f, i)
	}
	for _, u := range art.Unions {
		genUnion(f, u)
	}
	for _, t := range art.Trails {
		genTrail(f, t)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// paramName derives a Go parameter name from a GraphQL argument name.
// GraphQL allows names that collide with Go keywords, `type` being the usual
// offender.
func paramName(name string) string {
	n := inflect.CamelizeDownFirst(name)
	if token.IsKeyword(n) {
		return n + "Arg"
	}
	return n
}

func trailName(typeName string) string {
	return compiler.GoName(typeName) + "Trail"
}

func trailWalkedName(typeName string) string {
	return compiler.GoName(typeName) + "TrailWalked"
}

func comment(f *jen.File, desc string) {
	if desc != "" {
		f.Comment(desc)
	}
}
