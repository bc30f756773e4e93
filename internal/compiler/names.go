package compiler

import (
	"strings"

	"github.com/go-openapi/inflect"
)

// GoName turns a GraphQL identifier (camelCase or snake_case) into an
// exported Go identifier.
func GoName(name string) string {
	return inflect.Camelize(name)
}

// FieldMethodName is the resolver-contract method for a field. The prefix
// keeps field methods from colliding with the generated wrapper methods.
func FieldMethodName(fieldName string) string {
	return "Field" + GoName(fieldName)
}

// EnumConstName is the Go constant for a GraphQL enum value, e.g.
// (Color, RED_ISH) -> ColorRedIsh.
func EnumConstName(enumName, valueName string) string {
	return GoName(enumName) + inflect.Camelize(strings.ToLower(valueName))
}

// lowerCamel is the camelCase spelling of a snake_case name, used in
// diagnostics that suggest the conventional spelling.
func lowerCamel(name string) string {
	return inflect.CamelizeDownFirst(name)
}

// isSnakeCase reports whether a name is already valid snake_case. GraphQL
// field names are camelCase by convention and get snake_case-derived Go
// names during emission, so a source name that is already snake_case is
// almost certainly a mistake.
func isSnakeCase(name string) bool {
	return strings.Contains(name, "_") && inflect.Underscore(name) == name
}
