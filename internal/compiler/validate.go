package compiler

import (
	"fmt"

	language "github.com/hanpama/graphbind/internal/language"
)

// Name lints. These never stop compilation on their own; they add to the bag
// and the checkpoints decide.

// validateFieldNameCase rejects snake_case field names on objects,
// interfaces and input objects. Generated Go names are derived by
// re-casing, so a snake_case source name would silently collide with the
// camelCase spelling of the same field.
func (c *compilation) validateFieldNameCase(node *language.Definition) {
	for _, field := range node.Fields {
		if isSnakeCase(field.Name) {
			c.bag.add(field.Position, ErrFieldNameInSnakeCase,
				fmt.Sprintf("`%s`; perhaps you meant `%s`", field.Name, lowerCamel(field.Name)))
		}
	}
}

// validateScalarName rejects `scalar UUID`. The reserved spelling is `Uuid`
// and accepting both would make the binding ambiguous.
func (c *compilation) validateScalarName(node *language.Definition) {
	if node.Name == "UUID" {
		c.bag.add(node.Position, ErrUppercaseUuidScalar, "")
	}
}
