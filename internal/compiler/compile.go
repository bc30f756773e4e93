// Package compiler turns a parsed GraphQL schema document into a validated
// model of the Go bindings to generate. Diagnostics accumulate across the
// whole document and are reported together, sorted by source position, so a
// schema with several mistakes surfaces all of them in one run.
package compiler

import (
	"fmt"

	language "github.com/hanpama/graphbind/internal/language"
)

// Artifact is the compiled, validated model the generator renders. Entity
// slices keep document declaration order.
type Artifact struct {
	SchemaRoot   *SchemaRoot
	Objects      []Object
	Subscription *Subscription
	Interfaces   []Interface
	Unions       []Union
	Enums        []Enum
	InputObjects []InputObject
	Scalars      []Scalar
	Trails       []Trail
}

// SchemaRoot names the operation root types. Mutation and Subscription are
// empty when the schema block omits them.
type SchemaRoot struct {
	Query        string
	Mutation     string
	Subscription string
}

type Object struct {
	Name        string
	Description string
	Implements  []string
	Fields      []Field
}

type Subscription struct {
	Name        string
	Description string
	Fields      []Field
}

type Interface struct {
	Name         string
	Description  string
	Implementors []string
	Fields       []Field
}

type Union struct {
	Name        string
	Description string
	Members     []string
}

type Enum struct {
	Name        string
	Description string
	Values      []EnumValue
}

type EnumValue struct {
	Name        string
	Description string
	Deprecated  *Deprecation
}

type InputObject struct {
	Name        string
	Description string
	Fields      []InputField
}

type InputField struct {
	Name        string
	Description string
	Type        *Type
}

// Scalar is a user-defined scalar that gets its own newtype. Built-in and
// reserved scalars never appear here; they bind to fixed Go types.
type Scalar struct {
	Name        string
	Description string
}

// Trail describes the lookahead helper generated for one composite type.
// A TrailField with a TrailType steps into a child trail; one without is a
// leaf answered with a bool.
type Trail struct {
	Name   string
	Fields []TrailField
}

type TrailField struct {
	Name      string
	TrailType string
}

type compilation struct {
	doc     *language.SchemaDocument
	astData *AstData
	bag     errorBag

	artifact Artifact
}

// Compile validates the document and builds the generation model. On failure
// the returned error is an ErrorList carrying every diagnostic found.
func Compile(doc *language.SchemaDocument) (*Artifact, error) {
	c := &compilation{doc: doc}

	data, errs := BuildAstData(doc)
	c.astData = data
	c.bag.errs = append(c.bag.errs, errs...)

	for _, ext := range doc.Extensions {
		c.bag.add(ext.Position, ErrTypeExtensionNotSupported, fmt.Sprintf("`%s`", ext.Name))
	}
	for _, ext := range doc.SchemaExtension {
		c.bag.add(ext.Position, ErrTypeExtensionNotSupported, "`schema`")
	}

	c.compileSchemaRoot()
	for _, node := range doc.Definitions {
		c.compileDefinition(node)
	}
	for _, dir := range doc.Directives {
		if dir.Name == juniperDirectiveName {
			c.validateJuniperDirectiveDefinition(dir)
		}
	}
	if err := c.bag.checkpoint(); err != nil {
		return nil, err
	}

	c.generateTrails()
	if err := c.bag.checkpoint(); err != nil {
		return nil, err
	}
	return &c.artifact, nil
}

func (c *compilation) compileSchemaRoot() {
	if len(c.doc.Schema) == 0 {
		c.bag.add(nil, ErrNoQueryType, "schema block is missing")
		return
	}
	root := &SchemaRoot{}
	for _, sd := range c.doc.Schema {
		for _, op := range sd.OperationTypes {
			switch op.Operation {
			case language.Query:
				root.Query = op.Type
			case language.Mutation:
				root.Mutation = op.Type
			case language.Subscription:
				root.Subscription = op.Type
			}
		}
		if root.Query == "" {
			c.bag.add(sd.Position, ErrNoQueryType, "")
		}
	}
	c.artifact.SchemaRoot = root
}

func (c *compilation) compileDefinition(node *language.Definition) {
	switch node.Kind {
	case language.Object:
		if c.astData.IsSubscriptionType(node.Name) {
			c.compileSubscription(node)
		} else {
			c.compileObject(node)
		}
	case language.Interface:
		c.compileInterface(node)
	case language.Union:
		c.compileUnion(node)
	case language.Enum:
		c.compileEnum(node)
	case language.InputObject:
		c.compileInputObject(node)
	case language.Scalar:
		c.compileScalar(node)
	}
}

func (c *compilation) compileObject(node *language.Definition) {
	c.validateFieldNameCase(node)
	fields := make([]Field, 0, len(node.Fields))
	for _, f := range node.Fields {
		fields = append(fields, c.compileField(f, FieldLocationObject))
	}
	c.artifact.Objects = append(c.artifact.Objects, Object{
		Name:        node.Name,
		Description: node.Description,
		Implements:  node.Interfaces,
		Fields:      fields,
	})
}

func (c *compilation) compileSubscription(node *language.Definition) {
	if len(node.Interfaces) > 0 {
		c.bag.add(node.Position, ErrSubscriptionsCannotImplementInterfaces, fmt.Sprintf("`%s`", node.Name))
	}
	c.validateFieldNameCase(node)
	fields := make([]Field, 0, len(node.Fields))
	for _, f := range node.Fields {
		fields = append(fields, c.compileField(f, FieldLocationSubscription))
	}
	c.artifact.Subscription = &Subscription{
		Name:        node.Name,
		Description: node.Description,
		Fields:      fields,
	}
}

func (c *compilation) compileInterface(node *language.Definition) {
	c.validateFieldNameCase(node)
	fields := make([]Field, 0, len(node.Fields))
	for _, f := range node.Fields {
		fields = append(fields, c.compileField(f, FieldLocationInterface))
	}
	c.artifact.Interfaces = append(c.artifact.Interfaces, Interface{
		Name:         node.Name,
		Description:  node.Description,
		Implementors: c.astData.ImplementorsOf(node.Name),
		Fields:       fields,
	})
}

func (c *compilation) compileUnion(node *language.Definition) {
	c.artifact.Unions = append(c.artifact.Unions, Union{
		Name:        node.Name,
		Description: node.Description,
		Members:     node.Types,
	})
}

func (c *compilation) compileEnum(node *language.Definition) {
	values := make([]EnumValue, 0, len(node.EnumValues))
	for _, v := range node.EnumValues {
		var dep *Deprecation
		for _, d := range v.Directives {
			if d.Name == "deprecated" {
				dep = c.parseDeprecated(d)
			}
		}
		values = append(values, EnumValue{
			Name:        v.Name,
			Description: v.Description,
			Deprecated:  dep,
		})
	}
	c.artifact.Enums = append(c.artifact.Enums, Enum{
		Name:        node.Name,
		Description: node.Description,
		Values:      values,
	})
}

func (c *compilation) compileInputObject(node *language.Definition) {
	c.validateFieldNameCase(node)
	fields := make([]InputField, 0, len(node.Fields))
	for _, f := range node.Fields {
		if f.DefaultValue != nil {
			c.bag.add(f.Position, ErrInputTypeFieldWithDefaultValue, fmt.Sprintf("`%s`", f.Name))
		}
		fields = append(fields, InputField{
			Name:        f.Name,
			Description: f.Description,
			Type:        c.mapNullable(nullableTypeFromAST(f.Type), f.Position),
		})
	}
	c.artifact.InputObjects = append(c.artifact.InputObjects, InputObject{
		Name:        node.Name,
		Description: node.Description,
		Fields:      fields,
	})
}

func (c *compilation) compileScalar(node *language.Definition) {
	c.validateScalarName(node)

	switch node.Name {
	case "String", "Int", "Float", "Boolean", "ID":
		c.bag.add(node.Position, ErrCannotDeclareBuiltinAsScalar, fmt.Sprintf("`%s`", node.Name))
		return
	case DateScalarName, DateTimeScalarName, UuidScalarName, UrlScalarName:
		// Reserved scalars bind to fixed Go types, so a description would
		// have nowhere to go.
		if node.Description != "" {
			c.bag.add(node.Position, ErrSpecialCaseScalarWithDescription, fmt.Sprintf("`%s`", node.Name))
		}
		loc := FieldLocationObject
		if node.Name == DateTimeScalarName {
			loc = FieldLocationScalar
		}
		c.parseFieldDirectives(node.Directives, loc)
		return
	}

	c.parseFieldDirectives(node.Directives, FieldLocationObject)
	c.artifact.Scalars = append(c.artifact.Scalars, Scalar{
		Name:        node.Name,
		Description: node.Description,
	})
}

// generateTrails derives a lookahead trail for every composite type,
// subscription root included. Runs after the first checkpoint, so every field
// type is resolved. Union trails have no fields; selections inside a union go
// through the member objects.
func (c *compilation) generateTrails() {
	for _, obj := range c.artifact.Objects {
		c.artifact.Trails = append(c.artifact.Trails, Trail{
			Name:   obj.Name,
			Fields: trailFields(obj.Fields),
		})
	}
	if sub := c.artifact.Subscription; sub != nil {
		c.artifact.Trails = append(c.artifact.Trails, Trail{
			Name:   sub.Name,
			Fields: trailFields(sub.Fields),
		})
	}
	for _, iface := range c.artifact.Interfaces {
		c.artifact.Trails = append(c.artifact.Trails, Trail{
			Name:   iface.Name,
			Fields: trailFields(iface.Fields),
		})
	}
	for _, u := range c.artifact.Unions {
		c.artifact.Trails = append(c.artifact.Trails, Trail{Name: u.Name})
	}
}

func trailFields(fields []Field) []TrailField {
	out := make([]TrailField, 0, len(fields))
	for _, f := range fields {
		tf := TrailField{Name: f.Name}
		if f.Type.IsComposite() {
			tf.TrailType = f.Type.Innermost().Name
		}
		out = append(out, tf)
	}
	return out
}
