package compiler

import (
	language "github.com/hanpama/graphbind/internal/language"
)

// Reserved scalar names bound to fixed Go representations. Each requires a
// prior `scalar <Name>` declaration in the document; DateTime additionally
// chooses its representation through @juniper(with_time_zone:).
const (
	DateScalarName     = "Date"
	DateTimeScalarName = "DateTime"
	UuidScalarName     = "Uuid"
	UrlScalarName      = "Url"
)

// DateTimeKind records which representation the DateTime scalar declaration
// selected.
type DateTimeKind int

const (
	DateTimeWithTimeZone DateTimeKind = iota
	DateTimeWithoutTimeZone
)

type inputFieldInfo struct {
	typeName string
	nullable bool
	astType  *language.Type
}

// AstData is the whole-document symbol table, built in one pre-pass and
// read-only afterwards. It answers name classification, interface
// implementor and input-object field lookups for the main pass.
type AstData struct {
	kinds            map[string]language.DefinitionKind
	implementors     map[string][]string
	inputFields      map[string]map[string]inputFieldInfo
	inputFieldOrder  map[string][]string
	subscriptionRoot string

	dateDefined bool
	uuidDefined bool
	urlDefined  bool
	dateTime    *DateTimeKind
}

// BuildAstData indexes the full document. Implementors are gathered
// regardless of declaration order, so forward references resolve. Errors
// here are limited to a malformed with_time_zone choice on the DateTime
// scalar declaration.
func BuildAstData(doc *language.SchemaDocument) (*AstData, []Error) {
	d := &AstData{
		kinds:           make(map[string]language.DefinitionKind),
		implementors:    make(map[string][]string),
		inputFields:     make(map[string]map[string]inputFieldInfo),
		inputFieldOrder: make(map[string][]string),
	}
	var errs []Error

	for _, sd := range doc.Schema {
		for _, op := range sd.OperationTypes {
			if op.Operation == language.Subscription {
				d.subscriptionRoot = op.Type
			}
		}
	}

	for _, node := range doc.Definitions {
		d.kinds[node.Name] = node.Kind

		switch node.Kind {
		case language.Object:
			for _, iface := range node.Interfaces {
				d.implementors[iface] = append(d.implementors[iface], node.Name)
			}
		case language.Scalar:
			switch node.Name {
			case DateScalarName:
				d.dateDefined = true
			case UuidScalarName:
				d.uuidDefined = true
			case UrlScalarName:
				d.urlDefined = true
			case DateTimeScalarName:
				kind, es := dateTimeKindFromDirectives(node.Directives)
				d.dateTime = &kind
				errs = append(errs, es...)
			}
		case language.InputObject:
			fields := make(map[string]inputFieldInfo, len(node.Fields))
			order := make([]string, 0, len(node.Fields))
			for _, f := range node.Fields {
				fields[f.Name] = inputFieldInfo{
					typeName: namedTypeOf(f.Type),
					nullable: !f.Type.NonNull,
					astType:  f.Type,
				}
				order = append(order, f.Name)
			}
			d.inputFields[node.Name] = fields
			d.inputFieldOrder[node.Name] = order
		}
	}

	return d, errs
}

func dateTimeKindFromDirectives(dirs language.DirectiveList) (DateTimeKind, []Error) {
	kind := DateTimeWithTimeZone
	var errs []Error
	for _, dir := range dirs {
		if dir.Name != juniperDirectiveName {
			continue
		}
		for _, arg := range dir.Arguments {
			if arg.Name != argWithTimeZone {
				continue
			}
			if arg.Value.Kind != language.BooleanValue {
				e := Error{Kind: ErrInvalidJuniperDirective, Detail: "with_time_zone must be a Boolean"}
				if arg.Position != nil {
					e.Line = arg.Position.Line
					e.Column = arg.Position.Column
					if arg.Position.Src != nil {
						e.File = arg.Position.Src.Name
					}
				}
				errs = append(errs, e)
				continue
			}
			if arg.Value.Raw == "false" {
				kind = DateTimeWithoutTimeZone
			}
		}
	}
	return kind, errs
}

func (d *AstData) IsScalar(name string) bool    { return d.kinds[name] == language.Scalar }
func (d *AstData) IsEnum(name string) bool      { return d.kinds[name] == language.Enum }
func (d *AstData) IsUnion(name string) bool     { return d.kinds[name] == language.Union }
func (d *AstData) IsInterface(name string) bool { return d.kinds[name] == language.Interface }

// IsSubscriptionType reports whether name is the declared subscription root.
func (d *AstData) IsSubscriptionType(name string) bool {
	return d.subscriptionRoot != "" && d.subscriptionRoot == name
}

// ImplementorsOf returns the object types declaring the interface, in
// declaration order.
func (d *AstData) ImplementorsOf(iface string) []string {
	return d.implementors[iface]
}

func (d *AstData) DateScalarDefined() bool { return d.dateDefined }
func (d *AstData) UuidScalarDefined() bool { return d.uuidDefined }
func (d *AstData) UrlScalarDefined() bool  { return d.urlDefined }

// DateTimeScalarDefinition returns the chosen DateTime representation, or
// nil when the scalar was never declared.
func (d *AstData) DateTimeScalarDefinition() *DateTimeKind { return d.dateTime }

func (d *AstData) InputFieldTypeName(typeName, fieldName string) (string, bool) {
	info, ok := d.inputFields[typeName][fieldName]
	return info.typeName, ok
}

// InputFieldType returns the declared grammar type of an input object field.
func (d *AstData) InputFieldType(typeName, fieldName string) (*language.Type, bool) {
	info, ok := d.inputFields[typeName][fieldName]
	return info.astType, ok
}

func (d *AstData) InputFieldNullable(typeName, fieldName string) (bool, bool) {
	info, ok := d.inputFields[typeName][fieldName]
	return info.nullable, ok
}

// InputFieldNames returns the declared field names of an input object in
// declaration order.
func (d *AstData) InputFieldNames(typeName string) []string {
	return d.inputFieldOrder[typeName]
}

// namedTypeOf unwraps a grammar type reference to its innermost named type.
func namedTypeOf(t *language.Type) string {
	for t.Elem != nil {
		t = t.Elem
	}
	return t.NamedType
}
