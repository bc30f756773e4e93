package compiler

import (
	"fmt"
	"strings"

	language "github.com/hanpama/graphbind/internal/language"
)

const juniperDirectiveName = "juniper"

const (
	argOwnership            = "ownership"
	argInfallible           = "infallible"
	argWithTimeZone         = "with_time_zone"
	argAsync                = "async"
	argStreamItemInfallible = "stream_item_infallible"
	argStreamType           = "stream_type"
)

var juniperArgNames = []string{
	argOwnership,
	argInfallible,
	argWithTimeZone,
	argAsync,
	argStreamItemInfallible,
	argStreamType,
}

// Ownership governs how a resolver hands its return value to the engine.
type Ownership int

const (
	OwnershipBorrowed Ownership = iota
	OwnershipOwned
	OwnershipAsRef
)

func (o Ownership) String() string {
	switch o {
	case OwnershipOwned:
		return "owned"
	case OwnershipAsRef:
		return "as_ref"
	default:
		return "borrowed"
	}
}

// Deprecation is a parsed @deprecated directive.
type Deprecation struct {
	Reason string
}

// FieldDirectives is the typed record of one field's @juniper and
// @deprecated annotations, with declared defaults substituted for omitted
// arguments.
type FieldDirectives struct {
	Ownership            Ownership
	Infallible           bool
	Async                bool
	StreamType           *string
	StreamItemInfallible *bool
	Deprecated           *Deprecation
}

func defaultFieldDirectives() FieldDirectives {
	return FieldDirectives{Ownership: OwnershipBorrowed}
}

// FieldLocation is where a directive usage sits; some arguments are only
// meaningful at some locations.
type FieldLocation int

const (
	FieldLocationObject FieldLocation = iota
	FieldLocationInterface
	FieldLocationSubscription
	FieldLocationScalar
)

// parseFieldDirectives parses a directive list into FieldDirectives. Parse
// failures produce diagnostics at the usage position and parsing continues
// with defaults, so downstream passes always see a well-formed record.
func (c *compilation) parseFieldDirectives(dirs language.DirectiveList, loc FieldLocation) FieldDirectives {
	out := defaultFieldDirectives()

	for _, dir := range dirs {
		switch dir.Name {
		case juniperDirectiveName:
			c.parseJuniperUsage(&out, dir, loc)
		case "deprecated":
			out.Deprecated = c.parseDeprecated(dir)
		default:
			// Engine-level directives pass through untouched.
		}
	}
	return out
}

func (c *compilation) parseJuniperUsage(out *FieldDirectives, dir *language.Directive, loc FieldLocation) {
	for _, arg := range dir.Arguments {
		switch arg.Name {
		case argOwnership:
			raw, ok := c.stringValue(arg.Value, arg.Position, arg.Name)
			if !ok {
				continue
			}
			switch raw {
			case "borrowed":
				out.Ownership = OwnershipBorrowed
			case "owned":
				out.Ownership = OwnershipOwned
			case "as_ref":
				out.Ownership = OwnershipAsRef
			default:
				c.bag.add(arg.Position, ErrInvalidOwnershipValue, fmt.Sprintf("got %q", raw))
			}
		case argInfallible:
			if v, ok := c.boolValue(arg.Value, arg.Position, arg.Name); ok {
				out.Infallible = v
			}
		case argAsync:
			if v, ok := c.boolValue(arg.Value, arg.Position, arg.Name); ok {
				out.Async = v
			}
		case argStreamType:
			if arg.Value.Kind == language.NullValue {
				continue
			}
			if v, ok := c.stringValue(arg.Value, arg.Position, arg.Name); ok {
				out.StreamType = &v
			}
		case argStreamItemInfallible:
			if v, ok := c.boolValue(arg.Value, arg.Position, arg.Name); ok {
				out.StreamItemInfallible = &v
			}
		case argWithTimeZone:
			// Consumed by the symbol-table pre-pass on the DateTime scalar
			// declaration; anywhere else it is misplaced.
			if loc != FieldLocationScalar {
				c.bag.add(arg.Position, ErrWithTimeZoneNotSupportedHere, "")
			}
		default:
			c.bag.add(arg.Position, ErrUnknownDirectiveArgument,
				fmt.Sprintf("%q; supported arguments are %s", arg.Name, strings.Join(juniperArgNames, ", ")))
		}
	}
}

func (c *compilation) parseDeprecated(dir *language.Directive) *Deprecation {
	dep := &Deprecation{Reason: "No longer supported"}
	for _, arg := range dir.Arguments {
		if arg.Name != "reason" {
			continue
		}
		if v, ok := c.stringValue(arg.Value, arg.Position, arg.Name); ok {
			dep.Reason = v
		}
	}
	return dep
}

func (c *compilation) stringValue(v *language.Value, pos *language.Position, argName string) (string, bool) {
	if v.Kind != language.StringValue && v.Kind != language.BlockValue {
		c.bag.add(pos, ErrInvalidJuniperDirective, fmt.Sprintf("`%s` argument must be a String", argName))
		return "", false
	}
	return v.Raw, true
}

func (c *compilation) boolValue(v *language.Value, pos *language.Position, argName string) (bool, bool) {
	if v.Kind != language.BooleanValue {
		c.bag.add(pos, ErrInvalidJuniperDirective, fmt.Sprintf("`%s` argument must be a Boolean", argName))
		return false, false
	}
	return v.Raw == "true", true
}

// validateJuniperDirectiveDefinition checks the user's declaration of the
// @juniper grammar itself: the locations must be exactly
// FIELD_DEFINITION | SCALAR, and every argument must be present with its
// declared type and default.
func (c *compilation) validateJuniperDirectiveDefinition(node *language.DirectiveDefinition) {
	fieldLocation := false
	scalarLocation := false
	for _, loc := range node.Locations {
		switch loc {
		case language.LocationFieldDefinition:
			fieldLocation = true
		case language.LocationScalar:
			scalarLocation = true
		default:
			c.bag.add(node.Position, ErrInvalidJuniperDirective,
				fmt.Sprintf("invalid location `%s`; location must be `FIELD_DEFINITION | SCALAR`", string(loc)))
		}
	}
	if !fieldLocation {
		c.bag.add(node.Position, ErrInvalidJuniperDirective,
			"missing `FIELD_DEFINITION` directive location")
	}
	if !scalarLocation {
		c.bag.add(node.Position, ErrInvalidJuniperDirective,
			"missing `SCALAR` directive location")
	}

	seen := make(map[string]bool, len(node.Arguments))
	for _, arg := range node.Arguments {
		seen[arg.Name] = true
		switch arg.Name {
		case argOwnership:
			c.checkDirectiveArg(arg, "String", language.StringValue, "borrowed")
		case argInfallible:
			c.checkDirectiveArg(arg, "Boolean", language.BooleanValue, "false")
		case argWithTimeZone:
			c.checkDirectiveArg(arg, "Boolean", language.BooleanValue, "true")
		case argAsync:
			c.checkDirectiveArg(arg, "Boolean", language.BooleanValue, "false")
		case argStreamItemInfallible:
			c.checkDirectiveArg(arg, "Boolean", language.BooleanValue, "true")
		case argStreamType:
			c.checkDirectiveArg(arg, "String", language.NullValue, "null")
		default:
			c.bag.add(arg.Position, ErrUnknownDirectiveArgument,
				fmt.Sprintf("%q; supported arguments are %s", arg.Name, strings.Join(juniperArgNames, ", ")))
		}
	}
	for _, name := range juniperArgNames {
		if !seen[name] {
			c.bag.add(node.Position, ErrInvalidJuniperDirective,
				fmt.Sprintf("missing argument `%s`", name))
		}
	}
}

func (c *compilation) checkDirectiveArg(arg *language.ArgumentDefinition, wantType string, wantKind language.ValueKind, wantRaw string) {
	if arg.Type == nil || arg.Type.NamedType != wantType || arg.Type.NonNull {
		c.bag.add(arg.Position, ErrInvalidJuniperDirective,
			fmt.Sprintf("`%s` argument must have type `%s`", arg.Name, wantType))
	}
	for range arg.Directives {
		c.bag.add(arg.Position, ErrInvalidJuniperDirective,
			fmt.Sprintf("`%s` argument doesn't support directives", arg.Name))
	}
	if arg.DefaultValue == nil {
		c.bag.add(arg.Position, ErrInvalidJuniperDirective,
			fmt.Sprintf("missing default value for `%s` argument; must be `%s`", arg.Name, wantRaw))
		return
	}
	if arg.DefaultValue.Kind != wantKind || (wantKind != language.NullValue && arg.DefaultValue.Raw != wantRaw) {
		c.bag.add(arg.Position, ErrInvalidJuniperDirective,
			fmt.Sprintf("invalid default value for `%s` argument; must be `%s`, got `%s`", arg.Name, wantRaw, arg.DefaultValue.Raw))
	}
}
