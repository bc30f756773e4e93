package compiler

import (
	"fmt"
	"sort"

	language "github.com/hanpama/graphbind/internal/language"
)

// ErrorKind classifies a diagnostic. The kind participates in the stable
// ordering of reported errors, so new kinds go at the end.
type ErrorKind int

const (
	ErrNoQueryType ErrorKind = iota
	ErrTypeExtensionNotSupported
	ErrCannotDeclareBuiltinAsScalar
	ErrSpecialCaseScalarWithDescription
	ErrSubscriptionsCannotImplementInterfaces
	ErrInvalidJuniperDirective
	ErrUnknownDirectiveArgument
	ErrStreamTypeNotSupportedHere
	ErrStreamItemInfallibleNotSupportedHere
	ErrWithTimeZoneNotSupportedHere
	ErrSubscriptionFieldMustBeOwned
	ErrInvalidStreamReturnType
	ErrAsRefOwnershipForNamedType
	ErrInvalidOwnershipValue
	ErrDateScalarNotDefined
	ErrDateTimeScalarNotDefined
	ErrUuidScalarNotDefined
	ErrUrlScalarNotDefined
	ErrVariableDefaultValue
	ErrNonnullableFieldWithDefaultValue
	ErrIntegerOutOfRange
	ErrInputTypeFieldWithDefaultValue
	ErrUnknownInputObjectField
	ErrFieldNameInSnakeCase
	ErrUppercaseUuidScalar
	ErrFloatOutOfRange
)

func (k ErrorKind) String() string {
	switch k {
	case ErrNoQueryType:
		return "schema does not declare a query root"
	case ErrTypeExtensionNotSupported:
		return "type extensions are not supported"
	case ErrCannotDeclareBuiltinAsScalar:
		return "built-in scalar cannot be redeclared"
	case ErrSpecialCaseScalarWithDescription:
		return "reserved scalars do not take a description"
	case ErrSubscriptionsCannotImplementInterfaces:
		return "subscription root cannot implement interfaces"
	case ErrInvalidJuniperDirective:
		return "invalid @juniper directive"
	case ErrUnknownDirectiveArgument:
		return "unknown argument for @juniper directive"
	case ErrStreamTypeNotSupportedHere:
		return "stream_type is only supported on subscription fields"
	case ErrStreamItemInfallibleNotSupportedHere:
		return "stream_item_infallible is only supported on subscription fields"
	case ErrWithTimeZoneNotSupportedHere:
		return "with_time_zone is only supported on the DateTime scalar"
	case ErrSubscriptionFieldMustBeOwned:
		return `subscription fields must have ownership "owned"`
	case ErrInvalidStreamReturnType:
		return "stream_type is not a valid Go type expression"
	case ErrAsRefOwnershipForNamedType:
		return `ownership "as_ref" requires a list or nullable return type`
	case ErrInvalidOwnershipValue:
		return `ownership must be one of "owned", "borrowed" or "as_ref"`
	case ErrDateScalarNotDefined:
		return "the Date scalar is used but never declared"
	case ErrDateTimeScalarNotDefined:
		return "the DateTime scalar is used but never declared"
	case ErrUuidScalarNotDefined:
		return "the Uuid scalar is used but never declared"
	case ErrUrlScalarNotDefined:
		return "the Url scalar is used but never declared"
	case ErrVariableDefaultValue:
		return "default values must be literals, not variables"
	case ErrNonnullableFieldWithDefaultValue:
		return "non-nullable argument cannot have a default value"
	case ErrIntegerOutOfRange:
		return "integer literal does not fit in 32 bits"
	case ErrInputTypeFieldWithDefaultValue:
		return "input object fields do not support default values"
	case ErrUnknownInputObjectField:
		return "unknown field in input object default value"
	case ErrFieldNameInSnakeCase:
		return "field names must be camelCase, not snake_case"
	case ErrUppercaseUuidScalar:
		return `scalar must be named "Uuid", not "UUID"`
	case ErrFloatOutOfRange:
		return "float literal does not fit in 64 bits"
	default:
		return fmt.Sprintf("unknown error kind %d", int(k))
	}
}

// Error is one diagnostic tied to a position in the source document.
type Error struct {
	File   string
	Line   int
	Column int
	Kind   ErrorKind
	Detail string
}

func (e Error) Message() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Detail
}

// ErrorList is the deduplicated, position-then-kind-sorted diagnostic set a
// failed compile returns.
type ErrorList []Error

func (e ErrorList) Error() string {
	msg := "schema errors found:\n"
	for _, d := range e {
		line := "- " + d.Message()
		if d.File != "" || d.Line != 0 {
			line += fmt.Sprintf(" (%s:%d:%d)", d.File, d.Line, d.Column)
		}
		msg += line + "\n"
	}
	return msg
}

// errorBag accumulates diagnostics across all passes. It is owned by the
// compilation and never shared; ordering is applied at the checkpoints, so
// visitation order cannot leak into the reported set.
type errorBag struct {
	errs []Error
}

func (b *errorBag) add(pos *language.Position, kind ErrorKind, detail string) {
	e := Error{Kind: kind, Detail: detail}
	if pos != nil {
		e.Line = pos.Line
		e.Column = pos.Column
		if pos.Src != nil {
			e.File = pos.Src.Name
		}
	}
	b.errs = append(b.errs, e)
}

// checkpoint returns nil when the bag is empty, otherwise the sorted and
// deduplicated ErrorList. The bag keeps accumulating after a snapshot.
func (b *errorBag) checkpoint() error {
	if len(b.errs) == 0 {
		return nil
	}
	sorted := make([]Error, len(b.errs))
	copy(sorted, b.errs)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.Detail < b.Detail
	})
	out := sorted[:0]
	for i, e := range sorted {
		if i > 0 && e == sorted[i-1] {
			continue
		}
		out = append(out, e)
	}
	return ErrorList(out)
}
