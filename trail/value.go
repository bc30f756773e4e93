package trail

import "fmt"

// Value is one node of an argument or input literal as observed through the
// engine's lookahead. Generated decoders switch on the concrete type.
//
// Decode failures panic: by the time a selection value reaches a generated
// decoder the compiler has already verified the schema side, so a shape
// mismatch is either an engine bug or corrupted request data.
type Value interface {
	valueKind() string
}

type NullValue struct{}

type StringValue string

type IntValue int32

type FloatValue float64

type BoolValue bool

// EnumValue holds the original GraphQL enum value name.
type EnumValue string

type ListValue []Value

type ObjectValue []ObjectField

type ObjectField struct {
	Key   string
	Value Value
}

func (NullValue) valueKind() string   { return "null" }
func (StringValue) valueKind() string { return "string" }
func (IntValue) valueKind() string    { return "int" }
func (FloatValue) valueKind() string  { return "float" }
func (BoolValue) valueKind() string   { return "boolean" }
func (EnumValue) valueKind() string   { return "enum" }
func (ListValue) valueKind() string   { return "list" }
func (ObjectValue) valueKind() string { return "object" }

func IsNull(v Value) bool {
	_, ok := v.(NullValue)
	return v == nil || ok
}

func DecodeString(v Value) string {
	s, ok := v.(StringValue)
	if !ok {
		panic(decodeError("string", v))
	}
	return string(s)
}

func DecodeInt(v Value) int32 {
	i, ok := v.(IntValue)
	if !ok {
		panic(decodeError("int", v))
	}
	return int32(i)
}

func DecodeFloat(v Value) float64 {
	f, ok := v.(FloatValue)
	if !ok {
		panic(decodeError("float", v))
	}
	return float64(f)
}

func DecodeBool(v Value) bool {
	b, ok := v.(BoolValue)
	if !ok {
		panic(decodeError("boolean", v))
	}
	return bool(b)
}

func DecodeID(v Value) ID {
	return ID(DecodeString(v))
}

// DecodeNullable decodes a nullable value, returning nil for GraphQL null.
func DecodeNullable[T any](v Value, decode func(Value) T) *T {
	if IsNull(v) {
		return nil
	}
	out := decode(v)
	return &out
}

// DecodeList decodes a list value element-wise.
func DecodeList[T any](v Value, decode func(Value) T) []T {
	lv, ok := v.(ListValue)
	if !ok {
		panic(decodeError("list", v))
	}
	out := make([]T, 0, len(lv))
	for _, item := range lv {
		out = append(out, decode(item))
	}
	return out
}

func decodeError(want string, got Value) string {
	if got == nil {
		return fmt.Sprintf("failed converting selection value: expected %s, got nothing", want)
	}
	return fmt.Sprintf("failed converting selection value: expected %s, got %s", want, got.valueKind())
}
