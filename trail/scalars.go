package trail

import (
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/hanpama/graphbind/scalar"
)

// Decoders for the reserved scalars. Like the Decode functions in value.go
// these panic on malformed input; the wire representation of every reserved
// scalar is a string.

func DecodeDate(v Value) scalar.Date {
	d, err := scalar.ParseDate(DecodeString(v))
	if err != nil {
		panic("failed converting selection value: " + err.Error())
	}
	return d
}

// DecodeDateTime decodes the DateTime scalar in its with-time-zone form.
func DecodeDateTime(v Value) time.Time {
	t, err := time.Parse(time.RFC3339, DecodeString(v))
	if err != nil {
		panic("failed converting selection value: " + err.Error())
	}
	return t
}

// DecodeNaiveDateTime decodes the DateTime scalar declared with
// with_time_zone: false.
func DecodeNaiveDateTime(v Value) scalar.NaiveDateTime {
	t, err := scalar.ParseNaiveDateTime(DecodeString(v))
	if err != nil {
		panic("failed converting selection value: " + err.Error())
	}
	return t
}

func DecodeUUID(v Value) uuid.UUID {
	u, err := uuid.Parse(DecodeString(v))
	if err != nil {
		panic("failed converting selection value: " + err.Error())
	}
	return u
}

func DecodeURL(v Value) *url.URL {
	u, err := url.Parse(DecodeString(v))
	if err != nil {
		panic("failed converting selection value: " + err.Error())
	}
	return u
}
