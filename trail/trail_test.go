package trail_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hanpama/graphbind/trail"
)

func TestMapSelection(t *testing.T) {
	sel := trail.MapSelection{
		"user": {
			"id":  nil,
			"pet": {"name": nil},
		},
	}

	// Selected leaves carry an empty child selection; the generated trail
	// accessors test interface nil-ness, so these assertions do the same.
	user := sel.Child("user")
	require.True(t, user != nil)
	require.True(t, user.Child("id") != nil)
	require.True(t, user.Child("name") == nil)
	require.True(t, user.Child("pet").Child("name") != nil)
	require.True(t, sel.Child("missing") == nil)
}

func TestExecutorContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")
	exec := trail.NewExecutor(ctx, trail.MapSelection{"id": nil})
	require.Equal(t, "v", exec.Context().Value(key{}))
	require.True(t, exec.LookAhead().Child("id") != nil)

	empty := trail.NewExecutor(nil, nil)
	require.NotNil(t, empty.Context())
}

func TestDecodeLeaves(t *testing.T) {
	require.Equal(t, "hi", trail.DecodeString(trail.StringValue("hi")))
	require.Equal(t, int32(7), trail.DecodeInt(trail.IntValue(7)))
	require.Equal(t, 1.5, trail.DecodeFloat(trail.FloatValue(1.5)))
	require.True(t, trail.DecodeBool(trail.BoolValue(true)))
	require.Equal(t, trail.ID("42"), trail.DecodeID(trail.StringValue("42")))
}

func TestDecodeMismatchPanics(t *testing.T) {
	require.PanicsWithValue(t,
		"failed converting selection value: expected string, got int",
		func() { trail.DecodeString(trail.IntValue(1)) })
	require.Panics(t, func() { trail.DecodeInt(nil) })
	require.Panics(t, func() { trail.DecodeList(trail.StringValue("x"), trail.DecodeString) })
}

func TestDecodeNullable(t *testing.T) {
	require.Nil(t, trail.DecodeNullable(trail.NullValue{}, trail.DecodeString))
	require.Nil(t, trail.DecodeNullable(nil, trail.DecodeString))

	got := trail.DecodeNullable(trail.StringValue("x"), trail.DecodeString)
	require.NotNil(t, got)
	require.Equal(t, "x", *got)
}

func TestDecodeList(t *testing.T) {
	v := trail.ListValue{trail.IntValue(1), trail.IntValue(2)}
	require.Equal(t, []int32{1, 2}, trail.DecodeList(v, trail.DecodeInt))

	nested := trail.ListValue{trail.ListValue{trail.StringValue("a")}}
	got := trail.DecodeList(nested, func(v trail.Value) []string {
		return trail.DecodeList(v, trail.DecodeString)
	})
	require.Equal(t, [][]string{{"a"}}, got)
}

func TestDecodeReservedScalars(t *testing.T) {
	d := trail.DecodeDate(trail.StringValue("2020-02-29"))
	require.Equal(t, 2020, d.Year)
	require.Equal(t, 29, d.Day)

	ts := trail.DecodeDateTime(trail.StringValue("2020-02-29T12:30:00Z"))
	require.Equal(t, 12, ts.Hour())

	n := trail.DecodeNaiveDateTime(trail.StringValue("2020-02-29T12:30:00"))
	require.Equal(t, "2020-02-29T12:30:00", n.String())

	u := trail.DecodeUUID(trail.StringValue("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	require.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", u.String())

	link := trail.DecodeURL(trail.StringValue("https://example.com/a?b=c"))
	require.Equal(t, "example.com", link.Host)

	require.Panics(t, func() { trail.DecodeDate(trail.StringValue("not a date")) })
	require.Panics(t, func() { trail.DecodeUUID(trail.StringValue("nope")) })
}

func TestPtr(t *testing.T) {
	p := trail.Ptr(int32(5))
	require.Equal(t, int32(5), *p)
}
