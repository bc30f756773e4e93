package compiler_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/hanpama/graphbind/internal/compiler"
	"github.com/hanpama/graphbind/internal/language"
)

func mustCompile(t *testing.T, source string) *compiler.Artifact {
	t.Helper()
	doc, err := language.ParseSchema("schema.graphql", source)
	require.NoError(t, err)
	art, err := compiler.Compile(doc)
	require.NoError(t, err)
	return art
}

func compileErrors(t *testing.T, source string) compiler.ErrorList {
	t.Helper()
	doc, err := language.ParseSchema("schema.graphql", source)
	require.NoError(t, err)
	_, err = compiler.Compile(doc)
	require.Error(t, err)
	var list compiler.ErrorList
	require.ErrorAs(t, err, &list)
	return list
}

func TestCompileBasicSchema(t *testing.T) {
	art := mustCompile(t, `
schema {
  query: Query
  mutation: Mutation
}

type Query {
  viewer: User
  search(term: String!, limit: Int = 20): [User!]!
}

type Mutation {
  rename(id: ID!, name: String!): User!
}

interface Node {
  id: ID!
}

type User implements Node {
  id: ID!
  name: String!
}
`)

	require.Equal(t, &compiler.SchemaRoot{Query: "Query", Mutation: "Mutation"}, art.SchemaRoot)
	require.Len(t, art.Objects, 3)
	require.Nil(t, art.Subscription)

	query := art.Objects[0]
	require.Equal(t, "Query", query.Name)
	require.Len(t, query.Fields, 2)

	viewer := query.Fields[0]
	require.Equal(t, "viewer", viewer.Name)
	require.Equal(t, "FieldViewer", viewer.MethodName())
	require.Equal(t, compiler.KindNullable, viewer.Type.Kind)
	require.Equal(t, compiler.KindObject, viewer.Type.Elem.Kind)
	require.True(t, viewer.Type.IsComposite())

	search := query.Fields[1]
	require.Equal(t, compiler.KindList, search.Type.Kind)
	require.Len(t, search.Args, 2)
	require.Nil(t, search.Args[0].Default)
	require.Equal(t, compiler.KindScalar, search.Args[0].Type.Kind)

	user := art.Objects[2]
	require.Equal(t, []string{"Node"}, user.Implements)

	require.Len(t, art.Interfaces, 1)
	require.Equal(t, []string{"User"}, art.Interfaces[0].Implementors)
}

func TestDefaultValueStripsNullability(t *testing.T) {
	art := mustCompile(t, `
schema {
  query: Query
}

type Query {
  search(limit: Int = 20, term: String, all: Boolean = null): Boolean!
}
`)

	args := art.Objects[0].Fields[0].Args

	limit := args[0]
	require.NotNil(t, limit.Default)
	require.Equal(t, compiler.KindNullable, limit.Wire.Kind)
	require.Equal(t, compiler.KindScalar, limit.Type.Kind)

	term := args[1]
	require.Nil(t, term.Default)
	require.Equal(t, compiler.KindNullable, term.Type.Kind)

	// A literal null default adds nothing over the absent-argument behavior.
	all := args[2]
	require.Nil(t, all.Default)
	require.Equal(t, compiler.KindNullable, all.Type.Kind)
}

func TestOwnershipTransforms(t *testing.T) {
	art := mustCompile(t, `
schema {
  query: Query
}

type Query {
  borrowed: [Int!]!
  owned: [Int!]! @juniper(ownership: "owned")
  asRefList: [Int!]! @juniper(ownership: "as_ref")
  asRefNullable: Int @juniper(ownership: "as_ref")
}
`)

	fields := art.Objects[0].Fields

	require.Equal(t, compiler.OwnershipBorrowed, fields[0].Directives.Ownership)
	require.Equal(t, compiler.KindScalar, fields[0].Type.Elem.Kind)

	require.Equal(t, compiler.OwnershipOwned, fields[1].Directives.Ownership)

	asRefList := fields[2].Type
	require.Equal(t, compiler.KindList, asRefList.Kind)
	require.Equal(t, compiler.KindRef, asRefList.Elem.Kind)

	asRefNullable := fields[3].Type
	require.Equal(t, compiler.KindNullable, asRefNullable.Kind)
	require.Equal(t, compiler.KindRef, asRefNullable.Elem.Kind)
}

func TestReservedScalars(t *testing.T) {
	art := mustCompile(t, `
schema {
  query: Query
}

scalar Date
scalar DateTime @juniper(with_time_zone: false)
scalar Uuid
scalar Url

type Query {
  birthday: Date!
  createdAt: DateTime!
  id: Uuid!
  homepage: Url!
}
`)

	// Reserved scalars bind to fixed Go types and never become newtypes.
	require.Empty(t, art.Scalars)

	fields := art.Objects[0].Fields
	require.Equal(t, "Date", fields[0].Type.Go.Name)
	require.Equal(t, "NaiveDateTime", fields[1].Type.Go.Name)
	require.Equal(t, "UUID", fields[2].Type.Go.Name)
	require.Equal(t, "URL", fields[3].Type.Go.Name)
	require.True(t, fields[3].Type.Go.Ptr)
}

func TestDateTimeDefaultsToTimeZone(t *testing.T) {
	art := mustCompile(t, `
schema {
  query: Query
}

scalar DateTime

type Query {
  createdAt: DateTime!
}
`)
	goType := art.Objects[0].Fields[0].Type.Go
	require.Equal(t, "time", goType.Path)
	require.Equal(t, "Time", goType.Name)
}

func TestSubscriptionRoot(t *testing.T) {
	art := mustCompile(t, `
schema {
  query: Query
  subscription: Subscription
}

type Query {
  ping: Boolean!
}

type Subscription {
  events: Event! @juniper(ownership: "owned")
  raw: Event! @juniper(ownership: "owned", stream_type: "<-chan Event", stream_item_infallible: false)
}

type Event {
  kind: String!
}
`)

	require.NotNil(t, art.Subscription)
	require.Equal(t, "Subscription", art.Subscription.Name)
	// The subscription root is not an object, but it still gets a trail.
	for _, o := range art.Objects {
		require.NotEqual(t, "Subscription", o.Name)
	}
	var subTrail *compiler.Trail
	for i := range art.Trails {
		if art.Trails[i].Name == "Subscription" {
			subTrail = &art.Trails[i]
		}
	}
	require.NotNil(t, subTrail)
	require.Equal(t, []compiler.TrailField{
		{Name: "events", TrailType: "Event"},
		{Name: "raw", TrailType: "Event"},
	}, subTrail.Fields)

	raw := art.Subscription.Fields[1]
	require.NotNil(t, raw.Directives.StreamType)
	require.Equal(t, "<-chan Event", *raw.Directives.StreamType)
	require.NotNil(t, raw.Directives.StreamItemInfallible)
	require.False(t, *raw.Directives.StreamItemInfallible)
}

func TestEnumsAndDeprecation(t *testing.T) {
	art := mustCompile(t, `
schema {
  query: Query
}

type Query {
  color: Color!
  legacy: String! @deprecated(reason: "use color")
}

enum Color {
  RED
  GREEN_ISH @deprecated
}
`)

	require.Len(t, art.Enums, 1)
	color := art.Enums[0]
	require.Equal(t, "RED", color.Values[0].Name)
	require.Nil(t, color.Values[0].Deprecated)
	require.NotNil(t, color.Values[1].Deprecated)
	require.Equal(t, "No longer supported", color.Values[1].Deprecated.Reason)

	legacy := art.Objects[0].Fields[1]
	require.NotNil(t, legacy.Directives.Deprecated)
	require.Equal(t, "use color", legacy.Directives.Deprecated.Reason)
}

func TestInputObjects(t *testing.T) {
	art := mustCompile(t, `
schema {
  query: Query
}

type Query {
  create(input: NewPost!): Boolean!
}

input NewPost {
  title: String!
  tags: [String!]
}
`)

	require.Len(t, art.InputObjects, 1)
	post := art.InputObjects[0]
	require.Equal(t, "NewPost", post.Name)
	require.Len(t, post.Fields, 2)
	require.Equal(t, compiler.KindScalar, post.Fields[0].Type.Kind)
	require.Equal(t, compiler.KindNullable, post.Fields[1].Type.Kind)
}

func TestTrailGeneration(t *testing.T) {
	art := mustCompile(t, `
schema {
  query: Query
}

type Query {
  user: User!
}

type User {
  id: ID!
  pet: Pet
}

type Pet {
  name: String!
}

interface Named {
  name: String!
}

union Actor = User | Pet
`)

	want := []compiler.Trail{
		{Name: "Query", Fields: []compiler.TrailField{{Name: "user", TrailType: "User"}}},
		{Name: "User", Fields: []compiler.TrailField{{Name: "id"}, {Name: "pet", TrailType: "Pet"}}},
		{Name: "Pet", Fields: []compiler.TrailField{{Name: "name"}}},
		{Name: "Named", Fields: []compiler.TrailField{{Name: "name"}}},
		{Name: "Actor"},
	}
	if diff := cmp.Diff(want, art.Trails); diff != "" {
		t.Errorf("trail mismatch (-expected +got):\n%s", diff)
	}
}

func TestBadSchemas(t *testing.T) {
	type testCase struct {
		name    string
		source  string
		wantErr string
	}

	for _, tc := range []testCase{
		{
			name:    "missing_schema_block",
			source:  `type Query { ping: Boolean! }`,
			wantErr: "query root",
		},
		{
			name: "schema_without_query",
			source: `
schema {
  mutation: Mutation
}
type Mutation { noop: Boolean! }
`,
			wantErr: "query root",
		},
		{
			name: "type_extension",
			source: `
schema { query: Query }
type Query { ping: Boolean! }
extend type Query { pong: Boolean! }
`,
			wantErr: "type extensions are not supported",
		},
		{
			name: "schema_extension",
			source: `
schema { query: Query }
type Query { ping: Boolean! }
extend schema { mutation: Mutation }
type Mutation { noop: Boolean! }
`,
			wantErr: "type extensions are not supported",
		},
		{
			name: "builtin_scalar_redeclared",
			source: `
schema { query: Query }
type Query { ping: Boolean! }
scalar String
`,
			wantErr: "built-in scalar",
		},
		{
			name: "reserved_scalar_with_description",
			source: `
schema { query: Query }
type Query { ping: Boolean! }
"A calendar date."
scalar Date
`,
			wantErr: "reserved scalars do not take a description",
		},
		{
			name: "subscription_implements_interface",
			source: `
schema {
  query: Query
  subscription: Subscription
}
type Query { ping: Boolean! }
interface Node { id: ID! }
type Subscription implements Node {
  id: ID! @juniper(ownership: "owned")
}
`,
			wantErr: "subscription root cannot implement interfaces",
		},
		{
			name: "unknown_directive_argument",
			source: `
schema { query: Query }
type Query {
  ping: Boolean! @juniper(onwership: "owned")
}
`,
			wantErr: "unknown argument",
		},
		{
			name: "stream_type_on_object_field",
			source: `
schema { query: Query }
type Query {
  ping: Boolean! @juniper(stream_type: "<-chan bool")
}
`,
			wantErr: "stream_type is only supported on subscription fields",
		},
		{
			name: "stream_item_infallible_on_object_field",
			source: `
schema { query: Query }
type Query {
  ping: Boolean! @juniper(stream_item_infallible: false)
}
`,
			wantErr: "stream_item_infallible is only supported on subscription fields",
		},
		{
			name: "with_time_zone_on_field",
			source: `
schema { query: Query }
type Query {
  ping: Boolean! @juniper(with_time_zone: false)
}
`,
			wantErr: "with_time_zone is only supported on the DateTime scalar",
		},
		{
			name: "subscription_field_not_owned",
			source: `
schema {
  query: Query
  subscription: Subscription
}
type Query { ping: Boolean! }
type Subscription {
  events: String!
}
`,
			wantErr: `ownership "owned"`,
		},
		{
			name: "invalid_stream_type_expression",
			source: `
schema {
  query: Query
  subscription: Subscription
}
type Query { ping: Boolean! }
type Subscription {
  events: String! @juniper(ownership: "owned", stream_type: "<-chan [not go")
}
`,
			wantErr: "not a valid Go type expression",
		},
		{
			name: "as_ref_on_named_type",
			source: `
schema { query: Query }
type Query {
  name: String! @juniper(ownership: "as_ref")
}
`,
			wantErr: `"as_ref" requires a list or nullable return type`,
		},
		{
			name: "invalid_ownership_value",
			source: `
schema { query: Query }
type Query {
  name: String! @juniper(ownership: "stolen")
}
`,
			wantErr: "ownership must be one of",
		},
		{
			name: "date_not_declared",
			source: `
schema { query: Query }
type Query { birthday: Date! }
`,
			wantErr: "Date scalar is used but never declared",
		},
		{
			name: "datetime_not_declared",
			source: `
schema { query: Query }
type Query { createdAt: DateTime! }
`,
			wantErr: "DateTime scalar is used but never declared",
		},
		{
			name: "uuid_not_declared",
			source: `
schema { query: Query }
type Query { id: Uuid! }
`,
			wantErr: "Uuid scalar is used but never declared",
		},
		{
			name: "url_not_declared",
			source: `
schema { query: Query }
type Query { homepage: Url! }
`,
			wantErr: "Url scalar is used but never declared",
		},
		{
			name: "default_on_nonnullable_argument",
			source: `
schema { query: Query }
type Query {
  search(limit: Int! = 20): Boolean!
}
`,
			wantErr: "non-nullable argument cannot have a default value",
		},
		{
			name: "integer_out_of_range",
			source: `
schema { query: Query }
type Query {
  search(limit: Int = 4294967296): Boolean!
}
`,
			wantErr: "does not fit in 32 bits",
		},
		{
			name: "float_out_of_range",
			source: `
schema { query: Query }
type Query {
  search(weight: Float = 1e999): Boolean!
}
`,
			wantErr: "float literal does not fit in 64 bits",
		},
		{
			name: "input_field_default_value",
			source: `
schema { query: Query }
type Query { ping: Boolean! }
input Filter {
  limit: Int = 20
}
`,
			wantErr: "input object fields do not support default values",
		},
		{
			name: "unknown_input_object_field_in_default",
			source: `
schema { query: Query }
type Query {
  search(filter: Filter = { nope: 1 }): Boolean!
}
input Filter {
  limit: Int
}
`,
			wantErr: "unknown field in input object default value",
		},
		{
			name: "snake_case_field",
			source: `
schema { query: Query }
type Query {
  user_name: String!
}
`,
			wantErr: "camelCase, not snake_case",
		},
		{
			name: "uppercase_uuid_scalar",
			source: `
schema { query: Query }
type Query { ping: Boolean! }
scalar UUID
`,
			wantErr: `must be named "Uuid"`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			errs := compileErrors(t, tc.source)
			require.Contains(t, errs.Error(), tc.wantErr)
		})
	}
}

func TestErrorsAreSortedAndDeduplicated(t *testing.T) {
	errs := compileErrors(t, `
schema { query: Query }
type Query {
  bad_name: String!
  worse_name: Date!
}
`)

	require.Len(t, errs, 3)
	for i := 1; i < len(errs); i++ {
		prev, cur := errs[i-1], errs[i]
		ordered := prev.Line < cur.Line ||
			(prev.Line == cur.Line && prev.Column <= cur.Column)
		require.True(t, ordered, "errors out of order: %v before %v", prev, cur)
	}
	seen := map[compiler.Error]bool{}
	for _, e := range errs {
		require.False(t, seen[e], "duplicate error: %v", e)
		seen[e] = true
	}
}

func TestJuniperDirectiveDefinitionValidation(t *testing.T) {
	valid := `
schema { query: Query }
type Query { ping: Boolean! }
directive @juniper(
  ownership: String = "borrowed"
  infallible: Boolean = false
  with_time_zone: Boolean = true
  async: Boolean = false
  stream_item_infallible: Boolean = true
  stream_type: String = null
) on FIELD_DEFINITION | SCALAR
`
	mustCompile(t, valid)

	type testCase struct {
		name    string
		source  string
		wantErr string
	}
	for _, tc := range []testCase{
		{
			name: "missing_argument",
			source: `
schema { query: Query }
type Query { ping: Boolean! }
directive @juniper(
  ownership: String = "borrowed"
) on FIELD_DEFINITION | SCALAR
`,
			wantErr: "missing argument `infallible`",
		},
		{
			name: "wrong_default",
			source: `
schema { query: Query }
type Query { ping: Boolean! }
directive @juniper(
  ownership: String = "owned"
  infallible: Boolean = false
  with_time_zone: Boolean = true
  async: Boolean = false
  stream_item_infallible: Boolean = true
  stream_type: String = null
) on FIELD_DEFINITION | SCALAR
`,
			wantErr: "invalid default value for `ownership`",
		},
		{
			name: "wrong_location",
			source: `
schema { query: Query }
type Query { ping: Boolean! }
directive @juniper(
  ownership: String = "borrowed"
  infallible: Boolean = false
  with_time_zone: Boolean = true
  async: Boolean = false
  stream_item_infallible: Boolean = true
  stream_type: String = null
) on FIELD_DEFINITION | OBJECT
`,
			wantErr: "missing `SCALAR` directive location",
		},
		{
			name: "unknown_argument",
			source: `
schema { query: Query }
type Query { ping: Boolean! }
directive @juniper(
  ownership: String = "borrowed"
  infallible: Boolean = false
  with_time_zone: Boolean = true
  async: Boolean = false
  stream_item_infallible: Boolean = true
  stream_type: String = null
  extra: Int = 1
) on FIELD_DEFINITION | SCALAR
`,
			wantErr: "unknown argument",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			errs := compileErrors(t, tc.source)
			require.Contains(t, errs.Error(), tc.wantErr)
		})
	}
}
