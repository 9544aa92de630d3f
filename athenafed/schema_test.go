package athenafed_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grundprinzip/athena-federation-go/athenafed"
)

func TestSchemaDualFraming(t *testing.T) {
	// The same logical schema in both historical encodings must decode to
	// the same typed schema.
	newer := athenafed.NewSchemaFromString(schemaB64New)
	older := athenafed.NewSchemaFromString(schemaB64Old)

	decodedNew := newer.GetSchema()
	require.NotNil(t, decodedNew)
	decodedOld := older.GetSchema()
	require.NotNil(t, decodedOld)

	var newNames, oldNames []string
	for _, f := range decodedNew.Fields() {
		newNames = append(newNames, f.Name)
	}
	for _, f := range decodedOld.Fields() {
		oldNames = append(oldNames, f.Name)
	}
	assert.Equal(t, newNames, oldNames)
	assert.Len(t, newNames, 3)
	assert.Contains(t, newNames, "log_stream")

	// The connector advertises its partition columns through schema
	// metadata.
	cols, ok := decodedNew.Metadata().GetValue("partitionCols")
	require.True(t, ok)
	assert.Equal(t, "log_stream", cols)
}

func TestSchemaDecodeIsMemoized(t *testing.T) {
	s := athenafed.NewSchemaFromString(schemaB64New)

	first := s.GetSchema()
	require.NotNil(t, first)
	second := s.GetSchema()

	// Second call is a cache hit: the exact same decoded value, not a
	// re-parse.
	assert.Same(t, first, second)
}

func TestSchemaSoftFailure(t *testing.T) {
	t.Run("invalid_base64", func(t *testing.T) {
		s := athenafed.NewSchemaFromString("not base64 at all!")
		assert.Nil(t, s.GetSchema())
	})

	t.Run("not_a_schema_message", func(t *testing.T) {
		s := athenafed.NewSchemaFromString(blockRecordsB64)
		assert.Nil(t, s.GetSchema())
	})

	t.Run("empty", func(t *testing.T) {
		s := athenafed.NewSchemaFromString("")
		assert.Nil(t, s.GetSchema())
	})
}

func TestSchemaJSONShape(t *testing.T) {
	s := athenafed.NewSchemaFromString(schemaB64New)
	require.NotNil(t, s.GetSchema())

	// Only the encoded string serializes; the decoded form is derived
	// state.
	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"schema": "`+schemaB64New+`"}`, string(out))

	var back athenafed.Schema
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, schemaB64New, back.Encoded)
	require.NotNil(t, back.GetSchema())
}
