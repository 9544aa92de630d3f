package athenafed

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Size-prefixed schema message (Arrow 0.15.0 convention, leading 4-byte
// prefix) and its older counterpart without the prefix. Same payloads as the
// package-level codec tests.
const (
	prefixedSchemaB64 = "/////0ABAAAQAAAAAAAKAA4ABgANAAgACgAAAAAAAwAQAAAAAAEKAAwAAAAIAAQACgAAAAgAAABEAAAAAQAAAAwAAAAIAAwACAAEAAgAAAAIAAAAFAAAAAoAAABsb2dfc3RyZWFtAAANAAAAcGFydGl0aW9uQ29scwAAAAMAAACMAAAAOAAAAAQAAACS////FAAAABQAAAAUAAAAAAAFARAAAAAAAAAAAAAAAID///8HAAAAbWVzc2FnZQDC////FAAAABQAAAAcAAAAAAACASAAAAAAAAAAAAAAAAgADAAIAAcACAAAAAAAAAFAAAAABAAAAHRpbWUAABIAGAAUABMAEgAMAAAACAAEABIAAAAUAAAAFAAAABgAAAAAAAUBFAAAAAAAAAAAAAAABAAEAAQAAAAKAAAAbG9nX3N0cmVhbQAAAAAAAA=="
	bareSchemaB64     = "PAEAABAAAAAAAAoADgAGAA0ACAAKAAAAAAADABAAAAAAAQoADAAAAAgABAAKAAAACAAAAEQAAAABAAAADAAAAAgADAAIAAQACAAAAAgAAAAUAAAACgAAAGxvZ19zdHJlYW0AAA0AAABwYXJ0aXRpb25Db2xzAAAAAwAAAIwAAAA4AAAABAAAAJL///8UAAAAFAAAABQAAAAAAAUBEAAAAAAAAAAAAAAAgP///wcAAABtZXNzYWdlAML///8UAAAAFAAAABwAAAAAAAIBIAAAAAAAAAAAAAAACAAMAAgABwAIAAAAAAAAAUAAAAAEAAAAdGltZQAAEgAYABQAEwASAAwAAAAIAAQAEgAAABQAAAAUAAAAGAAAAAAABQEUAAAAAAAAAAAAAAAEAAQABAAAAAoAAABsb2dfc3RyZWFtAAA="
)

func mustB64(t *testing.T, s string) []byte {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(s)
	require.NoError(t, err)
	return raw
}

func TestPeekMessageFraming(t *testing.T) {
	prefixed := mustB64(t, prefixedSchemaB64)
	bare := mustB64(t, bareSchemaB64)

	t.Run("bare_frame_parses_at_offset_zero", func(t *testing.T) {
		msg := peekMessage(bare)
		assert.Equal(t, headerSchema, msg.header)
	})

	t.Run("prefixed_frame_reads_as_none_at_offset_zero", func(t *testing.T) {
		// The leading size prefix misaligns a parse at offset 0. The result
		// must read as NONE so the caller retries, never as a bogus header.
		msg := peekMessage(prefixed)
		assert.Equal(t, headerNone, msg.header)
	})

	t.Run("prefixed_frame_parses_after_skip", func(t *testing.T) {
		msg := peekMessage(prefixed[4:])
		assert.Equal(t, headerSchema, msg.header)
	})
}

func TestPeekSchemaMessage(t *testing.T) {
	for name, payload := range map[string]string{
		"prefixed": prefixedSchemaB64,
		"bare":     bareSchemaB64,
	} {
		t.Run(name, func(t *testing.T) {
			msg := peekSchemaMessage(mustB64(t, payload))
			assert.Equal(t, headerSchema, msg.header)
			assert.NotEmpty(t, msg.meta)
		})
	}
}

func TestPeekMessageMalformed(t *testing.T) {
	cases := map[string][]byte{
		"empty":              nil,
		"short":              {0x01, 0x02, 0x03},
		"zero_size":          {0, 0, 0, 0, 0, 0, 0, 0},
		"size_beyond_buffer": {0xff, 0x00, 0x00, 0x00, 1, 2, 3, 4},
		"garbage":            {0x10, 0x00, 0x00, 0x00, 0xde, 0xad, 0xbe, 0xef, 0xde, 0xad, 0xbe, 0xef, 0xde, 0xad, 0xbe, 0xef, 0xde, 0xad, 0xbe, 0xef},
	}
	for name, buf := range cases {
		t.Run(name, func(t *testing.T) {
			msg := peekMessage(buf)
			assert.Equal(t, headerNone, msg.header)
		})
	}
}
