// SPDX-License-Identifier: Apache-2.0

package athenafed

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"log/slog"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/ipc"
)

// Schema is a value container for a base64-encoded Arrow schema message.
// The encoded string is the source of truth and is what re-serializes; the
// decoded arrow schema is a cache computed on first access and never
// recomputed.
type Schema struct {
	Encoded string `json:"schema"`

	decoded *arrow.Schema
}

// NewSchemaFromString wraps an already-encoded schema string.
func NewSchemaFromString(encoded string) *Schema {
	return &Schema{Encoded: encoded}
}

// GetSchema returns the decoded Arrow schema, decoding the binary string
// representation on first call and returning the cached value afterwards.
// Unlike Block decoding, a schema that fails to decode is not a hard error:
// the failure is logged and nil is returned.
func (s *Schema) GetSchema() *arrow.Schema {
	if s.decoded != nil {
		return s.decoded
	}

	raw, err := base64.StdEncoding.DecodeString(s.Encoded)
	if err != nil {
		slog.Error("could not decode base64 schema string", "err", err)
		return nil
	}

	msg := peekSchemaMessage(raw)
	if msg.header != headerSchema {
		slog.Error("could not parse schema message", "header", int(msg.header))
		return nil
	}

	decoded, err := schemaFromMessage(msg)
	if err != nil {
		slog.Error("could not convert schema message", "err", err)
		return nil
	}
	s.decoded = decoded
	return s.decoded
}

// schemaFromMessage converts a peeked Schema message into an arrow.Schema by
// replaying it as a minimal one-message IPC stream.
func schemaFromMessage(msg ipcMessage) (*arrow.Schema, error) {
	var stream bytes.Buffer
	writeFrame(&stream, msg.meta, nil)
	stream.Write(streamEOS)

	r, err := ipc.NewReader(bytes.NewReader(stream.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("reading schema message: %w", err)
	}
	defer r.Release()
	return r.Schema(), nil
}
