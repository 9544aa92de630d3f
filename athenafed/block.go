// SPDX-License-Identifier: Apache-2.0

package athenafed

import (
	"bytes"
	"encoding/base64"
	"encoding/json"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/ipc"
)

// encodedBlock is the wire carrier of a Block: the original base64 strings
// and correlation id, kept verbatim for byte-identical re-serialization.
type encodedBlock struct {
	Schema  string `json:"schema"`
	Records string `json:"records"`
	AID     string `json:"aId"`
}

// Block is a columnar table carried on the wire as two independently framed
// binary messages inside a JSON object. The decoded record batch and the
// encoded triple are produced together exactly once during deserialization
// and never independently mutated: serializing a Block always emits the
// original strings, never a re-encoding of the in-memory batch.
type Block struct {
	batch      arrow.RecordBatch
	serialized encodedBlock
}

// RecordBatch returns the decoded columnar table. The batch is owned by the
// Block; call [Block.Release] when done with the Block as a whole.
func (b *Block) RecordBatch() arrow.RecordBatch { return b.batch }

// NumRows returns the decoded row count.
func (b *Block) NumRows() int64 { return b.batch.NumRows() }

// NumColumns returns the decoded column count.
func (b *Block) NumColumns() int64 { return b.batch.NumCols() }

// AID returns the correlation identifier carried alongside the binary
// messages.
func (b *Block) AID() string { return b.serialized.AID }

// Release releases the decoded record batch.
func (b *Block) Release() {
	if b.batch != nil {
		b.batch.Release()
		b.batch = nil
	}
}

// errBlockDecode is the single coarse error for all Block framing failures.
// The wire protocol does not distinguish sub-causes.
func errBlockDecode(cause error) error {
	return &EncodingError{Message: "missing or invalid schema/records field in Block", Cause: cause}
}

// MarshalJSON emits the cached schema/records/aId triple verbatim. The
// decoded batch is never re-serialized, so unknown binary padding survives
// a round trip byte for byte.
func (b *Block) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.serialized)
}

// UnmarshalJSON reconstructs the columnar table from the two framed binary
// messages.
//
// The records message always carries a leading 4-byte size prefix, which is
// stripped unconditionally before the frame header is read. The header must
// be a RecordBatch; its bodyLength field gives the size of the trailing raw
// data region, taken as the last bodyLength bytes of the full records
// buffer. The schema message is parsed with the dual-framing retry (see
// [Schema]); its header must be a Schema. The two rules are asymmetric on
// purpose and encode two different historical wire quirks.
func (b *Block) UnmarshalJSON(data []byte) error {
	var enc encodedBlock
	if err := json.Unmarshal(data, &enc); err != nil {
		return errBlockDecode(err)
	}
	if enc.Schema == "" || enc.Records == "" {
		return errBlockDecode(nil)
	}

	schemaRaw, err := base64.StdEncoding.DecodeString(enc.Schema)
	if err != nil {
		return errBlockDecode(err)
	}
	recordsRaw, err := base64.StdEncoding.DecodeString(enc.Records)
	if err != nil {
		return errBlockDecode(err)
	}
	if len(recordsRaw) < 4 {
		return errBlockDecode(nil)
	}

	recordsMsg := peekMessage(recordsRaw[4:])
	if recordsMsg.header != headerRecordBatch {
		return errBlockDecode(nil)
	}
	if recordsMsg.bodyLength < 0 || recordsMsg.bodyLength > int64(len(recordsRaw)) {
		return errBlockDecode(nil)
	}
	// Metadata always precedes the body and the body always ends at the
	// buffer's end, so the body offset is computed from the tail of the
	// original buffer, not from the frame after the 4-byte skip.
	body := recordsRaw[int64(len(recordsRaw))-recordsMsg.bodyLength:]

	schemaMsg := peekSchemaMessage(schemaRaw)
	if schemaMsg.header != headerSchema {
		return errBlockDecode(nil)
	}

	batch, err := readRecordBatch(schemaMsg, recordsMsg, body)
	if err != nil {
		return errBlockDecode(err)
	}

	b.batch = batch
	b.serialized = enc
	return nil
}

// readRecordBatch replays the schema metadata, record-batch metadata and
// extracted body as a canonical IPC stream and reads the single batch back.
func readRecordBatch(schemaMsg, recordsMsg ipcMessage, body []byte) (arrow.RecordBatch, error) {
	var stream bytes.Buffer
	writeFrame(&stream, schemaMsg.meta, nil)
	writeFrame(&stream, recordsMsg.meta, body)
	stream.Write(streamEOS)

	r, err := ipc.NewReader(bytes.NewReader(stream.Bytes()))
	if err != nil {
		return nil, err
	}
	defer r.Release()

	if !r.Next() {
		if err := r.Err(); err != nil {
			return nil, err
		}
		return nil, &EncodingError{Message: "record batch stream ended before a batch"}
	}
	batch := r.RecordBatch()
	batch.Retain() // keep batch alive after reader is released

	for r.Next() {
		// drain to EOS
	}
	if err := r.Err(); err != nil {
		batch.Release()
		return nil, err
	}
	return batch, nil
}
