// SPDX-License-Identifier: Apache-2.0

package athenafed

import (
	"bytes"
	"encoding/binary"

	flatbuffers "github.com/google/flatbuffers/go"
)

// headerType classifies the union header of an Arrow IPC Message flatbuffer.
// Values follow the MessageHeader union of the Arrow format.
type headerType byte

const (
	headerNone headerType = iota
	headerSchema
	headerDictionaryBatch
	headerRecordBatch
	headerTensor
	headerSparseTensor
)

// ipcMessage is a narrow peek into one size-prefixed Arrow IPC message
// frame: the union header type, the body length announced by the header,
// and the flatbuffer metadata region. This is not a general flatbuffer
// parser — it reads exactly the two Message fields the framing heuristics
// need and leaves schema and record-batch interpretation to the arrow IPC
// reader.
type ipcMessage struct {
	header     headerType
	bodyLength int64
	meta       []byte // flatbuffer bytes, excluding the 4-byte size prefix
}

// Message table field slots, per Arrow's Message.fbs:
// version=0, header_type=1, header=2, bodyLength=3, custom_metadata=4.
const (
	slotHeaderType = 4 + 2*1
	slotBodyLength = 4 + 2*3
)

// peekMessage reads the size-prefixed message frame at the start of buf.
// Any structural inconsistency — a truncated frame, a size prefix that
// exceeds the buffer, an out-of-range flatbuffer offset — yields a message
// with header type NONE, which callers treat the same way they treat an
// unrecognized header. This mirrors how a misaligned parse attempt on a
// buffer with a leading size prefix reads as NONE rather than failing hard,
// which is what makes the dual-framing retry possible.
func peekMessage(buf []byte) ipcMessage {
	none := ipcMessage{header: headerNone}
	if len(buf) < 8 {
		return none
	}
	metaLen := binary.LittleEndian.Uint32(buf[:4])
	if metaLen < 8 || uint64(metaLen) > uint64(len(buf)-4) {
		return none
	}
	fb := buf[4 : 4+metaLen]

	root := int64(flatbuffers.GetUOffsetT(fb))
	if root < 4 || root+4 > int64(len(fb)) {
		return none
	}
	vt := root - int64(flatbuffers.GetSOffsetT(fb[root:]))
	if vt < 0 || vt+4 > int64(len(fb)) {
		return none
	}
	vtLen := int64(flatbuffers.GetVOffsetT(fb[vt:]))
	if vtLen < 4 || vt+vtLen > int64(len(fb)) {
		return none
	}

	// fieldPos resolves a vtable slot to an absolute position in fb,
	// or 0 when the field is absent.
	fieldPos := func(slot int64) int64 {
		if slot+2 > vtLen {
			return 0
		}
		rel := int64(flatbuffers.GetVOffsetT(fb[vt+slot:]))
		if rel == 0 {
			return 0
		}
		return root + rel
	}

	msg := ipcMessage{meta: fb}
	if pos := fieldPos(slotHeaderType); pos > 0 && pos < int64(len(fb)) {
		ht := flatbuffers.GetByte(fb[pos:])
		if ht > byte(headerSparseTensor) {
			return none
		}
		msg.header = headerType(ht)
	}
	if pos := fieldPos(slotBodyLength); pos > 0 && pos+8 <= int64(len(fb)) {
		msg.bodyLength = flatbuffers.GetInt64(fb[pos:])
	}
	return msg
}

// peekSchemaMessage parses a schema message tolerating both historical
// framings: a first attempt at offset 0, and a retry after skipping the
// first 4 bytes when the attempt reads as NONE. Messages written by Arrow
// 0.15.0 and up carry a leading 4-byte size prefix that older encoders
// lacked.
func peekSchemaMessage(buf []byte) ipcMessage {
	msg := peekMessage(buf)
	if msg.header == headerNone && len(buf) > 4 {
		msg = peekMessage(buf[4:])
	}
	return msg
}

var streamEOS = []byte{0xff, 0xff, 0xff, 0xff, 0, 0, 0, 0}

// writeFrame appends one encapsulated message to an IPC stream being
// assembled: continuation marker, metadata size, metadata, then the body.
func writeFrame(w *bytes.Buffer, meta, body []byte) {
	w.Write(streamEOS[:4]) // continuation marker
	var size [4]byte
	binary.LittleEndian.PutUint32(size[:], uint32(len(meta)))
	w.Write(size[:])
	w.Write(meta)
	w.Write(body)
}
