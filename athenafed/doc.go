// SPDX-License-Identifier: Apache-2.0

// Package athenafed implements a Go client for the Athena federation
// metadata protocol, used to plan queries against a federated data source
// backed by an AWS Lambda connector.
//
// The protocol multiplexes several logical message kinds over a single JSON
// channel. Every request and response is a tagged JSON object whose "@type"
// field names the message variant. Columnar data travels inside that JSON as
// a [Block]: two independently framed, base64-encoded Arrow IPC messages (a
// schema message and a record batch message) plus a correlation identifier.
//
// # Pipeline
//
// A [Planner] drives the metadata pipeline in order:
//
//	ListSchemas    — enumerate schemas in a catalog
//	ListTables     — enumerate tables in a schema
//	GetTable       — fetch a table's column schema
//	GetTableLayout — fetch the table's partition layout
//	GetSplits      — fetch the units of work to read, paginated by a
//	                 continuation token
//
// Each call performs exactly one synchronous round trip through a
// [Transport]. The stock transport is [LambdaInvoker], which invokes the
// connector Lambda function with the serialized request as its payload.
//
// # Wire framing
//
// The embedded binary messages predate a framing change in Arrow 0.15.0:
// newer encoders emit a leading 4-byte size prefix that older encoders
// omit. The record batch message is always parsed after stripping its first
// 4 bytes, while the schema message is parsed twice — first at offset 0 and
// again after a 4-byte skip if the first attempt yields no recognizable
// header. Both rules are deliberate and must not be unified; they encode
// two distinct historical wire quirks.
//
// The record batch body is not located by the frame header alone. The
// header's bodyLength field gives the size of the trailing raw data region,
// and the body is taken as the last bodyLength bytes of the full records
// buffer. Flatbuffer metadata always precedes the body, and the body always
// ends at the buffer's end.
//
// Decoded values are caches, never sources of truth: a [Block] re-serializes
// its original base64 triple byte for byte, and a [Schema] memoizes its
// decoded Arrow schema on first access.
package athenafed
