// SPDX-License-Identifier: Apache-2.0

package athenafed

import "encoding/json"

// Wire discriminants for the envelope variants. Each value doubles as the
// variant's "@type" tag on the wire.
const (
	TagListSchemasRequest     = "ListSchemasRequest"
	TagListSchemasResponse    = "ListSchemasResponse"
	TagListTablesRequest      = "ListTablesRequest"
	TagListTablesResponse     = "ListTablesResponse"
	TagGetTableRequest        = "GetTableRequest"
	TagGetTableResponse       = "GetTableResponse"
	TagGetTableLayoutRequest  = "GetTableLayoutRequest"
	TagGetTableLayoutResponse = "GetTableLayoutResponse"
	TagGetSplitsRequest       = "GetSplitsRequest"
	TagGetSplitsResponse      = "GetSplitsResponse"
	TagReadRecordsRequest     = "ReadRecordsRequest"
	TagReadRecordsResponse    = "ReadRecordsResponse"
)

// ReadRecordsRequestType is the requestType label carried by record read
// requests, which predate the "@type" discriminant.
const ReadRecordsRequestType = "READ_RECORDS"

// Block size limits applied to record read requests, matching the connector
// SDK defaults.
const (
	DefaultMaxBlockSize       = 16000000
	DefaultMaxInlineBlockSize = 5242880
)

// Message is implemented by every envelope request and response variant. The
// discriminant accessors come from the embedded typeTag; variantTag is
// implemented once per variant and returns its fixed discriminant constant.
type Message interface {
	variantTag() string
	tag() string
	setTag(string)
}

// typeTag carries the "@type" wire discriminant and is embedded in every
// envelope variant.
type typeTag struct {
	Type string `json:"@type"`
}

func (t *typeTag) tag() string     { return t.Type }
func (t *typeTag) setTag(v string) { t.Type = v }

// MarshalEnvelope serializes an envelope message. The "@type" discriminant
// is populated from the variant's fixed tag when the caller has not set it
// explicitly, so it is always emitted on the wire.
func MarshalEnvelope(m Message) ([]byte, error) {
	if m.tag() == "" {
		m.setTag(m.variantTag())
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, &EncodingError{Message: "encoding " + m.variantTag(), Cause: err}
	}
	return data, nil
}

// UnmarshalEnvelope deserializes an envelope message into the concrete
// variant the caller expects. The discriminant is read defensively: a sender
// that omits "@type" gets the variant's default substituted rather than a
// decode failure. Unknown fields are ignored for forward compatibility;
// required fields that are absent fail with a FieldMismatchError.
func UnmarshalEnvelope(data []byte, m Message) error {
	if err := json.Unmarshal(data, m); err != nil {
		return &EncodingError{Message: "decoding " + m.variantTag(), Cause: err}
	}
	if m.tag() == "" {
		m.setTag(m.variantTag())
	}
	if v, ok := m.(interface{ requiredFields() []string }); ok {
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(data, &probe); err != nil {
			return &EncodingError{Message: "decoding " + m.variantTag(), Cause: err}
		}
		for _, f := range v.requiredFields() {
			if _, present := probe[f]; !present {
				return &FieldMismatchError{Variant: m.variantTag(), Field: f}
			}
		}
	}
	return nil
}

// ListSchemasRequest asks the connector for the schema names in a catalog.
type ListSchemasRequest struct {
	typeTag
	Identity    FederatedIdentity `json:"identity"`
	QueryID     string            `json:"queryId"`
	CatalogName string            `json:"catalogName"`
}

// NewListSchemasRequest builds a schema listing request with a default
// identity.
func NewListSchemasRequest(queryID, catalogName string) *ListSchemasRequest {
	return &ListSchemasRequest{
		typeTag:     typeTag{Type: TagListSchemasRequest},
		Identity:    DefaultIdentity(),
		QueryID:     queryID,
		CatalogName: catalogName,
	}
}

func (*ListSchemasRequest) variantTag() string { return TagListSchemasRequest }

// ListSchemasResponse carries the schema names of a catalog.
type ListSchemasResponse struct {
	typeTag
	CatalogName string   `json:"catalogName"`
	RequestType string   `json:"requestType"`
	Schemas     []string `json:"schemas"`
}

func (*ListSchemasResponse) variantTag() string { return TagListSchemasResponse }

func (*ListSchemasResponse) requiredFields() []string {
	return []string{"catalogName", "schemas"}
}

// ListTablesRequest asks the connector for the tables in one schema.
type ListTablesRequest struct {
	typeTag
	Identity    FederatedIdentity `json:"identity"`
	QueryID     string            `json:"queryId"`
	CatalogName string            `json:"catalogName"`
	SchemaName  string            `json:"schemaName"`
}

// NewListTablesRequest builds a table listing request with a default
// identity.
func NewListTablesRequest(queryID, catalogName, schemaName string) *ListTablesRequest {
	return &ListTablesRequest{
		typeTag:     typeTag{Type: TagListTablesRequest},
		Identity:    DefaultIdentity(),
		QueryID:     queryID,
		CatalogName: catalogName,
		SchemaName:  schemaName,
	}
}

func (*ListTablesRequest) variantTag() string { return TagListTablesRequest }

// ListTablesResponse carries the table names of a schema.
type ListTablesResponse struct {
	typeTag
	CatalogName string      `json:"catalogName"`
	Tables      []TableName `json:"tables"`
	RequestType string      `json:"requestType"`
}

func (*ListTablesResponse) variantTag() string { return TagListTablesResponse }

func (*ListTablesResponse) requiredFields() []string {
	return []string{"catalogName", "tables"}
}

// GetTableRequest asks the connector for one table's column schema.
type GetTableRequest struct {
	typeTag
	Identity    FederatedIdentity `json:"identity"`
	QueryID     string            `json:"queryId"`
	CatalogName string            `json:"catalogName"`
	TableName   TableName         `json:"tableName"`
}

// NewGetTableRequest builds a table lookup request with a default identity.
func NewGetTableRequest(queryID, catalogName, schemaName, tableName string) *GetTableRequest {
	return &GetTableRequest{
		typeTag:     typeTag{Type: TagGetTableRequest},
		Identity:    DefaultIdentity(),
		QueryID:     queryID,
		CatalogName: catalogName,
		TableName:   NewTableName(schemaName, tableName),
	}
}

func (*GetTableRequest) variantTag() string { return TagGetTableRequest }

// GetTableResponse carries a resolved table name plus its schema descriptor.
type GetTableResponse struct {
	typeTag
	CatalogName string    `json:"catalogName"`
	TableName   TableName `json:"tableName"`
	Schema      Schema    `json:"schema"`
	RequestType string    `json:"requestType"`
}

func (*GetTableResponse) variantTag() string { return TagGetTableResponse }

func (*GetTableResponse) requiredFields() []string {
	return []string{"catalogName", "tableName", "schema"}
}

// GetTableLayoutRequest asks the connector for the partition layout of a
// table under the given constraints.
type GetTableLayoutRequest struct {
	typeTag
	Identity      FederatedIdentity `json:"identity"`
	QueryID       string            `json:"queryId"`
	CatalogName   string            `json:"catalogName"`
	TableName     TableName         `json:"tableName"`
	Constraints   Constraints       `json:"constraints"`
	Schema        *Schema           `json:"schema"`
	PartitionCols []string          `json:"partitionCols"`
}

// NewGetTableLayoutRequest builds a layout request with a default identity.
func NewGetTableLayoutRequest(queryID, catalogName string, tableName TableName,
	constraints Constraints, schema *Schema, partitionCols []string) *GetTableLayoutRequest {
	return &GetTableLayoutRequest{
		typeTag:       typeTag{Type: TagGetTableLayoutRequest},
		Identity:      DefaultIdentity(),
		QueryID:       queryID,
		CatalogName:   catalogName,
		TableName:     tableName,
		Constraints:   constraints,
		Schema:        schema,
		PartitionCols: partitionCols,
	}
}

func (*GetTableLayoutRequest) variantTag() string { return TagGetTableLayoutRequest }

// GetTableLayoutResponse is the legacy-protocol layout response, carrying
// partitions as a generic string map. Newer connectors answer with a Block
// instead; decode those with [GetTableLayoutBlockResponse].
type GetTableLayoutResponse struct {
	typeTag
	RequestType string            `json:"requestType"`
	CatalogName string            `json:"catalogName"`
	TableName   TableName         `json:"tableName"`
	Partitions  map[string]string `json:"partitions"`
}

func (*GetTableLayoutResponse) variantTag() string { return TagGetTableLayoutResponse }

func (*GetTableLayoutResponse) requiredFields() []string {
	return []string{"catalogName", "tableName", "partitions"}
}

// GetTableLayoutBlockResponse is the layout response shape whose partitions
// field carries a Block. The two shapes are kept distinct rather than
// guessed at; pick the one matching the connector's protocol version.
type GetTableLayoutBlockResponse struct {
	typeTag
	RequestType string    `json:"requestType"`
	CatalogName string    `json:"catalogName"`
	TableName   TableName `json:"tableName"`
	Partitions  *Block    `json:"partitions"`
}

func (*GetTableLayoutBlockResponse) variantTag() string { return TagGetTableLayoutResponse }

func (*GetTableLayoutBlockResponse) requiredFields() []string {
	return []string{"catalogName", "tableName", "partitions"}
}

// GetSplitsRequest asks the connector for the units of work covering the
// given partitions. The continuation token is omitted entirely from the
// encoded output when absent.
type GetSplitsRequest struct {
	typeTag
	Identity          FederatedIdentity `json:"identity"`
	QueryID           string            `json:"queryId"`
	CatalogName       string            `json:"catalogName"`
	TableName         TableName         `json:"tableName"`
	Partitions        *Block            `json:"partitions"`
	PartitionCols     []string          `json:"partitionCols"`
	Constraints       Constraints       `json:"constraints"`
	ContinuationToken *string           `json:"continuationToken,omitempty"`
}

// NewGetSplitsRequest builds a splits request with a default identity. Pass
// a nil continuationToken for the first page.
func NewGetSplitsRequest(queryID, catalogName string, tableName TableName, partitions *Block,
	partitionCols []string, constraints Constraints, continuationToken *string) *GetSplitsRequest {
	return &GetSplitsRequest{
		typeTag:           typeTag{Type: TagGetSplitsRequest},
		Identity:          DefaultIdentity(),
		QueryID:           queryID,
		CatalogName:       catalogName,
		TableName:         tableName,
		Partitions:        partitions,
		PartitionCols:     partitionCols,
		Constraints:       constraints,
		ContinuationToken: continuationToken,
	}
}

func (*GetSplitsRequest) variantTag() string { return TagGetSplitsRequest }

// GetSplitsResponse carries zero or more splits plus an optional
// continuation token. A response without a token is the terminal page.
type GetSplitsResponse struct {
	typeTag
	CatalogName       string  `json:"catalogName"`
	Splits            []Split `json:"splits"`
	ContinuationToken *string `json:"continuationToken,omitempty"`
	RequestType       string  `json:"requestType"`
}

func (*GetSplitsResponse) variantTag() string { return TagGetSplitsResponse }

func (*GetSplitsResponse) requiredFields() []string {
	return []string{"catalogName", "splits"}
}

// HasMore reports whether the caller should re-invoke GetSplits with the
// returned continuation token.
func (r *GetSplitsResponse) HasMore() bool {
	return r.ContinuationToken != nil && *r.ContinuationToken != ""
}

// ReadRecordsRequest asks the connector to read one split's rows.
type ReadRecordsRequest struct {
	typeTag
	CatalogName        string            `json:"catalogName"`
	QueryID            string            `json:"queryId"`
	Identity           FederatedIdentity `json:"identity"`
	TableName          TableName         `json:"tableName"`
	Schema             *Schema           `json:"schema"`
	Split              Split             `json:"split"`
	Constraints        Constraints       `json:"constraints"`
	MaxBlockSize       int64             `json:"maxBlockSize"`
	MaxInlineBlockSize int64             `json:"maxInlineBlockSize"`
	RequestType        string            `json:"requestType"`
}

// NewReadRecordsRequest builds a record read request with a default identity
// and the stock block size limits.
func NewReadRecordsRequest(queryID, catalogName string, tableName TableName, schema *Schema,
	split Split, constraints Constraints) *ReadRecordsRequest {
	return &ReadRecordsRequest{
		typeTag:            typeTag{Type: TagReadRecordsRequest},
		CatalogName:        catalogName,
		QueryID:            queryID,
		Identity:           DefaultIdentity(),
		TableName:          tableName,
		Schema:             schema,
		Split:              split,
		Constraints:        constraints,
		MaxBlockSize:       DefaultMaxBlockSize,
		MaxInlineBlockSize: DefaultMaxInlineBlockSize,
		RequestType:        ReadRecordsRequestType,
	}
}

func (*ReadRecordsRequest) variantTag() string { return TagReadRecordsRequest }

// ReadRecordsResponse carries one split's rows as an inline Block. Results
// above the inline threshold arrive as spill locations instead; fetch those
// with [SpillFetcher].
type ReadRecordsResponse struct {
	typeTag
	CatalogName string    `json:"catalogName"`
	TableName   TableName `json:"tableName"`
	Records     *Block    `json:"records"`
	RequestType string    `json:"requestType"`
}

func (*ReadRecordsResponse) variantTag() string { return TagReadRecordsResponse }

func (*ReadRecordsResponse) requiredFields() []string {
	return []string{"catalogName", "records"}
}
