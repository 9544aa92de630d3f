// SPDX-License-Identifier: Apache-2.0

package athenafed

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Transport sends a serialized envelope to a named remote function and
// returns the raw response payload. Implementations perform one synchronous
// round trip; any network or remote failure is fatal to the calling planner
// operation. The core performs no retry.
type Transport interface {
	Invoke(ctx context.Context, target string, payload []byte) ([]byte, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, target string, payload []byte) ([]byte, error)

func (f TransportFunc) Invoke(ctx context.Context, target string, payload []byte) ([]byte, error) {
	return f(ctx, target, payload)
}

// Planner resolves query-planning metadata for a federated source by
// walking the pipeline: schemas, tables, table schema, table layout,
// splits. It is a stateless sequencer over its Transport — no state is
// retained between calls, and pagination depends entirely on the caller
// re-supplying the previous response's continuation token.
//
// A Planner holds no mutable shared state, so independent instances (or
// sequential calls on one instance) may be driven concurrently by the host
// application.
type Planner struct {
	cfg       Configuration
	transport Transport
	logger    *slog.Logger
}

// NewPlanner builds a Planner over the given transport. The configuration
// is validated up front; an invalid one fails construction.
func NewPlanner(cfg Configuration, transport Transport) (*Planner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Planner{
		cfg:       cfg,
		transport: transport,
		logger:    slog.Default().With("component", "planner"),
	}, nil
}

// SetLogger replaces the planner's logger.
func (p *Planner) SetLogger(logger *slog.Logger) {
	p.logger = logger
}

// NewQueryID generates a fresh query identifier for a planning pipeline.
func NewQueryID() string {
	return uuid.NewString()
}

// roundTrip serializes the request, performs one blocking transport call,
// and decodes the typed response the caller expects.
func roundTrip[R Message](ctx context.Context, p *Planner, target string, req Message, resp R) (R, error) {
	body, err := MarshalEnvelope(req)
	if err != nil {
		return resp, err
	}
	p.logger.Debug("invoking remote function", "target", target, "type", req.variantTag())

	payload, err := p.transport.Invoke(ctx, target, body)
	if err != nil {
		return resp, err
	}
	if err := UnmarshalEnvelope(payload, resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// ListSchemas lists the schema names inside a catalog.
func (p *Planner) ListSchemas(ctx context.Context, queryID, catalogName string) (*ListSchemasResponse, error) {
	req := NewListSchemasRequest(queryID, catalogName)
	return roundTrip(ctx, p, p.cfg.MetadataFunction, req, &ListSchemasResponse{})
}

// ListTables lists the tables inside one schema of a catalog.
func (p *Planner) ListTables(ctx context.Context, queryID, catalogName, schemaName string) (*ListTablesResponse, error) {
	req := NewListTablesRequest(queryID, catalogName, schemaName)
	return roundTrip(ctx, p, p.cfg.MetadataFunction, req, &ListTablesResponse{})
}

// GetTable fetches one table's name and schema descriptor.
func (p *Planner) GetTable(ctx context.Context, queryID, catalogName, schemaName, tableName string) (*GetTableResponse, error) {
	req := NewGetTableRequest(queryID, catalogName, schemaName, tableName)
	return roundTrip(ctx, p, p.cfg.MetadataFunction, req, &GetTableResponse{})
}

// GetTableLayout fetches the partition layout for a table, keyed by catalog
// and table name. The response carries partitions as a generic string map;
// connectors speaking the newer protocol answer with a Block instead, for
// which use [Planner.GetTableLayoutBlock].
func (p *Planner) GetTableLayout(ctx context.Context, queryID, catalogName string, tableName TableName,
	constraints Constraints, schema *Schema, partitionCols []string) (*GetTableLayoutResponse, error) {
	req := NewGetTableLayoutRequest(queryID, catalogName, tableName, constraints, schema, partitionCols)
	return roundTrip(ctx, p, p.cfg.MetadataFunction, req, &GetTableLayoutResponse{})
}

// GetTableLayoutBlock is GetTableLayout against a connector whose layout
// response carries the partitions as a Block.
func (p *Planner) GetTableLayoutBlock(ctx context.Context, queryID, catalogName string, tableName TableName,
	constraints Constraints, schema *Schema, partitionCols []string) (*GetTableLayoutBlockResponse, error) {
	req := NewGetTableLayoutRequest(queryID, catalogName, tableName, constraints, schema, partitionCols)
	return roundTrip(ctx, p, p.cfg.MetadataFunction, req, &GetTableLayoutBlockResponse{})
}

// GetSplits fetches one page of splits for the given partitions. Pass the
// previous response's continuation token to fetch the next page; a response
// for which HasMore is false is the terminal page.
func (p *Planner) GetSplits(ctx context.Context, queryID, catalogName string, tableName TableName,
	partitions *Block, partitionCols []string, constraints Constraints,
	continuationToken *string) (*GetSplitsResponse, error) {
	req := NewGetSplitsRequest(queryID, catalogName, tableName, partitions, partitionCols, constraints, continuationToken)
	return roundTrip(ctx, p, p.cfg.MetadataFunction, req, &GetSplitsResponse{})
}

// ReadRecords reads one split's rows through the record plane function.
func (p *Planner) ReadRecords(ctx context.Context, queryID, catalogName string, tableName TableName,
	schema *Schema, split Split, constraints Constraints) (*ReadRecordsResponse, error) {
	req := NewReadRecordsRequest(queryID, catalogName, tableName, schema, split, constraints)
	return roundTrip(ctx, p, p.cfg.RecordFunction, req, &ReadRecordsResponse{})
}
