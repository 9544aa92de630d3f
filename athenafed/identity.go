// SPDX-License-Identifier: Apache-2.0

package athenafed

// Sentinel identity values used when the caller identity is not known.
// Athena normally populates the identity from the access key and account
// number of the calling principal.
const (
	UnknownID        = "UNKNOWN_ID"
	UnknownPrincipal = "UNKNOWN_PRINCIPAL"
	UnknownAccount   = "UNKNOWN_ACCOUNT"
)

// FederatedIdentity identifies the caller of a federation request.
type FederatedIdentity struct {
	ID        string `json:"id"`
	Principal string `json:"principal"`
	Account   string `json:"account"`
}

// DefaultIdentity returns an identity populated with the UNKNOWN_* sentinels.
func DefaultIdentity() FederatedIdentity {
	return FederatedIdentity{
		ID:        UnknownID,
		Principal: UnknownPrincipal,
		Account:   UnknownAccount,
	}
}

// TableName is an immutable schema-qualified table reference. Two values are
// equal when both fields are equal.
type TableName struct {
	SchemaName string `json:"schemaName"`
	TableName  string `json:"tableName"`
}

// NewTableName builds a TableName from a schema and table pair.
func NewTableName(schema, table string) TableName {
	return TableName{SchemaName: schema, TableName: table}
}

// Constraints is an opaque predicate summary. The client passes it through
// unexamined; the connector interprets the entries.
type Constraints struct {
	Summary map[string]string `json:"summary"`
}

// NewConstraints returns an empty constraints map.
func NewConstraints() Constraints {
	return Constraints{Summary: map[string]string{}}
}

// EncryptionKey carries the key material used to encrypt spilled result data.
type EncryptionKey struct {
	Key   string `json:"key"`
	Nonce string `json:"nonce"`
}
