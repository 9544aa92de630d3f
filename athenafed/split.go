// SPDX-License-Identifier: Apache-2.0

package athenafed

// SpillLocationType is the constant discriminant carried by every spill
// location on the wire.
const SpillLocationType = "S3SpillLocation"

// SpillLocation points at externally stored result data, used when a result
// payload exceeds the inline-size threshold. It is metadata only; the bytes
// themselves live in S3.
type SpillLocation struct {
	Type      string `json:"@type"`
	Bucket    string `json:"bucket"`
	Key       string `json:"key"`
	Directory bool   `json:"directory"`
}

// Split describes one unit of partition work for a data-reading stage. The
// properties bag is opaque to the client; the connector defines the actual
// split via its entries.
type Split struct {
	SpillLocation SpillLocation     `json:"spillLocation"`
	EncryptionKey *EncryptionKey    `json:"encryptionKey"`
	Properties    map[string]string `json:"properties"`
}

// NewSplit creates a Split whose spill location targets the given bucket and
// key prefix. The default initialization marks the location as a directory
// and leaves the properties bag empty.
func NewSplit(bucket, key string) Split {
	return Split{
		SpillLocation: SpillLocation{
			Type:      SpillLocationType,
			Bucket:    bucket,
			Key:       key,
			Directory: true,
		},
		Properties: map[string]string{},
	}
}
