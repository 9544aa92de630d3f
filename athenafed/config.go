// SPDX-License-Identifier: Apache-2.0

package athenafed

import (
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// DefaultRegion is the region used when none is configured.
const DefaultRegion = "us-east-1"

// Configuration holds everything a Planner needs to reach the connector:
// the region and the Lambda function names for the metadata and record
// planes. There is no ambient or global configuration; a Configuration is
// passed explicitly at construction.
type Configuration struct {
	Region           string
	MetadataFunction string // Lambda handling metadata requests
	RecordFunction   string // Lambda handling record read requests

	// Optional static credentials. When empty, clients are built without
	// an explicit provider and rely on the SDK's resolution.
	AccessKeyID     string
	SecretAccessKey string
}

// NewConfiguration builds a Configuration where one Lambda function serves
// both the metadata and record planes, in the default region.
func NewConfiguration(function string) Configuration {
	return Configuration{
		Region:           DefaultRegion,
		MetadataFunction: function,
		RecordFunction:   function,
	}
}

// Environment variable names read by ConfigurationFromEnv.
const (
	EnvRegion           = "ATHENA_FED_REGION"
	EnvMetadataFunction = "ATHENA_FED_METADATA_FUNCTION"
	EnvRecordFunction   = "ATHENA_FED_RECORD_FUNCTION"
	EnvAccessKeyID      = "AWS_ACCESS_KEY_ID"
	EnvSecretAccessKey  = "AWS_SECRET_ACCESS_KEY"
)

// ConfigurationFromEnv loads a Configuration from the environment. The
// record function falls back to the metadata function when unset.
func ConfigurationFromEnv() (Configuration, error) {
	cfg := Configuration{
		Region:           os.Getenv(EnvRegion),
		MetadataFunction: os.Getenv(EnvMetadataFunction),
		RecordFunction:   os.Getenv(EnvRecordFunction),
		AccessKeyID:      os.Getenv(EnvAccessKeyID),
		SecretAccessKey:  os.Getenv(EnvSecretAccessKey),
	}
	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}
	if cfg.RecordFunction == "" {
		cfg.RecordFunction = cfg.MetadataFunction
	}
	if err := cfg.Validate(); err != nil {
		return Configuration{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration can construct working clients.
func (c Configuration) Validate() error {
	if c.Region == "" {
		return &ConfigurationError{Message: "region must not be empty"}
	}
	if c.MetadataFunction == "" {
		return &ConfigurationError{Message: "metadata function name must not be empty"}
	}
	return nil
}

// credentialsProvider returns a static provider when key material is
// configured, nil otherwise.
func (c Configuration) credentialsProvider() aws.CredentialsProvider {
	if c.AccessKeyID == "" {
		return nil
	}
	return credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, "")
}
