// SPDX-License-Identifier: Apache-2.0

package athenafed

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// SpillFetcher retrieves spilled result data from S3. Connectors spill a
// result to the split's SpillLocation when it exceeds the inline block size
// threshold; the response then carries the location instead of the bytes.
type SpillFetcher struct {
	client *s3.Client
}

// NewSpillFetcher builds a fetcher for the configured region.
func NewSpillFetcher(cfg Configuration) (*SpillFetcher, error) {
	if cfg.Region == "" {
		return nil, &ConfigurationError{Message: "region must not be empty"}
	}
	client := s3.New(s3.Options{
		Region:      cfg.Region,
		Credentials: cfg.credentialsProvider(),
	})
	return &SpillFetcher{client: client}, nil
}

// Fetch reads one spilled object. The location must name a concrete object
// key, not a directory prefix.
func (f *SpillFetcher) Fetch(ctx context.Context, loc SpillLocation) ([]byte, error) {
	if loc.Directory {
		return nil, fmt.Errorf("spill location s3://%s/%s is a directory, not an object", loc.Bucket, loc.Key)
	}
	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(loc.Bucket),
		Key:    aws.String(loc.Key),
	})
	if err != nil {
		return nil, &TransportError{Target: "s3://" + loc.Bucket + "/" + loc.Key, Err: err}
	}
	defer func() { _ = out.Body.Close() }()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, &TransportError{Target: "s3://" + loc.Bucket + "/" + loc.Key, Err: err}
	}
	return data, nil
}
