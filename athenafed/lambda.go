// SPDX-License-Identifier: Apache-2.0

package athenafed

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
)

// LambdaInvoker is the stock Transport: it invokes the connector Lambda
// function synchronously with the serialized envelope as its payload.
type LambdaInvoker struct {
	client *lambda.Client
}

// NewLambdaInvoker builds a Lambda-backed transport from the configuration.
func NewLambdaInvoker(cfg Configuration) (*LambdaInvoker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	client := lambda.New(lambda.Options{
		Region:      cfg.Region,
		Credentials: cfg.credentialsProvider(),
	})
	return &LambdaInvoker{client: client}, nil
}

// Invoke performs one synchronous function invocation. A function-level
// error reported by the remote (an unhandled exception in the connector) is
// surfaced as a TransportError, the same as a network failure.
func (l *LambdaInvoker) Invoke(ctx context.Context, target string, payload []byte) ([]byte, error) {
	out, err := l.client.Invoke(ctx, &lambda.InvokeInput{
		FunctionName: aws.String(target),
		Payload:      payload,
	})
	if err != nil {
		return nil, &TransportError{Target: target, Err: err}
	}
	if out.FunctionError != nil {
		return nil, &TransportError{
			Target: target,
			Err:    fmt.Errorf("remote function error %q: %s", aws.ToString(out.FunctionError), out.Payload),
		}
	}
	return out.Payload, nil
}
