package main

import (
	"bytes"
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"

	"github.com/atlasops/vpcatlas/internal/aws"
	"github.com/atlasops/vpcatlas/internal/model"
)

// Response is the shape expected by API Gateway proxy integration
// (body = JSON-encoded network model).
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// handler collects the region's network topology and returns it as
// JSON. Rendering happens client-side (or via `vpcatlas render`), so
// the lambda stays a pure collector.
func handler(ctx context.Context) (Response, error) {
	region := os.Getenv("AWS_REGION")

	client, err := aws.NewClient(ctx, region)
	if err != nil {
		return Response{StatusCode: 500, Body: err.Error()}, nil
	}

	m, err := aws.NewNetworkCollector(client.Config).Collect(ctx)
	if err != nil {
		return Response{StatusCode: 500, Body: err.Error()}, nil
	}

	// Tag the snapshot with the invocation id so repeated collections
	// are distinguishable downstream.
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		m.Timestamp = lc.AwsRequestID
	}

	var buf bytes.Buffer
	if err := model.Encode(&buf, m); err != nil {
		return Response{StatusCode: 500, Body: err.Error()}, nil
	}

	return Response{StatusCode: 200, Body: buf.String()}, nil
}

func main() {
	lambda.Start(handler)
}
