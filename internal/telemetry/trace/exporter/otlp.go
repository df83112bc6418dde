package exporter

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"google.golang.org/grpc"
)

// NewOTLP builds a gRPC span exporter pointed at an OTLP collector.
func NewOTLP(ctx context.Context, endpoint string) (*otlptrace.Exporter, error) {
	traceClient := otlptracegrpc.NewClient(
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithDialOption(grpc.WithBlock()),
	)

	traceExp, err := otlptrace.New(ctx, traceClient)
	if err != nil {
		return nil, errors.Wrap(err, "exporter - NewOTLP - otlptrace.New")
	}
	return traceExp, nil
}
