package server

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	ttrace "audio_recorder/internal/telemetry/trace"
	traceExporter "audio_recorder/internal/telemetry/trace/exporter"
)

// InitGlobalProvider installs an OTLP-backed tracer provider as the otel
// global. Without it all spans in the codebase are no-ops.
func (s *Server) InitGlobalProvider(name, endpoint string) {
	spanExporter, err := traceExporter.NewOTLP(context.Background(), endpoint)
	if err != nil {
		log.Fatal().Err(err).Msgf("failed initializing the tracer exporter")
	}

	tracerProvider, tracerProviderCloseFn, err := ttrace.NewTraceProviderBuilder(name).
		SetExporter(spanExporter).
		Build()
	if err != nil {
		log.Fatal().Err(err).Msgf("failed initializing the tracer provider")
	}
	s.traceProviderCloseFn = append(s.traceProviderCloseFn, tracerProviderCloseFn)

	// set global propagator to tracecontext (the default is no-op).
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	otel.SetTracerProvider(tracerProvider)
}
