package timelock

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/smartcontractkit/timelock"

type metrics struct {
	executions  metric.Int64Counter
	notReady    metric.Int64Counter
	transitions metric.Int64Counter
}

func newMetrics(meter metric.Meter) (*metrics, error) {
	var (
		m   metrics
		err error
	)

	m.executions, err = meter.Int64Counter("timelock.executions",
		metric.WithDescription("Number of dispatched operations by outcome"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, err
	}

	m.notReady, err = meter.Int64Counter("timelock.not_ready",
		metric.WithDescription("Number of executions rejected because the delay had not elapsed"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, err
	}

	m.transitions, err = meter.Int64Counter("timelock.transitions",
		metric.WithDescription("Number of batch status transitions"),
		metric.WithUnit("{transition}"),
	)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (m *metrics) recordExecution(ctx context.Context, kind string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.executions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("outcome", outcome),
	))
}

func (m *metrics) recordNotReady(ctx context.Context, kind string) {
	m.notReady.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

func (m *metrics) recordTransition(ctx context.Context, to string) {
	m.transitions.Add(ctx, 1, metric.WithAttributes(attribute.String("status", to)))
}

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return otel.Tracer(instrumentationName).Start(ctx, name)
}
