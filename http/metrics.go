package http

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Stats is a point-in-time copy of the server counters.
type Stats struct {
	Accepted     uint64 `json:"accepted"`
	Rejected     uint64 `json:"rejected"`
	AcceptErrors uint64 `json:"accept_errors"`
	Served       uint64 `json:"served"`
	Active       int64  `json:"active"`
	BytesWritten uint64 `json:"bytes_written"`
}

type metrics struct {
	accepted     metric.Int64Counter
	rejected     metric.Int64Counter
	acceptErrors metric.Int64Counter
	responses    metric.Int64Counter
	bytesWritten metric.Int64Counter
	active       metric.Int64UpDownCounter
	duration     metric.Float64Histogram

	stats struct {
		accepted     atomic.Uint64
		rejected     atomic.Uint64
		acceptErrors atomic.Uint64
		served       atomic.Uint64
		active       atomic.Int64
		bytesWritten atomic.Uint64
	}
}

func newMetrics(provider metric.MeterProvider) (*metrics, error) {
	meter := provider.Meter(instrumentationName)

	var m metrics
	var err, errs error

	m.accepted, err = meter.Int64Counter("homepage.connections.accepted",
		metric.WithDescription("Connections returned by accept"),
		metric.WithUnit("{connection}"))
	errs = errors.Join(errs, err)

	m.rejected, err = meter.Int64Counter("homepage.connections.rejected",
		metric.WithDescription("Connections turned away because every slot was busy"),
		metric.WithUnit("{connection}"))
	errs = errors.Join(errs, err)

	m.acceptErrors, err = meter.Int64Counter("homepage.accept.errors",
		metric.WithDescription("Failed accept calls"),
		metric.WithUnit("{error}"))
	errs = errors.Join(errs, err)

	m.responses, err = meter.Int64Counter("homepage.responses",
		metric.WithDescription("Responses written, by outcome"),
		metric.WithUnit("{response}"))
	errs = errors.Join(errs, err)

	m.bytesWritten, err = meter.Int64Counter("homepage.response.size",
		metric.WithDescription("Response bytes written"),
		metric.WithUnit("By"))
	errs = errors.Join(errs, err)

	m.active, err = meter.Int64UpDownCounter("homepage.connections.active",
		metric.WithDescription("Connections currently being handled"),
		metric.WithUnit("{connection}"))
	errs = errors.Join(errs, err)

	m.duration, err = meter.Float64Histogram("homepage.connection.duration",
		metric.WithDescription("Time from accept to close"),
		metric.WithUnit("s"))
	errs = errors.Join(errs, err)

	if errs != nil {
		return nil, errs
	}
	return &m, nil
}

func (m *metrics) acceptOK(ctx context.Context) {
	m.stats.accepted.Add(1)
	m.accepted.Add(ctx, 1)
}

func (m *metrics) acceptFailed(ctx context.Context) {
	m.stats.acceptErrors.Add(1)
	m.acceptErrors.Add(ctx, 1)
}

func (m *metrics) reject(ctx context.Context) {
	m.stats.rejected.Add(1)
	m.rejected.Add(ctx, 1)
}

func (m *metrics) connStart(ctx context.Context) {
	m.stats.active.Add(1)
	m.active.Add(ctx, 1)
}

func (m *metrics) connEnd(ctx context.Context, started time.Time) {
	m.stats.active.Add(-1)
	m.active.Add(ctx, -1)
	m.duration.Record(ctx, time.Since(started).Seconds())
}

func (m *metrics) response(ctx context.Context, written int, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	} else {
		m.stats.served.Add(1)
	}

	m.stats.bytesWritten.Add(uint64(written))
	m.responses.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	m.bytesWritten.Add(ctx, int64(written))
}

func (m *metrics) snapshot() Stats {
	return Stats{
		Accepted:     m.stats.accepted.Load(),
		Rejected:     m.stats.rejected.Load(),
		AcceptErrors: m.stats.acceptErrors.Load(),
		Served:       m.stats.served.Load(),
		Active:       m.stats.active.Load(),
		BytesWritten: m.stats.bytesWritten.Load(),
	}
}
