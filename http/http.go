// Package http serves one fixed HTTP response to every TCP client.
//
// A connection is read once, answered once and closed. The request is never
// parsed; its first line only shows up in the logs. The number of
// connections handled at the same time is bounded by a slot pool, and
// connections arriving while every slot is busy get a 503 instead.
package http

import (
	"log/slog"
	"time"

	"github.com/freekieb7/homepage/net/socket"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultReadBufferSize  = 1024
	DefaultMaxConnections  = 1024
	DefaultReadTimeout     = 5 * time.Second
	DefaultWriteTimeout    = 5 * time.Second
	DefaultMaxConnLifetime = 30 * time.Second

	// rejectTimeout caps the time spent telling a client the server is busy.
	rejectTimeout = time.Second

	// acceptLogInterval is the minimum gap between two accept failure logs.
	acceptLogInterval = time.Second

	instrumentationName = "github.com/freekieb7/homepage/http"
)

// Content supplies the bytes written to every connection.
type Content interface {
	ResponseBytes() []byte
}

type Options struct {
	Socket         socket.Config
	ReadBufferSize int
	MaxConnections int

	// Zero disables the corresponding limit.
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	MaxConnLifetime time.Duration

	// Nil values fall back to slog.Default and the global OpenTelemetry providers.
	Logger         *slog.Logger
	MeterProvider  metric.MeterProvider
	TracerProvider trace.TracerProvider
}

func DefaultOptions() Options {
	return Options{
		Socket:          socket.DefaultConfig(),
		ReadBufferSize:  DefaultReadBufferSize,
		MaxConnections:  DefaultMaxConnections,
		ReadTimeout:     DefaultReadTimeout,
		WriteTimeout:    DefaultWriteTimeout,
		MaxConnLifetime: DefaultMaxConnLifetime,
	}
}

var (
	// Pre-computed response for connections turned away by the slot pool
	responseBusy = []byte(statusLine(StatusServiceUnavailable) +
		"Content-Type: text/plain\r\n" +
		"Connection: close\r\n" +
		"\r\n" +
		"server busy\n")

	aLongTimeAgo = time.Unix(1, 0)
)
