package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/freekieb7/homepage/net/socket"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

var ErrNoContent = errors.New("http: server needs content")

type Server struct {
	Name string

	content Content
	opts    Options
	logger  *slog.Logger
	pool    *slotPool
	metrics *metrics
	tracer  trace.Tracer

	// A failing accept repeats at full speed; its log line does not.
	acceptLog rate.Sometimes
}

func NewServer(name string, content Content, opts Options) (*Server, error) {
	if content == nil {
		return nil, ErrNoContent
	}
	if opts.ReadBufferSize <= 0 {
		opts.ReadBufferSize = DefaultReadBufferSize
	}
	if opts.MaxConnections <= 0 {
		opts.MaxConnections = DefaultMaxConnections
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.MeterProvider == nil {
		opts.MeterProvider = otel.GetMeterProvider()
	}
	if opts.TracerProvider == nil {
		opts.TracerProvider = otel.GetTracerProvider()
	}

	m, err := newMetrics(opts.MeterProvider)
	if err != nil {
		return nil, fmt.Errorf("http: creating instruments: %w", err)
	}

	return &Server{
		Name:    name,
		content: content,
		opts:    opts,
		logger:  opts.Logger.With("server", name),
		pool:    newSlotPool(opts.MaxConnections, opts.ReadBufferSize),
		metrics: m,
		tracer:  opts.TracerProvider.Tracer(instrumentationName),

		acceptLog: rate.Sometimes{First: 1, Interval: acceptLogInterval},
	}, nil
}

// Stats returns the current counters.
func (s *Server) Stats() Stats {
	return s.metrics.snapshot()
}

// ListenAndServe opens the configured socket and serves on it until ctx is
// done. Errors from the socket startup sequence are returned as *socket.Error.
func (s *Server) ListenAndServe(ctx context.Context) error {
	listener, err := socket.Listen(s.opts.Socket)
	if err != nil {
		return err
	}

	s.logger.Info("listening",
		"addr", listener.Addr().String(),
		"backlog", s.opts.Socket.Backlog,
		"max_connections", s.pool.size())

	return s.Serve(ctx, listener)
}

// Serve accepts connections until ctx is done, then closes listener and
// returns nil. Handlers still running are cancelled, not waited for. A failed
// accept is logged and the loop goes on.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	defer listener.Close()

	stop := context.AfterFunc(ctx, func() {
		listener.Close()
	})
	defer stop()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return err
			}

			s.metrics.acceptFailed(ctx)
			s.acceptLog.Do(func() {
				s.logger.Error("failed to accept connection",
					"error", err,
					"accept_errors", s.metrics.snapshot().AcceptErrors)
			})
			continue
		}
		s.metrics.acceptOK(ctx)

		slot, err := s.pool.acquire()
		if err != nil {
			go s.reject(ctx, conn)
			continue
		}

		go s.serveConn(ctx, slot, conn)
	}
}

func (s *Server) serveConn(ctx context.Context, slot *connSlot, conn net.Conn) {
	started := time.Now()
	connID := uuid.NewString()
	logger := s.logger.With("conn_id", connID, "remote_addr", conn.RemoteAddr().String())

	ctx, span := s.tracer.Start(ctx, "serve connection",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("homepage.conn_id", connID),
			attribute.String("network.peer.address", conn.RemoteAddr().String()),
		))
	s.metrics.connStart(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("connection handler panicked", "panic", r)
			span.SetStatus(codes.Error, fmt.Sprint(r))
		}

		closeConn(ctx, conn)
		s.pool.release(slot)
		s.metrics.connEnd(ctx, started)
		span.End()
	}()

	connCtx := ctx
	if s.opts.MaxConnLifetime > 0 {
		var cancel context.CancelFunc
		connCtx, cancel = context.WithTimeout(ctx, s.opts.MaxConnLifetime)
		defer cancel()
	}
	stop := context.AfterFunc(connCtx, func() {
		conn.SetDeadline(aLongTimeAgo)
	})
	defer stop()

	// One read, no draining: the request only feeds the log.
	armDeadline(connCtx, conn.SetReadDeadline, s.opts.ReadTimeout)
	n, err := conn.Read(slot.buf)
	if err != nil && !errors.Is(err, io.EOF) {
		logger.Debug("read failed", "error", err)
		span.RecordError(err)
	}
	logger.Info("connection received", "bytes_read", n, "request_line", requestLine(slot.buf[:n]))
	span.SetAttributes(attribute.Int("homepage.bytes_read", n))

	armDeadline(connCtx, conn.SetWriteDeadline, s.opts.WriteTimeout)
	written, err := conn.Write(s.content.ResponseBytes())
	s.metrics.response(ctx, written, err)
	span.SetAttributes(attribute.Int("homepage.bytes_written", written))
	if err != nil {
		logger.Debug("write failed", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "write failed")
	}

	logger.Info("response sent", "bytes_written", written, "duration", time.Since(started))
}

// reject answers a connection that found no free slot. It runs on its own
// goroutine so the accept loop never waits on a slow peer.
func (s *Server) reject(ctx context.Context, conn net.Conn) {
	s.metrics.reject(ctx)
	s.logger.Warn("rejecting connection, no free slot",
		"remote_addr", conn.RemoteAddr().String(),
		"max_connections", s.pool.size())

	conn.SetWriteDeadline(time.Now().Add(rejectTimeout))
	conn.Write(responseBusy)
	closeConn(ctx, conn)
}

// armDeadline sets the earlier of now+timeout and the context deadline. A
// context that is already done gets a deadline in the past.
func armDeadline(ctx context.Context, set func(time.Time) error, timeout time.Duration) {
	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}
	if d, ok := ctx.Deadline(); ok && (deadline.IsZero() || d.Before(deadline)) {
		deadline = d
	}

	set(deadline)
	if ctx.Err() != nil {
		set(aLongTimeAgo)
	}
}
