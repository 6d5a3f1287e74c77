package http

import (
	"context"
	"io"
	"net"
	"time"
)

const (
	// lingerTimeout bounds how long a closing connection waits for the peer
	// to finish sending.
	lingerTimeout = time.Second

	maxLingerBytes = 64 << 10
)

type closeWriter interface {
	CloseWrite() error
}

// closeConn ends a connection once its response is written. The write side
// is shut first so the peer sees EOF right after the response, then request
// bytes the single read left behind are discarded. Closing a TCP socket with
// unread input resets it, which can destroy a response still in flight.
// The discarded bytes are never looked at.
func closeConn(ctx context.Context, conn net.Conn) error {
	cw, ok := conn.(closeWriter)
	if !ok || ctx.Err() != nil {
		return conn.Close()
	}

	if err := cw.CloseWrite(); err == nil {
		conn.SetReadDeadline(time.Now().Add(lingerTimeout))
		io.Copy(io.Discard, io.LimitReader(conn, maxLingerBytes))
	}

	return conn.Close()
}
