// Package socket opens listening TCP sockets step by step, so that the backlog
// and the reuse options are exactly the ones asked for.
//
// Startup happens in a fixed order: socket, setsockopt, bind, listen. The
// first failing step aborts the sequence and is reported as an *Error naming
// that step.
package socket

import (
	"errors"
	"fmt"
	"net"
)

const (
	DefaultPort    = 80
	DefaultBacklog = 3
)

var ErrNotIPv4 = errors.New("socket: host is not an IPv4 address")

type Config struct {
	// Host is an IPv4 literal. Empty means the wildcard address.
	Host      string
	Port      int
	Backlog   int
	ReuseAddr bool
	ReusePort bool
}

func DefaultConfig() Config {
	return Config{
		Port:      DefaultPort,
		Backlog:   DefaultBacklog,
		ReuseAddr: true,
		ReusePort: true,
	}
}

// Error reports the startup step that failed.
type Error struct {
	Op  string // "socket", "setsockopt", "bind" or "listen"
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("socket: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Listen runs the startup sequence and returns the bound listener.
func Listen(cfg Config) (net.Listener, error) {
	ip, err := hostIPv4(cfg.Host)
	if err != nil {
		return nil, &Error{Op: "bind", Err: err}
	}

	return listen(cfg, ip)
}

func hostIPv4(host string) (net.IP, error) {
	if host == "" {
		return net.IPv4zero.To4(), nil
	}

	ip := net.ParseIP(host).To4()
	if ip == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotIPv4, host)
	}

	return ip, nil
}
