//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package socket

import (
	"context"
	"net"
	"strconv"
)

// listen falls back to the runtime's listener. The backlog is left to the
// operating system default and the reuse options are not applied.
func listen(cfg Config, ip net.IP) (net.Listener, error) {
	var lc net.ListenConfig

	ln, err := lc.Listen(context.Background(), "tcp4", net.JoinHostPort(ip.String(), strconv.Itoa(cfg.Port)))
	if err != nil {
		return nil, &Error{Op: "listen", Err: err}
	}

	return ln, nil
}
