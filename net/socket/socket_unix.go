//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package socket

import (
	"net"
	"os"

	"golang.org/x/sys/unix"
)

func listen(cfg Config, ip net.IP) (net.Listener, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM, 0)
	if err != nil {
		return nil, &Error{Op: "socket", Err: err}
	}
	unix.CloseOnExec(fd)

	if err := setOptions(fd, cfg); err != nil {
		unix.Close(fd)
		return nil, &Error{Op: "setsockopt", Err: err}
	}

	addr := &unix.SockaddrInet4{Port: cfg.Port}
	copy(addr.Addr[:], ip)
	if err := unix.Bind(fd, addr); err != nil {
		unix.Close(fd)
		return nil, &Error{Op: "bind", Err: err}
	}

	if err := unix.Listen(fd, cfg.Backlog); err != nil {
		unix.Close(fd)
		return nil, &Error{Op: "listen", Err: err}
	}

	// FileListener dups the descriptor, so fd itself is closed with f.
	f := os.NewFile(uintptr(fd), "homepage-listener")
	defer f.Close()

	ln, err := net.FileListener(f)
	if err != nil {
		return nil, &Error{Op: "listen", Err: err}
	}

	return ln, nil
}

func setOptions(fd int, cfg Config) error {
	if cfg.ReuseAddr {
		if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
			return err
		}
	}

	if cfg.ReusePort {
		if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEPORT, 1); err != nil {
			return err
		}
	}

	return nil
}
