//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package socket

import (
	"errors"
	"net"
	"strconv"
	"testing"

	"github.com/freekieb7/homepage/test"
	"golang.org/x/sys/unix"
)

func TestListenBindConflict(t *testing.T) {
	cfg := loopbackConfig()
	cfg.ReusePort = false

	first, err := Listen(cfg)
	test.AssertNoError(t, err)
	defer first.Close()

	cfg.Port = first.Addr().(*net.TCPAddr).Port
	_, err = Listen(cfg)

	var sockErr *Error
	if !errors.As(err, &sockErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	test.AssertEqual(t, "bind", sockErr.Op)
	test.AssertErrorIs(t, err, unix.EADDRINUSE)
}

func TestListenReusePort(t *testing.T) {
	cfg := loopbackConfig()

	first, err := Listen(cfg)
	test.AssertNoError(t, err)
	defer first.Close()

	cfg.Port = first.Addr().(*net.TCPAddr).Port
	second, err := Listen(cfg)
	test.AssertNoError(t, err)
	defer second.Close()

	test.AssertEqual(t, strconv.Itoa(cfg.Port), portOf(t, second))
}

func portOf(t *testing.T, ln net.Listener) string {
	t.Helper()

	_, port, err := net.SplitHostPort(ln.Addr().String())
	test.AssertNoError(t, err)

	return port
}
