package http

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/freekieb7/homepage/test"
)

func TestCloseConnDrainsUnreadInput(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	test.AssertNoError(t, err)
	defer ln.Close()

	client, err := net.Dial("tcp", ln.Addr().String())
	test.AssertNoError(t, err)
	defer client.Close()

	server, err := ln.Accept()
	test.AssertNoError(t, err)

	// The server never reads this before responding.
	_, err = client.Write(make([]byte, 8192))
	test.AssertNoError(t, err)

	_, err = server.Write([]byte("response"))
	test.AssertNoError(t, err)

	done := make(chan error, 1)
	go func() { done <- closeConn(context.Background(), server) }()

	client.(*net.TCPConn).CloseWrite()
	client.SetReadDeadline(time.Now().Add(3 * time.Second))
	got, err := io.ReadAll(client)
	test.AssertNoError(t, err)
	test.AssertEqual(t, "response", string(got))

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("closeConn did not return")
	}
}

func TestCloseConnLingerIsBounded(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	test.AssertNoError(t, err)
	defer ln.Close()

	client, err := net.Dial("tcp", ln.Addr().String())
	test.AssertNoError(t, err)
	defer client.Close()

	server, err := ln.Accept()
	test.AssertNoError(t, err)

	// The peer keeps its write side open.
	start := time.Now()
	closeConn(context.Background(), server)
	if elapsed := time.Since(start); elapsed > lingerTimeout+time.Second {
		t.Errorf("closeConn lingered %v", elapsed)
	}

	client.SetReadDeadline(time.Now().Add(time.Second))
	n, err := client.Read(make([]byte, 1))
	test.AssertEqual(t, 0, n)
	test.AssertErrorIs(t, err, io.EOF)
}

func TestCloseConnSkipsLingerWhenCancelled(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	test.AssertNoError(t, err)
	defer ln.Close()

	client, err := net.Dial("tcp", ln.Addr().String())
	test.AssertNoError(t, err)
	defer client.Close()

	server, err := ln.Accept()
	test.AssertNoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	test.AssertNoError(t, closeConn(ctx, server))
	if elapsed := time.Since(start); elapsed > lingerTimeout/2 {
		t.Errorf("cancelled close waited %v", elapsed)
	}
}

func TestCloseConnWithoutHalfClose(t *testing.T) {
	server, client := net.Pipe()
	defer client.Close()

	test.AssertNoError(t, closeConn(context.Background(), server))

	_, err := client.Read(make([]byte, 1))
	test.AssertErrorIs(t, err, io.EOF)
}
