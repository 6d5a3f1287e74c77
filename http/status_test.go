package http

import (
	"bytes"
	"testing"

	"github.com/freekieb7/homepage/test"
)

func TestStatusLine(t *testing.T) {
	test.AssertEqual(t, "HTTP/1.1 503 Service Unavailable\r\n", statusLine(StatusServiceUnavailable))
	test.AssertEqual(t, "", StatusText(200))
	test.AssertEqual(t, "", StatusText(418))
}

func TestResponseBusy(t *testing.T) {
	if !bytes.HasPrefix(responseBusy, []byte("HTTP/1.1 503 Service Unavailable\r\n")) {
		t.Errorf("missing status line: %q", responseBusy)
	}
	if !bytes.Contains(responseBusy, []byte("\r\nConnection: close\r\n\r\n")) {
		t.Errorf("missing connection header: %q", responseBusy)
	}
}
