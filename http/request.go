package http

import (
	"bytes"
	"strings"
)

const maxRequestLineLog = 256

// requestLine returns the first line of a raw request for logging. Nothing
// else is looked at.
func requestLine(raw []byte) string {
	if i := bytes.IndexAny(raw, "\r\n"); i >= 0 {
		raw = raw[:i]
	}
	if len(raw) > maxRequestLineLog {
		raw = raw[:maxRequestLineLog]
	}

	return strings.ToValidUTF8(strings.TrimSpace(string(raw)), "�")
}
