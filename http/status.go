package http

import "strconv"

// The page response carries its own status line (content.ResponseHeader);
// only the statuses the server writes by itself live here.
const (
	StatusServiceUnavailable uint16 = 503 // RFC 7231, 6.6.4
)

func StatusText(code uint16) string {
	switch code {
	case StatusServiceUnavailable:
		return "Service Unavailable"
	}
	return ""
}

func statusLine(code uint16) string {
	return "HTTP/1.1 " + strconv.Itoa(int(code)) + " " + StatusText(code) + "\r\n"
}
