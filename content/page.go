package content

import (
	"errors"
	"fmt"
	"os"
	"sync"
)

// ResponseHeader precedes every page body on the wire.
const ResponseHeader = "HTTP/1.1 200 OK\r\nContent-Type: text/html\r\n\r\n"

var (
	ErrUnknownSource = errors.New("content: unknown source")
	ErrMissingPath   = errors.New("content: file source needs a path")
)

// Source selects where the page body comes from.
type Source string

const (
	SourceEmbedded Source = "embedded"
	SourceLiteral  Source = "literal"
	SourceFile     Source = "file"
)

// Page is a complete, immutable HTTP response.
type Page struct {
	response []byte
}

// NewPage builds the response for body. body is copied.
func NewPage(body []byte) *Page {
	response := make([]byte, 0, len(ResponseHeader)+len(body))
	response = append(response, ResponseHeader...)
	response = append(response, body...)

	return &Page{response: response}
}

// ResponseBytes returns the bytes sent to every client. The slice is shared
// between all callers and must not be modified.
func (p *Page) ResponseBytes() []byte {
	return p.response
}

// Body returns the page without its status line and headers.
func (p *Page) Body() []byte {
	return p.response[len(ResponseHeader):]
}

var homepage = sync.OnceValue(func() *Page {
	return NewPage(DecodeEmbedded(EncodedHomepage))
})

// Homepage returns the page decoded from EncodedHomepage. Decoding happens once
// per process.
func Homepage() *Page {
	return homepage()
}

// Load resolves source into a page. path is only read for SourceFile.
func Load(source Source, path string) (*Page, error) {
	switch source {
	case SourceEmbedded, "":
		return Homepage(), nil
	case SourceLiteral:
		return NewPage([]byte(HomepageHTML)), nil
	case SourceFile:
		if path == "" {
			return nil, ErrMissingPath
		}

		body, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("content: reading page: %w", err)
		}

		return NewPage(body), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, source)
	}
}
