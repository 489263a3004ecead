package parser

import (
	"io"

	"golang.org/x/net/html/charset"
)

// NewUTF8Reader converts an HTML body to UTF-8 before it reaches goquery.
// contentType is the response Content-Type header and may be empty, in which case the
// encoding is detected from BOMs, <meta> tags, or a content heuristic.
// 3cat serves UTF-8 today, but show pages cached by intermediaries have been seen in Windows-1252.
func NewUTF8Reader(body io.Reader, contentType string) (io.Reader, error) {
	return charset.NewReader(body, contentType)
}
