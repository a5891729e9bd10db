package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aarroyoc/scryer-http-lyncex/json"
)

var ErrMalformedBody = errors.New("http: malformed request body")

// ContentKind is the decoded body representation picked from the
// Content-Type header. The codec switches over it exhaustively instead of
// inspecting the media type string more than once.
type ContentKind uint8

const (
	ContentBinary ContentKind = iota
	ContentText
	ContentJSON
	ContentForm
)

// ContentKindOf classifies a Content-Type header value. Media type
// parameters such as charset are ignored. An absent or unrecognized type is
// binary passthrough.
func ContentKindOf(contentType string) ContentKind {
	mediaType := contentType
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = mediaType[:i]
	}
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))

	switch mediaType {
	case "application/json":
		return ContentJSON
	case "application/x-www-form-urlencoded":
		return ContentForm
	}
	if strings.HasPrefix(mediaType, "text/") {
		return ContentText
	}
	return ContentBinary
}

// Body is a decoded request body. Raw always carries the untouched bytes;
// JSON and Form are only set for their respective kinds.
type Body struct {
	Kind ContentKind
	Raw  []byte
	JSON any
	Form Values
}

// Text interprets the raw bytes as UTF-8 text.
func (b Body) Text() string {
	return string(b.Raw)
}

// DecodeBody decodes the buffered request body according to the declared
// content type. Raw bytes are never mutated or truncated; a JSON or form
// body that does not parse is a client error.
func (req *Request) DecodeBody() (Body, error) {
	body := Body{
		Kind: ContentKindOf(req.ContentType()),
		Raw:  req.Body,
	}

	switch body.Kind {
	case ContentJSON:
		value, err := json.Decode(req.Body)
		if err != nil {
			return body, fmt.Errorf("%w: %s", ErrMalformedBody, err)
		}
		body.JSON = value
	case ContentForm:
		form, err := ParseQuery(string(req.Body))
		if err != nil {
			return body, fmt.Errorf("%w: %s", ErrMalformedBody, err)
		}
		body.Form = form
	}

	return body, nil
}
