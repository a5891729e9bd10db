package http

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrMalformedRequest = errors.New("http: malformed request")

// Params holds path parameters captured by the router, keyed by the
// parameter name without the leading ':'.
type Params map[string]string

// Request is one parsed HTTP request. It is filled in by Parse and treated
// as read-only by handlers; Params is attached by the router before the
// handler runs.
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Protocol string
	Headers  Headers
	Body     []byte
	Params   Params

	query       Values
	queryParsed bool
	queryErr    error
}

// Parse reads one request from the wire: request line, headers and a
// Content-Length delimited body. The body is fully buffered; Parse fails
// when it announces more than MaxRequestSize bytes.
func (req *Request) Parse(br *bufio.Reader) error {
	requestLine, err := br.ReadString('\n')
	if err != nil {
		return err
	}
	requestLine = strings.TrimSpace(requestLine)
	if requestLine == "" {
		return io.EOF
	}

	parts := strings.Split(requestLine, " ")
	if len(parts) != 3 {
		return fmt.Errorf("%w: request line %q", ErrMalformedRequest, requestLine)
	}
	req.Method = parts[0]
	req.Protocol = parts[2]

	if !ValidateMethod(req.Method) {
		return fmt.Errorf("%w: method %q", ErrMalformedRequest, req.Method)
	}

	target := parts[1]
	if i := strings.IndexByte(target, '?'); i >= 0 {
		req.RawQuery = target[i+1:]
		target = target[:i]
	}
	path, err := unescape(target, false)
	if err != nil {
		return fmt.Errorf("%w: target %q", ErrMalformedRequest, parts[1])
	}
	req.Path = path

	req.Headers = make(Headers)
	for lines := 0; ; lines++ {
		line, err := br.ReadString('\n')
		if err != nil {
			return fmt.Errorf("%w: %s", ErrMalformedRequest, err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}
		if lines >= MaxRequestHeaders {
			return fmt.Errorf("%w: too many headers", ErrMalformedRequest)
		}
		i := strings.IndexByte(line, ':')
		if i < 0 {
			return fmt.Errorf("%w: header %q", ErrMalformedRequest, line)
		}
		req.Headers.Add(strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:]))
	}

	if value, found := req.Headers.Get("Content-Length"); found {
		length, err := atoi(value)
		if err != nil {
			return fmt.Errorf("%w: content-length %q", ErrMalformedRequest, value)
		}
		if length > MaxRequestSize {
			return fmt.Errorf("%w: body of %d bytes exceeds limit", ErrMalformedRequest, length)
		}
		if length > 0 {
			req.Body = make([]byte, length)
			if _, err := io.ReadFull(br, req.Body); err != nil {
				return fmt.Errorf("%w: short body: %s", ErrMalformedRequest, err)
			}
		}
	}

	return nil
}

// HeaderValue looks up a header by name, case-insensitively.
func (req *Request) HeaderValue(name string) (string, bool) {
	return req.Headers.Get(name)
}

func (req *Request) ContentType() string {
	value, _ := req.Headers.Get("Content-Type")
	return value
}

func (req *Request) UserAgent() string {
	value, _ := req.Headers.Get("User-Agent")
	return value
}

// Param returns the path parameter captured under name by the router.
func (req *Request) Param(name string) (string, bool) {
	value, found := req.Params[name]
	return value, found
}

// Query returns the decoded query parameters. Parsing happens once per
// request; later calls reuse the result.
func (req *Request) Query() (Values, error) {
	if !req.queryParsed {
		req.query, req.queryErr = ParseQuery(req.RawQuery)
		req.queryParsed = true
	}
	return req.query, req.queryErr
}

// QueryParam returns the first value of a query parameter, in wire order.
func (req *Request) QueryParam(name string) (string, bool) {
	values, err := req.Query()
	if err != nil {
		return "", false
	}
	return values.Get(name)
}

// KeepAlive reports whether the connection should stay open after this
// request, per the HTTP/1.0 and HTTP/1.1 defaults.
func (req *Request) KeepAlive() bool {
	connection, found := req.Headers.Get("Connection")
	if req.Protocol == "HTTP/1.1" {
		return !found || !strings.EqualFold(connection, "close")
	}
	return found && strings.EqualFold(connection, "keep-alive")
}

// Reset clears the request for reuse on the next round of a keep-alive
// connection.
func (req *Request) Reset() {
	*req = Request{}
}
