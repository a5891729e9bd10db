package http

import (
	"bufio"
	"strconv"

	"github.com/aarroyoc/scryer-http-lyncex/filesystem"
	"github.com/aarroyoc/scryer-http-lyncex/json"
)

// Response accumulates status, headers and body, then goes to the wire in
// one Write call. The With* methods chain and may be called in any order;
// the last writer of a field wins.
type Response struct {
	Status  uint16
	Headers Headers
	Body    []byte
}

func (res *Response) Reset() {
	res.Status = StatusOK
	res.Headers = make(Headers)
	res.Body = nil
}

func (res *Response) WithStatus(status uint16) *Response {
	res.Status = status
	return res
}

func (res *Response) WithText(text string) *Response {
	res.Headers.Set("Content-Type", "text/plain; charset=utf-8")
	res.Body = []byte(text)
	return res
}

func (res *Response) WithHTML(html string) *Response {
	res.Headers.Set("Content-Type", "text/html; charset=utf-8")
	res.Body = []byte(html)
	return res
}

// WithJSON serializes value through the json package. Strings are encoded
// like any other value; use WithRawJSON for bytes that already are JSON.
func (res *Response) WithJSON(value any) *Response {
	res.Headers.Set("Content-Type", "application/json")

	data, err := json.Marshal(value)
	if err != nil {
		res.Status = StatusInternalServerError
		res.Body = nil
		return res
	}
	res.Body = data
	return res
}

// WithRawJSON sets the body to bytes the caller asserts are valid JSON.
func (res *Response) WithRawJSON(data []byte) *Response {
	res.Headers.Set("Content-Type", "application/json")
	res.Body = data
	return res
}

// WithBinary sets the body to the given bytes verbatim under an explicit
// content type.
func (res *Response) WithBinary(contentType string, data []byte) *Response {
	res.Headers.Set("Content-Type", contentType)
	res.Body = data
	return res
}

// WithFile serves the file's bytes untouched, with a content type derived
// from the file extension. A missing file becomes a 404.
func (res *Response) WithFile(fs filesystem.Filesystem, path string) *Response {
	data, err := fs.ReadFile(path)
	if err != nil {
		res.Status = StatusNotFound
		res.Body = nil
		return res
	}
	return res.WithBinary(GetMimeType(path), data)
}

// WithRedirect points the client at location. The server only emits the
// redirect; following it is the client's business.
func (res *Response) WithRedirect(location string, status uint16) *Response {
	res.Status = status
	res.Headers.Set("Location", location)
	res.Body = nil
	return res
}

// Write emits the response: status line, headers, Content-Length, body.
func (res *Response) Write(bw *bufio.Writer) error {
	status := res.Status
	if status == 0 {
		status = StatusOK
	}

	if _, err := bw.WriteString("HTTP/1.1 " + strconv.Itoa(int(status)) + " " + StatusMessage(status) + "\r\n"); err != nil {
		return err
	}

	for name, values := range res.Headers {
		for _, value := range values {
			if _, err := bw.WriteString(name + ": " + value + "\r\n"); err != nil {
				return err
			}
		}
	}

	if _, err := bw.WriteString("content-length: " + strconv.Itoa(len(res.Body)) + "\r\n\r\n"); err != nil {
		return err
	}

	if _, err := bw.Write(res.Body); err != nil {
		return err
	}

	return bw.Flush()
}
