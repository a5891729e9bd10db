package http

import "strings"

const (
	MaxRequestSize         = 2 * 1024 * 1024 // 2MB
	DefaultReadBufferSize  = 4096            // 4kB
	DefaultWriteBufferSize = 4096            // 4kB
	MaxRequestHeaders      = 255
)

// Handler processes one request and fills in the response.
type Handler func(req *Request, res *Response)

// Headers holds header fields keyed by lowercased name. Lookup through Get
// is therefore case-insensitive regardless of how the peer spelled the name.
type Headers map[string][]string

func (h Headers) Get(name string) (string, bool) {
	values, found := h[strings.ToLower(name)]
	if !found || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func (h Headers) Set(name, value string) {
	h[strings.ToLower(name)] = []string{value}
}

func (h Headers) Add(name, value string) {
	name = strings.ToLower(name)
	h[name] = append(h[name], value)
}

func (h Headers) Del(name string) {
	delete(h, strings.ToLower(name))
}
