package http

import "strings"

// segment is one piece of a route pattern. A param segment matches any
// non-empty path segment and captures it under its name.
type segment struct {
	literal string
	param   string
}

type Route struct {
	Methods  []string
	Path     string
	Handler  Handler
	segments []segment
}

// NotFoundHandler answers for every request no route matched.
var NotFoundHandler Handler = func(req *Request, res *Response) {
	res.WithStatus(StatusNotFound)
}

func splitPattern(path string) []segment {
	parts := splitPath(path)
	segments := make([]segment, 0, len(parts))
	for _, part := range parts {
		if strings.HasPrefix(part, ":") && len(part) > 1 {
			segments = append(segments, segment{param: part[1:]})
		} else {
			segments = append(segments, segment{literal: part})
		}
	}
	return segments
}

// splitPath breaks a path on '/' and drops the empty segments a leading or
// trailing slash produces, so "/" and "" both come out empty.
func splitPath(path string) []string {
	var parts []string
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

// match reports whether the request path segments satisfy this route, and
// captures path parameters when they do.
func (route *Route) match(parts []string) (Params, bool) {
	if len(parts) != len(route.segments) {
		return nil, false
	}

	var params Params
	for i, seg := range route.segments {
		if seg.param != "" {
			if params == nil {
				params = make(Params, 1)
			}
			params[seg.param] = parts[i]
			continue
		}
		if seg.literal != parts[i] {
			return nil, false
		}
	}
	return params, true
}
