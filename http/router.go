package http

// Router is an ordered route table. Registration happens once at startup;
// after that the table is read-only and Lookup is safe to call from any
// number of connection goroutines without locking.
type Router struct {
	Routes     []Route
	Middleware []Middleware
}

func NewRouter() Router {
	return Router{
		Routes: make([]Route, 0),
	}
}

func (router *Router) GET(path string, handler Handler, middleware ...Middleware) {
	router.Any([]string{"GET"}, path, handler, middleware...)
}

func (router *Router) HEAD(path string, handler Handler, middleware ...Middleware) {
	router.Any([]string{"HEAD"}, path, handler, middleware...)
}

func (router *Router) POST(path string, handler Handler, middleware ...Middleware) {
	router.Any([]string{"POST"}, path, handler, middleware...)
}

func (router *Router) PUT(path string, handler Handler, middleware ...Middleware) {
	router.Any([]string{"PUT"}, path, handler, middleware...)
}

func (router *Router) PATCH(path string, handler Handler, middleware ...Middleware) {
	router.Any([]string{"PATCH"}, path, handler, middleware...)
}

func (router *Router) DELETE(path string, handler Handler, middleware ...Middleware) {
	router.Any([]string{"DELETE"}, path, handler, middleware...)
}

func (router *Router) OPTIONS(path string, handler Handler, middleware ...Middleware) {
	router.Any([]string{"OPTIONS"}, path, handler, middleware...)
}

// Any registers a route for the given methods. Route middleware wraps the
// handler now, at registration time, so Lookup stays allocation-free on the
// hot path.
func (router *Router) Any(methods []string, path string, handler Handler, middleware ...Middleware) {
	for _, m := range middleware {
		handler = m(handler)
	}

	router.Routes = append(router.Routes, Route{
		Methods:  methods,
		Path:     path,
		Handler:  handler,
		segments: splitPattern(path),
	})
}

// Group registers every route built by groupFunc under a path prefix, with
// the group middleware wrapped around each.
func (router *Router) Group(path string, groupFunc func(group *Router), middleware ...Middleware) {
	group := NewRouter()
	groupFunc(&group)

	for _, route := range group.Routes {
		handler := route.Handler
		for _, m := range middleware {
			handler = m(handler)
		}
		router.Any(route.Methods, path+route.Path, handler)
	}
}

// Lookup resolves a request to a handler. Routes are tried in registration
// order and the first match wins; captured path parameters come back with
// the handler. When nothing matches, the NotFoundHandler is returned.
// Router-level middleware wraps whichever handler is selected, the not
// found one included.
func (router *Router) Lookup(method, path string) (Handler, Params) {
	handler := NotFoundHandler
	var params Params

	parts := splitPath(path)
	for i := range router.Routes {
		route := &router.Routes[i]

		methodMatches := false
		for _, m := range route.Methods {
			if m == method {
				methodMatches = true
				break
			}
		}
		if !methodMatches {
			continue
		}

		if captured, ok := route.match(parts); ok {
			handler = route.Handler
			params = captured
			break
		}
	}

	for i := len(router.Middleware) - 1; i >= 0; i-- {
		handler = router.Middleware[i](handler)
	}

	return handler, params
}
