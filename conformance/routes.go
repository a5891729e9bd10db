// Package conformance assembles the route table exercised by the black-box
// suite: the same GET/POST surface the Scryer Prolog server under test
// exposes, rebuilt on this module's server core.
package conformance

import (
	"github.com/aarroyoc/scryer-http-lyncex/filesystem"
	"github.com/aarroyoc/scryer-http-lyncex/http"
)

const WelcomeMessage = "Welcome to Scryer Prolog!"

// NewRouter builds the conformance route table. filePath is the binary
// resource served verbatim under GET /file; its provisioning is up to the
// caller.
func NewRouter(fs filesystem.Filesystem, filePath string) http.Router {
	router := http.NewRouter()

	router.GET("/", func(req *http.Request, res *http.Response) {
		res.WithText(WelcomeMessage)
	})

	router.GET("/user-agent", func(req *http.Request, res *http.Response) {
		res.WithText(req.UserAgent())
	})

	router.GET("/user/:name", func(req *http.Request, res *http.Response) {
		name, _ := req.Param("name")
		res.WithText(name)
	})

	router.GET("/redirectme", func(req *http.Request, res *http.Response) {
		res.WithRedirect("/", http.StatusSeeOther)
	})

	router.GET("/search", func(req *http.Request, res *http.Response) {
		term, found := req.QueryParam("q")
		if !found {
			res.WithStatus(http.StatusBadRequest)
			return
		}
		res.WithText("Search term: " + term)
	})

	router.GET("/file", func(req *http.Request, res *http.Response) {
		res.WithFile(fs, filePath)
	})

	router.POST("/echo-text", func(req *http.Request, res *http.Response) {
		body, err := req.DecodeBody()
		if err != nil {
			res.WithStatus(http.StatusBadRequest)
			return
		}
		res.WithText(body.Text())
	})

	router.POST("/echo", func(req *http.Request, res *http.Response) {
		body, err := req.DecodeBody()
		if err != nil || body.Kind != http.ContentJSON {
			res.WithStatus(http.StatusBadRequest)
			return
		}
		res.WithJSON(body.JSON)
	})

	router.POST("/form", func(req *http.Request, res *http.Response) {
		body, err := req.DecodeBody()
		if err != nil || body.Kind != http.ContentForm {
			res.WithStatus(http.StatusBadRequest)
			return
		}
		value, found := body.Form.Get("key2")
		if !found {
			res.WithStatus(http.StatusBadRequest)
			return
		}
		res.WithText(value)
	})

	return router
}
