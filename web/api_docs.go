package web

import (
	"embed"
	"io"
	"io/fs"
	"net/http"
	"strings"
)

//go:embed api-docs/*
var apiDocsFS embed.FS

// APIDocsHandler serves the embedded Scalar API reference UI at /api-docs.
// The page loads its OpenAPI document from /api/openapi.json.
func APIDocsHandler() http.Handler {
	docs, err := fs.Sub(apiDocsFS, "api-docs")
	if err != nil {
		// The path is hardcoded; this cannot fail.
		panic("api docs sub-filesystem: " + err.Error())
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		path := strings.TrimPrefix(r.URL.Path, "/api-docs")
		path = strings.TrimPrefix(path, "/")
		if path == "" {
			path = "index.html"
		}

		file, err := docs.Open(path)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		defer file.Close()

		if strings.HasSuffix(path, ".html") {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Header().Set("Cache-Control", "no-cache, must-revalidate")
		}

		if r.Method == http.MethodHead {
			return
		}
		_, _ = io.Copy(w, file)
	})
}
