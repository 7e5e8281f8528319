package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// PageHandler serves the public pages and assets. Unlike an SPA server it
// does not fall back to index.html: unknown paths are 404 so missing assets
// fail loudly.
type PageHandler struct {
	staticDir string
	indexFile string
}

func NewPageHandler(staticDir string) *PageHandler {
	return &PageHandler{
		staticDir: staticDir,
		indexFile: "index.html",
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/")
	if path == "" {
		path = h.indexFile
	}

	if strings.HasPrefix(path, "api/") || strings.Contains(path, "..") {
		http.NotFound(w, r)
		return
	}

	filePath := filepath.Join(h.staticDir, path)

	info, err := os.Stat(filePath)
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	http.ServeFile(w, r, filePath)
}

func StaticPageServer(staticDir string) http.Handler {
	return NewPageHandler(staticDir)
}
