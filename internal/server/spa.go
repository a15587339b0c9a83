package server

import (
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// spaHandler serves the built client. Paths that do not name a file get index.html.
type spaHandler struct {
	root string
}

func newSPAHandler(dir string) (*spaHandler, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve static directory %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("could not find the build directory: %s, make sure to build the client first", abs)
	}
	return &spaHandler{root: abs}, nil
}

func (h *spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := path.Clean("/" + r.URL.Path)
	if name != "/" {
		full := filepath.Join(h.root, filepath.FromSlash(strings.TrimPrefix(name, "/")))
		if serveFile(w, r, full) {
			return
		}
	}

	if !serveFile(w, r, filepath.Join(h.root, "index.html")) {
		http.Error(w, "index.html not found", http.StatusNotFound)
	}
}

// serveFile writes the regular file at full and reports whether it existed. Unlike
// http.ServeFile it never redirects requests ending in /index.html.
func serveFile(w http.ResponseWriter, r *http.Request, full string) bool {
	f, err := os.Open(full)
	if err != nil {
		return false
	}
	defer f.Close() //nolint:errcheck // read-only

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	return true
}
