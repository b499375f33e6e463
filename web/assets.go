package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var static embed.FS

// mountAssets serves the embedded viewer page at the root.
func (s *Server) mountAssets(mux *http.ServeMux) {
	staticFS, err := fs.Sub(static, "static")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	mux.Handle("GET /", http.FileServerFS(staticFS))
}
