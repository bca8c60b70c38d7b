package handler

import (
	"net/http"
	"os"
	"path/filepath"
)

type SEOHandler struct{}

func NewSEOHandler() *SEOHandler {
	return &SEOHandler{}
}

// Robots serves robots.txt. The tracking area is private to the device,
// so crawlers are kept out of /app.
func (h *SEOHandler) Robots(w http.ResponseWriter, r *http.Request) {
	robotsPath := filepath.Join("static", "robots.txt")
	content, err := os.ReadFile(robotsPath)
	if err != nil {
		content = []byte(`User-agent: *
Allow: /
Disallow: /app/
`)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write(content)
}
