package handlers

import (
	"net/http"
	"path/filepath"
)

// PagesHandler serves the named front-end pages. The pages themselves are
// plain static files under the configured directory.
type PagesHandler struct {
	staticDir string
}

func NewPagesHandler(staticDir string) *PagesHandler {
	return &PagesHandler{staticDir: staticDir}
}

// Student serves the student practice page, also the default for "/" and the
// legacy /mandarin-tool route.
func (h *PagesHandler) Student(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.staticDir, "student.html"))
}

// Teacher serves the teacher portal page.
func (h *PagesHandler) Teacher(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.staticDir, "teacher_portal.html"))
}
