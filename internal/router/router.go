package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/icannDevTeam/language-hub/internal/handlers"
	"github.com/icannDevTeam/language-hub/internal/middleware"
)

// maxBodyBytes admits lesson uploads with embedded audio data URIs.
const maxBodyBytes = 50 << 20

func New(
	pages *handlers.PagesHandler,
	lessonHandler *handlers.LessonHandler,
	practiceHandler *handlers.PracticeHandler,
	analyzeHandler *handlers.AnalyzeHandler,
	portalHandler *handlers.PortalHandler,
	jwtAuth *middleware.JWTAuth,
	staticDir string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.RequestSize(maxBodyBytes))
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS)

	// Limits outbound AI calls, not local reads (30 req/min per IP)
	analyzeLimiter := middleware.NewRateLimiter(30, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// ──── Pages ────
	r.Get("/", pages.Student)
	r.Get("/student", pages.Student)
	r.Get("/mandarin-tool", pages.Student)
	r.Get("/teacher", pages.Teacher)
	r.Get("/teachers", pages.Teacher)
	r.Get("/teacher-portal", pages.Teacher)
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(staticDir))))

	r.Route("/api", func(r chi.Router) {

		// ──── Lesson Routes ────
		r.Route("/lessons", func(r chi.Router) {
			r.Get("/", lessonHandler.List)
			r.Post("/", lessonHandler.Create)
			r.Get("/{id}", lessonHandler.Get)
			r.Put("/{id}", lessonHandler.Update)
			r.Delete("/{id}", lessonHandler.Delete)
		})

		// ──── Practice Routes ────
		r.Route("/practice", func(r chi.Router) {
			r.Post("/", practiceHandler.Submit)
			r.Get("/history", practiceHandler.History)
			r.Get("/stats", practiceHandler.Stats)
		})

		// ──── AI Feedback ────
		r.With(analyzeLimiter.Middleware).Post("/analyze", analyzeHandler.Analyze)

		// ──── Portal Routes (only when a database is configured) ────
		if portalHandler != nil {
			r.Route("/portal", func(r chi.Router) {
				r.Route("/auth", func(r chi.Router) {
					r.Post("/signup", portalHandler.SignUp)
					r.Post("/signin", portalHandler.SignIn)

					r.Group(func(r chi.Router) {
						r.Use(jwtAuth.Middleware)
						r.Post("/signout", portalHandler.SignOut)
						r.Get("/me", portalHandler.Me)
					})
				})

				r.Get("/teachers", portalHandler.ListTeachers)
				r.Get("/teachers/{email}", portalHandler.GetTeacher)

				r.Route("/lessons", func(r chi.Router) {
					r.Get("/public", portalHandler.PublicLessons)

					r.Group(func(r chi.Router) {
						r.Use(jwtAuth.Middleware)
						r.Post("/", portalHandler.CreateLesson)
						r.Get("/", portalHandler.MyLessons)
					})
				})

				r.Route("/progress", func(r chi.Router) {
					r.Post("/", portalHandler.SaveProgress)
					r.Get("/{student}", portalHandler.GetProgress)
				})
			})
		}
	})

	return r
}
