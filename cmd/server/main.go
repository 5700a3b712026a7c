package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/icannDevTeam/language-hub/internal/config"
	"github.com/icannDevTeam/language-hub/internal/database"
	"github.com/icannDevTeam/language-hub/internal/handlers"
	"github.com/icannDevTeam/language-hub/internal/middleware"
	"github.com/icannDevTeam/language-hub/internal/models"
	"github.com/icannDevTeam/language-hub/internal/repository"
	"github.com/icannDevTeam/language-hub/internal/router"
	"github.com/icannDevTeam/language-hub/internal/services"
	"github.com/icannDevTeam/language-hub/internal/store"
)

func main() {
	log.Println("🚀 Starting Language Hub Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Open Flat-File Stores ────
	lessonStore, err := store.Open[models.Lesson](filepath.Join(cfg.DataDir, "lessons.json"))
	if err != nil {
		log.Fatalf("✗ Lesson store initialization failed: %v", err)
	}
	historyStore, err := store.Open[models.PracticeSession](filepath.Join(cfg.DataDir, "practice_history.json"))
	if err != nil {
		log.Fatalf("✗ Practice history store initialization failed: %v", err)
	}
	ids := store.NewIDSource()
	log.Printf("✓ Data files ready in %s", cfg.DataDir)

	// ──── Step 3: Initialize Services ────
	lessonService := services.NewLessonService(lessonStore, ids)
	practiceService := services.NewPracticeService(historyStore, ids)
	feedbackService := services.NewFeedbackService(
		cfg.AnthropicAPIKey,
		cfg.AnthropicModel,
		time.Duration(cfg.AnalyzeTimeoutSeconds)*time.Second,
	)
	if cfg.AnthropicAPIKey == "" {
		log.Println("! ANTHROPIC_API_KEY not set, analysis will use fallback feedback only")
	} else {
		log.Println("✓ Anthropic client initialized")
	}

	// ──── Step 4: Initialize Handlers ────
	pagesHandler := handlers.NewPagesHandler(cfg.StaticDir)
	lessonHandler := handlers.NewLessonHandler(lessonService)
	practiceHandler := handlers.NewPracticeHandler(practiceService)
	analyzeHandler := handlers.NewAnalyzeHandler(feedbackService)

	// ──── Step 5: Optional Teacher Portal ────
	var portalHandler *handlers.PortalHandler
	var jwtAuth *middleware.JWTAuth
	if cfg.PortalEnabled() {
		if cfg.JWTSecret == "" {
			log.Fatal("✗ JWT_SECRET is required when DATABASE_URL is set")
		}

		pool, err := database.NewPostgresPool(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("✗ PostgreSQL connection failed: %v", err)
		}
		defer pool.Close()
		log.Println("✓ PostgreSQL connected")

		if err := database.RunMigrations(pool, "migrations"); err != nil {
			log.Fatalf("✗ Database migration failed: %v", err)
		}
		log.Println("✓ Database migrations applied")

		teacherRepo := repository.NewTeacherRepo(pool)
		portalLessonRepo := repository.NewPortalLessonRepo(pool)
		progressRepo := repository.NewProgressRepo(pool)

		jwtAuth = middleware.NewJWTAuth(cfg.JWTSecret)
		portalAuth := services.NewPortalAuthService(teacherRepo, jwtAuth, cfg.ApprovedTeacherDomain)
		portalHandler = handlers.NewPortalHandler(portalAuth, teacherRepo, portalLessonRepo, progressRepo)
		log.Println("✓ Teacher portal enabled")
	} else {
		log.Println("! DATABASE_URL not set, teacher portal disabled")
	}

	// ──── Step 6: Start HTTP Server ────
	r := router.New(
		pagesHandler,
		lessonHandler,
		practiceHandler,
		analyzeHandler,
		portalHandler,
		jwtAuth,
		cfg.StaticDir,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second, // analysis calls can take a while
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Language Hub ready on http://localhost:%s", cfg.Port)
	log.Printf("  📚 Teacher Interface: http://localhost:%s/teacher", cfg.Port)
	log.Printf("  👨‍🎓 Student Interface: http://localhost:%s/student", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
