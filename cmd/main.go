// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"lingualearn/internal/client"
	"lingualearn/internal/config"
	"lingualearn/internal/handlers"
	"lingualearn/internal/middleware"
	"lingualearn/internal/repository"
	"lingualearn/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	// DB接続 (GORM)
	db, err := repository.NewDB(cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if err := repository.Migrate(db); err != nil {
		slog.Error("Error migrating database schema", slog.Any("error", err))
		os.Exit(1)
	}
	if err := repository.SeedLanguages(context.Background(), db); err != nil {
		slog.Error("Error seeding language catalog", slog.Any("error", err))
		os.Exit(1)
	}

	// Dependency Injection
	userRepo := repository.NewGormUserRepository()
	langRepo := repository.NewGormLanguageRepository()
	vocabRepo := repository.NewGormVocabularyRepository()
	sentenceRepo := repository.NewGormSentenceRepository()
	sessionRepo := repository.NewGormSessionRepository()
	practiceRepo := repository.NewGormPracticeRepository()

	// 例文生成コラボレータ (APIキー未設定の環境では無効)
	var generator client.SentenceGenerator
	openaiClient := client.NewOpenAIClient(cfg.Generator)
	if openaiClient.Enabled() {
		slog.Info("Sentence generator enabled", slog.String("model", cfg.Generator.Model))
		generator = openaiClient
	} else {
		slog.Info("Sentence generator disabled (no API key configured)")
	}

	userService := service.NewUserService(db, userRepo, langRepo)
	vocabService := service.NewVocabularyService(db, vocabRepo, langRepo)
	sentenceService := service.NewSentenceService(db, sentenceRepo, langRepo, generator, cfg)
	sessionService := service.NewSessionService(db, sessionRepo, langRepo)
	practiceService := service.NewPracticeService(db, vocabRepo, sentenceRepo, practiceRepo, cfg)
	statsService := service.NewStatsService(db, vocabRepo, sessionRepo)

	userHandler := handlers.NewUserHandler(userService, logger)
	vocabHandler := handlers.NewVocabularyHandler(vocabService, logger)
	sentenceHandler := handlers.NewSentenceHandler(sentenceService, logger)
	practiceHandler := handlers.NewPracticeHandler(practiceService, sentenceService, sessionService, logger)
	statsHandler := handlers.NewStatsHandler(statsService, logger)

	// Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}
	r.Use(cors.New(corsOptions).Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/users", userHandler.CreateUser)
		r.Get("/languages", userHandler.GetLanguages)

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			if cfg.Auth.Enabled {
				slog.Info("Applying JWT authentication middleware")
				r.Use(middleware.JWTAuthMiddleware(cfg))
			} else {
				slog.Warn("Authentication disabled, using X-User-ID header identity")
				r.Use(middleware.DevUserContextMiddleware)
			}

			r.Get("/users/me", userHandler.GetMe)

			r.Route("/user-languages", func(r chi.Router) {
				r.Get("/", userHandler.GetUserLanguages)
				r.Post("/", userHandler.AddUserLanguage)
				r.Delete("/{language_id}", userHandler.RemoveUserLanguage)
			})

			r.Route("/vocabulary", func(r chi.Router) {
				r.Post("/", vocabHandler.PostVocabulary)
				r.Post("/bulk", vocabHandler.BulkPostVocabulary)
				r.Get("/", vocabHandler.GetVocabularies)
				r.Get("/{vocabulary_id}", vocabHandler.GetVocabulary)
				r.Delete("/{vocabulary_id}", vocabHandler.DeleteVocabulary)
			})

			r.Post("/sentences", sentenceHandler.PostSentence)

			r.Route("/practice", func(r chi.Router) {
				r.Get("/vocabulary", practiceHandler.GetPracticeVocabulary)
				r.Post("/sentence", practiceHandler.PostPracticeSentence)
				r.Post("/score", practiceHandler.PostScoreTranslation)
				r.Post("/record", practiceHandler.PostRecordAttempt)
				r.Post("/session/start", practiceHandler.PostStartSession)
				r.Post("/session/{session_id}/end", practiceHandler.PostEndSession)
			})

			r.Get("/stats", statsHandler.GetStats)
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Start Server
	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
