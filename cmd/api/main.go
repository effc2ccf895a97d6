package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"blogspace/cmd/app"
	"blogspace/internal/config"
	handlers "blogspace/internal/handler"
	"blogspace/internal/logger"
	"blogspace/internal/metrics"
	"blogspace/internal/middleware"
	"blogspace/internal/realtime"
)

func main() {
	logger.SetupDefault(os.Stdout)

	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	db, repo, services, hub, listener := app.App(cfg)
	defer db.CloseDB()

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)
	hub.OnPublish(func(realtime.Event) { collector.RecordChangeEvent() })

	handler := handlers.NewHandlers(repo, services, hub, collector, db, cfg)

	authLimiter := middleware.NewRateLimiter(cfg.AuthRatePerMinute, cfg.AuthRateBurst)
	defer authLimiter.Stop()

	r := mux.NewRouter()
	r.Use(middleware.MetricsMiddleware(collector))

	r.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", handler.HealthHandler).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler(registry)).Methods(http.MethodGet)
	r.HandleFunc("/api/events", handler.Events).Methods(http.MethodGet)

	auth := r.PathPrefix("/api/auth").Subrouter()
	auth.Use(authLimiter.Middleware)
	auth.HandleFunc("/register", handler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", handler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", handler.RefreshToken).Methods(http.MethodPost)

	// public reads
	r.HandleFunc("/api/posts", handler.GetPosts).Methods(http.MethodGet)
	r.HandleFunc("/api/posts/{id}", handler.GetPost).Methods(http.MethodGet)

	private := r.PathPrefix("/api").Subrouter()
	private.Use(mux.MiddlewareFunc(middleware.AuthMiddleware(cfg)))
	private.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)
	private.HandleFunc("/me", handler.GetCurrentUser).Methods(http.MethodGet)
	private.HandleFunc("/posts", handler.CreatePost).Methods(http.MethodPost)
	private.HandleFunc("/posts/{id}/edit", handler.GetPostForEdit).Methods(http.MethodGet)
	private.HandleFunc("/posts/{id}", handler.UpdatePost).Methods(http.MethodPut)
	private.HandleFunc("/posts/{id}", handler.DeletePost).Methods(http.MethodDelete)

	handlerChain := middleware.Chain(
		r,
		middleware.RecoveryMiddleware,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go listener.Run(ctx)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      handlerChain,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 0, // event streams stay open indefinitely
	}

	go func() {
		slog.Info("server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", slog.String("error", err.Error()))
	}
}
