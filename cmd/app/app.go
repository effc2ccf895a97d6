package app

import (
	"log"

	"blogspace/internal/config"
	"blogspace/internal/database"
	"blogspace/internal/realtime"
	"blogspace/internal/repository"
	"blogspace/internal/service"
)

// App wires the database, repositories, services and the posts change
// listener. The returned listener still has to be started with Run.
func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service, *realtime.Hub, *realtime.Listener) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	hub := realtime.NewHub()

	listener, err := realtime.NewListener(cfg.DB.DSN(), hub)
	if err != nil {
		log.Fatalf("failed to start change listener: %v", err)
	}

	repo := repository.NewRepository(db.DB)
	services := service.NewService(repo, cfg)

	return db, repo, services, hub, listener
}
