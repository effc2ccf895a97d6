package handlers

import (
	"github.com/go-playground/validator/v10"

	"blogspace/internal/config"
	"blogspace/internal/database"
	"blogspace/internal/metrics"
	"blogspace/internal/realtime"
	"blogspace/internal/repository"
	"blogspace/internal/service"
)

type Handlers struct {
	AuthService service.AuthService
	PostService service.PostService
	UserRepo    repository.UserRepository
	Hub         *realtime.Hub
	Metrics     *metrics.Collector
	DB          *database.DB
	Cfg         *config.Config
	Validate    *validator.Validate
}

func NewHandlers(repo *repository.Repository, services *service.Service, hub *realtime.Hub, collector *metrics.Collector, db *database.DB, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthService: services.Auth,
		PostService: services.Post,
		UserRepo:    repo.User,
		Hub:         hub,
		Metrics:     collector,
		DB:          db,
		Cfg:         cfg,
		Validate:    validator.New(),
	}
}
