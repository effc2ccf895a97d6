package service

import (
	"blogspace/internal/config"
	"blogspace/internal/repository"
)

type Service struct {
	Auth AuthService
	Post PostService
}

func NewService(repo *repository.Repository, cfg *config.Config) *Service {
	return &Service{
		Auth: NewAuthService(repo.User, cfg),
		Post: NewPostService(repo.Post),
	}
}
