package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"blogspace/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password, fullName string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
	ClearRefreshToken(ctx context.Context, userID string) error
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.PostWithAuthor, error)
	List(ctx context.Context) ([]models.PostWithAuthor, error)
	Update(ctx context.Context, postID, title, content string) error
	Delete(ctx context.Context, postID string) error
}

type Repository struct {
	User UserRepository
	Post PostRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User: NewUserRepository(db),
		Post: NewPostRepository(db),
	}
}
