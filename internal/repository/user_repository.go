package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"blogspace/internal/models"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateUser inserts the user and its profile row in one transaction so a
// post can always be joined with an author name.
func (r *userRepository) CreateUser(ctx context.Context, user *models.User, password, fullName string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if user.UserID == "" {
		user.UserID = uuid.New().String()
	}
	user.PasswordHash = string(hashedPassword)
	user.CreatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	userQuery := `
		INSERT INTO users (user_id, email, password_hash, refresh_token, refresh_token_expiry_time, created_at)
		VALUES (:user_id, :email, :password_hash, :refresh_token, :refresh_token_expiry_time, :created_at)
	`
	if _, err := tx.NamedExecContext(ctx, userQuery, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	profileQuery := `INSERT INTO profiles (user_id, full_name) VALUES ($1, $2)`
	if _, err := tx.ExecContext(ctx, profileQuery, user.UserID, fullName); err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit user creation: %w", err)
	}

	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE user_id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE email = $1`

	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile

	query := `SELECT user_id, full_name FROM profiles WHERE user_id = $1`

	err := r.db.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &profile, nil
}

func (r *userRepository) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	user, err := r.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, models.ErrInvalidCredentials
	}

	return user, nil
}

func (r *userRepository) UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error {
	query := `
		UPDATE users
		SET refresh_token = $1, refresh_token_expiry_time = $2
		WHERE user_id = $3
	`

	_, err := r.db.ExecContext(ctx, query, refreshToken, expiryTime, userID)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}

	return nil
}

func (r *userRepository) GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error) {
	var user models.User

	query := `
		SELECT * FROM users
		WHERE refresh_token = $1
		AND refresh_token <> ''
		AND refresh_token_expiry_time > CURRENT_TIMESTAMP
	`

	err := r.db.GetContext(ctx, &user, query, refreshToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user by refresh token: %w", err)
	}

	return &user, nil
}

// ClearRefreshToken invalidates the stored session so the refresh token
// can no longer be exchanged.
func (r *userRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	query := `
		UPDATE users
		SET refresh_token = '', refresh_token_expiry_time = 'epoch'
		WHERE user_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}

	return nil
}
