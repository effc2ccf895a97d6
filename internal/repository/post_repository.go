package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"blogspace/internal/models"
)

type PostRepositoryImpl struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (post_id, author_id, title, content, created_at, updated_at)
		VALUES (:post_id, :author_id, :title, :content, :created_at, :updated_at)
	`

	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}

	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.PostWithAuthor, error) {
	query := `
		SELECT p.post_id, p.author_id, p.title, p.content, p.created_at, p.updated_at,
		       pr.full_name AS author_name
		FROM posts p
		JOIN profiles pr ON pr.user_id = p.author_id
		WHERE p.post_id = $1
	`

	var post models.PostWithAuthor
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

// List returns every post joined with its author's full name, newest first.
func (r *PostRepositoryImpl) List(ctx context.Context) ([]models.PostWithAuthor, error) {
	query := `
		SELECT p.post_id, p.author_id, p.title, p.content, p.created_at, p.updated_at,
		       pr.full_name AS author_name
		FROM posts p
		JOIN profiles pr ON pr.user_id = p.author_id
		ORDER BY p.created_at DESC
	`

	posts := []models.PostWithAuthor{}
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) Update(ctx context.Context, postID, title, content string) error {
	query := `
		UPDATE posts SET
			title = $1,
			content = $2,
			updated_at = $3
		WHERE post_id = $4
	`

	result, err := r.db.ExecContext(ctx, query, title, content, time.Now().UTC(), postID)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrNotFound
	}

	return nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, postID string) error {
	query := `DELETE FROM posts WHERE post_id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrNotFound
	}

	return nil
}
