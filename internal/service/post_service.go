package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"blogspace/internal/models"
	"blogspace/internal/repository"
)

// previewLimit is the character budget of a card preview. Longer content
// is cut at exactly this many bytes with no word-boundary awareness.
const previewLimit = 150

type CreatePostRequest struct {
	AuthorID string
	Title    string
	Content  string
}

type UpdatePostRequest struct {
	PostID  string
	UserID  string
	Title   string
	Content string
}

// PostSummary is the card-sized projection of a post: truncated content
// plus the author attribution.
type PostSummary struct {
	PostID     string    `json:"postId"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Title      string    `json:"title"`
	Preview    string    `json:"preview"`
	CreatedAt  time.Time `json:"createdAt"`
}

type PostService interface {
	ListPosts(ctx context.Context, query string) ([]PostSummary, error)
	GetPost(ctx context.Context, postID string) (*models.PostWithAuthor, error)
	GetPostForEdit(ctx context.Context, postID, userID string) (*models.PostWithAuthor, error)
	CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error)
	UpdatePost(ctx context.Context, req UpdatePostRequest) error
	DeletePost(ctx context.Context, postID, userID string) error
}

type postService struct {
	postRepo  repository.PostRepository
	sanitizer *bluemonday.Policy
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{
		postRepo:  postRepo,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// ListPosts fetches every post ordered newest first, applies the search
// filter in memory and reduces each post to its card summary.
func (p *postService) ListPosts(ctx context.Context, query string) ([]PostSummary, error) {
	posts, err := p.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]PostSummary, 0, len(posts))
	for _, post := range posts {
		if !matchesQuery(&post, query) {
			continue
		}
		summaries = append(summaries, PostSummary{
			PostID:     post.PostID,
			AuthorID:   post.AuthorID,
			AuthorName: post.AuthorName,
			Title:      post.Title,
			Preview:    previewOf(post.Content),
			CreatedAt:  post.CreatedAt,
		})
	}

	return summaries, nil
}

func (p *postService) GetPost(ctx context.Context, postID string) (*models.PostWithAuthor, error) {
	return p.postRepo.GetByID(ctx, postID)
}

// GetPostForEdit fetches the post and verifies ownership, in that order:
// a missing post reads as not-found, an existing post owned by somebody
// else as forbidden.
func (p *postService) GetPostForEdit(ctx context.Context, postID, userID string) (*models.PostWithAuthor, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != userID {
		return nil, models.ErrForbidden
	}

	return post, nil
}

func (p *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error) {
	post := &models.Post{
		AuthorID: req.AuthorID,
		Title:    p.sanitizer.Sanitize(req.Title),
		Content:  p.sanitizer.Sanitize(req.Content),
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// UpdatePost changes title and content only. Last write wins; there is
// no concurrency token.
func (p *postService) UpdatePost(ctx context.Context, req UpdatePostRequest) error {
	post, err := p.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return err
	}

	if post.AuthorID != req.UserID {
		return models.ErrForbidden
	}

	title := p.sanitizer.Sanitize(req.Title)
	content := p.sanitizer.Sanitize(req.Content)

	if err := p.postRepo.Update(ctx, req.PostID, title, content); err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	return nil
}

func (p *postService) DeletePost(ctx context.Context, postID, userID string) error {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.AuthorID != userID {
		return models.ErrForbidden
	}

	return p.postRepo.Delete(ctx, postID)
}

// matchesQuery reports whether query is a case-insensitive substring of
// the post title or content. The empty query matches everything.
func matchesQuery(post *models.PostWithAuthor, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(post.Title), q) ||
		strings.Contains(strings.ToLower(post.Content), q)
}

func previewOf(content string) string {
	if len(content) <= previewLimit {
		return content
	}
	return content[:previewLimit] + "..."
}
