package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogspace/internal/models"
)

type mockPostRepository struct {
	mock.Mock
}

func (m *mockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockPostRepository) GetByID(ctx context.Context, postID string) (*models.PostWithAuthor, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostWithAuthor), args.Error(1)
}

func (m *mockPostRepository) List(ctx context.Context) ([]models.PostWithAuthor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostWithAuthor), args.Error(1)
}

func (m *mockPostRepository) Update(ctx context.Context, postID, title, content string) error {
	args := m.Called(ctx, postID, title, content)
	return args.Error(0)
}

func (m *mockPostRepository) Delete(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func postWithAuthor(id, authorID, title, content string) models.PostWithAuthor {
	return models.PostWithAuthor{
		Post: models.Post{
			PostID:    id,
			AuthorID:  authorID,
			Title:     title,
			Content:   content,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		AuthorName: "Test Author",
	}
}

func TestListPostsFilter(t *testing.T) {
	fixtures := []models.PostWithAuthor{
		postWithAuthor("p1", "u1", "Hello World", "first content"),
		postWithAuthor("p2", "u2", "Another Story", "talking about GOLANG here"),
		postWithAuthor("p3", "u1", "Third", "nothing interesting"),
	}

	tests := []struct {
		name        string
		query       string
		expectedIDs []string
	}{
		{
			name:        "empty query returns everything",
			query:       "",
			expectedIDs: []string{"p1", "p2", "p3"},
		},
		{
			name:        "matches title case-insensitively",
			query:       "hello",
			expectedIDs: []string{"p1"},
		},
		{
			name:        "matches content case-insensitively",
			query:       "golang",
			expectedIDs: []string{"p2"},
		},
		{
			name:        "substring across title and content",
			query:       "t",
			expectedIDs: []string{"p1", "p2", "p3"},
		},
		{
			name:        "no matches",
			query:       "zzz",
			expectedIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockPostRepository)
			repo.On("List", mock.Anything).Return(fixtures, nil)

			svc := NewPostService(repo)

			summaries, err := svc.ListPosts(context.Background(), tt.query)
			require.NoError(t, err)

			ids := make([]string, 0, len(summaries))
			for _, s := range summaries {
				ids = append(ids, s.PostID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestListPostsPreview(t *testing.T) {
	tests := []struct {
		name            string
		content         string
		expectedPreview string
	}{
		{
			name:            "short content is verbatim",
			content:         "World",
			expectedPreview: "World",
		},
		{
			name:            "exactly 150 chars is verbatim",
			content:         strings.Repeat("a", 150),
			expectedPreview: strings.Repeat("a", 150),
		},
		{
			name:            "151 chars is cut at 150 with ellipsis",
			content:         strings.Repeat("a", 151),
			expectedPreview: strings.Repeat("a", 150) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockPostRepository)
			repo.On("List", mock.Anything).Return([]models.PostWithAuthor{
				postWithAuthor("p1", "u1", "Hello", tt.content),
			}, nil)

			svc := NewPostService(repo)

			summaries, err := svc.ListPosts(context.Background(), "")
			require.NoError(t, err)
			require.Len(t, summaries, 1)
			assert.Equal(t, tt.expectedPreview, summaries[0].Preview)
		})
	}
}

func TestListPostsKeepsAuthorAttribution(t *testing.T) {
	repo := new(mockPostRepository)
	repo.On("List", mock.Anything).Return([]models.PostWithAuthor{
		postWithAuthor("p1", "u1", "Hello", "World"),
	}, nil)

	svc := NewPostService(repo)

	summaries, err := svc.ListPosts(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "u1", summaries[0].AuthorID)
	assert.Equal(t, "Test Author", summaries[0].AuthorName)
}

func TestCreatePost(t *testing.T) {
	repo := new(mockPostRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewPostService(repo)

	post, err := svc.CreatePost(context.Background(), CreatePostRequest{
		AuthorID: "u1",
		Title:    "Hello",
		Content:  "World",
	})
	require.NoError(t, err)

	assert.Equal(t, "u1", post.AuthorID)
	assert.Equal(t, "Hello", post.Title)
	assert.Equal(t, "World", post.Content)
	repo.AssertExpectations(t)
}

func TestCreatePostStripsMarkup(t *testing.T) {
	repo := new(mockPostRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewPostService(repo)

	post, err := svc.CreatePost(context.Background(), CreatePostRequest{
		AuthorID: "u1",
		Title:    `<script>alert("x")</script>Safe title`,
		Content:  `before<script>alert("x")</script>after`,
	})
	require.NoError(t, err)

	assert.NotContains(t, post.Title, "<script>")
	assert.NotContains(t, post.Content, "<script>")
	assert.Contains(t, post.Title, "Safe title")
	assert.Contains(t, post.Content, "before")
	assert.Contains(t, post.Content, "after")
}

func TestGetPostForEdit(t *testing.T) {
	owned := postWithAuthor("p1", "owner", "Hello", "World")

	tests := []struct {
		name        string
		userID      string
		mockSetup   func(*mockPostRepository)
		expectedErr error
	}{
		{
			name:   "owner gets the post",
			userID: "owner",
			mockSetup: func(repo *mockPostRepository) {
				repo.On("GetByID", mock.Anything, "p1").Return(&owned, nil)
			},
			expectedErr: nil,
		},
		{
			name:   "stranger is forbidden",
			userID: "someone-else",
			mockSetup: func(repo *mockPostRepository) {
				repo.On("GetByID", mock.Anything, "p1").Return(&owned, nil)
			},
			expectedErr: models.ErrForbidden,
		},
		{
			name:   "missing post is not found",
			userID: "owner",
			mockSetup: func(repo *mockPostRepository) {
				repo.On("GetByID", mock.Anything, "p1").Return(nil, models.ErrNotFound)
			},
			expectedErr: models.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockPostRepository)
			tt.mockSetup(repo)

			svc := NewPostService(repo)

			post, err := svc.GetPostForEdit(context.Background(), "p1", tt.userID)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, post)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "p1", post.PostID)
			}
		})
	}
}

func TestUpdatePostOwnership(t *testing.T) {
	owned := postWithAuthor("p1", "owner", "Hello", "World")

	repo := new(mockPostRepository)
	repo.On("GetByID", mock.Anything, "p1").Return(&owned, nil)

	svc := NewPostService(repo)

	err := svc.UpdatePost(context.Background(), UpdatePostRequest{
		PostID:  "p1",
		UserID:  "someone-else",
		Title:   "Changed",
		Content: "Changed",
	})

	assert.ErrorIs(t, err, models.ErrForbidden)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePostByOwner(t *testing.T) {
	owned := postWithAuthor("p1", "owner", "Hello", "World")

	repo := new(mockPostRepository)
	repo.On("GetByID", mock.Anything, "p1").Return(&owned, nil)
	repo.On("Update", mock.Anything, "p1", "Changed", "New content").Return(nil)

	svc := NewPostService(repo)

	err := svc.UpdatePost(context.Background(), UpdatePostRequest{
		PostID:  "p1",
		UserID:  "owner",
		Title:   "Changed",
		Content: "New content",
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDeletePost(t *testing.T) {
	owned := postWithAuthor("p1", "owner", "Hello", "World")

	tests := []struct {
		name        string
		userID      string
		expectedErr error
	}{
		{name: "owner deletes", userID: "owner", expectedErr: nil},
		{name: "stranger is forbidden", userID: "someone-else", expectedErr: models.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockPostRepository)
			repo.On("GetByID", mock.Anything, "p1").Return(&owned, nil)
			if tt.expectedErr == nil {
				repo.On("Delete", mock.Anything, "p1").Return(nil)
			}

			svc := NewPostService(repo)

			err := svc.DeletePost(context.Background(), "p1", tt.userID)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				repo.AssertExpectations(t)
			}
		})
	}
}
