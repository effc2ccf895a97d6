package models

import (
	"time"
)

type User struct {
	UserID                 string    `json:"userId" db:"user_id"`
	Email                  string    `json:"email" db:"email"`
	PasswordHash           string    `json:"-" db:"password_hash"`
	RefreshToken           string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"-" db:"refresh_token_expiry_time"`
	CreatedAt              time.Time `json:"createdAt" db:"created_at"`
}

// Profile carries display metadata only; authorization always compares
// user ids, never profile fields.
type Profile struct {
	UserID   string `json:"userId" db:"user_id"`
	FullName string `json:"fullName" db:"full_name"`
}

type Post struct {
	PostID    string    `json:"postId" db:"post_id"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// PostWithAuthor is a post row joined with the author's profile full name.
type PostWithAuthor struct {
	Post
	AuthorName string `json:"authorName" db:"author_name"`
}
