package models

import "time"

// Post is a blog entry. CategoryName, AuthorName and CommentsCount are
// denormalized by the store queries so handlers never re-join.
type Post struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	CategoryID    int64     `json:"categoryId"`
	CategoryName  string    `json:"categoryName"`
	AuthorID      int64     `json:"authorId"`
	AuthorName    string    `json:"authorName"`
	CommentsCount int64     `json:"commentsCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
