// Package storage declares the persistence contracts consumed by services.
// Implementations live in subpackages; errors cross this boundary only as the
// sentinels below.
package storage

import (
	"context"
	"errors"

	"github.com/bloghub/bloghub-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures user and role lookups. Email matching is
// case-insensitive everywhere.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	ExistsUserByEmail(ctx context.Context, email string) (bool, error)
	ListUsers(ctx context.Context, page, size int) ([]models.User, int64, error)
	FindRoleByName(ctx context.Context, name models.Role) (models.RoleRecord, error)
}

// PostStore persists posts. Search matches keyword case-insensitively against
// title and content; a nil categoryID means no category filter.
type PostStore interface {
	SearchPosts(ctx context.Context, categoryID *int64, keyword string, page, size int) ([]models.Post, int64, error)
	FindPostByID(ctx context.Context, id int64) (models.Post, error)
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	UpdatePost(ctx context.Context, post models.Post) (models.Post, error)
	DeletePost(ctx context.Context, id int64) error
}

// CategoryStore persists categories.
type CategoryStore interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	FindCategoryByID(ctx context.Context, id int64) (models.Category, error)
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	UpdateCategory(ctx context.Context, category models.Category) (models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	ExistsCategoryByNameOrSlug(ctx context.Context, name, slug string) (bool, error)
}

// CommentStore persists comments.
type CommentStore interface {
	ListCommentsByPost(ctx context.Context, postID int64) ([]models.Comment, error)
	FindCommentByID(ctx context.Context, id int64) (models.Comment, error)
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}
