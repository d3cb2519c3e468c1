package service

import (
	"context"
	"errors"

	"github.com/bloghub/bloghub-be/internal/apperr"
	"github.com/bloghub/bloghub-be/internal/auth"
	"github.com/bloghub/bloghub-be/internal/models"
	"github.com/bloghub/bloghub-be/internal/models/dto"
	"github.com/bloghub/bloghub-be/internal/storage"
)

// PostService owns post CRUD. Every mutation on an existing post passes the
// ownership gate before touching the store.
type PostService struct {
	posts      storage.PostStore
	categories storage.CategoryStore
}

func NewPostService(posts storage.PostStore, categories storage.CategoryStore) *PostService {
	return &PostService{posts: posts, categories: categories}
}

// List returns one page of posts, optionally filtered by category and keyword.
func (s *PostService) List(ctx context.Context, categoryID *int64, keyword string, page, size int) (dto.PageResponse[models.Post], error) {
	posts, total, err := s.posts.SearchPosts(ctx, categoryID, keyword, page, size)
	if err != nil {
		return dto.PageResponse[models.Post]{}, err
	}
	return dto.NewPageResponse(posts, page, size, total), nil
}

// Get fetches a single post.
func (s *PostService) Get(ctx context.Context, id int64) (models.Post, error) {
	post, err := s.posts.FindPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Post{}, apperr.NotFound("post not found")
		}
		return models.Post{}, err
	}
	return post, nil
}

// Create stores a new post authored by the acting principal.
func (s *PostService) Create(ctx context.Context, req dto.PostCreateRequest, actor auth.Principal) (models.Post, error) {
	if problems := req.Validate(); len(problems) > 0 {
		return models.Post{}, apperr.Validation("validation failed", problems)
	}
	if _, err := s.categories.FindCategoryByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Post{}, apperr.NotFound("category not found")
		}
		return models.Post{}, err
	}

	return s.posts.CreatePost(ctx, models.Post{
		Title:      req.Title,
		Content:    req.Content,
		ImageURL:   req.ImageURL,
		CategoryID: req.CategoryID,
		AuthorID:   actor.ID,
	})
}

// Update replaces a post's content; only the owner or an admin may do so.
func (s *PostService) Update(ctx context.Context, id int64, req dto.PostUpdateRequest, actor auth.Principal) (models.Post, error) {
	if problems := req.Validate(); len(problems) > 0 {
		return models.Post{}, apperr.Validation("validation failed", problems)
	}

	post, err := s.Get(ctx, id)
	if err != nil {
		return models.Post{}, err
	}
	if !auth.CanModify(actor, post.AuthorID) {
		return models.Post{}, apperr.Forbidden("you are not allowed to modify this post")
	}
	if _, err := s.categories.FindCategoryByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Post{}, apperr.NotFound("category not found")
		}
		return models.Post{}, err
	}

	post.Title = req.Title
	post.Content = req.Content
	post.ImageURL = req.ImageURL
	post.CategoryID = req.CategoryID
	return s.posts.UpdatePost(ctx, post)
}

// Delete removes a post; only the owner or an admin may do so.
func (s *PostService) Delete(ctx context.Context, id int64, actor auth.Principal) error {
	post, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CanModify(actor, post.AuthorID) {
		return apperr.Forbidden("you are not allowed to modify this post")
	}
	return s.posts.DeletePost(ctx, id)
}
