package service

import (
	"context"
	"errors"

	"github.com/bloghub/bloghub-be/internal/apperr"
	"github.com/bloghub/bloghub-be/internal/models"
	"github.com/bloghub/bloghub-be/internal/models/dto"
	"github.com/bloghub/bloghub-be/internal/slug"
	"github.com/bloghub/bloghub-be/internal/storage"
)

// CategoryService owns category CRUD. Mutations are admin-only; that check
// lives at the route level since it does not depend on the target row.
type CategoryService struct {
	categories storage.CategoryStore
}

func NewCategoryService(categories storage.CategoryStore) *CategoryService {
	return &CategoryService{categories: categories}
}

// List returns all categories.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

// Get fetches a category by id.
func (s *CategoryService) Get(ctx context.Context, id int64) (models.Category, error) {
	category, err := s.categories.FindCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Category{}, apperr.NotFound("category not found")
		}
		return models.Category{}, err
	}
	return category, nil
}

// Create adds a category, deriving its slug from the name.
func (s *CategoryService) Create(ctx context.Context, req dto.CategoryCreateRequest) (models.Category, error) {
	name, sl, err := s.validate(req)
	if err != nil {
		return models.Category{}, err
	}

	taken, err := s.categories.ExistsCategoryByNameOrSlug(ctx, name, sl)
	if err != nil {
		return models.Category{}, err
	}
	if taken {
		return models.Category{}, apperr.Validation("category with same name already exists", nil)
	}

	created, err := s.categories.CreateCategory(ctx, models.Category{Name: name, Slug: sl})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return models.Category{}, apperr.Validation("category with same name already exists", nil)
		}
		return models.Category{}, err
	}
	return created, nil
}

// Update renames a category and regenerates its slug.
func (s *CategoryService) Update(ctx context.Context, id int64, req dto.CategoryUpdateRequest) (models.Category, error) {
	name, sl, err := s.validate(req)
	if err != nil {
		return models.Category{}, err
	}

	category, err := s.Get(ctx, id)
	if err != nil {
		return models.Category{}, err
	}

	category.Name = name
	category.Slug = sl
	updated, err := s.categories.UpdateCategory(ctx, category)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return models.Category{}, apperr.Validation("category with same name already exists", nil)
		}
		return models.Category{}, err
	}
	return updated, nil
}

// Delete removes a category.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if err := s.categories.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.NotFound("category not found")
		}
		return err
	}
	return nil
}

func (s *CategoryService) validate(req dto.CategoryCreateRequest) (name, sl string, err error) {
	if problems := req.Validate(); len(problems) > 0 {
		return "", "", apperr.Validation("validation failed", problems)
	}
	sl = slug.Make(req.Name)
	if sl == "" {
		return "", "", apperr.Validation("invalid category name", nil)
	}
	return req.Name, sl, nil
}
