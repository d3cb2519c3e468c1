package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bloghub/bloghub-be/internal/apperr"
	"github.com/bloghub/bloghub-be/internal/models/dto"
)

func TestCategoryServiceCreate(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CategoryCreateRequest{Name: "Distributed Systems"})
	require.NoError(t, err)
	require.Equal(t, "Distributed Systems", created.Name)
	require.Equal(t, "distributed-systems", created.Slug)
}

func TestCategoryServiceCreateDuplicate(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryStore())
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CategoryCreateRequest{Name: "Go"})
	require.NoError(t, err)

	for _, name := range []string{"Go", "go", "GO"} {
		_, err := svc.Create(ctx, dto.CategoryCreateRequest{Name: name})
		require.True(t, apperr.IsKind(err, apperr.KindValidation), "name %q: want validation, got %v", name, err)
	}
}

func TestCategoryServiceUpdate(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CategoryCreateRequest{Name: "Go"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, dto.CategoryUpdateRequest{Name: "Go & Friends"})
	require.NoError(t, err)
	require.Equal(t, "go-friends", updated.Slug)

	_, err = svc.Update(ctx, 999, dto.CategoryUpdateRequest{Name: "Missing"})
	require.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestCategoryServiceDelete(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CategoryCreateRequest{Name: "Go"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	err = svc.Delete(ctx, created.ID)
	require.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestCategoryServiceInvalidName(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryStore())

	// Whitespace-only fails the request check; symbols-only fails slugging.
	_, err := svc.Create(context.Background(), dto.CategoryCreateRequest{Name: "   "})
	require.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = svc.Create(context.Background(), dto.CategoryCreateRequest{Name: "!!!"})
	require.True(t, apperr.IsKind(err, apperr.KindValidation))
}
