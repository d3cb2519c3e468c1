package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bloghub/bloghub-be/internal/apperr"
	"github.com/bloghub/bloghub-be/internal/auth"
	"github.com/bloghub/bloghub-be/internal/models"
	"github.com/bloghub/bloghub-be/internal/models/dto"
)

var (
	owner = auth.Principal{ID: 1, Email: "owner@example.com", Role: models.RoleUser}
	other = auth.Principal{ID: 2, Email: "other@example.com", Role: models.RoleUser}
	admin = auth.Principal{ID: 3, Email: "admin@example.com", Role: models.RoleAdmin}
)

func newPostFixture(t *testing.T) (*PostService, models.Post) {
	t.Helper()
	posts := newFakePostStore()
	categories := newFakeCategoryStore()
	svc := NewPostService(posts, categories)
	ctx := context.Background()

	category, err := categories.CreateCategory(ctx, models.Category{Name: "Go", Slug: "go"})
	require.NoError(t, err)

	post, err := svc.Create(ctx, dto.PostCreateRequest{
		Title:      "Hello",
		Content:    "First post",
		CategoryID: category.ID,
	}, owner)
	require.NoError(t, err)
	return svc, post
}

func TestPostServiceCreateUnknownCategory(t *testing.T) {
	svc := NewPostService(newFakePostStore(), newFakeCategoryStore())

	_, err := svc.Create(context.Background(), dto.PostCreateRequest{
		Title:      "Hello",
		Content:    "Body",
		CategoryID: 42,
	}, owner)
	require.True(t, apperr.IsKind(err, apperr.KindNotFound), "want not found, got %v", err)
}

func TestPostServiceUpdateOwnership(t *testing.T) {
	svc, post := newPostFixture(t)
	ctx := context.Background()
	req := dto.PostUpdateRequest{Title: "Edited", Content: "Changed", CategoryID: post.CategoryID}

	_, err := svc.Update(ctx, post.ID, req, other)
	require.True(t, apperr.IsKind(err, apperr.KindForbidden), "want forbidden, got %v", err)

	updated, err := svc.Update(ctx, post.ID, req, owner)
	require.NoError(t, err)
	require.Equal(t, "Edited", updated.Title)

	req.Title = "Admin edit"
	updated, err = svc.Update(ctx, post.ID, req, admin)
	require.NoError(t, err)
	require.Equal(t, "Admin edit", updated.Title)
}

func TestPostServiceDeleteOwnership(t *testing.T) {
	svc, post := newPostFixture(t)
	ctx := context.Background()

	err := svc.Delete(ctx, post.ID, other)
	require.True(t, apperr.IsKind(err, apperr.KindForbidden), "want forbidden, got %v", err)

	// Post must survive a rejected delete.
	_, err = svc.Get(ctx, post.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, post.ID, owner))

	_, err = svc.Get(ctx, post.ID)
	require.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestPostServiceDeleteByAdmin(t *testing.T) {
	svc, post := newPostFixture(t)
	require.NoError(t, svc.Delete(context.Background(), post.ID, admin))
}

func TestPostServiceListFilters(t *testing.T) {
	posts := newFakePostStore()
	categories := newFakeCategoryStore()
	svc := NewPostService(posts, categories)
	ctx := context.Background()

	goCat, err := categories.CreateCategory(ctx, models.Category{Name: "Go", Slug: "go"})
	require.NoError(t, err)
	dbCat, err := categories.CreateCategory(ctx, models.Category{Name: "Databases", Slug: "databases"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, dto.PostCreateRequest{Title: "Generics in Go", Content: "a", CategoryID: goCat.ID}, owner)
	require.NoError(t, err)
	_, err = svc.Create(ctx, dto.PostCreateRequest{Title: "Postgres indexes", Content: "b", CategoryID: dbCat.ID}, owner)
	require.NoError(t, err)

	page, err := svc.List(ctx, nil, "", 0, 20)
	require.NoError(t, err)
	require.EqualValues(t, 2, page.TotalElements)

	page, err = svc.List(ctx, &goCat.ID, "", 0, 20)
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	require.Equal(t, "Generics in Go", page.Content[0].Title)

	page, err = svc.List(ctx, nil, "indexes", 0, 20)
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	require.Equal(t, "Postgres indexes", page.Content[0].Title)
}

func TestPostServiceListPagination(t *testing.T) {
	posts := newFakePostStore()
	categories := newFakeCategoryStore()
	svc := NewPostService(posts, categories)
	ctx := context.Background()

	category, err := categories.CreateCategory(ctx, models.Category{Name: "Go", Slug: "go"})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err := svc.Create(ctx, dto.PostCreateRequest{Title: "Post", Content: "x", CategoryID: category.ID}, owner)
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, nil, "", 0, 2)
	require.NoError(t, err)
	require.Len(t, page.Content, 2)
	require.EqualValues(t, 5, page.TotalElements)
	require.Equal(t, 3, page.TotalPages)
	require.False(t, page.Last)

	page, err = svc.List(ctx, nil, "", 2, 2)
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	require.True(t, page.Last)

	// A page past the end is empty but still carries the true total.
	page, err = svc.List(ctx, nil, "", 10, 2)
	require.NoError(t, err)
	require.Empty(t, page.Content)
	require.EqualValues(t, 5, page.TotalElements)
	require.Equal(t, 3, page.TotalPages)
}
