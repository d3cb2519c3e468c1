package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bloghub/bloghub-be/internal/models"
	"github.com/bloghub/bloghub-be/internal/storage"
)

// fakeUserStore is an in-memory storage.UserStore with both roles seeded.
type fakeUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]models.User
	roles  map[models.Role]models.RoleRecord
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users: map[int64]models.User{},
		roles: map[models.Role]models.RoleRecord{
			models.RoleAdmin: {ID: 1, Name: models.RoleAdmin},
			models.RoleUser:  {ID: 2, Name: models.RoleUser},
		},
	}
}

func (s *fakeUserStore) dropRole(name models.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.roles, name)
}

func (s *fakeUserStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return models.User{}, storage.ErrAlreadyExists
		}
	}
	s.nextID++
	user.ID = s.nextID
	user.CreatedAt = time.Now()
	s.users[user.ID] = user
	return user, nil
}

func (s *fakeUserStore) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

func (s *fakeUserStore) FindUserByID(_ context.Context, id int64) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return u, nil
}

func (s *fakeUserStore) ExistsUserByEmail(ctx context.Context, email string) (bool, error) {
	_, err := s.FindUserByEmail(ctx, email)
	if err == storage.ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

func (s *fakeUserStore) ListUsers(_ context.Context, page, size int) ([]models.User, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := int64(len(all))
	start := page * size
	if start >= len(all) {
		return nil, total, nil
	}
	end := min(start+size, len(all))
	return all[start:end], total, nil
}

func (s *fakeUserStore) FindRoleByName(_ context.Context, name models.Role) (models.RoleRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.roles[name]
	if !ok {
		return models.RoleRecord{}, storage.ErrNotFound
	}
	return record, nil
}

// fakePostStore is an in-memory storage.PostStore.
type fakePostStore struct {
	mu     sync.Mutex
	nextID int64
	posts  map[int64]models.Post
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{posts: map[int64]models.Post{}}
}

func (s *fakePostStore) SearchPosts(_ context.Context, categoryID *int64, keyword string, page, size int) ([]models.Post, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []models.Post
	for _, p := range s.posts {
		if categoryID != nil && p.CategoryID != *categoryID {
			continue
		}
		if keyword != "" {
			lower := strings.ToLower(keyword)
			if !strings.Contains(strings.ToLower(p.Title), lower) &&
				!strings.Contains(strings.ToLower(p.Content), lower) {
				continue
			}
		}
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	total := int64(len(matched))
	start := page * size
	if start >= len(matched) {
		return nil, total, nil
	}
	end := min(start+size, len(matched))
	return matched[start:end], total, nil
}

func (s *fakePostStore) FindPostByID(_ context.Context, id int64) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return models.Post{}, storage.ErrNotFound
	}
	return p, nil
}

func (s *fakePostStore) CreatePost(_ context.Context, post models.Post) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	post.ID = s.nextID
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	s.posts[post.ID] = post
	return post, nil
}

func (s *fakePostStore) UpdatePost(_ context.Context, post models.Post) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[post.ID]; !ok {
		return models.Post{}, storage.ErrNotFound
	}
	post.UpdatedAt = time.Now()
	s.posts[post.ID] = post
	return post, nil
}

func (s *fakePostStore) DeletePost(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.posts, id)
	return nil
}

// fakeCategoryStore is an in-memory storage.CategoryStore.
type fakeCategoryStore struct {
	mu         sync.Mutex
	nextID     int64
	categories map[int64]models.Category
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: map[int64]models.Category{}}
}

func (s *fakeCategoryStore) ListCategories(_ context.Context) ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := make([]models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

func (s *fakeCategoryStore) FindCategoryByID(_ context.Context, id int64) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.categories[id]
	if !ok {
		return models.Category{}, storage.ErrNotFound
	}
	return c, nil
}

func (s *fakeCategoryStore) CreateCategory(_ context.Context, category models.Category) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.categories {
		if strings.EqualFold(existing.Name, category.Name) || strings.EqualFold(existing.Slug, category.Slug) {
			return models.Category{}, storage.ErrAlreadyExists
		}
	}
	s.nextID++
	category.ID = s.nextID
	category.CreatedAt = time.Now()
	s.categories[category.ID] = category
	return category, nil
}

func (s *fakeCategoryStore) UpdateCategory(_ context.Context, category models.Category) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[category.ID]; !ok {
		return models.Category{}, storage.ErrNotFound
	}
	for id, existing := range s.categories {
		if id == category.ID {
			continue
		}
		if strings.EqualFold(existing.Name, category.Name) || strings.EqualFold(existing.Slug, category.Slug) {
			return models.Category{}, storage.ErrAlreadyExists
		}
	}
	s.categories[category.ID] = category
	return category, nil
}

func (s *fakeCategoryStore) DeleteCategory(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.categories, id)
	return nil
}

func (s *fakeCategoryStore) ExistsCategoryByNameOrSlug(_ context.Context, name, slug string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if strings.EqualFold(c.Name, name) || strings.EqualFold(c.Slug, slug) {
			return true, nil
		}
	}
	return false, nil
}

// fakeCommentStore is an in-memory storage.CommentStore.
type fakeCommentStore struct {
	mu       sync.Mutex
	nextID   int64
	comments map[int64]models.Comment
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{comments: map[int64]models.Comment{}}
}

func (s *fakeCommentStore) ListCommentsByPost(_ context.Context, postID int64) ([]models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []models.Comment
	for _, c := range s.comments {
		if c.PostID == postID {
			matched = append(matched, c)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, nil
}

func (s *fakeCommentStore) FindCommentByID(_ context.Context, id int64) (models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.comments[id]
	if !ok {
		return models.Comment{}, storage.ErrNotFound
	}
	return c, nil
}

func (s *fakeCommentStore) CreateComment(_ context.Context, comment models.Comment) (models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	comment.ID = s.nextID
	comment.CreatedAt = time.Now()
	s.comments[comment.ID] = comment
	return comment, nil
}

func (s *fakeCommentStore) DeleteComment(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.comments[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.comments, id)
	return nil
}
