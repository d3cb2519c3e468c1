package service

import (
	"context"

	"github.com/bloghub/bloghub-be/internal/models/dto"
	"github.com/bloghub/bloghub-be/internal/storage"
)

// AdminService backs the admin-only endpoints. Role enforcement happens at
// the route level; this service assumes an already-authorized caller.
type AdminService struct {
	users storage.UserStore
}

func NewAdminService(users storage.UserStore) *AdminService {
	return &AdminService{users: users}
}

// ListUsers returns one page of registered users.
func (s *AdminService) ListUsers(ctx context.Context, page, size int) (dto.PageResponse[dto.UserDto], error) {
	users, total, err := s.users.ListUsers(ctx, page, size)
	if err != nil {
		return dto.PageResponse[dto.UserDto]{}, err
	}
	views := make([]dto.UserDto, 0, len(users))
	for _, u := range users {
		views = append(views, dto.NewUserDto(u))
	}
	return dto.NewPageResponse(views, page, size, total), nil
}
