package service

import (
	"context"

	"github.com/classforge/classroom-backend/internal/model"
	"github.com/classforge/classroom-backend/internal/repository"
	"github.com/classforge/classroom-backend/internal/response"
)

// UserService handles user business logic.
type UserService struct {
	userRepo *repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates a new user account. The default class enrollment
// happens as a side effect of the insert, either through the database
// trigger or through the registered after-create hook.
func (s *UserService) Register(ctx context.Context, user *model.User) error {
	return s.userRepo.Create(ctx, user)
}

// GetByID retrieves a user by ID.
func (s *UserService) GetByID(ctx context.Context, id int) (*model.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetByUserName retrieves a user by user name.
func (s *UserService) GetByUserName(ctx context.Context, userName string) (*model.User, error) {
	return s.userRepo.GetByUserName(ctx, userName)
}

// ListUsers retrieves users with pagination and optional class filter.
func (s *UserService) ListUsers(ctx context.Context, classNumber *string, page, perPage int) ([]model.User, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}

	limit := perPage
	offset := (page - 1) * perPage

	users, total, err := s.userRepo.ListPaginated(ctx, classNumber, limit, offset)
	if err != nil {
		return nil, nil, err
	}

	if users == nil {
		users = []model.User{}
	}

	totalPages := (total + perPage - 1) / perPage

	pagination := &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: totalPages,
	}

	return users, pagination, nil
}

// Update modifies a user's basic info.
func (s *UserService) Update(ctx context.Context, user *model.User) error {
	return s.userRepo.Update(ctx, user)
}

// UpdatePassword replaces a user's password hash.
func (s *UserService) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	return s.userRepo.UpdatePassword(ctx, id, passwordHash)
}

// Delete removes a user.
func (s *UserService) Delete(ctx context.Context, id int) error {
	// Foreign key constraints on user_class prevent deletion while the
	// user is still enrolled anywhere. The handler maps that error.
	return s.userRepo.Delete(ctx, id)
}
