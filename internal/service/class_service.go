package service

import (
	"context"

	"github.com/classforge/classroom-backend/internal/model"
	"github.com/classforge/classroom-backend/internal/repository"
)

// ClassService handles class business logic.
type ClassService struct {
	classRepo *repository.ClassRepository
}

// NewClassService creates a new ClassService.
func NewClassService(classRepo *repository.ClassRepository) *ClassService {
	return &ClassService{classRepo: classRepo}
}

// GetByNumber retrieves a class by its class number.
func (s *ClassService) GetByNumber(ctx context.Context, classNumber string) (*model.Class, error) {
	return s.classRepo.GetByNumber(ctx, classNumber)
}

// List retrieves all classes.
func (s *ClassService) List(ctx context.Context) ([]model.Class, error) {
	return s.classRepo.List(ctx)
}

// Create creates a new class.
func (s *ClassService) Create(ctx context.Context, class *model.Class) error {
	return s.classRepo.Create(ctx, class)
}

// Update modifies an existing class.
func (s *ClassService) Update(ctx context.Context, class *model.Class) error {
	return s.classRepo.Update(ctx, class)
}

// Delete removes a class.
func (s *ClassService) Delete(ctx context.Context, classNumber string) error {
	// Foreign key constraints on user_class correctly prevent deletion
	// while the roster is non-empty. The handler maps this error.
	return s.classRepo.Delete(ctx, classNumber)
}
