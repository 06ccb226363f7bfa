package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bitskill_backend/internal/models"
	"bitskill_backend/internal/repositories"
	"bitskill_backend/pkg/apperrors"
)

type CategoryService interface {
	List(ctx context.Context, db *gorm.DB) ([]models.Category, error)
	GetByID(ctx context.Context, db *gorm.DB, id string) (*models.Category, error)
}

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &CategoryServiceImpl{categoryRepo: categoryRepo}
}

// List - все активные категории, отсортированные по имени
func (s *CategoryServiceImpl) List(ctx context.Context, db *gorm.DB) ([]models.Category, error) {
	categories, err := s.categoryRepo.FindActive(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return categories, nil
}

func (s *CategoryServiceImpl) GetByID(ctx context.Context, db *gorm.DB, id string) (*models.Category, error) {
	category, err := s.categoryRepo.FindActiveByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return category, nil
}
