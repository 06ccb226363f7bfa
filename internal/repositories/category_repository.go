package repositories

import (
	"errors"

	"gorm.io/gorm"

	"bitskill_backend/internal/models"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoryRepository interface {
	Create(db *gorm.DB, category *models.Category) error
	FindActive(db *gorm.DB) ([]models.Category, error)
	FindActiveByID(db *gorm.DB, id string) (*models.Category, error)
	FindActiveByName(db *gorm.DB, name string) (*models.Category, error)
	CountAll(db *gorm.DB) (int64, error)
}

type CategoryRepositoryImpl struct{}

func NewCategoryRepository() CategoryRepository {
	return &CategoryRepositoryImpl{}
}

func (r *CategoryRepositoryImpl) Create(db *gorm.DB, category *models.Category) error {
	return db.Create(category).Error
}

// FindActive - мягко удаленные категории в выдачу не попадают никогда
func (r *CategoryRepositoryImpl) FindActive(db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	err := db.Where("is_active = ?", true).Order("name").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) FindActiveByID(db *gorm.DB, id string) (*models.Category, error) {
	var category models.Category
	err := db.Where("id = ? AND is_active = ?", id, true).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) FindActiveByName(db *gorm.DB, name string) (*models.Category, error) {
	var category models.Category
	err := db.Where("name = ? AND is_active = ?", name, true).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Category{}).Count(&count).Error
	return count, err
}
