package repositories

import (
	"errors"

	"gorm.io/gorm"

	"bitskill_backend/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	Create(db *gorm.DB, user *models.User) error
	FindActiveByID(db *gorm.DB, id string) (*models.User, error)
	FindActiveByEmail(db *gorm.DB, email string) (*models.User, error)
	EmailTaken(db *gorm.DB, email string) (bool, error)
	Update(db *gorm.DB, user *models.User) error
	Deactivate(db *gorm.DB, id string) error
}

type UserRepositoryImpl struct {
	// db *gorm.DB не хранится здесь - передается в каждый вызов
}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	err := db.Create(user).Error
	if err != nil && isUniqueViolation(err) {
		return ErrUserAlreadyExists
	}
	return err
}

func (r *UserRepositoryImpl) FindActiveByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.Where("id = ? AND is_active = ?", id, true).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindActiveByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.Where("email = ? AND is_active = ?", email, true).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) EmailTaken(db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *UserRepositoryImpl) Update(db *gorm.DB, user *models.User) error {
	return db.Save(user).Error
}

func (r *UserRepositoryImpl) Deactivate(db *gorm.DB, id string) error {
	return db.Model(&models.User{}).Where("id = ?", id).Update("is_active", false).Error
}
