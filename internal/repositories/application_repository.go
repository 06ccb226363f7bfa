package repositories

import (
	"errors"

	"gorm.io/gorm"

	"bitskill_backend/internal/models"
)

var (
	ErrApplicationNotFound      = errors.New("application not found")
	ErrApplicationAlreadyExists = errors.New("application already exists for this gig")
)

type ApplicationRepository interface {
	Create(db *gorm.DB, application *models.Application) error
	FindByID(db *gorm.DB, id string) (*models.Application, error)
	FindByGigAndApplicant(db *gorm.DB, gigID, applicantID string) (*models.Application, error)
	ListByGig(db *gorm.DB, gigID string) ([]models.Application, error)
	ListByApplicant(db *gorm.DB, applicantID string) ([]models.Application, error)
	UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error
	Delete(db *gorm.DB, id string) error
	DeleteByGig(db *gorm.DB, gigID string) error
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, application *models.Application) error {
	err := db.Create(application).Error
	if err != nil && isUniqueViolation(err) {
		// Уникальный индекс (gig_id, applicant_id) - второй слой защиты
		// от дубликатов под гонкой, поверх проверки в сервисе
		return ErrApplicationAlreadyExists
	}
	return err
}

func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Application, error) {
	var application models.Application
	err := db.Preload("Gig").First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByGigAndApplicant(db *gorm.DB, gigID, applicantID string) (*models.Application, error) {
	var application models.Application
	err := db.Where("gig_id = ? AND applicant_id = ?", gigID, applicantID).First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

// ListByGig - отклики на гиг вместе с профилями кандидатов (для владельца)
func (r *ApplicationRepositoryImpl) ListByGig(db *gorm.DB, gigID string) ([]models.Application, error) {
	var applications []models.Application
	err := db.Preload("Applicant").
		Where("gig_id = ?", gigID).
		Order("applied_at DESC").
		Find(&applications).Error
	return applications, err
}

// ListByApplicant - отклики пользователя вместе с краткой сводкой гига
func (r *ApplicationRepositoryImpl) ListByApplicant(db *gorm.DB, applicantID string) ([]models.Application, error) {
	var applications []models.Application
	err := db.Preload("Gig").Preload("Gig.Owner").
		Where("applicant_id = ?", applicantID).
		Order("applied_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error {
	return db.Model(&models.Application{}).Where("id = ?", id).Update("status", status).Error
}

func (r *ApplicationRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Application{}, "id = ?", id).Error
}

// DeleteByGig удаляет все отклики гига. SQLite не включает проверку
// внешних ключей по умолчанию, поэтому каскад выполняется явно.
func (r *ApplicationRepositoryImpl) DeleteByGig(db *gorm.DB, gigID string) error {
	return db.Delete(&models.Application{}, "gig_id = ?", gigID).Error
}
