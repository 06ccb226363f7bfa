package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"bitskill_backend/internal/models"
)

var ErrGigNotFound = errors.New("gig not found")

// Разрешенные колонки сортировки; все остальное откатывается к created_at
var gigSortColumns = map[string]bool{
	"created_at":         true,
	"budget_min":         true,
	"budget_max":         true,
	"deadline":           true,
	"applications_count": true,
}

// GigFilter - критерии поиска по открытым гигам
type GigFilter struct {
	CategoryID      string
	MinBudget       *float64
	MaxBudget       *float64
	BudgetType      string
	DifficultyLevel string
	RemoteAllowed   *bool
	Search          string
	SortBy          string
	SortOrder       string
	Page            int
	PageSize        int
}

type GigRepository interface {
	Create(db *gorm.DB, gig *models.Gig) error
	FindByID(db *gorm.DB, id string) (*models.Gig, error)
	FindDetailByID(db *gorm.DB, id string) (*models.Gig, error)
	Search(db *gorm.DB, filter GigFilter) ([]models.Gig, int64, error)
	ListByOwner(db *gorm.DB, ownerID string) ([]models.Gig, error)
	Update(db *gorm.DB, gig *models.Gig) error
	Delete(db *gorm.DB, id string) error
	IncrementViews(db *gorm.DB, id string) error
	IncrementApplications(db *gorm.DB, id string) error
	DecrementApplications(db *gorm.DB, id string) error
}

type GigRepositoryImpl struct{}

func NewGigRepository() GigRepository {
	return &GigRepositoryImpl{}
}

func (r *GigRepositoryImpl) Create(db *gorm.DB, gig *models.Gig) error {
	return db.Create(gig).Error
}

func (r *GigRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Gig, error) {
	var gig models.Gig
	err := db.First(&gig, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGigNotFound
		}
		return nil, err
	}
	return &gig, nil
}

// FindDetailByID подтягивает владельца и категорию для детальной карточки
func (r *GigRepositoryImpl) FindDetailByID(db *gorm.DB, id string) (*models.Gig, error) {
	var gig models.Gig
	err := db.Preload("Owner").Preload("Category").First(&gig, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGigNotFound
		}
		return nil, err
	}
	return &gig, nil
}

// Search возвращает страницу открытых гигов и общее количество
// совпадений (отдельным count-запросом, до LIMIT/OFFSET)
func (r *GigRepositoryImpl) Search(db *gorm.DB, filter GigFilter) ([]models.Gig, int64, error) {
	query := db.Model(&models.Gig{}).Where("status = ?", models.GigStatusOpen)

	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.MinBudget != nil {
		query = query.Where("budget_min >= ?", *filter.MinBudget)
	}
	if filter.MaxBudget != nil {
		query = query.Where("budget_max <= ?", *filter.MaxBudget)
	}
	if filter.BudgetType != "" {
		query = query.Where("budget_type = ?", filter.BudgetType)
	}
	if filter.DifficultyLevel != "" {
		query = query.Where("difficulty_level = ?", filter.DifficultyLevel)
	}
	if filter.RemoteAllowed != nil {
		query = query.Where("remote_allowed = ?", *filter.RemoteAllowed)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := filter.SortBy
	if !gigSortColumns[sortBy] {
		sortBy = "created_at"
	}
	order := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		order = "ASC"
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	var gigs []models.Gig
	err := query.
		Preload("Owner").
		Preload("Category").
		Order(sortBy + " " + order).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&gigs).Error

	return gigs, total, err
}

func (r *GigRepositoryImpl) ListByOwner(db *gorm.DB, ownerID string) ([]models.Gig, error) {
	var gigs []models.Gig
	err := db.Preload("Category").
		Where("posted_by = ?", ownerID).
		Order("created_at DESC").
		Find(&gigs).Error
	return gigs, err
}

func (r *GigRepositoryImpl) Update(db *gorm.DB, gig *models.Gig) error {
	return db.Save(gig).Error
}

func (r *GigRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Gig{}, "id = ?", id).Error
}

// IncrementViews - атомарный инкремент одним UPDATE,
// без read-modify-write на стороне приложения.
func (r *GigRepositoryImpl) IncrementViews(db *gorm.DB, id string) error {
	return db.Model(&models.Gig{}).Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error
}

func (r *GigRepositoryImpl) IncrementApplications(db *gorm.DB, id string) error {
	return db.Model(&models.Gig{}).Where("id = ?", id).
		UpdateColumn("applications_count", gorm.Expr("applications_count + 1")).Error
}

// DecrementApplications не дает счетчику уйти в минус
func (r *GigRepositoryImpl) DecrementApplications(db *gorm.DB, id string) error {
	return db.Model(&models.Gig{}).
		Where("id = ? AND applications_count > 0", id).
		UpdateColumn("applications_count", gorm.Expr("applications_count - 1")).Error
}
