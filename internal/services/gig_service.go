package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bitskill_backend/internal/auth"
	"bitskill_backend/internal/logger"
	"bitskill_backend/internal/models"
	"bitskill_backend/internal/repositories"
	"bitskill_backend/internal/services/dto"
	"bitskill_backend/pkg/apperrors"
)

type GigService interface {
	Create(ctx context.Context, db *gorm.DB, ownerID string, req *dto.CreateGigRequest) (*dto.GigResponse, error)
	GetByID(ctx context.Context, db *gorm.DB, id string) (*dto.GigResponse, error)
	Search(ctx context.Context, db *gorm.DB, req *dto.SearchGigsRequest) (*dto.GigListResponse, error)
	ListByOwner(ctx context.Context, db *gorm.DB, ownerID string) ([]dto.GigResponse, error)
	Update(ctx context.Context, db *gorm.DB, callerID, id string, req *dto.UpdateGigRequest) (*dto.GigResponse, error)
	Delete(ctx context.Context, db *gorm.DB, callerID, id string) error
}

type GigServiceImpl struct {
	gigRepo         repositories.GigRepository
	categoryRepo    repositories.CategoryRepository
	applicationRepo repositories.ApplicationRepository
}

func NewGigService(gigRepo repositories.GigRepository, categoryRepo repositories.CategoryRepository, applicationRepo repositories.ApplicationRepository) GigService {
	return &GigServiceImpl{
		gigRepo:         gigRepo,
		categoryRepo:    categoryRepo,
		applicationRepo: applicationRepo,
	}
}

// validateGigPayload - проверки, выходящие за рамки тегов валидатора
func (s *GigServiceImpl) validateGigPayload(db *gorm.DB, req *dto.CreateGigRequest) error {
	if _, err := s.categoryRepo.FindActiveByID(db, req.CategoryID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return apperrors.ErrInvalidCategory
		}
		return apperrors.InternalError(err)
	}
	if req.BudgetMin != nil && req.BudgetMax != nil && *req.BudgetMin > *req.BudgetMax {
		return apperrors.NewBadRequestError("Minimum budget cannot exceed maximum budget")
	}
	return nil
}

func (s *GigServiceImpl) Create(ctx context.Context, db *gorm.DB, ownerID string, req *dto.CreateGigRequest) (*dto.GigResponse, error) {
	if err := s.validateGigPayload(db, req); err != nil {
		return nil, err
	}

	gig := &models.Gig{
		Title:            req.Title,
		Description:      req.Description,
		CategoryID:       req.CategoryID,
		PostedBy:         ownerID,
		BudgetMin:        req.BudgetMin,
		BudgetMax:        req.BudgetMax,
		BudgetType:       models.BudgetType(req.BudgetType),
		Deadline:         req.Deadline,
		DurationEstimate: req.DurationEstimate,
		DifficultyLevel:  models.DifficultyLevel(req.DifficultyLevel),
		RequiredSkills:   dto.StringsToJSON(req.RequiredSkills),
		RemoteAllowed:    *req.RemoteAllowed,
		Location:         req.Location,
		Tags:             dto.StringsToJSON(req.Tags),
		IsUrgent:         req.IsUrgent,
		Status:           models.GigStatusOpen,
	}

	if err := s.gigRepo.Create(db, gig); err != nil {
		return nil, apperrors.InternalError(err)
	}

	created, err := s.gigRepo.FindDetailByID(db, gig.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewGigResponse(created), nil
}

// GetByID - детальная карточка; счетчик просмотров растет атомарно в базе
func (s *GigServiceImpl) GetByID(ctx context.Context, db *gorm.DB, id string) (*dto.GigResponse, error) {
	gig, err := s.gigRepo.FindDetailByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrGigNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.gigRepo.IncrementViews(db, id); err != nil {
		// Счетчик просмотров не стоит 500-ки
		logger.CtxWithError(ctx, "не удалось увеличить счетчик просмотров", err, "gig_id", id)
	} else {
		gig.ViewsCount++
	}

	return dto.NewGigResponse(gig), nil
}

func (s *GigServiceImpl) Search(ctx context.Context, db *gorm.DB, req *dto.SearchGigsRequest) (*dto.GigListResponse, error) {
	filter := repositories.GigFilter{
		MinBudget:       req.MinBudget,
		MaxBudget:       req.MaxBudget,
		BudgetType:      req.BudgetType,
		DifficultyLevel: req.DifficultyLevel,
		RemoteAllowed:   req.RemoteAllowed,
		Search:          req.Search,
		SortBy:          req.SortBy,
		SortOrder:       req.SortOrder,
		Page:            req.Page,
		PageSize:        req.Limit,
	}

	// Параметр category принимает и имя категории, и её id
	if req.Category != "" {
		category, err := s.categoryRepo.FindActiveByName(db, req.Category)
		switch {
		case err == nil:
			filter.CategoryID = category.ID
		case errors.Is(err, repositories.ErrCategoryNotFound):
			filter.CategoryID = req.Category
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	gigs, total, err := s.gigRepo.Search(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = 20
	}

	return &dto.GigListResponse{
		Gigs:       dto.NewGigResponses(gigs),
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

func (s *GigServiceImpl) ListByOwner(ctx context.Context, db *gorm.DB, ownerID string) ([]dto.GigResponse, error) {
	gigs, err := s.gigRepo.ListByOwner(db, ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewGigResponses(gigs), nil
}

func (s *GigServiceImpl) Update(ctx context.Context, db *gorm.DB, callerID, id string, req *dto.UpdateGigRequest) (*dto.GigResponse, error) {
	gig, err := s.gigRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrGigNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if err := auth.AssertOwns(gig.PostedBy, callerID, apperrors.ErrNotGigOwner); err != nil {
		return nil, err
	}

	if err := s.validateGigPayload(db, req); err != nil {
		return nil, err
	}

	gig.Title = req.Title
	gig.Description = req.Description
	gig.CategoryID = req.CategoryID
	gig.BudgetMin = req.BudgetMin
	gig.BudgetMax = req.BudgetMax
	gig.BudgetType = models.BudgetType(req.BudgetType)
	gig.Deadline = req.Deadline
	gig.DurationEstimate = req.DurationEstimate
	gig.DifficultyLevel = models.DifficultyLevel(req.DifficultyLevel)
	gig.RequiredSkills = dto.StringsToJSON(req.RequiredSkills)
	gig.RemoteAllowed = *req.RemoteAllowed
	gig.Location = req.Location
	gig.Tags = dto.StringsToJSON(req.Tags)
	gig.IsUrgent = req.IsUrgent

	if err := s.gigRepo.Update(db, gig); err != nil {
		return nil, apperrors.InternalError(err)
	}

	updated, err := s.gigRepo.FindDetailByID(db, gig.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewGigResponse(updated), nil
}

func (s *GigServiceImpl) Delete(ctx context.Context, db *gorm.DB, callerID, id string) error {
	gig, err := s.gigRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrGigNotFound) {
			return apperrors.ErrGigNotFound
		}
		return apperrors.InternalError(err)
	}

	if err := auth.AssertOwns(gig.PostedBy, callerID, apperrors.ErrNotGigOwner); err != nil {
		return err
	}

	// Отклики удаляются вместе с гигом; SQLite не применяет
	// constraint:OnDelete:CASCADE без включенных внешних ключей,
	// поэтому каскад выполняется явно в одной транзакции.
	txErr := db.Transaction(func(tx *gorm.DB) error {
		if err := s.applicationRepo.DeleteByGig(tx, id); err != nil {
			return err
		}
		return s.gigRepo.Delete(tx, id)
	})
	if txErr != nil {
		return apperrors.InternalError(txErr)
	}
	return nil
}
