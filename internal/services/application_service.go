package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bitskill_backend/internal/auth"
	"bitskill_backend/internal/models"
	"bitskill_backend/internal/repositories"
	"bitskill_backend/internal/services/dto"
	"bitskill_backend/pkg/apperrors"
)

type ApplicationService interface {
	Apply(ctx context.Context, db *gorm.DB, applicantID, gigID string, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error)
	ListForGig(ctx context.Context, db *gorm.DB, callerID, gigID string) ([]dto.ApplicationResponse, error)
	ListMy(ctx context.Context, db *gorm.DB, applicantID string) ([]dto.MyApplicationResponse, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, callerID, applicationID string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error)
	Withdraw(ctx context.Context, db *gorm.DB, callerID, applicationID string) error
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	gigRepo         repositories.GigRepository
}

func NewApplicationService(applicationRepo repositories.ApplicationRepository, gigRepo repositories.GigRepository) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		gigRepo:         gigRepo,
	}
}

// Apply - подача отклика. Вставка и инкремент applications_count
// идут в одной транзакции, счетчик не может разойтись с данными.
func (s *ApplicationServiceImpl) Apply(ctx context.Context, db *gorm.DB, applicantID, gigID string, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	gig, err := s.gigRepo.FindByID(db, gigID)
	if err != nil {
		if errors.Is(err, repositories.ErrGigNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if gig.Status != models.GigStatusOpen {
		return nil, apperrors.ErrGigNotOpen
	}
	if gig.PostedBy == applicantID {
		return nil, apperrors.ErrOwnGigApplication
	}

	existing, err := s.applicationRepo.FindByGigAndApplicant(db, gigID, applicantID)
	if err != nil && !errors.Is(err, repositories.ErrApplicationNotFound) {
		return nil, apperrors.InternalError(err)
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicateApplication
	}

	application := &models.Application{
		GigID:            gigID,
		ApplicantID:      applicantID,
		CoverLetter:      req.CoverLetter,
		ProposedRate:     req.ProposedRate,
		ProposedTimeline: req.ProposedTimeline,
		PortfolioLinks:   dto.StringsToJSON(req.PortfolioLinks),
		Status:           models.ApplicationStatusPending,
	}

	txErr := db.Transaction(func(tx *gorm.DB) error {
		if err := s.applicationRepo.Create(tx, application); err != nil {
			return err
		}
		return s.gigRepo.IncrementApplications(tx, gigID)
	})
	if txErr != nil {
		if errors.Is(txErr, repositories.ErrApplicationAlreadyExists) {
			return nil, apperrors.ErrDuplicateApplication
		}
		return nil, apperrors.InternalError(txErr)
	}

	return dto.NewApplicationResponse(application), nil
}

// ListForGig - отклики на гиг, доступно только владельцу гига
func (s *ApplicationServiceImpl) ListForGig(ctx context.Context, db *gorm.DB, callerID, gigID string) ([]dto.ApplicationResponse, error) {
	gig, err := s.gigRepo.FindByID(db, gigID)
	if err != nil {
		if errors.Is(err, repositories.ErrGigNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if err := auth.AssertOwns(gig.PostedBy, callerID, apperrors.ErrNotGigOwner); err != nil {
		return nil, err
	}

	applications, err := s.applicationRepo.ListByGig(db, gigID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		out = append(out, *dto.NewApplicationResponse(&applications[i]))
	}
	return out, nil
}

func (s *ApplicationServiceImpl) ListMy(ctx context.Context, db *gorm.DB, applicantID string) ([]dto.MyApplicationResponse, error) {
	applications, err := s.applicationRepo.ListByApplicant(db, applicantID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.MyApplicationResponse, 0, len(applications))
	for i := range applications {
		out = append(out, *dto.NewMyApplicationResponse(&applications[i]))
	}
	return out, nil
}

// UpdateStatus - смена статуса отклика, доступно только владельцу гига
func (s *ApplicationServiceImpl) UpdateStatus(ctx context.Context, db *gorm.DB, callerID, applicationID string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error) {
	application, err := s.applicationRepo.FindByID(db, applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if application.Gig == nil {
		return nil, apperrors.InternalError(errors.New("application has no gig loaded"))
	}
	if err := auth.AssertOwns(application.Gig.PostedBy, callerID, apperrors.ErrNotGigOwner); err != nil {
		return nil, err
	}

	status := models.ApplicationStatus(req.Status)
	if err := s.applicationRepo.UpdateStatus(db, applicationID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}
	application.Status = status

	return dto.NewApplicationResponse(application), nil
}

// Withdraw - отзыв собственного отклика. Удаление и декремент
// счетчика идут в одной транзакции; декремент не уводит счетчик
// ниже нуля.
func (s *ApplicationServiceImpl) Withdraw(ctx context.Context, db *gorm.DB, callerID, applicationID string) error {
	application, err := s.applicationRepo.FindByID(db, applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return apperrors.InternalError(err)
	}

	if err := auth.AssertOwns(application.ApplicantID, callerID, apperrors.ErrNotApplicant); err != nil {
		return err
	}

	txErr := db.Transaction(func(tx *gorm.DB) error {
		if err := s.applicationRepo.Delete(tx, applicationID); err != nil {
			return err
		}
		return s.gigRepo.DecrementApplications(tx, application.GigID)
	})
	if txErr != nil {
		return apperrors.InternalError(txErr)
	}
	return nil
}
