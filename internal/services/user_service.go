package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bitskill_backend/internal/repositories"
	"bitskill_backend/internal/services/dto"
	"bitskill_backend/pkg/apperrors"
)

type UserService interface {
	GetByID(ctx context.Context, db *gorm.DB, id string) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// GetByID - публичный профиль пользователя
func (s *UserServiceImpl) GetByID(ctx context.Context, db *gorm.DB, id string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindActiveByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

// UpdateProfile - частичное обновление: меняются только присланные поля
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindActiveByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if req.Skills != nil {
		user.Skills = dto.StringsToJSON(req.Skills)
	}
	if req.Location != "" {
		user.Location = req.Location
	}
	if req.Website != "" {
		user.Website = req.Website
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewUserResponse(user), nil
}
