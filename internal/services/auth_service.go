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

type AuthService interface {
	Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Me(ctx context.Context, db *gorm.DB, userID string) (*dto.UserResponse, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	provider auth.CredentialProvider
}

func NewAuthService(userRepo repositories.UserRepository, provider auth.CredentialProvider) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		provider: provider,
	}
}

// Register - регистрация нового пользователя
func (s *AuthServiceImpl) Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	taken, err := s.userRepo.EmailTaken(db, req.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if taken {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashed,
		FullName:     req.FullName,
		Role:         models.UserRole(req.Role),
		Skills:       dto.StringsToJSON(nil),
		IsActive:     true,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		// EmailTaken выше не защищает от гонки, уникальный индекс защищает
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Message: "User registered successfully",
		User:    dto.NewUserResponse(user),
		Token:   token,
	}, nil
}

// Login - аутентификация через CredentialProvider
func (s *AuthServiceImpl) Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	identity, err := s.provider.Authenticate(ctx, db, auth.Assertion{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, auth.ErrBadCredentials) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	user, err := s.userRepo.FindActiveByID(db, identity.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateToken(identity.UserID, identity.Email, identity.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Message: "Login successful",
		User:    dto.NewUserResponse(user),
		Token:   token,
	}, nil
}

// Me возвращает профиль текущего пользователя по id из токена
func (s *AuthServiceImpl) Me(ctx context.Context, db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindActiveByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}
