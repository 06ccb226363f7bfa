package auth

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bitskill_backend/internal/models"
	"bitskill_backend/internal/repositories"
)

// ErrBadCredentials - не найден активный пользователь или пароль не совпал
var ErrBadCredentials = errors.New("invalid credentials")

// Identity - результат успешной проверки учетных данных
type Identity struct {
	UserID string
	Email  string
	Role   string
}

// Assertion - то, что предъявляет клиент: пара email/пароль для локального
// провайдера либо внешний токен для OAuth-провайдера
type Assertion struct {
	Email    string
	Password string
	// Внешний assertion (id_token и т.п.); локальный провайдер его игнорирует
	External string
}

// CredentialProvider - полиморфная проверка учетных данных.
// Локальный пароль - единственная подключенная реализация; внешние провайдеры
// (google, linkedin) реализуют тот же интерфейс и пишут строки в
// user_social_logins.
type CredentialProvider interface {
	Name() string
	Authenticate(ctx context.Context, db *gorm.DB, assertion Assertion) (*Identity, error)
}

// UserLookup - та часть репозитория пользователей, которая нужна
// провайдеру для поиска активного аккаунта по email
type UserLookup interface {
	FindActiveByEmail(db *gorm.DB, email string) (*models.User, error)
}

// PasswordProvider проверяет email+пароль против users
type PasswordProvider struct {
	users UserLookup
}

func NewPasswordProvider(users UserLookup) *PasswordProvider {
	return &PasswordProvider{users: users}
}

func (p *PasswordProvider) Name() string {
	return "local"
}

func (p *PasswordProvider) Authenticate(ctx context.Context, db *gorm.DB, assertion Assertion) (*Identity, error) {
	user, err := p.users.FindActiveByEmail(db.WithContext(ctx), assertion.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}

	if user.PasswordHash == "" || !CheckPasswordHash(assertion.Password, user.PasswordHash) {
		return nil, ErrBadCredentials
	}

	return &Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
	}, nil
}
