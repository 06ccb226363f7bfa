package auth

import (
	"errors"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"bitskill_backend/internal/config"
)

// HashPassword создает bcrypt хеш пароля с cost из конфига
func HashPassword(password string) (string, error) {
	cost := config.GetConfig().Auth.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

// CheckPasswordHash проверяет пароль против хеша
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword проверяет сложность пароля:
// минимум 8 символов, строчная, заглавная и цифра
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters long")
	}

	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLower || !hasUpper || !hasDigit {
		return errors.New("password must contain a lowercase letter, an uppercase letter and a digit")
	}
	return nil
}
