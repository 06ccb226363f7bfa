package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	setupTestConfig(t, 24)

	hash, err := HashPassword("Password123")
	assert.NoError(t, err)
	assert.NotEqual(t, "Password123", hash)

	assert.True(t, CheckPasswordHash("Password123", hash))
	assert.False(t, CheckPasswordHash("WrongPassword123", hash))
	assert.False(t, CheckPasswordHash("Password123", "not-a-bcrypt-hash"))
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		valid    bool
	}{
		{"валидный", "Password123", true},
		{"короткий", "Pa1", false},
		{"без заглавной", "password123", false},
		{"без строчной", "PASSWORD123", false},
		{"без цифры", "PasswordABC", false},
		{"ровно 8 символов", "Passwd12", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePassword(tc.password)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
