package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bitskill_backend/internal/repositories"
	"bitskill_backend/test/helpers"
)

// TestAuthFlow - регистрация, логин и /me одним сценарием
func TestAuthFlow(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	email := fmt.Sprintf("flow_%d@test.com", time.Now().UnixNano())
	registerBody := map[string]interface{}{
		"email":    email,
		"fullName": "Тестовый Фрилансер",
		"password": "SuperPassword123",
		"role":     "freelancer",
	}

	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode)
	assert.Contains(t, regBodyStr, "User registered successfully")
	assert.Contains(t, regBodyStr, "token")
	t.Logf("РЕГИСТРАЦИЯ: Успешно. Ответ: %s", regBodyStr)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": "SuperPassword123",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, logRes.StatusCode)
	assert.Contains(t, logBodyStr, "Login successful")

	var loginResponse struct {
		Token string `json:"token"`
	}
	err := json.Unmarshal([]byte(logBodyStr), &loginResponse)
	assert.NoError(t, err)
	assert.NotEmpty(t, loginResponse.Token)

	meRes, meBodyStr := ts.SendRequest(t, "GET", "/api/v1/auth/me", loginResponse.Token, nil)
	assert.Equal(t, http.StatusOK, meRes.StatusCode)
	assert.Contains(t, meBodyStr, email)
	assert.NotContains(t, meBodyStr, "password", "Хеш пароля не должен утекать в ответ")
	t.Logf("ME: Успешно. Ответ: %s", meBodyStr)
}

// TestRegister_DuplicateEmail - повторная регистрация дает 409
func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	email := fmt.Sprintf("dup_%d@test.com", time.Now().UnixNano())
	registerBody := map[string]interface{}{
		"email":    email,
		"fullName": "First User",
		"password": "Password123",
		"role":     "student",
	}

	firstRes, _ := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusCreated, firstRes.StatusCode)

	secondRes, secondBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusConflict, secondRes.StatusCode)
	t.Logf("ДУБЛИКАТ: Успешно отклонен (409). Ответ: %s", secondBodyStr)
}

// TestRegister_WeakPassword - пароль без заглавных и цифр отклоняется
func TestRegister_WeakPassword(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	registerBody := map[string]interface{}{
		"email":    fmt.Sprintf("weak_%d@test.com", time.Now().UnixNano()),
		"fullName": "Weak Password User",
		"password": "weakpassword",
		"role":     "student",
	}

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "password")
}

// TestRegister_InvalidRole - роль вне допустимого списка отклоняется
func TestRegister_InvalidRole(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	registerBody := map[string]interface{}{
		"email":    fmt.Sprintf("role_%d@test.com", time.Now().UnixNano()),
		"fullName": "Bad Role User",
		"password": "Password123",
		"role":     "admin",
	}

	res, _ := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

// TestLogin_WrongPassword - неверный пароль дает 401, не раскрывая причину
func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, user := helpers.RegisterFreelancer(t, ts)

	loginBody := map[string]interface{}{
		"email":    user.Email,
		"password": "WrongPassword999",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	t.Logf("ЛОГИН (НЕВЕРНЫЙ ПАРОЛЬ): Успешно провалился (401). Ответ: %s", bodyStr)
}

// TestLogin_DeactivatedUser - деактивированный аккаунт не логинится
func TestLogin_DeactivatedUser(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, user := helpers.RegisterFreelancer(t, ts)

	err := repositories.NewUserRepository().Deactivate(ts.DB, user.ID)
	assert.NoError(t, err)

	loginBody := map[string]interface{}{
		"email":    user.Email,
		"password": "Password123",
	}
	res, _ := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

// TestMe_NoToken - защищенный маршрут без токена дает 401
func TestMe_NoToken(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, bodyStr, "Access token required")
}

// TestMe_InvalidToken - мусорный токен дает 403
func TestMe_InvalidToken(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, "GET", "/api/v1/auth/me", "definitely.not.a.jwt", nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

// TestLogout - logout всегда успешен, токены stateless
func TestLogout(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.RegisterFreelancer(t, ts)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Logged out successfully")

	// Токен продолжает работать после logout
	meRes, _ := ts.SendRequest(t, "GET", "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, meRes.StatusCode)
}
