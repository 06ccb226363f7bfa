package helpers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"bitskill_backend/internal/models"
)

// RegisterAndLoginUser регистрирует пользователя через API и возвращает токен
func RegisterAndLoginUser(t *testing.T, ts *TestServer, fullName, email, password string, role models.UserRole) (string, *models.User) {
	registerBody := map[string]interface{}{
		"email":    email,
		"fullName": fullName,
		"password": password,
		"role":     string(role),
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Регистрация должна быть успешной. Ответ: "+bodyStr)

	var registerResponse struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	err := json.Unmarshal([]byte(bodyStr), &registerResponse)
	assert.NoError(t, err, "Не удалось распарсить JSON")
	assert.NotEmpty(t, registerResponse.Token, "Токен не должен быть пустым")

	var user models.User
	err = ts.DB.First(&user, "id = ?", registerResponse.User.ID).Error
	assert.NoError(t, err, "Пользователь должен существовать в БД после регистрации")

	log.Printf("✅ [Helper] Создан и залогинен пользователь %s (Role: %s)", email, role)

	return registerResponse.Token, &user
}

// RegisterEmployer регистрирует работодателя с уникальным email
func RegisterEmployer(t *testing.T, ts *TestServer) (string, *models.User) {
	email := fmt.Sprintf("employer_%d@test.com", time.Now().UnixNano())
	return RegisterAndLoginUser(t, ts, "Test Employer", email, "Password123", models.UserRoleEmployer)
}

// RegisterFreelancer регистрирует фрилансера с уникальным email
func RegisterFreelancer(t *testing.T, ts *TestServer) (string, *models.User) {
	email := fmt.Sprintf("freelancer_%d@test.com", time.Now().UnixNano())
	return RegisterAndLoginUser(t, ts, "Test Freelancer", email, "Password123", models.UserRoleFreelancer)
}

// FirstCategory возвращает любую активную категорию из сида
func FirstCategory(t *testing.T, db *gorm.DB) models.Category {
	var category models.Category
	if err := db.Where("is_active = ?", true).Order("name").First(&category).Error; err != nil {
		t.Fatalf("Не удалось получить категорию из сида: %v", err)
	}
	return category
}

// CreateTestGig создает гиг напрямую в БД, минуя API
func CreateTestGig(t *testing.T, db *gorm.DB, ownerID, categoryID, title string) models.Gig {
	gig := models.Gig{
		Title:           title,
		Description:     "Test gig description long enough to pass validation rules",
		CategoryID:      categoryID,
		PostedBy:        ownerID,
		BudgetType:      models.BudgetTypeFixed,
		DifficultyLevel: models.DifficultyBeginner,
		RequiredSkills:  datatypes.JSON(`["go"]`),
		RemoteAllowed:   true,
		Status:          models.GigStatusOpen,
	}
	if err := db.Create(&gig).Error; err != nil {
		t.Fatalf("Failed to create test gig: %v", err)
	}
	return gig
}

// GigPayload - валидное тело для POST /gigs, поля можно переопределить
func GigPayload(categoryID string, overrides map[string]interface{}) map[string]interface{} {
	payload := map[string]interface{}{
		"title":           "Build a landing page",
		"description":     "Need a responsive landing page built with modern tooling and deployed.",
		"categoryId":      categoryID,
		"budgetMin":       100.0,
		"budgetMax":       300.0,
		"budgetType":      "fixed",
		"difficultyLevel": "beginner",
		"requiredSkills":  []string{"html", "css"},
		"remoteAllowed":   true,
	}
	for k, v := range overrides {
		payload[k] = v
	}
	return payload
}

// ApplicationPayload - валидное тело для POST /applications
func ApplicationPayload(gigID string, overrides map[string]interface{}) map[string]interface{} {
	payload := map[string]interface{}{
		"gigId":            gigID,
		"coverLetter":      "I have extensive experience with similar projects and can deliver this on time and on budget.",
		"proposedRate":     150.0,
		"proposedTimeline": "Two weeks from kickoff",
	}
	for k, v := range overrides {
		payload[k] = v
	}
	return payload
}
