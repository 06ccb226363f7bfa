package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"bitskill_backend/internal/models"
	"bitskill_backend/test/helpers"
)

// TestCategoryList - сид дает 10 активных категорий, отсортированных по имени
func TestCategoryList(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/categories", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var listResponse struct {
		Categories []models.Category `json:"categories"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &listResponse))
	assert.GreaterOrEqual(t, len(listResponse.Categories), 10)

	for i := 1; i < len(listResponse.Categories); i++ {
		assert.LessOrEqual(t, listResponse.Categories[i-1].Name, listResponse.Categories[i].Name,
			"Категории отсортированы по имени")
	}
}

// TestCategoryGet - карточка категории по id
func TestCategoryGet(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	category := helpers.FirstCategory(t, ts.DB)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/categories/"+category.ID, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, category.Name)
}

// TestCategoryGet_Inactive - деактивированная категория не видна
func TestCategoryGet_Inactive(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	inactive := models.Category{Name: "Retired Category", IsActive: false}
	assert.NoError(t, ts.DB.Create(&inactive).Error)

	res, _ := ts.SendRequest(t, "GET", "/api/v1/categories/"+inactive.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// И в списке ее тоже нет
	listRes, listBodyStr := ts.SendRequest(t, "GET", "/api/v1/categories", "", nil)
	assert.Equal(t, http.StatusOK, listRes.StatusCode)
	assert.NotContains(t, listBodyStr, "Retired Category")
}
