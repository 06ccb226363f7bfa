package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"bitskill_backend/internal/models"
	"bitskill_backend/test/helpers"
)

// TestApplicationFlow - полный сценарий: отклик, просмотр владельцем,
// смена статуса, список своих откликов
func TestApplicationFlow(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	employerToken, employer := helpers.RegisterEmployer(t, ts)
	freelancerToken, freelancer := helpers.RegisterFreelancer(t, ts)
	category := helpers.FirstCategory(t, ts.DB)

	gig := helpers.CreateTestGig(t, ts.DB, employer.ID, category.ID, "Flow gig")

	// Отклик
	applyRes, applyBodyStr := ts.SendRequest(t, "POST", "/api/v1/applications",
		freelancerToken, helpers.ApplicationPayload(gig.ID, nil))
	assert.Equal(t, http.StatusCreated, applyRes.StatusCode, "Ответ: "+applyBodyStr)
	assert.Contains(t, applyBodyStr, "Application submitted successfully")

	var applied struct {
		Application struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"application"`
	}
	assert.NoError(t, json.Unmarshal([]byte(applyBodyStr), &applied))
	assert.Equal(t, "pending", applied.Application.Status)

	// Счетчик откликов на гиге вырос и виден в публичной выдаче
	var stored models.Gig
	assert.NoError(t, ts.DB.First(&stored, "id = ?", gig.ID).Error)
	assert.Equal(t, 1, stored.ApplicationsCount)

	detailRes, detailBodyStr := ts.SendRequest(t, "GET", "/api/v1/gigs/"+gig.ID, "", nil)
	assert.Equal(t, http.StatusOK, detailRes.StatusCode)
	assert.Contains(t, detailBodyStr, `"applications_count":1`)

	// Владелец видит отклик с данными подавшего
	listRes, listBodyStr := ts.SendRequest(t, "GET", "/api/v1/applications/gig/"+gig.ID,
		employerToken, nil)
	assert.Equal(t, http.StatusOK, listRes.StatusCode)
	assert.Contains(t, listBodyStr, freelancer.Email)

	// Владелец принимает отклик
	statusRes, statusBodyStr := ts.SendRequest(t, "PATCH",
		"/api/v1/applications/"+applied.Application.ID+"/status", employerToken,
		map[string]interface{}{"status": "accepted"})
	assert.Equal(t, http.StatusOK, statusRes.StatusCode, "Ответ: "+statusBodyStr)
	assert.Contains(t, statusBodyStr, "accepted")

	// Фрилансер видит отклик в своем списке с данными гига
	myRes, myBodyStr := ts.SendRequest(t, "GET", "/api/v1/applications/my", freelancerToken, nil)
	assert.Equal(t, http.StatusOK, myRes.StatusCode)
	assert.Contains(t, myBodyStr, gig.Title)
	assert.Contains(t, myBodyStr, "accepted")
	t.Logf("СЦЕНАРИЙ ОТКЛИКА: Успешно. Ответ: %s", myBodyStr)
}

// TestApply_GigNotFound - отклик на несуществующий гиг дает 404
func TestApply_GigNotFound(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.RegisterFreelancer(t, ts)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/applications", token,
		helpers.ApplicationPayload("00000000-0000-0000-0000-000000000000", nil))
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

// TestApply_GigNotOpen - отклик на закрытый гиг дает 400
func TestApply_GigNotOpen(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, employer := helpers.RegisterEmployer(t, ts)
	token, _ := helpers.RegisterFreelancer(t, ts)
	category := helpers.FirstCategory(t, ts.DB)

	gig := helpers.CreateTestGig(t, ts.DB, employer.ID, category.ID, "Closed gig")
	assert.NoError(t, ts.DB.Model(&models.Gig{}).Where("id = ?", gig.ID).
		Update("status", models.GigStatusCompleted).Error)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/applications",
		token, helpers.ApplicationPayload(gig.ID, nil))
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	t.Logf("ЗАКРЫТЫЙ ГИГ: Отклик отклонен (400). Ответ: %s", bodyStr)
}

// TestApply_OwnGig - владелец не может откликнуться на свой гиг
func TestApply_OwnGig(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, employer := helpers.RegisterEmployer(t, ts)
	category := helpers.FirstCategory(t, ts.DB)

	gig := helpers.CreateTestGig(t, ts.DB, employer.ID, category.ID, "Own gig")

	res, _ := ts.SendRequest(t, "POST", "/api/v1/applications",
		token, helpers.ApplicationPayload(gig.ID, nil))
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

// TestApply_Duplicate - повторный отклик дает 409 и не трогает счетчик
func TestApply_Duplicate(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, employer := helpers.RegisterEmployer(t, ts)
	token, _ := helpers.RegisterFreelancer(t, ts)
	category := helpers.FirstCategory(t, ts.DB)

	gig := helpers.CreateTestGig(t, ts.DB, employer.ID, category.ID, "Popular gig")

	firstRes, _ := ts.SendRequest(t, "POST", "/api/v1/applications",
		token, helpers.ApplicationPayload(gig.ID, nil))
	assert.Equal(t, http.StatusCreated, firstRes.StatusCode)

	secondRes, _ := ts.SendRequest(t, "POST", "/api/v1/applications",
		token, helpers.ApplicationPayload(gig.ID, nil))
	assert.Equal(t, http.StatusConflict, secondRes.StatusCode)

	var stored models.Gig
	assert.NoError(t, ts.DB.First(&stored, "id = ?", gig.ID).Error)
	assert.Equal(t, 1, stored.ApplicationsCount, "Дубликат не должен увеличивать счетчик")
}

// TestApply_ShortCoverLetter - сопроводительное письмо короче 50 символов
func TestApply_ShortCoverLetter(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, employer := helpers.RegisterEmployer(t, ts)
	token, _ := helpers.RegisterFreelancer(t, ts)
	category := helpers.FirstCategory(t, ts.DB)

	gig := helpers.CreateTestGig(t, ts.DB, employer.ID, category.ID, "Strict gig")

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/applications",
		token, helpers.ApplicationPayload(gig.ID, map[string]interface{}{
			"coverLetter": "too short",
		}))
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "coverLetter")
}

// TestApplicationList_NotOwner - чужие отклики на гиг не видны
func TestApplicationList_NotOwner(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, employer := helpers.RegisterEmployer(t, ts)
	strangerToken, _ := helpers.RegisterFreelancer(t, ts)
	category := helpers.FirstCategory(t, ts.DB)

	gig := helpers.CreateTestGig(t, ts.DB, employer.ID, category.ID, "Private gig")

	res, _ := ts.SendRequest(t, "GET", "/api/v1/applications/gig/"+gig.ID, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

// TestApplicationStatus_NotGigOwner - статус меняет только владелец гига
func TestApplicationStatus_NotGigOwner(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, employer := helpers.RegisterEmployer(t, ts)
	freelancerToken, _ := helpers.RegisterFreelancer(t, ts)
	category := helpers.FirstCategory(t, ts.DB)

	gig := helpers.CreateTestGig(t, ts.DB, employer.ID, category.ID, "Status gig")

	applyRes, applyBodyStr := ts.SendRequest(t, "POST", "/api/v1/applications",
		freelancerToken, helpers.ApplicationPayload(gig.ID, nil))
	assert.Equal(t, http.StatusCreated, applyRes.StatusCode)

	var applied struct {
		Application struct {
			ID string `json:"id"`
		} `json:"application"`
	}
	assert.NoError(t, json.Unmarshal([]byte(applyBodyStr), &applied))

	// Сам подавший не может принять свой отклик
	res, _ := ts.SendRequest(t, "PATCH",
		"/api/v1/applications/"+applied.Application.ID+"/status", freelancerToken,
		map[string]interface{}{"status": "accepted"})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

// TestWithdraw - отзыв отклика уменьшает счетчик ровно на 1
func TestWithdraw(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, employer := helpers.RegisterEmployer(t, ts)
	token, _ := helpers.RegisterFreelancer(t, ts)
	otherToken, _ := helpers.RegisterFreelancer(t, ts)
	category := helpers.FirstCategory(t, ts.DB)

	gig := helpers.CreateTestGig(t, ts.DB, employer.ID, category.ID, "Withdraw gig")

	applyRes, applyBodyStr := ts.SendRequest(t, "POST", "/api/v1/applications",
		token, helpers.ApplicationPayload(gig.ID, nil))
	assert.Equal(t, http.StatusCreated, applyRes.StatusCode)

	var applied struct {
		Application struct {
			ID string `json:"id"`
		} `json:"application"`
	}
	assert.NoError(t, json.Unmarshal([]byte(applyBodyStr), &applied))

	// Чужой пользователь не может отозвать отклик
	strangerRes, _ := ts.SendRequest(t, "DELETE",
		"/api/v1/applications/"+applied.Application.ID, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, strangerRes.StatusCode)

	// Сам подавший - может
	withdrawRes, _ := ts.SendRequest(t, "DELETE",
		"/api/v1/applications/"+applied.Application.ID, token, nil)
	assert.Equal(t, http.StatusOK, withdrawRes.StatusCode)

	var stored models.Gig
	assert.NoError(t, ts.DB.First(&stored, "id = ?", gig.ID).Error)
	assert.Equal(t, 0, stored.ApplicationsCount)

	// Повторный отзыв дает 404
	repeatRes, _ := ts.SendRequest(t, "DELETE",
		"/api/v1/applications/"+applied.Application.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, repeatRes.StatusCode)

	// Счетчик не ушел в минус
	assert.NoError(t, ts.DB.First(&stored, "id = ?", gig.ID).Error)
	assert.Equal(t, 0, stored.ApplicationsCount, "Счетчик не бывает отрицательным")
}
