package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bitskill_backend/internal/services/dto"
)

func TestValidate_RegisterRequest(t *testing.T) {
	v := New()

	valid := &dto.RegisterRequest{
		Email:    "user@test.com",
		FullName: "Valid User",
		Password: "Password123",
		Role:     "freelancer",
	}
	assert.NoError(t, v.Validate(valid))

	invalid := &dto.RegisterRequest{
		Email:    "not-an-email",
		FullName: "A",
		Password: "weak",
		Role:     "superadmin",
	}
	err := v.Validate(invalid)
	assert.Error(t, err)

	vErr, ok := err.(*ValidationError)
	assert.True(t, ok, "Ошибка должна быть *ValidationError")

	// Ключи карты - json-имена полей, не Go-имена
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "fullName")
	assert.Contains(t, vErr.Errors, "password")
	assert.Contains(t, vErr.Errors, "role")
	assert.NotContains(t, vErr.Errors, "FullName")
}

func TestValidate_CustomRules(t *testing.T) {
	v := New()

	remote := true
	gig := &dto.CreateGigRequest{
		Title:           "A valid gig title",
		Description:     "A description that is definitely longer than twenty characters.",
		CategoryID:      "cat-1",
		BudgetType:      "fixed",
		DifficultyLevel: "beginner",
		RequiredSkills:  []string{"go"},
		RemoteAllowed:   &remote,
	}
	assert.NoError(t, v.Validate(gig))

	gig.BudgetType = "negotiable"
	gig.DifficultyLevel = "impossible"
	err := v.Validate(gig)
	assert.Error(t, err)

	vErr := err.(*ValidationError)
	assert.Contains(t, vErr.Errors, "budgetType")
	assert.Contains(t, vErr.Errors, "difficultyLevel")
}

func TestValidate_ApplicationBounds(t *testing.T) {
	v := New()

	app := &dto.CreateApplicationRequest{
		CoverLetter:      "short",
		ProposedTimeline: "ok",
	}
	err := v.Validate(app)
	assert.Error(t, err)

	vErr := err.(*ValidationError)
	assert.Contains(t, vErr.Errors, "gigId")
	assert.Contains(t, vErr.Errors, "coverLetter")
	assert.Contains(t, vErr.Errors, "proposedTimeline")

	negative := -5.0
	app = &dto.CreateApplicationRequest{
		GigID:            "d2719f9e-1111-4222-8333-444455556666",
		CoverLetter:      "This cover letter is long enough to satisfy the fifty character minimum, promise.",
		ProposedTimeline: "Two weeks",
		ProposedRate:     &negative,
	}
	err = v.Validate(app)
	assert.Error(t, err)
	assert.Contains(t, err.(*ValidationError).Errors, "proposedRate")
}

func TestValidate_StatusRule(t *testing.T) {
	v := New()

	for _, status := range []string{"pending", "accepted", "rejected"} {
		req := &dto.UpdateApplicationStatusRequest{Status: status}
		assert.NoError(t, v.Validate(req), "Статус %q должен быть валидным", status)
	}

	req := &dto.UpdateApplicationStatusRequest{Status: "maybe"}
	assert.Error(t, v.Validate(req))
}
