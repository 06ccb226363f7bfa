package dto

import (
	"time"

	"bitskill_backend/internal/models"
)

type CreateGigRequest struct {
	Title            string     `json:"title" binding:"required" validate:"required,min=5,max=200"`
	Description      string     `json:"description" binding:"required" validate:"required,min=20,max=5000"`
	CategoryID       string     `json:"categoryId" binding:"required" validate:"required"`
	BudgetMin        *float64   `json:"budgetMin" validate:"omitempty,gte=0"`
	BudgetMax        *float64   `json:"budgetMax" validate:"omitempty,gte=0"`
	BudgetType       string     `json:"budgetType" binding:"required" validate:"required,is-budget-type"`
	Deadline         *time.Time `json:"deadline"`
	DurationEstimate string     `json:"durationEstimate" validate:"omitempty,max=200"`
	DifficultyLevel  string     `json:"difficultyLevel" binding:"required" validate:"required,is-difficulty"`
	RequiredSkills   []string   `json:"requiredSkills" validate:"required"`
	RemoteAllowed    *bool      `json:"remoteAllowed" validate:"required"`
	Location         string     `json:"location" validate:"omitempty,max=200"`
	Tags             []string   `json:"tags"`
	IsUrgent         bool       `json:"isUrgent"`
}

// UpdateGigRequest - PUT делает полную замену,
// поэтому форма совпадает с CreateGigRequest
type UpdateGigRequest = CreateGigRequest

type SearchGigsRequest struct {
	Category        string   `form:"category"`
	MinBudget       *float64 `form:"minBudget" validate:"omitempty,gte=0"`
	MaxBudget       *float64 `form:"maxBudget" validate:"omitempty,gte=0"`
	BudgetType      string   `form:"budgetType" validate:"omitempty,is-budget-type"`
	DifficultyLevel string   `form:"difficultyLevel" validate:"omitempty,is-difficulty"`
	RemoteAllowed   *bool    `form:"remoteAllowed"`
	Search          string   `form:"search" validate:"omitempty,max=200"`
	SortBy          string   `form:"sortBy"`
	SortOrder       string   `form:"sortOrder"`
	Page            int      `form:"page"`
	Limit           int      `form:"limit"`
}

// GigResponse - гиг с денормализованными полями владельца и категории,
// в форме, которую ждет фронтенд
type GigResponse struct {
	models.Gig
	PostedByName    string `json:"posted_by_name,omitempty"`
	PostedByPicture string `json:"posted_by_picture,omitempty"`
	PostedByBio     string `json:"posted_by_bio,omitempty"`
	CategoryName    string `json:"category_name,omitempty"`
	CategoryColor   string `json:"category_color,omitempty"`
}

type GigListResponse struct {
	Gigs       []GigResponse `json:"gigs"`
	Pagination Pagination    `json:"pagination"`
}
