package dto

import "bitskill_backend/internal/models"

type CategoryListResponse struct {
	Categories []models.Category `json:"categories"`
}
