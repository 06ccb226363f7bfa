package handlers

import (
	"bitskill_backend/internal/services"
	"bitskill_backend/internal/validator"
)

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	UserHandler        *UserHandler
	GigHandler         *GigHandler
	ApplicationHandler *ApplicationHandler
	CategoryHandler    *CategoryHandler
	HealthHandler      *HealthHandler
}

func NewAppHandlers(container *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:        NewAuthHandler(base, container.AuthService),
		UserHandler:        NewUserHandler(base, container.UserService),
		GigHandler:         NewGigHandler(base, container.GigService),
		ApplicationHandler: NewApplicationHandler(base, container.ApplicationService),
		CategoryHandler:    NewCategoryHandler(base, container.CategoryService),
		HealthHandler:      NewHealthHandler(),
	}
}
