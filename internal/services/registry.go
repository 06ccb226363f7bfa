package services

import (
	"bitskill_backend/internal/auth"
	"bitskill_backend/internal/repositories"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService        AuthService
	UserService        UserService
	GigService         GigService
	ApplicationService ApplicationService
	CategoryService    CategoryService
}

func NewServiceContainer() *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	categoryRepo := repositories.NewCategoryRepository()
	gigRepo := repositories.NewGigRepository()
	applicationRepo := repositories.NewApplicationRepository()

	return &ServiceContainer{
		AuthService:        NewAuthService(userRepo, auth.NewPasswordProvider(userRepo)),
		UserService:        NewUserService(userRepo),
		GigService:         NewGigService(gigRepo, categoryRepo, applicationRepo),
		ApplicationService: NewApplicationService(applicationRepo, gigRepo),
		CategoryService:    NewCategoryService(categoryRepo),
	}
}
