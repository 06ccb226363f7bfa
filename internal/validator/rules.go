package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"bitskill_backend/internal/auth"
	"bitskill_backend/internal/models"
)

// registerCustomRules регистрирует все кастомные функции валидации
// в переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Критическая ошибка времени запуска приложения
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// Правила, основанные на statuses.go
	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-gig-status", validateGigStatus)
	mustRegister("is-budget-type", validateBudgetType)
	mustRegister("is-difficulty", validateDifficultyLevel)
	mustRegister("is-application-status", validateApplicationStatus)

	// Минимум 8 символов, строчная, заглавная и цифра
	mustRegister("strong-password", validateStrongPassword)
}

// --- Функции валидации ---

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые значения обрабатывает 'required'
	}
	switch models.UserRole(value) {
	case models.UserRoleStudent, models.UserRoleFreelancer, models.UserRoleEmployer:
		return true
	default:
		return false
	}
}

func validateGigStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.GigStatus(value) {
	case models.GigStatusOpen, models.GigStatusInProgress, models.GigStatusCompleted, models.GigStatusCancelled:
		return true
	default:
		return false
	}
}

func validateBudgetType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.BudgetType(value) {
	case models.BudgetTypeFixed, models.BudgetTypeHourly:
		return true
	default:
		return false
	}
}

func validateDifficultyLevel(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.DifficultyLevel(value) {
	case models.DifficultyBeginner, models.DifficultyIntermediate, models.DifficultyExpert:
		return true
	default:
		return false
	}
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ApplicationStatus(value) {
	case models.ApplicationStatusPending, models.ApplicationStatusAccepted, models.ApplicationStatusRejected:
		return true
	default:
		return false
	}
}

// validateStrongPassword: минимум 8 символов, строчная + заглавная + цифра
func validateStrongPassword(fl validator.FieldLevel) bool {
	return auth.ValidatePassword(fl.Field().String()) == nil
}
