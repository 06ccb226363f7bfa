package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные для общих ошибок
бизнес-логики маркетплейса.
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404)
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error, domain, message string) *AppError {
	return Wrap(err, CodeAlreadyExists, domain, message, http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus - фабрика для невалидных статусов (400)
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- Аутентификация ---

// ErrInvalidCredentials - неверный email или пароль (401)
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

// ErrUnauthorized - запрос без аутентификации (401)
var ErrUnauthorized = New(
	CodeUnauthorized,
	"auth",
	"Authentication required",
	http.StatusUnauthorized,
)

// ErrInvalidToken - подпись невалидна или токен истек.
// Предъявленный, но негодный токен - это 403, а не 401:
// 401 зарезервирован за запросами вовсе без токена.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusForbidden,
)

// --- Пользователи ---

// ErrEmailAlreadyExists - повторная регистрация на тот же email (409)
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"user",
	"User already exists with this email",
	http.StatusConflict,
)

// ErrUserNotFound - пользователь не найден или деактивирован (404)
var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

// --- Гиги ---

// ErrGigNotFound - гиг не найден (404)
var ErrGigNotFound = New(
	CodeNotFound,
	"gig",
	"Gig not found",
	http.StatusNotFound,
)

// ErrNotGigOwner - мутация чужого гига (403)
var ErrNotGigOwner = New(
	CodeForbidden,
	"gig",
	"You can only manage your own gigs",
	http.StatusForbidden,
)

// ErrInvalidCategory - категория не существует или неактивна (400)
var ErrInvalidCategory = New(
	CodeInvalidOperation,
	"gig",
	"Invalid category",
	http.StatusBadRequest,
)

// --- Отклики (applications) ---

// ErrApplicationNotFound - отклик не найден (404)
var ErrApplicationNotFound = New(
	CodeNotFound,
	"application",
	"Application not found",
	http.StatusNotFound,
)

// ErrGigNotOpen - гиг больше не принимает отклики (400)
var ErrGigNotOpen = New(
	CodeInvalidStatus,
	"application",
	"This gig is no longer accepting applications",
	http.StatusBadRequest,
)

// ErrOwnGigApplication - попытка откликнуться на собственный гиг (400)
var ErrOwnGigApplication = New(
	CodeInvalidOperation,
	"application",
	"You cannot apply to your own gig",
	http.StatusBadRequest,
)

// ErrDuplicateApplication - повторный отклик на тот же гиг (409)
var ErrDuplicateApplication = New(
	CodeAlreadyExists,
	"application",
	"You have already applied to this gig",
	http.StatusConflict,
)

// ErrNotApplicant - отзыв чужого отклика (403)
var ErrNotApplicant = New(
	CodeForbidden,
	"application",
	"You can only withdraw your own applications",
	http.StatusForbidden,
)

// --- Категории ---

// ErrCategoryNotFound - категория не найдена (404)
var ErrCategoryNotFound = New(
	CodeNotFound,
	"category",
	"Category not found",
	http.StatusNotFound,
)
