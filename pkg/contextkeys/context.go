package contextkeys

// ContextKey - тип для ключей контекста, чтобы избежать коллизий
type ContextKey string

const (
	// DBContextKey - ключ, под которым DBMiddleware кладет *gorm.DB
	// (пул соединений или транзакцию) в контекст запроса
	DBContextKey ContextKey = "db"

	// UserIDContextKey - ключ для ID аутентифицированного пользователя
	UserIDContextKey ContextKey = "userID"

	// RoleContextKey - ключ для роли аутентифицированного пользователя
	RoleContextKey ContextKey = "role"

	// EmailContextKey - ключ для email аутентифицированного пользователя
	EmailContextKey ContextKey = "email"
)
