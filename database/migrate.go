package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bitskill_backend/internal/config"
	"bitskill_backend/internal/models"
)

var gormDB *gorm.DB

// ConnectGorm инициализирует GORM по настройкам из config.
// Драйвер выбирается конфигом: postgres в продакшене, sqlite для
// локальной разработки и тестов.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()

	db, err := Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, err
	}

	gormDB = db
	return db, nil
}

// Open открывает соединение с указанным драйвером, кэш не трогает.
// Используется тестами для временных баз.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres", "":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}
	return db, nil
}

// AutoMigrate выполняет миграцию всех моделей
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.SocialLogin{},
		&models.Category{},
		&models.Gig{},
		&models.Application{},
	)
}
