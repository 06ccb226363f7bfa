package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"bitskill_backend/database"
	"bitskill_backend/internal/app"
	"bitskill_backend/internal/config"
)

type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// testConfig собирает конфиг для тестов напрямую, минуя yaml и env.
// sqlite лежит во временном файле, bcrypt ослаблен ради скорости,
// rate limit задран, чтобы общий сервер не душил параллельные тесты.
func testConfig(dsn string) *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Server.Port = 4001
	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = dsn
	cfg.JWT.Secret = "my_super_secret_key_for_tests_12345"
	cfg.JWT.TTL = 24
	cfg.Auth.BcryptCost = 4
	cfg.CORS.AllowedOrigins = []string{"http://localhost:5173"}
	cfg.RateLimit.RequestsPerSecond = 1000
	cfg.RateLimit.Burst = 100000
	cfg.RateLimit.AuthRequestsPerSecond = 1000
	cfg.RateLimit.AuthBurst = 100000
	return cfg
}

// NewTestServer поднимает httptest-сервер поверх чистой sqlite-базы
func NewTestServer(t *testing.T) *TestServer {
	// Не t.TempDir(): сервер общий на весь пакет и живет дольше
	// первого теста, который его создал
	dsn := filepath.Join(os.TempDir(), fmt.Sprintf("bitskill_test_%d.db", os.Getpid()))
	_ = os.Remove(dsn)

	cfg := testConfig(dsn)
	config.AppConfig = cfg

	db, err := database.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		t.Fatalf("Не удалось подключиться к тестовой БД (%s): %v", dsn, err)
	}

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Не удалось выполнить AutoMigrate для тестовой БД: %v", err)
	}
	if err := database.SeedCategories(db); err != nil {
		t.Fatalf("Не удалось заполнить категории: %v", err)
	}

	router := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)

	log.Printf("✅ Тестовый сервер запущен, тестовая БД (%s) настроена.", dsn)

	return &TestServer{
		Server: server,
		DB:     db,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	sqlDB, _ := ts.DB.DB()
	sqlDB.Close()
}

// ClearTables очищает данные, категории из сида остаются
func (ts *TestServer) ClearTables() {
	for _, table := range []string{"applications", "gigs", "user_social_logins", "users"} {
		if err := ts.DB.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatalf("Не удалось очистить таблицу %s: %v", table, err)
		}
	}
}

func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	url := ts.Server.URL + path

	var reqBody io.Reader = nil
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Ошибка отправки HTTP-запроса: %v", err)
	}

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}
	defer res.Body.Close()

	return res, string(resBodyBytes)
}
