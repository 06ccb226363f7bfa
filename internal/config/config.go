package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		// Driver: "postgres" или "sqlite"
		Driver string `yaml:"driver"`
		// DSN: postgres URL либо путь к sqlite-файлу
		DSN string `yaml:"dsn"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		// TTL токена в часах (по умолчанию 24)
		TTL int `yaml:"ttl"`
	} `yaml:"jwt"`

	Auth struct {
		BcryptCost int `yaml:"bcrypt_cost"`
	} `yaml:"auth"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`

	RateLimit struct {
		// Глобальный лимит: запросов в секунду на IP + burst
		RequestsPerSecond float64 `yaml:"requests_per_second"`
		Burst             int     `yaml:"burst"`
		// Отдельный, более строгий лимит для /auth
		AuthRequestsPerSecond float64 `yaml:"auth_requests_per_second"`
		AuthBurst             int     `yaml:"auth_burst"`
	} `yaml:"rate_limit"`
}

var AppConfig *Config

// LoadConfig загружает конфигурацию.
// Если задан DATABASE_URL - конфиг собирается из переменных окружения
// (режим теста/деплоя), иначе читается config/config.yaml.
func LoadConfig() {
	// .env подхватывается, если он есть; в проде его нет
	_ = godotenv.Load()

	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Database.Driver = getEnv("DATABASE_DRIVER", "postgres")
	cfg.Server.Env = getEnv("SERVER_ENV", "development")
	cfg.Server.Host = getEnv("SERVER_HOST", "")
	cfg.Server.Port, _ = strconv.Atoi(getEnv("SERVER_PORT", "5000"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL, _ = strconv.Atoi(getEnv("TOKEN_EXPIRY_HOURS", "24"))
	cfg.Auth.BcryptCost, _ = strconv.Atoi(getEnv("BCRYPT_ROUNDS", "12"))

	if frontend := os.Getenv("FRONTEND_URL"); frontend != "" {
		cfg.CORS.AllowedOrigins = []string{frontend}
	}

	applyDefaults(&cfg)
	AppConfig = &cfg
}

// GetConfig возвращает загруженную конфигурацию
func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "bitskill.db"
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 24
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = 12
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"http://localhost:5173"}
	}
	if cfg.RateLimit.RequestsPerSecond == 0 {
		// ~100 запросов за 15 минут на IP
		cfg.RateLimit.RequestsPerSecond = 0.112
		cfg.RateLimit.Burst = 100
	}
	if cfg.RateLimit.AuthRequestsPerSecond == 0 {
		cfg.RateLimit.AuthRequestsPerSecond = 0.012
		cfg.RateLimit.AuthBurst = 10
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
