// config/config.go
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// App хранит загруженную конфигурацию приложения.
var App Config

// JwtKey — ключ подписи JWT. Инициализируется в Load.
var JwtKey []byte

// Config — типизированная конфигурация дашборда.
type Config struct {
	HTTPPort       int
	DataDir        string
	TopN           int
	ReportCacheTTL time.Duration
	GinMode        string
	Login          string
	PasswordHash   string
}

// configFile — структура YAML-файла конфигурации. Все поля опциональны:
// значения по умолчанию перекрываются файлом, файл — переменными окружения.
type configFile struct {
	Server struct {
		Port    int    `yaml:"port"`
		GinMode string `yaml:"gin_mode"`
	} `yaml:"server"`
	Data struct {
		Dir string `yaml:"dir"`
	} `yaml:"data"`
	Report struct {
		TopN        int `yaml:"top_n"`
		CacheTTLSec int `yaml:"cache_ttl_seconds"`
	} `yaml:"report"`
}

// Load загружает конфигурацию: значения по умолчанию, затем YAML-файл
// (если существует), затем переменные окружения.
func Load(path string) Config {
	cfg := Config{
		HTTPPort:       8080,
		DataDir:        "./data",
		TopN:           10,
		ReportCacheTTL: 10 * time.Minute,
		GinMode:        "release",
		Login:          "admin",
	}

	if raw, err := os.ReadFile(path); err == nil {
		var f configFile
		if err := yaml.Unmarshal(raw, &f); err != nil {
			slog.Error("Не удалось разобрать файл конфигурации", "path", path, "error", err)
			os.Exit(1)
		}
		if f.Server.Port > 0 {
			cfg.HTTPPort = f.Server.Port
		}
		if f.Server.GinMode != "" {
			cfg.GinMode = f.Server.GinMode
		}
		if f.Data.Dir != "" {
			cfg.DataDir = f.Data.Dir
		}
		if f.Report.TopN > 0 {
			cfg.TopN = f.Report.TopN
		}
		if f.Report.CacheTTLSec > 0 {
			cfg.ReportCacheTTL = time.Duration(f.Report.CacheTTLSec) * time.Second
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.HTTPPort = port
		}
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("DASHBOARD_LOGIN"); v != "" {
		cfg.Login = v
	}
	cfg.PasswordHash = os.Getenv("DASHBOARD_PASSWORD_HASH")
	if cfg.PasswordHash == "" {
		// Хэш не задан — берем пароль из окружения (или пароль по умолчанию
		// для локального запуска) и хэшируем его сами.
		password := os.Getenv("DASHBOARD_PASSWORD")
		if password == "" {
			slog.Warn("Пароль дашборда не задан, используется пароль по умолчанию 'admin'.")
			password = "admin"
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			slog.Error("Не удалось захэшировать пароль", "error", err)
			os.Exit(1)
		}
		cfg.PasswordHash = string(hash)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		slog.Warn("Переменная окружения JWT_SECRET не установлена, используется ключ по умолчанию. Не используйте его в продакшене.")
		secret = "dev-insecure-secret"
	}
	JwtKey = []byte(secret)

	App = cfg
	return cfg
}
