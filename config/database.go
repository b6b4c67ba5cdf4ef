// config/database.go
package config

import (
	"log/slog"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB подключается к Postgres, если задана переменная окружения DB_URL.
// База данных — необязательный источник таблиц: при отсутствии DB_URL
// дашборд загружает данные из CSV-файлов.
func ConnectDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		slog.Info("Переменная окружения DB_URL не установлена, данные будут загружены из CSV.")
		return
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		slog.Error("Ошибка подключения к БД", "error", err)
		os.Exit(1)
	}

	DB = db
	slog.Info("Успешное подключение к базе данных!")
}
