package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	// Unsplash API
	UnsplashAPIKey     string `env:"UNSPLASH_API_KEY,required,notEmpty"`
	UnsplashAPIURL     string `env:"UNSPLASH_API_URL" envDefault:"https://api.unsplash.com"`
	UnsplashAPIVersion string `env:"UNSPLASH_API_VERSION" envDefault:"v1"`

	// Каталоги: сырые ответы, которые не удалось разобрать, и каталог изображений
	DiagnosticsDir string `env:"DIAGNOSTICS_DIR" envDefault:"jsons"`
	PicturesDir    string `env:"PICTURES_DIR"` // пусто - берем XDG-каталог пользователя

	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"60s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// Настройки рабочего стола (gsettings)
	WallpaperSchema string   `env:"WALLPAPER_SCHEMA" envDefault:"org.gnome.desktop.background"`
	WallpaperKeys   []string `env:"WALLPAPER_KEYS" envDefault:"picture-uri" envSeparator:","`

	// Журнал установленных обоев, необязательный
	DatabaseURL string `env:"DATABASE_URL"`

	// Настройки для MinIO, архив включается заданием MINIO_ENDPOINT
	MinioEndpoint        string `env:"MINIO_ENDPOINT"`
	MinioAccessKeyID     string `env:"MINIO_ACCESS_KEY_ID"`
	MinioSecretAccessKey string `env:"MINIO_SECRET_ACCESS_KEY"`
	MinioUseSSL          bool   `env:"MINIO_USE_SSL"`
	MinioBucketName      string `env:"MINIO_BUCKET_NAME" envDefault:"wallsplash"`
	MinioRegion          string `env:"MINIO_REGION" envDefault:"us-east-1"`

	RabbitMQ struct {
		RabbitMQURL       string `env:"RABBITMQ_URL"`
		RabbitMQQueueName string `env:"RABBITMQ_QUEUE_NAME" envDefault:"wallpaper_events"`
	}
}

// HistoryEnabled сообщает, настроен ли журнал в PostgreSQL.
func (c *Config) HistoryEnabled() bool {
	return c.DatabaseURL != ""
}

// ArchiveEnabled сообщает, настроено ли зеркалирование файлов в MinIO.
func (c *Config) ArchiveEnabled() bool {
	return c.MinioEndpoint != ""
}

// EventsEnabled сообщает, настроена ли публикация событий в RabbitMQ.
func (c *Config) EventsEnabled() bool {
	return c.RabbitMQ.RabbitMQURL != ""
}

// LoadConfig загружает конфигурацию из переменных окружения.
// Если рядом лежит .env файл, сначала подгружает его.
func LoadConfig() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("ошибка парсинга конфигурации из окружения: %w", err)
	}

	if cfg.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("HTTP_TIMEOUT должен быть положительным, получено %s", cfg.HTTPTimeout)
	}
	if len(cfg.WallpaperKeys) == 0 {
		cfg.WallpaperKeys = []string{"picture-uri"}
	}

	return &cfg, nil
}
