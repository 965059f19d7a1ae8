package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds every runtime setting, loaded from environment variables with
// sensible defaults for local development.
type Config struct {
	AppPort string `mapstructure:"APP_PORT" validate:"required"`

	// DBDriver selects the database: "postgres" or "sqlite".
	DBDriver string `mapstructure:"DB_DRIVER" validate:"required,oneof=postgres sqlite"`
	// DBDSN is the driver-specific connection string. For sqlite this is a
	// file path (or :memory:).
	DBDSN string `mapstructure:"DB_DSN" validate:"required"`

	// StorageDriver selects the blob store: "local" or "cloudinary".
	StorageDriver string `mapstructure:"STORAGE_DRIVER" validate:"required,oneof=local cloudinary"`
	// UploadDir is where the local backend writes files; served at /uploads.
	UploadDir string `mapstructure:"UPLOAD_DIR" validate:"required_if=StorageDriver local"`
	// CloudinaryURL is the cloudinary:// credentials URL.
	CloudinaryURL string `mapstructure:"CLOUDINARY_URL" validate:"required_if=StorageDriver cloudinary"`
	// CloudinaryFolder is the folder remote uploads are stored under.
	CloudinaryFolder string `mapstructure:"CLOUDINARY_FOLDER"`

	// RedisAddr enables the product cache when non-empty.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// RabbitMQURL enables lifecycle event publishing when non-empty.
	RabbitMQURL string `mapstructure:"RABBITMQ_URL"`
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_DSN", "etalase.db")
	viper.SetDefault("STORAGE_DRIVER", "local")
	viper.SetDefault("UPLOAD_DIR", "./uploads")
	viper.SetDefault("CLOUDINARY_FOLDER", "etalase")
	viper.AutomaticEnv()

	cfg := &Config{
		AppPort:          viper.GetString("APP_PORT"),
		DBDriver:         viper.GetString("DB_DRIVER"),
		DBDSN:            viper.GetString("DB_DSN"),
		StorageDriver:    viper.GetString("STORAGE_DRIVER"),
		UploadDir:        viper.GetString("UPLOAD_DIR"),
		CloudinaryURL:    viper.GetString("CLOUDINARY_URL"),
		CloudinaryFolder: viper.GetString("CLOUDINARY_FOLDER"),
		RedisAddr:        viper.GetString("REDIS_ADDR"),
		RedisPassword:    viper.GetString("REDIS_PASSWORD"),
		RedisDB:          viper.GetInt("REDIS_DB"),
		RabbitMQURL:      viper.GetString("RABBITMQ_URL"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
