package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config contiene la configuración del servicio, cargada desde variables
// de entorno (con .env opcional para desarrollo local)
type Config struct {
	Port    string `envconfig:"PORT" default:"8080"`
	GinMode string `envconfig:"GIN_MODE" default:"debug"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName     string `envconfig:"DB_NAME" default:"indigo_sales"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	PrometheusEnabled bool `envconfig:"PROMETHEUS_ENABLED" default:"false"`
	GzipEnabled       bool `envconfig:"GZIP_ENABLED" default:"true"`

	ImageStoragePath string `envconfig:"IMAGE_STORAGE_PATH" default:"./uploads"`
	ImageBaseURL     string `envconfig:"IMAGE_BASE_URL" default:"/static/images"`
}

// Load carga la configuración desde el entorno
func Load() (*Config, error) {
	// .env es opcional: en contenedores las variables llegan del entorno
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return &cfg, nil
}

// DSN retorna el connection string de PostgreSQL
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}
